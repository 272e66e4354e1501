package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"salon-booking/internal/model"
)

// ServiceRepository defines the interface for treatment catalog operations
type ServiceRepository interface {
	List(ctx context.Context) ([]*model.SalonService, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*model.SalonService, error)
	GetByIDs(ctx context.Context, ids []primitive.ObjectID) ([]*model.SalonService, error)
	Insert(ctx context.Context, svc *model.SalonService) error
	Delete(ctx context.Context, id primitive.ObjectID) error
	Count(ctx context.Context) (int64, error)
}

// StylistRepository defines the interface for staff roster operations
type StylistRepository interface {
	List(ctx context.Context) ([]*model.Stylist, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*model.Stylist, error)
	Insert(ctx context.Context, stylist *model.Stylist) error
	Update(ctx context.Context, stylist *model.Stylist) error
	Delete(ctx context.Context, id primitive.ObjectID) error
	Count(ctx context.Context) (int64, error)
}

// SettingsRepository manages the singleton operational settings document
type SettingsRepository interface {
	// Load returns the settings, inserting the given defaults on first run
	Load(ctx context.Context, defaults model.Settings) (*model.Settings, error)

	// Update applies partial changes and returns the resulting settings
	Update(ctx context.Context, threshold *int64, password *string) (*model.Settings, error)
}

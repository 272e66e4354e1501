package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"salon-booking/internal/model"
)

// RewardRepository defines the interface for reward data operations
type RewardRepository interface {
	// List returns all configured rewards
	List(ctx context.Context) ([]*model.Reward, error)

	// GetByID retrieves a reward by id
	GetByID(ctx context.Context, id primitive.ObjectID) (*model.Reward, error)

	// GetExempt retrieves the always-eligible fallback reward
	GetExempt(ctx context.Context) (*model.Reward, error)

	// Insert creates a new reward
	Insert(ctx context.Context, reward *model.Reward) error

	// UpdateLimits replaces the per-period caps of a reward
	UpdateLimits(ctx context.Context, id primitive.ObjectID, limits model.RewardLimits) error

	// CompareAndSetDispensed writes new counters only if the stored version
	// still matches, bumping the version on success. Returns
	// ErrVersionConflict when a concurrent dispensation won the race.
	CompareAndSetDispensed(ctx context.Context, id primitive.ObjectID, version int64, dispensed model.RewardDispensed) error

	// Delete removes a non-exempt reward. The exempt fallback is protected.
	Delete(ctx context.Context, id primitive.ObjectID) error

	// Count returns the number of configured rewards
	Count(ctx context.Context) (int64, error)
}

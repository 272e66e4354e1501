package repository

import (
	"context"

	"salon-booking/internal/model"
)

// ClosureRepository defines the interface for archived settlement records
type ClosureRepository interface {
	// Insert archives a new closure. Closures are never updated afterwards.
	Insert(ctx context.Context, closure *model.Closure) error

	// List returns archived closures, most recent first
	List(ctx context.Context) ([]*model.Closure, error)
}

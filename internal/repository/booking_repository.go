package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"salon-booking/internal/model"
)

// BookingRepository defines the interface for pending-booking data operations
type BookingRepository interface {
	// Insert creates a new booking record
	Insert(ctx context.Context, booking *model.Booking) error

	// GetByID retrieves a booking by id
	GetByID(ctx context.Context, id primitive.ObjectID) (*model.Booking, error)

	// GetByReference retrieves a booking by its client-facing reference code
	GetByReference(ctx context.Context, reference string) (*model.Booking, error)

	// ListPending returns all bookings awaiting settlement, ordered by date and time
	ListPending(ctx context.Context) ([]*model.Booking, error)

	// CountPending returns the number of bookings awaiting settlement
	CountPending(ctx context.Context) (int64, error)

	// SlotTaken checks whether a stylist already has a booking at date/time
	SlotTaken(ctx context.Context, date, slot string, stylistID primitive.ObjectID) (bool, error)

	// BookedSlots returns the occupied slots for a stylist on a date
	BookedSlots(ctx context.Context, date string, stylistID primitive.ObjectID) ([]string, error)

	// SetRewardOutcome writes the scratch outcome once. It only matches a
	// booking whose outcome is still empty; a second write is a no-op and
	// reports false.
	SetRewardOutcome(ctx context.Context, id primitive.ObjectID, outcome string) (bool, error)

	// DeleteAll removes the given bookings, used by settlement's archive-and-clear
	DeleteAll(ctx context.Context, ids []primitive.ObjectID) error
}

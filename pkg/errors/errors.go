package errors

import "errors"

// Domain errors for the booking storefront. Handlers map these to HTTP
// statuses; services and repositories return them as-is so errors.Is works
// across layers.
var (
	// Rewards / dispensation.
	ErrRewardNotFound   = errors.New("reward not found")
	ErrRewardProtected  = errors.New("the fallback reward cannot be deleted")
	ErrNoFallbackReward = errors.New("no fallback reward configured")
	ErrVersionConflict  = errors.New("reward was modified concurrently")
	ErrDispenseConflict = errors.New("reward dispensation lost the update race")

	// Bookings.
	ErrBookingNotFound    = errors.New("booking not found")
	ErrServiceNotFound    = errors.New("service not found")
	ErrStylistNotFound    = errors.New("stylist not found")
	ErrSlotTaken          = errors.New("time slot already booked")
	ErrInvalidSlot        = errors.New("not a bookable time slot")
	ErrStylistUnavailable = errors.New("stylist not available on that date")

	// Accounting.
	ErrAccountingLocked = errors.New("bookings are suspended until the accounting is settled")
	ErrNothingToSettle  = errors.New("no pending bookings to settle")
)

package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// SalonService is a bookable treatment in the catalog.
type SalonService struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Name        string             `bson:"name" json:"name"`
	PriceCents  int64              `bson:"price_cents" json:"price_cents"`
	DurationMin int                `bson:"duration_min" json:"duration_min"`
	CreatedAt   time.Time          `bson:"created_at" json:"created_at"`
}

// WorkingRange is a stylist's working window on one weekday, "HH:MM" bounds.
type WorkingRange struct {
	Start string `bson:"start" json:"start"`
	End   string `bson:"end" json:"end"`
}

// Stylist is a staff member who can be assigned to bookings. WorkingHours is
// keyed by lowercase weekday name ("monday".."sunday"); a missing day means
// the stylist is off. AbsentDates lists specific "YYYY-MM-DD" days off.
type Stylist struct {
	ID           primitive.ObjectID      `bson:"_id,omitempty" json:"id,omitempty"`
	Name         string                  `bson:"name" json:"name"`
	WorkingHours map[string]WorkingRange `bson:"working_hours" json:"working_hours"`
	AbsentDates  []string                `bson:"absent_dates" json:"absent_dates"`
	CreatedAt    time.Time               `bson:"created_at" json:"created_at"`
}

// ServiceSnapshot freezes a service's name, price and duration at booking
// time. Later catalog edits never change what an existing booking owes.
type ServiceSnapshot struct {
	ServiceID   primitive.ObjectID `bson:"service_id" json:"service_id"`
	Name        string             `bson:"name" json:"name"`
	PriceCents  int64              `bson:"price_cents" json:"price_cents"`
	DurationMin int                `bson:"duration_min" json:"duration_min"`
}

// Booking is a confirmed appointment awaiting settlement.
//
// RewardOutcome is empty until the client completes the scratch reveal; it is
// then written exactly once and is the single source of truth for whether
// this booking already received its outcome.
type Booking struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Reference     string             `bson:"reference" json:"reference"`
	ClientName    string             `bson:"client_name" json:"client_name"`
	ClientPhone   string             `bson:"client_phone" json:"client_phone"`
	Date          string             `bson:"date" json:"date"` // YYYY-MM-DD
	Time          string             `bson:"time" json:"time"` // HH:MM
	StylistID     primitive.ObjectID `bson:"stylist_id" json:"stylist_id"`
	Services      []ServiceSnapshot  `bson:"services" json:"services"`
	TotalCents    int64              `bson:"total_cents" json:"total_cents"`
	RewardOutcome string             `bson:"reward_outcome" json:"reward_outcome"`
	CreatedAt     time.Time          `bson:"created_at" json:"created_at"`
}

// CreateBookingRequest is the client-facing booking confirmation payload.
type CreateBookingRequest struct {
	ClientName  string   `json:"client_name" binding:"required"`
	ClientPhone string   `json:"client_phone" binding:"required"`
	Date        string   `json:"date" binding:"required"`
	Time        string   `json:"time" binding:"required"`
	StylistID   string   `json:"stylist_id" binding:"required"`
	ServiceIDs  []string `json:"service_ids" binding:"required,min=1"`
}

// CreateServiceRequest adds a treatment to the catalog.
type CreateServiceRequest struct {
	Name        string `json:"name" binding:"required"`
	PriceCents  int64  `json:"price_cents" binding:"required,gt=0"`
	DurationMin int    `json:"duration_min" binding:"required,gt=0"`
}

// UpsertStylistRequest creates or replaces a stylist's roster entry.
type UpsertStylistRequest struct {
	Name         string                  `json:"name" binding:"required"`
	WorkingHours map[string]WorkingRange `json:"working_hours"`
	AbsentDates  []string                `json:"absent_dates"`
}

// AccountingStatus is the derived accounting-gate view: how many bookings are
// pending, what they owe at the per-booking fee, and whether the lock is on.
type AccountingStatus struct {
	PendingCount   int64 `json:"pending_count"`
	FeeCents       int64 `json:"fee_cents"`
	AmountDueCents int64 `json:"amount_due_cents"`
	ThresholdCents int64 `json:"threshold_cents"`
	Locked         bool  `json:"locked"`
}

package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Closure is an archived accounting settlement: the frozen set of bookings
// that were pending when the salon settled, plus the fee total paid. Created
// once by settlement and never mutated.
type Closure struct {
	ID               primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	ClosedAt         time.Time          `bson:"closed_at" json:"closed_at"`
	AppointmentCount int                `bson:"appointment_count" json:"appointment_count"`
	AmountPaidCents  int64              `bson:"amount_paid_cents" json:"amount_paid_cents"`
	Bookings         []Booking          `bson:"bookings" json:"bookings"`
}

// Settings is the singleton operational configuration managed from the
// reserved area: the accounting gate inputs and the shared staff password.
type Settings struct {
	ID                 string `bson:"_id" json:"-"`
	CommissionFeeCents int64  `bson:"commission_fee_cents" json:"commission_fee_cents"`
	ThresholdCents     int64  `bson:"threshold_cents" json:"threshold_cents"`
	AdminPassword      string `bson:"admin_password" json:"-"`
}

// UpdateSettingsRequest changes the accounting threshold and optionally the
// staff password.
type UpdateSettingsRequest struct {
	ThresholdCents *int64  `json:"threshold_cents"`
	AdminPassword  *string `json:"admin_password"`
}

package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// RewardLimits caps how many times a reward may be dispensed per rolling
// calendar period. Each cap is independent.
type RewardLimits struct {
	Daily   int `bson:"daily" json:"daily"`
	Weekly  int `bson:"weekly" json:"weekly"`
	Monthly int `bson:"monthly" json:"monthly"`
}

// PeriodCounter is a dispensation count scoped to one calendar period. The
// count is only valid while Key matches the current period key; a stale key
// means the counter effectively reads zero.
type PeriodCounter struct {
	Count int    `bson:"count" json:"count"`
	Key   string `bson:"key" json:"key"`
}

// RewardDispensed holds the three period-scoped counters for a reward.
type RewardDispensed struct {
	Daily   PeriodCounter `bson:"daily" json:"daily"`
	Weekly  PeriodCounter `bson:"weekly" json:"weekly"`
	Monthly PeriodCounter `bson:"monthly" json:"monthly"`
}

// Reward is a scratch-card prize with rolling usage quotas.
//
// Exactly one reward should be marked Exempt: the guaranteed "no win" outcome
// that is always eligible regardless of counters and can never be deleted.
// Version guards the dispensed counters against concurrent lost updates.
type Reward struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Text      string             `bson:"text" json:"text"`
	Exempt    bool               `bson:"exempt" json:"exempt"`
	Limits    RewardLimits       `bson:"limits" json:"limits"`
	Dispensed RewardDispensed    `bson:"dispensed" json:"dispensed"`
	Version   int64              `bson:"version" json:"-"`
	CreatedAt time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time          `bson:"updated_at" json:"updated_at"`
}

// CreateRewardRequest is the admin request to add a new prize.
type CreateRewardRequest struct {
	Text    string `json:"text" binding:"required"`
	Daily   int    `json:"daily"`
	Weekly  int    `json:"weekly"`
	Monthly int    `json:"monthly"`
}

// UpdateRewardLimitsRequest changes the per-period caps of a prize.
type UpdateRewardLimitsRequest struct {
	Daily   *int `json:"daily"`
	Weekly  *int `json:"weekly"`
	Monthly *int `json:"monthly"`
}

package service

import (
	"context"
	"errors"
	"math/rand"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	"salon-booking/internal/model"
	"salon-booking/internal/quota"
	"salon-booking/internal/repository"
	domerr "salon-booking/pkg/errors"
)

// dispenseRetries bounds the optimistic read-modify-write loop on a reward's
// counters before the conflict is surfaced to the caller.
const dispenseRetries = 3

// RewardService selects and records scratch-card outcomes for bookings, and
// manages the configured prizes.
type RewardService struct {
	rewardRepo  repository.RewardRepository
	bookingRepo repository.BookingRepository
	logger      *zap.Logger

	mu  sync.Mutex
	rng *rand.Rand
}

// NewRewardService creates a new reward service
func NewRewardService(rewardRepo repository.RewardRepository, bookingRepo repository.BookingRepository, logger *zap.Logger) *RewardService {
	return &RewardService{
		rewardRepo:  rewardRepo,
		bookingRepo: bookingRepo,
		logger:      logger,
		rng:         rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

func (s *RewardService) intn(n int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rng.Intn(n)
}

// PickWinner returns exactly one reward for a reveal at time now: a uniform
// random pick from the currently eligible real prizes, or the exempt fallback
// when none qualifies. A missing fallback is a configuration fault, not a
// quota condition.
func (s *RewardService) PickWinner(ctx context.Context, now time.Time) (*model.Reward, error) {
	rewards, err := s.rewardRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	var exempt *model.Reward
	var pool []*model.Reward
	for _, r := range rewards {
		if r.Exempt {
			if exempt == nil {
				exempt = r
			}
			continue
		}
		if quota.IsEligible(r, now) {
			pool = append(pool, r)
		}
	}

	if len(pool) > 0 {
		return pool[s.intn(len(pool))], nil
	}

	if exempt == nil {
		s.logger.Error("no exempt fallback reward configured; dispensation halted")
		return nil, domerr.ErrNoFallbackReward
	}

	return exempt, nil
}

// RevealBooking finalizes the scratch interaction for a booking. The
// booking's outcome field is the source of truth: if it is already set the
// stored outcome is returned and nothing is dispensed again, so retries after
// a crash or a double tap are safe.
func (s *RewardService) RevealBooking(ctx context.Context, bookingID primitive.ObjectID, now time.Time) (string, error) {
	booking, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		return "", err
	}
	if booking.RewardOutcome != "" {
		return booking.RewardOutcome, nil
	}

	winner, err := s.PickWinner(ctx, now)
	if err != nil {
		return "", err
	}

	if err := s.recordDispensation(ctx, winner.ID, now); err != nil {
		return "", err
	}

	applied, err := s.bookingRepo.SetRewardOutcome(ctx, booking.ID, winner.Text)
	if err != nil {
		return "", err
	}
	if !applied {
		// A concurrent reveal committed first; its outcome stands.
		current, err := s.bookingRepo.GetByID(ctx, booking.ID)
		if err != nil {
			return "", err
		}
		return current.RewardOutcome, nil
	}

	s.logger.Info("reward dispensed",
		zap.String("booking", booking.Reference),
		zap.String("reward", winner.Text))

	return winner.Text, nil
}

// recordDispensation increments the winner's counters with an optimistic
// version check against the latest persisted state. Each attempt re-reads the
// reward, so the lazy period rollover and the eligibility recheck always work
// from what actually committed, never a stale snapshot.
func (s *RewardService) recordDispensation(ctx context.Context, id primitive.ObjectID, now time.Time) error {
	for attempt := 0; attempt < dispenseRetries; attempt++ {
		fresh, err := s.rewardRepo.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if !quota.IsEligible(fresh, now) {
			// A concurrent dispensation exhausted the quota between pick
			// and record.
			return domerr.ErrDispenseConflict
		}

		next := quota.NextDispensed(fresh, now)
		err = s.rewardRepo.CompareAndSetDispensed(ctx, fresh.ID, fresh.Version, next)
		if err == nil {
			return nil
		}
		if !errors.Is(err, domerr.ErrVersionConflict) {
			return err
		}
	}

	s.logger.Warn("reward counter update exhausted retries", zap.String("reward_id", id.Hex()))
	return domerr.ErrDispenseConflict
}

// ListRewards returns all configured prizes.
func (s *RewardService) ListRewards(ctx context.Context) ([]*model.Reward, error) {
	return s.rewardRepo.List(ctx)
}

// CreateReward adds a prize. Omitted limits default to 1 per period, matching
// how prizes are added from the reserved area.
func (s *RewardService) CreateReward(ctx context.Context, req *model.CreateRewardRequest, now time.Time) (*model.Reward, error) {
	limits := model.RewardLimits{Daily: req.Daily, Weekly: req.Weekly, Monthly: req.Monthly}
	if limits.Daily == 0 && limits.Weekly == 0 && limits.Monthly == 0 {
		limits = model.RewardLimits{Daily: 1, Weekly: 1, Monthly: 1}
	}

	reward := &model.Reward{
		Text:      req.Text,
		Limits:    limits,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.rewardRepo.Insert(ctx, reward); err != nil {
		return nil, err
	}

	return reward, nil
}

// UpdateLimits patches the per-period caps of a prize.
func (s *RewardService) UpdateLimits(ctx context.Context, id primitive.ObjectID, req *model.UpdateRewardLimitsRequest) (*model.Reward, error) {
	reward, err := s.rewardRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	limits := reward.Limits
	if req.Daily != nil {
		limits.Daily = *req.Daily
	}
	if req.Weekly != nil {
		limits.Weekly = *req.Weekly
	}
	if req.Monthly != nil {
		limits.Monthly = *req.Monthly
	}

	if err := s.rewardRepo.UpdateLimits(ctx, id, limits); err != nil {
		return nil, err
	}
	reward.Limits = limits

	return reward, nil
}

// DeleteReward removes a prize. The exempt fallback is never deletable.
func (s *RewardService) DeleteReward(ctx context.Context, id primitive.ObjectID) error {
	return s.rewardRepo.Delete(ctx, id)
}

// SeedDefaults installs the starter prize set on an empty collection,
// including the mandatory exempt fallback.
func (s *RewardService) SeedDefaults(ctx context.Context, now time.Time) error {
	count, err := s.rewardRepo.Count(ctx)
	if err != nil || count > 0 {
		return err
	}

	defaults := []*model.Reward{
		{
			Text:   "10% off your next treatment!",
			Limits: model.RewardLimits{Daily: 5, Weekly: 20, Monthly: 50},
		},
		{
			Text:   "A complimentary treatment!",
			Limits: model.RewardLimits{Daily: 1, Weekly: 5, Monthly: 15},
		},
		{
			Text:   "Better luck next time!",
			Exempt: true,
			Limits: model.RewardLimits{Daily: 999, Weekly: 9999, Monthly: 99999},
		},
	}

	for _, r := range defaults {
		r.CreatedAt = now
		r.UpdatedAt = now
		if err := s.rewardRepo.Insert(ctx, r); err != nil {
			return err
		}
	}

	s.logger.Info("seeded default rewards", zap.Int("count", len(defaults)))
	return nil
}

package service

import (
	"context"
	"sync"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"salon-booking/internal/model"
	domerr "salon-booking/pkg/errors"
)

// In-memory repository fakes. They store copies, not pointers, so a caller
// holding a previously-read document really does hold a stale snapshot -- the
// same situation the optimistic version check has to survive against MongoDB.

type fakeRewardRepo struct {
	mu      sync.Mutex
	rewards map[primitive.ObjectID]model.Reward
}

func newFakeRewardRepo(rewards ...*model.Reward) *fakeRewardRepo {
	repo := &fakeRewardRepo{rewards: make(map[primitive.ObjectID]model.Reward)}
	for _, r := range rewards {
		if r.ID.IsZero() {
			r.ID = primitive.NewObjectID()
		}
		repo.rewards[r.ID] = *r
	}
	return repo
}

func (f *fakeRewardRepo) List(_ context.Context) ([]*model.Reward, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]*model.Reward, 0, len(f.rewards))
	for _, r := range f.rewards {
		cp := r
		out = append(out, &cp)
	}
	return out, nil
}

func (f *fakeRewardRepo) GetByID(_ context.Context, id primitive.ObjectID) (*model.Reward, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	r, ok := f.rewards[id]
	if !ok {
		return nil, domerr.ErrRewardNotFound
	}
	cp := r
	return &cp, nil
}

func (f *fakeRewardRepo) GetExempt(_ context.Context) (*model.Reward, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, r := range f.rewards {
		if r.Exempt {
			cp := r
			return &cp, nil
		}
	}
	return nil, domerr.ErrNoFallbackReward
}

func (f *fakeRewardRepo) Insert(_ context.Context, reward *model.Reward) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if reward.ID.IsZero() {
		reward.ID = primitive.NewObjectID()
	}
	f.rewards[reward.ID] = *reward
	return nil
}

func (f *fakeRewardRepo) UpdateLimits(_ context.Context, id primitive.ObjectID, limits model.RewardLimits) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	r, ok := f.rewards[id]
	if !ok {
		return domerr.ErrRewardNotFound
	}
	r.Limits = limits
	f.rewards[id] = r
	return nil
}

func (f *fakeRewardRepo) CompareAndSetDispensed(_ context.Context, id primitive.ObjectID, version int64, dispensed model.RewardDispensed) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	r, ok := f.rewards[id]
	if !ok || r.Version != version {
		return domerr.ErrVersionConflict
	}
	r.Dispensed = dispensed
	r.Version++
	f.rewards[id] = r
	return nil
}

func (f *fakeRewardRepo) Delete(_ context.Context, id primitive.ObjectID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	r, ok := f.rewards[id]
	if !ok {
		return domerr.ErrRewardNotFound
	}
	if r.Exempt {
		return domerr.ErrRewardProtected
	}
	delete(f.rewards, id)
	return nil
}

func (f *fakeRewardRepo) Count(_ context.Context) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return int64(len(f.rewards)), nil
}

type fakeBookingRepo struct {
	mu       sync.Mutex
	bookings map[primitive.ObjectID]model.Booking
}

func newFakeBookingRepo(bookings ...*model.Booking) *fakeBookingRepo {
	repo := &fakeBookingRepo{bookings: make(map[primitive.ObjectID]model.Booking)}
	for _, b := range bookings {
		if b.ID.IsZero() {
			b.ID = primitive.NewObjectID()
		}
		repo.bookings[b.ID] = *b
	}
	return repo
}

func (f *fakeBookingRepo) Insert(_ context.Context, booking *model.Booking) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, b := range f.bookings {
		if b.Date == booking.Date && b.Time == booking.Time && b.StylistID == booking.StylistID {
			return domerr.ErrSlotTaken
		}
	}
	if booking.ID.IsZero() {
		booking.ID = primitive.NewObjectID()
	}
	f.bookings[booking.ID] = *booking
	return nil
}

func (f *fakeBookingRepo) GetByID(_ context.Context, id primitive.ObjectID) (*model.Booking, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	b, ok := f.bookings[id]
	if !ok {
		return nil, domerr.ErrBookingNotFound
	}
	cp := b
	return &cp, nil
}

func (f *fakeBookingRepo) GetByReference(_ context.Context, reference string) (*model.Booking, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, b := range f.bookings {
		if b.Reference == reference {
			cp := b
			return &cp, nil
		}
	}
	return nil, domerr.ErrBookingNotFound
}

func (f *fakeBookingRepo) ListPending(_ context.Context) ([]*model.Booking, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]*model.Booking, 0, len(f.bookings))
	for _, b := range f.bookings {
		cp := b
		out = append(out, &cp)
	}
	return out, nil
}

func (f *fakeBookingRepo) CountPending(_ context.Context) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return int64(len(f.bookings)), nil
}

func (f *fakeBookingRepo) SlotTaken(_ context.Context, date, slot string, stylistID primitive.ObjectID) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, b := range f.bookings {
		if b.Date == date && b.Time == slot && b.StylistID == stylistID {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeBookingRepo) BookedSlots(_ context.Context, date string, stylistID primitive.ObjectID) ([]string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var slots []string
	for _, b := range f.bookings {
		if b.Date == date && b.StylistID == stylistID {
			slots = append(slots, b.Time)
		}
	}
	return slots, nil
}

func (f *fakeBookingRepo) SetRewardOutcome(_ context.Context, id primitive.ObjectID, outcome string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	b, ok := f.bookings[id]
	if !ok || b.RewardOutcome != "" {
		return false, nil
	}
	b.RewardOutcome = outcome
	f.bookings[id] = b
	return true, nil
}

func (f *fakeBookingRepo) DeleteAll(_ context.Context, ids []primitive.ObjectID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, id := range ids {
		delete(f.bookings, id)
	}
	return nil
}

type fakeClosureRepo struct {
	mu       sync.Mutex
	closures []model.Closure
}

func (f *fakeClosureRepo) Insert(_ context.Context, closure *model.Closure) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if closure.ID.IsZero() {
		closure.ID = primitive.NewObjectID()
	}
	f.closures = append(f.closures, *closure)
	return nil
}

func (f *fakeClosureRepo) List(_ context.Context) ([]*model.Closure, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]*model.Closure, 0, len(f.closures))
	for i := len(f.closures) - 1; i >= 0; i-- {
		cp := f.closures[i]
		out = append(out, &cp)
	}
	return out, nil
}

type fakeServiceRepo struct {
	mu       sync.Mutex
	services map[primitive.ObjectID]model.SalonService
}

func newFakeServiceRepo(services ...*model.SalonService) *fakeServiceRepo {
	repo := &fakeServiceRepo{services: make(map[primitive.ObjectID]model.SalonService)}
	for _, svc := range services {
		if svc.ID.IsZero() {
			svc.ID = primitive.NewObjectID()
		}
		repo.services[svc.ID] = *svc
	}
	return repo
}

func (f *fakeServiceRepo) List(_ context.Context) ([]*model.SalonService, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]*model.SalonService, 0, len(f.services))
	for _, svc := range f.services {
		cp := svc
		out = append(out, &cp)
	}
	return out, nil
}

func (f *fakeServiceRepo) GetByID(_ context.Context, id primitive.ObjectID) (*model.SalonService, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	svc, ok := f.services[id]
	if !ok {
		return nil, domerr.ErrServiceNotFound
	}
	cp := svc
	return &cp, nil
}

func (f *fakeServiceRepo) GetByIDs(_ context.Context, ids []primitive.ObjectID) ([]*model.SalonService, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []*model.SalonService
	for _, id := range ids {
		if svc, ok := f.services[id]; ok {
			cp := svc
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (f *fakeServiceRepo) Insert(_ context.Context, svc *model.SalonService) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if svc.ID.IsZero() {
		svc.ID = primitive.NewObjectID()
	}
	f.services[svc.ID] = *svc
	return nil
}

func (f *fakeServiceRepo) Delete(_ context.Context, id primitive.ObjectID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.services[id]; !ok {
		return domerr.ErrServiceNotFound
	}
	delete(f.services, id)
	return nil
}

func (f *fakeServiceRepo) Count(_ context.Context) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return int64(len(f.services)), nil
}

type fakeStylistRepo struct {
	mu       sync.Mutex
	stylists map[primitive.ObjectID]model.Stylist
}

func newFakeStylistRepo(stylists ...*model.Stylist) *fakeStylistRepo {
	repo := &fakeStylistRepo{stylists: make(map[primitive.ObjectID]model.Stylist)}
	for _, st := range stylists {
		if st.ID.IsZero() {
			st.ID = primitive.NewObjectID()
		}
		repo.stylists[st.ID] = *st
	}
	return repo
}

func (f *fakeStylistRepo) List(_ context.Context) ([]*model.Stylist, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]*model.Stylist, 0, len(f.stylists))
	for _, st := range f.stylists {
		cp := st
		out = append(out, &cp)
	}
	return out, nil
}

func (f *fakeStylistRepo) GetByID(_ context.Context, id primitive.ObjectID) (*model.Stylist, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	st, ok := f.stylists[id]
	if !ok {
		return nil, domerr.ErrStylistNotFound
	}
	cp := st
	return &cp, nil
}

func (f *fakeStylistRepo) Insert(_ context.Context, stylist *model.Stylist) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if stylist.ID.IsZero() {
		stylist.ID = primitive.NewObjectID()
	}
	f.stylists[stylist.ID] = *stylist
	return nil
}

func (f *fakeStylistRepo) Update(_ context.Context, stylist *model.Stylist) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.stylists[stylist.ID]; !ok {
		return domerr.ErrStylistNotFound
	}
	f.stylists[stylist.ID] = *stylist
	return nil
}

func (f *fakeStylistRepo) Delete(_ context.Context, id primitive.ObjectID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.stylists[id]; !ok {
		return domerr.ErrStylistNotFound
	}
	delete(f.stylists, id)
	return nil
}

func (f *fakeStylistRepo) Count(_ context.Context) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return int64(len(f.stylists)), nil
}

type fakeSettingsRepo struct {
	mu       sync.Mutex
	settings *model.Settings
}

func (f *fakeSettingsRepo) Load(_ context.Context, defaults model.Settings) (*model.Settings, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.settings == nil {
		cp := defaults
		f.settings = &cp
	}
	cp := *f.settings
	return &cp, nil
}

func (f *fakeSettingsRepo) Update(_ context.Context, threshold *int64, password *string) (*model.Settings, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.settings == nil {
		f.settings = &model.Settings{}
	}
	if threshold != nil {
		f.settings.ThresholdCents = *threshold
	}
	if password != nil {
		f.settings.AdminPassword = *password
	}
	cp := *f.settings
	return &cp, nil
}

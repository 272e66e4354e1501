package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	"salon-booking/internal/model"
	"salon-booking/internal/repository"
	domerr "salon-booking/pkg/errors"
)

// TxRunner executes fn atomically. The MongoDB implementation runs fn inside
// a session transaction; a nil runner executes fn directly.
type TxRunner interface {
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

// BookingService handles the booking lifecycle: creation behind the
// accounting gate, availability, and settlement into archived closures.
type BookingService struct {
	bookingRepo  repository.BookingRepository
	serviceRepo  repository.ServiceRepository
	stylistRepo  repository.StylistRepository
	closureRepo  repository.ClosureRepository
	settingsRepo repository.SettingsRepository
	tx           TxRunner
	defaults     model.Settings
	logger       *zap.Logger
}

// NewBookingService creates a new booking service. defaults provides the
// settings document written on first run. tx may be nil, in which case
// settlement writes run without a transaction.
func NewBookingService(
	bookingRepo repository.BookingRepository,
	serviceRepo repository.ServiceRepository,
	stylistRepo repository.StylistRepository,
	closureRepo repository.ClosureRepository,
	settingsRepo repository.SettingsRepository,
	tx TxRunner,
	defaults model.Settings,
	logger *zap.Logger,
) *BookingService {
	return &BookingService{
		bookingRepo:  bookingRepo,
		serviceRepo:  serviceRepo,
		stylistRepo:  stylistRepo,
		closureRepo:  closureRepo,
		settingsRepo: settingsRepo,
		tx:           tx,
		defaults:     defaults,
		logger:       logger,
	}
}

func (s *BookingService) atomically(ctx context.Context, fn func(ctx context.Context) error) error {
	if s.tx == nil {
		return fn(ctx)
	}
	return s.tx.WithTransaction(ctx, fn)
}

// AccountingStatus re-derives the gate state from the live pending count and
// the configured fee/threshold.
func (s *BookingService) AccountingStatus(ctx context.Context) (*model.AccountingStatus, error) {
	settings, err := s.settingsRepo.Load(ctx, s.defaults)
	if err != nil {
		return nil, err
	}
	count, err := s.bookingRepo.CountPending(ctx)
	if err != nil {
		return nil, err
	}

	return &model.AccountingStatus{
		PendingCount:   count,
		FeeCents:       settings.CommissionFeeCents,
		AmountDueCents: count * settings.CommissionFeeCents,
		ThresholdCents: settings.ThresholdCents,
		Locked:         Locked(count, settings.CommissionFeeCents, settings.ThresholdCents),
	}, nil
}

// CreateBooking confirms a client booking. The gate is checked first and the
// call fails closed: while locked, no booking side effect happens at all.
func (s *BookingService) CreateBooking(ctx context.Context, req *model.CreateBookingRequest, now time.Time) (*model.Booking, error) {
	status, err := s.AccountingStatus(ctx)
	if err != nil {
		return nil, err
	}
	if status.Locked {
		return nil, domerr.ErrAccountingLocked
	}

	if _, err := time.Parse("2006-01-02", req.Date); err != nil {
		return nil, domerr.ErrInvalidSlot
	}
	if !isBookableSlot(req.Time) {
		return nil, domerr.ErrInvalidSlot
	}

	stylistID, err := primitive.ObjectIDFromHex(req.StylistID)
	if err != nil {
		return nil, domerr.ErrStylistNotFound
	}
	stylist, err := s.stylistRepo.GetByID(ctx, stylistID)
	if err != nil {
		return nil, err
	}
	if !stylistWorks(stylist, req.Date, req.Time) {
		return nil, domerr.ErrStylistUnavailable
	}

	taken, err := s.bookingRepo.SlotTaken(ctx, req.Date, req.Time, stylistID)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, domerr.ErrSlotTaken
	}

	snapshots, total, err := s.snapshotServices(ctx, req.ServiceIDs)
	if err != nil {
		return nil, err
	}

	booking := &model.Booking{
		Reference:   uuid.NewString(),
		ClientName:  strings.TrimSpace(req.ClientName),
		ClientPhone: strings.TrimSpace(req.ClientPhone),
		Date:        req.Date,
		Time:        req.Time,
		StylistID:   stylistID,
		Services:    snapshots,
		TotalCents:  total,
		CreatedAt:   now,
	}
	if err := s.bookingRepo.Insert(ctx, booking); err != nil {
		return nil, err
	}

	s.logger.Info("booking created",
		zap.String("reference", booking.Reference),
		zap.String("date", booking.Date),
		zap.String("time", booking.Time))

	return booking, nil
}

// snapshotServices resolves the requested treatments and freezes their
// current price and duration into the booking.
func (s *BookingService) snapshotServices(ctx context.Context, serviceIDs []string) ([]model.ServiceSnapshot, int64, error) {
	ids := make([]primitive.ObjectID, 0, len(serviceIDs))
	for _, raw := range serviceIDs {
		id, err := primitive.ObjectIDFromHex(raw)
		if err != nil {
			return nil, 0, domerr.ErrServiceNotFound
		}
		ids = append(ids, id)
	}

	services, err := s.serviceRepo.GetByIDs(ctx, ids)
	if err != nil {
		return nil, 0, err
	}
	byID := make(map[primitive.ObjectID]*model.SalonService, len(services))
	for _, svc := range services {
		byID[svc.ID] = svc
	}

	// Preserve the order the client selected in.
	snapshots := make([]model.ServiceSnapshot, 0, len(ids))
	var total int64
	for _, id := range ids {
		svc, ok := byID[id]
		if !ok {
			return nil, 0, domerr.ErrServiceNotFound
		}
		snapshots = append(snapshots, model.ServiceSnapshot{
			ServiceID:   svc.ID,
			Name:        svc.Name,
			PriceCents:  svc.PriceCents,
			DurationMin: svc.DurationMin,
		})
		total += svc.PriceCents
	}

	return snapshots, total, nil
}

// stylistWorks reports whether the stylist is on shift for the given date and
// slot: working that weekday, slot inside the working window, and not on a
// listed absence.
func stylistWorks(stylist *model.Stylist, date, slot string) bool {
	for _, absent := range stylist.AbsentDates {
		if absent == date {
			return false
		}
	}

	day, err := time.Parse("2006-01-02", date)
	if err != nil {
		return false
	}
	hours, ok := stylist.WorkingHours[strings.ToLower(day.Weekday().String())]
	if !ok {
		return false
	}

	// "HH:MM" strings compare correctly as text.
	return slot >= hours.Start && slot < hours.End
}

// Availability returns the free slots for a stylist on a date.
func (s *BookingService) Availability(ctx context.Context, date, stylistID string) ([]string, error) {
	if _, err := time.Parse("2006-01-02", date); err != nil {
		return nil, domerr.ErrInvalidSlot
	}
	id, err := primitive.ObjectIDFromHex(stylistID)
	if err != nil {
		return nil, domerr.ErrStylistNotFound
	}
	stylist, err := s.stylistRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	booked, err := s.bookingRepo.BookedSlots(ctx, date, id)
	if err != nil {
		return nil, err
	}
	taken := make(map[string]bool, len(booked))
	for _, slot := range booked {
		taken[slot] = true
	}

	free := make([]string, 0, len(AvailableSlots))
	for _, slot := range AvailableSlots {
		if !taken[slot] && stylistWorks(stylist, date, slot) {
			free = append(free, slot)
		}
	}

	return free, nil
}

// ListPending returns the bookings awaiting settlement.
func (s *BookingService) ListPending(ctx context.Context) ([]*model.Booking, error) {
	return s.bookingRepo.ListPending(ctx)
}

// GetByID looks a booking up by its document id.
func (s *BookingService) GetByID(ctx context.Context, id primitive.ObjectID) (*model.Booking, error) {
	return s.bookingRepo.GetByID(ctx, id)
}

// GetByReference looks a booking up by its client-facing reference code.
func (s *BookingService) GetByReference(ctx context.Context, reference string) (*model.Booking, error) {
	return s.bookingRepo.GetByReference(ctx, reference)
}

// Settle archives every pending booking into one closure and clears the
// pending set. All-or-nothing: there is no partial settlement, and clearing
// the set is what releases the accounting gate.
func (s *BookingService) Settle(ctx context.Context, now time.Time) (*model.Closure, error) {
	settings, err := s.settingsRepo.Load(ctx, s.defaults)
	if err != nil {
		return nil, err
	}

	pending, err := s.bookingRepo.ListPending(ctx)
	if err != nil {
		return nil, err
	}
	if len(pending) == 0 {
		return nil, domerr.ErrNothingToSettle
	}

	frozen := make([]model.Booking, 0, len(pending))
	ids := make([]primitive.ObjectID, 0, len(pending))
	for _, b := range pending {
		frozen = append(frozen, *b)
		ids = append(ids, b.ID)
	}

	closure := &model.Closure{
		ClosedAt:         now,
		AppointmentCount: len(pending),
		AmountPaidCents:  int64(len(pending)) * settings.CommissionFeeCents,
		Bookings:         frozen,
	}

	// Archiving and clearing commit together: a closure must never exist
	// alongside the bookings it claims to have settled.
	err = s.atomically(ctx, func(ctx context.Context) error {
		if err := s.closureRepo.Insert(ctx, closure); err != nil {
			return err
		}
		return s.bookingRepo.DeleteAll(ctx, ids)
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("accounting settled",
		zap.Int("appointments", closure.AppointmentCount),
		zap.Int64("amount_paid_cents", closure.AmountPaidCents))

	return closure, nil
}

// ListClosures returns the archived settlements, most recent first.
func (s *BookingService) ListClosures(ctx context.Context) ([]*model.Closure, error) {
	return s.closureRepo.List(ctx)
}

// Settings returns the current operational settings.
func (s *BookingService) Settings(ctx context.Context) (*model.Settings, error) {
	return s.settingsRepo.Load(ctx, s.defaults)
}

// UpdateSettings changes the accounting threshold and/or the staff password.
func (s *BookingService) UpdateSettings(ctx context.Context, req *model.UpdateSettingsRequest) (*model.Settings, error) {
	return s.settingsRepo.Update(ctx, req.ThresholdCents, req.AdminPassword)
}

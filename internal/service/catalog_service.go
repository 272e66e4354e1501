package service

import (
	"context"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	"salon-booking/internal/model"
	"salon-booking/internal/repository"
)

// CatalogService manages the treatment catalog and the stylist roster.
type CatalogService struct {
	serviceRepo repository.ServiceRepository
	stylistRepo repository.StylistRepository
	logger      *zap.Logger
}

// NewCatalogService creates a new catalog service
func NewCatalogService(serviceRepo repository.ServiceRepository, stylistRepo repository.StylistRepository, logger *zap.Logger) *CatalogService {
	return &CatalogService{
		serviceRepo: serviceRepo,
		stylistRepo: stylistRepo,
		logger:      logger,
	}
}

func (s *CatalogService) ListServices(ctx context.Context) ([]*model.SalonService, error) {
	return s.serviceRepo.List(ctx)
}

func (s *CatalogService) GetService(ctx context.Context, id primitive.ObjectID) (*model.SalonService, error) {
	return s.serviceRepo.GetByID(ctx, id)
}

func (s *CatalogService) CreateService(ctx context.Context, req *model.CreateServiceRequest, now time.Time) (*model.SalonService, error) {
	svc := &model.SalonService{
		Name:        strings.TrimSpace(req.Name),
		PriceCents:  req.PriceCents,
		DurationMin: req.DurationMin,
		CreatedAt:   now,
	}
	if err := s.serviceRepo.Insert(ctx, svc); err != nil {
		return nil, err
	}

	return svc, nil
}

func (s *CatalogService) DeleteService(ctx context.Context, id primitive.ObjectID) error {
	return s.serviceRepo.Delete(ctx, id)
}

func (s *CatalogService) ListStylists(ctx context.Context) ([]*model.Stylist, error) {
	return s.stylistRepo.List(ctx)
}

func (s *CatalogService) CreateStylist(ctx context.Context, req *model.UpsertStylistRequest, now time.Time) (*model.Stylist, error) {
	stylist := &model.Stylist{
		Name:         strings.TrimSpace(req.Name),
		WorkingHours: normalizeWorkingHours(req.WorkingHours),
		AbsentDates:  req.AbsentDates,
		CreatedAt:    now,
	}
	if err := s.stylistRepo.Insert(ctx, stylist); err != nil {
		return nil, err
	}

	return stylist, nil
}

func (s *CatalogService) UpdateStylist(ctx context.Context, id primitive.ObjectID, req *model.UpsertStylistRequest) (*model.Stylist, error) {
	stylist, err := s.stylistRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	stylist.Name = strings.TrimSpace(req.Name)
	stylist.WorkingHours = normalizeWorkingHours(req.WorkingHours)
	stylist.AbsentDates = req.AbsentDates

	if err := s.stylistRepo.Update(ctx, stylist); err != nil {
		return nil, err
	}

	return stylist, nil
}

func (s *CatalogService) DeleteStylist(ctx context.Context, id primitive.ObjectID) error {
	return s.stylistRepo.Delete(ctx, id)
}

func normalizeWorkingHours(hours map[string]model.WorkingRange) map[string]model.WorkingRange {
	normalized := make(map[string]model.WorkingRange, len(hours))
	for day, rng := range hours {
		normalized[strings.ToLower(day)] = rng
	}
	return normalized
}

// SeedDefaults installs the starter treatment catalog on an empty collection.
func (s *CatalogService) SeedDefaults(ctx context.Context, now time.Time) error {
	count, err := s.serviceRepo.Count(ctx)
	if err != nil || count > 0 {
		return err
	}

	defaults := []*model.SalonService{
		{Name: "Men's Cut", PriceCents: 2500, DurationMin: 30},
		{Name: "Women's Cut & Blow Dry", PriceCents: 5000, DurationMin: 60},
		{Name: "Color", PriceCents: 7000, DurationMin: 90},
		{Name: "Beard Trim", PriceCents: 1500, DurationMin: 20},
		{Name: "Restructuring Treatment", PriceCents: 3500, DurationMin: 45},
	}

	for _, svc := range defaults {
		svc.CreatedAt = now
		if err := s.serviceRepo.Insert(ctx, svc); err != nil {
			return err
		}
	}

	s.logger.Info("seeded default services", zap.Int("count", len(defaults)))
	return nil
}

package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/hamyar-edu/advising_bot/internal/catalog"
	"github.com/hamyar-edu/advising_bot/internal/model"
	"github.com/hamyar-edu/advising_bot/internal/notify"
)

// AvailabilityService owns the advisor's declared weekday/time openings.
type AvailabilityService struct {
	advisors AdvisorStore
	catalog  *catalog.Catalog
	logger   *zap.Logger
}

func NewAvailabilityService(advisors AdvisorStore, cat *catalog.Catalog, logger *zap.Logger) *AvailabilityService {
	return &AvailabilityService{
		advisors: advisors,
		catalog:  cat,
		logger:   logger,
	}
}

// SetAvailability replaces the advisor's full availability mapping. Callers
// pass the complete desired state; there is no partial merge. Every weekday
// and time label is checked against the catalogs before anything is stored.
func (s *AvailabilityService) SetAvailability(ctx context.Context, advisorID string, availability model.Availability) (notify.Draft, error) {
	for day, slots := range availability {
		if !s.catalog.ValidWeekday(day) {
			return notify.Draft{}, fmt.Errorf("%w: %q", model.ErrInvalidWeekday, day)
		}
		for _, slot := range slots {
			if !s.catalog.ValidTimeSlot(slot) {
				return notify.Draft{}, fmt.Errorf("%w: %q", model.ErrInvalidSlot, slot)
			}
		}
	}

	normalized := availability.Normalize()
	if err := s.advisors.SetAvailability(ctx, advisorID, normalized); err != nil {
		return notify.Draft{}, err
	}

	s.logger.Info("Availability saved",
		zap.String("advisor_id", advisorID),
		zap.Int("days", len(normalized)),
	)

	return notify.AvailabilitySaved(advisorID), nil
}

// GetAvailability returns the advisor's mapping; an advisor who has never
// declared availability gets an empty map, not an error.
func (s *AvailabilityService) GetAvailability(ctx context.Context, advisorID string) (model.Availability, error) {
	advisor, err := s.advisors.GetByID(ctx, advisorID)
	if err != nil {
		return nil, err
	}
	if advisor.Availability == nil {
		return model.Availability{}, nil
	}
	return advisor.Availability, nil
}

// RenderGrid draws the advisor's current availability as a PNG raster, sent
// to them alongside the saved confirmation.
func (s *AvailabilityService) RenderGrid(ctx context.Context, advisorID string) ([]byte, error) {
	availability, err := s.GetAvailability(ctx, advisorID)
	if err != nil {
		return nil, err
	}
	return notify.RenderAvailabilityGrid(availability, s.catalog.Weekdays, s.catalog.TimeSlots)
}

// Package surcharge manages fuel surcharge announcements and serves the
// public rates page.
package surcharge

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/cargolink/backend/internal/domain/shared"
	"github.com/cargolink/backend/internal/domain/surcharge"
)

// CreateInput carries one new announcement from the admin form.
type CreateInput struct {
	CarrierCode   string
	CarrierName   string
	Mode          string
	RatePercent   string
	EffectiveFrom time.Time
	Note          string
}

// ReviseInput replaces the rate and note on an existing announcement.
type ReviseInput struct {
	RatePercent string
	Note        string
}

// ListInput narrows the admin listing.
type ListInput struct {
	Page        int
	PageSize    int
	CarrierCode string
	Mode        string
}

// Service handles surcharge announcements.
type Service struct {
	repo   surcharge.Repository
	logger *zap.Logger
}

// NewService creates a surcharge service.
func NewService(repo surcharge.Repository, logger *zap.Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

// Create stores one announcement.
func (s *Service) Create(ctx context.Context, input CreateInput) (*surcharge.Surcharge, error) {
	sc, err := surcharge.NewSurcharge(
		input.CarrierCode,
		input.CarrierName,
		surcharge.Mode(input.Mode),
		input.RatePercent,
		input.EffectiveFrom,
		input.Note,
	)
	if err != nil {
		return nil, err
	}
	if err := s.repo.Save(ctx, sc); err != nil {
		return nil, err
	}

	s.logger.Info("surcharge announced",
		zap.String("carrier", sc.CarrierCode),
		zap.String("mode", string(sc.Mode)),
		zap.String("rate", sc.RatePercent.String()),
	)
	return sc, nil
}

// Revise updates the rate and note of an existing announcement.
func (s *Service) Revise(ctx context.Context, id uuid.UUID, input ReviseInput) (*surcharge.Surcharge, error) {
	sc, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := sc.Revise(input.RatePercent, input.Note); err != nil {
		return nil, err
	}
	if err := s.repo.Save(ctx, sc); err != nil {
		return nil, err
	}
	return sc, nil
}

// Delete removes an announcement.
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}

// Effective returns, per carrier and mode, the rate in force at the given
// date. A zero date means today.
func (s *Service) Effective(ctx context.Context, at time.Time, carrierCode string) ([]surcharge.Surcharge, error) {
	if at.IsZero() {
		at = time.Now()
	}
	return s.repo.FindEffective(ctx, at.UTC(), carrierCode)
}

// History returns all announcements for one carrier and mode, newest first.
func (s *Service) History(ctx context.Context, carrierCode string, mode string) ([]surcharge.Surcharge, error) {
	m := surcharge.Mode(mode)
	if !m.IsValid() {
		return nil, surcharge.ErrInvalidMode
	}
	return s.repo.FindByCarrierMode(ctx, carrierCode, m)
}

// List returns all announcements for the admin table.
func (s *Service) List(ctx context.Context, input ListInput) (shared.Paginated[surcharge.Surcharge], error) {
	page := input.Page
	if page < 1 {
		page = 1
	}
	pageSize := input.PageSize
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	filter := shared.Filter{
		Page:     page,
		PageSize: pageSize,
		OrderBy:  "effective_from",
		OrderDir: "desc",
		Filters:  map[string]interface{}{},
	}
	if input.CarrierCode != "" {
		filter.Filters["carrier_code"] = input.CarrierCode
	}
	if input.Mode != "" {
		filter.Filters["mode"] = input.Mode
	}

	items, err := s.repo.FindAll(ctx, filter)
	if err != nil {
		return shared.Paginated[surcharge.Surcharge]{}, err
	}
	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		return shared.Paginated[surcharge.Surcharge]{}, err
	}
	return shared.NewPaginated(items, total, page, pageSize), nil
}

package persistence

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/cargolink/backend/internal/domain/shared"
	"github.com/cargolink/backend/internal/domain/surcharge"
)

// GormSurchargeRepository implements surcharge.Repository using GORM
type GormSurchargeRepository struct {
	db *gorm.DB
}

// NewGormSurchargeRepository creates a new GormSurchargeRepository
func NewGormSurchargeRepository(db *gorm.DB) *GormSurchargeRepository {
	return &GormSurchargeRepository{db: db}
}

// FindByID finds a surcharge announcement by its ID
func (r *GormSurchargeRepository) FindByID(ctx context.Context, id uuid.UUID) (*surcharge.Surcharge, error) {
	var s surcharge.Surcharge
	if err := r.db.WithContext(ctx).First(&s, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &s, nil
}

// FindAll finds announcements matching the filter
func (r *GormSurchargeRepository) FindAll(ctx context.Context, filter shared.Filter) ([]surcharge.Surcharge, error) {
	var entries []surcharge.Surcharge
	query := r.applyFilter(r.db.WithContext(ctx).Model(&surcharge.Surcharge{}), filter)
	if err := query.Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}

// FindEffective returns, per carrier and mode, the latest announcement
// effective at the given date. An empty carrierCode returns all carriers.
func (r *GormSurchargeRepository) FindEffective(ctx context.Context, at time.Time, carrierCode string) ([]surcharge.Surcharge, error) {
	sub := r.db.WithContext(ctx).
		Model(&surcharge.Surcharge{}).
		Select("carrier_code, mode, MAX(effective_from) AS effective_from").
		Where("effective_from <= ?", at).
		Group("carrier_code, mode")
	if carrierCode != "" {
		sub = sub.Where("carrier_code = ?", strings.ToUpper(carrierCode))
	}

	var entries []surcharge.Surcharge
	if err := r.db.WithContext(ctx).
		Model(&surcharge.Surcharge{}).
		Joins("JOIN (?) latest ON surcharges.carrier_code = latest.carrier_code AND surcharges.mode = latest.mode AND surcharges.effective_from = latest.effective_from", sub).
		Order("surcharges.carrier_code ASC, surcharges.mode ASC").
		Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}

// FindByCarrierMode returns the announcement history, newest first
func (r *GormSurchargeRepository) FindByCarrierMode(ctx context.Context, carrierCode string, mode surcharge.Mode) ([]surcharge.Surcharge, error) {
	var entries []surcharge.Surcharge
	if err := r.db.WithContext(ctx).
		Where("carrier_code = ? AND mode = ?", strings.ToUpper(carrierCode), mode).
		Order("effective_from DESC").
		Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}

// Save creates or updates an announcement
func (r *GormSurchargeRepository) Save(ctx context.Context, s *surcharge.Surcharge) error {
	return r.db.WithContext(ctx).Save(s).Error
}

// Delete deletes an announcement
func (r *GormSurchargeRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&surcharge.Surcharge{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Count counts announcements matching the filter
func (r *GormSurchargeRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	var count int64
	query := r.applyFilterWithoutPagination(r.db.WithContext(ctx).Model(&surcharge.Surcharge{}), filter)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *GormSurchargeRepository) applyFilter(query *gorm.DB, filter shared.Filter) *gorm.DB {
	query = r.applyFilterWithoutPagination(query, filter)

	if filter.Page > 0 && filter.PageSize > 0 {
		offset := (filter.Page - 1) * filter.PageSize
		query = query.Offset(offset).Limit(filter.PageSize)
	}

	if filter.OrderBy != "" {
		orderDir := "ASC"
		if strings.ToLower(filter.OrderDir) == "desc" {
			orderDir = "DESC"
		}
		query = query.Order(filter.OrderBy + " " + orderDir)
	}

	return query
}

func (r *GormSurchargeRepository) applyFilterWithoutPagination(query *gorm.DB, filter shared.Filter) *gorm.DB {
	for key, value := range filter.Filters {
		switch key {
		case "carrier_code":
			query = query.Where("carrier_code = ?", value)
		case "mode":
			query = query.Where("mode = ?", value)
		}
	}
	return query
}

// Ensure GormSurchargeRepository implements surcharge.Repository
var _ surcharge.Repository = (*GormSurchargeRepository)(nil)

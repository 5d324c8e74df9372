package persistence

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/cargolink/backend/internal/domain/feedback"
	"github.com/cargolink/backend/internal/domain/shared"
)

// GormFeedbackRepository implements feedback.Repository using GORM
type GormFeedbackRepository struct {
	db *gorm.DB
}

// NewGormFeedbackRepository creates a new GormFeedbackRepository
func NewGormFeedbackRepository(db *gorm.DB) *GormFeedbackRepository {
	return &GormFeedbackRepository{db: db}
}

// FindByID finds a feedback entry by its ID
func (r *GormFeedbackRepository) FindByID(ctx context.Context, id uuid.UUID) (*feedback.Feedback, error) {
	var f feedback.Feedback
	if err := r.db.WithContext(ctx).First(&f, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &f, nil
}

// FindAll finds feedback entries matching the filter
func (r *GormFeedbackRepository) FindAll(ctx context.Context, filter shared.Filter) ([]feedback.Feedback, error) {
	var entries []feedback.Feedback
	query := r.applyFilter(r.db.WithContext(ctx).Model(&feedback.Feedback{}), filter)
	if err := query.Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}

// Save creates or updates a feedback entry
func (r *GormFeedbackRepository) Save(ctx context.Context, f *feedback.Feedback) error {
	return r.db.WithContext(ctx).Save(f).Error
}

// Delete deletes a feedback entry
func (r *GormFeedbackRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&feedback.Feedback{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Count counts feedback entries matching the filter
func (r *GormFeedbackRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	var count int64
	query := r.applyFilterWithoutPagination(r.db.WithContext(ctx).Model(&feedback.Feedback{}), filter)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *GormFeedbackRepository) applyFilter(query *gorm.DB, filter shared.Filter) *gorm.DB {
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

func (r *GormFeedbackRepository) applyFilterWithoutPagination(query *gorm.DB, filter shared.Filter) *gorm.DB {
	if filter.Search != "" {
		searchPattern := "%" + strings.ToLower(filter.Search) + "%"
		query = query.Where("LOWER(message) LIKE ?", searchPattern)
	}

	for key, value := range filter.Filters {
		switch key {
		case "kind":
			query = query.Where("kind = ?", value)
		case "status":
			query = query.Where("status = ?", value)
		}
	}

	return query
}

// Ensure GormFeedbackRepository implements feedback.Repository
var _ feedback.Repository = (*GormFeedbackRepository)(nil)

package persistence

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/cargolink/backend/internal/domain/insight"
	"github.com/cargolink/backend/internal/domain/shared"
)

// GormInsightRepository implements insight.Repository using GORM
type GormInsightRepository struct {
	db *gorm.DB
}

// NewGormInsightRepository creates a new GormInsightRepository
func NewGormInsightRepository(db *gorm.DB) *GormInsightRepository {
	return &GormInsightRepository{db: db}
}

// FindByID finds an insight by its ID
func (r *GormInsightRepository) FindByID(ctx context.Context, id uuid.UUID) (*insight.Insight, error) {
	var i insight.Insight
	if err := r.db.WithContext(ctx).First(&i, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &i, nil
}

// FindBySlug finds an insight by its slug
func (r *GormInsightRepository) FindBySlug(ctx context.Context, slug string) (*insight.Insight, error) {
	var i insight.Insight
	if err := r.db.WithContext(ctx).First(&i, "slug = ?", slug).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &i, nil
}

// FindAll finds all insights matching the filter, drafts included
func (r *GormInsightRepository) FindAll(ctx context.Context, filter shared.Filter) ([]insight.Insight, error) {
	var insights []insight.Insight
	query := r.applyFilter(r.db.WithContext(ctx).Model(&insight.Insight{}), filter)
	if err := query.Find(&insights).Error; err != nil {
		return nil, err
	}
	return insights, nil
}

// FindPublished finds published insights matching the filter
func (r *GormInsightRepository) FindPublished(ctx context.Context, filter shared.Filter) ([]insight.Insight, error) {
	var insights []insight.Insight
	query := r.db.WithContext(ctx).Model(&insight.Insight{}).Where("status = ?", insight.StatusPublished)
	query = r.applyFilter(query, filter)
	if err := query.Find(&insights).Error; err != nil {
		return nil, err
	}
	return insights, nil
}

// Save creates or updates an insight
func (r *GormInsightRepository) Save(ctx context.Context, i *insight.Insight) error {
	return r.db.WithContext(ctx).Save(i).Error
}

// Delete deletes an insight
func (r *GormInsightRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&insight.Insight{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Count counts insights matching the filter
func (r *GormInsightRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	var count int64
	query := r.applyFilterWithoutPagination(r.db.WithContext(ctx).Model(&insight.Insight{}), filter)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// CountPublished counts published insights matching the filter
func (r *GormInsightRepository) CountPublished(ctx context.Context, filter shared.Filter) (int64, error) {
	var count int64
	query := r.db.WithContext(ctx).Model(&insight.Insight{}).Where("status = ?", insight.StatusPublished)
	query = r.applyFilterWithoutPagination(query, filter)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// IncrementViewCount bumps the view counter atomically in the database.
func (r *GormInsightRepository) IncrementViewCount(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).
		Model(&insight.Insight{}).
		Where("id = ?", id).
		UpdateColumn("view_count", gorm.Expr("view_count + 1"))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// applyFilter applies filter options to the query
func (r *GormInsightRepository) applyFilter(query *gorm.DB, filter shared.Filter) *gorm.DB {
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

// applyFilterWithoutPagination applies filter options without pagination
func (r *GormInsightRepository) applyFilterWithoutPagination(query *gorm.DB, filter shared.Filter) *gorm.DB {
	if filter.Search != "" {
		searchPattern := "%" + strings.ToLower(filter.Search) + "%"
		query = query.Where("LOWER(title) LIKE ? OR LOWER(excerpt) LIKE ? OR LOWER(tags) LIKE ?",
			searchPattern, searchPattern, searchPattern)
	}

	for key, value := range filter.Filters {
		switch key {
		case "category":
			query = query.Where("category = ?", value)
		case "status":
			query = query.Where("status = ?", value)
		}
	}

	return query
}

// Ensure GormInsightRepository implements insight.Repository
var _ insight.Repository = (*GormInsightRepository)(nil)

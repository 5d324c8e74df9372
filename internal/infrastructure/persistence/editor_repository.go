package persistence

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/cargolink/backend/internal/domain/identity"
	"github.com/cargolink/backend/internal/domain/shared"
)

// GormEditorRepository implements identity.Repository using GORM
type GormEditorRepository struct {
	db *gorm.DB
}

// NewGormEditorRepository creates a new GormEditorRepository
func NewGormEditorRepository(db *gorm.DB) *GormEditorRepository {
	return &GormEditorRepository{db: db}
}

// FindByID finds an editor by its ID
func (r *GormEditorRepository) FindByID(ctx context.Context, id uuid.UUID) (*identity.Editor, error) {
	var e identity.Editor
	if err := r.db.WithContext(ctx).First(&e, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &e, nil
}

// FindByEmail finds an editor by normalized email
func (r *GormEditorRepository) FindByEmail(ctx context.Context, email string) (*identity.Editor, error) {
	var e identity.Editor
	if err := r.db.WithContext(ctx).
		First(&e, "email = ?", strings.ToLower(strings.TrimSpace(email))).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &e, nil
}

// FindAll finds editors matching the filter
func (r *GormEditorRepository) FindAll(ctx context.Context, filter shared.Filter) ([]identity.Editor, error) {
	var editors []identity.Editor
	query := r.db.WithContext(ctx).Model(&identity.Editor{})
	if filter.Page > 0 && filter.PageSize > 0 {
		query = query.Offset((filter.Page - 1) * filter.PageSize).Limit(filter.PageSize)
	}
	if err := query.Order("email ASC").Find(&editors).Error; err != nil {
		return nil, err
	}
	return editors, nil
}

// Save creates or updates an editor
func (r *GormEditorRepository) Save(ctx context.Context, e *identity.Editor) error {
	return r.db.WithContext(ctx).Save(e).Error
}

// Delete deletes an editor
func (r *GormEditorRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&identity.Editor{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Count counts editors
func (r *GormEditorRepository) Count(ctx context.Context, _ shared.Filter) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&identity.Editor{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// Ensure GormEditorRepository implements identity.Repository
var _ identity.Repository = (*GormEditorRepository)(nil)

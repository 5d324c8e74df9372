// Package insight implements the editorial workflow and public reads for
// the insights section.
package insight

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/cargolink/backend/internal/domain/insight"
	"github.com/cargolink/backend/internal/domain/shared"
	"github.com/cargolink/backend/internal/infrastructure/cache"
)

// Service handles insight CRUD for editors and deduplicated reads for the
// public site.
type Service struct {
	repo     insight.Repository
	dedup    cache.ViewDedupStore
	dedupTTL time.Duration
	logger   *zap.Logger
}

// NewService creates an insight service.
func NewService(repo insight.Repository, dedup cache.ViewDedupStore, dedupTTL time.Duration, logger *zap.Logger) *Service {
	return &Service{
		repo:     repo,
		dedup:    dedup,
		dedupTTL: dedupTTL,
		logger:   logger,
	}
}

// Create saves a new draft.
func (s *Service) Create(ctx context.Context, input CreateInput) (*insight.Insight, error) {
	ins, err := insight.NewInsight(input.Title, input.Excerpt, input.Content, insight.Category(input.Category))
	if err != nil {
		return nil, err
	}
	ins.Tags = input.Tags
	ins.CoverURL = input.CoverURL

	if existing, err := s.repo.FindBySlug(ctx, ins.Slug); err == nil && existing != nil {
		return nil, shared.NewDomainError("DUPLICATE_SLUG", "An insight with this title already exists")
	}

	if err := s.repo.Save(ctx, ins); err != nil {
		return nil, err
	}

	s.logger.Info("insight created",
		zap.String("insight_id", ins.ID.String()),
		zap.String("slug", ins.Slug),
	)
	return ins, nil
}

// Update edits a draft or published insight. The slug never changes.
func (s *Service) Update(ctx context.Context, id uuid.UUID, input UpdateInput) (*insight.Insight, error) {
	ins, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := ins.Update(input.Title, input.Excerpt, input.Content, insight.Category(input.Category)); err != nil {
		return nil, err
	}
	ins.Tags = input.Tags
	ins.CoverURL = input.CoverURL

	if err := s.repo.Save(ctx, ins); err != nil {
		return nil, err
	}
	return ins, nil
}

// Publish makes an insight publicly visible.
func (s *Service) Publish(ctx context.Context, id uuid.UUID) (*insight.Insight, error) {
	ins, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	ins.Publish(time.Now())
	if err := s.repo.Save(ctx, ins); err != nil {
		return nil, err
	}

	s.logger.Info("insight published", zap.String("slug", ins.Slug))
	return ins, nil
}

// Unpublish pulls an insight back to draft.
func (s *Service) Unpublish(ctx context.Context, id uuid.UUID) (*insight.Insight, error) {
	ins, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	ins.Unpublish()
	if err := s.repo.Save(ctx, ins); err != nil {
		return nil, err
	}
	return ins, nil
}

// Delete removes an insight permanently.
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}

// GetByID returns any insight, draft or published. Editor endpoints only.
func (s *Service) GetByID(ctx context.Context, id uuid.UUID) (*insight.Insight, error) {
	return s.repo.FindByID(ctx, id)
}

// List returns all insights for the editor dashboard.
func (s *Service) List(ctx context.Context, input ListInput) (shared.Paginated[insight.Insight], error) {
	page, pageSize := input.normalized()
	filter := shared.Filter{
		Page:     page,
		PageSize: pageSize,
		Search:   input.Search,
		OrderBy:  "created_at",
		OrderDir: "desc",
		Filters:  map[string]interface{}{},
	}
	if input.Category != "" {
		filter.Filters["category"] = input.Category
	}
	if input.Status != "" {
		filter.Filters["status"] = input.Status
	}

	items, err := s.repo.FindAll(ctx, filter)
	if err != nil {
		return shared.Paginated[insight.Insight]{}, err
	}
	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		return shared.Paginated[insight.Insight]{}, err
	}
	return shared.NewPaginated(items, total, page, pageSize), nil
}

// ListPublished returns published insights, newest first, for the public
// listing page.
func (s *Service) ListPublished(ctx context.Context, input ListInput) (shared.Paginated[insight.Insight], error) {
	page, pageSize := input.normalized()
	filter := shared.Filter{
		Page:     page,
		PageSize: pageSize,
		Search:   input.Search,
		OrderBy:  "published_at",
		OrderDir: "desc",
		Filters:  map[string]interface{}{},
	}
	if input.Category != "" {
		filter.Filters["category"] = input.Category
	}

	items, err := s.repo.FindPublished(ctx, filter)
	if err != nil {
		return shared.Paginated[insight.Insight]{}, err
	}
	total, err := s.repo.CountPublished(ctx, filter)
	if err != nil {
		return shared.Paginated[insight.Insight]{}, err
	}
	return shared.NewPaginated(items, total, page, pageSize), nil
}

// Read loads a published insight by slug and counts the view once per
// visitor within the dedup window. Drafts are not found as far as the
// public site is concerned.
func (s *Service) Read(ctx context.Context, slug, visitorKey string) (*ReadResult, error) {
	ins, err := s.repo.FindBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if !ins.IsPublished() {
		return nil, shared.ErrNotFound
	}

	counted := false
	if visitorKey != "" {
		first, err := s.dedup.MarkViewed(ctx, visitorKey, "insight:"+ins.ID.String(), s.dedupTTL)
		if err != nil {
			// A broken dedup store must not take the article page down.
			s.logger.Warn("view dedup unavailable", zap.Error(err))
		} else if first {
			if err := s.repo.IncrementViewCount(ctx, ins.ID); err != nil {
				s.logger.Warn("view count increment failed", zap.Error(err))
			} else {
				ins.ViewCount++
				counted = true
			}
		}
	}

	return &ReadResult{Insight: ins, Counted: counted}, nil
}

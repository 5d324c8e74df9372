// Package feedback collects anonymous visitor submissions and the admin
// triage queue over them.
package feedback

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/cargolink/backend/internal/domain/feedback"
	"github.com/cargolink/backend/internal/domain/shared"
)

// SubmitInput carries one public feedback form submission.
type SubmitInput struct {
	Kind      string
	Message   string
	Email     string
	PageURL   string
	UserAgent string
}

// ListInput narrows the admin triage listing.
type ListInput struct {
	Page     int
	PageSize int
	Kind     string
	Status   string
}

// Service handles feedback submissions and triage.
type Service struct {
	repo   feedback.Repository
	logger *zap.Logger
}

// NewService creates a feedback service.
func NewService(repo feedback.Repository, logger *zap.Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

// Submit stores a visitor submission.
func (s *Service) Submit(ctx context.Context, input SubmitInput) (*feedback.Feedback, error) {
	fb, err := feedback.NewFeedback(feedback.Kind(input.Kind), input.Message, input.Email, input.PageURL, input.UserAgent)
	if err != nil {
		return nil, err
	}
	if err := s.repo.Save(ctx, fb); err != nil {
		return nil, err
	}

	s.logger.Info("feedback received", zap.String("kind", string(fb.Kind)))
	return fb, nil
}

// List returns submissions for the admin queue, newest first.
func (s *Service) List(ctx context.Context, input ListInput) (shared.Paginated[feedback.Feedback], error) {
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
		OrderBy:  "created_at",
		OrderDir: "desc",
		Filters:  map[string]interface{}{},
	}
	if input.Kind != "" {
		filter.Filters["kind"] = input.Kind
	}
	if input.Status != "" {
		filter.Filters["status"] = input.Status
	}

	items, err := s.repo.FindAll(ctx, filter)
	if err != nil {
		return shared.Paginated[feedback.Feedback]{}, err
	}
	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		return shared.Paginated[feedback.Feedback]{}, err
	}
	return shared.NewPaginated(items, total, page, pageSize), nil
}

// MarkReviewed moves one submission out of the triage queue.
func (s *Service) MarkReviewed(ctx context.Context, id uuid.UUID) (*feedback.Feedback, error) {
	fb, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	fb.MarkReviewed()
	if err := s.repo.Save(ctx, fb); err != nil {
		return nil, err
	}
	return fb, nil
}

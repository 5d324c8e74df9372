// Package directory exposes the compiled carrier directory for the
// tracking-links listing page.
package directory

import (
	"context"

	"github.com/cargolink/backend/internal/domain/carrier"
	"github.com/cargolink/backend/internal/domain/shared"
)

var ErrUnknownCategory = shared.NewDomainError("INVALID_CATEGORY", "Unknown carrier category")

// ListInput narrows the directory listing.
type ListInput struct {
	Search    string
	Category  string
	MajorOnly bool
}

// Service serves read-only directory queries.
type Service struct {
	dir *carrier.Directory
}

// NewService creates a directory service.
func NewService(dir *carrier.Directory) *Service {
	return &Service{dir: dir}
}

// List returns carriers matching the query, majors first.
func (s *Service) List(ctx context.Context, input ListInput) ([]carrier.Carrier, error) {
	q := carrier.Query{
		Search:    input.Search,
		MajorOnly: input.MajorOnly,
	}
	if input.Category != "" {
		cat := carrier.Category(input.Category)
		if !cat.IsValid() {
			return nil, ErrUnknownCategory
		}
		q.Category = cat
	}
	return carrier.FilterCarriers(s.dir.All(), q), nil
}

// Categories returns the closed category set in display order.
func (s *Service) Categories(ctx context.Context) []carrier.Category {
	return carrier.Categories()
}

// Find resolves one carrier by category and code.
func (s *Service) Find(ctx context.Context, category, code string) (*carrier.Carrier, error) {
	cat := carrier.Category(category)
	if !cat.IsValid() {
		return nil, ErrUnknownCategory
	}
	c, ok := s.dir.Find(cat, code)
	if !ok {
		return nil, shared.ErrNotFound
	}
	return c, nil
}

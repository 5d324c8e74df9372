package insight

import (
	"context"

	"github.com/google/uuid"

	"github.com/cargolink/backend/internal/domain/shared"
)

// Repository is the persistence port for insights.
type Repository interface {
	shared.Repository[Insight]
	FindBySlug(ctx context.Context, slug string) (*Insight, error)
	FindPublished(ctx context.Context, filter shared.Filter) ([]Insight, error)
	CountPublished(ctx context.Context, filter shared.Filter) (int64, error)
	IncrementViewCount(ctx context.Context, id uuid.UUID) error
}

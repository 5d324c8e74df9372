package community

import (
	"context"

	"github.com/google/uuid"

	"github.com/cargolink/backend/internal/domain/shared"
)

// PostRepository is the persistence port for board posts.
type PostRepository interface {
	shared.Repository[Post]
	IncrementViewCount(ctx context.Context, id uuid.UUID) error
}

// CommentRepository is the persistence port for comments.
type CommentRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Comment, error)
	FindByPost(ctx context.Context, postID uuid.UUID) ([]Comment, error)
	Save(ctx context.Context, comment *Comment) error
	Delete(ctx context.Context, id uuid.UUID) error
	CountByPost(ctx context.Context, postID uuid.UUID) (int64, error)
}

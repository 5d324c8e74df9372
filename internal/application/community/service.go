// Package community implements the anonymous board: password-owned posts
// and comments, no accounts.
package community

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/cargolink/backend/internal/domain/community"
	"github.com/cargolink/backend/internal/domain/shared"
	"github.com/cargolink/backend/internal/infrastructure/cache"
)

// Service handles board posts and comments.
type Service struct {
	posts    community.PostRepository
	comments community.CommentRepository
	dedup    cache.ViewDedupStore
	dedupTTL time.Duration
	logger   *zap.Logger
}

// NewService creates a community service.
func NewService(
	posts community.PostRepository,
	comments community.CommentRepository,
	dedup cache.ViewDedupStore,
	dedupTTL time.Duration,
	logger *zap.Logger,
) *Service {
	return &Service{
		posts:    posts,
		comments: comments,
		dedup:    dedup,
		dedupTTL: dedupTTL,
		logger:   logger,
	}
}

// CreatePost saves a new post. Only the bcrypt hash of the password is
// stored.
func (s *Service) CreatePost(ctx context.Context, input CreatePostInput) (*community.Post, error) {
	post, err := community.NewPost(input.Title, input.Content, input.Nickname, input.Password)
	if err != nil {
		return nil, err
	}
	if err := s.posts.Save(ctx, post); err != nil {
		return nil, err
	}

	s.logger.Info("post created", zap.String("post_id", post.ID.String()))
	return post, nil
}

// ListPosts returns the board listing, newest first.
func (s *Service) ListPosts(ctx context.Context, input ListInput) (shared.Paginated[community.Post], error) {
	page, pageSize := input.normalized()
	filter := shared.Filter{
		Page:     page,
		PageSize: pageSize,
		Search:   input.Search,
		OrderBy:  "created_at",
		OrderDir: "desc",
		Filters:  map[string]interface{}{},
	}

	items, err := s.posts.FindAll(ctx, filter)
	if err != nil {
		return shared.Paginated[community.Post]{}, err
	}
	total, err := s.posts.Count(ctx, filter)
	if err != nil {
		return shared.Paginated[community.Post]{}, err
	}
	return shared.NewPaginated(items, total, page, pageSize), nil
}

// GetPost loads one post and counts the view once per visitor within the
// dedup window.
func (s *Service) GetPost(ctx context.Context, id uuid.UUID, visitorKey string) (*community.Post, error) {
	post, err := s.posts.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if visitorKey != "" {
		first, err := s.dedup.MarkViewed(ctx, visitorKey, "post:"+post.ID.String(), s.dedupTTL)
		if err != nil {
			s.logger.Warn("view dedup unavailable", zap.Error(err))
		} else if first {
			if err := s.posts.IncrementViewCount(ctx, post.ID); err != nil {
				s.logger.Warn("view count increment failed", zap.Error(err))
			} else {
				post.ViewCount++
			}
		}
	}
	return post, nil
}

// UpdatePost edits a post after verifying the password.
func (s *Service) UpdatePost(ctx context.Context, id uuid.UUID, input UpdatePostInput) (*community.Post, error) {
	post, err := s.posts.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := post.VerifyPassword(input.Password); err != nil {
		return nil, err
	}
	if err := post.Update(input.Title, input.Content); err != nil {
		return nil, err
	}
	if err := s.posts.Save(ctx, post); err != nil {
		return nil, err
	}
	return post, nil
}

// DeletePost removes a post and its comments after verifying the password.
func (s *Service) DeletePost(ctx context.Context, id uuid.UUID, password string) error {
	post, err := s.posts.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if err := post.VerifyPassword(password); err != nil {
		return err
	}
	return s.posts.Delete(ctx, id)
}

// VerifyPostPassword checks ownership without changing anything, so the
// frontend can gate the edit form before submitting.
func (s *Service) VerifyPostPassword(ctx context.Context, id uuid.UUID, password string) error {
	post, err := s.posts.FindByID(ctx, id)
	if err != nil {
		return err
	}
	return post.VerifyPassword(password)
}

// AddComment saves a reply and refreshes the post's comment counter.
func (s *Service) AddComment(ctx context.Context, postID uuid.UUID, input CreateCommentInput) (*community.Comment, error) {
	post, err := s.posts.FindByID(ctx, postID)
	if err != nil {
		return nil, err
	}

	comment, err := community.NewComment(post.ID, input.Nickname, input.Content, input.Password)
	if err != nil {
		return nil, err
	}
	if err := s.comments.Save(ctx, comment); err != nil {
		return nil, err
	}

	if err := s.syncCommentCount(ctx, post); err != nil {
		s.logger.Warn("comment count sync failed", zap.Error(err))
	}
	return comment, nil
}

// ListComments returns a post's comments, oldest first.
func (s *Service) ListComments(ctx context.Context, postID uuid.UUID) ([]community.Comment, error) {
	if _, err := s.posts.FindByID(ctx, postID); err != nil {
		return nil, err
	}
	return s.comments.FindByPost(ctx, postID)
}

// DeleteComment removes a reply after verifying its password.
func (s *Service) DeleteComment(ctx context.Context, commentID uuid.UUID, password string) error {
	comment, err := s.comments.FindByID(ctx, commentID)
	if err != nil {
		return err
	}
	if err := comment.VerifyPassword(password); err != nil {
		return err
	}
	if err := s.comments.Delete(ctx, commentID); err != nil {
		return err
	}

	post, err := s.posts.FindByID(ctx, comment.PostID)
	if err != nil {
		return nil
	}
	if err := s.syncCommentCount(ctx, post); err != nil {
		s.logger.Warn("comment count sync failed", zap.Error(err))
	}
	return nil
}

// syncCommentCount re-counts instead of incrementing, so the counter heals
// itself after any missed update.
func (s *Service) syncCommentCount(ctx context.Context, post *community.Post) error {
	count, err := s.comments.CountByPost(ctx, post.ID)
	if err != nil {
		return err
	}
	post.CommentCount = int(count)
	return s.posts.Save(ctx, post)
}

package community

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/cargolink/backend/internal/domain/community"
	"github.com/cargolink/backend/internal/domain/shared"
	"github.com/cargolink/backend/internal/infrastructure/cache"
)

type MockPostRepository struct {
	mock.Mock
}

func (m *MockPostRepository) FindByID(ctx context.Context, id uuid.UUID) (*community.Post, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*community.Post), args.Error(1)
}

func (m *MockPostRepository) FindAll(ctx context.Context, filter shared.Filter) ([]community.Post, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]community.Post), args.Error(1)
}

func (m *MockPostRepository) Save(ctx context.Context, post *community.Post) error {
	args := m.Called(ctx, post)
	return args.Error(0)
}

func (m *MockPostRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockPostRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockPostRepository) IncrementViewCount(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockCommentRepository struct {
	mock.Mock
}

func (m *MockCommentRepository) FindByID(ctx context.Context, id uuid.UUID) (*community.Comment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*community.Comment), args.Error(1)
}

func (m *MockCommentRepository) FindByPost(ctx context.Context, postID uuid.UUID) ([]community.Comment, error) {
	args := m.Called(ctx, postID)
	return args.Get(0).([]community.Comment), args.Error(1)
}

func (m *MockCommentRepository) Save(ctx context.Context, comment *community.Comment) error {
	args := m.Called(ctx, comment)
	return args.Error(0)
}

func (m *MockCommentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockCommentRepository) CountByPost(ctx context.Context, postID uuid.UUID) (int64, error) {
	args := m.Called(ctx, postID)
	return args.Get(0).(int64), args.Error(1)
}

func newTestService(posts *MockPostRepository, comments *MockCommentRepository) *Service {
	return NewService(posts, comments, cache.NewInMemoryViewDedupStore(), time.Hour, zap.NewNop())
}

func testPost(t *testing.T, password string) *community.Post {
	t.Helper()
	post, err := community.NewPost("수출 초보 질문", "내용입니다", "포워더킴", password)
	require.NoError(t, err)
	return post
}

func TestService_CreatePost(t *testing.T) {
	ctx := context.Background()

	t.Run("creates and stores hash only", func(t *testing.T) {
		posts := new(MockPostRepository)
		svc := newTestService(posts, new(MockCommentRepository))

		posts.On("Save", ctx, mock.AnythingOfType("*community.Post")).Return(nil)

		post, err := svc.CreatePost(ctx, CreatePostInput{
			Title:    "수출 초보 질문",
			Content:  "내용",
			Nickname: "포워더킴",
			Password: "1234",
		})
		require.NoError(t, err)
		assert.NotEqual(t, "1234", post.PasswordHash)
		posts.AssertExpectations(t)
	})

	t.Run("short password never reaches the repository", func(t *testing.T) {
		posts := new(MockPostRepository)
		svc := newTestService(posts, new(MockCommentRepository))

		_, err := svc.CreatePost(ctx, CreatePostInput{
			Title: "t", Content: "c", Nickname: "n", Password: "12",
		})
		assert.ErrorIs(t, err, community.ErrShortPassword)
		posts.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})
}

func TestService_GetPost_ViewDedup(t *testing.T) {
	ctx := context.Background()
	posts := new(MockPostRepository)
	svc := newTestService(posts, new(MockCommentRepository))

	post := testPost(t, "1234")
	posts.On("FindByID", ctx, post.ID).Return(post, nil)
	posts.On("IncrementViewCount", ctx, post.ID).Return(nil).Once()

	got, err := svc.GetPost(ctx, post.ID, "visitor-a")
	require.NoError(t, err)
	assert.Equal(t, int64(1), got.ViewCount)

	// Same visitor again: no second increment.
	_, err = svc.GetPost(ctx, post.ID, "visitor-a")
	require.NoError(t, err)
	posts.AssertExpectations(t)
}

func TestService_UpdatePost(t *testing.T) {
	ctx := context.Background()

	t.Run("wrong password is a domain error", func(t *testing.T) {
		posts := new(MockPostRepository)
		svc := newTestService(posts, new(MockCommentRepository))

		post := testPost(t, "1234")
		posts.On("FindByID", ctx, post.ID).Return(post, nil)

		_, err := svc.UpdatePost(ctx, post.ID, UpdatePostInput{
			Title: "수정", Content: "수정", Password: "wrong",
		})
		assert.ErrorIs(t, err, shared.ErrWrongPassword)
		posts.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})

	t.Run("correct password updates", func(t *testing.T) {
		posts := new(MockPostRepository)
		svc := newTestService(posts, new(MockCommentRepository))

		post := testPost(t, "1234")
		posts.On("FindByID", ctx, post.ID).Return(post, nil)
		posts.On("Save", ctx, post).Return(nil)

		updated, err := svc.UpdatePost(ctx, post.ID, UpdatePostInput{
			Title: "수정된 제목", Content: "수정된 내용", Password: "1234",
		})
		require.NoError(t, err)
		assert.Equal(t, "수정된 제목", updated.Title)
	})
}

func TestService_DeletePost(t *testing.T) {
	ctx := context.Background()
	posts := new(MockPostRepository)
	svc := newTestService(posts, new(MockCommentRepository))

	post := testPost(t, "1234")
	posts.On("FindByID", ctx, post.ID).Return(post, nil)
	posts.On("Delete", ctx, post.ID).Return(nil)

	assert.ErrorIs(t, svc.DeletePost(ctx, post.ID, "nope"), shared.ErrWrongPassword)
	require.NoError(t, svc.DeletePost(ctx, post.ID, "1234"))
	posts.AssertExpectations(t)
}

func TestService_Comments(t *testing.T) {
	ctx := context.Background()

	t.Run("add comment refreshes counter", func(t *testing.T) {
		posts := new(MockPostRepository)
		comments := new(MockCommentRepository)
		svc := newTestService(posts, comments)

		post := testPost(t, "1234")
		posts.On("FindByID", ctx, post.ID).Return(post, nil)
		comments.On("Save", ctx, mock.AnythingOfType("*community.Comment")).Return(nil)
		comments.On("CountByPost", ctx, post.ID).Return(int64(1), nil)
		posts.On("Save", ctx, post).Return(nil)

		comment, err := svc.AddComment(ctx, post.ID, CreateCommentInput{
			Nickname: "관세사박", Content: "답변입니다", Password: "5678",
		})
		require.NoError(t, err)
		assert.Equal(t, post.ID, comment.PostID)
		assert.Equal(t, 1, post.CommentCount)
	})

	t.Run("delete comment needs its own password", func(t *testing.T) {
		posts := new(MockPostRepository)
		comments := new(MockCommentRepository)
		svc := newTestService(posts, comments)

		post := testPost(t, "1234")
		comment, err := community.NewComment(post.ID, "닉", "내용", "5678")
		require.NoError(t, err)

		comments.On("FindByID", ctx, comment.ID).Return(comment, nil)
		comments.On("Delete", ctx, comment.ID).Return(nil)
		comments.On("CountByPost", ctx, post.ID).Return(int64(0), nil)
		posts.On("FindByID", ctx, post.ID).Return(post, nil)
		posts.On("Save", ctx, post).Return(nil)

		assert.ErrorIs(t, svc.DeleteComment(ctx, comment.ID, "1234"), shared.ErrWrongPassword)
		require.NoError(t, svc.DeleteComment(ctx, comment.ID, "5678"))
		assert.Equal(t, 0, post.CommentCount)
	})

	t.Run("listing comments for a missing post fails", func(t *testing.T) {
		posts := new(MockPostRepository)
		comments := new(MockCommentRepository)
		svc := newTestService(posts, comments)

		id := uuid.New()
		posts.On("FindByID", ctx, id).Return(nil, shared.ErrNotFound)

		_, err := svc.ListComments(ctx, id)
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})
}

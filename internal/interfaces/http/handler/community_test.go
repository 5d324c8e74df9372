package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/cargolink/backend/internal/application/community"
	communitydomain "github.com/cargolink/backend/internal/domain/community"
	"github.com/cargolink/backend/internal/domain/shared"
	"github.com/cargolink/backend/internal/infrastructure/cache"
	"github.com/cargolink/backend/internal/interfaces/http/dto"
)

// in-memory repositories, enough to drive the handler end to end

type memPostRepo struct {
	posts map[uuid.UUID]*communitydomain.Post
}

func newMemPostRepo() *memPostRepo {
	return &memPostRepo{posts: make(map[uuid.UUID]*communitydomain.Post)}
}

func (r *memPostRepo) FindByID(_ context.Context, id uuid.UUID) (*communitydomain.Post, error) {
	p, ok := r.posts[id]
	if !ok {
		return nil, shared.ErrNotFound
	}
	cp := *p
	return &cp, nil
}

func (r *memPostRepo) FindAll(_ context.Context, _ shared.Filter) ([]communitydomain.Post, error) {
	out := make([]communitydomain.Post, 0, len(r.posts))
	for _, p := range r.posts {
		out = append(out, *p)
	}
	return out, nil
}

func (r *memPostRepo) Save(_ context.Context, p *communitydomain.Post) error {
	cp := *p
	r.posts[p.ID] = &cp
	return nil
}

func (r *memPostRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := r.posts[id]; !ok {
		return shared.ErrNotFound
	}
	delete(r.posts, id)
	return nil
}

func (r *memPostRepo) Count(_ context.Context, _ shared.Filter) (int64, error) {
	return int64(len(r.posts)), nil
}

func (r *memPostRepo) IncrementViewCount(_ context.Context, id uuid.UUID) error {
	p, ok := r.posts[id]
	if !ok {
		return shared.ErrNotFound
	}
	p.ViewCount++
	return nil
}

type memCommentRepo struct {
	comments map[uuid.UUID]*communitydomain.Comment
}

func newMemCommentRepo() *memCommentRepo {
	return &memCommentRepo{comments: make(map[uuid.UUID]*communitydomain.Comment)}
}

func (r *memCommentRepo) FindByID(_ context.Context, id uuid.UUID) (*communitydomain.Comment, error) {
	cm, ok := r.comments[id]
	if !ok {
		return nil, shared.ErrNotFound
	}
	cp := *cm
	return &cp, nil
}

func (r *memCommentRepo) FindByPost(_ context.Context, postID uuid.UUID) ([]communitydomain.Comment, error) {
	var out []communitydomain.Comment
	for _, cm := range r.comments {
		if cm.PostID == postID {
			out = append(out, *cm)
		}
	}
	return out, nil
}

func (r *memCommentRepo) Save(_ context.Context, cm *communitydomain.Comment) error {
	cp := *cm
	r.comments[cm.ID] = &cp
	return nil
}

func (r *memCommentRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := r.comments[id]; !ok {
		return shared.ErrNotFound
	}
	delete(r.comments, id)
	return nil
}

func (r *memCommentRepo) CountByPost(_ context.Context, postID uuid.UUID) (int64, error) {
	var n int64
	for _, cm := range r.comments {
		if cm.PostID == postID {
			n++
		}
	}
	return n, nil
}

func newCommunityRouter(t *testing.T) (*gin.Engine, *memPostRepo) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	posts := newMemPostRepo()
	comments := newMemCommentRepo()
	dedup := cache.NewInMemoryViewDedupStore()
	t.Cleanup(func() { _ = dedup.Close() })

	service := community.NewService(posts, comments, dedup, time.Hour, zap.NewNop())
	h := NewCommunityHandler(service)

	router := gin.New()
	router.POST("/community/posts", h.CreatePost)
	router.GET("/community/posts/:id", h.GetPost)
	router.POST("/community/posts/:id/verify", h.VerifyPost)
	router.DELETE("/community/posts/:id", h.DeletePost)
	return router, posts
}

func TestCommunityHandler_CreatePost(t *testing.T) {
	router, _ := newCommunityRouter(t)

	w := postJSON(t, router, "/community/posts", gin.H{
		"title":    "LCL 운임 문의",
		"content":  "부산에서 함부르크까지 LCL 견적이 궁금합니다",
		"nickname": "무역초보",
		"password": "pass1234",
	})

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp dto.Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)

	// the hash never appears in responses
	assert.NotContains(t, w.Body.String(), "PasswordHash")
	assert.NotContains(t, w.Body.String(), "pass1234")
}

func TestCommunityHandler_CreatePost_ShortPassword(t *testing.T) {
	router, _ := newCommunityRouter(t)

	w := postJSON(t, router, "/community/posts", gin.H{
		"title":    "t",
		"content":  "c",
		"nickname": "n",
		"password": "abc",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCommunityHandler_GetPost_InvalidID(t *testing.T) {
	router, _ := newCommunityRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/community/posts/not-a-uuid", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCommunityHandler_VerifyPost_WrongPassword(t *testing.T) {
	router, posts := newCommunityRouter(t)

	post, err := communitydomain.NewPost("제목", "내용", "닉네임", "correct-pw")
	require.NoError(t, err)
	require.NoError(t, posts.Save(context.Background(), post))

	w := postJSON(t, router, "/community/posts/"+post.ID.String()+"/verify", gin.H{
		"password": "wrong-pw",
	})

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Contains(t, w.Body.String(), "WRONG_PASSWORD")
}

func TestCommunityHandler_VerifyPost_Correct(t *testing.T) {
	router, posts := newCommunityRouter(t)

	post, err := communitydomain.NewPost("제목", "내용", "닉네임", "correct-pw")
	require.NoError(t, err)
	require.NoError(t, posts.Save(context.Background(), post))

	w := postJSON(t, router, "/community/posts/"+post.ID.String()+"/verify", gin.H{
		"password": "correct-pw",
	})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "verified")
}

func TestCommunityHandler_DeletePost(t *testing.T) {
	router, posts := newCommunityRouter(t)

	post, err := communitydomain.NewPost("제목", "내용", "닉네임", "correct-pw")
	require.NoError(t, err)
	require.NoError(t, posts.Save(context.Background(), post))

	body, _ := json.Marshal(gin.H{"password": "correct-pw"})
	req := httptest.NewRequest(http.MethodDelete, "/community/posts/"+post.ID.String(),
		bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)

	_, err = posts.FindByID(context.Background(), post.ID)
	assert.ErrorIs(t, err, shared.ErrNotFound)
}

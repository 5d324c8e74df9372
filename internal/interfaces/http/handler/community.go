package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/cargolink/backend/internal/application/community"
	"github.com/cargolink/backend/internal/interfaces/http/dto"
)

// CommunityHandler serves the anonymous board.
type CommunityHandler struct {
	BaseHandler
	service *community.Service
}

// NewCommunityHandler creates a community handler.
func NewCommunityHandler(service *community.Service) *CommunityHandler {
	return &CommunityHandler{service: service}
}

// CreatePostRequest carries the anonymous write form.
type CreatePostRequest struct {
	Title    string `json:"title" binding:"required,max=200"`
	Content  string `json:"content" binding:"required"`
	Nickname string `json:"nickname" binding:"required,max=40"`
	Password string `json:"password" binding:"required,min=4"`
}

// UpdatePostRequest edits a post, gated by its password.
type UpdatePostRequest struct {
	Title    string `json:"title" binding:"required,max=200"`
	Content  string `json:"content" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// PasswordRequest carries only the ownership password.
type PasswordRequest struct {
	Password string `json:"password" binding:"required"`
}

// CreateCommentRequest carries a new reply.
type CreateCommentRequest struct {
	Nickname string `json:"nickname" binding:"required,max=40"`
	Content  string `json:"content" binding:"required,max=1000"`
	Password string `json:"password" binding:"required,min=4"`
}

// ListPosts returns the board listing.
// GET /api/v1/community/posts
func (h *CommunityHandler) ListPosts(c *gin.Context) {
	var req dto.ListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		h.BadRequest(c, "Invalid query parameters")
		return
	}

	page, err := h.service.ListPosts(c.Request.Context(), community.ListInput{
		Page:     req.Page,
		PageSize: req.PageSize,
		Search:   req.Search,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.SuccessWithMeta(c, page.Items, page.Total, page.Page, page.PageSize)
}

// GetPost returns one post and counts the view.
// GET /api/v1/community/posts/:id
func (h *CommunityHandler) GetPost(c *gin.Context) {
	id, ok := h.bindID(c)
	if !ok {
		return
	}
	post, err := h.service.GetPost(c.Request.Context(), id, visitorKey(c))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, post)
}

// CreatePost saves a new post.
// POST /api/v1/community/posts
func (h *CommunityHandler) CreatePost(c *gin.Context) {
	var req CreatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Title, content, nickname and password are required")
		return
	}

	post, err := h.service.CreatePost(c.Request.Context(), community.CreatePostInput{
		Title:    req.Title,
		Content:  req.Content,
		Nickname: req.Nickname,
		Password: req.Password,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, post)
}

// VerifyPost checks ownership so the frontend can open the edit form.
// POST /api/v1/community/posts/:id/verify
func (h *CommunityHandler) VerifyPost(c *gin.Context) {
	id, ok := h.bindID(c)
	if !ok {
		return
	}
	var req PasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Password is required")
		return
	}

	if err := h.service.VerifyPostPassword(c.Request.Context(), id, req.Password); err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, gin.H{"verified": true})
}

// UpdatePost edits a post after password verification.
// PUT /api/v1/community/posts/:id
func (h *CommunityHandler) UpdatePost(c *gin.Context) {
	id, ok := h.bindID(c)
	if !ok {
		return
	}
	var req UpdatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Title, content and password are required")
		return
	}

	post, err := h.service.UpdatePost(c.Request.Context(), id, community.UpdatePostInput{
		Title:    req.Title,
		Content:  req.Content,
		Password: req.Password,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, post)
}

// DeletePost removes a post and its comments after password verification.
// DELETE /api/v1/community/posts/:id
func (h *CommunityHandler) DeletePost(c *gin.Context) {
	id, ok := h.bindID(c)
	if !ok {
		return
	}
	var req PasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Password is required")
		return
	}

	if err := h.service.DeletePost(c.Request.Context(), id, req.Password); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}

// ListComments returns a post's comments, oldest first.
// GET /api/v1/community/posts/:id/comments
func (h *CommunityHandler) ListComments(c *gin.Context) {
	id, ok := h.bindID(c)
	if !ok {
		return
	}
	comments, err := h.service.ListComments(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, gin.H{"comments": comments, "count": len(comments)})
}

// CreateComment saves a reply.
// POST /api/v1/community/posts/:id/comments
func (h *CommunityHandler) CreateComment(c *gin.Context) {
	id, ok := h.bindID(c)
	if !ok {
		return
	}
	var req CreateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Nickname, content and password are required")
		return
	}

	comment, err := h.service.AddComment(c.Request.Context(), id, community.CreateCommentInput{
		Nickname: req.Nickname,
		Content:  req.Content,
		Password: req.Password,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, comment)
}

// DeleteComment removes a reply after password verification.
// DELETE /api/v1/community/comments/:id
func (h *CommunityHandler) DeleteComment(c *gin.Context) {
	id, ok := h.bindID(c)
	if !ok {
		return
	}
	var req PasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Password is required")
		return
	}

	if err := h.service.DeleteComment(c.Request.Context(), id, req.Password); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}

func (h *CommunityHandler) bindID(c *gin.Context) (uuid.UUID, bool) {
	var req dto.IDRequest
	if err := c.ShouldBindUri(&req); err != nil {
		h.BadRequest(c, "Invalid ID")
		return uuid.Nil, false
	}
	id, err := uuid.Parse(req.ID)
	if err != nil {
		h.BadRequest(c, "Invalid ID")
		return uuid.Nil, false
	}
	return id, true
}

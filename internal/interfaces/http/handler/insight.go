package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/cargolink/backend/internal/application/insight"
	"github.com/cargolink/backend/internal/interfaces/http/dto"
)

// InsightHandler serves the public insights pages and the editor CMS.
type InsightHandler struct {
	BaseHandler
	service *insight.Service
}

// NewInsightHandler creates an insight handler.
func NewInsightHandler(service *insight.Service) *InsightHandler {
	return &InsightHandler{service: service}
}

// InsightRequest carries the editor form for create and update.
type InsightRequest struct {
	Title    string `json:"title" binding:"required,max=200"`
	Excerpt  string `json:"excerpt" binding:"max=500"`
	Content  string `json:"content" binding:"required"`
	Category string `json:"category" binding:"required,oneof=market regulation guide news"`
	Tags     string `json:"tags" binding:"max=300"`
	CoverURL string `json:"cover_url" binding:"omitempty,url,max=500"`
}

type listInsightsRequest struct {
	dto.ListRequest
	Category string `form:"category"`
	Status   string `form:"status" binding:"omitempty,oneof=draft published"`
}

// ListPublished returns published insights for the public listing page.
// GET /api/v1/insights
func (h *InsightHandler) ListPublished(c *gin.Context) {
	var req listInsightsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		h.BadRequest(c, "Invalid query parameters")
		return
	}

	page, err := h.service.ListPublished(c.Request.Context(), insight.ListInput{
		Page:     req.Page,
		PageSize: req.PageSize,
		Search:   req.Search,
		Category: req.Category,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.SuccessWithMeta(c, page.Items, page.Total, page.Page, page.PageSize)
}

// Read returns one published insight by slug and counts the view.
// GET /api/v1/insights/:slug
func (h *InsightHandler) Read(c *gin.Context) {
	result, err := h.service.Read(c.Request.Context(), c.Param("slug"), visitorKey(c))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, result.Insight)
}

// List returns all insights, drafts included, for the editor dashboard.
// GET /api/v1/admin/insights
func (h *InsightHandler) List(c *gin.Context) {
	var req listInsightsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		h.BadRequest(c, "Invalid query parameters")
		return
	}

	page, err := h.service.List(c.Request.Context(), insight.ListInput{
		Page:     req.Page,
		PageSize: req.PageSize,
		Search:   req.Search,
		Category: req.Category,
		Status:   req.Status,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.SuccessWithMeta(c, page.Items, page.Total, page.Page, page.PageSize)
}

// Get returns one insight by ID for editing.
// GET /api/v1/admin/insights/:id
func (h *InsightHandler) Get(c *gin.Context) {
	id, ok := h.bindID(c)
	if !ok {
		return
	}
	ins, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, ins)
}

// Create saves a new draft.
// POST /api/v1/admin/insights
func (h *InsightHandler) Create(c *gin.Context) {
	var req InsightRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid insight payload")
		return
	}

	ins, err := h.service.Create(c.Request.Context(), insight.CreateInput{
		Title:    req.Title,
		Excerpt:  req.Excerpt,
		Content:  req.Content,
		Category: req.Category,
		Tags:     req.Tags,
		CoverURL: req.CoverURL,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, ins)
}

// Update edits an insight.
// PUT /api/v1/admin/insights/:id
func (h *InsightHandler) Update(c *gin.Context) {
	id, ok := h.bindID(c)
	if !ok {
		return
	}
	var req InsightRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid insight payload")
		return
	}

	ins, err := h.service.Update(c.Request.Context(), id, insight.UpdateInput{
		Title:    req.Title,
		Excerpt:  req.Excerpt,
		Content:  req.Content,
		Category: req.Category,
		Tags:     req.Tags,
		CoverURL: req.CoverURL,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, ins)
}

// Publish makes an insight publicly visible.
// POST /api/v1/admin/insights/:id/publish
func (h *InsightHandler) Publish(c *gin.Context) {
	id, ok := h.bindID(c)
	if !ok {
		return
	}
	ins, err := h.service.Publish(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, ins)
}

// Unpublish pulls an insight back to draft.
// POST /api/v1/admin/insights/:id/unpublish
func (h *InsightHandler) Unpublish(c *gin.Context) {
	id, ok := h.bindID(c)
	if !ok {
		return
	}
	ins, err := h.service.Unpublish(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, ins)
}

// Delete removes an insight.
// DELETE /api/v1/admin/insights/:id
func (h *InsightHandler) Delete(c *gin.Context) {
	id, ok := h.bindID(c)
	if !ok {
		return
	}
	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}

func (h *InsightHandler) bindID(c *gin.Context) (uuid.UUID, bool) {
	var req dto.IDRequest
	if err := c.ShouldBindUri(&req); err != nil {
		h.BadRequest(c, "Invalid insight ID")
		return uuid.Nil, false
	}
	id, err := uuid.Parse(req.ID)
	if err != nil {
		h.BadRequest(c, "Invalid insight ID")
		return uuid.Nil, false
	}
	return id, true
}

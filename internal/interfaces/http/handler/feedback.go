package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/cargolink/backend/internal/application/feedback"
	"github.com/cargolink/backend/internal/interfaces/http/dto"
)

// FeedbackHandler serves the public feedback form and the admin queue.
type FeedbackHandler struct {
	BaseHandler
	service *feedback.Service
}

// NewFeedbackHandler creates a feedback handler.
func NewFeedbackHandler(service *feedback.Service) *FeedbackHandler {
	return &FeedbackHandler{service: service}
}

// SubmitRequest carries one public submission.
type SubmitRequest struct {
	Kind    string `json:"kind" binding:"required,oneof=suggestion bug carrier_request other"`
	Message string `json:"message" binding:"required,max=2000"`
	Email   string `json:"email" binding:"omitempty,email"`
	PageURL string `json:"page_url" binding:"max=500"`
}

type listFeedbackRequest struct {
	dto.ListRequest
	Kind   string `form:"kind" binding:"omitempty,oneof=suggestion bug carrier_request other"`
	Status string `form:"status" binding:"omitempty,oneof=new reviewed"`
}

// Submit stores a visitor submission.
// POST /api/v1/feedback
func (h *FeedbackHandler) Submit(c *gin.Context) {
	var req SubmitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Kind and message are required")
		return
	}

	fb, err := h.service.Submit(c.Request.Context(), feedback.SubmitInput{
		Kind:      req.Kind,
		Message:   req.Message,
		Email:     req.Email,
		PageURL:   req.PageURL,
		UserAgent: c.Request.UserAgent(),
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, gin.H{"id": fb.ID, "status": fb.Status})
}

// List returns submissions for the admin queue.
// GET /api/v1/admin/feedback
func (h *FeedbackHandler) List(c *gin.Context) {
	var req listFeedbackRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		h.BadRequest(c, "Invalid query parameters")
		return
	}

	page, err := h.service.List(c.Request.Context(), feedback.ListInput{
		Page:     req.Page,
		PageSize: req.PageSize,
		Kind:     req.Kind,
		Status:   req.Status,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.SuccessWithMeta(c, page.Items, page.Total, page.Page, page.PageSize)
}

// MarkReviewed moves one submission out of the triage queue.
// POST /api/v1/admin/feedback/:id/review
func (h *FeedbackHandler) MarkReviewed(c *gin.Context) {
	var idReq dto.IDRequest
	if err := c.ShouldBindUri(&idReq); err != nil {
		h.BadRequest(c, "Invalid feedback ID")
		return
	}
	id, err := uuid.Parse(idReq.ID)
	if err != nil {
		h.BadRequest(c, "Invalid feedback ID")
		return
	}

	fb, err := h.service.MarkReviewed(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, fb)
}

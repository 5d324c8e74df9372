package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/cargolink/backend/internal/application/quiz"
	"github.com/cargolink/backend/internal/interfaces/http/dto"
)

// QuizHandler serves the Trade-MBTI quiz.
type QuizHandler struct {
	BaseHandler
	service *quiz.Service
}

// NewQuizHandler creates a quiz handler.
func NewQuizHandler(service *quiz.Service) *QuizHandler {
	return &QuizHandler{service: service}
}

// Questions returns the full question bank.
// GET /api/v1/quiz/questions
func (h *QuizHandler) Questions(c *gin.Context) {
	h.Success(c, gin.H{"questions": h.service.Questions(c.Request.Context())})
}

// ScoreRequest carries one answer index per question, in bank order.
type ScoreRequest struct {
	Answers []int `json:"answers" binding:"required"`
}

// Score evaluates a completed sheet. Results are computed, returned, and
// never stored.
// POST /api/v1/quiz/score
func (h *QuizHandler) Score(c *gin.Context) {
	var req ScoreRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, dto.NewErrorResponseWithRequestID(dto.ErrCodeInvalidJSON, "Invalid request body", getRequestID(c)))
		return
	}

	result, err := h.service.Score(c.Request.Context(), req.Answers)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, gin.H{
		"result":      result,
		"share_param": "type=" + result.Profile.Code,
	})
}

// Profiles returns all eleven profiles.
// GET /api/v1/quiz/profiles
func (h *QuizHandler) Profiles(c *gin.Context) {
	h.Success(c, gin.H{"profiles": h.service.Profiles(c.Request.Context())})
}

// Profile resolves a shared result link.
// GET /api/v1/quiz/profiles/:code
func (h *QuizHandler) Profile(c *gin.Context) {
	p, err := h.service.Profile(c.Request.Context(), c.Param("code"))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, p)
}

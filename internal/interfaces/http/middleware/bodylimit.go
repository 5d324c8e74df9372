package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/cargolink/backend/internal/interfaces/http/dto"
)

// BodyLimit rejects oversized request bodies. Nothing on this API uploads
// files, so the limit can stay small.
func BodyLimit(maxBytes int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.ContentLength > maxBytes {
			c.AbortWithStatusJSON(http.StatusRequestEntityTooLarge,
				dto.NewErrorResponse(dto.ErrCodeBodyTooLarge, "Request body exceeds maximum allowed size"))
			return
		}
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes)
		c.Next()
	}
}

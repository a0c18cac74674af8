package intake

import (
	"errors"
	"net/http"

	"memberdesk/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(v1 *gin.RouterGroup) {
	v1.POST("/submit-member", h.Submit)
}

func (h *Handler) Submit(c *gin.Context) {
	var req SubmitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "All required fields must be filled")
		return
	}

	_, err := h.service.Submit(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidSubmission):
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "All required fields must be filled")
		case errors.Is(err, ErrDuplicatePending):
			response.Error(c, http.StatusBadRequest, "DUPLICATE_PENDING", "This email is already awaiting approval")
		case errors.Is(err, ErrDuplicateMember):
			response.Error(c, http.StatusBadRequest, "DUPLICATE_MEMBER", "This email is already registered")
		default:
			response.Error(c, http.StatusInternalServerError, "STORAGE_ERROR", "Failed to save submission")
		}
		return
	}

	c.String(http.StatusOK, "Submission received successfully")
}

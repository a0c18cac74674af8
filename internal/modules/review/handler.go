package review

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

// RegisterRoutes expects a group already wrapped in JWT + admin-role
// middleware.
func (h *Handler) RegisterRoutes(admin *gin.RouterGroup) {
	admin.GET("/submissions", h.ListSubmissions)
	admin.POST("/approve", h.Approve)
	admin.POST("/reject", h.Reject)
	admin.GET("/members", h.ListMembers)
}

func (h *Handler) ListSubmissions(c *gin.Context) {
	subs, err := h.service.ListSubmissions(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "STORAGE_ERROR", "Failed to fetch submissions")
		return
	}
	c.JSON(http.StatusOK, subs)
}

func (h *Handler) Approve(c *gin.Context) {
	var req DecisionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Submission id is required")
		return
	}

	if _, err := h.service.Approve(c.Request.Context(), req.ID); err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Submission not found")
		case errors.Is(err, ErrDuplicateMember):
			response.Error(c, http.StatusBadRequest, "DUPLICATE_MEMBER", "This email address is already registered")
		default:
			response.Error(c, http.StatusInternalServerError, "STORAGE_ERROR", "Failed to approve submission")
		}
		return
	}

	c.String(http.StatusOK, "Submission approved successfully")
}

func (h *Handler) Reject(c *gin.Context) {
	var req DecisionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Submission id is required")
		return
	}

	if err := h.service.Reject(c.Request.Context(), req.ID); err != nil {
		if errors.Is(err, ErrNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Submission not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "STORAGE_ERROR", "Failed to reject submission")
		return
	}

	c.String(http.StatusOK, "Submission rejected")
}

func (h *Handler) ListMembers(c *gin.Context) {
	members, err := h.service.ListMembers(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "STORAGE_ERROR", "Failed to fetch members")
		return
	}
	c.JSON(http.StatusOK, members)
}

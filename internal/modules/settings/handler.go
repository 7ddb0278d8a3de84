package settings

import (
	"errors"
	"net/http"

	"aircontrol/internal/domain"
	"aircontrol/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	s := rg.Group("/settings")
	{
		s.GET("", h.Get)
		s.PUT("", h.Update)
	}
}

func (h *Handler) Get(c *gin.Context) {
	userIDAny, exists := c.Get("user_id")
	if !exists {
		response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Authentication required")
		return
	}

	prefs, err := h.service.Get(c.Request.Context(), userIDAny.(int64))
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, prefs)
}

func (h *Handler) Update(c *gin.Context) {
	userIDAny, exists := c.Get("user_id")
	if !exists {
		response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Authentication required")
		return
	}

	var req domain.DisplaySettings
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	prefs, err := h.service.Update(c.Request.Context(), userIDAny.(int64), req)
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, prefs)
}

func handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrBadViewMode),
		errors.Is(err, ErrBadUpcomingDays),
		errors.Is(err, ErrBadFontSize):
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
	default:
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "An internal error occurred")
	}
}

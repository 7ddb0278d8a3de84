package reports

import (
	"net/http"
	"strconv"

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
	rg.GET("/reports/dashboard", h.Dashboard)
}

func (h *Handler) Dashboard(c *gin.Context) {
	year := 0
	if raw := c.Query("year"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "year must be a number")
			return
		}
		year = parsed
	}

	d, err := h.service.Dashboard(c.Request.Context(), year)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to build dashboard")
		return
	}
	response.Success(c, http.StatusOK, d)
}

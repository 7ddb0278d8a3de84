package planner

import (
	"errors"
	"net/http"

	"aircontrol/internal/llm"
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
	p := rg.Group("/planner")
	{
		p.POST("/reschedule", h.Reschedule)
		p.POST("/plan-month", h.PlanMonth)
	}
}

func (h *Handler) Reschedule(c *gin.Context) {
	var req RescheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	resp, err := h.service.Reschedule(c.Request.Context(), req)
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp)
}

func (h *Handler) PlanMonth(c *gin.Context) {
	var req PlanMonthRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	resp, err := h.service.PlanMonth(c.Request.Context(), req)
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp)
}

func handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrNoPeriods), errors.Is(err, ErrBadMonthRef):
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
	case errors.Is(err, llm.ErrMissingAPIKey):
		response.Error(c, http.StatusServiceUnavailable, "ORACLE_ERROR", "Suggestion service is not configured")
	case errors.Is(err, llm.ErrTimeout), errors.Is(err, llm.ErrUnavailable):
		response.Error(c, http.StatusBadGateway, "ORACLE_ERROR", "Suggestion service is unavailable, try again")
	case errors.Is(err, llm.ErrInvalidOutput):
		response.Error(c, http.StatusBadGateway, "ORACLE_ERROR", "Suggestion service returned an unusable answer")
	default:
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "An internal error occurred")
	}
}

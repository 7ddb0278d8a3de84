package notifications

import (
	"io"
	"net/http"
	"strconv"

	"aircontrol/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

const maxReminderPayload = 64 * 1024

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	n := rg.Group("/notifications")
	{
		n.GET("/overdue", h.Overdue)
		n.GET("/upcoming", h.Upcoming)
		n.GET("/reminders", h.ListReminders)
		n.POST("/reminders", h.StoreReminder)
	}
}

func (h *Handler) Overdue(c *gin.Context) {
	alerts, err := h.service.Overdue(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to list overdue periods")
		return
	}
	response.Success(c, http.StatusOK, alerts)
}

func (h *Handler) Upcoming(c *gin.Context) {
	days := 0
	if raw := c.Query("days"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "days must be a number")
			return
		}
		days = parsed
	}

	alerts, err := h.service.Upcoming(c.Request.Context(), days)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to list upcoming periods")
		return
	}
	response.Success(c, http.StatusOK, alerts)
}

// StoreReminder persists the raw JSON body as a reminder row. The payload
// is free-form, the client decides what a reminder looks like.
func (h *Handler) StoreReminder(c *gin.Context) {
	payload, err := io.ReadAll(io.LimitReader(c.Request.Body, maxReminderPayload))
	if err != nil || len(payload) == 0 {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Request body is required")
		return
	}

	reminder, err := h.service.StoreReminder(c.Request.Context(), payload)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to store reminder")
		return
	}
	response.Success(c, http.StatusCreated, reminder)
}

func (h *Handler) ListReminders(c *gin.Context) {
	reminders, err := h.service.ListReminders(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to list reminders")
		return
	}
	response.Success(c, http.StatusOK, reminders)
}

package catalog

import (
	"errors"
	"net/http"

	"aircontrol/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

type modelRequest struct {
	Name     string `json:"name" binding:"required"`
	Category string `json:"category"`
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	m := rg.Group("/equipment-models")
	{
		m.GET("", h.List)
		m.POST("", h.Create)
		m.PUT("/:id", h.Update)
		m.DELETE("/:id", h.Delete)
	}
}

func (h *Handler) List(c *gin.Context) {
	list, err := h.service.List(c.Request.Context())
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, list)
}

func (h *Handler) Create(c *gin.Context) {
	var req modelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	m, err := h.service.Create(c.Request.Context(), req.Name, req.Category)
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, m)
}

func (h *Handler) Update(c *gin.Context) {
	var req modelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	m, err := h.service.Update(c.Request.Context(), c.Param("id"), req.Name, req.Category)
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, m)
}

func (h *Handler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"deleted": true})
}

func handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrNameTaken):
		response.Error(c, http.StatusConflict, "DUPLICATE", err.Error())
	case errors.Is(err, ErrNameRequired):
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
	default:
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "An internal error occurred")
	}
}

package contracts

import (
	"errors"
	"net/http"

	"aircontrol/internal/pkg/response"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	c := rg.Group("/contracts")
	{
		c.GET("", h.List)
		c.POST("", h.Create)
		c.GET("/:id", h.Get)
		c.PATCH("/:id", h.Update)
		c.POST("/:id/archive", h.Archive)
		c.POST("/:id/restore", h.Restore)

		c.POST("/:id/periods", h.AddPeriod)
		c.DELETE("/:id/periods/:periodId", h.RemovePeriod)
		c.PUT("/:id/periods/:periodId/dates", h.EditDates)
		c.POST("/:id/periods/:periodId/engineers", h.ToggleEngineer)
		c.POST("/:id/periods/:periodId/equipment", h.ToggleEquipment)
		c.POST("/:id/periods/:periodId/finalize", h.Finalize)
		c.POST("/:id/periods/:periodId/unfinalize", h.Unfinalize)

		c.POST("/:id/equipment", h.AddEquipment)
		c.PUT("/:id/equipment/:equipmentId", h.UpdateEquipment)
		c.POST("/:id/equipment/:equipmentId/reports", h.AddReport)
		c.PUT("/:id/equipment/:equipmentId/reports/:reportId", h.UpdateReport)
	}
}

func (h *Handler) List(c *gin.Context) {
	includeArchived := c.Query("archived") == "true"
	views, err := h.service.List(c.Request.Context(), includeArchived)
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, views)
}

func (h *Handler) Get(c *gin.Context) {
	view, err := h.service.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, view)
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateContractRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	contract, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, contract)
}

func (h *Handler) Update(c *gin.Context) {
	var req UpdateContractRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	contract, err := h.service.UpdateFields(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, contract)
}

func (h *Handler) Archive(c *gin.Context) {
	contract, err := h.service.Archive(c.Request.Context(), c.Param("id"))
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, contract)
}

func (h *Handler) Restore(c *gin.Context) {
	contract, err := h.service.Restore(c.Request.Context(), c.Param("id"))
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, contract)
}

func (h *Handler) AddPeriod(c *gin.Context) {
	contract, err := h.service.AddPeriod(c.Request.Context(), c.Param("id"))
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, contract)
}

func (h *Handler) RemovePeriod(c *gin.Context) {
	contract, err := h.service.RemovePeriod(c.Request.Context(), c.Param("id"), c.Param("periodId"))
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, contract)
}

func (h *Handler) EditDates(c *gin.Context) {
	var req EditDatesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	contract, err := h.service.EditPeriodDates(c.Request.Context(), c.Param("id"), c.Param("periodId"), req)
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, contract)
}

func (h *Handler) ToggleEngineer(c *gin.Context) {
	var req ToggleEngineerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	contract, err := h.service.ToggleEngineer(c.Request.Context(), c.Param("id"), c.Param("periodId"), req.EngineerID)
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, contract)
}

func (h *Handler) ToggleEquipment(c *gin.Context) {
	var req ToggleEquipmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	contract, err := h.service.ToggleEquipment(c.Request.Context(), c.Param("id"), c.Param("periodId"), req.EquipmentID)
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, contract)
}

func (h *Handler) Finalize(c *gin.Context) {
	var req FinalizeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	contract, err := h.service.FinalizePeriod(c.Request.Context(), c.Param("id"), c.Param("periodId"), req)
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, contract)
}

func (h *Handler) Unfinalize(c *gin.Context) {
	contract, err := h.service.UnfinalizePeriod(c.Request.Context(), c.Param("id"), c.Param("periodId"))
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, contract)
}

func (h *Handler) AddEquipment(c *gin.Context) {
	var req EquipmentInput
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	contract, err := h.service.AddEquipment(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, contract)
}

func (h *Handler) UpdateEquipment(c *gin.Context) {
	var req EquipmentInput
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	contract, err := h.service.UpdateEquipment(c.Request.Context(), c.Param("id"), c.Param("equipmentId"), req)
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, contract)
}

func (h *Handler) AddReport(c *gin.Context) {
	var req ReportInput
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	contract, err := h.service.AddReport(c.Request.Context(), c.Param("id"), c.Param("equipmentId"), req)
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, contract)
}

func (h *Handler) UpdateReport(c *gin.Context) {
	var req ReportInput
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	contract, err := h.service.UpdateReport(c.Request.Context(), c.Param("id"), c.Param("equipmentId"), c.Param("reportId"), req)
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, contract)
}

func handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Contract not found")
	case errors.Is(err, ErrPeriodNotFound),
		errors.Is(err, ErrEquipmentNotFound),
		errors.Is(err, ErrReportNotFound),
		errors.Is(err, ErrEngineerNotFound):
		response.Error(c, http.StatusNotFound, "NOT_FOUND", err.Error())
	case errors.Is(err, ErrContractNumberTaken):
		response.Error(c, http.StatusConflict, "DUPLICATE", err.Error())
	case errors.Is(err, ErrValidation),
		errors.Is(err, ErrDatesRequired),
		errors.Is(err, ErrDatesOutOfOrder),
		errors.Is(err, ErrEngineersRequired),
		errors.Is(err, ErrLastPeriod),
		errors.Is(err, ErrArchiveActive):
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
	default:
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "An internal error occurred")
	}
}

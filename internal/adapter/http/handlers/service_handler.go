package handlers

import (
	"errors"
	"net/http"
	"strconv"

	request "controlserv/internal/adapter/http/dto/request"
	response "controlserv/internal/adapter/http/dto/response"
	"controlserv/internal/domain/entities"
	"controlserv/internal/usecase"
	"controlserv/internal/usecase/interfaces"
	"controlserv/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidServicePayload = pkg.NewDomainErrorSimple("INVALID_SERVICE_INPUT", "Invalid service payload", http.StatusBadRequest)
	errInvalidServiceID      = pkg.NewDomainErrorSimple("INVALID_SERVICE_ID", "Service id must be an integer", http.StatusBadRequest)
)

// ServiceHandler handles HTTP requests for the service-record lifecycle.

type ServiceHandler struct {
	usecase usecase.IServiceUseCase
}

func NewServiceHandler(uc usecase.IServiceUseCase) *ServiceHandler {
	return &ServiceHandler{usecase: uc}
}

// CreateService registers a new service record.
func (h *ServiceHandler) CreateService(c *gin.Context) {
	var payload request.ServiceRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidServicePayload.HTTPStatus, errInvalidServicePayload.ToHTTPError())
		return
	}

	rec, err := h.usecase.Add(c.Request.Context(), payload.ToInput())
	if err != nil {
		appErr := mapServiceError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromService(rec))
}

// UpdateService replaces all mutable fields of an existing record. Its id and
// dataCadastro are preserved.
func (h *ServiceHandler) UpdateService(c *gin.Context) {
	id, ok := serviceID(c)
	if !ok {
		return
	}

	var payload request.ServiceRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidServicePayload.HTTPStatus, errInvalidServicePayload.ToHTTPError())
		return
	}

	rec, err := h.usecase.Update(c.Request.Context(), id, payload.ToInput())
	if err != nil {
		appErr := mapServiceError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromService(rec))
}

// SetServiceStatus applies a status transition.
func (h *ServiceHandler) SetServiceStatus(c *gin.Context) {
	id, ok := serviceID(c)
	if !ok {
		return
	}

	var payload request.StatusRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidServicePayload.HTTPStatus, errInvalidServicePayload.ToHTTPError())
		return
	}

	rec, err := h.usecase.SetStatus(c.Request.Context(), id, entities.Status(payload.Status))
	if err != nil {
		appErr := mapServiceError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromService(rec))
}

// DeleteService removes a record. Deleting an unknown id succeeds silently.
func (h *ServiceHandler) DeleteService(c *gin.Context) {
	id, ok := serviceID(c)
	if !ok {
		return
	}

	if err := h.usecase.Remove(c.Request.Context(), id); err != nil {
		appErr := mapServiceError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.Status(http.StatusNoContent)
}

// ListServices returns the filtered, recency-sorted collection.
func (h *ServiceHandler) ListServices(c *gin.Context) {
	snapshot := h.usecase.Snapshot()
	filtered := usecase.FilterRecords(snapshot, c.Query("filter"))
	sorted := usecase.SortByRecency(filtered)

	c.JSON(http.StatusOK, response.FromServices(sorted))
}

// RecentServices returns the sidebar list of most recent records.
func (h *ServiceHandler) RecentServices(c *gin.Context) {
	recent := usecase.RecentRecords(h.usecase.Snapshot(), usecase.DefaultSidebarLimit)
	c.JSON(http.StatusOK, response.FromServices(recent))
}

// PendingServices returns the sidebar list of unpaid, non-cancelled records.
func (h *ServiceHandler) PendingServices(c *gin.Context) {
	pending := usecase.PendingRecords(h.usecase.Snapshot(), usecase.DefaultSidebarLimit)
	c.JSON(http.StatusOK, response.FromServices(pending))
}

// LoadSampleData replaces the collection with the example dataset.
func (h *ServiceHandler) LoadSampleData(c *gin.Context) {
	if err := h.usecase.LoadSampleData(c.Request.Context()); err != nil {
		appErr := mapServiceError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromServices(usecase.SortByRecency(h.usecase.Snapshot())))
}

// ClearServices deletes every record. The irreversible action must be
// acknowledged with ?confirm=true.
func (h *ServiceHandler) ClearServices(c *gin.Context) {
	if c.Query("confirm") != "true" {
		appErr := pkg.NewDomainErrorSimple("CONFIRMATION_REQUIRED", "Clearing all services requires confirm=true", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	if err := h.usecase.Clear(c.Request.Context()); err != nil {
		appErr := mapServiceError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.Status(http.StatusNoContent)
}

func serviceID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(errInvalidServiceID.HTTPStatus, errInvalidServiceID.ToHTTPError())
		return 0, false
	}
	return id, true
}

func mapServiceError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrServiceValidation):
		return pkg.NewDomainError("INVALID_SERVICE_INPUT", "Descrição, Cliente, Data Início and a positive Valor Total are required", err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrServiceNotFound):
		return pkg.NewDomainErrorSimple("SERVICE_NOT_FOUND", "Service not found", http.StatusNotFound)
	case errors.Is(err, interfaces.ErrCorruptData):
		return pkg.NewDomainError("CORRUPT_DATA", "Stored or imported data is not a valid service collection", err, http.StatusBadRequest)
	case errors.Is(err, interfaces.ErrPersistence):
		return pkg.NewDomainError("PERSISTENCE_FAILED", "Could not persist data, previous state was kept; try again", err, http.StatusInternalServerError)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

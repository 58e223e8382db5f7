package handlers

import (
	"net/http"
	"time"

	response "controlserv/internal/adapter/http/dto/response"
	"controlserv/internal/usecase"

	"github.com/gin-gonic/gin"
)

// DashboardHandler serves the aggregated dashboard metrics.

type DashboardHandler struct {
	usecase usecase.IServiceUseCase
}

func NewDashboardHandler(uc usecase.IServiceUseCase) *DashboardHandler {
	return &DashboardHandler{usecase: uc}
}

// GetDashboard computes the metrics over the current snapshot.
func (h *DashboardHandler) GetDashboard(c *gin.Context) {
	metrics := usecase.Aggregate(h.usecase.Snapshot(), time.Now())
	c.JSON(http.StatusOK, response.FromMetrics(metrics))
}

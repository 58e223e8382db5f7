package routes

import (
	"net/http"

	"controlserv/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathServices  = "/services"
	PathDashboard = "/dashboard"
	PathReports   = "/reports"
	PathBackup    = "/backup"
)

func addPingRoutes(rg *gin.RouterGroup) {
	rg.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})
}

func addServiceRoutes(
	rg *gin.RouterGroup,
	serviceHandler *handlers.ServiceHandler,
	dashboardHandler *handlers.DashboardHandler,
	reportHandler *handlers.ReportHandler,
	backupHandler *handlers.BackupHandler,
) {
	services := rg.Group(PathServices)
	{
		services.POST("", serviceHandler.CreateService)
		services.GET("", serviceHandler.ListServices)
		services.GET("/recent", serviceHandler.RecentServices)
		services.GET("/pending", serviceHandler.PendingServices)
		services.POST("/sample", serviceHandler.LoadSampleData)
		services.DELETE("", serviceHandler.ClearServices)
		services.PUT("/:id", serviceHandler.UpdateService)
		services.PATCH("/:id/status", serviceHandler.SetServiceStatus)
		services.DELETE("/:id", serviceHandler.DeleteService)
	}

	rg.GET(PathDashboard, dashboardHandler.GetDashboard)

	reports := rg.Group(PathReports)
	{
		reports.GET("/csv", reportHandler.GetCSV)
		reports.GET("/pdf", reportHandler.GetPDF)
		reports.GET("/pdf/summary", reportHandler.GetSummaryPDF)
		reports.GET("/pdf/range", reportHandler.GetRangePDF)
	}

	backup := rg.Group(PathBackup)
	{
		backup.GET("", backupHandler.ExportBackup)
		backup.POST("/import", backupHandler.ImportBackup)
	}
}

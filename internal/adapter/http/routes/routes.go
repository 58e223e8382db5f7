package routes

import (
	"context"
	"log"

	_ "controlserv/docs" // swagger registration
	"controlserv/internal/adapter/http/handlers"
	repository2 "controlserv/internal/adapter/persistence/repository"
	"controlserv/internal/config"
	"controlserv/internal/infrastructure/database"
	"controlserv/internal/infrastructure/reports"
	"controlserv/internal/scheduler"
	"controlserv/internal/usecase"
	"controlserv/internal/usecase/interfaces"
	"controlserv/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

var router = gin.New()

// Run wires the whole application and starts the server.
func Run() {
	cfg, err := config.Load("")
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	zlog := logger.Must(logger.New())
	defer zlog.Sync()

	setMiddlewares(zlog)

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	backupScheduler := getRoutes(cfg, zlog)
	backupScheduler.Start()
	defer backupScheduler.Stop()

	if err := router.Run(":" + cfg.Server.Port); err != nil {
		zlog.Fatal("failed to start the application", zap.Error(err))
	}
}

func getRoutes(cfg *config.Config, zlog *zap.Logger) *scheduler.Scheduler {
	repo := newCollectionRepository(cfg, zlog)

	serviceUseCase := usecase.NewServiceUseCase(repo, logger.Named(zlog, "services"))

	// The store reads its world view from storage once at startup; a corrupt
	// blob blocks start instead of silently dropping user data.
	if err := serviceUseCase.Reload(context.Background()); err != nil {
		zlog.Fatal("failed to load the service collection", zap.Error(err))
	}

	reportUseCase := usecase.NewReportUseCase(
		serviceUseCase,
		reports.NewPDFRenderer(),
		reports.NewCSVRenderer(),
		logger.Named(zlog, "reports"),
	)

	serviceHandler := handlers.NewServiceHandler(serviceUseCase)
	dashboardHandler := handlers.NewDashboardHandler(serviceUseCase)
	reportHandler := handlers.NewReportHandler(reportUseCase)
	backupHandler := handlers.NewBackupHandler(serviceUseCase)

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addServiceRoutes(v1, serviceHandler, dashboardHandler, reportHandler, backupHandler)

	return scheduler.NewScheduler(cfg.Backup, serviceUseCase, logger.Named(zlog, "scheduler"))
}

func newCollectionRepository(cfg *config.Config, zlog *zap.Logger) interfaces.IServiceCollectionRepository {
	switch cfg.Storage.Driver {
	case config.StorageDriverDynamoDB:
		ddb, err := database.NewDynamoDBClient(context.Background(), cfg.Storage)
		if err != nil {
			zlog.Fatal("failed to create dynamodb client", zap.Error(err))
		}
		zlog.Info("using dynamodb storage", zap.String("table", cfg.Storage.Table))
		return repository2.NewServicesDynamoRepository(ddb, cfg.Storage.Table)
	default:
		zlog.Info("using file storage", zap.String("path", cfg.Storage.FilePath))
		return repository2.NewFileBlobRepository(cfg.Storage.FilePath)
	}
}

func setMiddlewares(zlog *zap.Logger) {
	router.Use(gin.Logger())
	router.Use(requestID())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		zlog.Error("recovered from panic", zap.Any("panic", recovered))
		c.AbortWithStatus(500)
	}))
}

// requestID tags every request so log lines from one operation correlate.
func requestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader("X-Request-ID")
		if id == "" {
			id = uuid.NewString()
		}
		c.Set("request_id", id)
		c.Header("X-Request-ID", id)
		c.Next()
	}
}

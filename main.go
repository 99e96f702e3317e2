package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"oraconsoleapi/bootstrap"
	"oraconsoleapi/config"
	"oraconsoleapi/controllers"
	_ "oraconsoleapi/docs"
	"oraconsoleapi/pkg/logger"
	"oraconsoleapi/pkg/metrics"
	"oraconsoleapi/repository"
	"oraconsoleapi/services"
	"oraconsoleapi/services/activity"
	"oraconsoleapi/services/notify"
	"oraconsoleapi/services/oracle"
	"oraconsoleapi/utils"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title           oraconsoleapi
// @version         1.0
// @description     Oracle database administration console API

// @BasePath  /api

func main() {
	// 1) Load config
	if err := config.LoadConfig(); err != nil {
		log.Fatalf("LoadConfig error: %v", err)
	}

	// 2) Init structured logger with config
	utils.InitLoggerWithConfig(
		config.Cfg.LogFile,
		config.Cfg.LogLevel,
		config.Cfg.LogMaxSize,
		config.Cfg.LogMaxBackups,
		config.Cfg.LogMaxAge,
		config.Cfg.LogCompress,
	)
	logger.Infof("Starting oraconsoleapi with log level: %s", config.Cfg.LogLevel)

	// 3) Connect local store (GORM) and restore state
	if err := config.ConnectDB(); err != nil {
		log.Fatalf("ConnectDB error: %v", err)
	}
	if config.DB == nil {
		log.Fatal("Database is nil after ConnectDB")
	}
	stored, err := bootstrap.LoadData(config.DB)
	if err != nil {
		log.Fatalf("Load data error: %v", err)
	}

	cipher, err := utils.NewCipher(config.Cfg.EncryptionKey)
	if err != nil {
		log.Fatalf("ENCRYPTION_KEY: %v", err)
	}

	// 4) Wire services
	m := metrics.InitMetrics()
	actLog := activity.NewLog(activity.DefaultCapacity, m)
	gateway := oracle.NewGateway(oracle.GatewayConfig{
		ConnectTimeout: config.Cfg.OracleConnectTimeout,
		MaxOpenConns:   config.Cfg.OracleMaxOpenConns,
	})

	connRepo := repository.NewConnectionRepository()
	prefRepo := repository.NewPreferenceRepository()
	snapRepo := repository.NewSnapshotRepository()

	connSvc := services.NewConnectionService(services.ConnectionServiceDeps{
		Repo:        connRepo,
		Preferences: prefRepo,
		Snapshots:   snapRepo,
		Gateway:     gateway,
		Cipher:      cipher,
		State:       services.NewConnectionState(),
		Activity:    actLog,
		Tx:          repository.NewBaseRepository(),
	})
	deps := services.OracleDeps{Provider: connSvc, Activity: actLog, Metrics: m}

	sessionSvc := services.NewSessionService(deps)
	dashboardSvc := services.NewDashboardService(deps)
	timeMachineSvc := services.NewTimeMachineService(services.TimeMachineDeps{
		Connections: connRepo,
		Snapshots:   snapRepo,
		Sessions:    sessionSvc,
		Metrics:     m,
	})

	schedDeps := services.SchedulerDeps{
		TimeMachine: timeMachineSvc,
		Dashboard:   dashboardSvc,
		Connections: connSvc,
		Activity:    actLog,
		Metrics:     m,
	}
	if mailer := notify.NewMailer(notify.ConfigFromEnv()); mailer != nil {
		schedDeps.Notifier = mailer
		logger.Infof("Alert mail enabled for %d recipients", len(config.Cfg.AlertEmails))
	}
	scheduler := services.NewScheduler(schedDeps)
	if err := scheduler.Start(); err != nil {
		log.Fatalf("Scheduler error: %v", err)
	}

	// Reconnect the profile that was active before the restart. Activation
	// is bounded by the connect timeout and must not delay the listener.
	if stored != nil {
		go func(id uint, name string) {
			ctx, cancel := context.WithTimeout(context.Background(), 2*gateway.ConnectTimeout())
			defer cancel()
			if _, err := connSvc.Activate(ctx, id); err != nil {
				logger.Warnf("Could not reconnect stored connection %s: %v", name, err)
				return
			}
			logger.Infof("Reconnected stored connection %s", name)
		}(stored.ID, stored.Name)
	}

	// 5) Setup Gin
	router := gin.Default()
	router.Use(utils.LoggerMiddleware())
	router.Use(m.Middleware())

	api := router.Group("/api")
	{
		controllers.RegisterConnectionRoutes(api, controllers.NewConnectionController(connSvc))
		controllers.RegisterSessionRoutes(api, controllers.NewSessionController(sessionSvc))
		controllers.RegisterStorageRoutes(api, controllers.NewStorageController(services.NewStorageService(deps)))
		controllers.RegisterRedoRoutes(api, controllers.NewRedoController(services.NewRedoService(deps)))
		controllers.RegisterBackupRoutes(api, controllers.NewBackupController(services.NewBackupService(deps)))
		controllers.RegisterStatisticsRoutes(api, controllers.NewStatisticsController(services.NewStatisticsService(deps)))
		controllers.RegisterJobsRoutes(api, controllers.NewJobsController(services.NewJobsService(deps)))
		controllers.RegisterDashboardRoutes(api, controllers.NewDashboardController(dashboardSvc))
		controllers.RegisterLogsRoutes(api, controllers.NewLogsController(services.NewLogsService(deps)))
		controllers.RegisterTimeMachineRoutes(api, controllers.NewTimeMachineController(timeMachineSvc))
		controllers.RegisterPreferenceRoutes(api, controllers.NewPreferenceController(services.NewPreferenceService(connRepo, prefRepo)))
		controllers.RegisterActivityRoutes(api, controllers.NewActivityController(actLog))
	}

	// 6) Metrics and Swagger routes
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// 7) Run with graceful shutdown
	srv := &http.Server{
		Addr:    "0.0.0.0:" + config.Cfg.Port,
		Handler: router,
	}
	go func() {
		logger.Infof("Starting server at port %s", config.Cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Server error: %v", err)
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	<-sigChan
	logger.Infof("Received shutdown signal, stopping background jobs...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Errorf("Server shutdown: %v", err)
	}
	scheduler.Stop()
	if err := gateway.Close(); err != nil {
		logger.Warnf("Closing Oracle pools: %v", err)
	}

	logger.Infof("Application shutdown complete")
}

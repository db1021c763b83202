package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/aleviannaf/laboratory-app/config"
	"github.com/aleviannaf/laboratory-app/internal/backend/local"
	catalogHandler "github.com/aleviannaf/laboratory-app/internal/handler/catalog"
	patientHandler "github.com/aleviannaf/laboratory-app/internal/handler/patient"
	queueHandler "github.com/aleviannaf/laboratory-app/internal/handler/queue"
	recordHandler "github.com/aleviannaf/laboratory-app/internal/handler/record"
	toastHandler "github.com/aleviannaf/laboratory-app/internal/handler/toast"
	"github.com/aleviannaf/laboratory-app/internal/repository/postgres"
	"github.com/aleviannaf/laboratory-app/internal/router"
	catalogService "github.com/aleviannaf/laboratory-app/internal/service/catalog"
	patientService "github.com/aleviannaf/laboratory-app/internal/service/patient"
	queueService "github.com/aleviannaf/laboratory-app/internal/service/queue"
	recordService "github.com/aleviannaf/laboratory-app/internal/service/record"
	toastService "github.com/aleviannaf/laboratory-app/internal/service/toast"
	"github.com/aleviannaf/laboratory-app/pkg/logger"
	"github.com/aleviannaf/laboratory-app/pkg/metrics"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	logger.Setup(cfg.Log.Level, os.Stdout)

	// Initialize database
	db, err := postgres.NewDB(cfg.Database)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}
	defer db.Close()

	// Initialize repositories
	patientRepo := postgres.NewPatientRepository(db)
	catalogRepo := postgres.NewCatalogRepository(db)
	attendanceRepo := postgres.NewAttendanceRepository(db)

	m := metrics.NewMetrics("laboratory", "app")

	// The bridge is the single entry point into the backend; every
	// service invokes commands through it.
	bridge := local.NewBridge(patientRepo, catalogRepo, attendanceRepo, m)

	// Initialize services
	catalogSvc := catalogService.NewService(bridge, m)
	patientSvc := patientService.NewService(bridge)
	recordSvc := recordService.NewService(bridge, catalogSvc)
	queueSvc := queueService.NewService(bridge, m)
	queueStore := queueService.NewStore()
	toastSvc := toastService.NewService(cfg.Toast)
	defer toastSvc.Close()

	// Initialize handlers
	patientH := patientHandler.NewHandler(patientSvc, toastSvc)
	catalogH := catalogHandler.NewHandler(catalogSvc)
	recordH := recordHandler.NewHandler(recordSvc, toastSvc)
	queueH := queueHandler.NewHandler(queueSvc, queueStore, toastSvc)
	toastH := toastHandler.NewHandler(toastSvc)

	// Setup router
	r := router.NewRouter(cfg, patientH, catalogH, recordH, queueH, toastH)

	srv := &http.Server{
		Addr:           fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:        r.Engine(),
		ReadTimeout:    cfg.Server.ReadTimeout,
		WriteTimeout:   cfg.Server.WriteTimeout,
		MaxHeaderBytes: cfg.Server.MaxHeaderBytes,
	}

	// Start server
	go func() {
		log.Info().Int("port", cfg.Server.Port).Msg("starting server")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("failed to start server")
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal().Err(err).Msg("server forced to shutdown")
	}

	log.Info().Msg("server exited properly")
}

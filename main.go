// File: pawplan/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"pawplan/config"
	"pawplan/cron"
	"pawplan/database"
	absencesRepo "pawplan/database/repository/absences"
	billingRepo "pawplan/database/repository/billing"
	clientsRepo "pawplan/database/repository/clients"
	planningRepo "pawplan/database/repository/planning"
	"pawplan/handlers"
	"pawplan/middleware"
	"pawplan/routes"
	"pawplan/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitCache()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	planRepo := planningRepo.NewMongoPlanningRepo()
	absRepo := absencesRepo.NewMongoAbsenceRepo()
	billRepo := billingRepo.NewMongoBillingRepo()
	cliRepo := clientsRepo.NewMongoClientRepo()

	// handlers.
	planningHandler := handlers.NewPlanningHandler(planRepo, utils.GetCacheClient(), logger)
	absenceHandler := handlers.NewAbsenceHandler(absRepo, planRepo, logger)
	invoicingHandler := handlers.NewInvoicingHandler(billRepo, cliRepo, planRepo, logger)

	routes.RegisterRoutes(router, planningHandler, absenceHandler, invoicingHandler)

	// Background reminder worker.
	cron.InitReminderWorker(billRepo)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}

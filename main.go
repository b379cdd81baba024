// File: trustcheck/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stripe/stripe-go/v76"

	"trustcheck/config"
	"trustcheck/handlers"
	"trustcheck/middleware"
	"trustcheck/routes"
	"trustcheck/services/payment"
	"trustcheck/services/quota"
	"trustcheck/services/trust"
	"trustcheck/utils"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	stripe.Key = config.AppConfig.StripeSecretKey

	// Default caller identifier forwarded to the completion provider for
	// anonymous requests.
	callerID := config.AppConfig.UserIdentifier
	if callerID == "" {
		callerID = uuid.New().String()
	}

	var quotaStore quota.Store
	switch config.AppConfig.QuotaBackend {
	case "redis":
		quotaStore = quota.NewRedisStore(utils.GetQuotaCacheClient())
	default:
		quotaStore = quota.NewClerkStore(config.AppConfig.ClerkAPIURL, config.AppConfig.ClerkSecretKey)
	}

	difyClient := trust.NewDifyClient(
		config.AppConfig.DifyAPIURL,
		config.AppConfig.DifyAPIKey,
		time.Duration(config.AppConfig.DifyTimeoutSeconds)*time.Second,
	)

	trustService := &trust.DefaultTrustService{
		Completion:  difyClient,
		Quota:       quotaStore,
		DailyLimit:  config.AppConfig.DailyCheckLimit,
		DefaultUser: callerID,
		Logger:      logger,
	}

	trustHandler := handlers.NewTrustHandler(trustService)
	usageHandler := handlers.NewUsageHandler(quotaStore)
	paymentHandler := handlers.NewPaymentHandler(payment.StripeService{}, config.AppConfig.StripePublishableKey)

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	routes.RegisterRoutes(router, trustHandler, usageHandler, paymentHandler, config.AppConfig.StaticDir)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "3001"
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

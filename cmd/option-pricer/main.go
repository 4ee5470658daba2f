package main

import (
	"context"
	"errors"
	"net/http"
	"option-pricer/config"
	"option-pricer/controllers"
	"option-pricer/middleware"
	"option-pricer/services"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logrus.WithError(err).Fatal("Failed to load configuration")
	}

	logger := cfg.NewLogger()
	gin.SetMode(cfg.GinMode)

	pricingService := services.NewPricingService(logger)
	pricingController := controllers.NewPricingController(pricingService, cfg.Locale, logger)

	router := gin.New()
	router.Use(
		middleware.RequestID(),
		middleware.AccessLog(logger),
		middleware.Recovery(logger, cfg.Locale),
		middleware.CORS(cfg.CORSOrigin),
	)
	pricingController.RegisterRoutes(router)

	srv := &http.Server{
		Addr:    cfg.Addr(),
		Handler: router,
	}

	go func() {
		logger.WithFields(logrus.Fields{
			"addr":   srv.Addr,
			"locale": cfg.Locale,
		}).Info("Option pricing API listening")

		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.WithError(err).Fatal("HTTP server failed")
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	<-ctx.Done()

	logger.Info("Shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.WithError(err).Error("Graceful shutdown failed")
	}
}

package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/pharmastock/pharmastock/internal/app"
	"github.com/pharmastock/pharmastock/internal/catalog"
	"github.com/pharmastock/pharmastock/internal/inventory"
	"github.com/pharmastock/pharmastock/internal/ledger"
	"github.com/pharmastock/pharmastock/internal/observability"
	"github.com/pharmastock/pharmastock/internal/reports"
	"github.com/pharmastock/pharmastock/internal/store"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := app.LoadConfig()
	if err != nil {
		slog.Default().Error("load config", slog.Any("error", err))
		os.Exit(1)
	}

	logger := app.NewLogger(cfg)

	// All state lives in this store and is gone on restart.
	recordStore := store.New()

	catalogService := catalog.NewService(recordStore)
	inventoryService := inventory.NewService(recordStore)
	ledgerService := ledger.NewService(recordStore)
	reportsService := reports.NewService(recordStore)

	metrics := observability.NewMetrics()

	catalogHandler := catalog.NewHandler(logger, catalogService)
	inventoryHandler := inventory.NewHandler(logger, inventoryService)
	ledgerHandler := ledger.NewHandler(logger, ledgerService)
	reportsHandler := reports.NewHandler(logger, reportsService, ledgerService, inventoryService)

	router := app.NewRouter(app.RouterParams{
		Logger:           logger,
		Config:           cfg,
		CatalogHandler:   catalogHandler,
		InventoryHandler: inventoryHandler,
		LedgerHandler:    ledgerHandler,
		ReportsHandler:   reportsHandler,
		Metrics:          metrics,
	})

	server := &http.Server{
		Addr:         cfg.AppAddr,
		Handler:      router,
		ReadTimeout:  cfg.AppReadTimeout,
		WriteTimeout: cfg.AppWriteTimeout,
	}

	go func() {
		logger.Info("starting http server", slog.String("addr", cfg.AppAddr))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("http server", slog.Any("error", err))
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown", slog.Any("error", err))
	}
}

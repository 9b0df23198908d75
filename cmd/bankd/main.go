package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/corebank-ledger/internal/api"
	"github.com/corebank-ledger/internal/bank"
	"github.com/corebank-ledger/internal/config"
	"github.com/corebank-ledger/internal/eventlog"
	"github.com/corebank-ledger/internal/idgen"
	"github.com/corebank-ledger/internal/logger"
)

func main() {
	// Initialize configuration
	cfg, err := config.LoadConfig("bankd")
	if err != nil {
		// logger is not initialized yet, so we use fmt
		fmt.Printf("Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	log := logger.NewLogger(cfg)

	// Process-wide services, created once and passed by reference
	ids := idgen.NewGenerator()
	events := eventlog.NewSink(ids, log)

	ledgerBank, err := bank.New(cfg.Bank.Name, ids, events, cfg.WorkerPool.Size)
	if err != nil {
		log.Error("Failed to initialize bank", "error", err)
		os.Exit(1)
	}

	// Initialize REST server
	server := api.NewServer(log, cfg, ledgerBank, events)
	log.Info("REST server initialized", "bank", cfg.Bank.Name)

	// Create error channel for server errors
	errChan := make(chan error, 1)

	// Start server in goroutine
	go func() {
		log.Info("Starting HTTP server", "port", cfg.Server.Port)
		if err := server.Start(); err != nil {
			errChan <- fmt.Errorf("HTTP server error: %w", err)
		}
	}()

	// Set up signal handling
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	// Wait for a shutdown signal or error
	var serverErr error
	select {
	case <-quit:
		log.Info("Shutdown signal received")
	case err := <-errChan:
		log.Error("Server error occurred", "error", err)
		serverErr = err
	}

	// Create a shutdown context with timeout
	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancelShutdown()

	// Graceful shutdown sequence
	log.Info("Starting graceful shutdown...")

	if err = server.Stop(shutdownCtx); err != nil {
		log.Error("Error during server shutdown", "error", err)
	}

	ledgerBank.Close()

	if serverErr != nil {
		log.Error("HTTP server shutdown with errors", "error", serverErr)
		os.Exit(1)
	}
	log.Info("Server shutdown completed successfully")
}

package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/GriffinCanCode/urlargs/internal/infrastructure/config"
	"github.com/GriffinCanCode/urlargs/internal/infrastructure/logging"
	"github.com/GriffinCanCode/urlargs/internal/infrastructure/server"
	"github.com/GriffinCanCode/urlargs/internal/version"
)

func main() {
	cfg := config.LoadOrDefault()

	port := flag.String("port", cfg.Server.Port, "Server port")
	host := flag.String("host", cfg.Server.Host, "Listen address")
	maxSessions := flag.Int("max-sessions", cfg.Server.MaxSessions, "Maximum live location sessions")
	dev := flag.Bool("dev", cfg.Logging.Development, "Development logging (colored console, debug level)")
	level := flag.String("log-level", cfg.Logging.Level, "Log level: debug, info, warn, error")
	showVersion := flag.Bool("version", false, "Print version and exit")
	flag.Parse()

	if *showVersion {
		fmt.Println(version.String())
		return
	}

	cfg.Server.Port = *port
	cfg.Server.Host = *host
	cfg.Server.MaxSessions = *maxSessions
	cfg.Logging.Development = *dev
	cfg.Logging.Level = *level
	if *dev && !isFlagSet("log-level") {
		cfg.Logging.Level = "debug"
	}

	logger := logging.FromLevel(cfg.Logging.Level, cfg.Logging.Development)
	logger.Info("urlargs location service", zap.String("version", version.String()))

	srv, err := server.NewServer(cfg, logger)
	if err != nil {
		logger.Fatal("Failed to create server", zap.Error(err))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	runErr := srv.Run(ctx)
	if ctx.Err() != nil {
		logger.Info("Shutting down gracefully")
	}
	if err := srv.Close(); err != nil {
		logger.Error("Error during shutdown", zap.Error(err))
	}
	if runErr != nil {
		logger.Error("Server error", zap.Error(runErr))
		os.Exit(1)
	}
}

func isFlagSet(name string) bool {
	set := false
	flag.Visit(func(f *flag.Flag) {
		if f.Name == name {
			set = true
		}
	})
	return set
}

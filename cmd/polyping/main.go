package main

import (
	"context"
	"errors"
	"flag"
	"io"
	"os"
	"os/signal"
	"syscall"

	"polyping/internal/config"
	"polyping/internal/database"
	"polyping/internal/logging"
	"polyping/internal/monitor"
	"polyping/internal/ping"
	"polyping/internal/report"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

// run executes one latency run and returns the process exit code
func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	// Parse configuration
	cfg, err := config.ParseFlags(args, stderr)
	if errors.Is(err, flag.ErrHelp) {
		return 0
	}
	logger := logging.New(stderr, cfg.Verbose)
	if err != nil {
		logger.Error().Err(err).Msg("Invalid arguments")
		return 2
	}
	if err := cfg.Validate(); err != nil {
		logger.Error().Err(err).Msg("Invalid configuration")
		return 2
	}

	// Results live only for the duration of the run
	db, err := database.New(database.MemoryPath)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to initialize result store")
		return 1
	}
	defer db.Close()

	if err := db.InitSchema(); err != nil {
		logger.Error().Err(err).Msg("Failed to initialize result store schema")
		return 1
	}

	pinger := ping.New(cfg.Timeout)
	mon := monitor.New(cfg, db, pinger, stdout, logger)
	gen := report.NewGenerator(db, logger)

	if err := mon.Run(ctx); err != nil {
		if !errors.Is(err, context.Canceled) {
			logger.Error().Err(err).Msg("Run aborted")
			return 1
		}
		logger.Warn().Err(err).Msg("Interrupted, reporting collected rounds")
	}

	if err := gen.GenerateTextReport(stdout, cfg.Endpoints); err != nil {
		logger.Error().Err(err).Msg("Failed to generate summary")
		return 1
	}

	if cfg.ChartPath != "" {
		if err := gen.GenerateChart(cfg.ChartPath, cfg.Endpoints); err != nil {
			logger.Warn().Err(err).Str("path", cfg.ChartPath).Msg("Latency chart not written")
		}
	}

	return 0
}

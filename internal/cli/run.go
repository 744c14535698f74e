package cli

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/mhollis/redditlog/internal/collector"
	"github.com/mhollis/redditlog/internal/config"
	"github.com/mhollis/redditlog/internal/dashboard"
	"github.com/mhollis/redditlog/internal/poller"
	"github.com/mhollis/redditlog/internal/storage"
)

func runLogger(ctx context.Context, opts *RunOptions) error {
	level := slog.LevelInfo
	if opts.Verbose {
		level = slog.LevelDebug
	}
	// Logs go to stderr; stdout belongs to the per-post console lines.
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	cfg, err := config.Load(opts.ConfigFile)
	if err != nil {
		return err
	}
	if opts.Output != "" {
		cfg.Output = opts.Output
	}
	if len(opts.Subreddits) > 0 {
		cfg.Subreddits = opts.Subreddits
	}
	if opts.PollEvery > 0 {
		cfg.PollInterval = opts.PollEvery
	}
	if opts.FlushEvery > 0 {
		cfg.FlushInterval = opts.FlushEvery
	}

	ledger, err := storage.Open(cfg.Output)
	if err != nil {
		return err
	}

	client, err := collector.New(cfg)
	if err != nil {
		return err
	}
	logger.Info("collector ready", "mode", cfg.Mode, "subreddits", cfg.Subreddits)

	if cfg.DashboardPort != "" {
		go func() {
			logger.Info("dashboard listening", "port", cfg.DashboardPort)
			if err := dashboard.StartServer(cfg.Output, cfg.DashboardPort); err != nil {
				logger.Error("dashboard failed", "err", err)
			}
		}()
	}

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	p := poller.New(client, ledger, cfg.Subreddits, cfg.Limit, logger, os.Stdout)
	logger.Info("logging new posts", "next_id", ledger.NextID(), "output", cfg.Output,
		"poll_every", cfg.PollInterval, "flush_every", cfg.FlushInterval)
	return p.Run(ctx, cfg.PollInterval, cfg.FlushInterval)
}

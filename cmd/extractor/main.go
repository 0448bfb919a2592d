// Command extractor turns the newest scored-signal file into the day's
// entry-point schedule.
//
// It checks that the broker is open today, normalizes the scored rows into
// time intervals, clusters overlapping signals per currency pair and
// direction, and greedily packs the highest-value non-conflicting
// representatives into entrypoints_YYYYMMDD.csv.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/beru3/historycal-sub001/internal/cluster"
	"github.com/beru3/historycal-sub001/internal/collect"
	"github.com/beru3/historycal-sub001/internal/config"
	"github.com/beru3/historycal-sub001/internal/csvio"
	"github.com/beru3/historycal-sub001/internal/interval"
	"github.com/beru3/historycal-sub001/internal/resolver"
	"github.com/beru3/historycal-sub001/internal/store"
	"github.com/beru3/historycal-sub001/internal/tradingday"
	"github.com/beru3/historycal-sub001/internal/version"
)

func main() {
	configPath := flag.String("config", "configs/pipeline.yaml", "path to config file")
	force := flag.Bool("force", false, "run even on a non-trading day")
	overlapKey := flag.String("overlap-key", "direction+pair", "overlap key: direction or direction+pair")
	strategy := flag.String("strategy", "greedy_global", "resolution strategy: per_component or greedy_global")
	keepSingletons := flag.Bool("keep-singletons", false, "keep signals that overlap nothing")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	logger.Info("starting extractor",
		"version", version.Version,
		"commit", version.Commit,
		"config", *configPath,
	)

	cfg, err := config.LoadAndValidate(*configPath)
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	logger = slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel(cfg.LogLevel),
	}))
	slog.SetDefault(logger)

	key, err := cluster.ParseKey(*overlapKey)
	if err != nil {
		logger.Error("invalid flag", "error", err)
		os.Exit(1)
	}
	strat, err := resolver.ParseStrategy(*strategy)
	if err != nil {
		logger.Error("invalid flag", "error", err)
		os.Exit(1)
	}

	if err := run(cfg, key, strat, !*keepSingletons, *force, logger); err != nil {
		logger.Error("extractor failed", "error", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config, key cluster.Key, strat resolver.Strategy, dropSingletons, force bool, logger *slog.Logger) error {
	today := time.Now()

	checker, err := tradingday.NewChecker(cfg.Broker, cfg.CacheDir, logger)
	if err != nil {
		return err
	}
	if !checker.IsTradingDay(today) {
		if !force {
			logger.Info("not a trading day, skipping",
				"broker", checker.BrokerName(),
				"date", today.Format("2006-01-02"),
			)
			return nil
		}
		logger.Warn("not a trading day, running anyway", "broker", checker.BrokerName())
	}

	src, err := collect.LatestScored(cfg.InputDir)
	if err != nil {
		return err
	}
	logger.Info("processing scored file", "file", filepath.Base(src.Path))

	rows, err := csvio.ReadRows(src.Path, csvio.ScoredColumns())
	if err != nil {
		return err
	}
	if len(rows) > cfg.MaxCandidates {
		return fmt.Errorf("input has %d rows, exceeds max_candidates %d", len(rows), cfg.MaxCandidates)
	}

	fileDate := src.Date.Truncate(24 * time.Hour)
	cands, dropped := interval.NormalizeAll(rows, fileDate, logger)

	comps := cluster.Components(cands, cluster.Options{
		Key:            key,
		DropSingletons: dropSingletons,
	})
	entries := resolver.Resolve(cands, comps, strat)

	logger.Info("run summary",
		"input_rows", len(rows),
		"dropped", dropped,
		"clusters", len(comps),
		"output_rows", len(entries),
	)
	if len(entries) == 0 {
		logger.Info("no entry points extracted, nothing written")
		return nil
	}

	if err := os.MkdirAll(cfg.EntrypointDir, 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}
	outPath := filepath.Join(cfg.EntrypointDir, fmt.Sprintf("entrypoints_%s.csv", today.Format("20060102")))
	if err := csvio.WriteEntries(outPath, entries, csvio.UTF8BOM); err != nil {
		return err
	}
	logger.Info("wrote entry points", "path", outPath, "rows", len(entries))

	if cfg.Database.Enabled {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		sink, err := store.Connect(ctx, cfg.Database, logger)
		if err != nil {
			return fmt.Errorf("connect sink: %w", err)
		}
		defer sink.Close()

		if _, err := sink.InsertRun(ctx, today, entries); err != nil {
			return err
		}
	}
	return nil
}

func logLevel(s string) slog.Level {
	switch s {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

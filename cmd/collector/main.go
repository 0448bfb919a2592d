// Command collector merges the last week of entry-point files into one
// deduplicated schedule.
//
// Rows from all files within the lookback window are concatenated, clustered
// by time overlap per direction, and each cluster is reduced to its best
// member (highest practical score, newest file on ties). The merged table is
// written Shift-JIS for the downstream trading tool, optionally mirrored to
// Postgres, and the source files are backed up alongside it.
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
	"github.com/beru3/historycal-sub001/internal/version"
)

func main() {
	configPath := flag.String("config", "configs/pipeline.yaml", "path to config file")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	logger.Info("starting collector",
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

	if err := run(cfg, logger); err != nil {
		logger.Error("collector failed", "error", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config, logger *slog.Logger) error {
	key, err := cluster.ParseKey(cfg.Dedup.OverlapKey)
	if err != nil {
		return err
	}
	strat, err := resolver.ParseStrategy(cfg.Dedup.Strategy)
	if err != nil {
		return err
	}

	now := time.Now()
	lookback := time.Duration(cfg.DaysToCollect) * 24 * time.Hour

	files, err := collect.RecentEntrypoints(cfg.EntrypointDir, now, lookback, logger)
	if err != nil {
		return err
	}
	logger.Info("collected files", "count", len(files), "lookback_days", cfg.DaysToCollect)

	rows, err := collect.LoadAll(files, csvio.EntrypointColumns(), logger)
	if err != nil {
		return err
	}
	if len(rows) == 0 {
		logger.Info("no rows in collected files, nothing written")
		return nil
	}
	if len(rows) > cfg.MaxCandidates {
		return fmt.Errorf("combined input has %d rows, exceeds max_candidates %d", len(rows), cfg.MaxCandidates)
	}

	cands, dropped := interval.NormalizeAll(rows, time.Time{}, logger)

	comps := cluster.Components(cands, cluster.Options{
		Key:            key,
		DropSingletons: cfg.Dedup.DropSingletons,
	})
	entries := resolver.Resolve(cands, comps, strat)

	logger.Info("run summary",
		"files", len(files),
		"input_rows", len(rows),
		"dropped", dropped,
		"clusters", len(comps),
		"output_rows", len(entries),
	)
	if len(entries) == 0 {
		logger.Info("no entry points survived resolution, nothing written")
		return nil
	}

	if err := os.MkdirAll(cfg.OutputDir, 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}
	outPath := filepath.Join(cfg.OutputDir, fmt.Sprintf("merged_entrypoints_%s.csv", now.Format("20060102")))
	if err := csvio.WriteEntries(outPath, entries, csvio.ShiftJIS); err != nil {
		return err
	}
	logger.Info("wrote merged entry points", "path", outPath, "rows", len(entries))

	if err := collect.Backup(files, cfg.OutputDir); err != nil {
		logger.Warn("backup of source files failed", "error", err)
	}

	if cfg.Database.Enabled {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		sink, err := store.Connect(ctx, cfg.Database, logger)
		if err != nil {
			return fmt.Errorf("connect sink: %w", err)
		}
		defer sink.Close()

		if _, err := sink.InsertRun(ctx, now, entries); err != nil {
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

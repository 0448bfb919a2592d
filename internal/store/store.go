package store

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/beru3/historycal-sub001/internal/config"
	"github.com/beru3/historycal-sub001/internal/model"
)

// Sink writes resolved entry points to the entrypoints table.
type Sink struct {
	pool   *pgxpool.Pool
	logger *slog.Logger
}

// Connect opens a connection pool from config and pings it.
func Connect(ctx context.Context, cfg config.DatabaseConfig, logger *slog.Logger) (*Sink, error) {
	if logger == nil {
		logger = slog.Default()
	}

	poolCfg, err := pgxpool.ParseConfig(buildConnString(cfg))
	if err != nil {
		return nil, fmt.Errorf("parse connection string: %w", err)
	}
	poolCfg.MinConns = int32(cfg.MinConns)
	poolCfg.MaxConns = int32(cfg.MaxConns)

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, fmt.Errorf("create pool: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	return &Sink{pool: pool, logger: logger}, nil
}

// Close releases the connection pool.
func (s *Sink) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}

// InsertRun writes one run's resolved table and returns the run id. Rows
// already present for the same (run_id, seq) are skipped, so a retried run
// never duplicates.
func (s *Sink) InsertRun(ctx context.Context, runDate time.Time, entries []model.ResolvedEntry) (uuid.UUID, error) {
	runID := uuid.New()

	batch := &pgx.Batch{}
	for _, e := range entries {
		batch.Queue(`
			INSERT INTO entrypoints (run_id, run_date, seq, pair, entry_time, exit_time, direction, practical_score, source_date)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
			ON CONFLICT (run_id, seq) DO NOTHING
		`, runID, runDate, e.Seq, e.Pair, e.Entry.String(), e.Exit.String(), e.Direction.String(), e.PracticalScore, nullableDate(e.SourceDate))
	}

	start := time.Now()
	results := s.pool.SendBatch(ctx, batch)
	defer results.Close()

	conflicts := 0
	for range entries {
		ct, err := results.Exec()
		if err != nil {
			return runID, fmt.Errorf("insert entrypoints: %w", err)
		}
		if ct.RowsAffected() == 0 {
			conflicts++
		}
	}

	s.logger.Info("stored run",
		"run_id", runID,
		"rows", len(entries),
		"conflicts", conflicts,
		"duration", time.Since(start),
	)
	return runID, nil
}

func nullableDate(t time.Time) any {
	if t.IsZero() {
		return nil
	}
	return t
}

func buildConnString(cfg config.DatabaseConfig) string {
	// URL-encode password to handle special characters
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		cfg.User,
		url.QueryEscape(cfg.Password),
		cfg.Host,
		cfg.Port,
		cfg.Name,
		cfg.SSLMode,
	)
}

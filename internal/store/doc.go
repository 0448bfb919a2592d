// Package store persists resolved entry points to Postgres.
//
// The sink is optional; when enabled, every run inserts its output rows
// tagged with a fresh run id so the history of generated schedules can be
// queried later. Inserts are append-only, batched, and idempotent per
// (run_id, seq).
package store

package adapter

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
	"time"

	_ "modernc.org/sqlite" // registers the "sqlite" driver

	m "salvager.dev/pkg/salvager/internal/model"
)

// TelemetryReporter records salvage executions. Report is fire-and-forget:
// it never blocks the caller on storage and never returns an error.
type TelemetryReporter interface {
	Report(ctx context.Context, event m.TelemetryEvent)
	Recent(ctx context.Context, limit int) ([]m.TelemetryEvent, error)
	Close() error
}

// ErrTelemetryDisabled is returned by Recent when no telemetry sink is configured.
var ErrTelemetryDisabled = errors.New("telemetry is disabled")

// NopTelemetry discards every event.
type NopTelemetry struct{}

// Report discards the event.
func (NopTelemetry) Report(context.Context, m.TelemetryEvent) {}

// Recent always fails with ErrTelemetryDisabled.
func (NopTelemetry) Recent(context.Context, int) ([]m.TelemetryEvent, error) {
	return nil, ErrTelemetryDisabled
}

// Close is a no-op.
func (NopTelemetry) Close() error { return nil }

const telemetryQueueSize = 1024

// SQLiteTelemetry appends events to a SQLite table from a background writer.
// The database is opened on first use.
type SQLiteTelemetry struct {
	path string

	openOnce sync.Once
	openErr  error
	db       *sql.DB

	ch        chan m.TelemetryEvent
	wg        sync.WaitGroup
	closeOnce sync.Once
	closed    atomic.Bool
}

// NewSQLiteTelemetry returns a reporter writing to the database at path.
func NewSQLiteTelemetry(path string) *SQLiteTelemetry {
	return &SQLiteTelemetry{
		path: path,
		ch:   make(chan m.TelemetryEvent, telemetryQueueSize),
	}
}

func (s *SQLiteTelemetry) open() error {
	s.openOnce.Do(func() {
		if s.path == "" {
			s.openErr = fmt.Errorf("empty telemetry db path")
			return
		}

		if err := os.MkdirAll(filepath.Dir(s.path), 0o750); err != nil {
			s.openErr = fmt.Errorf("create telemetry dir: %w", err)
			return
		}

		db, err := sql.Open("sqlite", s.path)
		if err != nil {
			s.openErr = fmt.Errorf("open telemetry db: %w", err)
			return
		}

		db.SetMaxOpenConns(1)
		db.SetMaxIdleConns(1)

		if err := initTelemetrySchema(db); err != nil {
			_ = db.Close()
			s.openErr = fmt.Errorf("init telemetry schema: %w", err)

			return
		}

		s.db = db

		s.wg.Add(1)

		go func() {
			defer s.wg.Done()
			s.loop()
		}()
	})

	return s.openErr
}

func initTelemetrySchema(db *sql.DB) error {
	stmts := []string{
		"PRAGMA journal_mode=WAL;",
		"PRAGMA busy_timeout=5000;",
		`CREATE TABLE IF NOT EXISTS salvage_runs (
			id TEXT PRIMARY KEY,
			actor_id TEXT NOT NULL,
			actor_name TEXT NOT NULL,
			exec_count INTEGER NOT NULL,
			structure_count INTEGER NOT NULL,
			part_count INTEGER NOT NULL,
			recorded_at INTEGER NOT NULL
		);`,
		`CREATE INDEX IF NOT EXISTS idx_salvage_runs_actor ON salvage_runs(actor_id, recorded_at);`,
	}

	for _, stmt := range stmts {
		if _, err := db.Exec(stmt); err != nil {
			return err
		}
	}

	return nil
}

func (s *SQLiteTelemetry) loop() {
	for event := range s.ch {
		if err := s.insert(event); err != nil {
			slog.Error("Failed to record telemetry", "id", event.ID, "error", err)
		}
	}
}

func (s *SQLiteTelemetry) insert(event m.TelemetryEvent) error {
	_, err := s.db.Exec(
		`INSERT INTO salvage_runs (id, actor_id, actor_name, exec_count, structure_count, part_count, recorded_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		event.ID, event.ActorID, event.ActorName, event.ExecCount,
		event.StructureCount, event.PartCount, event.At.UnixNano(),
	)

	return err
}

// Report queues event for the writer. Events are dropped when the queue is
// full or the sink could not be opened.
func (s *SQLiteTelemetry) Report(_ context.Context, event m.TelemetryEvent) {
	if s == nil || s.closed.Load() {
		return
	}

	if err := s.open(); err != nil {
		slog.Warn("Telemetry unavailable", "error", err)
		return
	}

	select {
	case s.ch <- event:
	default:
		slog.Warn("Telemetry queue full, dropping event", "id", event.ID)
	}
}

// Recent returns up to limit events, newest first.
func (s *SQLiteTelemetry) Recent(ctx context.Context, limit int) ([]m.TelemetryEvent, error) {
	if err := s.open(); err != nil {
		return nil, err
	}

	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT id, actor_id, actor_name, exec_count, structure_count, part_count, recorded_at
		FROM salvage_runs ORDER BY recorded_at DESC, rowid DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("query telemetry: %w", err)
	}

	defer func() { _ = rows.Close() }()

	var events []m.TelemetryEvent

	for rows.Next() {
		var (
			event      m.TelemetryEvent
			recordedAt int64
		)

		if err := rows.Scan(&event.ID, &event.ActorID, &event.ActorName, &event.ExecCount,
			&event.StructureCount, &event.PartCount, &recordedAt); err != nil {
			return nil, fmt.Errorf("scan telemetry: %w", err)
		}

		event.At = time.Unix(0, recordedAt).UTC()
		events = append(events, event)
	}

	return events, rows.Err()
}

// Close drains queued events and closes the database.
func (s *SQLiteTelemetry) Close() error {
	var err error

	s.closeOnce.Do(func() {
		s.closed.Store(true)
		close(s.ch)
		s.wg.Wait()

		if s.db != nil {
			err = s.db.Close()
		}
	})

	return err
}

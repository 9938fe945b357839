package store

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	_ "github.com/lib/pq"

	"github.com/vaulto-labs/vaulto-gateway/types"
)

// Storage records per-request telemetry and serves the /api/stats aggregate.
// Submission is asynchronous so a slow insert never delays a response stream.
type Storage interface {
	SubmitInsertRequest(ctx context.Context, rec *types.RequestRecord)
	GetAnalytics() (types.Analytics, error)
	Close() error
}

type PostgresStore struct {
	db      *sql.DB
	inserts chan *types.RequestRecord
	done    chan struct{}
}

func NewPostgresStore(dsn string) (*PostgresStore, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}
	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("ping postgres: %w", err)
	}

	s := &PostgresStore{
		db:      db,
		inserts: make(chan *types.RequestRecord, 128),
		done:    make(chan struct{}),
	}
	go s.insertWorker()
	return s, nil
}

func (s *PostgresStore) Init() error {
	query := `CREATE TABLE IF NOT EXISTS chat_requests(
	id UUID PRIMARY KEY,
	context_label TEXT NOT NULL DEFAULT '',
	model VARCHAR(50) NOT NULL DEFAULT '',
	status VARCHAR(20) NOT NULL,
	cache_hit BOOL NOT NULL DEFAULT FALSE,
	response_chars INTEGER NOT NULL DEFAULT 0,
	frames INTEGER NOT NULL DEFAULT 0,
	time_taken_ms BIGINT NOT NULL DEFAULT 0,
	created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`
	if _, err := s.db.Exec(query); err != nil {
		return fmt.Errorf("create chat_requests table: %w", err)
	}
	return nil
}

// SubmitInsertRequest hands the record to the background worker. Telemetry
// is best-effort: if the buffer is full the record is dropped, never the
// request.
func (s *PostgresStore) SubmitInsertRequest(ctx context.Context, rec *types.RequestRecord) {
	select {
	case s.inserts <- rec:
	case <-ctx.Done():
	default:
		slog.Warn("telemetry buffer full, dropping record", "id", rec.ID)
	}
}

func (s *PostgresStore) insertWorker() {
	defer close(s.done)
	for rec := range s.inserts {
		query := `INSERT INTO chat_requests(id, context_label, model, status, cache_hit, response_chars, frames, time_taken_ms)
		VALUES($1, $2, $3, $4, $5, $6, $7, $8)`
		if _, err := s.db.Exec(query,
			rec.ID,
			rec.Context,
			rec.Model,
			string(rec.Status),
			rec.CacheHit,
			rec.ResponseChars,
			rec.Frames,
			rec.Time.Milliseconds(),
		); err != nil {
			slog.Warn("failed to insert request record", "error", err, "id", rec.ID)
		}
	}
}

func (s *PostgresStore) GetAnalytics() (types.Analytics, error) {
	query := `SELECT
	COUNT(*),
	COUNT(*) FILTER (WHERE cache_hit),
	COUNT(*) FILTER (WHERE status <> 'ok'),
	COALESCE(AVG(time_taken_ms), 0),
	COALESCE(AVG(response_chars), 0)
	FROM chat_requests`

	var a types.Analytics
	err := s.db.QueryRow(query).Scan(
		&a.TotalRequests,
		&a.CacheHits,
		&a.Errored,
		&a.AvgDurationMs,
		&a.AvgResponseSize,
	)
	if err != nil {
		return types.Analytics{}, fmt.Errorf("query analytics: %w", err)
	}
	return a, nil
}

func (s *PostgresStore) Close() error {
	close(s.inserts)
	<-s.done
	return s.db.Close()
}

package recorder

import (
	"database/sql"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
	_ "modernc.org/sqlite"
)

// SQLiteRecorder writes request events to a SQLite database.
type SQLiteRecorder struct {
	db *sql.DB
	mu sync.Mutex
}

// NewSQLiteRecorder opens (or creates) the database at dbPath and migrates it.
func NewSQLiteRecorder(dbPath string) (*SQLiteRecorder, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("set WAL mode: %w", err)
	}

	r := &SQLiteRecorder{db: db}
	if err := r.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	log.Info().Str("path", dbPath).Msg("sqlite recorder opened")
	return r, nil
}

func (r *SQLiteRecorder) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS request_log (
			id          INTEGER PRIMARY KEY AUTOINCREMENT,
			timestamp   INTEGER NOT NULL,
			request_id  TEXT,
			page        TEXT NOT NULL,
			symbols     TEXT,
			outcome     TEXT NOT NULL,
			error_kind  TEXT,
			points      INTEGER,
			skipped     INTEGER,
			duration_ms INTEGER
		)`,
		`CREATE INDEX IF NOT EXISTS idx_request_ts ON request_log(timestamp)`,
		`CREATE INDEX IF NOT EXISTS idx_request_page ON request_log(page, outcome)`,
	}

	for _, s := range stmts {
		if _, err := r.db.Exec(s); err != nil {
			return fmt.Errorf("exec %q: %w", s[:40], err)
		}
	}
	return nil
}

func (r *SQLiteRecorder) RecordRequest(evt *RequestEvent) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	ts := evt.Time
	if ts.IsZero() {
		ts = time.Now()
	}
	_, err := r.db.Exec(`INSERT INTO request_log
		(timestamp, request_id, page, symbols, outcome, error_kind, points, skipped, duration_ms)
		VALUES (?,?,?,?,?,?,?,?,?)`,
		ts.Unix(), evt.RequestID, evt.Page, strings.Join(evt.Symbols, ","),
		evt.Outcome, evt.ErrorKind, evt.Points, evt.Skipped, evt.DurationMS,
	)
	return err
}

// Recent returns up to limit events, newest first.
func (r *SQLiteRecorder) Recent(limit int) ([]RequestEvent, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	rows, err := r.db.Query(`SELECT timestamp, request_id, page, symbols, outcome, error_kind,
		points, skipped, duration_ms FROM request_log ORDER BY id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("query request_log: %w", err)
	}
	defer rows.Close()

	var events []RequestEvent
	for rows.Next() {
		var (
			evt     RequestEvent
			ts      int64
			symbols string
		)
		if err := rows.Scan(&ts, &evt.RequestID, &evt.Page, &symbols, &evt.Outcome, &evt.ErrorKind,
			&evt.Points, &evt.Skipped, &evt.DurationMS); err != nil {
			return nil, fmt.Errorf("scan request_log: %w", err)
		}
		evt.Time = time.Unix(ts, 0)
		if symbols != "" {
			evt.Symbols = strings.Split(symbols, ",")
		}
		events = append(events, evt)
	}
	return events, rows.Err()
}

func (r *SQLiteRecorder) Close() error {
	log.Info().Msg("closing sqlite recorder")
	return r.db.Close()
}

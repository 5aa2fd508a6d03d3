// Package store persists calibration sessions (recorded throw samples)
// and a log of solver runs in SQLite.
package store

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/danielpatrickdp/darts-advisor/internal/geom"
)

// #region schema
const schema = `
CREATE TABLE IF NOT EXISTS calibration_sessions (
	session_id  TEXT PRIMARY KEY,
	label       TEXT NOT NULL,
	created_at  TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS calibration_points (
	id          INTEGER PRIMARY KEY AUTOINCREMENT,
	session_id  TEXT NOT NULL,
	x           REAL NOT NULL,
	y           REAL NOT NULL,
	created_at  TEXT NOT NULL,
	FOREIGN KEY (session_id) REFERENCES calibration_sessions(session_id)
);
CREATE INDEX IF NOT EXISTS idx_points_session ON calibration_points(session_id);

CREATE TABLE IF NOT EXISTS solve_log (
	id          INTEGER PRIMARY KEY AUTOINCREMENT,
	run_id      TEXT NOT NULL,
	rule        TEXT NOT NULL,
	state       INTEGER NOT NULL,
	value       REAL NOT NULL,
	aim_x       REAL NOT NULL,
	aim_y       REAL NOT NULL,
	samples     INTEGER NOT NULL,
	elapsed_ms  INTEGER NOT NULL,
	created_at  TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_solve_run ON solve_log(run_id);
`
// #endregion schema

// #region store-struct
// Store manages calibration and solve history in SQLite.
type Store struct {
	db *sql.DB
}
// #endregion store-struct

// #region constructor
// NewStore opens a SQLite database and runs migrations.
func NewStore(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		return nil, fmt.Errorf("pragma: %w", err)
	}
	if _, err := db.Exec("PRAGMA foreign_keys=ON"); err != nil {
		return nil, fmt.Errorf("pragma fk: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return &Store{db: db}, nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// DB returns the underlying *sql.DB for use by other packages.
func (s *Store) DB() *sql.DB {
	return s.db
}
// #endregion constructor

// #region sessions
// CreateSession starts a new calibration session and returns it.
func (s *Store) CreateSession(label string) (Session, error) {
	sess := Session{
		SessionID: uuid.New().String(),
		Label:     label,
		CreatedAt: time.Now().UTC(),
	}
	_, err := s.db.Exec(
		`INSERT INTO calibration_sessions (session_id, label, created_at) VALUES (?, ?, ?)`,
		sess.SessionID, sess.Label, sess.CreatedAt.Format(time.RFC3339Nano),
	)
	if err != nil {
		return Session{}, fmt.Errorf("insert session: %w", err)
	}
	return sess, nil
}

// AddPoint appends one recorded throw to a session.
func (s *Store) AddPoint(sessionID string, p geom.Vec2) error {
	_, err := s.db.Exec(
		`INSERT INTO calibration_points (session_id, x, y, created_at) VALUES (?, ?, ?, ?)`,
		sessionID, p.X, p.Y, time.Now().UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("insert point: %w", err)
	}
	return nil
}

// SessionPoints returns a session's throws in insertion order.
func (s *Store) SessionPoints(sessionID string) ([]geom.Vec2, error) {
	rows, err := s.db.Query(
		`SELECT x, y FROM calibration_points WHERE session_id = ? ORDER BY id`,
		sessionID,
	)
	if err != nil {
		return nil, fmt.Errorf("query points: %w", err)
	}
	defer rows.Close()

	var points []geom.Vec2
	for rows.Next() {
		var p geom.Vec2
		if err := rows.Scan(&p.X, &p.Y); err != nil {
			return nil, fmt.Errorf("scan point: %w", err)
		}
		points = append(points, p)
	}
	return points, rows.Err()
}

// ListSessions returns all sessions, newest first.
func (s *Store) ListSessions() ([]Session, error) {
	rows, err := s.db.Query(
		`SELECT session_id, label, created_at FROM calibration_sessions ORDER BY created_at DESC`,
	)
	if err != nil {
		return nil, fmt.Errorf("query sessions: %w", err)
	}
	defer rows.Close()

	var sessions []Session
	for rows.Next() {
		var sess Session
		var created string
		if err := rows.Scan(&sess.SessionID, &sess.Label, &created); err != nil {
			return nil, fmt.Errorf("scan session: %w", err)
		}
		sess.CreatedAt, err = time.Parse(time.RFC3339Nano, created)
		if err != nil {
			return nil, fmt.Errorf("parse session time: %w", err)
		}
		sessions = append(sessions, sess)
	}
	return sessions, rows.Err()
}
// #endregion sessions

// #region solve-log
// LogSolve records one solver result.
func (s *Store) LogSolve(entry SolveEntry) error {
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now().UTC()
	}
	_, err := s.db.Exec(
		`INSERT INTO solve_log (run_id, rule, state, value, aim_x, aim_y, samples, elapsed_ms, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		entry.RunID, entry.Rule, entry.State, entry.Value,
		entry.AimX, entry.AimY, entry.Samples, entry.ElapsedMS,
		entry.CreatedAt.Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("log solve: %w", err)
	}
	return nil
}

// RecentSolves returns the newest solve log entries, up to limit.
func (s *Store) RecentSolves(limit int) ([]SolveEntry, error) {
	rows, err := s.db.Query(
		`SELECT run_id, rule, state, value, aim_x, aim_y, samples, elapsed_ms, created_at
		 FROM solve_log ORDER BY id DESC LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("query solves: %w", err)
	}
	defer rows.Close()

	var entries []SolveEntry
	for rows.Next() {
		var e SolveEntry
		var created string
		if err := rows.Scan(&e.RunID, &e.Rule, &e.State, &e.Value,
			&e.AimX, &e.AimY, &e.Samples, &e.ElapsedMS, &created); err != nil {
			return nil, fmt.Errorf("scan solve: %w", err)
		}
		e.CreatedAt, err = time.Parse(time.RFC3339Nano, created)
		if err != nil {
			return nil, fmt.Errorf("parse solve time: %w", err)
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}
// #endregion solve-log

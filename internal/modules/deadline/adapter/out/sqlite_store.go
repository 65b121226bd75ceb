package out

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"shelfcontrol/internal/modules/deadline/domain"
	deadlineout "shelfcontrol/internal/modules/deadline/port/out"
	apperrors "shelfcontrol/internal/platform/errors"

	_ "modernc.org/sqlite"
)

const timeLayout = "2006-01-02T15:04:05.000Z07:00"

type SQLiteDeadlineStore struct {
	db *sql.DB
}

func NewSQLiteDeadlineStore(dbPath string) (deadlineout.DeadlineStore, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, fmt.Errorf("create db dir: %w", err)
	}
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	store := &SQLiteDeadlineStore{db: db}
	if err := store.ensureSchema(context.Background()); err != nil {
		return nil, err
	}
	return store, nil
}

func (s *SQLiteDeadlineStore) ensureSchema(ctx context.Context) error {
	const ddl = `
CREATE TABLE IF NOT EXISTS deadlines (
  id TEXT PRIMARY KEY,
  title TEXT NOT NULL,
  author TEXT,
  format TEXT NOT NULL,
  flexibility TEXT NOT NULL,
  total_quantity REAL NOT NULL,
  due_at TEXT,
  created_at TEXT NOT NULL,
  updated_at TEXT NOT NULL
);
CREATE TABLE IF NOT EXISTS progress_entries (
  id TEXT PRIMARY KEY,
  deadline_id TEXT NOT NULL REFERENCES deadlines(id),
  value REAL NOT NULL,
  ignore_in_calcs INTEGER NOT NULL DEFAULT 0,
  time_spent_min REAL NOT NULL DEFAULT 0,
  created_at TEXT NOT NULL
);
CREATE TABLE IF NOT EXISTS status_entries (
  id TEXT PRIMARY KEY,
  deadline_id TEXT NOT NULL REFERENCES deadlines(id),
  status TEXT NOT NULL,
  created_at TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_progress_deadline ON progress_entries(deadline_id, created_at);
CREATE INDEX IF NOT EXISTS idx_status_deadline ON status_entries(deadline_id, created_at);
`
	if _, err := s.db.ExecContext(ctx, ddl); err != nil {
		return fmt.Errorf("create tables: %w", err)
	}
	return nil
}

func (s *SQLiteDeadlineStore) SaveDeadline(ctx context.Context, d domain.Deadline) error {
	const stmt = `
INSERT INTO deadlines (id, title, author, format, flexibility, total_quantity, due_at, created_at, updated_at)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
ON CONFLICT(id) DO UPDATE SET
  title=excluded.title,
  author=excluded.author,
  format=excluded.format,
  flexibility=excluded.flexibility,
  total_quantity=excluded.total_quantity,
  due_at=excluded.due_at,
  updated_at=excluded.updated_at;
`
	_, err := s.db.ExecContext(ctx, stmt,
		d.ID,
		d.Title,
		d.Author,
		string(d.Format),
		string(d.Flexibility),
		d.TotalQuantity,
		encodeTime(d.DueAt),
		encodeTime(d.CreatedAt),
		encodeTime(d.UpdatedAt),
	)
	if err != nil {
		return fmt.Errorf("upsert deadline: %w", err)
	}
	return nil
}

func (s *SQLiteDeadlineStore) FindByID(ctx context.Context, id string) (domain.Deadline, error) {
	const query = `
SELECT id, title, author, format, flexibility, total_quantity, due_at, created_at, updated_at
FROM deadlines WHERE id = ?`
	row := s.db.QueryRowContext(ctx, query, id)
	deadline, err := scanDeadline(row)
	if err == sql.ErrNoRows {
		return domain.Deadline{}, fmt.Errorf("deadline %s: %w", id, apperrors.ErrNotFound)
	}
	if err != nil {
		return domain.Deadline{}, fmt.Errorf("find deadline: %w", err)
	}
	if err := s.loadLogs(ctx, &deadline); err != nil {
		return domain.Deadline{}, err
	}
	return deadline, nil
}

func (s *SQLiteDeadlineStore) List(ctx context.Context) ([]domain.Deadline, error) {
	const query = `
SELECT id, title, author, format, flexibility, total_quantity, due_at, created_at, updated_at
FROM deadlines ORDER BY created_at, id`
	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list deadlines: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var out []domain.Deadline
	for rows.Next() {
		deadline, err := scanDeadline(rows)
		if err != nil {
			return nil, fmt.Errorf("scan deadline: %w", err)
		}
		out = append(out, deadline)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list deadlines: %w", err)
	}
	for i := range out {
		if err := s.loadLogs(ctx, &out[i]); err != nil {
			return nil, err
		}
	}
	return out, nil
}

func (s *SQLiteDeadlineStore) AppendProgress(ctx context.Context, entry domain.ProgressEntry) error {
	const stmt = `
INSERT INTO progress_entries (id, deadline_id, value, ignore_in_calcs, time_spent_min, created_at)
VALUES (?, ?, ?, ?, ?, ?)`
	ignore := 0
	if entry.IgnoreInCalcs {
		ignore = 1
	}
	_, err := s.db.ExecContext(ctx, stmt, entry.ID, entry.DeadlineID, entry.Value, ignore, entry.TimeSpentMin, encodeTime(entry.CreatedAt))
	if err != nil {
		return fmt.Errorf("append progress: %w", err)
	}
	return nil
}

func (s *SQLiteDeadlineStore) AppendStatus(ctx context.Context, entry domain.StatusEntry) error {
	const stmt = `
INSERT INTO status_entries (id, deadline_id, status, created_at)
VALUES (?, ?, ?, ?)`
	_, err := s.db.ExecContext(ctx, stmt, entry.ID, entry.DeadlineID, string(entry.Status), encodeTime(entry.CreatedAt))
	if err != nil {
		return fmt.Errorf("append status: %w", err)
	}
	return nil
}

func (s *SQLiteDeadlineStore) loadLogs(ctx context.Context, d *domain.Deadline) error {
	const progressQuery = `
SELECT id, value, ignore_in_calcs, time_spent_min, created_at
FROM progress_entries WHERE deadline_id = ? ORDER BY created_at, id`
	rows, err := s.db.QueryContext(ctx, progressQuery, d.ID)
	if err != nil {
		return fmt.Errorf("load progress log: %w", err)
	}
	defer func() { _ = rows.Close() }()
	for rows.Next() {
		var entry domain.ProgressEntry
		var ignore int
		var createdAt string
		if err := rows.Scan(&entry.ID, &entry.Value, &ignore, &entry.TimeSpentMin, &createdAt); err != nil {
			return fmt.Errorf("scan progress entry: %w", err)
		}
		entry.DeadlineID = d.ID
		entry.IgnoreInCalcs = ignore != 0
		entry.CreatedAt = decodeTime(createdAt)
		d.Progress = append(d.Progress, entry)
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("load progress log: %w", err)
	}

	const statusQuery = `
SELECT id, status, created_at
FROM status_entries WHERE deadline_id = ? ORDER BY created_at, id`
	statusRows, err := s.db.QueryContext(ctx, statusQuery, d.ID)
	if err != nil {
		return fmt.Errorf("load status log: %w", err)
	}
	defer func() { _ = statusRows.Close() }()
	for statusRows.Next() {
		var entry domain.StatusEntry
		var status, createdAt string
		if err := statusRows.Scan(&entry.ID, &status, &createdAt); err != nil {
			return fmt.Errorf("scan status entry: %w", err)
		}
		entry.DeadlineID = d.ID
		entry.Status = domain.Status(status)
		entry.CreatedAt = decodeTime(createdAt)
		d.StatusLog = append(d.StatusLog, entry)
	}
	if err := statusRows.Err(); err != nil {
		return fmt.Errorf("load status log: %w", err)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanDeadline(row rowScanner) (domain.Deadline, error) {
	var d domain.Deadline
	var author, dueAt sql.NullString
	var format, flexibility, createdAt, updatedAt string
	err := row.Scan(&d.ID, &d.Title, &author, &format, &flexibility, &d.TotalQuantity, &dueAt, &createdAt, &updatedAt)
	if err != nil {
		return domain.Deadline{}, err
	}
	d.Author = author.String
	d.Format = domain.Format(format)
	d.Flexibility = domain.Flexibility(flexibility)
	if dueAt.Valid {
		d.DueAt = decodeTime(dueAt.String)
	}
	d.CreatedAt = decodeTime(createdAt)
	d.UpdatedAt = decodeTime(updatedAt)
	return d, nil
}

func encodeTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(timeLayout)
}

func decodeTime(raw string) time.Time {
	if raw == "" {
		return time.Time{}
	}
	t, _ := time.Parse(timeLayout, raw)
	return t
}

// Package submissionstore is an embedded SQLite submission store for
// single-host deployments and tests.
package submissionstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	msqlite "modernc.org/sqlite"
	sqlite3lib "modernc.org/sqlite/lib"

	"gitlab.com/bhajan-roster.net/internal/core/ports/primary"
	"gitlab.com/bhajan-roster.net/internal/core/ports/secondary"
	"gitlab.com/bhajan-roster.net/internal/domain"
	"gitlab.com/bhajan-roster.net/internal/static/errs"
	querybuilder "gitlab.com/bhajan-roster.net/internal/utils"
)

var _ secondary.SubmissionStore = (*Store)(nil)

const schema = `
CREATE TABLE IF NOT EXISTS submissions (
    id TEXT PRIMARY KEY,
    session_date TEXT NOT NULL,
    deity_key TEXT NOT NULL,
    deity TEXT NOT NULL,
    singer_name TEXT NOT NULL CHECK (singer_name <> ''),
    gender TEXT NOT NULL DEFAULT '',
    partner_name TEXT,
    title TEXT NOT NULL CHECK (title <> ''),
    scale TEXT NOT NULL,
    speed TEXT NOT NULL CHECK (speed IN ('slow', 'medium', 'fast')),
    created_at INTEGER NOT NULL,
    UNIQUE (session_date, deity_key)
);

CREATE INDEX IF NOT EXISTS idx_submissions_session_date ON submissions(session_date);
`

// Store persists submissions in SQLite.
type Store struct {
	db     *sqlx.DB
	logger primary.Logger
}

// submissionRow mirrors the table; created_at is unix milliseconds.
type submissionRow struct {
	ID          string         `db:"id"`
	SessionDate string         `db:"session_date"`
	SingerName  string         `db:"singer_name"`
	Gender      string         `db:"gender"`
	PartnerName sql.NullString `db:"partner_name"`
	Title       string         `db:"title"`
	Deity       string         `db:"deity"`
	Scale       string         `db:"scale"`
	Speed       string         `db:"speed"`
	CreatedAt   int64          `db:"created_at"`
}

// Open opens (creating if needed) a SQLite database at path and applies the schema.
func Open(ctx context.Context, path string, logger primary.Logger) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("storage path is required")
	}
	dsn := filepath.Clean(path) + "?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)"
	db, err := sqlx.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	// one writer at a time; SQLite serialises writes anyway
	db.SetMaxOpenConns(1)
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}
	if _, err := db.ExecContext(ctx, schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to create schema: %w", err)
	}
	return &Store{db: db, logger: logger}, nil
}

// Close closes the SQLite handle.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

func (s *Store) InsertIfAbsent(ctx context.Context, sub *domain.Submission) (secondary.InsertResult, error) {
	tbl := domain.GetSubmissionTable()
	var partner sql.NullString
	if sub.PartnerName != nil {
		partner = sql.NullString{String: *sub.PartnerName, Valid: true}
	}
	query, args := querybuilder.NewQueryBuilder("").
		Insert(
			tbl.ID, tbl.SessionDate, tbl.DeityKey, tbl.Deity,
			tbl.SingerName, tbl.Gender, tbl.PartnerName,
			tbl.Title, tbl.Scale, tbl.Speed, tbl.CreatedAt,
		).
		Into(tbl.TableName()).
		Values(
			sub.ID.String(), sub.SessionDate.String(), domain.DeityKey(sub.Deity), sub.Deity,
			sub.SingerName, sub.Gender, partner,
			sub.Title, sub.Scale, string(sub.Speed), sub.CreatedAt.UTC().UnixMilli(),
		).
		OnConflict(tbl.SessionDate, tbl.DeityKey).
		DoNothing().
		Build()

	res, err := s.db.ExecContext(ctx, query, args...)
	if err != nil {
		if isUniqueViolation(err) {
			return secondary.InsertResult{}, errs.ErrSlotConflict
		}
		s.logger.Error("Failed to insert submission", "error", err)
		return secondary.InsertResult{}, fmt.Errorf("failed to insert submission: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return secondary.InsertResult{}, fmt.Errorf("failed to read affected rows: %w", err)
	}
	if affected == 1 {
		return secondary.InsertResult{Inserted: true}, nil
	}

	existing, err := s.FindByKey(ctx, sub.SessionDate, sub.Deity)
	if err != nil {
		return secondary.InsertResult{}, err
	}
	if existing == nil {
		return secondary.InsertResult{}, errs.ErrSlotConflict
	}
	return secondary.InsertResult{Existing: existing}, nil
}

func (s *Store) FindByKey(ctx context.Context, date domain.SessionDate, deity string) (*domain.Submission, error) {
	tbl := domain.GetSubmissionTable()
	query, args := querybuilder.NewQueryBuilder("").
		Select(tbl.Columns()...).
		From(tbl.TableName()).
		Where(fmt.Sprintf("%s = ?", tbl.SessionDate), date.String()).
		And(fmt.Sprintf("%s = ?", tbl.DeityKey), domain.DeityKey(deity)).
		Build()

	var row submissionRow
	if err := s.db.GetContext(ctx, &row, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		s.logger.Error("Failed to get submission", "date", date, "deity", deity, "error", err)
		return nil, fmt.Errorf("failed to get submission: %w", err)
	}
	return row.toDomain()
}

func (s *Store) FindAllByDate(ctx context.Context, date domain.SessionDate) ([]*domain.Submission, error) {
	tbl := domain.GetSubmissionTable()
	query, args := querybuilder.NewQueryBuilder("").
		Select(tbl.Columns()...).
		From(tbl.TableName()).
		Where(fmt.Sprintf("%s = ?", tbl.SessionDate), date.String()).
		OrderBy(tbl.CreatedAt, true).
		OrderBy(tbl.ID, true).
		Build()

	var rows []submissionRow
	if err := s.db.SelectContext(ctx, &rows, query, args...); err != nil {
		s.logger.Error("Failed to list submissions", "date", date, "error", err)
		return nil, fmt.Errorf("failed to list submissions: %w", err)
	}
	subs := make([]*domain.Submission, 0, len(rows))
	for _, row := range rows {
		sub, err := row.toDomain()
		if err != nil {
			return nil, err
		}
		subs = append(subs, sub)
	}
	return subs, nil
}

func (row submissionRow) toDomain() (*domain.Submission, error) {
	id, err := uuid.Parse(row.ID)
	if err != nil {
		return nil, fmt.Errorf("submission id %q: %w", row.ID, err)
	}
	date, err := domain.ParseSessionDate(row.SessionDate)
	if err != nil {
		return nil, err
	}
	sub := &domain.Submission{
		ID:          id,
		SessionDate: date,
		SingerName:  row.SingerName,
		Gender:      row.Gender,
		Title:       row.Title,
		Deity:       row.Deity,
		Scale:       row.Scale,
		Speed:       domain.Tempo(row.Speed),
		CreatedAt:   time.UnixMilli(row.CreatedAt).UTC(),
	}
	if row.PartnerName.Valid {
		partner := row.PartnerName.String
		sub.PartnerName = &partner
	}
	return sub, nil
}

func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	var sqliteErr *msqlite.Error
	if errors.As(err, &sqliteErr) {
		switch sqliteErr.Code() {
		case sqlite3lib.SQLITE_CONSTRAINT_PRIMARYKEY, sqlite3lib.SQLITE_CONSTRAINT_UNIQUE:
			return true
		}
	}
	return strings.Contains(strings.ToLower(err.Error()), "unique constraint failed")
}

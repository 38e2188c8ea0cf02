// Package submissionrepository is the PostgreSQL submission store.
package submissionrepository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"gitlab.com/bhajan-roster.net/internal/core/ports/primary"
	"gitlab.com/bhajan-roster.net/internal/core/ports/secondary"
	"gitlab.com/bhajan-roster.net/internal/domain"
	"gitlab.com/bhajan-roster.net/internal/static/errs"
	querybuilder "gitlab.com/bhajan-roster.net/internal/utils"
)

var _ secondary.SubmissionStore = (*SubmissionRepository)(nil)

// uniqueViolation is the SQLSTATE for unique_violation.
const uniqueViolation = "23505"

// SubmissionRepository implements SubmissionStore with PostgreSQL
type SubmissionRepository struct {
	db     *sqlx.DB
	logger primary.Logger
	schema string
}

// NewSubmissionRepository creates a new PostgreSQL submission repository.
// schema qualifies the submissions table; empty uses the search path.
func NewSubmissionRepository(db *sqlx.DB, logger primary.Logger, schema string) *SubmissionRepository {
	return &SubmissionRepository{
		db:     db,
		logger: logger,
		schema: schema,
	}
}

// InsertIfAbsent relies on the (session_date, deity_key) unique constraint:
// ON CONFLICT DO NOTHING makes the losing insert affect zero rows.
func (r *SubmissionRepository) InsertIfAbsent(ctx context.Context, sub *domain.Submission) (secondary.InsertResult, error) {
	tbl := domain.GetSubmissionTable()
	query, args := querybuilder.NewQueryBuilder(r.schema).
		Insert(
			tbl.ID, tbl.SessionDate, tbl.DeityKey, tbl.Deity,
			tbl.SingerName, tbl.Gender, tbl.PartnerName,
			tbl.Title, tbl.Scale, tbl.Speed, tbl.CreatedAt,
		).
		Into(tbl.TableName()).
		Values(
			sub.ID, sub.SessionDate, domain.DeityKey(sub.Deity), sub.Deity,
			sub.SingerName, sub.Gender, sub.PartnerName,
			sub.Title, sub.Scale, sub.Speed, sub.CreatedAt,
		).
		OnConflict(tbl.SessionDate, tbl.DeityKey).
		DoNothing().
		Build()

	res, err := r.db.ExecContext(ctx, r.db.Rebind(query), args...)
	if err != nil {
		if isUniqueViolation(err) {
			return secondary.InsertResult{}, errs.ErrSlotConflict
		}
		r.logger.Error("Failed to insert submission", "error", err)
		return secondary.InsertResult{}, fmt.Errorf("failed to insert submission: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return secondary.InsertResult{}, fmt.Errorf("failed to read affected rows: %w", err)
	}
	if affected == 1 {
		return secondary.InsertResult{Inserted: true}, nil
	}

	existing, err := r.FindByKey(ctx, sub.SessionDate, sub.Deity)
	if err != nil {
		return secondary.InsertResult{}, err
	}
	if existing == nil {
		return secondary.InsertResult{}, errs.ErrSlotConflict
	}
	return secondary.InsertResult{Existing: existing}, nil
}

// FindByKey retrieves the submission holding a slot
func (r *SubmissionRepository) FindByKey(ctx context.Context, date domain.SessionDate, deity string) (*domain.Submission, error) {
	tbl := domain.GetSubmissionTable()
	query, args := querybuilder.NewQueryBuilder(r.schema).
		Select(tbl.Columns()...).
		From(tbl.TableName()).
		Where(fmt.Sprintf("%s = ?", tbl.SessionDate), date).
		And(fmt.Sprintf("%s = ?", tbl.DeityKey), domain.DeityKey(deity)).
		Build()

	var sub domain.Submission
	err := r.db.GetContext(ctx, &sub, r.db.Rebind(query), args...)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		r.logger.Error("Failed to get submission", "date", date, "deity", deity, "error", err)
		return nil, fmt.Errorf("failed to get submission: %w", err)
	}
	return &sub, nil
}

// FindAllByDate retrieves every submission of a session
func (r *SubmissionRepository) FindAllByDate(ctx context.Context, date domain.SessionDate) ([]*domain.Submission, error) {
	tbl := domain.GetSubmissionTable()
	query, args := querybuilder.NewQueryBuilder(r.schema).
		Select(tbl.Columns()...).
		From(tbl.TableName()).
		Where(fmt.Sprintf("%s = ?", tbl.SessionDate), date).
		OrderBy(tbl.CreatedAt, true).
		OrderBy(tbl.ID, true).
		Build()

	subs := make([]*domain.Submission, 0)
	if err := r.db.SelectContext(ctx, &subs, r.db.Rebind(query), args...); err != nil {
		r.logger.Error("Failed to list submissions", "date", date, "error", err)
		return nil, fmt.Errorf("failed to list submissions: %w", err)
	}
	return subs, nil
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == uniqueViolation
	}
	return false
}

// Package subject implements the Subject repository using PostgreSQL.
package subject

import (
	"context"
	"fmt"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	postgres "github.com/heartmarshall/inkblot-backend/internal/adapter/postgres"
	"github.com/heartmarshall/inkblot-backend/internal/domain"
)

const table = "subjects"

var columns = []string{
	"id", "name", "gender", "birthdate", "test_date", "age", "notes", "consent", "created_at", "updated_at",
}

// Repo provides subject persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new subject repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// GetByID returns a subject by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Subject, error) {
	query, args, err := postgres.Builder().
		Select(columns...).
		From(table).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get subject: %w", err)
	}

	row := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, query, args...)
	s, err := scanSubject(row)
	if err != nil {
		return nil, postgres.MapError(err, "subject", id)
	}
	return &s, nil
}

// Create inserts a new subject and returns it as stored.
func (r *Repo) Create(ctx context.Context, s *domain.Subject) (*domain.Subject, error) {
	query, args, err := postgres.Builder().
		Insert(table).
		Columns(columns...).
		Values(s.ID, s.Name, string(s.Gender), s.Birthdate, s.TestDate, s.Age, s.Notes, s.Consent, s.CreatedAt, s.UpdatedAt).
		Suffix("RETURNING " + strings.Join(columns, ", ")).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build insert subject: %w", err)
	}

	row := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, query, args...)
	out, err := scanSubject(row)
	if err != nil {
		return nil, postgres.MapError(err, "subject", s.ID)
	}
	return &out, nil
}

// ListIDs returns the IDs of every subject, oldest first.
func (r *Repo) ListIDs(ctx context.Context) ([]uuid.UUID, error) {
	query, args, err := postgres.Builder().
		Select("id").
		From(table).
		OrderBy("created_at ASC", "id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list subject ids: %w", err)
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.db).Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list subject ids: %w", err)
	}
	ids, err := pgx.CollectRows(rows, pgx.RowTo[uuid.UUID])
	if err != nil {
		return nil, fmt.Errorf("list subject ids: %w", err)
	}
	return ids, nil
}

func scanSubject(row pgx.Row) (domain.Subject, error) {
	var (
		s      domain.Subject
		gender string
	)
	err := row.Scan(&s.ID, &s.Name, &gender, &s.Birthdate, &s.TestDate, &s.Age, &s.Notes, &s.Consent, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		return domain.Subject{}, err
	}
	s.Gender = domain.Gender(gender)
	return s, nil
}

// Package response implements the Response repository using PostgreSQL.
package response

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	postgres "github.com/heartmarshall/inkblot-backend/internal/adapter/postgres"
	"github.com/heartmarshall/inkblot-backend/internal/domain"
	"github.com/heartmarshall/inkblot-backend/internal/scoring"
)

const table = "responses"

var selectColumns = []string{
	"id", "subject_id", "card", "response_num",
	"time", "verbalized", "inquiry", "rotation", "comment", "loc_num",
	"location", "dev_qual", "determinants", "pair", "form_qual", "content", "popular", "z", "special",
	"created_at", "updated_at",
}

var insertColumns = append([]string{"card_no"}, selectColumns...)

// Repo provides response persistence backed by PostgreSQL.
type Repo struct {
	db  postgres.Querier
	now func() time.Time
}

// New creates a new response repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db, now: time.Now}
}

// ListBySubject returns the subject's responses ordered by card number and
// response number. Responses whose card label cannot be read sort last.
func (r *Repo) ListBySubject(ctx context.Context, subjectID uuid.UUID) ([]domain.Response, error) {
	query, args, err := postgres.Builder().
		Select(selectColumns...).
		From(table).
		Where(squirrel.Eq{"subject_id": subjectID}).
		OrderBy("card_no ASC NULLS LAST", "response_num ASC", "id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list responses: %w", err)
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.db).Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list responses: %w", err)
	}
	out, err := pgx.CollectRows(rows, scanResponse)
	if err != nil {
		return nil, fmt.Errorf("list responses: %w", err)
	}
	return out, nil
}

// CreateBatch inserts responses for a subject in a single statement.
func (r *Repo) CreateBatch(ctx context.Context, subjectID uuid.UUID, responses []domain.Response) error {
	if len(responses) == 0 {
		return nil
	}

	now := r.now().UTC()
	b := postgres.Builder().Insert(table).Columns(insertColumns...)
	for _, resp := range responses {
		id := resp.ID
		if id == uuid.Nil {
			id = uuid.New()
		}
		created := resp.CreatedAt
		if created.IsZero() {
			created = now
		}
		b = b.Values(
			cardNumber(resp.Card),
			id, subjectID, resp.Card, resp.ResponseNum,
			resp.Time, resp.Verbalized, resp.Inquiry, resp.Rotation, resp.Comment, resp.LocationNum,
			resp.Location, resp.DevQual, resp.Determinants, resp.Pair, resp.FormQual, resp.Content, resp.Popular, resp.Z, resp.Special,
			created, now,
		)
	}

	query, args, err := b.ToSql()
	if err != nil {
		return fmt.Errorf("build insert responses: %w", err)
	}
	if _, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, query, args...); err != nil {
		return postgres.MapError(err, "responses of subject", subjectID)
	}
	return nil
}

// ReplaceAll deletes every response of the subject and inserts the given
// set. Callers run it inside a transaction.
func (r *Repo) ReplaceAll(ctx context.Context, subjectID uuid.UUID, responses []domain.Response) error {
	query, args, err := postgres.Builder().
		Delete(table).
		Where(squirrel.Eq{"subject_id": subjectID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete responses: %w", err)
	}
	if _, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, query, args...); err != nil {
		return postgres.MapError(err, "responses of subject", subjectID)
	}
	return r.CreateBatch(ctx, subjectID, responses)
}

// UpdateScoredFields persists the card and special fields rewritten by the
// scoring engine.
func (r *Repo) UpdateScoredFields(ctx context.Context, responses []domain.Response) error {
	now := r.now().UTC()
	q := postgres.QuerierFromCtx(ctx, r.db)

	for _, resp := range responses {
		query, args, err := postgres.Builder().
			Update(table).
			Set("card", resp.Card).
			Set("card_no", cardNumber(resp.Card)).
			Set("special", resp.Special).
			Set("updated_at", now).
			Where(squirrel.Eq{"id": resp.ID}).
			ToSql()
		if err != nil {
			return fmt.Errorf("build update response: %w", err)
		}

		tag, err := q.Exec(ctx, query, args...)
		if err != nil {
			return postgres.MapError(err, "response", resp.ID)
		}
		if tag.RowsAffected() == 0 {
			return fmt.Errorf("response %s: %w", resp.ID, domain.ErrNotFound)
		}
	}
	return nil
}

// cardNumber is the sort key stored next to the free-form card label.
func cardNumber(label string) any {
	if c, ok := scoring.ParseCard(label); ok {
		return int16(c)
	}
	return nil
}

func scanResponse(row pgx.CollectableRow) (domain.Response, error) {
	var r domain.Response
	err := row.Scan(
		&r.ID, &r.SubjectID, &r.Card, &r.ResponseNum,
		&r.Time, &r.Verbalized, &r.Inquiry, &r.Rotation, &r.Comment, &r.LocationNum,
		&r.Location, &r.DevQual, &r.Determinants, &r.Pair, &r.FormQual, &r.Content, &r.Popular, &r.Z, &r.Special,
		&r.CreatedAt, &r.UpdatedAt,
	)
	return r, err
}

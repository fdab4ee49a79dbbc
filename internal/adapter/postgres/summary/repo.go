// Package summary stores computed structural summaries as JSONB documents.
package summary

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	postgres "github.com/heartmarshall/inkblot-backend/internal/adapter/postgres"
	"github.com/heartmarshall/inkblot-backend/internal/domain"
)

const table = "structural_summaries"

// Repo provides summary persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new summary repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// Upsert stores s as the subject's summary, overwriting any earlier one.
func (r *Repo) Upsert(ctx context.Context, s domain.StructuralSummary) error {
	data, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("marshal summary: %w", err)
	}

	query, args, err := postgres.Builder().
		Insert(table).
		Columns("subject_id", "age", "data", "computed_at").
		Values(s.SubjectID, s.Age, data, s.ComputedAt).
		Suffix("ON CONFLICT (subject_id) DO UPDATE SET age = EXCLUDED.age, data = EXCLUDED.data, computed_at = EXCLUDED.computed_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("build upsert summary: %w", err)
	}

	if _, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, query, args...); err != nil {
		return postgres.MapError(err, "summary", s.SubjectID)
	}
	return nil
}

// GetBySubject returns the stored summary of a subject.
func (r *Repo) GetBySubject(ctx context.Context, subjectID uuid.UUID) (*domain.StructuralSummary, error) {
	query, args, err := postgres.Builder().
		Select("data").
		From(table).
		Where(squirrel.Eq{"subject_id": subjectID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get summary: %w", err)
	}

	var data []byte
	if err := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, query, args...).Scan(&data); err != nil {
		return nil, postgres.MapError(err, "summary", subjectID)
	}

	var s domain.StructuralSummary
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("decode summary %s: %w", subjectID, err)
	}
	return &s, nil
}

// Delete removes the subject's summary. Deleting a summary that was never
// computed is not an error.
func (r *Repo) Delete(ctx context.Context, subjectID uuid.UUID) error {
	query, args, err := postgres.Builder().
		Delete(table).
		Where(squirrel.Eq{"subject_id": subjectID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete summary: %w", err)
	}

	if _, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, query, args...); err != nil {
		return postgres.MapError(err, "summary", subjectID)
	}
	return nil
}

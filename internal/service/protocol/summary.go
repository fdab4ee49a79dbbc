package protocol

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/inkblot-backend/internal/domain"
	"github.com/heartmarshall/inkblot-backend/internal/scoring"
)

// ComputeSummary scores the subject's protocol and stores the result,
// replacing any earlier summary. The scored card and special fields are
// written back to the responses in the same transaction.
//
// A protocol without a response for every card fails with an
// IncompleteProtocolError and leaves the stored data untouched.
func (s *Service) ComputeSummary(ctx context.Context, subjectID uuid.UUID) (summary *domain.StructuralSummary, err error) {
	start := s.now()
	var scored int
	defer func() { s.metrics.ObserveCompute(s.now().Sub(start), scored, err) }()

	subj, err := s.subjects.GetByID(ctx, subjectID)
	if err != nil {
		return nil, fmt.Errorf("get subject: %w", err)
	}
	rs, err := s.responses.ListBySubject(ctx, subjectID)
	if err != nil {
		return nil, fmt.Errorf("list responses: %w", err)
	}

	cards := make([]string, len(rs))
	for i, r := range rs {
		cards[i] = r.Card
	}
	if missing := scoring.MissingCards(cards); len(missing) > 0 {
		return nil, &domain.IncompleteProtocolError{Missing: missing}
	}

	result := scoring.Compute(rs, subj.Age)
	out := result.Summary
	out.SubjectID = subjectID
	out.ComputedAt = start.UTC()

	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.responses.UpdateScoredFields(txCtx, result.Responses); err != nil {
			return fmt.Errorf("update scored fields: %w", err)
		}
		if err := s.summaries.Upsert(txCtx, out); err != nil {
			return fmt.Errorf("upsert summary: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	s.invalidate(ctx, subjectID)

	scored = len(rs)
	s.metrics.ObserveIndices(out.Indices)
	s.log.InfoContext(ctx, "summary computed",
		slog.String("subject_id", subjectID.String()),
		slog.Int("responses", len(rs)),
		slog.Int("age", subj.Age),
	)
	return &out, nil
}

// GetSummary returns the stored summary of a subject.
func (s *Service) GetSummary(ctx context.Context, subjectID uuid.UUID) (*domain.StructuralSummary, error) {
	out, err := s.summaries.GetBySubject(ctx, subjectID)
	if err != nil {
		return nil, fmt.Errorf("get summary: %w", err)
	}
	return out, nil
}

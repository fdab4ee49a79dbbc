package protocol

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/inkblot-backend/internal/domain"
	"github.com/heartmarshall/inkblot-backend/internal/scoring"
)

// SubmitResponses normalizes, validates and stores a batch of responses,
// then rescores the protocol when every card is covered.
//
// Invalid symbols and blocking Z advisories reject the whole batch with a
// ValidationError naming each offending field. A stored set that misses a
// card drops the subject's previous summary.
//
// Once the batch is stored the call succeeds: a scoring failure is logged
// and reported in SubmitResult.ScoringError, never returned as an error.
func (s *Service) SubmitResponses(ctx context.Context, input SubmitInput) (*SubmitResult, error) {
	if err := input.Validate(s.limits.MaxResponses); err != nil {
		return nil, err
	}
	if _, err := s.subjects.GetByID(ctx, input.SubjectID); err != nil {
		return nil, fmt.Errorf("get subject: %w", err)
	}

	result := &SubmitResult{Responses: make([]domain.Response, len(input.Responses))}
	var errs []domain.FieldError

	now := s.now().UTC()
	for idx, raw := range input.Responses {
		r, fixed := scoring.NormalizeResponse(raw)
		if fixed {
			result.Corrected++
		}
		r.ID = uuid.New()
		r.SubjectID = input.SubjectID
		r.CreatedAt = now
		r.UpdatedAt = now

		for _, fe := range scoring.ValidateResponse(r) {
			errs = append(errs, domain.FieldError{Field: responseField(idx, fe.Field), Message: fe.Message})
		}
		for _, adv := range scoring.CheckZ(r.Card, r.Location, r.DevQual, r.Z) {
			s.metrics.ObserveAdvisory(string(adv.Code))
			if adv.Blocking() {
				errs = append(errs, domain.FieldError{Field: responseField(idx, adv.Field), Message: adv.Message})
				continue
			}
			result.Advisories = append(result.Advisories, ResponseAdvisory{Index: idx, Advisory: adv})
		}
		result.Responses[idx] = r
	}
	if len(errs) > 0 {
		return nil, domain.NewValidationErrors(errs)
	}

	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		cards, err := s.storeResponses(txCtx, input, result.Responses)
		if err != nil {
			return err
		}
		if len(scoring.MissingCards(cards)) == 0 {
			return nil
		}
		if err := s.summaries.Delete(txCtx, input.SubjectID); err != nil {
			return fmt.Errorf("delete summary: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("store responses: %w", err)
	}
	s.invalidate(ctx, input.SubjectID)

	s.log.InfoContext(ctx, "responses stored",
		slog.String("subject_id", input.SubjectID.String()),
		slog.Int("count", len(result.Responses)),
		slog.Bool("append", input.Append),
		slog.Int("advisories", len(result.Advisories)),
	)

	summary, err := s.ComputeSummary(ctx, input.SubjectID)
	var incomplete *domain.IncompleteProtocolError
	switch {
	case errors.As(err, &incomplete):
		result.Missing = incomplete.Missing
	case err != nil:
		s.log.ErrorContext(ctx, "score stored responses",
			slog.String("subject_id", input.SubjectID.String()),
			slog.String("error", err.Error()),
		)
		result.ScoringError = err.Error()
	default:
		result.Summary = summary
	}
	return result, nil
}

// storeResponses writes the batch and returns the cards of the resulting
// response set.
func (s *Service) storeResponses(ctx context.Context, input SubmitInput, batch []domain.Response) ([]string, error) {
	var cards []string
	if input.Append {
		existing, err := s.responses.ListBySubject(ctx, input.SubjectID)
		if err != nil {
			return nil, fmt.Errorf("list responses: %w", err)
		}
		if total := len(existing) + len(batch); s.limits.MaxResponses > 0 && total > s.limits.MaxResponses {
			return nil, domain.NewValidationError("responses", fmt.Sprintf("max %d responses", s.limits.MaxResponses))
		}
		if err := s.responses.CreateBatch(ctx, input.SubjectID, batch); err != nil {
			return nil, err
		}
		for _, r := range existing {
			cards = append(cards, r.Card)
		}
	} else if err := s.responses.ReplaceAll(ctx, input.SubjectID, batch); err != nil {
		return nil, err
	}

	for _, r := range batch {
		cards = append(cards, r.Card)
	}
	return cards, nil
}

// ListResponses returns the stored responses of a subject in card order.
func (s *Service) ListResponses(ctx context.Context, subjectID uuid.UUID) ([]domain.Response, error) {
	if _, err := s.subjects.GetByID(ctx, subjectID); err != nil {
		return nil, fmt.Errorf("get subject: %w", err)
	}
	rs, err := s.responses.ListBySubject(ctx, subjectID)
	if err != nil {
		return nil, fmt.Errorf("list responses: %w", err)
	}
	return rs, nil
}

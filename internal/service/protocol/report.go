package protocol

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/inkblot-backend/internal/report"
)

// GetReport returns the report projection of the stored summary together
// with the response listing. Reports are served from the cache when present.
func (s *Service) GetReport(ctx context.Context, subjectID uuid.UUID) (*report.Report, error) {
	cached, ok, err := s.cache.Get(ctx, subjectID)
	if err != nil {
		s.log.WarnContext(ctx, "report cache get failed",
			slog.String("subject_id", subjectID.String()),
			slog.String("error", err.Error()),
		)
	}
	s.metrics.CacheLookup(ok)
	if ok {
		return cached, nil
	}

	summary, err := s.GetSummary(ctx, subjectID)
	if err != nil {
		return nil, err
	}
	rs, err := s.responses.ListBySubject(ctx, subjectID)
	if err != nil {
		return nil, fmt.Errorf("list responses: %w", err)
	}

	r := report.Project(*summary)
	r.Responses = report.Listing(rs)

	if err := s.cache.Set(ctx, subjectID, r); err != nil {
		s.log.WarnContext(ctx, "report cache set failed",
			slog.String("subject_id", subjectID.String()),
			slog.String("error", err.Error()),
		)
	}
	return &r, nil
}

package protocol

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/inkblot-backend/internal/domain"
)

// RescoreResult counts the outcome of a RescoreAll run.
type RescoreResult struct {
	Scored     int
	Incomplete int
	Failed     int
}

// RescoreAll recomputes the summary of every subject, running up to
// Limits.RescoreConcurrency computations at once. Per-subject failures are
// logged and counted; only cancellation aborts the run.
func (s *Service) RescoreAll(ctx context.Context) (RescoreResult, error) {
	ids, err := s.subjects.ListIDs(ctx)
	if err != nil {
		return RescoreResult{}, fmt.Errorf("list subjects: %w", err)
	}

	var scored, incomplete, failed atomic.Int64

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.limits.RescoreConcurrency)
	for _, id := range ids {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			_, err := s.ComputeSummary(gctx, id)
			switch {
			case err == nil:
				scored.Add(1)
			case errors.Is(err, domain.ErrIncompleteProtocol):
				incomplete.Add(1)
			case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
				return err
			default:
				failed.Add(1)
				s.log.ErrorContext(gctx, "rescore failed",
					slog.String("subject_id", id.String()),
					slog.String("error", err.Error()),
				)
			}
			return nil
		})
	}
	err = g.Wait()

	res := RescoreResult{
		Scored:     int(scored.Load()),
		Incomplete: int(incomplete.Load()),
		Failed:     int(failed.Load()),
	}
	s.log.InfoContext(ctx, "rescore finished",
		slog.Int("subjects", len(ids)),
		slog.Int("scored", res.Scored),
		slog.Int("incomplete", res.Incomplete),
		slog.Int("failed", res.Failed),
	)
	if err != nil {
		return res, fmt.Errorf("rescore: %w", err)
	}
	return res, nil
}

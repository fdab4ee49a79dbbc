package protocol

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/inkblot-backend/internal/domain"
	"github.com/heartmarshall/inkblot-backend/internal/report"
)

type subjectRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Subject, error)
	ListIDs(ctx context.Context) ([]uuid.UUID, error)
}

type responseRepo interface {
	ListBySubject(ctx context.Context, subjectID uuid.UUID) ([]domain.Response, error)
	CreateBatch(ctx context.Context, subjectID uuid.UUID, responses []domain.Response) error
	ReplaceAll(ctx context.Context, subjectID uuid.UUID, responses []domain.Response) error
	UpdateScoredFields(ctx context.Context, responses []domain.Response) error
}

type summaryRepo interface {
	Upsert(ctx context.Context, s domain.StructuralSummary) error
	GetBySubject(ctx context.Context, subjectID uuid.UUID) (*domain.StructuralSummary, error)
	Delete(ctx context.Context, subjectID uuid.UUID) error
}

type reportCache interface {
	Get(ctx context.Context, subjectID uuid.UUID) (*report.Report, bool, error)
	Set(ctx context.Context, subjectID uuid.UUID, r report.Report) error
	Invalidate(ctx context.Context, subjectID uuid.UUID) error
}

type recorder interface {
	ObserveCompute(d time.Duration, responses int, err error)
	ObserveIndices(idx domain.SpecialIndices)
	ObserveAdvisory(code string)
	CacheLookup(hit bool)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Limits bounds the work a single protocol may cause.
type Limits struct {
	MaxResponses       int
	RescoreConcurrency int
}

// Service owns a subject's protocol: its coded responses, the structural
// summary derived from them and the rendered report.
type Service struct {
	subjects  subjectRepo
	responses responseRepo
	summaries summaryRepo
	cache     reportCache
	metrics   recorder
	tx        txManager
	limits    Limits
	log       *slog.Logger
	now       func() time.Time
}

// NewService creates a new protocol service.
func NewService(
	log *slog.Logger,
	subjects subjectRepo,
	responses responseRepo,
	summaries summaryRepo,
	cache reportCache,
	metrics recorder,
	tx txManager,
	limits Limits,
) *Service {
	if limits.RescoreConcurrency < 1 {
		limits.RescoreConcurrency = 1
	}
	return &Service{
		subjects:  subjects,
		responses: responses,
		summaries: summaries,
		cache:     cache,
		metrics:   metrics,
		tx:        tx,
		limits:    limits,
		log:       log.With("service", "protocol"),
		now:       time.Now,
	}
}

// invalidate drops the cached report. A cache failure only costs a stale
// read until the entry expires, so it is logged and swallowed.
func (s *Service) invalidate(ctx context.Context, subjectID uuid.UUID) {
	if err := s.cache.Invalidate(ctx, subjectID); err != nil {
		s.log.WarnContext(ctx, "report cache invalidate failed",
			slog.String("subject_id", subjectID.String()),
			slog.String("error", err.Error()),
		)
	}
}

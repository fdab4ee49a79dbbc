package subject

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/inkblot-backend/internal/domain"
)

type subjectRepo interface {
	Create(ctx context.Context, s *domain.Subject) (*domain.Subject, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Subject, error)
}

// Service manages test subjects.
type Service struct {
	subjects subjectRepo
	log      *slog.Logger
	now      func() time.Time
}

// NewService creates a new subject service.
func NewService(log *slog.Logger, subjects subjectRepo) *Service {
	return &Service{
		subjects: subjects,
		log:      log.With("service", "subject"),
		now:      time.Now,
	}
}

// Create registers a subject. The age used for scoring is derived from the
// birthdate and the test date.
func (s *Service) Create(ctx context.Context, input CreateInput) (*domain.Subject, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	now := s.now().UTC()
	subj := &domain.Subject{
		ID:        uuid.New(),
		Name:      strings.TrimSpace(input.Name),
		Gender:    domain.Gender(strings.ToUpper(strings.TrimSpace(input.Gender))),
		Birthdate: dateOnly(input.Birthdate),
		TestDate:  dateOnly(input.TestDate),
		Notes:     strings.TrimSpace(input.Notes),
		Consent:   input.Consent,
		CreatedAt: now,
		UpdatedAt: now,
	}
	subj.Age = domain.AgeAt(subj.Birthdate, subj.TestDate)

	created, err := s.subjects.Create(ctx, subj)
	if err != nil {
		return nil, fmt.Errorf("create subject: %w", err)
	}

	s.log.InfoContext(ctx, "subject created",
		slog.String("subject_id", created.ID.String()),
		slog.Int("age", created.Age),
	)
	return created, nil
}

// Get returns a subject by ID.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (*domain.Subject, error) {
	subj, err := s.subjects.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get subject: %w", err)
	}
	return subj, nil
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

package rest

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/inkblot-backend/internal/domain"
	"github.com/heartmarshall/inkblot-backend/internal/service/subject"
)

const dateLayout = "2006-01-02"

type subjectService interface {
	Create(ctx context.Context, input subject.CreateInput) (*domain.Subject, error)
	Get(ctx context.Context, id uuid.UUID) (*domain.Subject, error)
}

// SubjectHandler serves the subject endpoints.
type SubjectHandler struct {
	svc subjectService
	log *slog.Logger
}

// NewSubjectHandler creates a SubjectHandler.
func NewSubjectHandler(svc subjectService, logger *slog.Logger) *SubjectHandler {
	return &SubjectHandler{svc: svc, log: logger.With("handler", "subject")}
}

type createSubjectRequest struct {
	Name      string `json:"name"`
	Gender    string `json:"gender"`
	Birthdate string `json:"birthdate"`
	TestDate  string `json:"test_date"`
	Notes     string `json:"notes"`
	Consent   bool   `json:"consent"`
}

type subjectResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Gender    string    `json:"gender"`
	Birthdate string    `json:"birthdate"`
	TestDate  string    `json:"test_date"`
	Age       int       `json:"age"`
	Notes     string    `json:"notes,omitempty"`
	Consent   bool      `json:"consent"`
	CreatedAt time.Time `json:"created_at"`
}

// Create handles POST /subjects.
func (h *SubjectHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createSubjectRequest
	if !decodeBody(w, r, &req) {
		return
	}

	var errs []domain.FieldError
	birth, err := time.Parse(dateLayout, req.Birthdate)
	if err != nil {
		errs = append(errs, domain.FieldError{Field: "birthdate", Message: "must be YYYY-MM-DD"})
	}
	test, err := time.Parse(dateLayout, req.TestDate)
	if err != nil {
		errs = append(errs, domain.FieldError{Field: "test_date", Message: "must be YYYY-MM-DD"})
	}
	if len(errs) > 0 {
		handleError(h.log, w, r, domain.NewValidationErrors(errs))
		return
	}

	s, err := h.svc.Create(r.Context(), subject.CreateInput{
		Name:      req.Name,
		Gender:    req.Gender,
		Birthdate: birth,
		TestDate:  test,
		Notes:     req.Notes,
		Consent:   req.Consent,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, toSubjectResponse(s))
}

// Get handles GET /subjects/{id}.
func (h *SubjectHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := subjectID(w, r)
	if !ok {
		return
	}
	s, err := h.svc.Get(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toSubjectResponse(s))
}

func toSubjectResponse(s *domain.Subject) subjectResponse {
	return subjectResponse{
		ID:        s.ID.String(),
		Name:      s.Name,
		Gender:    s.Gender.String(),
		Birthdate: s.Birthdate.Format(dateLayout),
		TestDate:  s.TestDate.Format(dateLayout),
		Age:       s.Age,
		Notes:     s.Notes,
		Consent:   s.Consent,
		CreatedAt: s.CreatedAt,
	}
}

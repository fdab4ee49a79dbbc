package protocol

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/heartmarshall/inkblot-backend/internal/domain"
	"github.com/heartmarshall/inkblot-backend/internal/scoring"
)

// SubmitInput holds a batch of coded responses for one subject.
type SubmitInput struct {
	SubjectID uuid.UUID
	Responses []domain.Response
	// Append adds the batch to the stored responses instead of replacing them.
	Append bool
}

// Validate checks the envelope. Coded fields are checked after normalization.
func (i SubmitInput) Validate(maxResponses int) error {
	var errs []domain.FieldError

	if i.SubjectID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "subject_id", Message: "required"})
	}
	if len(i.Responses) == 0 {
		errs = append(errs, domain.FieldError{Field: "responses", Message: "at least one response required"})
	}
	if maxResponses > 0 && len(i.Responses) > maxResponses {
		errs = append(errs, domain.FieldError{Field: "responses", Message: fmt.Sprintf("max %d responses", maxResponses)})
	}
	for idx, r := range i.Responses {
		if r.ResponseNum < 0 {
			errs = append(errs, domain.FieldError{Field: responseField(idx, "n"), Message: "must not be negative"})
		}
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// ResponseAdvisory is an informational advisory attached to the response at
// Index in the submitted batch.
type ResponseAdvisory struct {
	Index int `json:"index"`
	scoring.Advisory
}

// SubmitResult is the outcome of SubmitResponses.
type SubmitResult struct {
	Responses  []domain.Response
	Advisories []ResponseAdvisory
	// Corrected counts responses whose determinants were auto-corrected.
	Corrected int
	// Summary is nil while cards are still missing; Missing lists them.
	Summary *domain.StructuralSummary
	Missing []string
	// ScoringError is set when the responses were stored but scoring them
	// failed; ComputeSummary may be retried.
	ScoringError string
}

func responseField(idx int, field string) string {
	return fmt.Sprintf("responses[%d].%s", idx, field)
}

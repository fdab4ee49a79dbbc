package subject

import (
	"strings"
	"time"

	"github.com/heartmarshall/inkblot-backend/internal/domain"
)

// CreateInput holds the parameters for registering a subject.
type CreateInput struct {
	Name      string
	Gender    string
	Birthdate time.Time
	TestDate  time.Time
	Notes     string
	Consent   bool
}

// Validate checks all fields and collects all errors.
func (i CreateInput) Validate() error {
	var errs []domain.FieldError

	name := strings.TrimSpace(i.Name)
	if name == "" {
		errs = append(errs, domain.FieldError{Field: "name", Message: "required"})
	}
	if len(name) > 200 {
		errs = append(errs, domain.FieldError{Field: "name", Message: "max 200 characters"})
	}
	if !domain.Gender(strings.ToUpper(strings.TrimSpace(i.Gender))).IsValid() {
		errs = append(errs, domain.FieldError{Field: "gender", Message: "must be M, F or O"})
	}
	if i.Birthdate.IsZero() {
		errs = append(errs, domain.FieldError{Field: "birthdate", Message: "required"})
	}
	if i.TestDate.IsZero() {
		errs = append(errs, domain.FieldError{Field: "test_date", Message: "required"})
	}
	if !i.Birthdate.IsZero() && !i.TestDate.IsZero() && i.TestDate.Before(i.Birthdate) {
		errs = append(errs, domain.FieldError{Field: "test_date", Message: "must not precede birthdate"})
	}
	if len(i.Notes) > 2000 {
		errs = append(errs, domain.FieldError{Field: "notes", Message: "max 2000 characters"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

package protocol

import (
	"github.com/heartmarshall/inkblot-backend/internal/domain"
	"github.com/heartmarshall/inkblot-backend/internal/scoring"
)

// ValidateSymbol checks a single coded value against the vocabulary of
// the named field.
func (s *Service) ValidateSymbol(kind, value string) (string, error) {
	k := scoring.FieldKind(kind)
	if !k.IsValid() {
		return "", domain.NewValidationError("kind", "unknown field kind")
	}
	return scoring.ValidateSymbol(k, value)
}

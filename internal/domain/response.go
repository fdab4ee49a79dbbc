package domain

import (
	"time"

	"github.com/google/uuid"
)

// Response is one coded reaction of a subject to one card.
//
// The coded fields hold raw symbol strings exactly as the examiner entered
// them (after import normalization). Multi-token fields (Determinants,
// Content, Special) are comma or period delimited.
type Response struct {
	ID          uuid.UUID
	SubjectID   uuid.UUID
	Card        string
	ResponseNum int

	// Free-text metadata, never scored.
	Time        string
	Verbalized  string
	Inquiry     string
	Rotation    string
	Comment     string
	LocationNum *int

	Location     string
	DevQual      string
	Determinants string
	Pair         string
	FormQual     string
	Content      string
	Popular      string
	Z            string
	Special      string

	CreatedAt time.Time
	UpdatedAt time.Time
}

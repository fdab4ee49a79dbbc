package domain

import (
	"time"

	"github.com/google/uuid"
)

// Gender of the test subject.
type Gender string

const (
	GenderMale   Gender = "M"
	GenderFemale Gender = "F"
	GenderOther  Gender = "O"
)

func (g Gender) String() string { return string(g) }

func (g Gender) IsValid() bool {
	switch g {
	case GenderMale, GenderFemale, GenderOther:
		return true
	}
	return false
}

// Subject is the person who took the test. Age is the subject's age in whole
// years on TestDate and drives the age-banded index thresholds.
type Subject struct {
	ID        uuid.UUID
	Name      string
	Gender    Gender
	Birthdate time.Time
	TestDate  time.Time
	Notes     string
	Age       int
	Consent   bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// AgeAt returns the number of full years between birth and at.
// The birthday itself counts as completed.
func AgeAt(birth, at time.Time) int {
	age := at.Year() - birth.Year()
	if at.Month() < birth.Month() || (at.Month() == birth.Month() && at.Day() < birth.Day()) {
		age--
	}
	return age
}

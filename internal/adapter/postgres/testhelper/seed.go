package testhelper

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/inkblot-backend/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedSubject inserts a subject tested on 2025-03-01 at age 34.
func SeedSubject(t *testing.T, pool *pgxpool.Pool) domain.Subject {
	t.Helper()
	ctx := context.Background()

	now := time.Now().UTC().Truncate(time.Microsecond)
	s := domain.Subject{
		ID:        uuid.New(),
		Name:      "Subject " + uniqueSuffix(),
		Gender:    domain.GenderFemale,
		Birthdate: time.Date(1990, 4, 12, 0, 0, 0, 0, time.UTC),
		TestDate:  time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC),
		Age:       34,
		CreatedAt: now,
		UpdatedAt: now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO subjects (id, name, gender, birthdate, test_date, age, notes, consent, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		s.ID, s.Name, string(s.Gender), s.Birthdate, s.TestDate, s.Age, s.Notes, s.Consent, s.CreatedAt, s.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedSubject: %v", err)
	}
	return s
}

// Protocol returns one plain whole response per card, in reverse card
// order, ready for insertion.
func Protocol() []domain.Response {
	out := make([]domain.Response, 0, 10)
	for card := 10; card >= 1; card-- {
		out = append(out, domain.Response{
			Card:         fmt.Sprint(card),
			ResponseNum:  1,
			Location:     "W",
			DevQual:      "o",
			Determinants: "F",
			FormQual:     "o",
			Content:      "A",
			Z:            "ZW",
		})
	}
	return out
}

package domain

import (
	"time"

	"github.com/google/uuid"
)

// DefaultCredits is the balance granted to a fresh profile.
const DefaultCredits = 30

// Profile represents an authenticated user together with their billing state.
// Credits is the authoritative balance; in-process ledgers are caches of it.
type Profile struct {
	ID           uuid.UUID
	Email        string
	PasswordHash string
	Credits      int
	Plan         Plan
	Language     string
	LiveMode     bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// NewProfile returns a Profile with default credits and plan.
func NewProfile(email, passwordHash string) *Profile {
	now := time.Now()
	return &Profile{
		ID:           uuid.New(),
		Email:        email,
		PasswordHash: passwordHash,
		Credits:      DefaultCredits,
		Plan:         PlanFree,
		Language:     "en",
		LiveMode:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

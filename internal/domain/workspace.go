package domain

import (
	"time"

	"github.com/google/uuid"
)

// SavedKeyword is a keyword result pinned to a user's workspace.
type SavedKeyword struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Result    KeywordResult
	CreatedAt time.Time
}

// ContentProject is a draft content piece generated from a keyword's strategy.
type ContentProject struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Title     string
	Keyword   string
	Body      string
	Status    ProjectStatus
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Lead is a marketing lead captured from the public site.
type Lead struct {
	ID        uuid.UUID
	Email     string
	Source    string
	CreatedAt time.Time
}

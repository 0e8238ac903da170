package domain

import (
	"time"

	"github.com/google/uuid"
)

// Answer is a response to a Question. At most one answer per question
// has IsAccepted set.
type Answer struct {
	ID            uuid.UUID
	QuestionID    uuid.UUID
	Content       string
	AuthorID      uuid.UUID
	AuthorName    string
	IsAccepted    bool
	AcceptedAt    *time.Time
	VoteCount     int
	UpvoteCount   int
	DownvoteCount int
	BlindedAt     *time.Time
	DeletedAt     *time.Time
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func (a *Answer) IsDeleted() bool { return a.DeletedAt != nil }

func (a *Answer) IsBlinded() bool { return a.BlindedAt != nil }

func (a *Answer) IsAuthor(userID uuid.UUID) bool { return a.AuthorID == userID }

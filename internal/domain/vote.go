package domain

import (
	"time"

	"github.com/google/uuid"
)

// Target is the polymorphic subject of a vote or a report.
type Target struct {
	Kind TargetKind
	ID   uuid.UUID
}

// QuestionTarget returns the Target for a question.
func QuestionTarget(id uuid.UUID) Target { return Target{Kind: TargetQuestion, ID: id} }

// AnswerTarget returns the Target for an answer.
func AnswerTarget(id uuid.UUID) Target { return Target{Kind: TargetAnswer, ID: id} }

func (t Target) String() string { return string(t.Kind) + ":" + t.ID.String() }

// Vote is a single voter's up/down vote on a target. There is at most one
// Vote per (target kind, target id, voter id).
type Vote struct {
	ID        uuid.UUID
	Target    Target
	VoterID   uuid.UUID
	Direction VoteDirection
	CreatedAt time.Time
	UpdatedAt time.Time
}

// VoteTally is the recomputed vote count of a target.
type VoteTally struct {
	Up   int
	Down int
}

// Score returns upvotes minus downvotes.
func (t VoteTally) Score() int { return t.Up - t.Down }

package domain

import (
	"time"

	"github.com/google/uuid"
)

// MaxQuestionTags is the maximum number of tags a question may carry.
const MaxQuestionTags = 10

// Question is a Q&A post that collects answers and votes.
//
// VoteCount, UpvoteCount, DownvoteCount and AnswerCount are denormalized:
// they are recomputed from the vote and answer rows in the same transaction
// that changes those rows and are never incremented blindly.
type Question struct {
	ID               uuid.UUID
	Title            string
	Content          string
	AuthorID         uuid.UUID
	AuthorName       string
	Status           QuestionStatus
	ViewCount        int64
	VoteCount        int
	UpvoteCount      int
	DownvoteCount    int
	AnswerCount      int
	AcceptedAnswerID *uuid.UUID
	Tags             []string
	BountyPoints     int
	BlindedAt        *time.Time
	DeletedAt        *time.Time
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

func (q *Question) IsDeleted() bool { return q.DeletedAt != nil }

func (q *Question) IsBlinded() bool { return q.BlindedAt != nil }

func (q *Question) IsClosed() bool { return q.Status == QuestionStatusClosed }

func (q *Question) IsAuthor(userID uuid.UUID) bool { return q.AuthorID == userID }

// derivedStatus is the status implied by acceptance alone.
func (q *Question) derivedStatus() QuestionStatus {
	if q.AcceptedAnswerID != nil {
		return QuestionStatusAnswered
	}
	return QuestionStatusOpen
}

// MarkAccepted records answerID as the accepted answer. A closed question
// keeps its CLOSED status; Reopen re-derives it later.
func (q *Question) MarkAccepted(answerID uuid.UUID) error {
	if q.AcceptedAnswerID != nil {
		return NewStateError(ReasonAlreadyAccepted)
	}
	id := answerID
	q.AcceptedAnswerID = &id
	if !q.IsClosed() {
		q.Status = q.derivedStatus()
	}
	return nil
}

// ClearAccepted drops the accepted answer reference if it points at answerID.
// It reports whether the reference was cleared.
func (q *Question) ClearAccepted(answerID uuid.UUID) bool {
	if q.AcceptedAnswerID == nil || *q.AcceptedAnswerID != answerID {
		return false
	}
	q.AcceptedAnswerID = nil
	if !q.IsClosed() {
		q.Status = q.derivedStatus()
	}
	return true
}

// Close moves the question to CLOSED.
func (q *Question) Close() error {
	if q.IsClosed() {
		return NewStateError(ReasonAlreadyClosed)
	}
	q.Status = QuestionStatusClosed
	return nil
}

// Reopen leaves CLOSED and re-derives the status from the accepted answer.
func (q *Question) Reopen() error {
	if !q.IsClosed() {
		return NewStateError(ReasonNotClosed)
	}
	q.Status = q.derivedStatus()
	return nil
}

// QuestionUpdateParams holds the editable question fields. A nil field is
// left unchanged.
type QuestionUpdateParams struct {
	Title        *string
	Content      *string
	Tags         *[]string
	BountyPoints *int
}

// QuestionFilter narrows a question listing.
type QuestionFilter struct {
	Status         *QuestionStatus
	Tag            *string
	AuthorID       *uuid.UUID
	IncludeBlinded bool
	SortBy         string
	Limit          int
	Offset         int
}

// Question listing sort keys.
const (
	QuestionSortNewest     = "newest"
	QuestionSortVotes      = "votes"
	QuestionSortViews      = "views"
	QuestionSortUnanswered = "unanswered"
)

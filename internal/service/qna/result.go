package qna

import (
	"github.com/heartmarshall/qaboard-backend/internal/domain"
)

// QuestionView is a question as seen by the caller.
type QuestionView struct {
	Question domain.Question
	// MyVote is the caller's vote on the question, nil if none or anonymous.
	MyVote *domain.VoteDirection
}

// AnswerView is an answer as seen by the caller. Blinded answers keep their
// position and counters but carry no content for non-administrators.
type AnswerView struct {
	Answer  domain.Answer
	MyVote  *domain.VoteDirection
	Blinded bool
}

// AcceptanceResult is the state of both aggregates after an acceptance change.
type AcceptanceResult struct {
	Question domain.Question
	Answer   domain.Answer
}

// VoteResult reports the ledger change and the recomputed tally of the target.
type VoteResult struct {
	Target  domain.Target
	Prior   *domain.VoteDirection
	Current *domain.VoteDirection
	Tally   domain.VoteTally
}

// Score returns upvotes minus downvotes.
func (r VoteResult) Score() int { return r.Tally.Score() }

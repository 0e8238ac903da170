// Package dataloader provides per-request DataLoaders that batch the
// per-item lookups of the GraphQL resolvers (answers of each listed question,
// the caller's vote on each question and answer) into single service calls.
// Visibility and blinding are applied by the service, not here.
package dataloader

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/graph-gophers/dataloader/v7"

	"github.com/heartmarshall/qaboard-backend/internal/domain"
	"github.com/heartmarshall/qaboard-backend/internal/service/qna"
)

const (
	maxBatch = 100
	wait     = 2 * time.Millisecond
)

type qnaReader interface {
	AnswersByQuestions(ctx context.Context, questionIDs []uuid.UUID) (map[uuid.UUID][]qna.AnswerView, error)
	MyVotes(ctx context.Context, kind domain.TargetKind, targetIDs []uuid.UUID) (map[uuid.UUID]domain.VoteDirection, error)
}

// Loaders contains the per-request DataLoaders. Created via NewLoaders.
type Loaders struct {
	AnswersByQuestionID *dataloader.Loader[uuid.UUID, []qna.AnswerView]
	QuestionVotes       *dataloader.Loader[uuid.UUID, *domain.VoteDirection]
	AnswerVotes         *dataloader.Loader[uuid.UUID, *domain.VoteDirection]
}

// NewLoaders creates a new set of DataLoaders backed by svc.
// Must be called per request: loaders cache results for their lifetime.
func NewLoaders(svc qnaReader) *Loaders {
	return &Loaders{
		AnswersByQuestionID: newLoader(newAnswersBatchFn(svc)),
		QuestionVotes:       newLoader(newVotesBatchFn(svc, domain.TargetQuestion)),
		AnswerVotes:         newLoader(newVotesBatchFn(svc, domain.TargetAnswer)),
	}
}

// Reset drops every cached result. Mutations call it so that fields
// resolved after them read the new state.
func (l *Loaders) Reset() {
	l.AnswersByQuestionID.ClearAll()
	l.QuestionVotes.ClearAll()
	l.AnswerVotes.ClearAll()
}

func newLoader[V any](batchFn dataloader.BatchFunc[uuid.UUID, V]) *dataloader.Loader[uuid.UUID, V] {
	return dataloader.NewBatchedLoader(
		batchFn,
		dataloader.WithWait[uuid.UUID, V](wait),
		dataloader.WithBatchCapacity[uuid.UUID, V](maxBatch),
	)
}

// ---------------------------------------------------------------------------
// Context helpers
// ---------------------------------------------------------------------------

type contextKey string

const loadersKey contextKey = "dataloaders"

// WithLoaders stores Loaders in the context.
func WithLoaders(ctx context.Context, l *Loaders) context.Context {
	return context.WithValue(ctx, loadersKey, l)
}

// FromContext retrieves Loaders from the context.
// Panics if loaders are not present (middleware misconfiguration).
func FromContext(ctx context.Context) *Loaders {
	l, ok := ctx.Value(loadersKey).(*Loaders)
	if !ok || l == nil {
		panic("dataloader: loaders not found in context, is the middleware configured?")
	}
	return l
}

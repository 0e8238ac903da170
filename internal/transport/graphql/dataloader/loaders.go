package dataloader

import (
	"context"

	"github.com/google/uuid"
	"github.com/graph-gophers/dataloader/v7"

	"github.com/heartmarshall/qaboard-backend/internal/domain"
	"github.com/heartmarshall/qaboard-backend/internal/service/qna"
)

// ---------------------------------------------------------------------------
// Answers by QuestionID
// ---------------------------------------------------------------------------

func newAnswersBatchFn(svc qnaReader) dataloader.BatchFunc[uuid.UUID, []qna.AnswerView] {
	return func(ctx context.Context, keys []uuid.UUID) []*dataloader.Result[[]qna.AnswerView] {
		grouped, err := svc.AnswersByQuestions(ctx, keys)
		if err != nil {
			return errorResults[[]qna.AnswerView](len(keys), err)
		}
		return mapResults(keys, grouped, emptySlice[qna.AnswerView])
	}
}

// ---------------------------------------------------------------------------
// Caller's vote by target id
// ---------------------------------------------------------------------------

func newVotesBatchFn(svc qnaReader, kind domain.TargetKind) dataloader.BatchFunc[uuid.UUID, *domain.VoteDirection] {
	return func(ctx context.Context, keys []uuid.UUID) []*dataloader.Result[*domain.VoteDirection] {
		votes, err := svc.MyVotes(ctx, kind, keys)
		if err != nil {
			return errorResults[*domain.VoteDirection](len(keys), err)
		}

		grouped := make(map[uuid.UUID]*domain.VoteDirection, len(votes))
		for id, dir := range votes {
			d := dir
			grouped[id] = &d
		}

		return mapResults(keys, grouped, noVote)
	}
}

func noVote() *domain.VoteDirection { return nil }

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

// errorResults returns n results that all carry err.
func errorResults[V any](n int, err error) []*dataloader.Result[V] {
	results := make([]*dataloader.Result[V], n)
	for i := range results {
		results[i] = &dataloader.Result[V]{Error: err}
	}
	return results
}

// mapResults maps grouped results back to key order, using defaultFn for missing keys.
func mapResults[V any](keys []uuid.UUID, grouped map[uuid.UUID]V, defaultFn func() V) []*dataloader.Result[V] {
	results := make([]*dataloader.Result[V], len(keys))
	for i, key := range keys {
		if v, ok := grouped[key]; ok {
			results[i] = &dataloader.Result[V]{Data: v}
		} else {
			results[i] = &dataloader.Result[V]{Data: defaultFn()}
		}
	}
	return results
}

// emptySlice returns a non-nil empty slice.
func emptySlice[T any]() []T {
	return []T{}
}

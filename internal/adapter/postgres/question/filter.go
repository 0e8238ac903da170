package question

import (
	"github.com/heartmarshall/qaboard-backend/internal/domain"
)

const (
	defaultLimit = 20
	maxLimit     = 100
)

// normalizeFilter applies defaults and clamps values.
func normalizeFilter(f domain.QuestionFilter) domain.QuestionFilter {
	switch f.SortBy {
	case domain.QuestionSortNewest, domain.QuestionSortVotes,
		domain.QuestionSortViews, domain.QuestionSortUnanswered:
		// valid
	default:
		f.SortBy = domain.QuestionSortNewest
	}

	if f.Limit <= 0 {
		f.Limit = defaultLimit
	}
	if f.Limit > maxLimit {
		f.Limit = maxLimit
	}

	if f.Offset < 0 {
		f.Offset = 0
	}

	return f
}

// orderBy returns the ORDER BY clauses for the filter's sort key.
// id is the final tiebreaker so that offset pagination is stable.
func orderBy(sortBy string) []string {
	switch sortBy {
	case domain.QuestionSortVotes:
		return []string{"vote_count DESC", "created_at DESC", "id"}
	case domain.QuestionSortViews:
		return []string{"view_count DESC", "created_at DESC", "id"}
	case domain.QuestionSortUnanswered:
		return []string{"answer_count ASC", "created_at DESC", "id"}
	default:
		return []string{"created_at DESC", "id"}
	}
}

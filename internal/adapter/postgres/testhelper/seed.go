package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/qaboard-backend/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedQuestion inserts an OPEN question authored by authorID.
func SeedQuestion(t *testing.T, pool *pgxpool.Pool, authorID uuid.UUID) domain.Question {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	now := time.Now().UTC().Truncate(time.Microsecond)
	q := domain.Question{
		ID:         uuid.New(),
		Title:      "Question " + suffix,
		Content:    "How does " + suffix + " work?",
		AuthorID:   authorID,
		AuthorName: "author-" + suffix,
		Status:     domain.QuestionStatusOpen,
		Tags:       []string{"go", "tag-" + suffix},
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO questions (id, title, content, author_id, author_name, status, tags, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		q.ID, q.Title, q.Content, q.AuthorID, q.AuthorName, string(q.Status), q.Tags, q.CreatedAt, q.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedQuestion: %v", err)
	}

	return q
}

// SeedAnswer inserts an answer to questionID and bumps the question's answer_count.
func SeedAnswer(t *testing.T, pool *pgxpool.Pool, questionID, authorID uuid.UUID) domain.Answer {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	now := time.Now().UTC().Truncate(time.Microsecond)
	a := domain.Answer{
		ID:         uuid.New(),
		QuestionID: questionID,
		Content:    "Answer " + suffix,
		AuthorID:   authorID,
		AuthorName: "answerer-" + suffix,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO answers (id, question_id, content, author_id, author_name, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		a.ID, a.QuestionID, a.Content, a.AuthorID, a.AuthorName, a.CreatedAt, a.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedAnswer: %v", err)
	}

	_, err = pool.Exec(ctx, `UPDATE questions SET answer_count = answer_count + 1 WHERE id = $1`, questionID)
	if err != nil {
		t.Fatalf("testhelper: SeedAnswer bump answer_count: %v", err)
	}

	return a
}

// SeedVote inserts a vote row directly, bypassing the ledger.
func SeedVote(t *testing.T, pool *pgxpool.Pool, target domain.Target, voterID uuid.UUID, dir domain.VoteDirection) {
	t.Helper()

	_, err := pool.Exec(context.Background(),
		`INSERT INTO votes (target_kind, target_id, voter_id, direction) VALUES ($1, $2, $3, $4)`,
		string(target.Kind), target.ID, voterID, string(dir),
	)
	if err != nil {
		t.Fatalf("testhelper: SeedVote: %v", err)
	}
}

package qna

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/heartmarshall/qaboard-backend/internal/domain"
)

// CreateQuestionInput holds the parameters for asking a question.
type CreateQuestionInput struct {
	Title        string
	Content      string
	Tags         []string
	BountyPoints int
}

// Validate checks all fields and collects all errors.
func (i CreateQuestionInput) Validate(p domain.BoardPolicy) error {
	var errs []domain.FieldError

	errs = checkTitle(errs, i.Title, p)
	errs = checkContent(errs, i.Content, p)
	errs = checkTags(errs, i.Tags, p)
	errs = checkBounty(errs, i.BountyPoints, p)

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// UpdateQuestionInput holds the parameters for editing a question.
// A nil field is left unchanged.
type UpdateQuestionInput struct {
	QuestionID   uuid.UUID
	Title        *string
	Content      *string
	Tags         *[]string
	BountyPoints *int
}

// Validate checks all fields and collects all errors.
func (i UpdateQuestionInput) Validate(p domain.BoardPolicy) error {
	var errs []domain.FieldError

	if i.QuestionID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "question_id", Message: "required"})
	}
	if i.Title == nil && i.Content == nil && i.Tags == nil && i.BountyPoints == nil {
		errs = append(errs, domain.FieldError{Field: "input", Message: "at least one field must be provided"})
	}
	if i.Title != nil {
		errs = checkTitle(errs, *i.Title, p)
	}
	if i.Content != nil {
		errs = checkContent(errs, *i.Content, p)
	}
	if i.Tags != nil {
		errs = checkTags(errs, *i.Tags, p)
	}
	if i.BountyPoints != nil {
		errs = checkBounty(errs, *i.BountyPoints, p)
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// DeleteQuestionInput holds the parameters for deleting a question.
type DeleteQuestionInput struct {
	QuestionID uuid.UUID
	// Hard removes the question with its answers and votes. Administrators only.
	Hard bool
}

// Validate checks all fields and collects all errors.
func (i DeleteQuestionInput) Validate() error {
	if i.QuestionID == uuid.Nil {
		return domain.NewValidationError("question_id", "required")
	}
	return nil
}

// CreateAnswerInput holds the parameters for answering a question.
type CreateAnswerInput struct {
	QuestionID uuid.UUID
	Content    string
}

// Validate checks all fields and collects all errors.
func (i CreateAnswerInput) Validate(p domain.BoardPolicy) error {
	var errs []domain.FieldError

	if i.QuestionID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "question_id", Message: "required"})
	}
	errs = checkContent(errs, i.Content, p)

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// UpdateAnswerInput holds the parameters for editing an answer.
type UpdateAnswerInput struct {
	AnswerID uuid.UUID
	Content  string
}

// Validate checks all fields and collects all errors.
func (i UpdateAnswerInput) Validate(p domain.BoardPolicy) error {
	var errs []domain.FieldError

	if i.AnswerID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "answer_id", Message: "required"})
	}
	errs = checkContent(errs, i.Content, p)

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// ListQuestionsInput holds the parameters for browsing questions.
type ListQuestionsInput struct {
	Status   *domain.QuestionStatus
	Tag      *string
	AuthorID *uuid.UUID
	Sort     string
	Limit    int
	Offset   int
}

// Validate checks all fields and collects all errors.
func (i ListQuestionsInput) Validate() error {
	var errs []domain.FieldError

	if i.Status != nil && !i.Status.IsValid() {
		errs = append(errs, domain.FieldError{Field: "status", Message: "must be OPEN, ANSWERED or CLOSED"})
	}
	switch i.Sort {
	case "", domain.QuestionSortNewest, domain.QuestionSortVotes, domain.QuestionSortViews, domain.QuestionSortUnanswered:
	default:
		errs = append(errs, domain.FieldError{Field: "sort", Message: "must be newest, votes, views or unanswered"})
	}
	if i.Limit < 0 || i.Limit > 100 {
		errs = append(errs, domain.FieldError{Field: "limit", Message: "must be between 0 and 100"})
	}
	if i.Offset < 0 {
		errs = append(errs, domain.FieldError{Field: "offset", Message: "must be non-negative"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// ---------------------------------------------------------------------------
// Field checks
// ---------------------------------------------------------------------------

func checkTitle(errs []domain.FieldError, title string, p domain.BoardPolicy) []domain.FieldError {
	t := strings.TrimSpace(title)
	if t == "" {
		return append(errs, domain.FieldError{Field: "title", Message: "required"})
	}
	if utf8.RuneCountInString(t) > p.MaxTitleLength {
		return append(errs, domain.FieldError{Field: "title", Message: fmt.Sprintf("max %d characters", p.MaxTitleLength)})
	}
	return errs
}

func checkContent(errs []domain.FieldError, content string, p domain.BoardPolicy) []domain.FieldError {
	if strings.TrimSpace(content) == "" {
		return append(errs, domain.FieldError{Field: "content", Message: "required"})
	}
	if utf8.RuneCountInString(content) > p.MaxContentLength {
		return append(errs, domain.FieldError{Field: "content", Message: fmt.Sprintf("max %d characters", p.MaxContentLength)})
	}
	return errs
}

func checkTags(errs []domain.FieldError, tags []string, p domain.BoardPolicy) []domain.FieldError {
	normalized := domain.NormalizeTags(tags)
	if len(normalized) > domain.MaxQuestionTags {
		errs = append(errs, domain.FieldError{Field: "tags", Message: fmt.Sprintf("max %d tags", domain.MaxQuestionTags)})
	}
	for _, t := range normalized {
		if utf8.RuneCountInString(t) > p.MaxTagLength {
			errs = append(errs, domain.FieldError{Field: "tags", Message: fmt.Sprintf("tag %q exceeds %d characters", t, p.MaxTagLength)})
			break
		}
	}
	return errs
}

func checkBounty(errs []domain.FieldError, points int, p domain.BoardPolicy) []domain.FieldError {
	if points < 0 {
		return append(errs, domain.FieldError{Field: "bounty_points", Message: "must be non-negative"})
	}
	if points > p.MaxBountyPoints {
		return append(errs, domain.FieldError{Field: "bounty_points", Message: fmt.Sprintf("max %d", p.MaxBountyPoints)})
	}
	return errs
}

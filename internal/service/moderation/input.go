package moderation

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/heartmarshall/qaboard-backend/internal/domain"
)

const (
	maxReasonLength = 1000
	maxBatchDelete  = 100
)

// ReportInput holds the parameters for reporting a question or an answer.
type ReportInput struct {
	Target domain.Target
	Reason string
}

// Validate checks all fields and collects all errors.
func (i ReportInput) Validate() error {
	var errs []domain.FieldError

	errs = checkTarget(errs, i.Target)

	reason := strings.TrimSpace(i.Reason)
	if reason == "" {
		errs = append(errs, domain.FieldError{Field: "reason", Message: "required"})
	} else if utf8.RuneCountInString(reason) > maxReasonLength {
		errs = append(errs, domain.FieldError{Field: "reason", Message: fmt.Sprintf("max %d characters", maxReasonLength)})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// ListReportsInput holds the parameters for browsing reports.
type ListReportsInput struct {
	OnlyOpen bool
	Kind     *domain.TargetKind
	Limit    int
	Offset   int
}

// Validate checks all fields and collects all errors.
func (i ListReportsInput) Validate() error {
	var errs []domain.FieldError

	if i.Kind != nil && !i.Kind.IsValid() {
		errs = append(errs, domain.FieldError{Field: "kind", Message: "must be QUESTION or ANSWER"})
	}
	if i.Limit < 0 || i.Limit > 200 {
		errs = append(errs, domain.FieldError{Field: "limit", Message: "must be between 0 and 200"})
	}
	if i.Offset < 0 {
		errs = append(errs, domain.FieldError{Field: "offset", Message: "must be non-negative"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// BatchDeleteInput lists questions to remove permanently.
type BatchDeleteInput struct {
	QuestionIDs []uuid.UUID
}

// Validate checks all fields and collects all errors.
func (i BatchDeleteInput) Validate() error {
	if len(i.QuestionIDs) == 0 {
		return domain.NewValidationError("question_ids", "required")
	}
	if len(i.QuestionIDs) > maxBatchDelete {
		return domain.NewValidationError("question_ids", fmt.Sprintf("max %d ids", maxBatchDelete))
	}
	for _, id := range i.QuestionIDs {
		if id == uuid.Nil {
			return domain.NewValidationError("question_ids", "must not contain empty ids")
		}
	}
	return nil
}

// uniqueIDs drops repeated ids, keeping the first-seen order.
func (i BatchDeleteInput) uniqueIDs() []uuid.UUID {
	seen := make(map[uuid.UUID]struct{}, len(i.QuestionIDs))
	out := make([]uuid.UUID, 0, len(i.QuestionIDs))
	for _, id := range i.QuestionIDs {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}

func checkTarget(errs []domain.FieldError, t domain.Target) []domain.FieldError {
	if !t.Kind.IsValid() {
		errs = append(errs, domain.FieldError{Field: "target_kind", Message: "must be QUESTION or ANSWER"})
	}
	if t.ID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "target_id", Message: "required"})
	}
	return errs
}

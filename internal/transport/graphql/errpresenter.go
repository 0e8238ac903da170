package graphql

import (
	"context"
	"errors"
	"log/slog"

	"github.com/99designs/gqlgen/graphql"
	"github.com/vektah/gqlparser/v2/gqlerror"

	"github.com/heartmarshall/qaboard-backend/internal/domain"
	"github.com/heartmarshall/qaboard-backend/pkg/ctxutil"
)

// NewErrorPresenter returns a gqlgen error presenter that maps domain errors
// to the same codes the REST API uses, in extensions.code.
func NewErrorPresenter(log *slog.Logger) graphql.ErrorPresenterFunc {
	return func(ctx context.Context, err error) *gqlerror.Error {
		gqlErr := graphql.DefaultErrorPresenter(ctx, err)
		if gqlErr.Err == nil {
			// Parse and validation errors of the document itself.
			return gqlErr
		}

		var (
			ve *domain.ValidationError
			se *domain.StateError
		)
		switch {
		case errors.As(err, &ve):
			fields := make([]map[string]string, len(ve.Errors))
			for i, fe := range ve.Errors {
				fields[i] = map[string]string{"field": fe.Field, "message": fe.Message}
			}
			gqlErr.Message = "validation failed"
			gqlErr.Extensions = map[string]any{"code": "VALIDATION", "fields": fields}

		case errors.As(err, &se):
			gqlErr.Message = "operation not allowed in current state"
			gqlErr.Extensions = map[string]any{"code": "INVALID_STATE", "reason": string(se.Reason)}

		case errors.Is(err, domain.ErrNotFound):
			gqlErr.Message = "not found"
			gqlErr.Extensions = map[string]any{"code": "NOT_FOUND"}

		case errors.Is(err, domain.ErrUnauthorized):
			gqlErr.Message = "unauthorized"
			gqlErr.Extensions = map[string]any{"code": "UNAUTHENTICATED"}

		case errors.Is(err, domain.ErrSelfVote):
			gqlErr.Message = domain.ErrSelfVote.Error()
			gqlErr.Extensions = map[string]any{"code": "SELF_VOTE"}

		case errors.Is(err, domain.ErrForbidden):
			gqlErr.Message = "forbidden"
			gqlErr.Extensions = map[string]any{"code": "FORBIDDEN"}

		case errors.Is(err, domain.ErrAlreadyExists):
			gqlErr.Message = "already exists"
			gqlErr.Extensions = map[string]any{"code": "ALREADY_EXISTS"}

		case errors.Is(err, domain.ErrConflict):
			gqlErr.Message = "conflict, retry the request"
			gqlErr.Extensions = map[string]any{"code": "CONFLICT"}

		default:
			// Unexpected error: log it, return a generic message to the client.
			log.ErrorContext(ctx, "unexpected GraphQL error",
				slog.String("error", err.Error()),
				slog.String("request_id", ctxutil.RequestIDFromCtx(ctx)),
			)
			gqlErr.Message = "internal error"
			gqlErr.Extensions = map[string]any{"code": "INTERNAL"}
		}

		return gqlErr
	}
}

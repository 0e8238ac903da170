package auth

import (
	"github.com/google/uuid"

	"github.com/heartmarshall/qaboard-backend/internal/domain"
)

// Identity is the caller carried by an access token.
type Identity struct {
	UserID uuid.UUID
	Role   domain.UserRole
	Name   string
}

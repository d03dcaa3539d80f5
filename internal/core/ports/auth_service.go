package ports

import (
	"context"

	"github.com/expertsquad/crm-api/internal/core/domain"
)

// AuthService verifies credentials and issues session tokens. An unknown
// email and a wrong password both return domain.ErrInvalidCredentials so
// the two cases are indistinguishable to the caller.
type AuthService interface {
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
}

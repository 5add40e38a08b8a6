package ports

import (
	"context"

	"github.com/taskhub/task-tracker/internal/core/domain"
)

// SignupInput carries the fields accepted at registration.
type SignupInput struct {
	Email    string
	Password string
	Name     string
}

// AuthService implements registration and login. Both return the signed
// session token alongside the created or authenticated user.
type AuthService interface {
	Signup(ctx context.Context, input SignupInput) (*domain.User, string, error)
	Login(ctx context.Context, email, password string) (*domain.User, string, error)
}

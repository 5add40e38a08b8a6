package auth

import (
	"context"
	"errors"
	"net/http"

	"github.com/taskhub/task-tracker/internal/core/domain"
)

// Identity is the minimal projection of a user needed for authorization
// decisions.
type Identity struct {
	ID    string
	Email string
	Name  string
}

// IdentityLookup loads a user by id. ports.AuthRepository satisfies it.
type IdentityLookup interface {
	FindByID(ctx context.Context, id string) (*domain.User, error)
}

// Resolver turns an incoming request into the authenticated identity.
type Resolver struct {
	codec *Codec
	users IdentityLookup
}

func NewResolver(codec *Codec, users IdentityLookup) *Resolver {
	return &Resolver{codec: codec, users: users}
}

// Resolve chains cookie extraction, token verification and a single user
// lookup per request. It returns (nil, nil) when the cookie is absent, the
// token is invalid or expired, or the referenced user no longer exists. A
// non-nil error means the user store itself failed.
func (r *Resolver) Resolve(ctx context.Context, req *http.Request) (*Identity, error) {
	token, ok := ExtractToken(req)
	if !ok {
		return nil, nil
	}

	claims, ok := r.codec.Verify(token)
	if !ok {
		return nil, nil
	}

	user, err := r.users.FindByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &Identity{ID: user.ID, Email: user.Email, Name: user.Name}, nil
}

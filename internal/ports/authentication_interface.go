package ports

import (
	"context"

	"github.com/bqviet86/cmict-server/internal/model"
)

type AuthenticationService interface {
	Register(ctx context.Context, input model.RegisterInput) (*model.AuthResult, error)
	Login(ctx context.Context, username, password string) (*model.AuthResult, error)
	RefreshToken(ctx context.Context, refreshToken string) (*model.TokensPair, error)
	Logout(ctx context.Context, refreshToken string) error
	ResolveIdentity(ctx context.Context, userUUID string) (*model.User, error)
}

type PasswordHasher interface {
	Hash(password string) string
	Verify(password, hash string) bool
}

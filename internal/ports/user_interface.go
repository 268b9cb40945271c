package ports

import (
	"context"

	"github.com/bqviet86/cmict-server/internal/model"
	"github.com/jmoiron/sqlx"
)

type UserRepository interface {
	CreateUser(ctx context.Context, exec sqlx.ExtContext, user *model.User) (*model.User, error)
	FindByUUID(ctx context.Context, exec sqlx.ExtContext, uuid string) (*model.User, error)
	FindByUsername(ctx context.Context, exec sqlx.ExtContext, username string) (*model.User, error)
	UpdateProfile(ctx context.Context, exec sqlx.ExtContext, uuid string, input model.UpdateProfileInput) (*model.User, error)
	UpdateAvatar(ctx context.Context, exec sqlx.ExtContext, uuid, avatar string) (*model.User, error)
	UpdateIsActive(ctx context.Context, exec sqlx.ExtContext, username string, isActive bool) (*model.User, error)
	ListUsers(ctx context.Context, exec sqlx.ExtContext, filter model.UserFilter) ([]*model.User, int, error)
}

type UserService interface {
	GetMe(ctx context.Context, uuid string) (*model.User, error)
	UpdateMe(ctx context.Context, uuid string, input model.UpdateProfileInput) (*model.User, error)
	UpdateAvatar(ctx context.Context, uuid string, file model.UploadFile) (*model.User, error)
	GetProfile(ctx context.Context, username string) (*model.User, error)
	ListUsers(ctx context.Context, filter model.UserFilter) (*model.UserPage, error)
	UpdateIsActive(ctx context.Context, username string, isActive bool) (*model.User, error)
}

package ports

import (
	"context"

	"github.com/bqviet86/cmict-server/internal/model"
)

// CacheRepository : Redis слой для профилей пользователей
type CacheRepository interface {
	SetUser(ctx context.Context, user *model.User) error
	GetUser(ctx context.Context, uuid string) (*model.User, error)
	DeleteUser(ctx context.Context, uuid string) error
}

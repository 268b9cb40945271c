package ports

import (
	"context"

	"github.com/bqviet86/cmict-server/internal/model"
	"github.com/bqviet86/cmict-server/internal/security"
	"github.com/jmoiron/sqlx"
)

// SessionRepository : выданные refresh токены. Кэша в памяти нет, источник истины только БД
type SessionRepository interface {
	Save(ctx context.Context, exec sqlx.ExtContext, token *model.RefreshToken) error
	FindByToken(ctx context.Context, exec sqlx.ExtContext, token string) (*model.RefreshToken, error)
	DeleteByToken(ctx context.Context, exec sqlx.ExtContext, token string) error
	Rotate(ctx context.Context, exec sqlx.ExtContext, oldToken string, next *model.RefreshToken) (bool, error)
}

type TokenCodec interface {
	Sign(payload security.TokenPayload) (string, *security.Claims, error)
	Verify(token string) (*security.Claims, error)
}

// Transactor : доступ к БД и транзакциям для сервисов
type Transactor interface {
	Executor() sqlx.ExtContext
	WithTx(ctx context.Context, fn func(exec sqlx.ExtContext) error) error
}

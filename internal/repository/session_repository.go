package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/bqviet86/cmict-server/internal/apperror"
	"github.com/bqviet86/cmict-server/internal/model"
	"github.com/bqviet86/cmict-server/internal/util"
	"github.com/jmoiron/sqlx"
)

// SessionRepository хранит выданные refresh токены по их строковому значению
type SessionRepository struct{}

func NewSessionRepository() *SessionRepository {
	return &SessionRepository{}
}

// Save сохраняет refresh-токен в базе данных
func (r *SessionRepository) Save(ctx context.Context, exec sqlx.ExtContext, token *model.RefreshToken) error {
	query := `INSERT INTO refresh_tokens (token, user_uuid, issued_at, expires_at) VALUES ($1, $2, $3, $4)`

	_, err := exec.ExecContext(ctx, query, token.Token, token.UserUUID, token.IssuedAt, token.ExpiresAt)
	if err != nil {
		return util.LogError("[SessionRepo] ошибка вставки данных в БД", err)
	}

	return nil
}

// FindByToken ищет refresh-токен. Отсутствие записи возвращает apperror.ErrNotFound
func (r *SessionRepository) FindByToken(ctx context.Context, exec sqlx.ExtContext, token string) (*model.RefreshToken, error) {
	query := `SELECT token, user_uuid, issued_at, expires_at FROM refresh_tokens WHERE token = $1`

	var refreshToken model.RefreshToken
	if err := sqlx.GetContext(ctx, exec, &refreshToken, query, token); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperror.NotFound("refresh token not found")
		}
		return nil, util.LogError("[SessionRepo] ошибка при выполнении запроса", err)
	}

	return &refreshToken, nil
}

// DeleteByToken удаляет токен. Повторное удаление не считается ошибкой
func (r *SessionRepository) DeleteByToken(ctx context.Context, exec sqlx.ExtContext, token string) error {
	if _, err := exec.ExecContext(ctx, `DELETE FROM refresh_tokens WHERE token = $1`, token); err != nil {
		return util.LogError("[SessionRepo] не удалось удалить рефреш токен", err)
	}
	return nil
}

// Rotate удаляет oldToken и сохраняет next. Возвращает false, если oldToken уже не было в БД,
// в этом случае next не сохраняется. Вызывать внутри транзакции
func (r *SessionRepository) Rotate(ctx context.Context, exec sqlx.ExtContext, oldToken string, next *model.RefreshToken) (bool, error) {
	result, err := exec.ExecContext(ctx, `DELETE FROM refresh_tokens WHERE token = $1`, oldToken)
	if err != nil {
		return false, util.LogError("[SessionRepo] не удалось удалить рефреш токен", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return false, util.LogError("[SessionRepo] не удалось проверить, удалён ли токен", err)
	}
	if rowsAffected == 0 {
		return false, nil
	}

	if err := r.Save(ctx, exec, next); err != nil {
		return false, err
	}

	return true, nil
}

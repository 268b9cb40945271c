package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/bqviet86/cmict-server/internal/apperror"
	"github.com/bqviet86/cmict-server/internal/model"
	"github.com/bqviet86/cmict-server/internal/util"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

const uniqueViolation = "23505"

const userColumns = `uuid, name, username, password_hash, sex, role, avatar, is_active, created_at, updated_at`

type UserRepository struct{}

func NewUserRepository() *UserRepository {
	return &UserRepository{}
}

// CreateUser : сохраняет нового пользователя. Занятый username возвращает apperror.ErrUsernameTaken
func (r *UserRepository) CreateUser(ctx context.Context, exec sqlx.ExtContext, user *model.User) (*model.User, error) {
	query := `
	INSERT INTO users (uuid, name, username, password_hash, sex, role, avatar, is_active)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	RETURNING ` + userColumns

	createdUser := &model.User{}
	err := sqlx.GetContext(ctx, exec, createdUser, query,
		user.UUID, user.Name, user.Username, user.PasswordHash,
		user.Sex, user.Role, user.Avatar, user.IsActive,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, apperror.ErrUsernameTaken
		}
		return nil, util.LogError("[UserRepo] ошибка вставки данных в БД", err)
	}

	return createdUser, nil
}

// FindByUUID : ищет пользователя по UUID
func (r *UserRepository) FindByUUID(ctx context.Context, exec sqlx.ExtContext, uuid string) (*model.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE uuid = $1`
	return r.getOne(ctx, exec, query, uuid)
}

// FindByUsername : ищет пользователя по username
func (r *UserRepository) FindByUsername(ctx context.Context, exec sqlx.ExtContext, username string) (*model.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE username = $1`
	return r.getOne(ctx, exec, query, username)
}

// UpdateProfile : обновляет только переданные поля
func (r *UserRepository) UpdateProfile(ctx context.Context, exec sqlx.ExtContext, uuid string, input model.UpdateProfileInput) (*model.User, error) {
	query := `
	UPDATE users
	SET name = COALESCE($2, name),
		username = COALESCE($3, username),
		sex = COALESCE($4, sex),
		updated_at = NOW()
	WHERE uuid = $1
	RETURNING ` + userColumns

	var sex *string
	if input.Sex != nil {
		value := string(*input.Sex)
		sex = &value
	}

	user, err := r.getOne(ctx, exec, query, uuid, input.Name, input.Username, sex)
	if err != nil && isUniqueViolation(err) {
		return nil, apperror.ErrUsernameTaken
	}
	return user, err
}

// UpdateAvatar : меняет ссылку на аватар
func (r *UserRepository) UpdateAvatar(ctx context.Context, exec sqlx.ExtContext, uuid, avatar string) (*model.User, error) {
	query := `UPDATE users SET avatar = $2, updated_at = NOW() WHERE uuid = $1 RETURNING ` + userColumns
	return r.getOne(ctx, exec, query, uuid, avatar)
}

// UpdateIsActive : блокирует или разблокирует пользователя
func (r *UserRepository) UpdateIsActive(ctx context.Context, exec sqlx.ExtContext, username string, isActive bool) (*model.User, error) {
	query := `UPDATE users SET is_active = $2, updated_at = NOW() WHERE username = $1 RETURNING ` + userColumns
	return r.getOne(ctx, exec, query, username, isActive)
}

// ListUsers : страница обычных пользователей (без админов) и общее количество
func (r *UserRepository) ListUsers(ctx context.Context, exec sqlx.ExtContext, filter model.UserFilter) ([]*model.User, int, error) {
	where := `
	WHERE role = 'user'
		AND ($1 = '' OR name ILIKE '%' || $1 || '%')
		AND ($2::boolean IS NULL OR is_active = $2)`

	var total int
	if err := sqlx.GetContext(ctx, exec, &total, `SELECT COUNT(*) FROM users`+where, filter.Name, filter.IsActive); err != nil {
		return nil, 0, util.LogError("[UserRepo] не удалось посчитать пользователей", err)
	}

	query := `SELECT ` + userColumns + ` FROM users` + where + `
	ORDER BY created_at DESC, uuid
	LIMIT $3 OFFSET $4`

	users := []*model.User{}
	err := sqlx.SelectContext(ctx, exec, &users, query, filter.Name, filter.IsActive, filter.Limit, filter.Offset())
	if err != nil {
		return nil, 0, util.LogError("[UserRepo] не удалось получить список пользователей", err)
	}

	return users, total, nil
}

func (r *UserRepository) getOne(ctx context.Context, exec sqlx.ExtContext, query string, args ...any) (*model.User, error) {
	var user model.User
	err := sqlx.GetContext(ctx, exec, &user, query, args...)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperror.NotFound("user not found")
		}
		if isUniqueViolation(err) {
			return nil, err
		}
		return nil, util.LogError("[UserRepo] ошибка запроса к БД", err)
	}
	return &user, nil
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == uniqueViolation
}

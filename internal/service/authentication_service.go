package service

import (
	"context"
	"errors"

	"github.com/bqviet86/cmict-server/internal/apperror"
	"github.com/bqviet86/cmict-server/internal/metrics"
	"github.com/bqviet86/cmict-server/internal/model"
	"github.com/bqviet86/cmict-server/internal/ports"
	"github.com/bqviet86/cmict-server/internal/security"
	"github.com/bqviet86/cmict-server/internal/util"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

type AuthenticationService struct {
	userRepository    ports.UserRepository
	sessionRepository ports.SessionRepository
	db                ports.Transactor
	passwordHasher    ports.PasswordHasher
	accessTokens      ports.TokenCodec
	refreshTokens     ports.TokenCodec
}

func NewAuthenticationService(
	userRepository ports.UserRepository,
	sessionRepository ports.SessionRepository,
	db ports.Transactor,
	passwordHasher ports.PasswordHasher,
	accessTokens ports.TokenCodec,
	refreshTokens ports.TokenCodec,
) *AuthenticationService {
	return &AuthenticationService{
		userRepository:    userRepository,
		sessionRepository: sessionRepository,
		db:                db,
		passwordHasher:    passwordHasher,
		accessTokens:      accessTokens,
		refreshTokens:     refreshTokens,
	}
}

// Register создаёт активного пользователя с ролью user и сразу выдаёт ему пару токенов.
// Пользователь и refresh токен сохраняются в одной транзакции.
// Занятый username (в том числе при гонке двух регистраций) даёт apperror.ErrUsernameTaken
func (s *AuthenticationService) Register(ctx context.Context, input model.RegisterInput) (result *model.AuthResult, err error) {
	defer func() { metrics.ObserveAuth("register", err) }()

	_, err = s.userRepository.FindByUsername(ctx, s.db.Executor(), input.Username)
	switch {
	case err == nil:
		return nil, apperror.ErrUsernameTaken
	case !errors.Is(err, apperror.ErrNotFound):
		return nil, util.LogError("[AuthService] ошибка проверки username", err)
	}

	user := &model.User{
		UUID:         uuid.NewString(),
		Name:         input.Name,
		Username:     input.Username,
		PasswordHash: s.passwordHasher.Hash(input.Password),
		Sex:          input.Sex,
		Role:         model.RoleUser,
		IsActive:     true,
	}

	err = s.db.WithTx(ctx, func(exec sqlx.ExtContext) error {
		created, err := s.userRepository.CreateUser(ctx, exec, user)
		if err != nil {
			return err
		}

		tokens, session, err := s.issueTokens(created)
		if err != nil {
			return err
		}

		if err := s.sessionRepository.Save(ctx, exec, session); err != nil {
			return err
		}

		result = &model.AuthResult{User: created, TokensPair: *tokens}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return result, nil
}

// Login проверяет в порядке: существует ли пользователь, верен ли пароль, активен ли он
func (s *AuthenticationService) Login(ctx context.Context, username, password string) (result *model.AuthResult, err error) {
	defer func() { metrics.ObserveAuth("login", err) }()

	user, err := s.userRepository.FindByUsername(ctx, s.db.Executor(), username)
	if err != nil {
		return nil, err
	}

	if !s.passwordHasher.Verify(password, user.PasswordHash) {
		return nil, apperror.ErrIncorrectPassword
	}

	if !user.IsActive {
		return nil, apperror.ErrInactive
	}

	tokens, session, err := s.issueTokens(user)
	if err != nil {
		return nil, err
	}

	if err := s.sessionRepository.Save(ctx, s.db.Executor(), session); err != nil {
		return nil, err
	}

	return &model.AuthResult{User: user, TokensPair: *tokens}, nil
}

// RefreshToken обменивает refresh токен на новую пару.
// Старый токен удаляется и новый сохраняется в одной транзакции, поэтому из нескольких
// одновременных запросов с одним токеном успешен максимум один.
// Новый refresh токен живёт до того же момента, что и старый.
// Роль в новых токенах берётся из БД, а не из предъявленного токена
func (s *AuthenticationService) RefreshToken(ctx context.Context, refreshToken string) (tokens *model.TokensPair, err error) {
	defer func() { metrics.ObserveAuth("refresh", err) }()

	claims, err := s.refreshTokens.Verify(refreshToken)
	if err != nil {
		return nil, err
	}

	user, err := s.userRepository.FindByUUID(ctx, s.db.Executor(), claims.UserUUID)
	switch {
	case errors.Is(err, apperror.ErrNotFound):
		return nil, apperror.ErrTokenInvalid
	case err != nil:
		return nil, err
	}

	accessToken, _, err := s.accessTokens.Sign(security.TokenPayload{
		UserUUID: user.UUID,
		Role:     user.Role,
	})
	if err != nil {
		return nil, util.LogError("[AuthService] ошибка подписи access токена", err)
	}

	newRefreshToken, newClaims, err := s.refreshTokens.Sign(security.TokenPayload{
		UserUUID:  user.UUID,
		Role:      user.Role,
		ExpiresAt: claims.ExpiresAt.Time,
	})
	if err != nil {
		return nil, util.LogError("[AuthService] ошибка подписи refresh токена", err)
	}

	err = s.db.WithTx(ctx, func(exec sqlx.ExtContext) error {
		consumed, err := s.sessionRepository.Rotate(ctx, exec, refreshToken, sessionFromClaims(newRefreshToken, newClaims))
		if err != nil {
			return err
		}
		if !consumed {
			return apperror.ErrRefreshTokenUnknown
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &model.TokensPair{AccessToken: accessToken, RefreshToken: newRefreshToken}, nil
}

// Logout удаляет refresh токен. Подпись не проверяется, повторный logout не ошибка
func (s *AuthenticationService) Logout(ctx context.Context, refreshToken string) (err error) {
	defer func() { metrics.ObserveAuth("logout", err) }()

	return s.sessionRepository.DeleteByToken(ctx, s.db.Executor(), refreshToken)
}

// ResolveIdentity загружает пользователя для JWTMiddleware напрямую из БД, минуя кэш
func (s *AuthenticationService) ResolveIdentity(ctx context.Context, userUUID string) (*model.User, error) {
	return s.userRepository.FindByUUID(ctx, s.db.Executor(), userUUID)
}

func (s *AuthenticationService) issueTokens(user *model.User) (*model.TokensPair, *model.RefreshToken, error) {
	payload := security.TokenPayload{UserUUID: user.UUID, Role: user.Role}

	accessToken, _, err := s.accessTokens.Sign(payload)
	if err != nil {
		return nil, nil, util.LogError("[AuthService] ошибка подписи access токена", err)
	}

	refreshToken, refreshClaims, err := s.refreshTokens.Sign(payload)
	if err != nil {
		return nil, nil, util.LogError("[AuthService] ошибка подписи refresh токена", err)
	}

	return &model.TokensPair{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, sessionFromClaims(refreshToken, refreshClaims), nil
}

func sessionFromClaims(token string, claims *security.Claims) *model.RefreshToken {
	return &model.RefreshToken{
		Token:     token,
		UserUUID:  claims.UserUUID,
		IssuedAt:  claims.IssuedAt.Time,
		ExpiresAt: claims.ExpiresAt.Time,
	}
}

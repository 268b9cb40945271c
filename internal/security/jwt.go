package security

import (
	"errors"
	"time"

	"github.com/bqviet86/cmict-server/internal/apperror"
	"github.com/bqviet86/cmict-server/internal/model"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

type TokenType string

const (
	AccessToken  TokenType = "access_token"
	RefreshToken TokenType = "refresh_token"
)

const issuer = "cmict-server"

type Claims struct {
	UserUUID  string     `json:"user_id"`
	Role      model.Role `json:"role"`
	TokenType TokenType  `json:"token_type"`
	jwt.RegisteredClaims
}

// TokenPayload : данные для подписи. Если ExpiresAt задан, он переносится в токен как есть,
// иначе срок жизни считается от текущего времени
type TokenPayload struct {
	UserUUID  string
	Role      model.Role
	ExpiresAt time.Time
}

// JWTService подписывает и проверяет токены одного типа.
// Для access и refresh токенов создаются отдельные экземпляры со своими ключами
type JWTService struct {
	secret    []byte
	tokenType TokenType
	ttl       time.Duration
	now       func() time.Time
}

func NewJWTService(secret string, tokenType TokenType, ttl time.Duration) *JWTService {
	return &JWTService{
		secret:    []byte(secret),
		tokenType: tokenType,
		ttl:       ttl,
		now:       time.Now,
	}
}

func (s *JWTService) Sign(payload TokenPayload) (string, *Claims, error) {
	issuedAt := s.now()
	expiresAt := payload.ExpiresAt
	if expiresAt.IsZero() {
		expiresAt = issuedAt.Add(s.ttl)
	}

	claims := &Claims{
		UserUUID:  payload.UserUUID,
		Role:      payload.Role,
		TokenType: s.tokenType,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Issuer:    issuer,
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", nil, err
	}

	return signed, claims, nil
}

// Verify проверяет подпись, срок действия и тип токена.
// Возвращает apperror.ErrTokenExpired для просроченного токена и apperror.ErrTokenInvalid во всех остальных случаях
func (s *JWTService) Verify(tokenStr string) (*Claims, error) {
	claims := &Claims{}

	_, err := jwt.ParseWithClaims(tokenStr, claims, func(token *jwt.Token) (interface{}, error) {
		return s.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithIssuer(issuer),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, apperror.ErrTokenExpired
		}
		return nil, apperror.ErrTokenInvalid
	}

	if claims.TokenType != s.tokenType || claims.UserUUID == "" {
		return nil, apperror.ErrTokenInvalid
	}

	return claims, nil
}

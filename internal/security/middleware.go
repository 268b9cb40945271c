package security

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/bqviet86/cmict-server/internal/apperror"
	"github.com/bqviet86/cmict-server/internal/model"
	"github.com/bqviet86/cmict-server/internal/util"
)

type contextKey string

const identityContextKey contextKey = "identity"

// OptOutQueryParam : при verify_access_token=false необязательная проверка токена пропускается
const OptOutQueryParam = "verify_access_token"

// Identity : кто выполняет запрос
type Identity struct {
	UserUUID string
	Role     model.Role
}

func (i Identity) IsAdmin() bool {
	return i.Role == model.RoleAdmin
}

func WithIdentity(ctx context.Context, identity Identity) context.Context {
	return context.WithValue(ctx, identityContextKey, identity)
}

func IdentityFromContext(ctx context.Context) (Identity, bool) {
	identity, ok := ctx.Value(identityContextKey).(Identity)
	return identity, ok
}

type TokenVerifier interface {
	Verify(token string) (*Claims, error)
}

// IdentityResolver загружает пользователя из хранилища. Активность пользователя здесь не проверяется
type IdentityResolver interface {
	ResolveIdentity(ctx context.Context, userUUID string) (*model.User, error)
}

// JWTMiddleware требует валидный access токен в заголовке Authorization
func JWTMiddleware(verifier TokenVerifier, resolver IdentityResolver) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(handleAuthentication(verifier, resolver, false, next))
	}
}

// OptionalJWTMiddleware работает как JWTMiddleware, но запрос с ?verify_access_token=false
// проходит дальше без проверки и без Identity в контексте
func OptionalJWTMiddleware(verifier TokenVerifier, resolver IdentityResolver) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(handleAuthentication(verifier, resolver, true, next))
	}
}

func handleAuthentication(verifier TokenVerifier, resolver IdentityResolver, optional bool, next http.Handler) http.HandlerFunc {
	return func(writer http.ResponseWriter, request *http.Request) {
		if optional && request.URL.Query().Get(OptOutQueryParam) == "false" {
			next.ServeHTTP(writer, request)
			return
		}

		token, ok := bearerToken(request)
		if !ok {
			util.WriteError(writer, apperror.ErrUnauthenticated)
			return
		}

		claims, err := verifier.Verify(token)
		if err != nil {
			util.WriteError(writer, err)
			return
		}

		user, err := resolver.ResolveIdentity(request.Context(), claims.UserUUID)
		if err != nil {
			if errors.Is(err, apperror.ErrNotFound) {
				err = apperror.ErrTokenInvalid
			}
			util.WriteError(writer, util.LogError("[JWTMiddleware] не удалось загрузить пользователя", err))
			return
		}

		ctx := WithIdentity(request.Context(), Identity{UserUUID: user.UUID, Role: user.Role})
		next.ServeHTTP(writer, request.WithContext(ctx))
	}
}

// RequireAdmin пропускает только администраторов. Ставится после JWTMiddleware
func RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		identity, ok := IdentityFromContext(request.Context())
		if !ok {
			util.WriteError(writer, apperror.ErrUnauthenticated)
			return
		}
		if !identity.IsAdmin() {
			util.WriteError(writer, apperror.ErrPermissionDenied)
			return
		}
		next.ServeHTTP(writer, request)
	})
}

func bearerToken(request *http.Request) (string, bool) {
	header := request.Header.Get("Authorization")
	if !strings.HasPrefix(header, "Bearer ") {
		return "", false
	}
	token := strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
	return token, token != ""
}

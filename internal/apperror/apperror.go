package apperror

import (
	"errors"
	"net/http"
)

// Kind : категория ошибки, по которой выбирается HTTP статус
type Kind string

const (
	KindValidation          Kind = "VALIDATION_FAILURE"
	KindUnauthenticated     Kind = "UNAUTHENTICATED"
	KindTokenInvalid        Kind = "TOKEN_INVALID"
	KindTokenExpired        Kind = "TOKEN_EXPIRED"
	KindRefreshTokenUnknown Kind = "REFRESH_TOKEN_UNKNOWN"
	KindIncorrectPassword   Kind = "INCORRECT_PASSWORD"
	KindNotFound            Kind = "NOT_FOUND"
	KindInactive            Kind = "INACTIVE"
	KindPermissionDenied    Kind = "PERMISSION_DENIED"
	KindUsernameTaken       Kind = "USERNAME_TAKEN"
)

// Error : ошибка, которую можно показать клиенту
type Error struct {
	Kind    Kind
	Message string
	Fields  map[string]string
}

func (e *Error) Error() string {
	return e.Message
}

// Is сравнивает только Kind, поэтому errors.Is(err, ErrNotFound) работает
// и для ошибок с собственным текстом
func (e *Error) Is(target error) bool {
	var t *Error
	if !errors.As(target, &t) {
		return false
	}
	return t.Kind == e.Kind
}

var (
	ErrValidation          = &Error{Kind: KindValidation, Message: "validation error"}
	ErrUnauthenticated     = &Error{Kind: KindUnauthenticated, Message: "access token is required"}
	ErrTokenInvalid        = &Error{Kind: KindTokenInvalid, Message: "token is invalid"}
	ErrTokenExpired        = &Error{Kind: KindTokenExpired, Message: "token has expired"}
	ErrRefreshTokenUnknown = &Error{Kind: KindRefreshTokenUnknown, Message: "refresh token has been used or does not exist"}
	ErrIncorrectPassword   = &Error{Kind: KindIncorrectPassword, Message: "password is incorrect"}
	ErrNotFound            = &Error{Kind: KindNotFound, Message: "resource not found"}
	ErrInactive            = &Error{Kind: KindInactive, Message: "user is not active"}
	ErrPermissionDenied    = &Error{Kind: KindPermissionDenied, Message: "permission denied"}
	ErrUsernameTaken       = &Error{Kind: KindUsernameTaken, Message: "username already exists"}
)

// NotFound : ErrNotFound с текстом под конкретный ресурс
func NotFound(message string) *Error {
	return &Error{Kind: KindNotFound, Message: message}
}

// Validation : ошибка валидации с картой поле -> сообщение
func Validation(fields map[string]string) *Error {
	return &Error{Kind: KindValidation, Message: ErrValidation.Message, Fields: fields}
}

// ValidationField : ошибка валидации одного поля
func ValidationField(field, message string) *Error {
	return Validation(map[string]string{field: message})
}

// StatusCode возвращает HTTP статус для ошибки. Всё, что не *Error, считается
// внутренней ошибкой
func StatusCode(err error) int {
	var appErr *Error
	if !errors.As(err, &appErr) {
		return http.StatusInternalServerError
	}

	switch appErr.Kind {
	case KindValidation:
		return http.StatusBadRequest
	case KindUnauthenticated, KindTokenInvalid, KindTokenExpired, KindRefreshTokenUnknown, KindIncorrectPassword:
		return http.StatusUnauthorized
	case KindInactive, KindPermissionDenied:
		return http.StatusForbidden
	case KindNotFound:
		return http.StatusNotFound
	case KindUsernameTaken:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// From достаёт *Error из цепочки ошибок
func From(err error) (*Error, bool) {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

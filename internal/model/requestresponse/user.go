package requestresponse

import "github.com/bqviet86/cmict-server/internal/model"

// ErrorDetail : детальная информация об ошибке
type ErrorDetail struct {
	Code   int               `json:"code" example:"400"`
	Kind   string            `json:"kind,omitempty" example:"VALIDATION_FAILURE"`
	Text   string            `json:"text" example:"validation error"`
	Fields map[string]string `json:"fields,omitempty"`
}

// ErrorResponse : стандартная структура ошибки
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// UpdateMeRequest : тело запроса на обновление своего профиля
type UpdateMeRequest struct {
	Name     *string `json:"name,omitempty" validate:"omitempty,min=1,max=100" example:"Nguyen Van B"`
	Username *string `json:"username,omitempty" validate:"omitempty,min=1,max=100" example:"nguyenvanb"`
	Sex      *string `json:"sex,omitempty" validate:"omitempty,oneof=male female" example:"female"`
}

// UpdateActiveStatusRequest : тело запроса на блокировку/разблокировку пользователя
type UpdateActiveStatusRequest struct {
	IsActive *bool `json:"is_active" validate:"required" example:"false"`
}

// UserResponse : ответ с данными пользователя
type UserResponse struct {
	Message string      `json:"message" example:"Get me success"`
	Result  *model.User `json:"result"`
}

// ListUsersResponse : ответ со страницей пользователей
type ListUsersResponse struct {
	Message string          `json:"message" example:"Get all users success"`
	Result  *model.UserPage `json:"result"`
}

package requestresponse

import "github.com/bqviet86/cmict-server/internal/model"

// RegisterRequest : тело запроса регистрации
type RegisterRequest struct {
	Name            string `json:"name" validate:"required,min=1,max=100" example:"Nguyen Van A"`
	Username        string `json:"username" validate:"required,min=1,max=100" example:"nguyenvana"`
	Password        string `json:"password" validate:"required,min=6,max=50,strong_password" example:"P@ssw0rd!"`
	ConfirmPassword string `json:"confirm_password" validate:"required,eqfield=Password" example:"P@ssw0rd!"`
	Sex             string `json:"sex" validate:"required,oneof=male female" example:"male"`
}

// LoginRequest : тело запроса на аутентификацию
type LoginRequest struct {
	Username string `json:"username" validate:"required" example:"nguyenvana"`
	Password string `json:"password" validate:"required" example:"P@ssw0rd!"`
}

// RefreshTokenRequest : запрос на обновление пары токенов, также используется в logout
type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required" example:"eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9..."`
}

// AuthResponse : ответ регистрации и входа
type AuthResponse struct {
	Message string           `json:"message" example:"Login success"`
	Result  model.AuthResult `json:"result"`
}

// TokensResponse : ответ с новой парой токенов
type TokensResponse struct {
	Message string           `json:"message" example:"Login success"`
	Result  model.TokensPair `json:"result"`
}

// MessageResponse : ответ без данных
type MessageResponse struct {
	Message string `json:"message" example:"Logout success"`
}

package model

import "time"

// RefreshToken : запись о выданном refresh токене. Токен валиден, пока запись есть в БД
type RefreshToken struct {
	Token     string    `db:"token"`
	UserUUID  string    `db:"user_uuid"`
	IssuedAt  time.Time `db:"issued_at"`
	ExpiresAt time.Time `db:"expires_at"`
}

// TokensPair содержит пару access и refresh токенов
// swagger:model
type TokensPair struct {
	// Access токен (JWT)
	// example: eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9...
	AccessToken string `json:"access_token"`

	// Refresh токен (JWT, одноразовый)
	// example: eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9...
	RefreshToken string `json:"refresh_token"`
}

// AuthResult : результат регистрации и входа, пользователь вместе с парой токенов
// swagger:model
type AuthResult struct {
	User *User `json:"user"`
	TokensPair
}

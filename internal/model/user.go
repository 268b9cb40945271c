package model

import "time"

type Role string

const (
	RoleAdmin Role = "admin"
	RoleUser  Role = "user"
)

type Sex string

const (
	SexMale   Sex = "male"
	SexFemale Sex = "female"
)

type User struct {
	UUID         string    `db:"uuid" json:"uuid"`
	Name         string    `db:"name" json:"name"`
	Username     string    `db:"username" json:"username"`
	PasswordHash string    `db:"password_hash" json:"-"`
	Sex          Sex       `db:"sex" json:"sex"`
	Role         Role      `db:"role" json:"role"`
	Avatar       string    `db:"avatar" json:"avatar"`
	IsActive     bool      `db:"is_active" json:"is_active"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
	UpdatedAt    time.Time `db:"updated_at" json:"updated_at"`
}

// RegisterInput : данные для регистрации, пароль ещё не захэширован
type RegisterInput struct {
	Name     string
	Username string
	Password string
	Sex      Sex
}

// UpdateProfileInput : изменяемые поля профиля, nil означает "не менять"
type UpdateProfileInput struct {
	Name     *string
	Username *string
	Sex      *Sex
}

// UserFilter : фильтр списка пользователей для админки
type UserFilter struct {
	Name     string
	IsActive *bool
	Pagination
}

type UserPage struct {
	Users      []*User `json:"users"`
	Page       int     `json:"page"`
	Limit      int     `json:"limit"`
	TotalPages int     `json:"total_pages"`
}

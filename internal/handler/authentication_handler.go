package handler

import (
	"net/http"

	"github.com/bqviet86/cmict-server/internal/model"
	"github.com/bqviet86/cmict-server/internal/model/requestresponse"
	"github.com/bqviet86/cmict-server/internal/ports"
	"github.com/bqviet86/cmict-server/internal/util"
)

type AuthenticationHandler struct {
	authenticationService ports.AuthenticationService
}

func NewAuthenticationHandler(authenticationService ports.AuthenticationService) *AuthenticationHandler {
	return &AuthenticationHandler{authenticationService: authenticationService}
}

// Register godoc
// @Summary Регистрация нового пользователя
// @Description Создаёт активного пользователя с ролью user и возвращает его вместе с парой токенов
// @Tags Authentication
// @Accept json
// @Produce json
// @Param body body requestresponse.RegisterRequest true "Тело запроса"
// @Success 200 {object} requestresponse.AuthResponse
// @Failure 400 {object} requestresponse.ErrorResponse "Ошибка валидации"
// @Failure 409 {object} requestresponse.ErrorResponse "Username уже занят"
// @Failure 500 {object} requestresponse.ErrorResponse
// @Router /users/register [post]
func (h *AuthenticationHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req requestresponse.RegisterRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	result, err := h.authenticationService.Register(r.Context(), model.RegisterInput{
		Name:     req.Name,
		Username: req.Username,
		Password: req.Password,
		Sex:      model.Sex(req.Sex),
	})
	if err != nil {
		util.WriteError(w, err)
		return
	}

	util.WriteJSON(w, http.StatusOK, requestresponse.AuthResponse{Message: msgRegisterSuccess, Result: *result})
}

// Login godoc
// @Summary Аутентификация пользователя
// @Description Возвращает пользователя и пару токенов по username и паролю
// @Tags Authentication
// @Accept json
// @Produce json
// @Param body body requestresponse.LoginRequest true "Тело запроса"
// @Success 200 {object} requestresponse.AuthResponse
// @Failure 400 {object} requestresponse.ErrorResponse
// @Failure 401 {object} requestresponse.ErrorResponse "Неверный пароль"
// @Failure 403 {object} requestresponse.ErrorResponse "Пользователь заблокирован"
// @Failure 404 {object} requestresponse.ErrorResponse "Пользователь не найден"
// @Failure 500 {object} requestresponse.ErrorResponse
// @Router /users/login [post]
func (h *AuthenticationHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req requestresponse.LoginRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	result, err := h.authenticationService.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		util.WriteError(w, err)
		return
	}

	util.WriteJSON(w, http.StatusOK, requestresponse.AuthResponse{Message: msgLoginSuccess, Result: *result})
}

// Logout godoc
// @Summary Завершение сессии
// @Description Удаляет refresh токен. Повторный вызов с тем же токеном тоже успешен
// @Tags Authentication
// @Accept json
// @Produce json
// @Param body body requestresponse.RefreshTokenRequest true "Тело запроса"
// @Success 200 {object} requestresponse.MessageResponse
// @Failure 400 {object} requestresponse.ErrorResponse
// @Failure 401 {object} requestresponse.ErrorResponse
// @Failure 500 {object} requestresponse.ErrorResponse
// @Security BearerAuth
// @Router /users/logout [post]
func (h *AuthenticationHandler) Logout(w http.ResponseWriter, r *http.Request) {
	var req requestresponse.RefreshTokenRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	if err := h.authenticationService.Logout(r.Context(), req.RefreshToken); err != nil {
		util.WriteError(w, err)
		return
	}

	util.WriteJSON(w, http.StatusOK, requestresponse.MessageResponse{Message: msgLogoutSuccess})
}

// RefreshToken godoc
// @Summary Обновление токенов
// @Description Обменивает refresh токен на новую пару. Каждый refresh токен можно использовать один раз
// @Tags Authentication
// @Accept json
// @Produce json
// @Param body body requestresponse.RefreshTokenRequest true "Тело запроса"
// @Success 200 {object} requestresponse.TokensResponse
// @Failure 400 {object} requestresponse.ErrorResponse
// @Failure 401 {object} requestresponse.ErrorResponse "Токен невалиден, просрочен или уже использован"
// @Failure 500 {object} requestresponse.ErrorResponse
// @Router /users/refresh-token [post]
func (h *AuthenticationHandler) RefreshToken(w http.ResponseWriter, r *http.Request) {
	var req requestresponse.RefreshTokenRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	tokens, err := h.authenticationService.RefreshToken(r.Context(), req.RefreshToken)
	if err != nil {
		util.WriteError(w, err)
		return
	}

	util.WriteJSON(w, http.StatusOK, requestresponse.TokensResponse{Message: msgRefreshTokenSuccess, Result: *tokens})
}

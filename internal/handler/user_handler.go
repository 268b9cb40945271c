package handler

import (
	"net/http"

	"github.com/bqviet86/cmict-server/internal/apperror"
	"github.com/bqviet86/cmict-server/internal/model"
	"github.com/bqviet86/cmict-server/internal/model/requestresponse"
	"github.com/bqviet86/cmict-server/internal/ports"
	"github.com/bqviet86/cmict-server/internal/util"
	"github.com/go-chi/chi/v5"
)

type UserHandler struct {
	userService ports.UserService
}

func NewUserHandler(userService ports.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// GetMe godoc
// @Summary Мой профиль
// @Tags Users
// @Produce json
// @Success 200 {object} requestresponse.UserResponse
// @Failure 401 {object} requestresponse.ErrorResponse
// @Failure 404 {object} requestresponse.ErrorResponse
// @Failure 500 {object} requestresponse.ErrorResponse
// @Security BearerAuth
// @Router /users/me [get]
func (h *UserHandler) GetMe(w http.ResponseWriter, r *http.Request) {
	identity, ok := currentIdentity(w, r)
	if !ok {
		return
	}

	user, err := h.userService.GetMe(r.Context(), identity.UserUUID)
	if err != nil {
		util.WriteError(w, err)
		return
	}

	util.WriteJSON(w, http.StatusOK, requestresponse.UserResponse{Message: msgGetMeSuccess, Result: user})
}

// UpdateMe godoc
// @Summary Обновление своего профиля
// @Description Меняются только переданные поля
// @Tags Users
// @Accept json
// @Produce json
// @Param body body requestresponse.UpdateMeRequest true "Тело запроса"
// @Success 200 {object} requestresponse.UserResponse
// @Failure 400 {object} requestresponse.ErrorResponse
// @Failure 401 {object} requestresponse.ErrorResponse
// @Failure 409 {object} requestresponse.ErrorResponse "Username уже занят"
// @Failure 500 {object} requestresponse.ErrorResponse
// @Security BearerAuth
// @Router /users/me [patch]
func (h *UserHandler) UpdateMe(w http.ResponseWriter, r *http.Request) {
	identity, ok := currentIdentity(w, r)
	if !ok {
		return
	}

	var req requestresponse.UpdateMeRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	input := model.UpdateProfileInput{Name: req.Name, Username: req.Username}
	if req.Sex != nil {
		sex := model.Sex(*req.Sex)
		input.Sex = &sex
	}

	user, err := h.userService.UpdateMe(r.Context(), identity.UserUUID, input)
	if err != nil {
		util.WriteError(w, err)
		return
	}

	util.WriteJSON(w, http.StatusOK, requestresponse.UserResponse{Message: msgUpdateMeSuccess, Result: user})
}

// UpdateAvatar godoc
// @Summary Обновление аватара
// @Tags Users
// @Accept multipart/form-data
// @Produce json
// @Param image formData file true "Картинка"
// @Success 200 {object} requestresponse.UserResponse
// @Failure 400 {object} requestresponse.ErrorResponse
// @Failure 401 {object} requestresponse.ErrorResponse
// @Failure 500 {object} requestresponse.ErrorResponse
// @Security BearerAuth
// @Router /users/update-avatar [patch]
func (h *UserHandler) UpdateAvatar(w http.ResponseWriter, r *http.Request) {
	identity, ok := currentIdentity(w, r)
	if !ok {
		return
	}

	files, closeAll, err := multipartFiles(r, imageFormField)
	defer closeAll()
	if err != nil {
		util.WriteError(w, err)
		return
	}
	if len(files) != 1 {
		util.WriteError(w, apperror.ValidationField(imageFormField, "exactly one image is required"))
		return
	}

	user, err := h.userService.UpdateAvatar(r.Context(), identity.UserUUID, files[0])
	if err != nil {
		util.WriteError(w, err)
		return
	}

	util.WriteJSON(w, http.StatusOK, requestresponse.UserResponse{Message: msgUpdateAvatarSuccess, Result: user})
}

// GetProfile godoc
// @Summary Профиль пользователя по username
// @Tags Users
// @Produce json
// @Param username path string true "Username"
// @Success 200 {object} requestresponse.UserResponse
// @Failure 401 {object} requestresponse.ErrorResponse
// @Failure 403 {object} requestresponse.ErrorResponse
// @Failure 404 {object} requestresponse.ErrorResponse
// @Failure 500 {object} requestresponse.ErrorResponse
// @Security BearerAuth
// @Router /users/{username} [get]
func (h *UserHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	user, err := h.userService.GetProfile(r.Context(), chi.URLParam(r, "username"))
	if err != nil {
		util.WriteError(w, err)
		return
	}

	util.WriteJSON(w, http.StatusOK, requestresponse.UserResponse{Message: msgGetProfileSuccess, Result: user})
}

// ListUsers godoc
// @Summary Список пользователей
// @Description Только для администратора. Администраторы в список не попадают
// @Tags Admin
// @Produce json
// @Param name query string false "Часть имени или username"
// @Param is_active query bool false "Фильтр по активности"
// @Param page query int false "Номер страницы" default(1) minimum(1)
// @Param limit query int false "Размер страницы" default(10) minimum(1) maximum(100)
// @Success 200 {object} requestresponse.ListUsersResponse
// @Failure 400 {object} requestresponse.ErrorResponse
// @Failure 401 {object} requestresponse.ErrorResponse
// @Failure 403 {object} requestresponse.ErrorResponse
// @Failure 500 {object} requestresponse.ErrorResponse
// @Security BearerAuth
// @Router /users/admin/all-users [get]
func (h *UserHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	pagination, err := paginationFromQuery(r)
	if err != nil {
		util.WriteError(w, err)
		return
	}

	isActive, err := boolFromQuery(r, "is_active")
	if err != nil {
		util.WriteError(w, err)
		return
	}

	page, err := h.userService.ListUsers(r.Context(), model.UserFilter{
		Name:       r.URL.Query().Get("name"),
		IsActive:   isActive,
		Pagination: pagination,
	})
	if err != nil {
		util.WriteError(w, err)
		return
	}

	util.WriteJSON(w, http.StatusOK, requestresponse.ListUsersResponse{Message: msgGetAllUsersSuccess, Result: page})
}

// UpdateActiveStatus godoc
// @Summary Блокировка и разблокировка пользователя
// @Tags Admin
// @Accept json
// @Produce json
// @Param username path string true "Username"
// @Param body body requestresponse.UpdateActiveStatusRequest true "Тело запроса"
// @Success 200 {object} requestresponse.UserResponse
// @Failure 400 {object} requestresponse.ErrorResponse
// @Failure 401 {object} requestresponse.ErrorResponse
// @Failure 403 {object} requestresponse.ErrorResponse
// @Failure 404 {object} requestresponse.ErrorResponse
// @Failure 500 {object} requestresponse.ErrorResponse
// @Security BearerAuth
// @Router /users/admin/update-active-status/{username} [patch]
func (h *UserHandler) UpdateActiveStatus(w http.ResponseWriter, r *http.Request) {
	var req requestresponse.UpdateActiveStatusRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	user, err := h.userService.UpdateIsActive(r.Context(), chi.URLParam(r, "username"), *req.IsActive)
	if err != nil {
		util.WriteError(w, err)
		return
	}

	util.WriteJSON(w, http.StatusOK, requestresponse.UserResponse{Message: msgUpdateIsActiveSuccess, Result: user})
}

package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/bqviet86/cmict-server/internal/apperror"
	"github.com/bqviet86/cmict-server/internal/model"
	"github.com/bqviet86/cmict-server/internal/security"
	"github.com/bqviet86/cmict-server/internal/util"
	"github.com/bqviet86/cmict-server/internal/validation"
)

const (
	msgRegisterSuccess       = "Register success"
	msgLoginSuccess          = "Login success"
	msgLogoutSuccess         = "Logout success"
	msgRefreshTokenSuccess   = "Refresh token success"
	msgGetMeSuccess          = "Get me success"
	msgGetProfileSuccess     = "Get profile success"
	msgUpdateMeSuccess       = "Update me success"
	msgUpdateAvatarSuccess   = "Update avatar success"
	msgGetAllUsersSuccess    = "Get all users success"
	msgUpdateIsActiveSuccess = "Update active status success"
	msgCreateContactSuccess  = "Create contact success"
	msgGetAllContactsSuccess = "Get all contacts success"
	msgUpdateIsReadSuccess   = "Update read status success"
	msgUploadImageSuccess    = "Upload image success"
	msgCreatePostSuccess     = "Create post success"
	msgGetAllPostsSuccess    = "Get all posts success"
	msgGetPostSuccess        = "Get post success"
	msgUpdatePostSuccess     = "Update post success"
	msgUpdateApprovedSuccess = "Update approved status success"
	msgDeletePostSuccess     = "Delete post success"
)

// decodeJSON читает тело запроса в target и валидирует его по тегам validate.
// При ошибке ответ уже записан
func decodeJSON(w http.ResponseWriter, r *http.Request, target any) bool {
	if err := json.NewDecoder(r.Body).Decode(target); err != nil {
		util.WriteError(w, apperror.ValidationField("body", "invalid JSON"))
		return false
	}

	if err := validation.Struct(target); err != nil {
		util.WriteError(w, err)
		return false
	}

	return true
}

// currentIdentity достаёт Identity, которую положил JWTMiddleware
func currentIdentity(w http.ResponseWriter, r *http.Request) (security.Identity, bool) {
	identity, ok := security.IdentityFromContext(r.Context())
	if !ok {
		util.WriteError(w, apperror.ErrUnauthenticated)
	}
	return identity, ok
}

// paginationFromQuery : page >= 1 (по умолчанию 1), 1 <= limit <= 100 (по умолчанию 10)
func paginationFromQuery(r *http.Request) (model.Pagination, error) {
	pagination := model.Pagination{Page: model.DefaultPage, Limit: model.DefaultLimit}
	fields := map[string]string{}

	if raw := r.URL.Query().Get("page"); raw != "" {
		page, err := strconv.Atoi(raw)
		if err != nil || page < 1 {
			fields["page"] = "must be a positive integer"
		} else {
			pagination.Page = page
		}
	}

	if raw := r.URL.Query().Get("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil || limit < 1 || limit > model.MaxLimit {
			fields["limit"] = "must be an integer between 1 and 100"
		} else {
			pagination.Limit = limit
		}
	}

	if len(fields) > 0 {
		return pagination, apperror.Validation(fields)
	}
	return pagination, nil
}

// boolFromQuery : пустой параметр означает "не фильтровать"
func boolFromQuery(r *http.Request, name string) (*bool, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return nil, nil
	}
	value, err := strconv.ParseBool(raw)
	if err != nil {
		return nil, apperror.ValidationField(name, "must be true or false")
	}
	return &value, nil
}

package handler_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/bqviet86/cmict-server/internal/apperror"
	"github.com/bqviet86/cmict-server/internal/handler"
	"github.com/bqviet86/cmict-server/internal/model"
	"github.com/bqviet86/cmict-server/internal/model/requestresponse"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var testTokens = &model.TokensPair{AccessToken: "access", RefreshToken: "refresh"}

func testAuthResult() *model.AuthResult {
	return &model.AuthResult{
		User: &model.User{
			UUID:         "u1",
			Name:         "Nguyen Van A",
			Username:     "nguyenvana",
			PasswordHash: "secret-hash",
			Sex:          model.SexMale,
			Role:         model.RoleUser,
			IsActive:     true,
		},
		TokensPair: *testTokens,
	}
}

func validRegisterBody() map[string]string {
	return map[string]string{
		"name":             "Nguyen Van A",
		"username":         "nguyenvana",
		"password":         "P@ssw0rd!",
		"confirm_password": "P@ssw0rd!",
		"sex":              "male",
	}
}

func TestAuthenticationHandler_Register(t *testing.T) {
	svc := new(MockAuthenticationService)
	h := handler.NewAuthenticationHandler(svc)

	svc.On("Register", mock.Anything, model.RegisterInput{
		Name:     "Nguyen Van A",
		Username: "nguyenvana",
		Password: "P@ssw0rd!",
		Sex:      model.SexMale,
	}).Return(testAuthResult(), nil)

	rec := httptest.NewRecorder()
	h.Register(rec, jsonRequest(t, http.MethodPost, "/users/register", validRegisterBody()))

	require.Equal(t, http.StatusOK, rec.Code)
	var resp struct {
		Message string `json:"message"`
		Result  struct {
			User         map[string]any `json:"user"`
			AccessToken  string         `json:"access_token"`
			RefreshToken string         `json:"refresh_token"`
		} `json:"result"`
	}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, "Register success", resp.Message)
	assert.Equal(t, "access", resp.Result.AccessToken)
	assert.Equal(t, "refresh", resp.Result.RefreshToken)
	require.NotNil(t, resp.Result.User)
	assert.Equal(t, "nguyenvana", resp.Result.User["username"])
	assert.Equal(t, "user", resp.Result.User["role"])
	assert.Equal(t, true, resp.Result.User["is_active"])
	assert.NotContains(t, resp.Result.User, "password_hash")
	svc.AssertExpectations(t)
}

func TestAuthenticationHandler_Register_Validation(t *testing.T) {
	tests := []struct {
		name   string
		modify func(body map[string]string)
		field  string
	}{
		{"missing name", func(b map[string]string) { delete(b, "name") }, "name"},
		{"weak password", func(b map[string]string) { b["password"], b["confirm_password"] = "abcdef", "abcdef" }, "password"},
		{"password mismatch", func(b map[string]string) { b["confirm_password"] = "Other1!x" }, "confirm_password"},
		{"bad sex", func(b map[string]string) { b["sex"] = "other" }, "sex"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := new(MockAuthenticationService)
			h := handler.NewAuthenticationHandler(svc)
			body := validRegisterBody()
			tt.modify(body)

			rec := httptest.NewRecorder()
			h.Register(rec, jsonRequest(t, http.MethodPost, "/users/register", body))

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			detail := decodeError(t, rec)
			assert.Equal(t, string(apperror.KindValidation), detail.Kind)
			assert.Contains(t, detail.Fields, tt.field)
			svc.AssertNotCalled(t, "Register", mock.Anything, mock.Anything)
		})
	}
}

func TestAuthenticationHandler_Register_UsernameTaken(t *testing.T) {
	svc := new(MockAuthenticationService)
	h := handler.NewAuthenticationHandler(svc)
	svc.On("Register", mock.Anything, mock.Anything).Return(nil, apperror.ErrUsernameTaken)

	rec := httptest.NewRecorder()
	h.Register(rec, jsonRequest(t, http.MethodPost, "/users/register", validRegisterBody()))

	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, string(apperror.KindUsernameTaken), decodeError(t, rec).Kind)
}

func TestAuthenticationHandler_Register_InvalidJSON(t *testing.T) {
	h := handler.NewAuthenticationHandler(new(MockAuthenticationService))
	req := httptest.NewRequest(http.MethodPost, "/users/register", strings.NewReader("{"))

	rec := httptest.NewRecorder()
	h.Register(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAuthenticationHandler_Login_Errors(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
		kind   apperror.Kind
	}{
		{"not found", apperror.NotFound("user not found"), http.StatusNotFound, apperror.KindNotFound},
		{"incorrect password", apperror.ErrIncorrectPassword, http.StatusUnauthorized, apperror.KindIncorrectPassword},
		{"inactive", apperror.ErrInactive, http.StatusForbidden, apperror.KindInactive},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := new(MockAuthenticationService)
			h := handler.NewAuthenticationHandler(svc)
			svc.On("Login", mock.Anything, "nguyenvana", "P@ssw0rd!").Return(nil, tt.err)

			rec := httptest.NewRecorder()
			h.Login(rec, jsonRequest(t, http.MethodPost, "/users/login", map[string]string{
				"username": "nguyenvana",
				"password": "P@ssw0rd!",
			}))

			assert.Equal(t, tt.status, rec.Code)
			assert.Equal(t, string(tt.kind), decodeError(t, rec).Kind)
		})
	}
}

func TestAuthenticationHandler_Login_Success(t *testing.T) {
	svc := new(MockAuthenticationService)
	h := handler.NewAuthenticationHandler(svc)
	svc.On("Login", mock.Anything, "nguyenvana", "P@ssw0rd!").Return(testAuthResult(), nil)

	rec := httptest.NewRecorder()
	h.Login(rec, jsonRequest(t, http.MethodPost, "/users/login", map[string]string{
		"username": "nguyenvana",
		"password": "P@ssw0rd!",
	}))

	require.Equal(t, http.StatusOK, rec.Code)
	var resp requestresponse.AuthResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, "Login success", resp.Message)
	assert.Equal(t, "refresh", resp.Result.RefreshToken)
	require.NotNil(t, resp.Result.User)
	assert.Equal(t, "u1", resp.Result.User.UUID)
	assert.Empty(t, resp.Result.User.PasswordHash)
}

func TestAuthenticationHandler_RefreshToken(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
	}{
		{"success", nil, http.StatusOK},
		{"expired", apperror.ErrTokenExpired, http.StatusUnauthorized},
		{"already used", apperror.ErrRefreshTokenUnknown, http.StatusUnauthorized},
		{"storage failure", errors.New("db down"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := new(MockAuthenticationService)
			h := handler.NewAuthenticationHandler(svc)
			if tt.err != nil {
				svc.On("RefreshToken", mock.Anything, "refresh").Return(nil, tt.err)
			} else {
				svc.On("RefreshToken", mock.Anything, "refresh").Return(testTokens, nil)
			}

			rec := httptest.NewRecorder()
			h.RefreshToken(rec, jsonRequest(t, http.MethodPost, "/users/refresh-token", map[string]string{"refresh_token": "refresh"}))

			assert.Equal(t, tt.status, rec.Code)
			if tt.status == http.StatusInternalServerError {
				assert.NotContains(t, rec.Body.String(), "db down")
			}
		})
	}
}

func TestAuthenticationHandler_RefreshToken_MissingToken(t *testing.T) {
	svc := new(MockAuthenticationService)
	h := handler.NewAuthenticationHandler(svc)

	rec := httptest.NewRecorder()
	h.RefreshToken(rec, jsonRequest(t, http.MethodPost, "/users/refresh-token", map[string]string{}))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, decodeError(t, rec).Fields, "refresh_token")
	svc.AssertNotCalled(t, "RefreshToken", mock.Anything, mock.Anything)
}

func TestAuthenticationHandler_Logout(t *testing.T) {
	svc := new(MockAuthenticationService)
	h := handler.NewAuthenticationHandler(svc)
	svc.On("Logout", mock.Anything, "refresh").Return(nil).Twice()

	for i := 0; i < 2; i++ {
		rec := httptest.NewRecorder()
		h.Logout(rec, jsonRequest(t, http.MethodPost, "/users/logout", map[string]string{"refresh_token": "refresh"}))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "Logout success")
	}
	svc.AssertExpectations(t)
}

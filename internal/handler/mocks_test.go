package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/bqviet86/cmict-server/internal/model"
	"github.com/bqviet86/cmict-server/internal/model/requestresponse"
	"github.com/bqviet86/cmict-server/internal/security"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// ===== MOCKS =====

type MockAuthenticationService struct {
	mock.Mock
}

func (m *MockAuthenticationService) Register(ctx context.Context, input model.RegisterInput) (*model.AuthResult, error) {
	args := m.Called(ctx, input)
	if t, ok := args.Get(0).(*model.AuthResult); ok {
		return t, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockAuthenticationService) Login(ctx context.Context, username, password string) (*model.AuthResult, error) {
	args := m.Called(ctx, username, password)
	if t, ok := args.Get(0).(*model.AuthResult); ok {
		return t, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockAuthenticationService) RefreshToken(ctx context.Context, refreshToken string) (*model.TokensPair, error) {
	args := m.Called(ctx, refreshToken)
	if t, ok := args.Get(0).(*model.TokensPair); ok {
		return t, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockAuthenticationService) Logout(ctx context.Context, refreshToken string) error {
	args := m.Called(ctx, refreshToken)
	return args.Error(0)
}

func (m *MockAuthenticationService) ResolveIdentity(ctx context.Context, userUUID string) (*model.User, error) {
	args := m.Called(ctx, userUUID)
	if u, ok := args.Get(0).(*model.User); ok {
		return u, args.Error(1)
	}
	return nil, args.Error(1)
}

type MockUserService struct {
	mock.Mock
}

func (m *MockUserService) GetMe(ctx context.Context, uuid string) (*model.User, error) {
	args := m.Called(ctx, uuid)
	if u, ok := args.Get(0).(*model.User); ok {
		return u, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockUserService) UpdateMe(ctx context.Context, uuid string, input model.UpdateProfileInput) (*model.User, error) {
	args := m.Called(ctx, uuid, input)
	if u, ok := args.Get(0).(*model.User); ok {
		return u, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockUserService) UpdateAvatar(ctx context.Context, uuid string, file model.UploadFile) (*model.User, error) {
	args := m.Called(ctx, uuid, file)
	if u, ok := args.Get(0).(*model.User); ok {
		return u, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockUserService) GetProfile(ctx context.Context, username string) (*model.User, error) {
	args := m.Called(ctx, username)
	if u, ok := args.Get(0).(*model.User); ok {
		return u, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockUserService) ListUsers(ctx context.Context, filter model.UserFilter) (*model.UserPage, error) {
	args := m.Called(ctx, filter)
	if p, ok := args.Get(0).(*model.UserPage); ok {
		return p, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockUserService) UpdateIsActive(ctx context.Context, username string, isActive bool) (*model.User, error) {
	args := m.Called(ctx, username, isActive)
	if u, ok := args.Get(0).(*model.User); ok {
		return u, args.Error(1)
	}
	return nil, args.Error(1)
}

type MockContactService struct {
	mock.Mock
}

func (m *MockContactService) CreateContact(ctx context.Context, contact *model.Contact) (*model.Contact, error) {
	args := m.Called(ctx, contact)
	if c, ok := args.Get(0).(*model.Contact); ok {
		return c, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockContactService) ListContacts(ctx context.Context, filter model.ContactFilter) (*model.ContactPage, error) {
	args := m.Called(ctx, filter)
	if p, ok := args.Get(0).(*model.ContactPage); ok {
		return p, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockContactService) UpdateIsRead(ctx context.Context, id string, isRead bool) (*model.Contact, error) {
	args := m.Called(ctx, id, isRead)
	if c, ok := args.Get(0).(*model.Contact); ok {
		return c, args.Error(1)
	}
	return nil, args.Error(1)
}

type MockPostService struct {
	mock.Mock
}

func (m *MockPostService) CreatePost(ctx context.Context, authorUUID string, input model.CreatePostInput) (*model.Post, error) {
	args := m.Called(ctx, authorUUID, input)
	if p, ok := args.Get(0).(*model.Post); ok {
		return p, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockPostService) ListPosts(ctx context.Context, filter model.PostFilter) (*model.PostPage, error) {
	args := m.Called(ctx, filter)
	if p, ok := args.Get(0).(*model.PostPage); ok {
		return p, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockPostService) GetPost(ctx context.Context, slug string) (*model.Post, error) {
	args := m.Called(ctx, slug)
	if p, ok := args.Get(0).(*model.Post); ok {
		return p, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockPostService) UpdatePost(ctx context.Context, identity security.Identity, id string, input model.UpdatePostInput) (*model.Post, error) {
	args := m.Called(ctx, identity, id, input)
	if p, ok := args.Get(0).(*model.Post); ok {
		return p, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockPostService) UpdateApproved(ctx context.Context, id string, approved bool) (*model.Post, error) {
	args := m.Called(ctx, id, approved)
	if p, ok := args.Get(0).(*model.Post); ok {
		return p, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockPostService) DeletePost(ctx context.Context, identity security.Identity, id string) error {
	return m.Called(ctx, identity, id).Error(0)
}

type MockMediaService struct {
	mock.Mock
}

func (m *MockMediaService) UploadImages(ctx context.Context, files []model.UploadFile) ([]model.Media, error) {
	args := m.Called(ctx, files)
	if media, ok := args.Get(0).([]model.Media); ok {
		return media, args.Error(1)
	}
	return nil, args.Error(1)
}

// ===== HELPERS =====

func jsonRequest(t *testing.T, method, target string, body any) *http.Request {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, json.NewEncoder(&buf).Encode(body))
	req := httptest.NewRequest(method, target, &buf)
	req.Header.Set("Content-Type", "application/json")
	return req
}

func withIdentity(req *http.Request, userUUID string, role model.Role) *http.Request {
	return req.WithContext(security.WithIdentity(req.Context(), security.Identity{UserUUID: userUUID, Role: role}))
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) requestresponse.ErrorDetail {
	t.Helper()
	var resp requestresponse.ErrorResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	return resp.Error
}

package service_test

import (
	"context"
	"io"
	"sync"

	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/bqviet86/cmict-server/internal/apperror"
	"github.com/bqviet86/cmict-server/internal/model"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/mock"
)

// ===== MOCKS =====

// MockUserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) CreateUser(ctx context.Context, exec sqlx.ExtContext, user *model.User) (*model.User, error) {
	args := m.Called(ctx, exec, user)
	if u, ok := args.Get(0).(*model.User); ok {
		return u, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockUserRepository) FindByUUID(ctx context.Context, exec sqlx.ExtContext, uuid string) (*model.User, error) {
	args := m.Called(ctx, exec, uuid)
	if u, ok := args.Get(0).(*model.User); ok {
		return u, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockUserRepository) FindByUsername(ctx context.Context, exec sqlx.ExtContext, username string) (*model.User, error) {
	args := m.Called(ctx, exec, username)
	if u, ok := args.Get(0).(*model.User); ok {
		return u, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockUserRepository) UpdateProfile(ctx context.Context, exec sqlx.ExtContext, uuid string, input model.UpdateProfileInput) (*model.User, error) {
	args := m.Called(ctx, exec, uuid, input)
	if u, ok := args.Get(0).(*model.User); ok {
		return u, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockUserRepository) UpdateAvatar(ctx context.Context, exec sqlx.ExtContext, uuid, avatar string) (*model.User, error) {
	args := m.Called(ctx, exec, uuid, avatar)
	if u, ok := args.Get(0).(*model.User); ok {
		return u, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockUserRepository) UpdateIsActive(ctx context.Context, exec sqlx.ExtContext, username string, isActive bool) (*model.User, error) {
	args := m.Called(ctx, exec, username, isActive)
	if u, ok := args.Get(0).(*model.User); ok {
		return u, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockUserRepository) ListUsers(ctx context.Context, exec sqlx.ExtContext, filter model.UserFilter) ([]*model.User, int, error) {
	args := m.Called(ctx, exec, filter)
	if users, ok := args.Get(0).([]*model.User); ok {
		return users, args.Int(1), args.Error(2)
	}
	return nil, 0, args.Error(2)
}

// MockSessionRepository
type MockSessionRepository struct {
	mock.Mock
}

func (m *MockSessionRepository) Save(ctx context.Context, exec sqlx.ExtContext, token *model.RefreshToken) error {
	args := m.Called(ctx, exec, token)
	return args.Error(0)
}

func (m *MockSessionRepository) FindByToken(ctx context.Context, exec sqlx.ExtContext, token string) (*model.RefreshToken, error) {
	args := m.Called(ctx, exec, token)
	if t, ok := args.Get(0).(*model.RefreshToken); ok {
		return t, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockSessionRepository) DeleteByToken(ctx context.Context, exec sqlx.ExtContext, token string) error {
	args := m.Called(ctx, exec, token)
	return args.Error(0)
}

func (m *MockSessionRepository) Rotate(ctx context.Context, exec sqlx.ExtContext, oldToken string, next *model.RefreshToken) (bool, error) {
	args := m.Called(ctx, exec, oldToken, next)
	return args.Bool(0), args.Error(1)
}

// MockCacheRepository
type MockCacheRepository struct {
	mock.Mock
}

func (m *MockCacheRepository) SetUser(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockCacheRepository) GetUser(ctx context.Context, uuid string) (*model.User, error) {
	args := m.Called(ctx, uuid)
	if u, ok := args.Get(0).(*model.User); ok {
		return u, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockCacheRepository) DeleteUser(ctx context.Context, uuid string) error {
	args := m.Called(ctx, uuid)
	return args.Error(0)
}

// MockMediaService
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

// MockContactRepository
type MockContactRepository struct {
	mock.Mock
}

func (m *MockContactRepository) Create(ctx context.Context, exec sqlx.ExtContext, contact *model.Contact) (*model.Contact, error) {
	args := m.Called(ctx, exec, contact)
	if c, ok := args.Get(0).(*model.Contact); ok {
		return c, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockContactRepository) List(ctx context.Context, exec sqlx.ExtContext, filter model.ContactFilter) ([]*model.Contact, int, error) {
	args := m.Called(ctx, exec, filter)
	if contacts, ok := args.Get(0).([]*model.Contact); ok {
		return contacts, args.Int(1), args.Error(2)
	}
	return nil, 0, args.Error(2)
}

func (m *MockContactRepository) UpdateIsRead(ctx context.Context, exec sqlx.ExtContext, id string, isRead bool) (*model.Contact, error) {
	args := m.Called(ctx, exec, id, isRead)
	if c, ok := args.Get(0).(*model.Contact); ok {
		return c, args.Error(1)
	}
	return nil, args.Error(1)
}

// MockS3Storage
type MockS3Storage struct {
	mock.Mock
}

func (m *MockS3Storage) PutObject(ctx context.Context, key, contentType string, size int64, body io.Reader) (string, error) {
	args := m.Called(ctx, key, contentType, size, body)
	return args.String(0), args.Error(1)
}

// MockS3API
type MockS3API struct {
	mock.Mock
}

func (m *MockS3API) PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	args := m.Called(ctx, params)
	if out, ok := args.Get(0).(*s3.PutObjectOutput); ok {
		return out, args.Error(1)
	}
	return nil, args.Error(1)
}

// ===== FAKES =====

type MockPostRepository struct {
	mock.Mock
}

func (m *MockPostRepository) Create(ctx context.Context, exec sqlx.ExtContext, post *model.Post) (*model.Post, error) {
	args := m.Called(ctx, exec, post)
	if p, ok := args.Get(0).(*model.Post); ok {
		return p, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockPostRepository) FindByID(ctx context.Context, exec sqlx.ExtContext, id string) (*model.Post, error) {
	args := m.Called(ctx, exec, id)
	if p, ok := args.Get(0).(*model.Post); ok {
		return p, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockPostRepository) FindBySlug(ctx context.Context, exec sqlx.ExtContext, slug string) (*model.Post, error) {
	args := m.Called(ctx, exec, slug)
	if p, ok := args.Get(0).(*model.Post); ok {
		return p, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockPostRepository) List(ctx context.Context, exec sqlx.ExtContext, filter model.PostFilter) ([]*model.Post, int, error) {
	args := m.Called(ctx, exec, filter)
	if p, ok := args.Get(0).([]*model.Post); ok {
		return p, args.Int(1), args.Error(2)
	}
	return nil, args.Int(1), args.Error(2)
}

func (m *MockPostRepository) Update(ctx context.Context, exec sqlx.ExtContext, id string, input model.UpdatePostInput) (*model.Post, error) {
	args := m.Called(ctx, exec, id, input)
	if p, ok := args.Get(0).(*model.Post); ok {
		return p, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockPostRepository) UpdateApproved(ctx context.Context, exec sqlx.ExtContext, id string, approved bool) (*model.Post, error) {
	args := m.Called(ctx, exec, id, approved)
	if p, ok := args.Get(0).(*model.Post); ok {
		return p, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockPostRepository) Delete(ctx context.Context, exec sqlx.ExtContext, id string) error {
	return m.Called(ctx, exec, id).Error(0)
}

// fakeTransactor выполняет fn без настоящей транзакции
type fakeTransactor struct{}

func (fakeTransactor) Executor() sqlx.ExtContext {
	return nil
}

func (fakeTransactor) WithTx(ctx context.Context, fn func(exec sqlx.ExtContext) error) error {
	return fn(nil)
}

// memorySessionRepository : потокобезопасное хранилище сессий, Rotate атомарен как DELETE + INSERT в транзакции
type memorySessionRepository struct {
	mu       sync.Mutex
	sessions map[string]*model.RefreshToken
}

func newMemorySessionRepository() *memorySessionRepository {
	return &memorySessionRepository{sessions: map[string]*model.RefreshToken{}}
}

func (r *memorySessionRepository) Save(ctx context.Context, exec sqlx.ExtContext, token *model.RefreshToken) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sessions[token.Token] = token
	return nil
}

func (r *memorySessionRepository) FindByToken(ctx context.Context, exec sqlx.ExtContext, token string) (*model.RefreshToken, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	session, ok := r.sessions[token]
	if !ok {
		return nil, apperror.NotFound("refresh token not found")
	}
	return session, nil
}

func (r *memorySessionRepository) DeleteByToken(ctx context.Context, exec sqlx.ExtContext, token string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.sessions, token)
	return nil
}

func (r *memorySessionRepository) Rotate(ctx context.Context, exec sqlx.ExtContext, oldToken string, next *model.RefreshToken) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.sessions[oldToken]; !ok {
		return false, nil
	}
	delete(r.sessions, oldToken)
	r.sessions[next.Token] = next
	return true, nil
}

func (r *memorySessionRepository) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.sessions)
}

// memoryUserRepository : уникальность username проверяется только при вставке, как unique индекс в БД
type memoryUserRepository struct {
	MockUserRepository
	mu         sync.Mutex
	byUsername map[string]*model.User
}

func newMemoryUserRepository() *memoryUserRepository {
	return &memoryUserRepository{byUsername: map[string]*model.User{}}
}

func (r *memoryUserRepository) FindByUsername(ctx context.Context, exec sqlx.ExtContext, username string) (*model.User, error) {
	return nil, apperror.NotFound("user not found")
}

func (r *memoryUserRepository) CreateUser(ctx context.Context, exec sqlx.ExtContext, user *model.User) (*model.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.byUsername[user.Username]; exists {
		return nil, apperror.ErrUsernameTaken
	}
	r.byUsername[user.Username] = user
	return user, nil
}

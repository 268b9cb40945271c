package service_test

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/bqviet86/cmict-server/internal/apperror"
	"github.com/bqviet86/cmict-server/internal/model"
	"github.com/bqviet86/cmict-server/internal/security"
	"github.com/bqviet86/cmict-server/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestPostService() (*service.PostService, *MockPostRepository, *MockUserRepository) {
	posts := new(MockPostRepository)
	users := new(MockUserRepository)
	return service.NewPostService(posts, users, fakeTransactor{}), posts, users
}

func testPost(owner string) *model.Post {
	return &model.Post{ID: "p1", UserUUID: owner, Title: "Tin tức", Slug: "tin-tuc-123456"}
}

func TestPostService_CreatePost(t *testing.T) {
	svc, posts, users := newTestPostService()
	input := model.CreatePostInput{
		Title:    "Tin tức mới",
		Image:    "https://cdn.example.com/images/a.png",
		Content:  "content",
		Category: model.CategoryNews,
	}

	users.On("FindByUUID", mock.Anything, mock.Anything, "u1").
		Return(&model.User{UUID: "u1", Name: "Nguyen Van A"}, nil)

	var saved *model.Post
	posts.On("Create", mock.Anything, mock.Anything, mock.AnythingOfType("*model.Post")).
		Run(func(args mock.Arguments) { saved = args.Get(2).(*model.Post) }).
		Return(&model.Post{ID: "p1"}, nil)

	got, err := svc.CreatePost(context.Background(), "u1", input)

	require.NoError(t, err)
	assert.Equal(t, "p1", got.ID)
	require.NotNil(t, saved)
	assert.NotEmpty(t, saved.ID)
	assert.Equal(t, "u1", saved.UserUUID)
	assert.Equal(t, "Nguyen Van A", saved.Author)
	assert.False(t, saved.Approved)
	assert.Equal(t, model.CategoryNews, saved.Category)
	assert.Regexp(t, regexp.MustCompile(`^tin-tuc-moi-[0-9]{6}$`), saved.Slug)
}

func TestPostService_CreatePost_AuthorMissing(t *testing.T) {
	svc, posts, users := newTestPostService()

	users.On("FindByUUID", mock.Anything, mock.Anything, "u1").Return(nil, apperror.NotFound("user not found"))

	_, err := svc.CreatePost(context.Background(), "u1", model.CreatePostInput{Title: "x"})

	assert.ErrorIs(t, err, apperror.ErrNotFound)
	posts.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything)
}

func TestPostService_ListPosts(t *testing.T) {
	svc, posts, _ := newTestPostService()
	approved := true
	filter := model.PostFilter{Approved: &approved, Pagination: model.Pagination{Page: 2, Limit: 10}}

	posts.On("List", mock.Anything, mock.Anything, filter).Return([]*model.Post{testPost("u1")}, 21, nil)

	page, err := svc.ListPosts(context.Background(), filter)

	require.NoError(t, err)
	assert.Len(t, page.Posts, 1)
	assert.Equal(t, 2, page.Page)
	assert.Equal(t, 3, page.TotalPages)
}

func TestPostService_GetPost(t *testing.T) {
	svc, posts, _ := newTestPostService()

	posts.On("FindBySlug", mock.Anything, mock.Anything, "tin-tuc-123456").Return(testPost("u1"), nil)
	posts.On("FindBySlug", mock.Anything, mock.Anything, "missing").Return(nil, apperror.NotFound("post not found"))

	got, err := svc.GetPost(context.Background(), "tin-tuc-123456")
	require.NoError(t, err)
	assert.Equal(t, "p1", got.ID)

	_, err = svc.GetPost(context.Background(), "missing")
	assert.ErrorIs(t, err, apperror.ErrNotFound)
}

func TestPostService_UpdatePost_Ownership(t *testing.T) {
	title := "Updated"
	input := model.UpdatePostInput{Title: &title}

	tests := []struct {
		name     string
		identity security.Identity
		wantErr  error
	}{
		{"owner", security.Identity{UserUUID: "owner", Role: model.RoleUser}, nil},
		{"admin", security.Identity{UserUUID: "admin", Role: model.RoleAdmin}, nil},
		{"stranger", security.Identity{UserUUID: "other", Role: model.RoleUser}, apperror.ErrPermissionDenied},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, posts, _ := newTestPostService()
			posts.On("FindByID", mock.Anything, mock.Anything, "p1").Return(testPost("owner"), nil)
			posts.On("Update", mock.Anything, mock.Anything, "p1", input).Return(&model.Post{ID: "p1", Title: title}, nil)

			got, err := svc.UpdatePost(context.Background(), tt.identity, "p1", input)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				posts.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, title, got.Title)
		})
	}
}

func TestPostService_UpdatePost_NotFound(t *testing.T) {
	svc, posts, _ := newTestPostService()
	posts.On("FindByID", mock.Anything, mock.Anything, "p1").Return(nil, apperror.NotFound("post not found"))

	_, err := svc.UpdatePost(context.Background(), security.Identity{UserUUID: "u1", Role: model.RoleAdmin}, "p1", model.UpdatePostInput{})

	assert.ErrorIs(t, err, apperror.ErrNotFound)
}

func TestPostService_UpdateApproved(t *testing.T) {
	svc, posts, _ := newTestPostService()
	posts.On("UpdateApproved", mock.Anything, mock.Anything, "p1", true).Return(&model.Post{ID: "p1", Approved: true}, nil)

	got, err := svc.UpdateApproved(context.Background(), "p1", true)

	require.NoError(t, err)
	assert.True(t, got.Approved)
}

func TestPostService_DeletePost(t *testing.T) {
	tests := []struct {
		name      string
		identity  security.Identity
		deleteErr error
		wantErr   error
	}{
		{"owner", security.Identity{UserUUID: "owner", Role: model.RoleUser}, nil, nil},
		{"admin", security.Identity{UserUUID: "admin", Role: model.RoleAdmin}, nil, nil},
		{"stranger", security.Identity{UserUUID: "other", Role: model.RoleUser}, nil, apperror.ErrPermissionDenied},
		{"storage failure", security.Identity{UserUUID: "owner", Role: model.RoleUser}, errors.New("db down"), nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, posts, _ := newTestPostService()
			posts.On("FindByID", mock.Anything, mock.Anything, "p1").Return(testPost("owner"), nil)
			posts.On("Delete", mock.Anything, mock.Anything, "p1").Return(tt.deleteErr)

			err := svc.DeletePost(context.Background(), tt.identity, "p1")

			switch {
			case tt.wantErr != nil:
				assert.ErrorIs(t, err, tt.wantErr)
				posts.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything, mock.Anything)
			case tt.deleteErr != nil:
				assert.Equal(t, 500, apperror.StatusCode(err))
			default:
				assert.NoError(t, err)
				posts.AssertCalled(t, "Delete", mock.Anything, mock.Anything, "p1")
			}
		})
	}
}

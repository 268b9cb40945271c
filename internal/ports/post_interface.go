package ports

import (
	"context"

	"github.com/bqviet86/cmict-server/internal/model"
	"github.com/bqviet86/cmict-server/internal/security"
	"github.com/jmoiron/sqlx"
)

type PostRepository interface {
	Create(ctx context.Context, exec sqlx.ExtContext, post *model.Post) (*model.Post, error)
	FindByID(ctx context.Context, exec sqlx.ExtContext, id string) (*model.Post, error)
	FindBySlug(ctx context.Context, exec sqlx.ExtContext, slug string) (*model.Post, error)
	List(ctx context.Context, exec sqlx.ExtContext, filter model.PostFilter) ([]*model.Post, int, error)
	Update(ctx context.Context, exec sqlx.ExtContext, id string, input model.UpdatePostInput) (*model.Post, error)
	UpdateApproved(ctx context.Context, exec sqlx.ExtContext, id string, approved bool) (*model.Post, error)
	Delete(ctx context.Context, exec sqlx.ExtContext, id string) error
}

type PostService interface {
	CreatePost(ctx context.Context, authorUUID string, input model.CreatePostInput) (*model.Post, error)
	ListPosts(ctx context.Context, filter model.PostFilter) (*model.PostPage, error)
	GetPost(ctx context.Context, slug string) (*model.Post, error)
	UpdatePost(ctx context.Context, identity security.Identity, id string, input model.UpdatePostInput) (*model.Post, error)
	UpdateApproved(ctx context.Context, id string, approved bool) (*model.Post, error)
	DeletePost(ctx context.Context, identity security.Identity, id string) error
}

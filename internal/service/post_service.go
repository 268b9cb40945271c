package service

import (
	"context"

	"github.com/bqviet86/cmict-server/internal/apperror"
	"github.com/bqviet86/cmict-server/internal/model"
	"github.com/bqviet86/cmict-server/internal/ports"
	"github.com/bqviet86/cmict-server/internal/security"
	"github.com/bqviet86/cmict-server/internal/util"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

const slugSuffixDigits = 6

type PostService struct {
	postRepository ports.PostRepository
	userRepository ports.UserRepository
	db             ports.Transactor
}

func NewPostService(postRepository ports.PostRepository, userRepository ports.UserRepository, db ports.Transactor) *PostService {
	return &PostService{
		postRepository: postRepository,
		userRepository: userRepository,
		db:             db,
	}
}

// CreatePost : новая статья не одобрена, автором записывается текущее имя пользователя
func (s *PostService) CreatePost(ctx context.Context, authorUUID string, input model.CreatePostInput) (*model.Post, error) {
	author, err := s.userRepository.FindByUUID(ctx, s.db.Executor(), authorUUID)
	if err != nil {
		return nil, err
	}

	return s.postRepository.Create(ctx, s.db.Executor(), &model.Post{
		ID:       uuid.NewString(),
		UserUUID: author.UUID,
		Title:    input.Title,
		Image:    input.Image,
		Content:  input.Content,
		Author:   author.Name,
		Category: input.Category,
		Slug:     util.RandomSlug(input.Title, slugSuffixDigits),
		Approved: false,
	})
}

func (s *PostService) ListPosts(ctx context.Context, filter model.PostFilter) (*model.PostPage, error) {
	posts, total, err := s.postRepository.List(ctx, s.db.Executor(), filter)
	if err != nil {
		return nil, err
	}

	return &model.PostPage{
		Posts:      posts,
		Page:       filter.Page,
		Limit:      filter.Limit,
		TotalPages: filter.TotalPages(total),
	}, nil
}

func (s *PostService) GetPost(ctx context.Context, slug string) (*model.Post, error) {
	return s.postRepository.FindBySlug(ctx, s.db.Executor(), slug)
}

// UpdatePost : менять статью может её автор или администратор
func (s *PostService) UpdatePost(ctx context.Context, identity security.Identity, id string, input model.UpdatePostInput) (updated *model.Post, err error) {
	err = s.db.WithTx(ctx, func(exec sqlx.ExtContext) error {
		if err := s.authorizeOwner(ctx, exec, identity, id); err != nil {
			return err
		}

		updated, err = s.postRepository.Update(ctx, exec, id, input)
		return err
	})
	if err != nil {
		return nil, err
	}

	return updated, nil
}

func (s *PostService) UpdateApproved(ctx context.Context, id string, approved bool) (*model.Post, error) {
	return s.postRepository.UpdateApproved(ctx, s.db.Executor(), id, approved)
}

// DeletePost : удалять статью может её автор или администратор
func (s *PostService) DeletePost(ctx context.Context, identity security.Identity, id string) error {
	return s.db.WithTx(ctx, func(exec sqlx.ExtContext) error {
		if err := s.authorizeOwner(ctx, exec, identity, id); err != nil {
			return err
		}

		return s.postRepository.Delete(ctx, exec, id)
	})
}

func (s *PostService) authorizeOwner(ctx context.Context, exec sqlx.ExtContext, identity security.Identity, id string) error {
	post, err := s.postRepository.FindByID(ctx, exec, id)
	if err != nil {
		return err
	}

	if !identity.IsAdmin() && post.UserUUID != identity.UserUUID {
		return apperror.ErrPermissionDenied
	}
	return nil
}

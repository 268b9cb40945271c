package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/bqviet86/cmict-server/internal/apperror"
	"github.com/bqviet86/cmict-server/internal/model"
	"github.com/bqviet86/cmict-server/internal/util"
	"github.com/jmoiron/sqlx"
)

// статья всегда отдаётся вместе с автором, без password_hash
const postColumns = `p.id, p.user_uuid, p.title, p.image, p.content, p.author, p.category, p.slug, p.approved,
	p.created_at, p.updated_at,
	u.uuid AS "user.uuid", u.name AS "user.name", u.username AS "user.username", u.sex AS "user.sex",
	u.role AS "user.role", u.avatar AS "user.avatar", u.is_active AS "user.is_active",
	u.created_at AS "user.created_at", u.updated_at AS "user.updated_at"`

const postJoin = ` JOIN users u ON u.uuid = p.user_uuid`

type PostRepository struct{}

func NewPostRepository() *PostRepository {
	return &PostRepository{}
}

func (r *PostRepository) Create(ctx context.Context, exec sqlx.ExtContext, post *model.Post) (*model.Post, error) {
	query := `
	WITH p AS (
		INSERT INTO posts (id, user_uuid, title, image, content, author, category, slug, approved)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING *
	)
	SELECT ` + postColumns + ` FROM p` + postJoin

	var created model.Post
	err := sqlx.GetContext(ctx, exec, &created, query,
		post.ID, post.UserUUID, post.Title, post.Image, post.Content,
		post.Author, post.Category, post.Slug, post.Approved,
	)
	if err != nil {
		return nil, util.LogError("[PostRepo] ошибка вставки данных в БД", err)
	}

	return &created, nil
}

func (r *PostRepository) FindByID(ctx context.Context, exec sqlx.ExtContext, id string) (*model.Post, error) {
	query := `SELECT ` + postColumns + ` FROM posts p` + postJoin + ` WHERE p.id = $1`
	return r.getOne(ctx, exec, query, id)
}

func (r *PostRepository) FindBySlug(ctx context.Context, exec sqlx.ExtContext, slug string) (*model.Post, error) {
	query := `SELECT ` + postColumns + ` FROM posts p` + postJoin + ` WHERE p.slug = $1`
	return r.getOne(ctx, exec, query, slug)
}

// List : свежие статьи первыми
func (r *PostRepository) List(ctx context.Context, exec sqlx.ExtContext, filter model.PostFilter) ([]*model.Post, int, error) {
	where := `
	WHERE ($1 = '' OR p.title ILIKE '%' || $1 || '%')
		AND ($2 = '' OR p.content ILIKE '%' || $2 || '%')
		AND ($3 = '' OR p.author ILIKE '%' || $3 || '%')
		AND ($4 = '' OR p.category = $4)
		AND ($5::boolean IS NULL OR p.approved = $5)
		AND ($6 = '' OR p.user_uuid::text = $6)`
	args := []any{filter.Title, filter.Content, filter.Author, string(filter.Category), filter.Approved, filter.AuthorUUID}

	var total int
	if err := sqlx.GetContext(ctx, exec, &total, `SELECT COUNT(*) FROM posts p`+where, args...); err != nil {
		return nil, 0, util.LogError("[PostRepo] не удалось посчитать статьи", err)
	}

	query := `SELECT ` + postColumns + ` FROM posts p` + postJoin + where + `
	ORDER BY p.created_at DESC, p.id
	LIMIT $7 OFFSET $8`

	posts := []*model.Post{}
	if err := sqlx.SelectContext(ctx, exec, &posts, query, append(args, filter.Limit, filter.Offset())...); err != nil {
		return nil, 0, util.LogError("[PostRepo] не удалось получить список статей", err)
	}

	return posts, total, nil
}

// Update : меняет только переданные поля, slug остаётся прежним
func (r *PostRepository) Update(ctx context.Context, exec sqlx.ExtContext, id string, input model.UpdatePostInput) (*model.Post, error) {
	query := `
	WITH p AS (
		UPDATE posts
		SET title = COALESCE($2, title),
			image = COALESCE($3, image),
			content = COALESCE($4, content),
			category = COALESCE($5, category),
			updated_at = NOW()
		WHERE id = $1
		RETURNING *
	)
	SELECT ` + postColumns + ` FROM p` + postJoin

	var category *string
	if input.Category != nil {
		value := string(*input.Category)
		category = &value
	}

	return r.getOne(ctx, exec, query, id, input.Title, input.Image, input.Content, category)
}

func (r *PostRepository) UpdateApproved(ctx context.Context, exec sqlx.ExtContext, id string, approved bool) (*model.Post, error) {
	query := `
	WITH p AS (
		UPDATE posts SET approved = $2, updated_at = NOW() WHERE id = $1 RETURNING *
	)
	SELECT ` + postColumns + ` FROM p` + postJoin

	return r.getOne(ctx, exec, query, id, approved)
}

func (r *PostRepository) Delete(ctx context.Context, exec sqlx.ExtContext, id string) error {
	result, err := exec.ExecContext(ctx, `DELETE FROM posts WHERE id = $1`, id)
	if err != nil {
		return util.LogError("[PostRepo] не удалось удалить статью", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return util.LogError("[PostRepo] не удалось удалить статью", err)
	}
	if affected == 0 {
		return apperror.NotFound("post not found")
	}

	return nil
}

func (r *PostRepository) getOne(ctx context.Context, exec sqlx.ExtContext, query string, args ...any) (*model.Post, error) {
	var post model.Post
	if err := sqlx.GetContext(ctx, exec, &post, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperror.NotFound("post not found")
		}
		return nil, util.LogError("[PostRepo] ошибка получения статьи", err)
	}
	return &post, nil
}

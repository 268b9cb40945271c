package handler

import (
	"net/http"
	"strings"

	"github.com/bqviet86/cmict-server/internal/apperror"
	"github.com/bqviet86/cmict-server/internal/model"
	"github.com/bqviet86/cmict-server/internal/model/requestresponse"
	"github.com/bqviet86/cmict-server/internal/ports"
	"github.com/bqviet86/cmict-server/internal/security"
	"github.com/bqviet86/cmict-server/internal/util"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

type PostHandler struct {
	postService ports.PostService
}

func NewPostHandler(postService ports.PostService) *PostHandler {
	return &PostHandler{postService: postService}
}

// PostListAccess решает, кому доступен список статей. Ставится после OptionalJWTMiddleware.
// С verify_access_token=false запрос проходит без проверки.
// Администратор и запрос своих статей (my_posts=true) проходят всегда, остальным нужен approved=true
func PostListAccess(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query()
		if query.Get(security.OptOutQueryParam) == "false" {
			next.ServeHTTP(w, r)
			return
		}

		identity, ok := currentIdentity(w, r)
		if !ok {
			return
		}

		if identity.IsAdmin() || query.Get("my_posts") == "true" || query.Get("approved") == "true" {
			next.ServeHTTP(w, r)
			return
		}

		util.WriteError(w, apperror.ErrPermissionDenied)
	})
}

// CreatePost godoc
// @Summary Создание статьи
// @Description Статья создаётся неодобренной, автор берётся из профиля текущего пользователя
// @Tags Posts
// @Accept json
// @Produce json
// @Param body body requestresponse.CreatePostRequest true "Тело запроса"
// @Success 200 {object} requestresponse.PostResponse
// @Failure 400 {object} requestresponse.ErrorResponse
// @Failure 401 {object} requestresponse.ErrorResponse
// @Failure 500 {object} requestresponse.ErrorResponse
// @Security BearerAuth
// @Router /posts [post]
func (h *PostHandler) CreatePost(w http.ResponseWriter, r *http.Request) {
	identity, ok := currentIdentity(w, r)
	if !ok {
		return
	}

	var req requestresponse.CreatePostRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	post, err := h.postService.CreatePost(r.Context(), identity.UserUUID, model.CreatePostInput{
		Title:    strings.TrimSpace(req.Title),
		Image:    strings.TrimSpace(req.Image),
		Content:  req.Content,
		Category: model.PostCategory(req.Category),
	})
	if err != nil {
		util.WriteError(w, err)
		return
	}

	util.WriteJSON(w, http.StatusOK, requestresponse.PostResponse{Message: msgCreatePostSuccess, Result: post})
}

// ListPosts godoc
// @Summary Список статей
// @Description Без прав администратора нужен approved=true или my_posts=true. С verify_access_token=false токен не нужен
// @Tags Posts
// @Produce json
// @Param verify_access_token query bool false "false, чтобы запросить без авторизации"
// @Param title query string false "Поиск по заголовку"
// @Param content query string false "Поиск по содержимому"
// @Param author query string false "Поиск по автору"
// @Param category query string false "Категория" Enums(introduction, news, product, service, tutorial)
// @Param approved query bool false "Фильтр по одобрению"
// @Param my_posts query bool false "Только свои статьи"
// @Param page query int false "Номер страницы" default(1) minimum(1)
// @Param limit query int false "Размер страницы" default(10) minimum(1) maximum(100)
// @Success 200 {object} requestresponse.ListPostsResponse
// @Failure 400 {object} requestresponse.ErrorResponse
// @Failure 401 {object} requestresponse.ErrorResponse
// @Failure 403 {object} requestresponse.ErrorResponse
// @Failure 500 {object} requestresponse.ErrorResponse
// @Security BearerAuth
// @Router /posts/all [get]
func (h *PostHandler) ListPosts(w http.ResponseWriter, r *http.Request) {
	filter, err := postFilterFromQuery(r)
	if err != nil {
		util.WriteError(w, err)
		return
	}

	page, err := h.postService.ListPosts(r.Context(), filter)
	if err != nil {
		util.WriteError(w, err)
		return
	}

	util.WriteJSON(w, http.StatusOK, requestresponse.ListPostsResponse{Message: msgGetAllPostsSuccess, Result: page})
}

// GetPost godoc
// @Summary Статья по slug
// @Tags Posts
// @Produce json
// @Param slug path string true "Slug статьи"
// @Success 200 {object} requestresponse.PostResponse
// @Failure 404 {object} requestresponse.ErrorResponse
// @Failure 500 {object} requestresponse.ErrorResponse
// @Router /posts/{slug} [get]
func (h *PostHandler) GetPost(w http.ResponseWriter, r *http.Request) {
	post, err := h.postService.GetPost(r.Context(), chi.URLParam(r, "slug"))
	if err != nil {
		util.WriteError(w, err)
		return
	}

	util.WriteJSON(w, http.StatusOK, requestresponse.PostResponse{Message: msgGetPostSuccess, Result: post})
}

// UpdatePost godoc
// @Summary Изменение статьи
// @Description Доступно автору статьи и администратору. Slug не меняется
// @Tags Posts
// @Accept json
// @Produce json
// @Param post_id path string true "ID статьи"
// @Param body body requestresponse.UpdatePostRequest true "Тело запроса"
// @Success 200 {object} requestresponse.PostResponse
// @Failure 400 {object} requestresponse.ErrorResponse
// @Failure 401 {object} requestresponse.ErrorResponse
// @Failure 403 {object} requestresponse.ErrorResponse
// @Failure 404 {object} requestresponse.ErrorResponse
// @Failure 500 {object} requestresponse.ErrorResponse
// @Security BearerAuth
// @Router /posts/{post_id} [patch]
func (h *PostHandler) UpdatePost(w http.ResponseWriter, r *http.Request) {
	identity, ok := currentIdentity(w, r)
	if !ok {
		return
	}

	postID, err := postIDFromPath(r)
	if err != nil {
		util.WriteError(w, err)
		return
	}

	var req requestresponse.UpdatePostRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	input := model.UpdatePostInput{Title: req.Title, Image: req.Image, Content: req.Content}
	if req.Category != nil {
		category := model.PostCategory(*req.Category)
		input.Category = &category
	}

	post, err := h.postService.UpdatePost(r.Context(), identity, postID, input)
	if err != nil {
		util.WriteError(w, err)
		return
	}

	util.WriteJSON(w, http.StatusOK, requestresponse.PostResponse{Message: msgUpdatePostSuccess, Result: post})
}

// UpdateApproved godoc
// @Summary Одобрение статьи
// @Tags Posts
// @Accept json
// @Produce json
// @Param post_id path string true "ID статьи"
// @Param body body requestresponse.UpdateApprovedRequest true "Тело запроса"
// @Success 200 {object} requestresponse.PostResponse
// @Failure 400 {object} requestresponse.ErrorResponse
// @Failure 401 {object} requestresponse.ErrorResponse
// @Failure 403 {object} requestresponse.ErrorResponse
// @Failure 404 {object} requestresponse.ErrorResponse
// @Failure 500 {object} requestresponse.ErrorResponse
// @Security BearerAuth
// @Router /posts/update-approved-status/{post_id} [patch]
func (h *PostHandler) UpdateApproved(w http.ResponseWriter, r *http.Request) {
	postID, err := postIDFromPath(r)
	if err != nil {
		util.WriteError(w, err)
		return
	}

	var req requestresponse.UpdateApprovedRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	post, err := h.postService.UpdateApproved(r.Context(), postID, *req.Approved)
	if err != nil {
		util.WriteError(w, err)
		return
	}

	util.WriteJSON(w, http.StatusOK, requestresponse.PostResponse{Message: msgUpdateApprovedSuccess, Result: post})
}

// DeletePost godoc
// @Summary Удаление статьи
// @Description Доступно автору статьи и администратору
// @Tags Posts
// @Produce json
// @Param post_id path string true "ID статьи"
// @Success 200 {object} requestresponse.MessageResponse
// @Failure 400 {object} requestresponse.ErrorResponse
// @Failure 401 {object} requestresponse.ErrorResponse
// @Failure 403 {object} requestresponse.ErrorResponse
// @Failure 404 {object} requestresponse.ErrorResponse
// @Failure 500 {object} requestresponse.ErrorResponse
// @Security BearerAuth
// @Router /posts/{post_id} [delete]
func (h *PostHandler) DeletePost(w http.ResponseWriter, r *http.Request) {
	identity, ok := currentIdentity(w, r)
	if !ok {
		return
	}

	postID, err := postIDFromPath(r)
	if err != nil {
		util.WriteError(w, err)
		return
	}

	if err := h.postService.DeletePost(r.Context(), identity, postID); err != nil {
		util.WriteError(w, err)
		return
	}

	util.WriteJSON(w, http.StatusOK, requestresponse.MessageResponse{Message: msgDeletePostSuccess})
}

func postIDFromPath(r *http.Request) (string, error) {
	id, err := uuid.Parse(chi.URLParam(r, "post_id"))
	if err != nil {
		return "", apperror.ValidationField("post_id", "invalid post id")
	}
	return id.String(), nil
}

// postFilterFromQuery : my_posts=true без Identity в контексте не имеет смысла и даёт 401
func postFilterFromQuery(r *http.Request) (model.PostFilter, error) {
	pagination, err := paginationFromQuery(r)
	if err != nil {
		return model.PostFilter{}, err
	}

	query := r.URL.Query()
	filter := model.PostFilter{
		Title:      strings.TrimSpace(query.Get("title")),
		Content:    strings.TrimSpace(query.Get("content")),
		Author:     strings.TrimSpace(query.Get("author")),
		Pagination: pagination,
	}

	switch category := model.PostCategory(query.Get("category")); category {
	case "", model.CategoryIntroduction, model.CategoryNews, model.CategoryProduct, model.CategoryService, model.CategoryTutorial:
		filter.Category = category
	default:
		return filter, apperror.ValidationField("category", "must be one of: introduction news product service tutorial")
	}

	if filter.Approved, err = boolFromQuery(r, "approved"); err != nil {
		return filter, err
	}

	myPosts, err := boolFromQuery(r, "my_posts")
	if err != nil {
		return filter, err
	}
	if myPosts != nil && *myPosts {
		identity, ok := security.IdentityFromContext(r.Context())
		if !ok {
			return filter, apperror.ErrUnauthenticated
		}
		filter.AuthorUUID = identity.UserUUID
	}

	return filter, nil
}

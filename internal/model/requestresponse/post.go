package requestresponse

import "github.com/bqviet86/cmict-server/internal/model"

// CreatePostRequest : тело запроса на создание статьи
type CreatePostRequest struct {
	Title    string `json:"title" validate:"required,min=1,max=200" example:"Giới thiệu CMICT"`
	Image    string `json:"image" validate:"required,url" example:"https://cdn.example.com/images/cover.png"`
	Content  string `json:"content" validate:"required" example:"<p>Nội dung</p>"`
	Category string `json:"category" validate:"required,oneof=introduction news product service tutorial" example:"news"`
}

// UpdatePostRequest : передаются только изменяемые поля
type UpdatePostRequest struct {
	Title    *string `json:"title,omitempty" validate:"omitempty,min=1,max=200" example:"Giới thiệu CMICT"`
	Image    *string `json:"image,omitempty" validate:"omitempty,url" example:"https://cdn.example.com/images/cover.png"`
	Content  *string `json:"content,omitempty" validate:"omitempty,min=1" example:"<p>Nội dung</p>"`
	Category *string `json:"category,omitempty" validate:"omitempty,oneof=introduction news product service tutorial" example:"product"`
}

type UpdateApprovedRequest struct {
	Approved *bool `json:"approved" validate:"required" example:"true"`
}

type PostResponse struct {
	Message string      `json:"message" example:"Get post success"`
	Result  *model.Post `json:"result"`
}

type ListPostsResponse struct {
	Message string          `json:"message" example:"Get all posts success"`
	Result  *model.PostPage `json:"result"`
}

package model

import "time"

type PostCategory string

const (
	CategoryIntroduction PostCategory = "introduction"
	CategoryNews         PostCategory = "news"
	CategoryProduct      PostCategory = "product"
	CategoryService      PostCategory = "service"
	CategoryTutorial     PostCategory = "tutorial"
)

// Post : статья сайта. Author фиксируется при создании из имени пользователя
// swagger:model
type Post struct {
	ID        string       `db:"id" json:"id"`
	UserUUID  string       `db:"user_uuid" json:"-"`
	Title     string       `db:"title" json:"title"`
	Image     string       `db:"image" json:"image"`
	Content   string       `db:"content" json:"content"`
	Author    string       `db:"author" json:"author"`
	Category  PostCategory `db:"category" json:"category"`
	Slug      string       `db:"slug" json:"slug"`
	Approved  bool         `db:"approved" json:"approved"`
	CreatedAt time.Time    `db:"created_at" json:"created_at"`
	UpdatedAt time.Time    `db:"updated_at" json:"updated_at"`
	User      User         `db:"user" json:"user"`
}

type CreatePostInput struct {
	Title    string
	Image    string
	Content  string
	Category PostCategory
}

// UpdatePostInput : nil означает "не менять"
type UpdatePostInput struct {
	Title    *string
	Image    *string
	Content  *string
	Category *PostCategory
}

// PostFilter : текстовые поля ищутся без учёта регистра по подстроке.
// Непустой AuthorUUID ограничивает выборку статьями этого пользователя
type PostFilter struct {
	Title      string
	Content    string
	Author     string
	Category   PostCategory
	Approved   *bool
	AuthorUUID string
	Pagination
}

type PostPage struct {
	Posts      []*Post `json:"posts"`
	Page       int     `json:"page"`
	Limit      int     `json:"limit"`
	TotalPages int     `json:"total_pages"`
}

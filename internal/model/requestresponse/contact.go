package requestresponse

import "github.com/bqviet86/cmict-server/internal/model"

// CreateContactRequest : обращение с формы обратной связи
type CreateContactRequest struct {
	Name    string `json:"name" validate:"required,min=1,max=100" example:"Nguyen Van A"`
	Phone   string `json:"phone" validate:"required,numeric,min=8,max=15" example:"0912345678"`
	Email   string `json:"email" validate:"required,email" example:"a@example.com"`
	Content string `json:"content" validate:"required,min=1,max=1000" example:"I would like to know more"`
}

// UpdateIsReadRequest : отметка о прочтении обращения
type UpdateIsReadRequest struct {
	IsRead *bool `json:"is_read" validate:"required" example:"true"`
}

type ContactResponse struct {
	Message string         `json:"message" example:"Create contact success"`
	Result  *model.Contact `json:"result"`
}

type ListContactsResponse struct {
	Message string             `json:"message" example:"Get all contacts success"`
	Result  *model.ContactPage `json:"result"`
}

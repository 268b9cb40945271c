package ports

import (
	"context"

	"github.com/bqviet86/cmict-server/internal/model"
	"github.com/jmoiron/sqlx"
)

type ContactRepository interface {
	Create(ctx context.Context, exec sqlx.ExtContext, contact *model.Contact) (*model.Contact, error)
	List(ctx context.Context, exec sqlx.ExtContext, filter model.ContactFilter) ([]*model.Contact, int, error)
	UpdateIsRead(ctx context.Context, exec sqlx.ExtContext, id string, isRead bool) (*model.Contact, error)
}

type ContactService interface {
	CreateContact(ctx context.Context, contact *model.Contact) (*model.Contact, error)
	ListContacts(ctx context.Context, filter model.ContactFilter) (*model.ContactPage, error)
	UpdateIsRead(ctx context.Context, id string, isRead bool) (*model.Contact, error)
}

package service

import (
	"context"

	"github.com/bqviet86/cmict-server/internal/model"
	"github.com/bqviet86/cmict-server/internal/ports"
	"github.com/google/uuid"
)

type ContactService struct {
	contactRepository ports.ContactRepository
	db                ports.Transactor
}

func NewContactService(contactRepository ports.ContactRepository, db ports.Transactor) *ContactService {
	return &ContactService{contactRepository: contactRepository, db: db}
}

// CreateContact : новое обращение всегда непрочитанное
func (s *ContactService) CreateContact(ctx context.Context, contact *model.Contact) (*model.Contact, error) {
	contact.ID = uuid.NewString()
	contact.IsRead = false
	return s.contactRepository.Create(ctx, s.db.Executor(), contact)
}

func (s *ContactService) ListContacts(ctx context.Context, filter model.ContactFilter) (*model.ContactPage, error) {
	contacts, total, err := s.contactRepository.List(ctx, s.db.Executor(), filter)
	if err != nil {
		return nil, err
	}

	return &model.ContactPage{
		Contacts:   contacts,
		Page:       filter.Page,
		Limit:      filter.Limit,
		TotalPages: filter.TotalPages(total),
	}, nil
}

func (s *ContactService) UpdateIsRead(ctx context.Context, id string, isRead bool) (*model.Contact, error) {
	return s.contactRepository.UpdateIsRead(ctx, s.db.Executor(), id, isRead)
}

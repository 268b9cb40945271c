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

const contactColumns = `id, name, phone, email, content, is_read, user_uuid, created_at, updated_at`

type ContactRepository struct{}

func NewContactRepository() *ContactRepository {
	return &ContactRepository{}
}

func (r *ContactRepository) Create(ctx context.Context, exec sqlx.ExtContext, contact *model.Contact) (*model.Contact, error) {
	query := `
	INSERT INTO contacts (id, name, phone, email, content, is_read, user_uuid)
	VALUES ($1, $2, $3, $4, $5, $6, $7)
	RETURNING ` + contactColumns

	var created model.Contact
	err := sqlx.GetContext(ctx, exec, &created, query,
		contact.ID, contact.Name, contact.Phone, contact.Email, contact.Content, contact.IsRead, contact.UserUUID,
	)
	if err != nil {
		return nil, util.LogError("[ContactRepo] ошибка вставки данных в БД", err)
	}

	return &created, nil
}

func (r *ContactRepository) List(ctx context.Context, exec sqlx.ExtContext, filter model.ContactFilter) ([]*model.Contact, int, error) {
	where := ` WHERE ($1::boolean IS NULL OR is_read = $1)`

	var total int
	if err := sqlx.GetContext(ctx, exec, &total, `SELECT COUNT(*) FROM contacts`+where, filter.IsRead); err != nil {
		return nil, 0, util.LogError("[ContactRepo] не удалось посчитать обращения", err)
	}

	query := `SELECT ` + contactColumns + ` FROM contacts` + where + `
	ORDER BY created_at DESC, id
	LIMIT $2 OFFSET $3`

	contacts := []*model.Contact{}
	if err := sqlx.SelectContext(ctx, exec, &contacts, query, filter.IsRead, filter.Limit, filter.Offset()); err != nil {
		return nil, 0, util.LogError("[ContactRepo] не удалось получить список обращений", err)
	}

	return contacts, total, nil
}

func (r *ContactRepository) UpdateIsRead(ctx context.Context, exec sqlx.ExtContext, id string, isRead bool) (*model.Contact, error) {
	query := `UPDATE contacts SET is_read = $2, updated_at = NOW() WHERE id = $1 RETURNING ` + contactColumns

	var contact model.Contact
	if err := sqlx.GetContext(ctx, exec, &contact, query, id, isRead); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperror.NotFound("contact not found")
		}
		return nil, util.LogError("[ContactRepo] не удалось обновить обращение", err)
	}

	return &contact, nil
}

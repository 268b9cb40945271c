package handler

import (
	"net/http"

	"github.com/bqviet86/cmict-server/internal/model"
	"github.com/bqviet86/cmict-server/internal/model/requestresponse"
	"github.com/bqviet86/cmict-server/internal/ports"
	"github.com/bqviet86/cmict-server/internal/security"
	"github.com/bqviet86/cmict-server/internal/util"
	"github.com/go-chi/chi/v5"
)

type ContactHandler struct {
	contactService ports.ContactService
}

func NewContactHandler(contactService ports.ContactService) *ContactHandler {
	return &ContactHandler{contactService: contactService}
}

// CreateContact godoc
// @Summary Обращение через форму обратной связи
// @Description С ?verify_access_token=false токен не нужен, иначе обращение привязывается к пользователю
// @Tags Contacts
// @Accept json
// @Produce json
// @Param verify_access_token query bool false "false, чтобы отправить без авторизации"
// @Param body body requestresponse.CreateContactRequest true "Тело запроса"
// @Success 200 {object} requestresponse.ContactResponse
// @Failure 400 {object} requestresponse.ErrorResponse
// @Failure 401 {object} requestresponse.ErrorResponse
// @Failure 500 {object} requestresponse.ErrorResponse
// @Router /contacts [post]
func (h *ContactHandler) CreateContact(w http.ResponseWriter, r *http.Request) {
	var req requestresponse.CreateContactRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	contact := &model.Contact{
		Name:    req.Name,
		Phone:   req.Phone,
		Email:   req.Email,
		Content: req.Content,
	}
	if identity, ok := security.IdentityFromContext(r.Context()); ok {
		contact.UserUUID = &identity.UserUUID
	}

	created, err := h.contactService.CreateContact(r.Context(), contact)
	if err != nil {
		util.WriteError(w, err)
		return
	}

	util.WriteJSON(w, http.StatusOK, requestresponse.ContactResponse{Message: msgCreateContactSuccess, Result: created})
}

// ListContacts godoc
// @Summary Список обращений
// @Tags Contacts
// @Produce json
// @Param is_read query bool false "Фильтр по статусу прочтения"
// @Param page query int false "Номер страницы" default(1) minimum(1)
// @Param limit query int false "Размер страницы" default(10) minimum(1) maximum(100)
// @Success 200 {object} requestresponse.ListContactsResponse
// @Failure 400 {object} requestresponse.ErrorResponse
// @Failure 401 {object} requestresponse.ErrorResponse
// @Failure 403 {object} requestresponse.ErrorResponse
// @Failure 500 {object} requestresponse.ErrorResponse
// @Security BearerAuth
// @Router /contacts/all [get]
func (h *ContactHandler) ListContacts(w http.ResponseWriter, r *http.Request) {
	pagination, err := paginationFromQuery(r)
	if err != nil {
		util.WriteError(w, err)
		return
	}

	isRead, err := boolFromQuery(r, "is_read")
	if err != nil {
		util.WriteError(w, err)
		return
	}

	page, err := h.contactService.ListContacts(r.Context(), model.ContactFilter{IsRead: isRead, Pagination: pagination})
	if err != nil {
		util.WriteError(w, err)
		return
	}

	util.WriteJSON(w, http.StatusOK, requestresponse.ListContactsResponse{Message: msgGetAllContactsSuccess, Result: page})
}

// UpdateIsRead godoc
// @Summary Отметка о прочтении обращения
// @Tags Contacts
// @Accept json
// @Produce json
// @Param contact_id path string true "ID обращения"
// @Param body body requestresponse.UpdateIsReadRequest true "Тело запроса"
// @Success 200 {object} requestresponse.ContactResponse
// @Failure 400 {object} requestresponse.ErrorResponse
// @Failure 401 {object} requestresponse.ErrorResponse
// @Failure 403 {object} requestresponse.ErrorResponse
// @Failure 404 {object} requestresponse.ErrorResponse
// @Failure 500 {object} requestresponse.ErrorResponse
// @Security BearerAuth
// @Router /contacts/update-is-read-status/{contact_id} [patch]
func (h *ContactHandler) UpdateIsRead(w http.ResponseWriter, r *http.Request) {
	var req requestresponse.UpdateIsReadRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	contact, err := h.contactService.UpdateIsRead(r.Context(), chi.URLParam(r, "contact_id"), *req.IsRead)
	if err != nil {
		util.WriteError(w, err)
		return
	}

	util.WriteJSON(w, http.StatusOK, requestresponse.ContactResponse{Message: msgUpdateIsReadSuccess, Result: contact})
}

package contact

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/mkk-1817/crm-backend/internal/api/pagination"
	"github.com/mkk-1817/crm-backend/internal/api/respond"
	"github.com/mkk-1817/crm-backend/internal/db"
)

var sortable = []string{"created_at", "updated_at", "name", "position"}

type CreateContactRequest struct {
	FirstName string `json:"firstName" example:"Jane"`
	LastName  string `json:"lastName" example:"Smith"`
	Email     string `json:"email,omitempty" example:"jane.smith@example.com"`
	Phone     string `json:"phone,omitempty" example:"+1 (555) 987-6543"`
	Position  string `json:"position,omitempty" example:"Sales Manager"`
	Notes     string `json:"notes,omitempty" example:"Key decision maker for enterprise deals"`
	CompanyID *uint  `json:"companyId,omitempty" example:"1"`
}

type UpdateContactRequest struct {
	FirstName *string `json:"firstName,omitempty"`
	LastName  *string `json:"lastName,omitempty"`
	Email     *string `json:"email,omitempty"`
	Phone     *string `json:"phone,omitempty"`
	Position  *string `json:"position,omitempty"`
	Notes     *string `json:"notes,omitempty"`
	CompanyID *uint   `json:"companyId,omitempty"`
}

type ListResponse struct {
	Data  []db.Contact `json:"data"`
	Total int64        `json:"total" example:"42"`
	Page  int          `json:"page" example:"1"`
	Limit int          `json:"limit" example:"10"`
}

type DeleteResponse struct {
	Message string `json:"message" example:"Contact deleted successfully"`
}

type Handler struct {
	store Store
}

func NewHandler(store Store) *Handler {
	return &Handler{store: store}
}

// Create godoc
// @Summary		Create contact
// @Description	Create a new contact; the display name is built from firstName and lastName
// @Tags			contacts
// @Accept			json
// @Produce		json
// @Security		BearerAuth
// @Param			contact	body		CreateContactRequest	true	"Contact data"
// @Success		201		{object}	db.Contact				"Contact created"
// @Failure		400		{object}	respond.ErrorResponse	"Bad request"
// @Failure		401		{object}	respond.ErrorResponse	"Unauthorized"
// @Router			/contacts [post]
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateContactRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, http.StatusBadRequest, "invalid body", "Invalid JSON format")
		return
	}

	name := strings.TrimSpace(req.FirstName + " " + req.LastName)
	if name == "" {
		respond.Error(w, http.StatusBadRequest, "validation failed", "First name and last name are required")
		return
	}

	c := &db.Contact{
		Name:      name,
		Email:     req.Email,
		Phone:     req.Phone,
		Position:  req.Position,
		Notes:     req.Notes,
		CompanyID: req.CompanyID,
	}
	if err := h.store.Create(r.Context(), c); err != nil {
		respond.Err(w, err)
		return
	}

	respond.JSON(w, http.StatusCreated, c)
}

// List godoc
// @Summary		Get all contacts
// @Description	Get a paginated list of contacts
// @Tags			contacts
// @Produce		json
// @Security		BearerAuth
// @Param			page		query		int		false	"Page number"		default(1)
// @Param			limit		query		int		false	"Items per page"	default(10)
// @Param			sortBy		query		string	false	"Sort field"		default(created_at)
// @Param			sortOrder	query		string	false	"Sort order"		Enums(asc, desc)
// @Success		200			{object}	ListResponse			"Contacts retrieved"
// @Failure		401			{object}	respond.ErrorResponse	"Unauthorized"
// @Router			/contacts [get]
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	p := pagination.FromRequest(r, sortable...)

	contacts, total, err := h.store.List(r.Context(), p)
	if err != nil {
		respond.Err(w, err)
		return
	}

	respond.JSON(w, http.StatusOK, ListResponse{
		Data:  contacts,
		Total: total,
		Page:  p.Page,
		Limit: p.Limit,
	})
}

// Get godoc
// @Summary		Get contact by ID
// @Description	Get a specific contact
// @Tags			contacts
// @Produce		json
// @Security		BearerAuth
// @Param			id	path		int						true	"Contact ID"
// @Success		200	{object}	db.Contact				"Contact retrieved"
// @Failure		404	{object}	respond.ErrorResponse	"Contact not found"
// @Router			/contacts/{id} [get]
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r)
	if !ok {
		return
	}

	c, err := h.store.Get(r.Context(), id)
	if err != nil {
		respond.Err(w, err)
		return
	}
	respond.JSON(w, http.StatusOK, c)
}

// Update godoc
// @Summary		Update contact
// @Description	Update an existing contact; name parts are rebuilt when provided
// @Tags			contacts
// @Accept			json
// @Produce		json
// @Security		BearerAuth
// @Param			id		path		int						true	"Contact ID"
// @Param			contact	body		UpdateContactRequest	true	"Fields to update"
// @Success		200		{object}	db.Contact				"Contact updated"
// @Failure		404		{object}	respond.ErrorResponse	"Contact not found"
// @Router			/contacts/{id} [patch]
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r)
	if !ok {
		return
	}

	var req UpdateContactRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, http.StatusBadRequest, "invalid body", "Invalid JSON format")
		return
	}

	updates := map[string]any{}
	if req.FirstName != nil || req.LastName != nil {
		name := strings.TrimSpace(deref(req.FirstName) + " " + deref(req.LastName))
		if name != "" {
			updates["name"] = name
		}
	}
	if req.Email != nil {
		updates["email"] = *req.Email
	}
	if req.Phone != nil {
		updates["phone"] = *req.Phone
	}
	if req.Position != nil {
		updates["position"] = *req.Position
	}
	if req.Notes != nil {
		updates["notes"] = *req.Notes
	}
	if req.CompanyID != nil {
		updates["company_id"] = *req.CompanyID
	}

	c, err := h.store.Update(r.Context(), id, updates)
	if err != nil {
		respond.Err(w, err)
		return
	}
	respond.JSON(w, http.StatusOK, c)
}

// Delete godoc
// @Summary		Delete contact
// @Description	Delete a contact by ID
// @Tags			contacts
// @Produce		json
// @Security		BearerAuth
// @Param			id	path		int						true	"Contact ID"
// @Success		200	{object}	DeleteResponse			"Contact deleted"
// @Failure		404	{object}	respond.ErrorResponse	"Contact not found"
// @Router			/contacts/{id} [delete]
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r)
	if !ok {
		return
	}

	if err := h.store.Delete(r.Context(), id); err != nil {
		respond.Err(w, err)
		return
	}
	respond.JSON(w, http.StatusOK, DeleteResponse{Message: "Contact deleted successfully"})
}

func idParam(w http.ResponseWriter, r *http.Request) (uint, bool) {
	id, err := strconv.ParseUint(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		respond.Error(w, http.StatusBadRequest, "invalid id", "ID must be numeric")
		return 0, false
	}
	return uint(id), true
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

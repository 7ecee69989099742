package deal

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/mkk-1817/crm-backend/internal/api/pagination"
	"github.com/mkk-1817/crm-backend/internal/api/respond"
	"github.com/mkk-1817/crm-backend/internal/db"
)

var sortable = []string{"created_at", "updated_at", "title", "value", "stage"}

type CreateDealRequest struct {
	Title       string  `json:"title" example:"Enterprise Software License"`
	Description string  `json:"description,omitempty" example:"50-seat license for enterprise CRM software"`
	Value       float64 `json:"value,omitempty" example:"50000"`
	Stage       string  `json:"stage,omitempty" example:"negotiation"`
	CompanyID   *uint   `json:"companyId,omitempty" example:"1"`
	ContactIDs  []uint  `json:"contactIds,omitempty" example:"1,2"`
}

type UpdateDealRequest struct {
	Title       *string  `json:"title,omitempty"`
	Description *string  `json:"description,omitempty"`
	Value       *float64 `json:"value,omitempty"`
	Stage       *string  `json:"stage,omitempty"`
	CompanyID   *uint    `json:"companyId,omitempty"`
	ContactIDs  []uint   `json:"contactIds,omitempty"`
}

type ListResponse struct {
	Data  []db.Deal `json:"data"`
	Total int64     `json:"total" example:"42"`
	Page  int       `json:"page" example:"1"`
	Limit int       `json:"limit" example:"10"`
}

type DeleteResponse struct {
	Message string `json:"message" example:"Deal deleted successfully"`
}

type Handler struct {
	store Store
}

func NewHandler(store Store) *Handler {
	return &Handler{store: store}
}

// Create godoc
// @Summary		Create deal
// @Description	Create a new deal, optionally linked to a company and contacts
// @Tags			deals
// @Accept			json
// @Produce		json
// @Security		BearerAuth
// @Param			deal	body		CreateDealRequest		true	"Deal data"
// @Success		201		{object}	db.Deal					"Deal created"
// @Failure		400		{object}	respond.ErrorResponse	"Bad request"
// @Failure		401		{object}	respond.ErrorResponse	"Unauthorized"
// @Router			/deals [post]
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateDealRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, http.StatusBadRequest, "invalid body", "Invalid JSON format")
		return
	}

	if req.Title == "" {
		respond.Error(w, http.StatusBadRequest, "validation failed", "Title is required")
		return
	}

	stage := req.Stage
	if stage == "" {
		stage = "lead"
	}

	d := &db.Deal{
		Title:       req.Title,
		Description: req.Description,
		Value:       req.Value,
		Stage:       stage,
		CompanyID:   req.CompanyID,
	}
	if err := h.store.Create(r.Context(), d, req.ContactIDs); err != nil {
		respond.Err(w, err)
		return
	}

	respond.JSON(w, http.StatusCreated, d)
}

// List godoc
// @Summary		Get all deals
// @Description	Get a paginated list of deals with company and contacts preloaded
// @Tags			deals
// @Produce		json
// @Security		BearerAuth
// @Param			page		query		int		false	"Page number"		default(1)
// @Param			limit		query		int		false	"Items per page"	default(10)
// @Param			sortBy		query		string	false	"Sort field"		default(created_at)
// @Param			sortOrder	query		string	false	"Sort order"		Enums(asc, desc)
// @Success		200			{object}	ListResponse			"Deals retrieved"
// @Failure		401			{object}	respond.ErrorResponse	"Unauthorized"
// @Router			/deals [get]
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	p := pagination.FromRequest(r, sortable...)

	deals, total, err := h.store.List(r.Context(), p)
	if err != nil {
		respond.Err(w, err)
		return
	}

	respond.JSON(w, http.StatusOK, ListResponse{
		Data:  deals,
		Total: total,
		Page:  p.Page,
		Limit: p.Limit,
	})
}

// Get godoc
// @Summary		Get deal by ID
// @Description	Get a specific deal
// @Tags			deals
// @Produce		json
// @Security		BearerAuth
// @Param			id	path		int						true	"Deal ID"
// @Success		200	{object}	db.Deal					"Deal retrieved"
// @Failure		404	{object}	respond.ErrorResponse	"Deal not found"
// @Router			/deals/{id} [get]
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r)
	if !ok {
		return
	}

	d, err := h.store.Get(r.Context(), id)
	if err != nil {
		respond.Err(w, err)
		return
	}
	respond.JSON(w, http.StatusOK, d)
}

// Update godoc
// @Summary		Update deal
// @Description	Update an existing deal; contactIds, when present, replaces the linked contacts
// @Tags			deals
// @Accept			json
// @Produce		json
// @Security		BearerAuth
// @Param			id		path		int						true	"Deal ID"
// @Param			deal	body		UpdateDealRequest		true	"Fields to update"
// @Success		200		{object}	db.Deal					"Deal updated"
// @Failure		404		{object}	respond.ErrorResponse	"Deal not found"
// @Router			/deals/{id} [patch]
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r)
	if !ok {
		return
	}

	var req UpdateDealRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, http.StatusBadRequest, "invalid body", "Invalid JSON format")
		return
	}

	updates := map[string]any{}
	if req.Title != nil {
		updates["title"] = *req.Title
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if req.Value != nil {
		updates["value"] = *req.Value
	}
	if req.Stage != nil {
		updates["stage"] = *req.Stage
	}
	if req.CompanyID != nil {
		updates["company_id"] = *req.CompanyID
	}

	d, err := h.store.Update(r.Context(), id, updates, req.ContactIDs)
	if err != nil {
		respond.Err(w, err)
		return
	}
	respond.JSON(w, http.StatusOK, d)
}

// Delete godoc
// @Summary		Delete deal
// @Description	Delete a deal by ID
// @Tags			deals
// @Produce		json
// @Security		BearerAuth
// @Param			id	path		int						true	"Deal ID"
// @Success		200	{object}	DeleteResponse			"Deal deleted"
// @Failure		404	{object}	respond.ErrorResponse	"Deal not found"
// @Router			/deals/{id} [delete]
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r)
	if !ok {
		return
	}

	if err := h.store.Delete(r.Context(), id); err != nil {
		respond.Err(w, err)
		return
	}
	respond.JSON(w, http.StatusOK, DeleteResponse{Message: "Deal deleted successfully"})
}

func idParam(w http.ResponseWriter, r *http.Request) (uint, bool) {
	id, err := strconv.ParseUint(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		respond.Error(w, http.StatusBadRequest, "invalid id", "ID must be numeric")
		return 0, false
	}
	return uint(id), true
}

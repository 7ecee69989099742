package company

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/mkk-1817/crm-backend/internal/api/pagination"
	"github.com/mkk-1817/crm-backend/internal/api/respond"
	"github.com/mkk-1817/crm-backend/internal/db"
)

// sortable lists the fields the list endpoint may ORDER BY.
var sortable = []string{"created_at", "updated_at", "name", "industry"}

type CreateCompanyRequest struct {
	Name        string `json:"name" example:"Acme Corporation"`
	Industry    string `json:"industry,omitempty" example:"Technology"`
	Website     string `json:"website,omitempty" example:"https://www.acme.com"`
	Phone       string `json:"phone,omitempty" example:"+1 (555) 123-4567"`
	Email       string `json:"email,omitempty" example:"contact@acme.com"`
	Address     string `json:"address,omitempty" example:"123 Business St, San Francisco, CA 94105"`
	Description string `json:"description,omitempty" example:"Leading provider of enterprise software"`
}

type UpdateCompanyRequest struct {
	Name        *string `json:"name,omitempty"`
	Industry    *string `json:"industry,omitempty"`
	Website     *string `json:"website,omitempty"`
	Phone       *string `json:"phone,omitempty"`
	Email       *string `json:"email,omitempty"`
	Address     *string `json:"address,omitempty"`
	Description *string `json:"description,omitempty"`
}

type ListResponse struct {
	Data  []db.Company `json:"data"`
	Total int64        `json:"total" example:"42"`
	Page  int          `json:"page" example:"1"`
	Limit int          `json:"limit" example:"10"`
}

type DeleteResponse struct {
	Message string `json:"message" example:"Company deleted successfully"`
}

type Handler struct {
	store Store
}

func NewHandler(store Store) *Handler {
	return &Handler{store: store}
}

// Create godoc
// @Summary		Create company
// @Description	Create a new company
// @Tags			companies
// @Accept			json
// @Produce		json
// @Security		BearerAuth
// @Param			company	body		CreateCompanyRequest	true	"Company data"
// @Success		201		{object}	db.Company				"Company created"
// @Failure		400		{object}	respond.ErrorResponse	"Bad request"
// @Failure		401		{object}	respond.ErrorResponse	"Unauthorized"
// @Router			/companies [post]
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateCompanyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, http.StatusBadRequest, "invalid body", "Invalid JSON format")
		return
	}

	if req.Name == "" {
		respond.Error(w, http.StatusBadRequest, "validation failed", "Name is required")
		return
	}

	c := &db.Company{
		Name:        req.Name,
		Industry:    req.Industry,
		Website:     req.Website,
		Phone:       req.Phone,
		Email:       req.Email,
		Address:     req.Address,
		Description: req.Description,
	}
	if err := h.store.Create(r.Context(), c); err != nil {
		respond.Err(w, err)
		return
	}

	respond.JSON(w, http.StatusCreated, c)
}

// List godoc
// @Summary		Get all companies
// @Description	Get a paginated list of companies
// @Tags			companies
// @Produce		json
// @Security		BearerAuth
// @Param			page		query		int		false	"Page number"		default(1)
// @Param			limit		query		int		false	"Items per page"	default(10)
// @Param			sortBy		query		string	false	"Sort field"		default(created_at)
// @Param			sortOrder	query		string	false	"Sort order"		Enums(asc, desc)
// @Success		200			{object}	ListResponse			"Companies retrieved"
// @Failure		401			{object}	respond.ErrorResponse	"Unauthorized"
// @Router			/companies [get]
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	p := pagination.FromRequest(r, sortable...)

	companies, total, err := h.store.List(r.Context(), p)
	if err != nil {
		respond.Err(w, err)
		return
	}

	respond.JSON(w, http.StatusOK, ListResponse{
		Data:  companies,
		Total: total,
		Page:  p.Page,
		Limit: p.Limit,
	})
}

// Get godoc
// @Summary		Get company by ID
// @Description	Get a specific company
// @Tags			companies
// @Produce		json
// @Security		BearerAuth
// @Param			id	path		int						true	"Company ID"
// @Success		200	{object}	db.Company				"Company retrieved"
// @Failure		404	{object}	respond.ErrorResponse	"Company not found"
// @Router			/companies/{id} [get]
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
// @Summary		Update company
// @Description	Update an existing company
// @Tags			companies
// @Accept			json
// @Produce		json
// @Security		BearerAuth
// @Param			id		path		int						true	"Company ID"
// @Param			company	body		UpdateCompanyRequest	true	"Fields to update"
// @Success		200		{object}	db.Company				"Company updated"
// @Failure		404		{object}	respond.ErrorResponse	"Company not found"
// @Router			/companies/{id} [patch]
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r)
	if !ok {
		return
	}

	var req UpdateCompanyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, http.StatusBadRequest, "invalid body", "Invalid JSON format")
		return
	}

	updates := map[string]any{}
	setIf(updates, "name", req.Name)
	setIf(updates, "industry", req.Industry)
	setIf(updates, "website", req.Website)
	setIf(updates, "phone", req.Phone)
	setIf(updates, "email", req.Email)
	setIf(updates, "address", req.Address)
	setIf(updates, "description", req.Description)

	c, err := h.store.Update(r.Context(), id, updates)
	if err != nil {
		respond.Err(w, err)
		return
	}
	respond.JSON(w, http.StatusOK, c)
}

// Delete godoc
// @Summary		Delete company
// @Description	Delete a company by ID
// @Tags			companies
// @Produce		json
// @Security		BearerAuth
// @Param			id	path		int						true	"Company ID"
// @Success		200	{object}	DeleteResponse			"Company deleted"
// @Failure		404	{object}	respond.ErrorResponse	"Company not found"
// @Router			/companies/{id} [delete]
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r)
	if !ok {
		return
	}

	if err := h.store.Delete(r.Context(), id); err != nil {
		respond.Err(w, err)
		return
	}
	respond.JSON(w, http.StatusOK, DeleteResponse{Message: "Company deleted successfully"})
}

func idParam(w http.ResponseWriter, r *http.Request) (uint, bool) {
	id, err := strconv.ParseUint(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		respond.Error(w, http.StatusBadRequest, "invalid id", "ID must be numeric")
		return 0, false
	}
	return uint(id), true
}

func setIf(updates map[string]any, key string, v *string) {
	if v != nil {
		updates[key] = *v
	}
}

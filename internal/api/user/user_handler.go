package user

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/mkk-1817/crm-backend/internal/api/auth"
	"github.com/mkk-1817/crm-backend/internal/api/respond"
	"github.com/mkk-1817/crm-backend/internal/db"
)

type CreateUserRequest struct {
	Email     string `json:"email" example:"user@example.com"`
	Password  string `json:"password" example:"StrongPassword123!"`
	FirstName string `json:"firstName" example:"John"`
	LastName  string `json:"lastName" example:"Doe"`
}

type UpdateUserRequest struct {
	Email     *string `json:"email,omitempty" example:"updated@example.com"`
	FirstName *string `json:"firstName,omitempty" example:"Jane"`
	LastName  *string `json:"lastName,omitempty" example:"Smith"`
}

type DeleteResponse struct {
	Message string `json:"message" example:"User deleted successfully"`
}

type Handler struct {
	store Store
}

func NewHandler(store Store) *Handler {
	return &Handler{store: store}
}

// Create godoc
// @Summary		Create user
// @Description	Create a new user account
// @Tags			users
// @Accept			json
// @Produce		json
// @Security		BearerAuth
// @Param			user	body		CreateUserRequest		true	"User creation data"
// @Success		201		{object}	db.User					"User created"
// @Failure		400		{object}	respond.ErrorResponse	"Bad request - invalid input"
// @Failure		409		{object}	respond.ErrorResponse	"Conflict - email already registered"
// @Failure		500		{object}	respond.ErrorResponse	"Internal server error"
// @Router			/users [post]
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, http.StatusBadRequest, "invalid body", "Invalid JSON format")
		return
	}

	if req.Email == "" || req.Password == "" {
		respond.Error(w, http.StatusBadRequest, "validation failed", "Email and password are required")
		return
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		respond.Err(w, err)
		return
	}

	u := &db.User{
		Email:        req.Email,
		Name:         auth.DisplayName("", req.FirstName, req.LastName),
		PasswordHash: hash,
	}
	if err := h.store.Create(r.Context(), u); err != nil {
		respond.Err(w, err)
		return
	}

	respond.JSON(w, http.StatusCreated, u)
}

// List godoc
// @Summary		List users
// @Description	Retrieve all users
// @Tags			users
// @Produce		json
// @Security		BearerAuth
// @Success		200	{array}		db.User					"Users retrieved"
// @Failure		401	{object}	respond.ErrorResponse	"Unauthorized"
// @Router			/users [get]
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	users, err := h.store.List(r.Context())
	if err != nil {
		respond.Err(w, err)
		return
	}
	respond.JSON(w, http.StatusOK, users)
}

// Get godoc
// @Summary		Get user by ID
// @Description	Retrieve a specific user
// @Tags			users
// @Produce		json
// @Security		BearerAuth
// @Param			id	path		int						true	"User ID"
// @Success		200	{object}	db.User					"User retrieved"
// @Failure		400	{object}	respond.ErrorResponse	"Bad request - invalid ID"
// @Failure		404	{object}	respond.ErrorResponse	"User not found"
// @Router			/users/{id} [get]
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r)
	if !ok {
		return
	}

	u, err := h.store.GetByID(r.Context(), id)
	if err != nil {
		respond.Err(w, err)
		return
	}
	respond.JSON(w, http.StatusOK, u)
}

// Update godoc
// @Summary		Update user
// @Description	Update a user's email or name; passwords cannot be changed here
// @Tags			users
// @Accept			json
// @Produce		json
// @Security		BearerAuth
// @Param			id		path		int						true	"User ID"
// @Param			user	body		UpdateUserRequest		true	"Fields to update"
// @Success		200		{object}	db.User					"User updated"
// @Failure		404		{object}	respond.ErrorResponse	"User not found"
// @Router			/users/{id} [patch]
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r)
	if !ok {
		return
	}

	var req UpdateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, http.StatusBadRequest, "invalid body", "Invalid JSON format")
		return
	}

	updates := map[string]any{}
	if req.Email != nil {
		updates["email"] = *req.Email
	}
	if req.FirstName != nil || req.LastName != nil {
		name := auth.DisplayName("", deref(req.FirstName), deref(req.LastName))
		if name != "" {
			updates["name"] = name
		}
	}

	u, err := h.store.Update(r.Context(), id, updates)
	if err != nil {
		respond.Err(w, err)
		return
	}
	respond.JSON(w, http.StatusOK, u)
}

// Delete godoc
// @Summary		Delete user
// @Description	Delete a user account by ID
// @Tags			users
// @Produce		json
// @Security		BearerAuth
// @Param			id	path		int						true	"User ID"
// @Success		200	{object}	DeleteResponse			"User deleted"
// @Failure		404	{object}	respond.ErrorResponse	"User not found"
// @Router			/users/{id} [delete]
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r)
	if !ok {
		return
	}

	if err := h.store.Delete(r.Context(), id); err != nil {
		respond.Err(w, err)
		return
	}
	respond.JSON(w, http.StatusOK, DeleteResponse{Message: "User deleted successfully"})
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

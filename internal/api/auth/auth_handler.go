package auth

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/mkk-1817/crm-backend/internal/api/respond"
)

// Request/Response structures

type RegisterRequest struct {
	Email     string `json:"email" example:"a@b.com"`
	Password  string `json:"password" example:"Secret1!"`
	Name      string `json:"name" example:"Ada Lovelace"`
	FirstName string `json:"firstName" example:"Ada"`
	LastName  string `json:"lastName" example:"Lovelace"`
}

type LoginRequest struct {
	Email    string `json:"email" example:"a@b.com"`
	Password string `json:"password" example:"Secret1!"`
}

type AuthResponse struct {
	AccessToken string `json:"access_token" example:"eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9..."`
}

type AuthHandler struct {
	service *Service
}

func NewAuthHandler(service *Service) *AuthHandler {
	return &AuthHandler{service: service}
}

// Login godoc
// @Summary		User login
// @Description	Authenticate user and return a JWT access token
// @Tags			auth
// @Accept			json
// @Produce		json
// @Param			credentials	body		LoginRequest			true	"User login credentials"
// @Success		200			{object}	AuthResponse			"Login successful"
// @Failure		400			{object}	respond.ErrorResponse	"Bad request - invalid input"
// @Failure		401			{object}	respond.ErrorResponse	"Unauthorized - invalid credentials"
// @Failure		500			{object}	respond.ErrorResponse	"Internal server error"
// @Router			/auth/login [post]
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, http.StatusBadRequest, "invalid body", "Invalid JSON format")
		return
	}

	if req.Email == "" || req.Password == "" {
		respond.Error(w, http.StatusBadRequest, "validation failed", "Email and password are required")
		return
	}

	token, err := h.service.LoginWithCredentials(r.Context(), req.Email, req.Password)
	if err != nil {
		respond.Err(w, err)
		return
	}

	respond.JSON(w, http.StatusOK, AuthResponse{AccessToken: token})
}

// Register godoc
// @Summary		Register a new user
// @Description	Create a user account and return a JWT access token
// @Tags			auth
// @Accept			json
// @Produce		json
// @Param			user	body		RegisterRequest			true	"User registration data"
// @Success		201		{object}	AuthResponse			"Registration successful"
// @Failure		400		{object}	respond.ErrorResponse	"Bad request - missing email or password"
// @Failure		409		{object}	respond.ErrorResponse	"Conflict - email already registered"
// @Failure		500		{object}	respond.ErrorResponse	"Internal server error"
// @Router			/auth/register [post]
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, http.StatusBadRequest, "invalid body", "Invalid JSON format")
		return
	}

	token, err := h.service.Register(r.Context(), RegisterInput{
		Email:    req.Email,
		Password: req.Password,
		Name:     DisplayName(req.Name, req.FirstName, req.LastName),
	})
	if err != nil {
		respond.Err(w, err)
		return
	}

	respond.JSON(w, http.StatusCreated, AuthResponse{AccessToken: token})
}

// Profile godoc
// @Summary		Get user profile
// @Description	Get the authenticated user's current profile
// @Tags			auth
// @Accept			json
// @Produce		json
// @Security		BearerAuth
// @Success		200	{object}	db.User					"Profile retrieved"
// @Failure		401	{object}	respond.ErrorResponse	"Unauthorized - invalid or missing token"
// @Failure		500	{object}	respond.ErrorResponse	"Internal server error"
// @Router			/auth/profile [get]
func (h *AuthHandler) Profile(w http.ResponseWriter, r *http.Request) {
	user, err := h.service.GetProfile(r.Context(), r.Header.Get("Authorization"))
	if err != nil {
		respond.Err(w, err)
		return
	}

	respond.JSON(w, http.StatusOK, user)
}

// DisplayName builds the stored display string: an explicit name wins,
// otherwise first and last are joined and trimmed.
func DisplayName(name, firstName, lastName string) string {
	if name != "" {
		return name
	}
	return strings.TrimSpace(firstName + " " + lastName)
}

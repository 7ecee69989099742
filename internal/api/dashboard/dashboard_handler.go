package dashboard

import (
	"net/http"

	"github.com/mkk-1817/crm-backend/internal/api/respond"
)

type Handler struct {
	store Store
}

func NewHandler(store Store) *Handler {
	return &Handler{store: store}
}

// GetStats godoc
// @Summary		Get dashboard stats
// @Description	Retrieve aggregated CRM statistics
// @Tags			dashboard
// @Produce		json
// @Security		BearerAuth
// @Success		200	{object}	Stats					"Statistics retrieved"
// @Failure		401	{object}	respond.ErrorResponse	"Unauthorized"
// @Failure		500	{object}	respond.ErrorResponse	"Internal server error"
// @Router			/dashboard [get]
func (h *Handler) GetStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.store.Stats(r.Context())
	if err != nil {
		respond.Err(w, err)
		return
	}
	respond.JSON(w, http.StatusOK, stats)
}

package dashboard

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeStore struct {
	stats *Stats
	err   error
}

func (f *fakeStore) Stats(_ context.Context) (*Stats, error) {
	return f.stats, f.err
}

func TestGetStats(t *testing.T) {
	t.Parallel()

	h := NewHandler(&fakeStore{stats: &Stats{
		Companies:     12,
		Contacts:      57,
		Deals:         23,
		Users:         4,
		PipelineValue: 1250000,
		DealsByStage:  map[string]int64{"lead": 10, "negotiation": 8, "closed-won": 5},
	}})

	rec := httptest.NewRecorder()
	h.GetStats(rec, httptest.NewRequest(http.MethodGet, "/dashboard", nil))

	require.Equal(t, http.StatusOK, rec.Code)

	var got Stats
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&got))
	assert.Equal(t, int64(12), got.Companies)
	assert.Equal(t, float64(1250000), got.PipelineValue)
	assert.Equal(t, int64(8), got.DealsByStage["negotiation"])
}

func TestGetStats_StoreError(t *testing.T) {
	t.Parallel()

	h := NewHandler(&fakeStore{err: assert.AnError})

	rec := httptest.NewRecorder()
	h.GetStats(rec, httptest.NewRequest(http.MethodGet, "/dashboard", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

package deal

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mkk-1817/crm-backend/internal/api/pagination"
	"github.com/mkk-1817/crm-backend/internal/apperr"
	"github.com/mkk-1817/crm-backend/internal/db"
)

type fakeStore struct {
	deals  map[uint]*db.Deal
	nextID uint
}

func newFakeStore() *fakeStore {
	return &fakeStore{deals: map[uint]*db.Deal{}}
}

func (f *fakeStore) Create(_ context.Context, d *db.Deal, contactIDs []uint) error {
	f.nextID++
	d.ID = f.nextID
	for _, id := range contactIDs {
		d.Contacts = append(d.Contacts, db.Contact{ID: id})
	}
	stored := *d
	f.deals[d.ID] = &stored
	return nil
}

func (f *fakeStore) List(_ context.Context, p pagination.Params) ([]db.Deal, int64, error) {
	var out []db.Deal
	for _, d := range f.deals {
		out = append(out, *d)
	}
	return out, int64(len(f.deals)), nil
}

func (f *fakeStore) Get(_ context.Context, id uint) (*db.Deal, error) {
	d, ok := f.deals[id]
	if !ok {
		return nil, fmt.Errorf("%w: deal %d", apperr.ErrNotFound, id)
	}
	out := *d
	return &out, nil
}

func (f *fakeStore) Update(_ context.Context, id uint, updates map[string]any, contactIDs []uint) (*db.Deal, error) {
	d, ok := f.deals[id]
	if !ok {
		return nil, fmt.Errorf("%w: deal %d", apperr.ErrNotFound, id)
	}
	if v, ok := updates["stage"]; ok {
		d.Stage = v.(string)
	}
	if v, ok := updates["value"]; ok {
		d.Value = v.(float64)
	}
	if contactIDs != nil {
		d.Contacts = nil
		for _, cid := range contactIDs {
			d.Contacts = append(d.Contacts, db.Contact{ID: cid})
		}
	}
	out := *d
	return &out, nil
}

func (f *fakeStore) Delete(_ context.Context, id uint) error {
	if _, ok := f.deals[id]; !ok {
		return fmt.Errorf("%w: deal %d", apperr.ErrNotFound, id)
	}
	delete(f.deals, id)
	return nil
}

func newRouter(store Store) http.Handler {
	h := NewHandler(store)
	r := chi.NewRouter()
	r.Post("/deals", h.Create)
	r.Get("/deals", h.List)
	r.Get("/deals/{id}", h.Get)
	r.Patch("/deals/{id}", h.Update)
	r.Delete("/deals/{id}", h.Delete)
	return r
}

func doRequest(t *testing.T, router http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	buf := &bytes.Buffer{}
	if body != nil {
		require.NoError(t, json.NewEncoder(buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, buf)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestCreateDeal(t *testing.T) {
	t.Parallel()

	router := newRouter(newFakeStore())

	companyID := uint(1)
	rec := doRequest(t, router, http.MethodPost, "/deals", CreateDealRequest{
		Title:      "Enterprise Software License",
		Value:      50000,
		Stage:      "negotiation",
		CompanyID:  &companyID,
		ContactIDs: []uint{1, 2},
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	var d db.Deal
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&d))
	assert.Equal(t, "negotiation", d.Stage)
	assert.Len(t, d.Contacts, 2)
}

func TestCreateDeal_DefaultsStage(t *testing.T) {
	t.Parallel()

	router := newRouter(newFakeStore())

	rec := doRequest(t, router, http.MethodPost, "/deals", CreateDealRequest{Title: "New Deal"})
	require.Equal(t, http.StatusCreated, rec.Code)

	var d db.Deal
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&d))
	assert.Equal(t, "lead", d.Stage)
}

func TestCreateDeal_TitleRequired(t *testing.T) {
	t.Parallel()

	router := newRouter(newFakeStore())
	rec := doRequest(t, router, http.MethodPost, "/deals", CreateDealRequest{Value: 100})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUpdateDeal_ReplacesContacts(t *testing.T) {
	t.Parallel()

	store := newFakeStore()
	require.NoError(t, store.Create(context.Background(), &db.Deal{Title: "D", Stage: "lead"}, []uint{1}))
	router := newRouter(store)

	stage := "closed-won"
	rec := doRequest(t, router, http.MethodPatch, "/deals/1", UpdateDealRequest{
		Stage: &stage, ContactIDs: []uint{2, 3},
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var d db.Deal
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&d))
	assert.Equal(t, "closed-won", d.Stage)
	require.Len(t, d.Contacts, 2)
	assert.Equal(t, uint(2), d.Contacts[0].ID)
}

func TestDealNotFound(t *testing.T) {
	t.Parallel()

	router := newRouter(newFakeStore())

	rec := doRequest(t, router, http.MethodGet, "/deals/42", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = doRequest(t, router, http.MethodDelete, "/deals/42", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

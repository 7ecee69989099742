package user

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

	"github.com/mkk-1817/crm-backend/internal/api/auth"
	"github.com/mkk-1817/crm-backend/internal/apperr"
	"github.com/mkk-1817/crm-backend/internal/db"
)

type fakeStore struct {
	users  map[uint]*db.User
	nextID uint
}

func newFakeStore() *fakeStore {
	return &fakeStore{users: map[uint]*db.User{}}
}

func (f *fakeStore) Create(_ context.Context, u *db.User) error {
	for _, existing := range f.users {
		if existing.Email == u.Email {
			return fmt.Errorf("%w: email already registered", apperr.ErrConflict)
		}
	}
	f.nextID++
	u.ID = f.nextID
	stored := *u
	f.users[u.ID] = &stored
	return nil
}

func (f *fakeStore) GetByEmail(_ context.Context, email string) (*db.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			out := *u
			return &out, nil
		}
	}
	return nil, nil
}

func (f *fakeStore) GetByID(_ context.Context, id uint) (*db.User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, fmt.Errorf("%w: user %d", apperr.ErrNotFound, id)
	}
	out := *u
	return &out, nil
}

func (f *fakeStore) List(_ context.Context) ([]db.User, error) {
	var out []db.User
	for _, u := range f.users {
		out = append(out, *u)
	}
	return out, nil
}

func (f *fakeStore) Update(_ context.Context, id uint, updates map[string]any) (*db.User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, fmt.Errorf("%w: user %d", apperr.ErrNotFound, id)
	}
	if v, ok := updates["email"]; ok {
		u.Email = v.(string)
	}
	if v, ok := updates["name"]; ok {
		u.Name = v.(string)
	}
	out := *u
	return &out, nil
}

func (f *fakeStore) Delete(_ context.Context, id uint) error {
	if _, ok := f.users[id]; !ok {
		return fmt.Errorf("%w: user %d", apperr.ErrNotFound, id)
	}
	delete(f.users, id)
	return nil
}

func newRouter(store Store) http.Handler {
	h := NewHandler(store)
	r := chi.NewRouter()
	r.Post("/users", h.Create)
	r.Get("/users", h.List)
	r.Get("/users/{id}", h.Get)
	r.Patch("/users/{id}", h.Update)
	r.Delete("/users/{id}", h.Delete)
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

func TestCreateUser(t *testing.T) {
	t.Parallel()

	store := newFakeStore()
	router := newRouter(store)

	rec := doRequest(t, router, http.MethodPost, "/users", CreateUserRequest{
		Email: "user@example.com", Password: "StrongPassword123!", FirstName: "John", LastName: "Doe",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	var body map[string]any
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	assert.Equal(t, "John Doe", body["name"])
	assert.NotContains(t, body, "password")
	assert.NotContains(t, body, "passwordHash")

	stored := store.users[1]
	assert.NotEqual(t, "StrongPassword123!", stored.PasswordHash)
	assert.True(t, auth.CheckPassword("StrongPassword123!", stored.PasswordHash))
}

func TestCreateUser_RequiresEmailAndPassword(t *testing.T) {
	t.Parallel()

	router := newRouter(newFakeStore())

	rec := doRequest(t, router, http.MethodPost, "/users", CreateUserRequest{Email: "user@example.com"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doRequest(t, router, http.MethodPost, "/users", CreateUserRequest{Password: "x"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCreateUser_DuplicateEmail(t *testing.T) {
	t.Parallel()

	router := newRouter(newFakeStore())

	rec := doRequest(t, router, http.MethodPost, "/users", CreateUserRequest{Email: "u@x.com", Password: "pw123456"})
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = doRequest(t, router, http.MethodPost, "/users", CreateUserRequest{Email: "u@x.com", Password: "pw123456"})
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestUpdateUser(t *testing.T) {
	t.Parallel()

	store := newFakeStore()
	require.NoError(t, store.Create(context.Background(), &db.User{Email: "u@x.com", Name: "John Doe", PasswordHash: "h"}))
	router := newRouter(store)

	first := "Jane"
	last := "Smith"
	rec := doRequest(t, router, http.MethodPatch, "/users/1", UpdateUserRequest{FirstName: &first, LastName: &last})
	require.Equal(t, http.StatusOK, rec.Code)

	var body map[string]any
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	assert.Equal(t, "Jane Smith", body["name"])
	assert.Equal(t, "u@x.com", body["email"])
}

func TestGetAndDeleteUser(t *testing.T) {
	t.Parallel()

	store := newFakeStore()
	require.NoError(t, store.Create(context.Background(), &db.User{Email: "u@x.com", PasswordHash: "h"}))
	router := newRouter(store)

	rec := doRequest(t, router, http.MethodGet, "/users/1", nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = doRequest(t, router, http.MethodGet, "/users/abc", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doRequest(t, router, http.MethodDelete, "/users/1", nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = doRequest(t, router, http.MethodGet, "/users/1", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

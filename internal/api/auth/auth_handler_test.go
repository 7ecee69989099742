package auth

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mkk-1817/crm-backend/internal/db"
)

var fakeUser = db.User{ID: 1, Email: "a@b.com", Name: "A B"}

func newTestHandler(t *testing.T) (*AuthHandler, *TokenIssuer) {
	t.Helper()
	issuer := NewTokenIssuer("test-secret", time.Hour)
	return NewAuthHandler(NewService(newFakeUserStore(), issuer)), issuer
}

func doJSON(t *testing.T, handler http.HandlerFunc, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, json.NewEncoder(&buf).Encode(body))
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	handler(rec, req)
	return rec
}

func TestRegisterThenLogin(t *testing.T) {
	t.Parallel()

	h, issuer := newTestHandler(t)

	rec := doJSON(t, h.Register, http.MethodPost, "/auth/register", RegisterRequest{
		Email: "a@b.com", Password: "Secret1!", FirstName: "A", LastName: "B",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	var reg AuthResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&reg))
	assert.NotEmpty(t, reg.AccessToken)

	rec = doJSON(t, h.Login, http.MethodPost, "/auth/login", LoginRequest{Email: "a@b.com", Password: "Secret1!"})
	require.Equal(t, http.StatusOK, rec.Code)

	var login AuthResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&login))
	claims, err := issuer.Decode(login.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, "a@b.com", claims.Email)
	assert.Equal(t, "A B", claims.Name)
}

func TestRegister_MissingPassword(t *testing.T) {
	t.Parallel()

	h, _ := newTestHandler(t)

	rec := doJSON(t, h.Register, http.MethodPost, "/auth/register", RegisterRequest{Email: "a@b.com"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRegister_DuplicateEmailConflict(t *testing.T) {
	t.Parallel()

	h, _ := newTestHandler(t)

	rec := doJSON(t, h.Register, http.MethodPost, "/auth/register", RegisterRequest{Email: "a@b.com", Password: "Secret1!"})
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = doJSON(t, h.Register, http.MethodPost, "/auth/register", RegisterRequest{Email: "a@b.com", Password: "Other2@"})
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestLogin_BadCredentials(t *testing.T) {
	t.Parallel()

	h, _ := newTestHandler(t)

	rec := doJSON(t, h.Register, http.MethodPost, "/auth/register", RegisterRequest{Email: "a@b.com", Password: "Secret1!"})
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = doJSON(t, h.Login, http.MethodPost, "/auth/login", LoginRequest{Email: "a@b.com", Password: "wrong"})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = doJSON(t, h.Login, http.MethodPost, "/auth/login", LoginRequest{Email: "nobody@b.com", Password: "Secret1!"})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestProfile(t *testing.T) {
	t.Parallel()

	h, _ := newTestHandler(t)

	rec := doJSON(t, h.Register, http.MethodPost, "/auth/register", RegisterRequest{
		Email: "a@b.com", Password: "Secret1!", Name: "Ada",
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	var reg AuthResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&reg))

	req := httptest.NewRequest(http.MethodGet, "/auth/profile", nil)
	req.Header.Set("Authorization", "Bearer "+reg.AccessToken)
	out := httptest.NewRecorder()
	h.Profile(out, req)

	require.Equal(t, http.StatusOK, out.Code)
	var body map[string]any
	require.NoError(t, json.NewDecoder(out.Body).Decode(&body))
	assert.Equal(t, "a@b.com", body["email"])
	assert.NotContains(t, body, "password")
	assert.NotContains(t, body, "passwordHash")
}

func TestProfile_TamperedToken(t *testing.T) {
	t.Parallel()

	h, _ := newTestHandler(t)

	rec := doJSON(t, h.Register, http.MethodPost, "/auth/register", RegisterRequest{Email: "a@b.com", Password: "Secret1!"})
	require.Equal(t, http.StatusCreated, rec.Code)
	var reg AuthResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&reg))

	tampered := reg.AccessToken[:len(reg.AccessToken)-2] + "xx"
	req := httptest.NewRequest(http.MethodGet, "/auth/profile", nil)
	req.Header.Set("Authorization", "Bearer "+tampered)
	out := httptest.NewRecorder()
	h.Profile(out, req)

	assert.Equal(t, http.StatusUnauthorized, out.Code)
}

func TestGuard(t *testing.T) {
	t.Parallel()

	issuer := NewTokenIssuer("test-secret", time.Hour)
	var logBuf bytes.Buffer
	guard := NewGuard(issuer, slog.New(slog.NewTextHandler(&logBuf, nil)))

	var gotEmail string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims, err := ClaimsFromContext(r.Context())
		require.NoError(t, err)
		gotEmail = claims.Email
		w.WriteHeader(http.StatusOK)
	})
	protected := guard.RequireAuth(next)

	// missing header
	rec := httptest.NewRecorder()
	protected.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/companies", nil))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, logBuf.String(), "missing authorization header")

	// bad scheme
	logBuf.Reset()
	req := httptest.NewRequest(http.MethodGet, "/companies", nil)
	req.Header.Set("Authorization", "Basic abc")
	rec = httptest.NewRecorder()
	protected.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, logBuf.String(), "invalid authorization header format")

	// signature-invalid token logs a reason distinct from a missing one
	logBuf.Reset()
	badTok, err := NewTokenIssuer("other-secret", time.Hour).Issue(&fakeUser)
	require.NoError(t, err)
	req = httptest.NewRequest(http.MethodGet, "/companies", nil)
	req.Header.Set("Authorization", "Bearer "+badTok)
	rec = httptest.NewRecorder()
	protected.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, logBuf.String(), "invalid token")
	assert.NotContains(t, logBuf.String(), "missing authorization header")

	// valid token passes and attaches the principal
	tok, err := issuer.Issue(&fakeUser)
	require.NoError(t, err)
	req = httptest.NewRequest(http.MethodGet, "/companies", nil)
	req.Header.Set("Authorization", "Bearer "+tok)
	rec = httptest.NewRecorder()
	protected.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "a@b.com", gotEmail)
}

func TestDisplayName(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Ada Lovelace", DisplayName("Ada Lovelace", "X", "Y"))
	assert.Equal(t, "Ada Lovelace", DisplayName("", "Ada", "Lovelace"))
	assert.Equal(t, "Ada", DisplayName("", "Ada", ""))
	assert.Equal(t, "Lovelace", DisplayName("", "", "Lovelace"))
	assert.Equal(t, "", DisplayName("", "", ""))
	assert.Equal(t, "", strings.TrimSpace(DisplayName("", " ", " ")))
}

package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mkk-1817/crm-backend/internal/db"
)

func TestTokenIssuer_RoundTrip(t *testing.T) {
	t.Parallel()

	issuer := NewTokenIssuer("super-secret", time.Hour)
	user := &db.User{ID: 7, Email: "a@b.com", Name: "Ada Lovelace"}

	tok, err := issuer.Issue(user)
	require.NoError(t, err)
	require.NotEmpty(t, tok)

	claims, err := issuer.Decode(tok)
	require.NoError(t, err)
	assert.Equal(t, uint(7), claims.UserID)
	assert.Equal(t, "a@b.com", claims.Email)
	assert.Equal(t, "Ada Lovelace", claims.Name)
	assert.Equal(t, "7", claims.Subject)
	assert.NotEmpty(t, claims.ID)
	require.NotNil(t, claims.ExpiresAt)
	assert.True(t, claims.ExpiresAt.After(time.Now()))
}

func TestTokenIssuer_Expired(t *testing.T) {
	t.Parallel()

	issuer := NewTokenIssuer("secret", -time.Second)
	tok, err := issuer.Issue(&db.User{ID: 1, Email: "u@x.com"})
	require.NoError(t, err)

	_, err = issuer.Decode(tok)
	require.Error(t, err)
}

func TestTokenIssuer_WrongSecret(t *testing.T) {
	t.Parallel()

	tok, err := NewTokenIssuer("right-secret", time.Hour).Issue(&db.User{ID: 1, Email: "u@x.com"})
	require.NoError(t, err)

	_, err = NewTokenIssuer("wrong-secret", time.Hour).Decode(tok)
	require.Error(t, err)
}

func TestTokenIssuer_Tampered(t *testing.T) {
	t.Parallel()

	issuer := NewTokenIssuer("secret", time.Hour)
	tok, err := issuer.Issue(&db.User{ID: 1, Email: "u@x.com"})
	require.NoError(t, err)

	tampered := tok[:len(tok)-2] + "xx"
	_, err = issuer.Decode(tampered)
	require.Error(t, err)
}

func TestTokenIssuer_Malformed(t *testing.T) {
	t.Parallel()

	_, err := NewTokenIssuer("k", time.Hour).Decode("not.a.jwt")
	require.Error(t, err)
}

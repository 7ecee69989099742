package pagination

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFromRequest_Defaults(t *testing.T) {
	t.Parallel()

	r := httptest.NewRequest("GET", "/companies", nil)
	p := FromRequest(r, "created_at", "name")

	assert.Equal(t, 1, p.Page)
	assert.Equal(t, 10, p.Limit)
	assert.Equal(t, "created_at", p.SortBy)
	assert.Equal(t, "desc", p.SortOrder)
	assert.Equal(t, 0, p.Offset())
}

func TestFromRequest_Explicit(t *testing.T) {
	t.Parallel()

	r := httptest.NewRequest("GET", "/companies?page=3&limit=25&sortBy=name&sortOrder=ASC", nil)
	p := FromRequest(r, "created_at", "name")

	assert.Equal(t, 3, p.Page)
	assert.Equal(t, 25, p.Limit)
	assert.Equal(t, "name", p.SortBy)
	assert.Equal(t, "asc", p.SortOrder)
	assert.Equal(t, 50, p.Offset())
}

func TestFromRequest_ClampsAndFallsBack(t *testing.T) {
	t.Parallel()

	r := httptest.NewRequest("GET", "/companies?page=-1&limit=9999&sortBy=password_hash&sortOrder=sideways", nil)
	p := FromRequest(r, "created_at", "name")

	assert.Equal(t, 1, p.Page)
	assert.Equal(t, 100, p.Limit)
	assert.Equal(t, "created_at", p.SortBy, "unknown sort fields must not reach ORDER BY")
	assert.Equal(t, "desc", p.SortOrder)
}

func TestFromRequest_NonNumeric(t *testing.T) {
	t.Parallel()

	r := httptest.NewRequest("GET", "/companies?page=abc&limit=xyz", nil)
	p := FromRequest(r, "created_at")

	assert.Equal(t, 1, p.Page)
	assert.Equal(t, 10, p.Limit)
}

// Package pagination parses the list query parameters shared by the CRUD
// endpoints and turns them into a gorm scope.
package pagination

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"gorm.io/gorm"
)

const (
	defaultPage  = 1
	defaultLimit = 10
	maxLimit     = 100
)

type Params struct {
	Page      int
	Limit     int
	SortBy    string
	SortOrder string
}

// FromRequest reads page/limit/sortBy/sortOrder from the query string.
// sortBy is checked against the caller's whitelist so it can be handed to
// ORDER BY safely; unknown fields fall back to created_at.
func FromRequest(r *http.Request, sortable ...string) Params {
	q := r.URL.Query()

	page, err := strconv.Atoi(q.Get("page"))
	if err != nil || page < 1 {
		page = defaultPage
	}

	limit, err := strconv.Atoi(q.Get("limit"))
	if err != nil || limit < 1 {
		limit = defaultLimit
	}
	if limit > maxLimit {
		limit = maxLimit
	}

	sortBy := "created_at"
	for _, field := range sortable {
		if q.Get("sortBy") == field {
			sortBy = field
			break
		}
	}

	sortOrder := "desc"
	if strings.EqualFold(q.Get("sortOrder"), "asc") {
		sortOrder = "asc"
	}

	return Params{Page: page, Limit: limit, SortBy: sortBy, SortOrder: sortOrder}
}

func (p Params) Offset() int {
	return (p.Page - 1) * p.Limit
}

// Scope applies ordering and the limit/offset window to a gorm query.
func (p Params) Scope(tx *gorm.DB) *gorm.DB {
	return tx.
		Order(fmt.Sprintf("%s %s", p.SortBy, p.SortOrder)).
		Limit(p.Limit).
		Offset(p.Offset())
}

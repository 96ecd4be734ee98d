package repository

import (
	"strings"
	"time"
)

const (
	DefaultPage  = 1
	DefaultLimit = 10
	MaxLimit     = 100
)

// PageSort is the common paging/sorting request shape. Page numbers are
// 1-based at the boundary; Offset converts for the store.
type PageSort struct {
	Page   int
	Limit  int
	SortBy string
	Order  string
}

// Normalized clamps page and limit into range: page < 1 becomes 1, limit
// defaults to 10 and is capped at 100.
func (p PageSort) Normalized() PageSort {
	out := p
	if out.Page < 1 {
		out.Page = DefaultPage
	}
	if out.Limit <= 0 {
		out.Limit = DefaultLimit
	}
	if out.Limit > MaxLimit {
		out.Limit = MaxLimit
	}
	return out
}

func (p PageSort) Offset() int {
	n := p.Normalized()
	return (n.Page - 1) * n.Limit
}

// OrderClause validates SortBy against the allow-list and Order against
// asc/desc; unknown values fall back to the given default column, desc.
func (p PageSort) OrderClause(allowed []string, fallback string) string {
	column := fallback
	sortBy := strings.TrimSpace(strings.ToLower(p.SortBy))
	for _, a := range allowed {
		if sortBy == a {
			column = a
			break
		}
	}
	direction := "desc"
	if strings.EqualFold(strings.TrimSpace(p.Order), "asc") {
		direction = "asc"
	}
	return column + " " + direction
}

type ListUsersParams struct {
	Search string
	PageSort
}

type ListCategoriesParams struct {
	UserID int64
	Search string
	PageSort
}

type ListChannelsParams struct {
	UserID int64
	Search string
	PageSort
}

type ListMindMapsParams struct {
	UserID int64
	Search string
	PageSort
}

type ListScriptsParams struct {
	UserID     int64
	ChannelID  *int64
	CategoryID *int64
	Status     string
	Difficulty *int
	DateFrom   *time.Time
	DateTo     *time.Time
	Search     string
	PageSort
}

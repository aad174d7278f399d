// Package collection computes the visible page of a record list: conjunctive
// filtering, stable sorting and 1-based pagination over an in-memory slice
// fetched wholesale from the core API. The result is a pure function of the
// list and the query; it never fails, it clamps.
package collection

import (
	"math"
	"sort"
	"strings"
	"time"
)

type Sort string

const (
	SortRecent    Sort = "recent"
	SortValueDesc Sort = "value_desc"
	SortValueAsc  Sort = "value_asc"
)

// All disables a categorical filter (same sentinel the dashboard UI sends).
const All = "ALL"

const DefaultPageSize = 10

// Query is one page request. Zero values mean "no constraint"; Status and
// Secondary also accept "ALL". From/To are inclusive calendar days in Loc.
type Query struct {
	Search    string
	Status    string
	Secondary string
	From      *time.Time
	To        *time.Time
	Loc       *time.Location
	Sort      Sort
	Page      int
	PageSize  int
}

// Fields adapts a record type to the pipeline. CreatedAt reports false for
// an unparsable timestamp; such records are excluded whenever a date bound
// is set. Value is the domain scalar for the value sorts (rating score, or
// creation time).
type Fields[T any] struct {
	SearchText func(T) []string
	Status     func(T) string
	Secondary  func(T) string
	CreatedAt  func(T) (time.Time, bool)
	Value      func(T) float64
}

// Page is the visible subset plus the counters the dashboard renders.
type Page[T any] struct {
	Items      []T `json:"items"`
	Total      int `json:"total"`
	TotalPages int `json:"total_pages"`
	Page       int `json:"page"`
}

// Apply runs filter, stable sort, page clamp and slice, in that order.
func Apply[T any](items []T, q Query, f Fields[T]) Page[T] {
	loc := q.Loc
	if loc == nil {
		loc = time.Local
	}
	var lo, hi time.Time
	bounded := q.From != nil || q.To != nil
	if q.From != nil {
		y, m, d := q.From.In(loc).Date()
		lo = time.Date(y, m, d, 0, 0, 0, 0, loc)
	}
	if q.To != nil {
		y, m, d := q.To.In(loc).Date()
		hi = time.Date(y, m, d, 0, 0, 0, 0, loc).AddDate(0, 0, 1)
	}

	search := strings.ToLower(strings.TrimSpace(q.Search))
	status := normalizeFilter(q.Status)
	secondary := normalizeFilter(q.Secondary)

	filtered := make([]T, 0, len(items))
	for _, it := range items {
		if search != "" && !matchesSearch(f.SearchText(it), search) {
			continue
		}
		if status != "" && strings.ToUpper(f.Status(it)) != status {
			continue
		}
		if secondary != "" && strings.ToUpper(f.Secondary(it)) != secondary {
			continue
		}
		if bounded {
			ts, ok := f.CreatedAt(it)
			if !ok {
				continue
			}
			if q.From != nil && ts.Before(lo) {
				continue
			}
			if q.To != nil && !ts.Before(hi) {
				continue
			}
		}
		filtered = append(filtered, it)
	}

	switch q.Sort {
	case SortValueDesc:
		sort.SliceStable(filtered, func(i, j int) bool {
			return f.Value(filtered[i]) > f.Value(filtered[j])
		})
	case SortValueAsc:
		sort.SliceStable(filtered, func(i, j int) bool {
			return f.Value(filtered[i]) < f.Value(filtered[j])
		})
	default: // SortRecent: newest first, unparsable timestamps last
		sort.SliceStable(filtered, func(i, j int) bool {
			ti, oki := f.CreatedAt(filtered[i])
			tj, okj := f.CreatedAt(filtered[j])
			if oki != okj {
				return oki
			}
			return ti.After(tj)
		})
	}

	size := q.PageSize
	if size <= 0 {
		size = DefaultPageSize
	}
	totalPages := int(math.Ceil(float64(len(filtered)) / float64(size)))
	if totalPages < 1 {
		totalPages = 1
	}
	page := q.Page
	if page < 1 {
		page = 1
	}
	if page > totalPages {
		page = totalPages
	}

	start := (page - 1) * size
	end := start + size
	if start > len(filtered) {
		start = len(filtered)
	}
	if end > len(filtered) {
		end = len(filtered)
	}

	return Page[T]{
		Items:      filtered[start:end],
		Total:      len(filtered),
		TotalPages: totalPages,
		Page:       page,
	}
}

func normalizeFilter(v string) string {
	v = strings.ToUpper(strings.TrimSpace(v))
	if v == All {
		return ""
	}
	return v
}

func matchesSearch(fields []string, q string) bool {
	for _, v := range fields {
		if strings.Contains(strings.ToLower(v), q) {
			return true
		}
	}
	return false
}

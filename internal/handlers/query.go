package handlers

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/lokaclean/backoffice/internal/collection"
)

// listQuery binds the shared list parameters. Date bounds use the
// dashboard's YYYY-MM-DD picker format interpreted in the gateway locale;
// an unreadable bound is ignored rather than rejected. The page always
// comes from the same request as the filters, so a stale page can never
// render against a newer filter set.
func (h *Handlers) listQuery(c *gin.Context, secondaryParam string) collection.Query {
	q := collection.Query{
		Search:    c.Query("q"),
		Status:    c.Query("status"),
		Secondary: c.Query(secondaryParam),
		Loc:       h.loc,
		Page:      atoiDefault(c.Query("page"), 1),
		PageSize:  atoiDefault(c.Query("limit"), collection.DefaultPageSize),
	}

	if t, ok := h.parseDay(c.Query("start_date")); ok {
		q.From = &t
	}
	if t, ok := h.parseDay(c.Query("end_date")); ok {
		q.To = &t
	}

	switch c.Query("sort") {
	case "value_asc", "asc":
		q.Sort = collection.SortValueAsc
	case "value_desc", "desc":
		q.Sort = collection.SortValueDesc
	default:
		q.Sort = collection.SortRecent
	}
	return q
}

func (h *Handlers) parseDay(v string) (time.Time, bool) {
	if v == "" {
		return time.Time{}, false
	}
	t, err := time.ParseInLocation("2006-01-02", v, h.loc)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

func atoiDefault(v string, def int) int {
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 1 {
		return def
	}
	return n
}

package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/lokaclean/backoffice/internal/collection"
	"github.com/lokaclean/backoffice/internal/domain"
	"github.com/lokaclean/backoffice/internal/response"
	"github.com/lokaclean/backoffice/internal/upstream"
)

// ratingFields: the secondary filter is the exact score ("5", "4", ...),
// the value sorts use the score itself.
func ratingFields() collection.Fields[domain.Rating] {
	return collection.Fields[domain.Rating]{
		SearchText: func(r domain.Rating) []string {
			return []string{r.ID, r.OrderID, r.UserName, r.Comment}
		},
		Status:    func(r domain.Rating) string { return "" },
		Secondary: func(r domain.Rating) string { return strconv.Itoa(r.Score) },
		CreatedAt: func(r domain.Rating) (time.Time, bool) {
			t, err := time.Parse(time.RFC3339, r.CreatedAt)
			return t, err == nil
		},
		Value: func(r domain.Rating) float64 { return float64(r.Score) },
	}
}

// ListRatings fetches all ratings wholesale and shapes the visible page.
func (h *Handlers) ListRatings(c *gin.Context) {
	ratings, err := h.up.ListRatings(c.Request.Context(), token(c), upstream.ListQuery{})
	if err != nil {
		h.upstreamError(c, err)
		return
	}

	page := collection.Apply(ratings, h.listQuery(c, "rating_value"), ratingFields())
	response.Success(c, http.StatusOK, "", page)
}

package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"golang.org/x/sync/errgroup"

	"github.com/lokaclean/backoffice/internal/domain"
	"github.com/lokaclean/backoffice/internal/response"
	"github.com/lokaclean/backoffice/internal/upstream"
)

// Summary is the dashboard landing card: orders, ratings and the ratings
// aggregate are fetched concurrently and combined only after all three
// succeed. One failure fails the whole card; nothing partial is rendered.
func (h *Handlers) Summary(c *gin.Context) {
	tok := token(c)

	var (
		orders  []domain.Order
		ratings []domain.Rating
		summary *upstream.RatingsSummary
	)

	g, ctx := errgroup.WithContext(c.Request.Context())
	g.Go(func() error {
		var err error
		orders, err = h.up.ListOrders(ctx, tok, upstream.ListQuery{})
		return err
	})
	g.Go(func() error {
		var err error
		ratings, err = h.up.ListRatings(ctx, tok, upstream.ListQuery{})
		return err
	})
	g.Go(func() error {
		var err error
		summary, err = h.up.RatingsSummary(ctx, tok)
		return err
	})
	if err := g.Wait(); err != nil {
		h.upstreamError(c, err)
		return
	}

	byStatus := make(map[domain.OrderStatus]int)
	for _, o := range orders {
		byStatus[o.Status]++
	}

	response.Success(c, http.StatusOK, "", gin.H{
		"orders": gin.H{
			"total":     len(orders),
			"by_status": byStatus,
		},
		"ratings": gin.H{
			"total":   len(ratings),
			"summary": summary,
		},
		"new_orders": h.feed.DrainNewOrders(),
	})
}

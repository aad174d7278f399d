package handlers

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/lokaclean/backoffice/internal/collection"
	"github.com/lokaclean/backoffice/internal/domain"
	"github.com/lokaclean/backoffice/internal/response"
	"github.com/lokaclean/backoffice/internal/upstream"
)

// orderFields adapts orders to the collection pipeline. The secondary
// filter is the payment status; the value sorts use creation time, so
// value_asc is oldest-first.
func orderFields() collection.Fields[domain.Order] {
	return collection.Fields[domain.Order]{
		SearchText: func(o domain.Order) []string {
			fields := []string{o.ID, o.Address, o.Notes}
			if o.User != nil {
				fields = append(fields, o.User.Name, o.User.Phone)
			}
			if o.Package != nil {
				fields = append(fields, o.Package.Name)
			}
			return fields
		},
		Status: func(o domain.Order) string { return string(o.Status) },
		Secondary: func(o domain.Order) string {
			if o.Payment == nil {
				return string(domain.PaymentUnpaid)
			}
			return string(o.Payment.Status)
		},
		CreatedAt: parseOrderTime,
		Value: func(o domain.Order) float64 {
			t, ok := parseOrderTime(o)
			if !ok {
				return 0
			}
			return float64(t.UnixMilli())
		},
	}
}

func parseOrderTime(o domain.Order) (time.Time, bool) {
	t, err := time.Parse(time.RFC3339, o.CreatedAt)
	return t, err == nil
}

// ListOrders fetches the full order list from the core API and computes the
// visible page in memory.
func (h *Handlers) ListOrders(c *gin.Context) {
	orders, err := h.up.ListOrders(c.Request.Context(), token(c), upstream.ListQuery{})
	if err != nil {
		h.upstreamError(c, err)
		return
	}

	page := collection.Apply(orders, h.listQuery(c, "payment_status"), orderFields())
	response.Success(c, http.StatusOK, "", page)
}

type assignRequest struct {
	CleanerID string `json:"cleaner_id" binding:"required"`
}

// AssignCleaner assigns a cleaner upstream, then refetches the list
// wholesale; the dashboard never patches an order in place.
func (h *Handlers) AssignCleaner(c *gin.Context) {
	orderID := strings.TrimSpace(c.Param("id"))
	if orderID == "" {
		response.Error(c, http.StatusBadRequest, "order id is required")
		return
	}
	var req assignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "cleaner_id is required")
		return
	}

	if err := h.up.AssignCleaner(c.Request.Context(), token(c), orderID, req.CleanerID); err != nil {
		h.upstreamError(c, err)
		return
	}

	orders, err := h.up.ListOrders(c.Request.Context(), token(c), upstream.ListQuery{})
	if err != nil {
		h.upstreamError(c, err)
		return
	}
	page := collection.Apply(orders, h.listQuery(c, "payment_status"), orderFields())
	response.Success(c, http.StatusOK, "cleaner assigned", page)
}

// DeleteOrder deletes upstream and refetches wholesale.
func (h *Handlers) DeleteOrder(c *gin.Context) {
	orderID := strings.TrimSpace(c.Param("id"))
	if orderID == "" {
		response.Error(c, http.StatusBadRequest, "order id is required")
		return
	}

	if err := h.up.DeleteOrder(c.Request.Context(), token(c), orderID); err != nil {
		h.upstreamError(c, err)
		return
	}

	orders, err := h.up.ListOrders(c.Request.Context(), token(c), upstream.ListQuery{})
	if err != nil {
		h.upstreamError(c, err)
		return
	}
	page := collection.Apply(orders, h.listQuery(c, "payment_status"), orderFields())
	response.Success(c, http.StatusOK, "order deleted", page)
}

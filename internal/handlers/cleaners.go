package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/lokaclean/backoffice/internal/response"
)

// CleanerLocations serves the live map. The feed snapshot is the source of
// truth; a wholesale refetch happens on the first request or when the
// client asks for ?refresh=1. A refetch overwrites pushed positions that
// arrived while it was in flight: last write wins, there is no versioning.
func (h *Handlers) CleanerLocations(c *gin.Context) {
	snapshot, loaded := h.feed.Snapshot()
	if !loaded || c.Query("refresh") == "1" {
		cleaners, err := h.up.ListCleanerLocations(c.Request.Context(), token(c))
		if err != nil {
			h.upstreamError(c, err)
			return
		}
		h.feed.Replace(cleaners)
		snapshot, _ = h.feed.Snapshot()
	}

	response.Success(c, http.StatusOK, "", gin.H{
		"items":      snapshot,
		"new_orders": h.feed.DrainNewOrders(),
	})
}

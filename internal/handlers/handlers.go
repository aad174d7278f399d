// HTTP handlers of the gateway: customer auth flows and the operator
// dashboard. Lists are fetched wholesale from the core API and shaped in
// memory; mutations go upstream and are followed by a wholesale refetch.
package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/lokaclean/backoffice/internal/domain"
	"github.com/lokaclean/backoffice/internal/live"
	"github.com/lokaclean/backoffice/internal/middleware"
	"github.com/lokaclean/backoffice/internal/response"
	"github.com/lokaclean/backoffice/internal/security"
	"github.com/lokaclean/backoffice/internal/session"
	"github.com/lokaclean/backoffice/internal/upstream"
)

type Handlers struct {
	up        *upstream.Client
	sessions  *session.Manager
	jwt       *security.JWTManager
	feed      *live.Feed
	loc       *time.Location
	countryCC string
	logger    *zap.Logger
}

func New(up *upstream.Client, sessions *session.Manager, jwtm *security.JWTManager,
	feed *live.Feed, loc *time.Location, countryCode string, logger *zap.Logger) *Handlers {
	if loc == nil {
		loc = time.UTC
	}
	return &Handlers{
		up:        up,
		sessions:  sessions,
		jwt:       jwtm,
		feed:      feed,
		loc:       loc,
		countryCC: countryCode,
		logger:    logger,
	}
}

// token returns the upstream bearer token the auth middleware stored.
func token(c *gin.Context) string {
	return c.GetString(middleware.CtxUpstreamToken)
}

// upstreamError maps a failed core API call onto the response envelope.
// 401 is the one globally handled class: the session is torn down and the
// client is told where to log back in. Everything else becomes an inline
// error banner for the page that asked.
func (h *Handlers) upstreamError(c *gin.Context, err error) {
	if errors.Is(err, upstream.ErrUnauthorized) {
		actor := domain.Actor(c.GetString(middleware.CtxActor))
		if sid := c.GetString(middleware.CtxSessionID); sid != "" {
			if derr := h.sessions.Destroy(c.Request.Context(), sid); derr != nil {
				h.logger.Warn("session teardown failed", zap.Error(derr))
			}
		}
		response.ErrorWithData(c, http.StatusUnauthorized, "session expired",
			gin.H{"login": middleware.LoginRouteFor(actor)})
		return
	}

	var apiErr *upstream.APIError
	if errors.As(err, &apiErr) {
		response.Error(c, apiErr.Code, apiErr.Message)
		return
	}

	if errors.Is(err, upstream.ErrBadEnvelope) {
		h.logger.Error("bad upstream envelope", zap.Error(err))
		response.Error(c, http.StatusBadGateway, "unexpected response from core service")
		return
	}

	h.logger.Error("upstream call failed", zap.Error(err))
	response.Error(c, http.StatusBadGateway, "core service unavailable")
}

func (h *Handlers) Health(c *gin.Context) {
	response.Success(c, http.StatusOK, "", gin.H{"status": "up"})
}

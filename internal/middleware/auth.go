// Middleware: Authorization: Bearer <gateway JWT>, session lookup, optional
// role gate. A failed check answers 401 and tells the client which login
// route fits the actor it claimed to be.
package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/lokaclean/backoffice/internal/domain"
	"github.com/lokaclean/backoffice/internal/response"
	"github.com/lokaclean/backoffice/internal/security"
	"github.com/lokaclean/backoffice/internal/session"
)

const (
	HeaderAuthorization = "Authorization"
	bearerPrefix        = "Bearer "
)

// LoginRouteFor maps an actor to the SPA route the client should navigate
// to after a session teardown.
func LoginRouteFor(actor domain.Actor) string {
	if actor == domain.ActorAdmin {
		return "/admin/login"
	}
	return "/login"
}

// RequireSession validates the bearer token, loads the session and puts
// session id, actor and the upstream token on the context. requiredActor ==
// "" accepts any actor.
func RequireSession(jwtm *security.JWTManager, sessions *session.Manager, requiredActor domain.Actor) gin.HandlerFunc {
	return func(c *gin.Context) {
		raw := c.GetHeader(HeaderAuthorization)
		if !strings.HasPrefix(raw, bearerPrefix) {
			unauthorized(c, requiredActor)
			return
		}
		token := strings.TrimPrefix(raw, bearerPrefix)
		if token == "" {
			unauthorized(c, requiredActor)
			return
		}

		sid, actor, err := jwtm.Parse(token)
		if err != nil {
			unauthorized(c, requiredActor)
			return
		}
		if requiredActor != "" && actor != requiredActor {
			response.AbortWithError(c, http.StatusForbidden, "insufficient role")
			return
		}

		s, err := sessions.Load(c.Request.Context(), sid)
		if err != nil {
			unauthorized(c, actor)
			return
		}

		c.Set(CtxSessionID, s.ID)
		c.Set(CtxActor, string(s.Actor))
		c.Set(CtxUpstreamToken, s.Token)
		c.Next()
	}
}

func unauthorized(c *gin.Context, actor domain.Actor) {
	response.AbortWithData(c, http.StatusUnauthorized, "authentication required",
		gin.H{"login": LoginRouteFor(actor)})
}

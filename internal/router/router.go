// Router: gin assembly with recovery, CORS, request id/logging, the public
// auth group and the JWT-gated actor groups.
package router

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/lokaclean/backoffice/internal/domain"
	"github.com/lokaclean/backoffice/internal/handlers"
	"github.com/lokaclean/backoffice/internal/middleware"
	"github.com/lokaclean/backoffice/internal/security"
	"github.com/lokaclean/backoffice/internal/session"
)

// Dependencies is everything the route tree needs.
type Dependencies struct {
	Handlers    *handlers.Handlers
	JWT         *security.JWTManager
	Sessions    *session.Manager
	CORSOrigins []string
	Logger      *zap.Logger
}

// New builds the engine: recovery and CORS globally, then /api/v1 with
// request id + logging, public auth routes, session-gated user routes and
// the ADMIN-only dashboard group.
func New(deps Dependencies) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	r.Use(middleware.Recovery(deps.Logger))
	r.Use(cors.New(corsConfig(deps.CORSOrigins)))

	v1 := r.Group("/api/v1")
	v1.Use(middleware.RequestID())
	v1.Use(middleware.RequestLogger(deps.Logger))

	v1.GET("/health", deps.Handlers.Health)

	auth := v1.Group("/auth")
	{
		auth.POST("/register", deps.Handlers.Register)
		auth.POST("/login", deps.Handlers.Login)
		auth.POST("/reset-password", deps.Handlers.ResetPassword)
	}

	// any authenticated actor
	authed := v1.Group("")
	authed.Use(middleware.RequireSession(deps.JWT, deps.Sessions, ""))
	{
		authed.POST("/auth/logout", deps.Handlers.Logout)
		authed.GET("/theme", deps.Handlers.ThemeSuggestion)
		authed.POST("/theme/usage", deps.Handlers.RecordUsage)
	}

	admin := v1.Group("/admin")
	admin.Use(middleware.RequireSession(deps.JWT, deps.Sessions, domain.ActorAdmin))
	{
		admin.GET("/summary", deps.Handlers.Summary)
		admin.GET("/orders", deps.Handlers.ListOrders)
		admin.POST("/orders/:id/assign", deps.Handlers.AssignCleaner)
		admin.DELETE("/orders/:id", deps.Handlers.DeleteOrder)
		admin.GET("/ratings", deps.Handlers.ListRatings)
		admin.GET("/cleaners/locations", deps.Handlers.CleanerLocations)
	}

	return r
}

func corsConfig(origins []string) cors.Config {
	cfg := cors.Config{
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", middleware.HeaderXRequestID},
		ExposeHeaders:    []string{middleware.HeaderXRequestID},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	if len(origins) == 1 && origins[0] == "*" {
		cfg.AllowAllOrigins = true
		cfg.AllowCredentials = false
	} else {
		cfg.AllowOrigins = origins
	}
	return cfg
}

package infra

import (
	goredis "github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/lokaclean/backoffice/internal/config"
	"github.com/lokaclean/backoffice/internal/live"
	"github.com/lokaclean/backoffice/internal/redis"
	"github.com/lokaclean/backoffice/internal/security"
	"github.com/lokaclean/backoffice/internal/session"
	"github.com/lokaclean/backoffice/internal/upstream"
)

// Infra bundles the process-wide dependencies: redis, the core API client,
// the session manager, the gateway JWT manager and the live feed.
type Infra struct {
	Redis    *goredis.Client
	Upstream *upstream.Client
	Sessions *session.Manager
	JWT      *security.JWTManager
	Feed     *live.Feed
}

func New(cfg *config.Config, logger *zap.Logger) (*Infra, error) {
	rdb, err := redis.New(cfg.Redis)
	if err != nil {
		return nil, err
	}

	i := &Infra{
		Redis:    rdb,
		Upstream: upstream.New(cfg.Upstream.BaseURL, cfg.Upstream.Timeout),
		Sessions: session.NewManager(session.NewRedisStore(rdb, cfg.Security.SessionTTL)),
		JWT:      security.NewJWTManager(cfg.Security.JWTSecret, cfg.Security.AccessTTL),
		Feed:     live.NewFeed(),
	}
	logger.Info("infra ready")
	return i, nil
}

func (i *Infra) Close() {
	if i == nil {
		return
	}
	if i.Redis != nil {
		_ = i.Redis.Close()
	}
}

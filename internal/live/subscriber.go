package live

import (
	"context"
	"encoding/json"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// Channel names published by the core platform.
const (
	ChannelCleanerLocation = "cleaners:location"
	ChannelNewOrder        = "orders:new"
)

// Subscriber pipes the pub/sub channels into a Feed.
type Subscriber struct {
	rdb    *redis.Client
	feed   *Feed
	logger *zap.Logger
}

func NewSubscriber(rdb *redis.Client, feed *Feed, logger *zap.Logger) *Subscriber {
	return &Subscriber{rdb: rdb, feed: feed, logger: logger}
}

// Run blocks until ctx is done, consuming pushed events. Malformed payloads
// are logged and skipped; they never take the subscriber down.
func (s *Subscriber) Run(ctx context.Context) error {
	sub := s.rdb.Subscribe(ctx, ChannelCleanerLocation, ChannelNewOrder)
	defer func() { _ = sub.Close() }()

	ch := sub.Channel()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case msg, ok := <-ch:
			if !ok {
				return nil
			}
			s.handle(msg)
		}
	}
}

func (s *Subscriber) handle(msg *redis.Message) {
	switch msg.Channel {
	case ChannelNewOrder:
		s.feed.NoteNewOrder()
		s.logger.Info("new order pushed")
	case ChannelCleanerLocation:
		var upd LocationUpdate
		if err := json.Unmarshal([]byte(msg.Payload), &upd); err != nil {
			s.logger.Warn("bad location payload", zap.Error(err))
			return
		}
		if upd.UserID == "" {
			s.logger.Warn("location payload without user_id")
			return
		}
		if !s.feed.Apply(upd) {
			// cleaner not loaded yet; the next wholesale fetch will pick it up
			s.logger.Debug("location for unknown cleaner", zap.String("user_id", upd.UserID))
		}
	}
}

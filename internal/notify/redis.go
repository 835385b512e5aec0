package notify

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

// Publisher is the subset of the redis client used to publish notifications.
type Publisher interface {
	Publish(ctx context.Context, channel string, message interface{}) *redis.IntCmd
}

// Redis publishes notifications as JSON on a pub/sub channel so that an
// external toast surface can display them.
type Redis struct {
	rdb     Publisher
	channel string
	timeout time.Duration
	log     *slog.Logger
	wg      sync.WaitGroup
}

// NewRedis returns a notifier publishing on channel. Publishing happens in
// the background; errors are logged and otherwise ignored.
func NewRedis(rdb Publisher, channel string, log *slog.Logger) *Redis {
	if log == nil {
		log = slog.Default()
	}
	return &Redis{rdb: rdb, channel: channel, timeout: 2 * time.Second, log: log}
}

func (r *Redis) Notify(n Notification) {
	b, err := Encode(n)
	if err != nil {
		r.log.Error("notify: encode notification", "error", err)
		return
	}
	r.wg.Add(1)
	go func() {
		defer r.wg.Done()
		ctx, cancel := context.WithTimeout(context.Background(), r.timeout)
		defer cancel()
		if err := r.rdb.Publish(ctx, r.channel, b).Err(); err != nil {
			r.log.Warn("notify: redis publish failed", "channel", r.channel, "error", err)
		}
	}()
}

// Wait blocks until every publish started by Notify has finished.
func (r *Redis) Wait() {
	r.wg.Wait()
}

// Encode returns the wire form of a notification.
func Encode(n Notification) ([]byte, error) {
	return json.Marshal(n)
}

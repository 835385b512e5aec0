package cmd

import (
	"log/slog"

	"startyparty-news/internal/browser"
	"startyparty-news/internal/config"
	"startyparty-news/internal/feed"
	"startyparty-news/internal/notify"
	"startyparty-news/internal/presenter"

	"github.com/redis/go-redis/v9"
)

func newRedisClient(cfg config.RedisConfig) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Username: cfg.Username,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
}

// notifierFor combines surface with the log notifier and, when a redis
// channel is configured, the redis publisher. The returned func releases
// the redis connection.
func notifierFor(cfg config.Config, log *slog.Logger, surface notify.Notifier) (notify.Notifier, func()) {
	n := notify.Multi{notify.Log{Logger: log}, surface}
	if cfg.Redis.Channel == "" {
		return n, func() {}
	}
	rdb := newRedisClient(cfg.Redis)
	log.Info("notify: publishing toasts to redis", "addr", cfg.Redis.Addr, "channel", cfg.Redis.Channel)
	pub := notify.NewRedis(rdb, cfg.Redis.Channel, log)
	n = append(n, pub)
	return n, func() {
		pub.Wait()
		_ = rdb.Close()
	}
}

// newPresenter wires the fetcher and presenter for one load cycle.
func newPresenter(cfg config.Config, log *slog.Logger, n notify.Notifier, o browser.Opener) *presenter.Presenter {
	fetcher := feed.NewFetcher(cfg.API.URL, n, log)
	return presenter.New(fetcher, n, o,
		presenter.WithIconsBase(cfg.Icons.BaseURL),
		presenter.WithFallbackIcon(cfg.Icons.Fallback),
		presenter.WithLogger(log),
	)
}

package cmd

import (
	"context"
	"fmt"
	"time"

	"startyparty-news/internal/notify"

	"github.com/spf13/cobra"
)

// redisCmd groups commands for the redis toast channel.
var redisCmd = &cobra.Command{
	Use:   "redis",
	Short: "Redis toast channel utilities",
}

// pingCmd checks the broker and reports where toasts are published.
var pingCmd = &cobra.Command{
	Use:   "ping",
	Short: "Ping Redis and print PONG",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := GetConfig()

		rdb := newRedisClient(cfg.Redis)
		defer rdb.Close()

		ctx, cancel := context.WithTimeout(cmd.Context(), 2*time.Second)
		defer cancel()

		res, err := rdb.Ping(ctx).Result()
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), res)
		if cfg.Redis.Channel == "" {
			fmt.Fprintln(cmd.OutOrStdout(), "toast channel: disabled (set redis.channel)")
		} else {
			fmt.Fprintf(cmd.OutOrStdout(), "toast channel: %s\n", cfg.Redis.Channel)
		}
		return nil
	},
}

// sendCmd publishes a test toast to the configured channel.
var sendCmd = &cobra.Command{
	Use:   "send <title> [body]",
	Short: "Publish a test toast on the redis channel",
	Args:  cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := GetConfig()
		if cfg.Redis.Channel == "" {
			return fmt.Errorf("redis.channel is not set")
		}
		rdb := newRedisClient(cfg.Redis)
		defer rdb.Close()

		n := notify.Notification{Severity: notify.SeverityInfo, Title: args[0]}
		if len(args) == 2 {
			n.Body = args[1]
		}
		b, err := notify.Encode(n)
		if err != nil {
			return err
		}
		ctx, cancel := context.WithTimeout(cmd.Context(), 2*time.Second)
		defer cancel()
		receivers, err := rdb.Publish(ctx, cfg.Redis.Channel, b).Result()
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "published to %s (%d receivers)\n", cfg.Redis.Channel, receivers)
		return nil
	},
}

func init() {
	redisCmd.AddCommand(pingCmd, sendCmd)
	rootCmd.AddCommand(redisCmd)
}

package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"scratchcard-backend/internal/common/logger"
)

// Options selects the Redis instance holding the game state.
type Options struct {
	Addr     string
	Password string
	DB       int
}

// Client is a go-redis client bound to one state database.
type Client struct {
	*redis.Client
	addr string
}

// Open connects and pings so a bad address fails at startup, not on the first draw.
func Open(ctx context.Context, opts Options) (*Client, error) {
	if opts.Addr == "" {
		return nil, fmt.Errorf("empty redis addr")
	}
	c := redis.NewClient(&redis.Options{
		Addr:         opts.Addr,
		Password:     opts.Password,
		DB:           opts.DB,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := c.Ping(pingCtx).Err(); err != nil {
		_ = c.Close()
		return nil, fmt.Errorf("ping redis %s: %w", opts.Addr, err)
	}

	logger.Info().Str("addr", opts.Addr).Int("db", opts.DB).Msg("Redis connection established")
	return &Client{Client: c, addr: opts.Addr}, nil
}

// Addr returns the address the client was opened with.
func (c *Client) Addr() string {
	return c.addr
}

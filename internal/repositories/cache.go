package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"strings"
	"sync/atomic"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/rohits-web03/folio/internal/models"
)

const (
	portfolioKeyPrefix = "portfolio:"
	versionKeyPrefix   = "portfolio:ver:"
	userCardsKey       = "portfolio:users"
	userCardsVerKey    = "portfolio:ver:users"
)

// PortfolioCache holds rendered composites keyed by username. A nil cache, or one whose
// Redis went away, behaves as a permanent miss.
type PortfolioCache struct {
	client *redis.Client
	ttl    time.Duration

	warnedUnavailable atomic.Bool
}

// Cache is nil unless REDIS_URL is set and reachable at startup.
var Cache *PortfolioCache

func InitCache(url string, ttl time.Duration) error {
	if url == "" {
		slog.Info("REDIS_URL not set, portfolio cache disabled")
		return nil
	}
	opts, err := redis.ParseURL(url)
	if err != nil {
		return err
	}
	client := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		slog.Warn("Redis unavailable, bypassing portfolio cache", slog.Any("error", err))
		_ = client.Close()
		return nil
	}

	Cache = NewPortfolioCache(client, ttl)
	slog.Info("Portfolio cache enabled", slog.Duration("ttl", ttl))
	return nil
}

func NewPortfolioCache(client *redis.Client, ttl time.Duration) *PortfolioCache {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	return &PortfolioCache{client: client, ttl: ttl}
}

func (c *PortfolioCache) unavailable() bool {
	return c == nil || c.client == nil
}

func (c *PortfolioCache) warnOnce(err error) {
	if c.warnedUnavailable.CompareAndSwap(false, true) {
		slog.Warn("Portfolio cache error, continuing without it", slog.Any("error", err))
	}
}

func portfolioKey(username string) string {
	return portfolioKeyPrefix + strings.ToLower(username)
}

func versionKey(username string) string {
	return versionKeyPrefix + strings.ToLower(username)
}

func (c *PortfolioCache) GetPortfolio(ctx context.Context, username string) (*models.Portfolio, bool) {
	var p models.Portfolio
	if !c.getJSON(ctx, portfolioKey(username), &p) {
		return nil, false
	}
	return &p, true
}

// PortfolioVersion is read before loading from the database and handed back to
// SetPortfolio, which skips the write if an Invalidate happened in between.
func (c *PortfolioCache) PortfolioVersion(ctx context.Context, username string) int64 {
	return c.version(ctx, versionKey(username))
}

func (c *PortfolioCache) SetPortfolio(ctx context.Context, p models.Portfolio, version int64) {
	c.setJSON(ctx, portfolioKey(p.Username), versionKey(p.Username), version, p)
}

func (c *PortfolioCache) GetUserCards(ctx context.Context) ([]models.UserCard, bool) {
	var cards []models.UserCard
	if !c.getJSON(ctx, userCardsKey, &cards) {
		return nil, false
	}
	return cards, true
}

func (c *PortfolioCache) UserCardsVersion(ctx context.Context) int64 {
	return c.version(ctx, userCardsVerKey)
}

func (c *PortfolioCache) SetUserCards(ctx context.Context, cards []models.UserCard, version int64) {
	c.setJSON(ctx, userCardsKey, userCardsVerKey, version, cards)
}

// Invalidate drops everything derived from the user's records and bumps their
// versions, so readers that loaded before the write cannot store what they read.
func (c *PortfolioCache) Invalidate(ctx context.Context, username string) {
	if c.unavailable() {
		return
	}
	_, err := c.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Incr(ctx, versionKey(username))
		pipe.Incr(ctx, userCardsVerKey)
		pipe.Del(ctx, portfolioKey(username), userCardsKey)
		return nil
	})
	if err != nil {
		c.warnOnce(err)
	}
}

func (c *PortfolioCache) version(ctx context.Context, key string) int64 {
	if c.unavailable() {
		return 0
	}
	v, err := c.client.Get(ctx, key).Int64()
	if err != nil && !errors.Is(err, redis.Nil) {
		c.warnOnce(err)
	}
	return v
}

func (c *PortfolioCache) getJSON(ctx context.Context, key string, out any) bool {
	if c.unavailable() {
		return false
	}
	b, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			c.warnOnce(err)
		}
		return false
	}
	return len(b) > 0 && json.Unmarshal(b, out) == nil
}

// setJSON stores value under key only while verKey still holds version.
func (c *PortfolioCache) setJSON(ctx context.Context, key, verKey string, version int64, value any) {
	if c.unavailable() {
		return
	}
	b, err := json.Marshal(value)
	if err != nil {
		return
	}
	err = c.client.Watch(ctx, func(tx *redis.Tx) error {
		current, err := tx.Get(ctx, verKey).Int64()
		if err != nil && !errors.Is(err, redis.Nil) {
			return err
		}
		if current != version {
			return errStaleVersion
		}
		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, key, b, c.ttl)
			return nil
		})
		return err
	}, verKey)
	switch {
	case err == nil, errors.Is(err, errStaleVersion), errors.Is(err, redis.TxFailedErr):
	default:
		c.warnOnce(err)
	}
}

var errStaleVersion = errors.New("cache version moved")

func (c *PortfolioCache) Close() error {
	if c.unavailable() {
		return nil
	}
	return c.client.Close()
}

package persistence

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/pushpakoirala/portfolio-api/internal/domain/project"
	"github.com/pushpakoirala/portfolio-api/pkg/logger"
)

const (
	visibleProjectsKey = "portfolio:projects:visible"
	visibleProjectsTTL = 5 * time.Minute

	contactRateKeyPrefix = "portfolio:contact:rate:"
	contactRateWindow    = time.Hour
	contactRateLimit     = 10
)

// PublicCache fronts the read-heavy public endpoints. A cache miss or a
// Redis outage falls through to Postgres.
type PublicCache struct {
	rdb    *redis.Client
	logger logger.Logger
}

func NewPublicCache(rdb *redis.Client, log logger.Logger) *PublicCache {
	return &PublicCache{rdb: rdb, logger: log}
}

func (c *PublicCache) GetVisibleProjects(ctx context.Context) ([]*project.Project, bool) {
	raw, err := c.rdb.Get(ctx, visibleProjectsKey).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			c.logger.Warn("redis get failed", zap.Error(err))
		}
		return nil, false
	}

	var projects []*project.Project
	if err := json.Unmarshal(raw, &projects); err != nil {
		c.logger.Warn("stale visible-projects cache entry", zap.Error(err))
		return nil, false
	}
	return projects, true
}

func (c *PublicCache) SetVisibleProjects(ctx context.Context, projects []*project.Project) {
	raw, err := json.Marshal(projects)
	if err != nil {
		return
	}
	if err := c.rdb.Set(ctx, visibleProjectsKey, raw, visibleProjectsTTL).Err(); err != nil {
		c.logger.Warn("redis set failed", zap.Error(err))
	}
}

// InvalidateProjects is called after every project mutation so the public
// listing never serves a deleted or re-hidden record for longer than one
// request.
func (c *PublicCache) InvalidateProjects(ctx context.Context) {
	if err := c.rdb.Del(ctx, visibleProjectsKey).Err(); err != nil {
		c.logger.Warn("redis del failed", zap.Error(err))
	}
}

// AllowContactFrom enforces the per-IP contact form quota. Redis being
// down fails open, a lost throttle is better than a dead contact form.
func (c *PublicCache) AllowContactFrom(ctx context.Context, ip string) bool {
	key := contactRateKeyPrefix + ip
	count, err := c.rdb.Incr(ctx, key).Result()
	if err != nil {
		c.logger.Warn("redis incr failed", zap.Error(err))
		return true
	}
	if count == 1 {
		if err := c.rdb.Expire(ctx, key, contactRateWindow).Err(); err != nil {
			c.logger.Warn(fmt.Sprintf("redis expire failed for %s", key), zap.Error(err))
		}
	}
	return count <= contactRateLimit
}

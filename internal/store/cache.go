package store

import (
	"time"

	"github.com/filetransfer/filetransfer_api/internal/models"
	"github.com/google/uuid"
	"github.com/hashicorp/golang-lru/v2/expirable"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	userCacheHits = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "filetransfer",
		Subsystem: "store",
		Name:      "user_cache_hits_total",
		Help:      "Number of user lookups served from the in-memory cache.",
	})
	userCacheMisses = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "filetransfer",
		Subsystem: "store",
		Name:      "user_cache_misses_total",
		Help:      "Number of user lookups that went to the database.",
	})
)

// userCache keeps recently seen users so that file and ledger listings do
// not reload the same owners on every page. A nil cache is valid and never
// hits.
type userCache struct {
	lru *expirable.LRU[uuid.UUID, models.User]
}

func newUserCache(size int, ttl time.Duration) *userCache {
	if size <= 0 {
		return nil
	}
	return &userCache{lru: expirable.NewLRU[uuid.UUID, models.User](size, nil, ttl)}
}

func (c *userCache) get(id uuid.UUID) (models.User, bool) {
	if c == nil {
		return models.User{}, false
	}

	user, ok := c.lru.Get(id)
	if ok {
		userCacheHits.Inc()
		return user, true
	}
	userCacheMisses.Inc()
	return models.User{}, false
}

func (c *userCache) add(user models.User) {
	if c == nil {
		return
	}
	c.lru.Add(user.ID, user)
}

func (c *userCache) remove(id uuid.UUID) {
	if c == nil {
		return
	}
	c.lru.Remove(id)
}

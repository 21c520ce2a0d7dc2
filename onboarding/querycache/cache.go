package querycache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/stationhealth/onboarding-api/log"
)

// Cache holds query results under "<endpoint>:<key>". Nothing is invalidated
// implicitly; callers invalidate after the mutations they know about.
type Cache struct {
	kv  KV
	ttl time.Duration
}

func New(kv KV, ttl time.Duration) *Cache {
	if kv == nil {
		kv = NewMemoryKV()
	}
	return &Cache{kv: kv, ttl: ttl}
}

// An Endpoint describes one cacheable query. Key derives the cache key from
// the arguments; when nil the JSON encoding of the arguments is used.
type Endpoint[A, R any] struct {
	Name  string
	Key   func(args A) (string, error)
	Fetch func(ctx context.Context, args A) (R, error)
}

// CacheKey returns the full key the endpoint stores args under.
func (e Endpoint[A, R]) CacheKey(args A) (string, error) {
	keyFn := e.Key
	if keyFn == nil {
		keyFn = JSONKey[A]
	}
	k, err := keyFn(args)
	if err != nil {
		return "", errors.Wrapf(err, "failed to derive cache key for %s", e.Name)
	}
	return fmt.Sprintf("%s:%s", e.Name, k), nil
}

// JSONKey is the default key derivation.
func JSONKey[A any](args A) (string, error) {
	b, err := json.Marshal(args)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// Query returns the cached result for args, fetching and storing it on a miss.
// Cache failures are logged and fall through to Fetch.
func Query[A, R any](ctx context.Context, c *Cache, e Endpoint[A, R], args A) (R, error) {
	var result R

	key, err := e.CacheKey(args)
	if err != nil {
		return result, err
	}

	logger := log.API.WithFields(logrus.Fields{"endpoint": e.Name, "cache_key": key})

	data, err := c.kv.Get(ctx, key)
	switch {
	case err == nil:
		if err := json.Unmarshal(data, &result); err == nil {
			return result, nil
		}
		logger.Warn("Discarding undecodable cache entry")
	case !errors.Is(err, ErrMiss):
		logger.Warnf("Query cache read failed: %s", err.Error())
	}

	result, err = e.Fetch(ctx, args)
	if err != nil {
		return result, err
	}

	if data, err := json.Marshal(result); err != nil {
		logger.Warnf("Query result not cached: %s", err.Error())
	} else if err := c.kv.Set(ctx, key, data, c.ttl); err != nil {
		logger.Warnf("Query cache write failed: %s", err.Error())
	}

	return result, nil
}

// Invalidate drops every cached result of the endpoint.
func (c *Cache) Invalidate(ctx context.Context, endpoint string) error {
	keys, err := c.kv.ScanKeys(ctx, endpoint+":")
	if err != nil {
		return errors.Wrapf(err, "failed to list cache keys for %s", endpoint)
	}
	return c.kv.Delete(ctx, keys...)
}

// InvalidateKey drops the single result stored for args.
func InvalidateKey[A, R any](ctx context.Context, c *Cache, e Endpoint[A, R], args A) error {
	key, err := e.CacheKey(args)
	if err != nil {
		return err
	}
	return c.kv.Delete(ctx, key)
}

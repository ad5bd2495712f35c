package logic

import (
	"context"
	"diasposter/dto"
	"diasposter/shared"
	"encoding/json"
	"errors"
	"github.com/hashicorp/golang-lru/v2/expirable"
	"github.com/redis/go-redis/v9"
	"strings"
	"time"
)

//go:generate mockgen --build_flags=--mod=mod -destination ../test/mocks/mock_remote_cache.go -package mocks diasposter/logic IRemoteCache

const (
	cacheKeyPrefix   = "diasposter:"
	cacheLruSize     = 256
	redisPingTimeout = 3 * time.Second
	kindAspects      = "aspects"
	kindServices     = "services"
	kindNotification = "notifications"
)

// IRemoteCache keeps per-account metadata from the pod: aspects, services, notifications.
// It returns the last known value, refreshing first if nothing is cached or it has expired.
type IRemoteCache interface {
	GetAspects(ctx context.Context, handle string) ([]dto.Aspect, error)
	GetServices(ctx context.Context, handle string) ([]dto.Service, error)
	GetNotifications(ctx context.Context, handle string) ([]dto.Notification, error)
	Refresh(ctx context.Context, handle string) error
}

type cacheStore interface {
	get(ctx context.Context, key string) ([]byte, bool)
	set(ctx context.Context, key string, val []byte) error
}

type lruStore struct {
	lru *expirable.LRU[string, []byte]
}

func (s *lruStore) get(_ context.Context, key string) ([]byte, bool) {
	return s.lru.Get(key)
}

func (s *lruStore) set(_ context.Context, key string, val []byte) error {
	s.lru.Add(key, val)
	return nil
}

type redisStore struct {
	client *redis.Client
	ttl    time.Duration
	logger shared.ILogger
}

func (s *redisStore) get(ctx context.Context, key string) ([]byte, bool) {
	val, err := s.client.Get(ctx, key).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			s.logger.Warnf("Redis GET %s failed: %v", key, err)
		}
		return nil, false
	}
	return val, true
}

func (s *redisStore) set(ctx context.Context, key string, val []byte) error {
	return s.client.Set(ctx, key, val, s.ttl).Err()
}

type remoteCache struct {
	cfg       *shared.Config
	logger    shared.ILogger
	connector IDiasporaConnector
	store     cacheStore
}

func NewRemoteCache(cfg *shared.Config, logger shared.ILogger, connector IDiasporaConnector) IRemoteCache {
	ttl := time.Duration(cfg.Cache.ExpireInSec) * time.Second
	var store cacheStore
	if cfg.Cache.RedisUrl != "" {
		store = connectRedis(cfg.Cache.RedisUrl, ttl, logger)
	}
	if store == nil {
		store = &lruStore{expirable.NewLRU[string, []byte](cacheLruSize, nil, ttl)}
	}
	return &remoteCache{cfg, logger, connector, store}
}

// connectRedis returns nil if the URL is invalid or the server does not answer.
func connectRedis(redisUrl string, ttl time.Duration, logger shared.ILogger) cacheStore {
	opts, err := redis.ParseURL(redisUrl)
	if err != nil {
		logger.Errorf("Invalid Redis URL, falling back to in-process cache: %v", err)
		return nil
	}
	client := redis.NewClient(opts)
	ctx, cancel := context.WithTimeout(context.Background(), redisPingTimeout)
	defer cancel()
	if err = client.Ping(ctx).Err(); err != nil {
		logger.Errorf("Redis at %s unreachable, falling back to in-process cache: %v", opts.Addr, err)
		_ = client.Close()
		return nil
	}
	logger.Infof("Caching remote metadata in Redis at %s", opts.Addr)
	return &redisStore{client, ttl, logger}
}

func cacheKey(kind, handle string) string {
	return cacheKeyPrefix + kind + ":" + strings.ToLower(handle)
}

func (rc *remoteCache) Refresh(ctx context.Context, handle string) error {

	client, err := rc.connector.Connect(handle)
	if err != nil {
		return remoteErr("connect", err)
	}
	if err = client.LogIn(ctx); err != nil {
		return remoteErr("login", err)
	}

	var aspects []dto.Aspect
	if aspects, err = client.GetAspects(ctx); err != nil {
		return remoteErr("get aspects", err)
	}
	var services []dto.Service
	if services, err = client.GetServices(ctx); err != nil {
		return remoteErr("get services", err)
	}
	var notifications []dto.Notification
	if notifications, err = client.GetNotifications(ctx, ""); err != nil {
		return remoteErr("get notifications", err)
	}

	if err = rc.put(ctx, kindAspects, handle, aspects); err != nil {
		return err
	}
	if err = rc.put(ctx, kindServices, handle, services); err != nil {
		return err
	}
	return rc.put(ctx, kindNotification, handle, notifications)
}

func (rc *remoteCache) put(ctx context.Context, kind, handle string, val any) error {
	data, err := json.Marshal(val)
	if err != nil {
		return err
	}
	if err = rc.store.set(ctx, cacheKey(kind, handle), data); err != nil {
		return storeErr("cache "+kind, err)
	}
	return nil
}

func getCached[T any](ctx context.Context, rc *remoteCache, kind, handle string) ([]T, error) {
	key := cacheKey(kind, handle)
	data, ok := rc.store.get(ctx, key)
	if !ok {
		rc.logger.Debugf("Cache miss for %s; refreshing", key)
		if err := rc.Refresh(ctx, handle); err != nil {
			return nil, err
		}
		if data, ok = rc.store.get(ctx, key); !ok {
			return nil, errors.New("value not cached after refresh: " + key)
		}
	}
	var res []T
	if err := json.Unmarshal(data, &res); err != nil {
		return nil, err
	}
	return res, nil
}

func (rc *remoteCache) GetAspects(ctx context.Context, handle string) ([]dto.Aspect, error) {
	return getCached[dto.Aspect](ctx, rc, kindAspects, handle)
}

func (rc *remoteCache) GetServices(ctx context.Context, handle string) ([]dto.Service, error) {
	return getCached[dto.Service](ctx, rc, kindServices, handle)
}

func (rc *remoteCache) GetNotifications(ctx context.Context, handle string) ([]dto.Notification, error) {
	return getCached[dto.Notification](ctx, rc, kindNotification, handle)
}

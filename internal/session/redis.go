package session

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
)

const redisTokenKey = "sm:session:token"

const redisTimeout = 5 * time.Second

// RedisStash keeps the token in Redis under a fixed key, for deployments where
// the console runs on more than one host.
type RedisStash struct {
	client *redis.Client
}

func NewRedisStash(addr, password string, db int) (*RedisStash, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	ctx, cancel := context.WithTimeout(context.Background(), redisTimeout)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, errors.Wrap(err, "failed to connect to redis")
	}
	return &RedisStash{client: client}, nil
}

func (r *RedisStash) Load() (string, error) {
	ctx, cancel := context.WithTimeout(context.Background(), redisTimeout)
	defer cancel()

	token, err := r.client.Get(ctx, redisTokenKey).Result()
	if errors.Is(err, redis.Nil) {
		return "", nil
	}
	if err != nil {
		return "", errors.Wrap(err, "failed to load session token from redis")
	}
	return token, nil
}

func (r *RedisStash) Save(token string) error {
	ctx, cancel := context.WithTimeout(context.Background(), redisTimeout)
	defer cancel()
	return errors.Wrap(r.client.Set(ctx, redisTokenKey, token, 0).Err(), "failed to save session token to redis")
}

func (r *RedisStash) Clear() error {
	ctx, cancel := context.WithTimeout(context.Background(), redisTimeout)
	defer cancel()
	return errors.Wrap(r.client.Del(ctx, redisTokenKey).Err(), "failed to clear session token from redis")
}

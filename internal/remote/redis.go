package remote

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/vovakirdan/tui-2048/internal/games/t2048/engine"
)

const defaultRedisTimeout = 2 * time.Second

// RedisOptions configures NewRedisClient.
type RedisOptions struct {
	Addr     string
	Password string
	DB       int
	PoolSize int
}

// NewRedisClient creates a go-redis client. It does not connect until first use.
func NewRedisClient(opts RedisOptions) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     opts.Addr,
		Password: opts.Password,
		DB:       opts.DB,
		PoolSize: opts.PoolSize,
	})
}

// BestKey builds the key holding a variant's best score, e.g. t2048:best:2048.
func BestKey(prefix, variant string) string {
	if prefix == "" {
		prefix = "t2048"
	}
	return fmt.Sprintf("%s:best:%s", prefix, variant)
}

// setMax stores ARGV[1] only when it beats the current value.
var setMax = redis.NewScript(`
local cur = tonumber(redis.call('GET', KEYS[1]) or '0')
local val = tonumber(ARGV[1])
if val > cur then
	redis.call('SET', KEYS[1], ARGV[1])
	return 1
end
return 0
`)

// RedisBestStore keeps a variant's best score in Redis so that every host
// serving the game shares it. It implements engine.BestStore.
type RedisBestStore struct {
	client  *redis.Client
	key     string
	timeout time.Duration
}

// NewRedisBestStore binds client to a variant's best-score key.
func NewRedisBestStore(client *redis.Client, prefix, variant string, timeout time.Duration) *RedisBestStore {
	if timeout <= 0 {
		timeout = defaultRedisTimeout
	}
	return &RedisBestStore{client: client, key: BestKey(prefix, variant), timeout: timeout}
}

// Key returns the Redis key in use.
func (s *RedisBestStore) Key() string {
	return s.key
}

// LoadBest implements engine.BestStore. A missing key is a best of 0.
func (s *RedisBestStore) LoadBest() (int, error) {
	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()

	best, err := s.client.Get(ctx, s.key).Int()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("remote: cannot load best from %s: %w", s.key, err)
	}
	return best, nil
}

// SaveBest implements engine.BestStore. A lower value never replaces a higher one.
func (s *RedisBestStore) SaveBest(best int) error {
	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()

	if err := setMax.Run(ctx, s.client, []string{s.key}, best).Err(); err != nil {
		return fmt.Errorf("remote: cannot save best to %s: %w", s.key, err)
	}
	return nil
}

var _ engine.BestStore = (*RedisBestStore)(nil)

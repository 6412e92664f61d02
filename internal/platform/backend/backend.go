// Package backend wires configuration to the persistence and sync services
// and builds games bound to them.
package backend

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/nats-io/nats.go"
	"github.com/redis/go-redis/v9"

	"github.com/vovakirdan/tui-2048/internal/config"
	"github.com/vovakirdan/tui-2048/internal/games/t2048"
	"github.com/vovakirdan/tui-2048/internal/games/t2048/engine"
	"github.com/vovakirdan/tui-2048/internal/registry"
	"github.com/vovakirdan/tui-2048/internal/remote"
	"github.com/vovakirdan/tui-2048/internal/storage"
)

// Backend owns the service connections shared by every game in the process.
// Each one is optional; games run without whatever failed to open.
type Backend struct {
	cfg    config.T2048Config
	logger *log.Logger

	store *storage.Store
	redis *redis.Client
	nats  *nats.Conn

	registry *registry.Registry
}

// Open connects the services cfg asks for. Unreachable services are logged
// and skipped, so Open only fails on an unusable config.
func Open(cfg config.T2048Config, logger *log.Logger) (*Backend, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = log.Default()
	}
	b := &Backend{cfg: cfg, logger: logger}

	switch cfg.Storage.Backend {
	case config.BackendNone:
	case config.BackendRedis:
		b.redis = remote.NewRedisClient(remote.RedisOptions{
			Addr:     cfg.Storage.Redis.Addr,
			Password: cfg.Storage.Redis.Password,
			DB:       cfg.Storage.Redis.DB,
		})
		b.openStore()
	default:
		b.openStore()
	}

	if cfg.Sync.NATSURL != "" {
		conn, err := remote.DialNATS(remote.NATSOptions{URL: cfg.Sync.NATSURL, Name: "t2048"}, logger)
		if err != nil {
			logger.Warn("score sync disabled", "error", err)
		} else {
			b.nats = conn
		}
	}

	b.registry = b.buildRegistry()
	return b, nil
}

func (b *Backend) openStore() {
	if b.cfg.Storage.DBPath == "" {
		return
	}
	store, err := storage.Open(b.cfg.Storage.DBPath)
	if err != nil {
		b.logger.Warn("could not open scores database", "error", err)
		return
	}
	b.store = store
}

// Config returns the configuration the backend was opened with.
func (b *Backend) Config() config.T2048Config {
	return b.cfg
}

// Logger returns the backend logger.
func (b *Backend) Logger() *log.Logger {
	return b.logger
}

// Store returns the score database, or nil when none is open.
func (b *Backend) Store() *storage.Store {
	return b.store
}

// NATS returns the NATS connection, or nil when sync is off.
func (b *Backend) NATS() *nats.Conn {
	return b.nats
}

// Registry returns the games bound to this backend.
func (b *Backend) Registry() *registry.Registry {
	return b.registry
}

// DefaultVariant returns the configured variant with its size and threshold overrides.
func (b *Backend) DefaultVariant() t2048.Variant {
	v, ok := t2048.FindVariant(b.cfg.Board.Variant)
	if !ok {
		v = t2048.DefaultVariant()
	}
	return v.WithOverrides(b.cfg.Board.Size, b.cfg.Board.Threshold)
}

// BestStore returns where a score key's best is persisted, or nil.
func (b *Backend) BestStore(key string) engine.BestStore {
	switch {
	case b.redis != nil:
		r := b.cfg.Storage.Redis
		return remote.NewRedisBestStore(b.redis, r.KeyPrefix, key, r.Timeout)
	case b.store != nil:
		return storage.NewBestStore(b.store, key)
	}
	return nil
}

// ScoreSync returns the sinks told about a finished game, or nil.
func (b *Backend) ScoreSync(key, player string) engine.ScoreSync {
	var sinks engine.MultiSync
	if b.store != nil {
		sinks = append(sinks, storage.NewScoreRecorder(b.store, key))
	}
	if b.nats != nil {
		sinks = append(sinks, remote.NewNATSSync(b.nats, b.cfg.Sync.Subject, key, player))
	}
	if len(sinks) == 0 {
		return nil
	}
	return sinks
}

// NewGame builds a game for variant wired to this backend.
func (b *Backend) NewGame(v t2048.Variant, env registry.Env) (*t2048.Game, error) {
	g, err := t2048.New(t2048.Options{
		Variant:         v,
		FourProbability: b.cfg.Spawn.FourProbability,
		StartTiles:      b.cfg.Spawn.StartTiles,
		Transition:      b.cfg.Animation.Transition,
		Best:            b.BestStore(v.Key),
		Sync:            b.ScoreSync(v.Key, env.Player),
		Listener:        env.Listener,
		Logger:          b.logger.With("variant", v.ID),
	})
	if err != nil {
		return nil, fmt.Errorf("backend: cannot create %s game: %w", v.ID, err)
	}
	return g, nil
}

func (b *Backend) buildRegistry() *registry.Registry {
	reg := registry.New()
	def := b.DefaultVariant()
	for _, v := range t2048.Variants {
		if v.ID == def.ID {
			v = def
		}
		reg.Register(v.ID, v.Name, func(env registry.Env) (registry.Game, error) {
			g, err := b.NewGame(v, env)
			if err != nil {
				return nil, err
			}
			return g, nil
		})
	}
	return reg
}

// Close releases every open connection.
func (b *Backend) Close() error {
	var errs []error
	if b.nats != nil {
		if err := b.nats.Drain(); err != nil {
			errs = append(errs, fmt.Errorf("backend: drain nats: %w", err))
		}
	}
	if b.redis != nil {
		if err := b.redis.Close(); err != nil {
			errs = append(errs, fmt.Errorf("backend: close redis: %w", err))
		}
	}
	if b.store != nil {
		if err := b.store.Close(); err != nil {
			errs = append(errs, fmt.Errorf("backend: close store: %w", err))
		}
	}
	return errors.Join(errs...)
}

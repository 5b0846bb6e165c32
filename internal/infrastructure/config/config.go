package config

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const (
	KeyPort             = "PORT"
	KeyCORSAllowOrigins = "CORS_ALLOW_ORIGINS"
	KeySnapshotTTL      = "SNAPSHOT_TTL"
	KeySnapshotStore    = "SNAPSHOT_STORE"
	KeyRedisAddr        = "REDIS_ADDR"
	KeyRedisPassword    = "REDIS_PASSWORD"
	KeyRedisDB          = "REDIS_DB"
	KeyRateLimitRPS     = "RATE_LIMIT_RPS"
	KeyRateLimitBurst   = "RATE_LIMIT_BURST"
	KeyPruneSchedule    = "PRUNE_SCHEDULE"
	KeyMockSeed         = "MOCK_SEED"
)

const (
	StoreMemory = "memory"
	StoreRedis  = "redis"

	defaultSnapshotTTL = 15 * time.Minute
)

// Config holds the API settings read from the environment
type Config struct {
	Port             string
	CORSAllowOrigins string
	SnapshotTTL      time.Duration
	SnapshotStore    string
	RedisAddr        string
	RedisPassword    string
	RedisDB          int
	RateLimitRPS     float64
	RateLimitBurst   int
	PruneSchedule    string
	MockSeed         uint64
}

// Load reads the configuration from environment variables, applying defaults
// for anything unset. Environment files must be loaded before calling it.
func Load() (*Config, error) {
	vp := viper.New()
	vp.AutomaticEnv()

	vp.SetDefault(KeyPort, "8080")
	vp.SetDefault(KeyCORSAllowOrigins, "http://localhost:3000")
	vp.SetDefault(KeySnapshotTTL, defaultSnapshotTTL.String())
	vp.SetDefault(KeySnapshotStore, StoreMemory)
	vp.SetDefault(KeyRedisAddr, "")
	vp.SetDefault(KeyRedisPassword, "")
	vp.SetDefault(KeyRedisDB, 0)
	vp.SetDefault(KeyRateLimitRPS, 20.0)
	vp.SetDefault(KeyRateLimitBurst, 40)
	vp.SetDefault(KeyPruneSchedule, "@every 1m")
	vp.SetDefault(KeyMockSeed, 0)

	cfg := &Config{
		Port:             vp.GetString(KeyPort),
		CORSAllowOrigins: vp.GetString(KeyCORSAllowOrigins),
		SnapshotStore:    strings.ToLower(strings.TrimSpace(vp.GetString(KeySnapshotStore))),
		RedisAddr:        vp.GetString(KeyRedisAddr),
		RedisPassword:    vp.GetString(KeyRedisPassword),
		RedisDB:          vp.GetInt(KeyRedisDB),
		RateLimitRPS:     vp.GetFloat64(KeyRateLimitRPS),
		RateLimitBurst:   vp.GetInt(KeyRateLimitBurst),
		PruneSchedule:    vp.GetString(KeyPruneSchedule),
		MockSeed:         vp.GetUint64(KeyMockSeed),
	}

	ttl, err := time.ParseDuration(vp.GetString(KeySnapshotTTL))
	if err != nil || ttl <= 0 {
		log.Printf("⚠️ Invalid %s %q, using %s", KeySnapshotTTL, vp.GetString(KeySnapshotTTL), defaultSnapshotTTL)
		ttl = defaultSnapshotTTL
	}
	cfg.SnapshotTTL = ttl

	switch cfg.SnapshotStore {
	case StoreMemory:
	case StoreRedis:
		if cfg.RedisAddr == "" {
			return nil, fmt.Errorf("%s=redis requires %s", KeySnapshotStore, KeyRedisAddr)
		}
	default:
		return nil, fmt.Errorf("unsupported %s %q", KeySnapshotStore, cfg.SnapshotStore)
	}

	return cfg, nil
}

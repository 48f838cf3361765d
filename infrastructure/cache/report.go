package cache

import (
	"context"
	"crypto/sha1"
	"encoding/hex"
	"fmt"
	"net"
	"strings"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/redis/go-redis/v9"
	"github.com/vfg2006/order-booker-api/internal/config"
	"github.com/vfg2006/order-booker-api/internal/domain"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const (
	reportKeyPrefix     = "reports"
	scanBatchSize       = 100
	defaultReportTTL    = time.Minute
	redisConnectTimeout = 5 * time.Second
)

// ReportKey identifica um relatório calculado. AsOf entra na chave porque
// as janelas de hoje e do mês dependem da data corrente.
type ReportKey struct {
	Kind    string
	AsOf    string
	Filters *domain.ReportFilters
}

type ReportCache interface {
	Get(ctx context.Context, key ReportKey, dest any) (bool, error)
	Set(ctx context.Context, key ReportKey, value any) error
	InvalidateAll(ctx context.Context) error
}

type redisReportCache struct {
	client *redis.Client
	ttl    time.Duration
}

type noopReportCache struct{}

func NewReportCache(cfg config.Cache) (ReportCache, error) {
	if !cfg.Enabled {
		return &noopReportCache{}, nil
	}

	opts, err := buildRedisOptions(cfg)
	if err != nil {
		return nil, err
	}

	client := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), redisConnectTimeout)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("redis ping failed: %w", err)
	}

	ttl := time.Duration(cfg.ReportTTLSeconds) * time.Second
	if ttl <= 0 {
		ttl = defaultReportTTL
	}

	return &redisReportCache{
		client: client,
		ttl:    ttl,
	}, nil
}

func NewNoopReportCache() ReportCache {
	return &noopReportCache{}
}

func (c *redisReportCache) Get(ctx context.Context, key ReportKey, dest any) (bool, error) {
	payload, err := c.client.Get(ctx, buildReportKey(key)).Bytes()
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("redis get failed: %w", err)
	}

	if err := json.Unmarshal(payload, dest); err != nil {
		return false, fmt.Errorf("decode report cache: %w", err)
	}

	return true, nil
}

func (c *redisReportCache) Set(ctx context.Context, key ReportKey, value any) error {
	payload, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("encode report cache: %w", err)
	}

	if err := c.client.Set(ctx, buildReportKey(key), payload, c.ttl).Err(); err != nil {
		return fmt.Errorf("redis set failed: %w", err)
	}

	return nil
}

func (c *redisReportCache) InvalidateAll(ctx context.Context) error {
	var cursor uint64
	for {
		keys, nextCursor, err := c.client.Scan(ctx, cursor, reportKeyPrefix+":*", scanBatchSize).Result()
		if err != nil {
			return fmt.Errorf("redis scan failed: %w", err)
		}

		if len(keys) > 0 {
			if err := c.client.Del(ctx, keys...).Err(); err != nil {
				return fmt.Errorf("redis delete failed: %w", err)
			}
		}

		cursor = nextCursor
		if cursor == 0 {
			break
		}
	}

	return nil
}

func (n *noopReportCache) Get(ctx context.Context, key ReportKey, dest any) (bool, error) {
	return false, nil
}

func (n *noopReportCache) Set(ctx context.Context, key ReportKey, value any) error {
	return nil
}

func (n *noopReportCache) InvalidateAll(ctx context.Context) error {
	return nil
}

func buildRedisOptions(cfg config.Cache) (*redis.Options, error) {
	if cfg.RedisURL != "" {
		opt, err := redis.ParseURL(cfg.RedisURL)
		if err != nil {
			return nil, fmt.Errorf("invalid redis url: %w", err)
		}
		return opt, nil
	}

	host := cfg.RedisHost
	if host == "" {
		host = "127.0.0.1"
	}

	port := cfg.RedisPort
	if port == "" {
		port = "6379"
	}

	return &redis.Options{
		Addr:     net.JoinHostPort(host, port),
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	}, nil
}

func buildReportKey(key ReportKey) string {
	parts := []string{"as_of=" + key.AsOf}

	if filters := key.Filters; filters != nil {
		if filters.Window != "" {
			parts = append(parts, "window="+strings.ToLower(filters.Window))
		}
		if filters.StartDate != nil {
			parts = append(parts, "start_date="+filters.StartDate.Format(time.DateOnly))
		}
		if filters.EndDate != nil {
			parts = append(parts, "end_date="+filters.EndDate.Format(time.DateOnly))
		}
		if filters.OBContact != "" {
			parts = append(parts, "ob_contact="+filters.OBContact)
		}
		if filters.TSM != "" {
			parts = append(parts, "tsm="+filters.TSM)
		}
	}

	raw := strings.Join(parts, "|")
	hash := sha1.Sum([]byte(raw))
	return fmt.Sprintf("%s:%s:%s", reportKeyPrefix, key.Kind, hex.EncodeToString(hash[:]))
}

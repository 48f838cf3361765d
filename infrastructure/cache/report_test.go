package cache

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/order-booker-api/internal/config"
	"github.com/vfg2006/order-booker-api/internal/domain"
)

func TestBuildReportKey(t *testing.T) {
	start := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)

	base := ReportKey{Kind: "dashboard", AsOf: "2024-03-15", Filters: &domain.ReportFilters{Window: "mtd"}}
	same := ReportKey{Kind: "dashboard", AsOf: "2024-03-15", Filters: &domain.ReportFilters{Window: "MTD"}}
	otherDay := ReportKey{Kind: "dashboard", AsOf: "2024-03-16", Filters: &domain.ReportFilters{Window: "mtd"}}
	otherKind := ReportKey{Kind: "routes", AsOf: "2024-03-15", Filters: &domain.ReportFilters{Window: "mtd"}}
	withStart := ReportKey{Kind: "dashboard", AsOf: "2024-03-15", Filters: &domain.ReportFilters{Window: "mtd", StartDate: &start}}

	assert.True(t, strings.HasPrefix(buildReportKey(base), "reports:dashboard:"))
	assert.Equal(t, buildReportKey(base), buildReportKey(same))
	assert.NotEqual(t, buildReportKey(base), buildReportKey(otherDay))
	assert.NotEqual(t, buildReportKey(base), buildReportKey(otherKind))
	assert.NotEqual(t, buildReportKey(base), buildReportKey(withStart))
	assert.NotEmpty(t, buildReportKey(ReportKey{Kind: "tsm"}))
}

func TestBuildRedisOptions(t *testing.T) {
	opts, err := buildRedisOptions(config.Cache{RedisHost: "redis", RedisPort: "6380", RedisDB: 2})
	require.NoError(t, err)
	assert.Equal(t, "redis:6380", opts.Addr)
	assert.Equal(t, 2, opts.DB)

	opts, err = buildRedisOptions(config.Cache{})
	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1:6379", opts.Addr)

	opts, err = buildRedisOptions(config.Cache{RedisURL: "redis://:secret@cache:6379/1"})
	require.NoError(t, err)
	assert.Equal(t, "cache:6379", opts.Addr)
	assert.Equal(t, "secret", opts.Password)
	assert.Equal(t, 1, opts.DB)

	_, err = buildRedisOptions(config.Cache{RedisURL: "http://nope"})
	assert.Error(t, err)
}

func TestNewReportCache_DisabledIsNoop(t *testing.T) {
	reportCache, err := NewReportCache(config.Cache{Enabled: false})
	require.NoError(t, err)

	ctx := context.Background()
	key := ReportKey{Kind: "dashboard", AsOf: "2024-03-15"}

	require.NoError(t, reportCache.Set(ctx, key, &domain.Dashboard{Date: "2024-03-15"}))

	var dashboard domain.Dashboard
	found, err := reportCache.Get(ctx, key, &dashboard)
	require.NoError(t, err)
	assert.False(t, found)
	assert.NoError(t, reportCache.InvalidateAll(ctx))
}

package metrics_test

import (
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"games-in-common/core/metrics"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestCollector(t *testing.T) {
	reg := prometheus.NewRegistry()
	c := metrics.NewCollector(reg)

	c.RecordCacheHit("games")
	c.RecordCacheHit("games")
	c.RecordCacheMiss("nickname")
	c.RecordRemoteCall("GetOwnedGames", metrics.OutcomeOK, 120*time.Millisecond)

	count, err := testutil.GatherAndCount(reg,
		"gamesincommon_cache_hits_total",
		"gamesincommon_cache_misses_total",
		"gamesincommon_steam_calls_total",
	)
	assert.NoError(t, err)
	assert.Equal(t, 3, count)

	rec := httptest.NewRecorder()
	metrics.Handler(reg).ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))
	assert.Equal(t, 200, rec.Code)
	assert.True(t, strings.Contains(rec.Body.String(), `gamesincommon_cache_hits_total{kind="games"} 2`))
}

package statistics

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ManuelReschke/PropertiPro/app/models"
)

type mapCache struct {
	data    map[string][]byte
	failGet bool
}

func (m *mapCache) GetJSON(ctx context.Context, key string, dst interface{}) (bool, error) {
	if m.failGet {
		return false, errors.New("redis unavailable")
	}
	raw, ok := m.data[key]
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(raw, dst)
}

func (m *mapCache) SetJSON(ctx context.Context, key string, value interface{}, expiration time.Duration) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	m.data[key] = raw
	return nil
}

type countingSource struct {
	calls int
	err   error
}

func (s *countingSource) Stats(ctx context.Context) (*models.ModerationStats, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	return &models.ModerationStats{
		TotalReports:          10,
		PendingReports:        4,
		ReportsByType:         map[string]int64{models.ReportReasonSpam: 6, models.ReportReasonFraud: 4},
		AverageResolutionTime: 5.5,
	}, nil
}

func useCache(t *testing.T, c jsonCache) {
	t.Helper()
	prev := store
	store = c
	t.Cleanup(func() { store = prev })
}

func TestGetModerationStats_CachesResult(t *testing.T) {
	useCache(t, &mapCache{data: map[string][]byte{}})
	src := &countingSource{}
	ctx := context.Background()

	first, err := GetModerationStats(ctx, src)
	require.NoError(t, err)
	second, err := GetModerationStats(ctx, src)
	require.NoError(t, err)

	assert.Equal(t, 1, src.calls)
	assert.Equal(t, first, second)
	assert.Equal(t, int64(6), second.ReportsByType[models.ReportReasonSpam])
}

func TestGetModerationStats_CacheFailureFallsThrough(t *testing.T) {
	useCache(t, &mapCache{data: map[string][]byte{}, failGet: true})
	src := &countingSource{}

	stats, err := GetModerationStats(context.Background(), src)
	require.NoError(t, err)
	assert.Equal(t, int64(10), stats.TotalReports)
}

func TestGetModerationStats_SourceError(t *testing.T) {
	useCache(t, &mapCache{data: map[string][]byte{}})
	_, err := GetModerationStats(context.Background(), &countingSource{err: errors.New("db down")})
	assert.Error(t, err)
}

package memory

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	logimpl "github.com/weisyn/keyaddr/internal/core/infrastructure/log"
)

// setupTestStore 创建测试存储
func setupTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := New(Options{LifeWindow: time.Minute, MaxEntries: 128, Shards: 16}, logimpl.NewNop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func TestStoreBasicOperations(t *testing.T) {
	store := setupTestStore(t)

	value, found, err := store.Get("missing")
	require.NoError(t, err)
	assert.False(t, found)
	assert.Nil(t, value)

	require.NoError(t, store.Set("k1", []byte("v1")))
	value, found, err = store.Get("k1")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, []byte("v1"), value)
	assert.Equal(t, 1, store.Len())

	require.NoError(t, store.Delete("k1"))
	require.NoError(t, store.Delete("k1"), "删除不存在的键不应报错")
	_, found, err = store.Get("k1")
	require.NoError(t, err)
	assert.False(t, found)

	stats := store.Stats()
	assert.Equal(t, int64(1), stats.Hits)
	assert.GreaterOrEqual(t, stats.Misses, int64(2))
}

func TestStoreDefaults(t *testing.T) {
	store, err := New(Options{}, nil)
	require.NoError(t, err)
	defer store.Close()

	require.NoError(t, store.Set("a", []byte{1}))
	assert.Equal(t, 1, store.Len())
	assert.Equal(t, "memory", store.CacheName())
}

func TestStoreCollectCacheStats(t *testing.T) {
	store, err := New(Options{Name: "decode", LifeWindow: time.Minute}, nil)
	require.NoError(t, err)

	require.NoError(t, store.Set("a", []byte{1}))
	_, _, _ = store.Get("a")
	_, _, _ = store.Get("a")
	_, _, _ = store.Get("b")

	stats := store.CollectCacheStats()
	assert.Equal(t, "decode", stats.Cache)
	assert.Equal(t, int64(1), stats.Entries)
	assert.Equal(t, int64(2), stats.Hits)
	assert.Equal(t, int64(1), stats.Misses)

	require.NoError(t, store.Close())
	assert.Zero(t, store.CollectCacheStats().Entries)
}

func TestStoreConcurrentAccess(t *testing.T) {
	store := setupTestStore(t)

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			key := fmt.Sprintf("key-%d", i)
			assert.NoError(t, store.Set(key, []byte(key)))
			value, found, err := store.Get(key)
			assert.NoError(t, err)
			assert.True(t, found)
			assert.Equal(t, key, string(value))
		}(i)
	}
	wg.Wait()
	assert.Equal(t, 16, store.Len())
}

func TestStoreClose(t *testing.T) {
	store, err := New(Options{Shards: 4}, nil)
	require.NoError(t, err)

	require.NoError(t, store.Close())
	require.NoError(t, store.Close(), "重复关闭应为空操作")

	_, _, err = store.Get("x")
	assert.ErrorIs(t, err, ErrClosed)
	assert.ErrorIs(t, store.Set("x", nil), ErrClosed)
	assert.ErrorIs(t, store.Delete("x"), ErrClosed)
	assert.Equal(t, 0, store.Len())
}

func TestAdaptiveHardMaxMB(t *testing.T) {
	cases := []struct {
		name  string
		total uint64
		want  int
	}{
		{"未知", 0, 0},
		{"小内存取下限", 256 << 20, minHardMaxMB},
		{"8GB", 8 << 30, 128},
		{"大内存取上限", 1 << 40, maxHardMaxMB},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, adaptiveHardMaxMB(tc.total))
		})
	}
}

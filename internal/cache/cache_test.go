package cache

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/inovacc/opnr/internal/model"
	"github.com/inovacc/opnr/internal/scanner"
	"github.com/inovacc/opnr/internal/store"
	"github.com/stretchr/testify/require"
)

func openKV(t *testing.T) store.Store {
	t.Helper()

	kv, err := store.NewBolt(filepath.Join(t.TempDir(), "cache.bolt"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = kv.Close() })

	return kv
}

func sample() []model.Project {
	return []model.Project{
		{ID: "/w/a", Name: "a", Path: "/w/a", Kind: model.KindLocal},
		{ID: "/w/b/c", Name: "c", Path: "/w/b/c", Kind: model.KindLocal},
	}
}

func TestCacheRoundTrip(t *testing.T) {
	c := New(openKV(t), scanner.Config{RootPaths: []string{"/w"}, MaxDepth: 2})

	_, ok := c.Get()
	require.False(t, ok)

	require.NoError(t, c.Set(sample()))

	got, ok := c.Get()
	require.True(t, ok)
	require.Equal(t, sample(), got)
}

func TestCacheExpiry(t *testing.T) {
	c := New(openKV(t), scanner.Config{RootPaths: []string{"/w"}})

	require.NoError(t, c.Set(sample()))

	_, ok := c.Get()
	require.True(t, ok)

	// advance past the TTL
	c.now = func() time.Time { return time.Now().Add(TTL + time.Minute) }

	_, ok = c.Get()
	require.False(t, ok)
}

func TestCacheInvalidate(t *testing.T) {
	c := New(openKV(t), scanner.Config{RootPaths: []string{"/w"}})

	require.NoError(t, c.Set(sample()))
	require.NoError(t, c.Invalidate())

	_, ok := c.Get()
	require.False(t, ok)
}

func TestCacheKeyedByConfig(t *testing.T) {
	kv := openKV(t)

	a := New(kv, scanner.Config{RootPaths: []string{"/w"}, MaxDepth: 2})
	b := New(kv, scanner.Config{RootPaths: []string{"/src"}, MaxDepth: 2})

	require.NoError(t, a.Set(sample()))

	// a different configuration misses without an explicit invalidate
	_, ok := b.Get()
	require.False(t, ok)

	_, ok = a.Get()
	require.True(t, ok)
}

func TestCacheCorruptPayload(t *testing.T) {
	kv := openKV(t)
	cfg := scanner.Config{RootPaths: []string{"/w"}}

	c := New(kv, cfg)
	require.NoError(t, kv.Put("cache:"+cfg.Hash(), []byte("{not json")))

	_, ok := c.Get()
	require.False(t, ok)
}

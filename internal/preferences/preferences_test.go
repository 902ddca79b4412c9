package preferences

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ziadkadry99/react-guide/internal/db"
	"github.com/ziadkadry99/react-guide/internal/theme"
)

func setupTestStore(t *testing.T) (*Store, *db.DB) {
	t.Helper()
	database, err := db.OpenMemory()
	require.NoError(t, err)
	t.Cleanup(func() { database.Close() })
	return NewStore(database), database
}

func TestSetAndGet(t *testing.T) {
	store, _ := setupTestStore(t)
	ctx := context.Background()

	_, ok, err := store.Get(ctx, "visitor-1", "theme")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, store.Set(ctx, "visitor-1", "theme", "light"))
	require.NoError(t, store.Set(ctx, "visitor-1", "theme", "dark"))

	v, ok, err := store.Get(ctx, "visitor-1", "theme")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "dark", v)

	n, err := store.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestScopesAreIsolated(t *testing.T) {
	store, _ := setupTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "a", "theme", "light"))
	_, ok, err := store.Get(ctx, "b", "theme")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestDelete(t *testing.T) {
	store, _ := setupTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "a", "theme", "light"))
	require.NoError(t, store.Delete(ctx, "a", "theme"))
	_, ok, err := store.Get(ctx, "a", "theme")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestScopedImplementsThemeStore(t *testing.T) {
	store, _ := setupTestStore(t)
	var s theme.Store = store.Scoped("visitor-1", zerolog.Nop())

	s.Set(theme.PreferenceKey, "light")
	v, ok := s.Get(theme.PreferenceKey)
	assert.True(t, ok)
	assert.Equal(t, "light", v)
}

func TestScopedSwallowsFailures(t *testing.T) {
	store, database := setupTestStore(t)
	s := store.Scoped("visitor-1", zerolog.Nop())
	require.NoError(t, database.Close())

	assert.NotPanics(t, func() { s.Set(theme.PreferenceKey, "light") })
	_, ok := s.Get(theme.PreferenceKey)
	assert.False(t, ok)

	c := theme.NewController(s, nil, nopSink{})
	assert.Equal(t, theme.Dark, c.Initialize(), "unavailable store degrades to default")
}

func TestConcurrentVisitorsKeepEveryWrite(t *testing.T) {
	database, err := db.Open(filepath.Join(t.TempDir(), "prefs.db"))
	require.NoError(t, err)
	t.Cleanup(func() { database.Close() })
	store := NewStore(database)

	const visitors, writes = 20, 10
	var failed atomic.Int64
	var wg sync.WaitGroup
	for i := 0; i < visitors; i++ {
		wg.Add(1)
		go func(scope string) {
			defer wg.Done()
			for j := 0; j < writes; j++ {
				v := theme.Light
				if j%2 == 1 {
					v = theme.Dark
				}
				if err := store.Set(context.Background(), scope, theme.PreferenceKey, v.String()); err != nil {
					failed.Add(1)
				}
			}
		}(fmt.Sprintf("visitor-%d", i))
	}
	wg.Wait()

	assert.Zero(t, failed.Load())
	n, err := store.Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, visitors, n)

	v, ok, err := store.Get(context.Background(), "visitor-3", theme.PreferenceKey)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "dark", v, "last write wins")
}

type nopSink struct{}

func (nopSink) ApplyTheme(theme.Theme) {}

package theme

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingSink struct {
	applied []Theme
}

func (s *recordingSink) ApplyTheme(t Theme) { s.applied = append(s.applied, t) }

func (s *recordingSink) last() Theme {
	if len(s.applied) == 0 {
		return ""
	}
	return s.applied[len(s.applied)-1]
}

func TestInitializeDefaultsToDark(t *testing.T) {
	sink := &recordingSink{}
	c := NewController(NewMemoryStore(), NewSignal(), sink)
	defer c.Close()

	assert.Equal(t, Dark, c.Initialize())
	assert.Equal(t, Dark, sink.last())
}

func TestInitializeWithoutCollaborators(t *testing.T) {
	sink := &recordingSink{}
	c := NewController(nil, nil, sink)
	defer c.Close()

	assert.Equal(t, Dark, c.Initialize())
}

func TestInitializePersistedOverridesSystem(t *testing.T) {
	store := NewMemoryStore()
	store.Set(PreferenceKey, "light")
	sig := NewSignal()
	sig.Set(Dark)

	c := NewController(store, sig, &recordingSink{})
	defer c.Close()

	assert.Equal(t, Light, c.Initialize())
}

func TestInitializeFallsBackToSystem(t *testing.T) {
	sig := NewSignal()
	sig.Set(Light)

	c := NewController(NewMemoryStore(), sig, &recordingSink{})
	defer c.Close()

	assert.Equal(t, Light, c.Initialize())
}

func TestInitializeIgnoresGarbagePreference(t *testing.T) {
	store := NewMemoryStore()
	store.Set(PreferenceKey, "sepia")
	sig := NewSignal()
	sig.Set(Light)

	c := NewController(store, sig, &recordingSink{})
	defer c.Close()

	assert.Equal(t, Light, c.Initialize())
}

func TestInitializeRunsOnceAndDoesNotPersist(t *testing.T) {
	store := NewMemoryStore()
	sink := &recordingSink{}
	sig := NewSignal()
	c := NewController(store, sig, sink)
	defer c.Close()

	c.Initialize()
	c.Initialize()

	assert.Len(t, sink.applied, 1)
	assert.Equal(t, 1, sig.Subscribers())
	_, ok := store.Get(PreferenceKey)
	assert.False(t, ok, "initialize must not fabricate an explicit preference")
}

func TestWithFallback(t *testing.T) {
	c := NewController(nil, nil, &recordingSink{}, WithFallback(Light))
	assert.Equal(t, Light, c.Theme())
	assert.Equal(t, Light, c.Initialize())
}

func TestToggleTwiceRestoresAndPersistsLast(t *testing.T) {
	store := NewMemoryStore()
	sink := &recordingSink{}
	c := NewController(store, NewSignal(), sink)
	defer c.Close()

	start := c.Initialize()
	first := c.Toggle()
	v, _ := store.Get(PreferenceKey)
	assert.Equal(t, first.String(), v)

	second := c.Toggle()
	assert.Equal(t, start, second)
	v, ok := store.Get(PreferenceKey)
	require.True(t, ok)
	assert.Equal(t, second.String(), v)
	assert.Equal(t, second, sink.last())
}

func TestToggleBeforeInitializeInitializesFirst(t *testing.T) {
	store := NewMemoryStore()
	store.Set(PreferenceKey, "light")
	c := NewController(store, nil, &recordingSink{})

	assert.Equal(t, Dark, c.Toggle())
}

func TestSystemChangeFollowedWithoutPreference(t *testing.T) {
	store := NewMemoryStore()
	sink := &recordingSink{}
	sig := NewSignal()
	c := NewController(store, sig, sink)
	defer c.Close()

	c.Initialize()
	sig.Set(Light)

	assert.Equal(t, Light, c.Theme())
	assert.Equal(t, Light, sink.last())
	_, ok := store.Get(PreferenceKey)
	assert.False(t, ok)
}

func TestSystemChangeIgnoredAfterToggle(t *testing.T) {
	sig := NewSignal()
	c := NewController(NewMemoryStore(), sig, &recordingSink{})
	defer c.Close()

	c.Initialize()
	got := c.Toggle()
	sig.Set(Dark)
	sig.Set(Light)
	sig.Set(Dark)

	assert.Equal(t, got, c.Theme())
}

// failingStore loses every write, like a store whose backend is down.
type failingStore struct{}

func (failingStore) Get(string) (string, bool) { return "", false }
func (failingStore) Set(string, string) {}

func TestSystemChangeIgnoredAfterToggleWhenStoreLosesWrites(t *testing.T) {
	for name, store := range map[string]Store{
		"nil store":     nil,
		"failing store": failingStore{},
	} {
		t.Run(name, func(t *testing.T) {
			sig := NewSignal()
			sink := &recordingSink{}
			c := NewController(store, sig, sink)
			defer c.Close()

			require.Equal(t, Dark, c.Initialize())
			require.Equal(t, Light, c.Toggle())
			sig.Set(Dark)
			sig.Set(Light)
			sig.Set(Dark)

			assert.Equal(t, Light, c.Theme())
			assert.Equal(t, Light, sink.last())
		})
	}
}

func TestCloseStopsSystemDelivery(t *testing.T) {
	sig := NewSignal()
	sink := &recordingSink{}
	c := NewController(NewMemoryStore(), sig, sink)

	c.Initialize()
	c.Close()
	c.Close()
	sig.Set(Light)

	assert.Equal(t, 0, sig.Subscribers())
	assert.Equal(t, Dark, c.Theme())
	assert.Len(t, sink.applied, 1)
}

func TestScenarioPersistedLightThenToggle(t *testing.T) {
	store := NewMemoryStore()
	store.Set(PreferenceKey, "light")
	sink := &recordingSink{}
	c := NewController(store, NewSignal(), sink)
	defer c.Close()

	require.Equal(t, Light, c.Initialize())
	assert.Equal(t, "light-mode", sink.last().ClassName())

	require.Equal(t, Dark, c.Toggle())
	v, _ := store.Get(PreferenceKey)
	assert.Equal(t, "dark", v)
	assert.Equal(t, "dark-mode", sink.last().ClassName())
	assert.Equal(t, "#171a1f", sink.last().Color())
}

package session

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStoreLifecycle(t *testing.T) {
	st := NewStore(Limits{})

	id, s := st.Create()
	require.NotEmpty(t, id)
	require.NotNil(t, s)
	assert.Equal(t, 1, st.Len())

	got, ok := st.Get(id)
	require.True(t, ok)
	assert.Same(t, s, got)

	assert.True(t, st.Delete(id))
	assert.False(t, st.Delete(id))
	_, ok = st.Get(id)
	assert.False(t, ok)
	assert.Equal(t, 0, st.Len())
}

func TestStoreSessionsAreIndependent(t *testing.T) {
	st := NewStore(Limits{})
	_, a := st.Create()
	_, b := st.Create()

	require.NoError(t, a.Upload([]byte(sampleCSV), "a.csv"))

	assert.NotNil(t, a.Table())
	assert.Nil(t, b.Table())
}

func TestStoreAppliesOptions(t *testing.T) {
	st := NewStore(Limits{}, WithWindowWidth(2))
	_, s := st.Create()

	assert.Equal(t, 2, s.width)
}

func TestStoreConcurrentCreate(t *testing.T) {
	st := NewStore(Limits{})

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			id, _ := st.Create()
			_, ok := st.Get(id)
			assert.True(t, ok)
		}()
	}
	wg.Wait()

	assert.Equal(t, 50, st.Len())
}

type fakeClock struct {
	t time.Time
}

func (c *fakeClock) Now() time.Time { return c.t }

func (c *fakeClock) Advance(d time.Duration) { c.t = c.t.Add(d) }

func newClockedStore(limits Limits) (*Store, *fakeClock) {
	clock := &fakeClock{t: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
	st := NewStore(limits)
	st.now = clock.Now
	return st, clock
}

func TestStoreExpiresIdleSessions(t *testing.T) {
	st, clock := newClockedStore(Limits{TTL: 10 * time.Minute})

	idle, _ := st.Create()
	active, _ := st.Create()

	clock.Advance(6 * time.Minute)
	_, ok := st.Get(active)
	require.True(t, ok)

	clock.Advance(6 * time.Minute)
	_, ok = st.Get(idle)
	assert.False(t, ok, "idle past the TTL")
	_, ok = st.Get(active)
	assert.True(t, ok, "touched within the TTL")
	assert.Equal(t, 1, st.Len())
}

func TestStoreSweep(t *testing.T) {
	st, clock := newClockedStore(Limits{TTL: time.Minute})
	st.Create()
	st.Create()

	assert.Equal(t, 0, st.Sweep())
	clock.Advance(2 * time.Minute)
	assert.Equal(t, 2, st.Sweep())
	assert.Equal(t, 0, st.Len())
}

func TestStoreCreateSweepsExpired(t *testing.T) {
	st, clock := newClockedStore(Limits{TTL: time.Minute})
	st.Create()

	clock.Advance(2 * time.Minute)
	st.Create()
	assert.Equal(t, 1, st.Len())
}

func TestStoreMaxSessionsEvictsLeastRecentlyUsed(t *testing.T) {
	st, clock := newClockedStore(Limits{MaxSessions: 2})

	first, _ := st.Create()
	clock.Advance(time.Second)
	second, _ := st.Create()
	clock.Advance(time.Second)
	_, ok := st.Get(first)
	require.True(t, ok)
	clock.Advance(time.Second)

	third, _ := st.Create()
	assert.Equal(t, 2, st.Len())

	_, ok = st.Get(second)
	assert.False(t, ok, "least recently used session is evicted")
	_, ok = st.Get(first)
	assert.True(t, ok)
	_, ok = st.Get(third)
	assert.True(t, ok)
}

func TestStoreZeroLimitsKeepEverything(t *testing.T) {
	st, clock := newClockedStore(Limits{})
	id, _ := st.Create()

	clock.Advance(1000 * time.Hour)
	_, ok := st.Get(id)
	assert.True(t, ok)
}

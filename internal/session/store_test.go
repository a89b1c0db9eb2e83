package session

import (
	"fmt"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"textbook-rag/internal/model"
)

type fakeClock struct {
	mu sync.Mutex
	t  time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{t: time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.t
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	c.t = c.t.Add(d)
	c.mu.Unlock()
}

func newTestStore(maxTurns int) (*Store, *fakeClock) {
	clock := newFakeClock()
	return NewStore(Config{MaxTurns: maxTurns, Timeout: 30 * time.Minute}, WithClock(clock.Now)), clock
}

func TestResolveOrCreate(t *testing.T) {
	t.Run("empty id generates a new session", func(t *testing.T) {
		st, _ := newTestStore(10)

		s, created := st.ResolveOrCreate("")
		require.True(t, created)
		assert.NotEmpty(t, s.ID())
		assert.True(t, ValidID(s.ID()))
		assert.Equal(t, 1, st.Len())
	})

	t.Run("unknown id is created under that id", func(t *testing.T) {
		st, _ := newTestStore(10)

		s, created := st.ResolveOrCreate("abc-123")
		require.True(t, created)
		assert.Equal(t, "abc-123", s.ID())
	})

	t.Run("live id returns the same session and refreshes activity", func(t *testing.T) {
		st, clock := newTestStore(10)
		first, _ := st.ResolveOrCreate("abc")

		clock.Advance(20 * time.Minute)
		again, created := st.ResolveOrCreate("abc")
		require.False(t, created)
		assert.Same(t, first, again)
		assert.Equal(t, clock.Now(), again.LastActivity())
	})

	t.Run("expired id yields a new empty session under the same id", func(t *testing.T) {
		st, clock := newTestStore(10)
		old, _ := st.ResolveOrCreate("abc")
		st.RecordExchange(old, "hi", "hello")

		clock.Advance(31 * time.Minute)
		fresh, created := st.ResolveOrCreate("abc")
		require.True(t, created)
		assert.NotSame(t, old, fresh)
		assert.Equal(t, "abc", fresh.ID())
		assert.Empty(t, fresh.History())
	})
}

func TestRecordExchange(t *testing.T) {
	st, clock := newTestStore(10)
	s, _ := st.ResolveOrCreate("abc")

	clock.Advance(time.Minute)
	st.RecordExchange(s, "What is ROS 2?", "ROS 2 is a middleware [1].")

	h := s.History()
	require.Len(t, h, 2)
	assert.Equal(t, model.RoleUser, h[0].Role)
	assert.Equal(t, "What is ROS 2?", h[0].Content)
	assert.Equal(t, model.RoleAssistant, h[1].Role)
	assert.Equal(t, "ROS 2 is a middleware [1].", h[1].Content)
	assert.Equal(t, clock.Now(), s.LastActivity())
}

func TestRecordExchange_SlidingWindow(t *testing.T) {
	const maxTurns = 3
	st, _ := newTestStore(maxTurns)
	s, _ := st.ResolveOrCreate("abc")

	for i := 1; i <= 7; i++ {
		st.RecordExchange(s, fmt.Sprintf("q%d", i), fmt.Sprintf("a%d", i))
		assert.LessOrEqual(t, len(s.History()), 2*maxTurns)
	}

	h := s.History()
	require.Len(t, h, 2*maxTurns)
	var got []string
	for _, turn := range h {
		got = append(got, turn.Content)
	}
	assert.Equal(t, []string{"q5", "a5", "q6", "a6", "q7", "a7"}, got)
}

func TestHistoryReturnsCopy(t *testing.T) {
	st, _ := newTestStore(10)
	s, _ := st.ResolveOrCreate("abc")
	st.RecordExchange(s, "q", "a")

	h := s.History()
	h[0].Content = "mutated"
	assert.Equal(t, "q", s.History()[0].Content)
}

func TestSweep(t *testing.T) {
	st, clock := newTestStore(10)
	st.ResolveOrCreate("old-1")
	st.ResolveOrCreate("old-2")

	clock.Advance(20 * time.Minute)
	st.ResolveOrCreate("recent")

	clock.Advance(15 * time.Minute)
	removed := st.Sweep()

	assert.Equal(t, 2, removed)
	assert.Equal(t, 1, st.Len())
	s, created := st.ResolveOrCreate("recent")
	assert.False(t, created)
	assert.Equal(t, "recent", s.ID())
}

func TestSweep_ExactlyAtTimeoutIsKept(t *testing.T) {
	st, clock := newTestStore(10)
	st.ResolveOrCreate("abc")

	clock.Advance(30 * time.Minute)
	assert.Equal(t, 0, st.Sweep())

	clock.Advance(time.Nanosecond)
	assert.Equal(t, 1, st.Sweep())
}

func TestDelete(t *testing.T) {
	st, clock := newTestStore(10)
	st.ResolveOrCreate("abc")
	st.ResolveOrCreate("stale")

	assert.True(t, st.Delete("abc"))
	assert.False(t, st.Delete("abc"))
	assert.False(t, st.Delete("missing"))

	clock.Advance(time.Hour)
	assert.False(t, st.Delete("stale"))
	assert.Equal(t, 0, st.Len())
}

func TestValidID(t *testing.T) {
	tests := []struct {
		id   string
		want bool
	}{
		{"abc", true},
		{"550e8400-e29b-41d4-a716-446655440000", true},
		{"under_score-OK9", true},
		{strings.Repeat("a", MaxIDLength), true},
		{strings.Repeat("a", MaxIDLength+1), false},
		{"", false},
		{"has space", false},
		{"slash/id", false},
		{"émoji", false},
	}

	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			assert.Equal(t, tt.want, ValidID(tt.id))
		})
	}
}

func TestConcurrentExchangesKeepPairsIntact(t *testing.T) {
	const maxTurns = 4
	st, _ := newTestStore(maxTurns)
	s, _ := st.ResolveOrCreate("abc")

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			st.RecordExchange(s, fmt.Sprintf("q%d", i), fmt.Sprintf("a%d", i))
			st.Sweep()
		}(i)
	}
	wg.Wait()

	h := s.History()
	require.Len(t, h, 2*maxTurns)
	for i := 0; i < len(h); i += 2 {
		require.Equal(t, model.RoleUser, h[i].Role)
		require.Equal(t, model.RoleAssistant, h[i+1].Role)
		assert.Equal(t, "a"+strings.TrimPrefix(h[i].Content, "q"), h[i+1].Content)
	}
}

func TestNewStoreDefaults(t *testing.T) {
	st := NewStore(Config{})
	assert.Equal(t, DefaultMaxTurns, st.cfg.MaxTurns)
	assert.Equal(t, DefaultTimeout, st.cfg.Timeout)
}

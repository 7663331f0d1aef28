package memory

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"keypadCalc/internal/keypad"
)

func TestSessionStore_CreateGetDelete(t *testing.T) {
	st := NewSessionStore()

	s := st.Create()
	require.NotEmpty(t, s.ID())
	assert.Equal(t, keypad.Initial(), s.State())
	assert.Equal(t, 1, st.Len())

	got, ok := st.Get(s.ID())
	require.True(t, ok)
	assert.Equal(t, s.ID(), got.ID())

	assert.True(t, st.Delete(s.ID()))
	assert.False(t, st.Delete(s.ID()), "повторное удаление")
	_, ok = st.Get(s.ID())
	assert.False(t, ok)
	assert.Equal(t, 0, st.Len())
}

func TestSessionStore_UniqueIDs(t *testing.T) {
	st := NewSessionStore()

	a, b := st.Create(), st.Create()

	assert.NotEqual(t, a.ID(), b.ID())
}

func TestSession_UpdateIsSerialised(t *testing.T) {
	st := NewSessionStore()
	s := st.Create()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			s.Update(func(cur keypad.State) keypad.State {
				next, _ := keypad.Reduce(cur, keypad.Digit('1'))
				return next
			})
		}()
	}
	wg.Wait()

	assert.Len(t, s.State().First, 50, "ни одно нажатие не должно потеряться")
}

func TestSessionStore_Sweep(t *testing.T) {
	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	st := NewSessionStore()
	st.now = func() time.Time { return now }

	stale := st.Create()
	now = now.Add(20 * time.Minute)
	fresh := st.Create()
	now = now.Add(15 * time.Minute)

	removed := st.Sweep(30 * time.Minute)

	assert.Equal(t, 1, removed)
	_, ok := st.Get(stale.ID())
	assert.False(t, ok, "простаивающая сессия удалена")
	_, ok = st.Get(fresh.ID())
	assert.True(t, ok, "свежая сессия осталась")
}

package locking

import (
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGroup(t *testing.T) {
	for _, kind := range []Kind{KindSingleFlight, KindMemLock, KindNoOp} {
		g, err := NewGroup(kind)
		require.NoError(t, err, kind)
		assert.NotNil(t, g)
	}

	_, err := NewGroup("bogus")
	assert.Error(t, err)
}

func TestGroupsReturnResult(t *testing.T) {
	boom := errors.New("boom")
	for _, g := range []Group{NewSingleFlight(), NewMemLock(), NewNoOpGroup()} {
		v, err := g.DoWithLock("k", func() (interface{}, error) { return 42, nil })
		require.NoError(t, err)
		assert.Equal(t, 42, v)

		_, err = g.DoWithLock("k", func() (interface{}, error) { return nil, boom })
		assert.ErrorIs(t, err, boom)
	}
}

// exclusive runs many concurrent calls on one key and reports the highest
// number of fn executions observed in flight at once.
func exclusive(t *testing.T, g Group) (maxInFlight int32) {
	t.Helper()

	var inFlight int32
	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := g.DoWithLock("same", func() (interface{}, error) {
				n := atomic.AddInt32(&inFlight, 1)
				for {
					cur := atomic.LoadInt32(&maxInFlight)
					if n <= cur || atomic.CompareAndSwapInt32(&maxInFlight, cur, n) {
						break
					}
				}
				time.Sleep(2 * time.Millisecond)
				atomic.AddInt32(&inFlight, -1)
				return nil, nil
			})
			assert.NoError(t, err)
		}()
	}
	wg.Wait()
	return maxInFlight
}

func TestMemLockSerializesSameKey(t *testing.T) {
	assert.Equal(t, int32(1), exclusive(t, NewMemLock()))
}

func TestSingleFlightSerializesSameKey(t *testing.T) {
	assert.Equal(t, int32(1), exclusive(t, NewSingleFlight()))
}

func TestMemLockDifferentKeysDoNotBlock(t *testing.T) {
	m := NewMemLock()
	started := make(chan struct{})
	release := make(chan struct{})

	go func() {
		_, _ = m.DoWithLock("a", func() (interface{}, error) {
			close(started)
			<-release
			return nil, nil
		})
	}()
	<-started

	done := make(chan struct{})
	go func() {
		_, _ = m.DoWithLock("b", func() (interface{}, error) { return nil, nil })
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("key b blocked behind key a")
	}
	close(release)
}

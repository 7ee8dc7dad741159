package coalesce

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func waitFor(t *testing.T, ch <-chan int) int {
	t.Helper()
	select {
	case v := <-ch:
		return v
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for value")
		return 0
	}
}

func TestSubscribersShareOneLoad(t *testing.T) {
	var loads atomic.Int64
	load := func(ctx context.Context) (int, error) {
		loads.Add(1)
		return 7, nil
	}

	c := New[int](50 * time.Millisecond)
	key := Key{Kind: "job_card", ID: "jc-1"}

	ch1, cancel1 := c.Subscribe(key, load)
	defer cancel1()
	assert.Equal(t, 7, waitFor(t, ch1))

	// Later subscribers attach to the existing handle and replay the last
	// value without triggering another load.
	var chans []<-chan int
	var cancels []func()
	for i := 0; i < 5; i++ {
		ch, cancel := c.Subscribe(key, load)
		chans = append(chans, ch)
		cancels = append(cancels, cancel)
	}
	defer func() {
		for _, cancel := range cancels {
			cancel()
		}
	}()

	for _, ch := range chans {
		assert.Equal(t, 7, waitFor(t, ch))
	}
	assert.Equal(t, int64(1), loads.Load())
}

func TestInvalidateReloadsOnceForAllSubscribers(t *testing.T) {
	var mu sync.Mutex
	value := 1
	var loads atomic.Int64
	load := func(ctx context.Context) (int, error) {
		loads.Add(1)
		mu.Lock()
		defer mu.Unlock()
		return value, nil
	}

	c := New[int](50 * time.Millisecond)
	key := Key{Kind: "job_card", ID: "jc-2"}

	ch1, cancel1 := c.Subscribe(key, load)
	defer cancel1()
	ch2, cancel2 := c.Subscribe(key, load)
	defer cancel2()

	assert.Equal(t, 1, waitFor(t, ch1))
	assert.Equal(t, 1, waitFor(t, ch2))

	mu.Lock()
	value = 2
	mu.Unlock()
	c.Invalidate(key)

	assert.Equal(t, 2, waitFor(t, ch1))
	assert.Equal(t, 2, waitFor(t, ch2))
	assert.Equal(t, int64(2), loads.Load())
}

func TestGraceWindowAbsorbsResubscribeChurn(t *testing.T) {
	var loads atomic.Int64
	load := func(ctx context.Context) (int, error) {
		loads.Add(1)
		return 9, nil
	}

	c := New[int](200 * time.Millisecond)
	key := Key{Kind: "job_card", ID: "jc-3"}

	ch, cancel := c.Subscribe(key, load)
	assert.Equal(t, 9, waitFor(t, ch))
	cancel()

	// Within the grace window the handle survives; a resubscribe reuses it.
	require.True(t, c.Active(key))
	ch2, cancel2 := c.Subscribe(key, load)
	assert.Equal(t, 9, waitFor(t, ch2))
	assert.Equal(t, int64(1), loads.Load())
	cancel2()

	// After the grace window with no subscribers the handle is torn down.
	assert.Eventually(t, func() bool { return !c.Active(key) }, 2*time.Second, 20*time.Millisecond)
}

func TestDetachIsIdempotent(t *testing.T) {
	c := New[int](50 * time.Millisecond)
	key := Key{Kind: "invoice", ID: "inv-1"}

	ch1, cancel1 := c.Subscribe(key, func(ctx context.Context) (int, error) { return 1, nil })
	ch2, cancel2 := c.Subscribe(key, func(ctx context.Context) (int, error) { return 1, nil })
	waitFor(t, ch1)
	waitFor(t, ch2)

	cancel1()
	cancel1()

	// The second subscriber still receives updates after the first detaches
	// twice.
	c.Invalidate(key)
	assert.Equal(t, 1, waitFor(t, ch2))
	cancel2()
}

func TestLoadFailureKeepsLastValue(t *testing.T) {
	var fail atomic.Bool
	load := func(ctx context.Context) (int, error) {
		if fail.Load() {
			return 0, context.DeadlineExceeded
		}
		return 5, nil
	}

	c := New[int](50 * time.Millisecond)
	key := Key{Kind: "job_card", ID: "jc-4"}

	ch, cancel := c.Subscribe(key, load)
	defer cancel()
	assert.Equal(t, 5, waitFor(t, ch))

	fail.Store(true)
	c.Invalidate(key)
	time.Sleep(50 * time.Millisecond)

	// No emission happened; a fresh subscriber still sees the last good value.
	ch2, cancel2 := c.Subscribe(key, load)
	defer cancel2()
	assert.Equal(t, 5, waitFor(t, ch2))
}

package coalesce

import (
	"context"
	"sync"
	"time"
)

// Key identifies a coalesced read by entity kind and id.
type Key struct {
	Kind string
	ID   string
}

// LoadFunc produces the current value of a derived read.
type LoadFunc[T any] func(ctx context.Context) (T, error)

// DefaultGrace is how long a handle survives after its last subscriber
// detaches, so rapid unsubscribe/resubscribe churn reuses the same handle.
const DefaultGrace = 2 * time.Second

// Coalescer deduplicates concurrent subscriptions to the same derived read.
// All subscribers of a key share one loader; the handle map is guarded by a
// single mutex.
type Coalescer[T any] struct {
	mu      sync.Mutex
	entries map[Key]*entry[T]
	grace   time.Duration
}

type entry[T any] struct {
	load     LoadFunc[T]
	cancel   context.CancelFunc
	reload   chan struct{}
	subs     map[uint64]chan T
	nextSub  uint64
	last     T
	hasLast  bool
	teardown *time.Timer
}

// New creates a coalescer with the given teardown grace window.
// A non-positive grace falls back to DefaultGrace.
func New[T any](grace time.Duration) *Coalescer[T] {
	if grace <= 0 {
		grace = DefaultGrace
	}
	return &Coalescer[T]{
		entries: make(map[Key]*entry[T]),
		grace:   grace,
	}
}

// Subscribe attaches to the shared read for key, starting the loader if this
// is the first subscriber. The returned channel receives the current value and
// every subsequent re-emission; detach must be called when the caller loses
// interest.
func (c *Coalescer[T]) Subscribe(key Key, load LoadFunc[T]) (<-chan T, func()) {
	c.mu.Lock()

	e, ok := c.entries[key]
	if !ok {
		ctx, cancel := context.WithCancel(context.Background())
		e = &entry[T]{
			load:   load,
			cancel: cancel,
			reload: make(chan struct{}, 1),
			subs:   make(map[uint64]chan T),
		}
		c.entries[key] = e
		go c.run(ctx, key, e)
	}

	if e.teardown != nil {
		e.teardown.Stop()
		e.teardown = nil
	}

	id := e.nextSub
	e.nextSub++
	ch := make(chan T, 8)
	e.subs[id] = ch
	if e.hasLast {
		ch <- e.last
	}
	c.mu.Unlock()

	var once sync.Once
	detach := func() {
		once.Do(func() { c.detach(key, id) })
	}
	return ch, detach
}

// Invalidate triggers a re-load and re-emission for key, if anyone is
// subscribed. Write paths call this after committing a change.
func (c *Coalescer[T]) Invalidate(key Key) {
	c.mu.Lock()
	e, ok := c.entries[key]
	c.mu.Unlock()
	if !ok {
		return
	}
	select {
	case e.reload <- struct{}{}:
	default:
	}
}

// Active reports whether a live handle exists for key.
func (c *Coalescer[T]) Active(key Key) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	_, ok := c.entries[key]
	return ok
}

func (c *Coalescer[T]) run(ctx context.Context, key Key, e *entry[T]) {
	c.emit(ctx, e)
	for {
		select {
		case <-ctx.Done():
			return
		case <-e.reload:
			c.emit(ctx, e)
		}
	}
}

func (c *Coalescer[T]) emit(ctx context.Context, e *entry[T]) {
	v, err := e.load(ctx)
	if err != nil {
		// Load failures leave the last emitted value in place; the next
		// Invalidate retries.
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	e.last = v
	e.hasLast = true
	for _, ch := range e.subs {
		select {
		case ch <- v:
		default:
			// Slow subscriber: drop its oldest pending value to keep
			// the newest one deliverable.
			select {
			case <-ch:
			default:
			}
			select {
			case ch <- v:
			default:
			}
		}
	}
}

func (c *Coalescer[T]) detach(key Key, id uint64) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[key]
	if !ok {
		return
	}
	if ch, ok := e.subs[id]; ok {
		delete(e.subs, id)
		close(ch)
	}
	if len(e.subs) > 0 || e.teardown != nil {
		return
	}

	e.teardown = time.AfterFunc(c.grace, func() {
		c.mu.Lock()
		defer c.mu.Unlock()
		cur, ok := c.entries[key]
		if !ok || cur != e || len(cur.subs) > 0 {
			return
		}
		cur.cancel()
		delete(c.entries, key)
	})
}

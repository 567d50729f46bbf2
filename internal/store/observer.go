package store

import "sync"

// Registry holds the callbacks of UI surfaces that re-render when store
// state changes. Notification is synchronous and in registration order, on
// the goroutine that performed the mutation; there is no queuing and no
// batching, so callbacks observe states in the exact order mutations were
// applied.
type Registry struct {
	mu   sync.Mutex
	subs []*Subscription
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{}
}

// Subscription is the handle returned by Subscribe. A subscription that is
// never canceled is never dropped implicitly; the subscriber owns its
// lifetime and must call Cancel when it no longer wants updates.
type Subscription struct {
	registry *Registry
	fn       func()
	once     sync.Once
}

// Subscribe registers a zero-argument callback and returns its handle.
func (r *Registry) Subscribe(fn func()) *Subscription {
	sub := &Subscription{registry: r, fn: fn}

	r.mu.Lock()
	r.subs = append(r.subs, sub)
	r.mu.Unlock()

	return sub
}

// Cancel deregisters the subscription. It is safe to call more than once.
func (s *Subscription) Cancel() {
	s.once.Do(func() {
		r := s.registry
		r.mu.Lock()
		defer r.mu.Unlock()
		for i, sub := range r.subs {
			if sub == s {
				r.subs = append(r.subs[:i], r.subs[i+1:]...)
				return
			}
		}
	})
}

// Len returns the number of active subscriptions.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.subs)
}

// notify invokes every registered callback. The callback list is snapshotted
// under the lock so a callback may subscribe or cancel without deadlocking.
func (r *Registry) notify() {
	r.mu.Lock()
	fns := make([]func(), len(r.subs))
	for i, sub := range r.subs {
		fns[i] = sub.fn
	}
	r.mu.Unlock()

	for _, fn := range fns {
		fn()
	}
}

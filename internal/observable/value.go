package observable

import "sync"

// Value holds a single value of type T and notifies subscribers on every Set.
// The last write wins. Subscribers run synchronously on the goroutine that
// called Set, in subscription order, after the lock is released.
type Value[T any] struct {
	mu     sync.RWMutex
	val    T
	nextID int
	subs   []subscriber[T]
}

type subscriber[T any] struct {
	id int
	fn func(T)
}

// New returns a Value holding initial.
func New[T any](initial T) *Value[T] {
	return &Value[T]{val: initial}
}

func (v *Value[T]) Get() T {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.val
}

func (v *Value[T]) Set(val T) {
	v.mu.Lock()
	v.val = val
	subs := make([]subscriber[T], len(v.subs))
	copy(subs, v.subs)
	v.mu.Unlock()

	for _, s := range subs {
		s.fn(val)
	}
}

// Subscribe registers fn for future Sets and returns a func that removes it.
// The returned func may be called more than once.
func (v *Value[T]) Subscribe(fn func(T)) func() {
	v.mu.Lock()
	id := v.nextID
	v.nextID++
	v.subs = append(v.subs, subscriber[T]{id: id, fn: fn})
	v.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() { v.remove(id) })
	}
}

// Subscribers reports how many subscribers are registered.
func (v *Value[T]) Subscribers() int {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return len(v.subs)
}

func (v *Value[T]) remove(id int) {
	v.mu.Lock()
	defer v.mu.Unlock()
	for i, s := range v.subs {
		if s.id == id {
			v.subs = append(v.subs[:i], v.subs[i+1:]...)
			return
		}
	}
}

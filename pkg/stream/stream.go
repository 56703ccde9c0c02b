package stream

import (
	"errors"
	"sync"
)

// Observable is a push-based stream of T.
type Observable[T any] interface {
	// Subscribe registers next (and optionally complete). Streams that
	// replay a current value deliver it before Subscribe returns; an error
	// from that delivery is returned together with the unsubscribe func.
	Subscribe(next func(T) error, complete func()) (unsubscribe func(), err error)
}

// Untyped is the type-erased form of an Observable.
type Untyped interface {
	SubscribeAny(next func(any) error, complete func()) (unsubscribe func(), err error)
}

// IsObservable reports whether v is a stream and returns its erased form.
func IsObservable(v any) (Untyped, bool) {
	u, ok := v.(Untyped)
	return u, ok
}

// Erase adapts any Observable to Untyped.
func Erase[T any](o Observable[T]) Untyped {
	if u, ok := o.(Untyped); ok {
		return u
	}
	return erased[T]{o}
}

type erased[T any] struct{ o Observable[T] }

func (e erased[T]) SubscribeAny(next func(any) error, complete func()) (func(), error) {
	return subscribeAny(e.o, next, complete)
}

func subscribeAny[T any](o Observable[T], next func(any) error, complete func()) (func(), error) {
	return o.Subscribe(func(v T) error { return next(v) }, complete)
}

type observer[T any] struct {
	next     func(T) error
	complete func()
}

// Subject is a multicast stream. The zero value is ready to use.
type Subject[T any] struct {
	mu        sync.Mutex
	observers []*observer[T]
	done      bool
}

// NewSubject creates a Subject.
func NewSubject[T any]() *Subject[T] {
	return &Subject[T]{}
}

// Subscribe implements Observable.
func (s *Subject[T]) Subscribe(next func(T) error, complete func()) (func(), error) {
	return s.add(next, complete), nil
}

// SubscribeAny implements Untyped.
func (s *Subject[T]) SubscribeAny(next func(any) error, complete func()) (func(), error) {
	return subscribeAny[T](s, next, complete)
}

func (s *Subject[T]) add(next func(T) error, complete func()) func() {
	s.mu.Lock()
	if s.done {
		s.mu.Unlock()
		if complete != nil {
			complete()
		}
		return func() {}
	}
	o := &observer[T]{next: next, complete: complete}
	s.observers = append(s.observers, o)
	s.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() { s.remove(o) })
	}
}

func (s *Subject[T]) remove(o *observer[T]) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, existing := range s.observers {
		if existing == o {
			s.observers = append(s.observers[:i:i], s.observers[i+1:]...)
			return
		}
	}
}

// snapshot copies observers so callbacks run without holding the lock.
func (s *Subject[T]) snapshot() []*observer[T] {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]*observer[T], len(s.observers))
	copy(out, s.observers)
	return out
}

func (s *Subject[T]) subscribed(o *observer[T]) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, existing := range s.observers {
		if existing == o {
			return true
		}
	}
	return false
}

// Next delivers v to every current subscriber in subscription order and
// returns their errors joined. Observers removed by an earlier observer in
// the same delivery are skipped.
func (s *Subject[T]) Next(v T) error {
	s.mu.Lock()
	if s.done {
		s.mu.Unlock()
		return nil
	}
	s.mu.Unlock()

	var errs []error
	for _, o := range s.snapshot() {
		if !s.subscribed(o) {
			continue
		}
		if err := o.next(v); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Complete notifies subscribers that no more values will follow and drops
// them.
func (s *Subject[T]) Complete() {
	s.mu.Lock()
	if s.done {
		s.mu.Unlock()
		return
	}
	s.done = true
	obs := s.observers
	s.observers = nil
	s.mu.Unlock()

	for _, o := range obs {
		if o.complete != nil {
			o.complete()
		}
	}
}

// Observed returns the number of current subscribers.
func (s *Subject[T]) Observed() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.observers)
}

// Behavior is a Subject that holds a current value and replays it to every
// new subscriber.
type Behavior[T any] struct {
	Subject[T]

	valueMu sync.RWMutex
	value   T
}

// NewBehavior creates a Behavior holding initial.
func NewBehavior[T any](initial T) *Behavior[T] {
	return &Behavior[T]{value: initial}
}

// Value returns the current value.
func (b *Behavior[T]) Value() T {
	b.valueMu.RLock()
	defer b.valueMu.RUnlock()
	return b.value
}

// Next stores v and delivers it to subscribers.
func (b *Behavior[T]) Next(v T) error {
	b.valueMu.Lock()
	b.value = v
	b.valueMu.Unlock()
	return b.Subject.Next(v)
}

// Update applies fn to the current value and emits the result.
func (b *Behavior[T]) Update(fn func(T) T) error {
	return b.Next(fn(b.Value()))
}

// Subscribe implements Observable, replaying the current value first.
func (b *Behavior[T]) Subscribe(next func(T) error, complete func()) (func(), error) {
	unsub := b.Subject.add(next, complete)
	b.Subject.mu.Lock()
	done := b.Subject.done
	b.Subject.mu.Unlock()
	if done {
		return unsub, nil
	}
	return unsub, next(b.Value())
}

// SubscribeAny implements Untyped.
func (b *Behavior[T]) SubscribeAny(next func(any) error, complete func()) (func(), error) {
	return subscribeAny[T](b, next, complete)
}

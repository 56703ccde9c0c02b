package stream

import (
	"sync"

	"github.com/vango-dev/viewspec/pkg/dispose"
)

// Func builds an Observable from a subscribe function.
func Func[T any](subscribe func(next func(T) error, complete func()) (func(), error)) Observable[T] {
	return funcObservable[T](subscribe)
}

type funcObservable[T any] func(next func(T) error, complete func()) (func(), error)

func (f funcObservable[T]) Subscribe(next func(T) error, complete func()) (func(), error) {
	return f(next, complete)
}

func (f funcObservable[T]) SubscribeAny(next func(any) error, complete func()) (func(), error) {
	return subscribeAny[T](f, next, complete)
}

// Of emits each value synchronously on subscribe, then completes.
func Of[T any](values ...T) Observable[T] {
	return Func(func(next func(T) error, complete func()) (func(), error) {
		for _, v := range values {
			if err := next(v); err != nil {
				return func() {}, err
			}
		}
		if complete != nil {
			complete()
		}
		return func() {}, nil
	})
}

// Map transforms every value of src with fn.
func Map[T, U any](src Observable[T], fn func(T) U) Observable[U] {
	return Func(func(next func(U) error, complete func()) (func(), error) {
		return src.Subscribe(func(v T) error { return next(fn(v)) }, complete)
	})
}

// Distinct suppresses values equal to the previous one, per subscriber.
func Distinct[T comparable](src Observable[T]) Observable[T] {
	return Func(func(next func(T) error, complete func()) (func(), error) {
		var (
			mu   sync.Mutex
			last T
			seen bool
		)
		return src.Subscribe(func(v T) error {
			mu.Lock()
			if seen && last == v {
				mu.Unlock()
				return nil
			}
			seen, last = true, v
			mu.Unlock()
			return next(v)
		}, complete)
	})
}

// CombineLatest emits a slice of the latest value of every source once each
// source has emitted at least once, and again on every later emission.
// It completes when all sources have completed.
func CombineLatest[T any](srcs ...Observable[T]) Observable[[]T] {
	return Func(func(next func([]T) error, complete func()) (func(), error) {
		var (
			mu        sync.Mutex
			latest    = make([]T, len(srcs))
			has       = make([]bool, len(srcs))
			ready     int
			completed int
			unsubs    []func()
			firstErr  error
		)
		emit := func(i int, v T) error {
			mu.Lock()
			latest[i] = v
			if !has[i] {
				has[i] = true
				ready++
			}
			if ready < len(srcs) {
				mu.Unlock()
				return nil
			}
			out := make([]T, len(latest))
			copy(out, latest)
			mu.Unlock()
			return next(out)
		}
		done := func() {
			mu.Lock()
			completed++
			all := completed == len(srcs)
			mu.Unlock()
			if all && complete != nil {
				complete()
			}
		}
		for i, src := range srcs {
			i := i
			unsub, err := src.Subscribe(func(v T) error { return emit(i, v) }, done)
			unsubs = append(unsubs, unsub)
			if err != nil && firstErr == nil {
				firstErr = err
			}
		}
		if len(srcs) == 0 && complete != nil {
			complete()
		}
		return func() {
			for _, u := range unsubs {
				u()
			}
		}, firstErr
	})
}

// Subscribe subscribes next to src and registers the unsubscription on sub.
func Subscribe[T any](sub *dispose.Handle, src Observable[T], next func(T) error) error {
	unsub, err := src.Subscribe(next, nil)
	sub.Add(unsub)
	return err
}

// SubscribeState subscribes to src and hands next a fresh child handle for
// every value. The handle given for the previous value is released after
// next returns for the new one, so work built for the new value exists before
// the old value's resources are torn down. If next fails, the new handle is
// released instead and the previous value stays current. Completion of src
// releases the current handle; releasing parent releases everything.
func SubscribeState[T any](parent *dispose.Handle, src Observable[T], next func(v T, whileValue *dispose.Handle) error) error {
	var current *dispose.Handle
	unsub, err := src.Subscribe(func(v T) error {
		prev := current
		current = parent.NewChild()
		if err := next(v, current); err != nil {
			current.Unsubscribe()
			current = prev
			return err
		}
		if prev != nil {
			prev.Unsubscribe()
		}
		return nil
	}, func() {
		if current != nil {
			current.Unsubscribe()
		}
	})
	parent.Add(unsub)
	return err
}

package scope

import (
	"fmt"
	"sync/atomic"

	verrors "github.com/vango-dev/viewspec/internal/errors"
)

var contextIDCounter uint64

// Context is an identity-keyed handle carrying a default value.
// Two handles are equal only if they are the same handle.
type Context[T any] struct {
	id           uint64
	defaultValue T
}

// CreateContext creates a new context with the given default value.
// Handles are meant to be created once, at package initialization.
func CreateContext[T any](defaultValue T) *Context[T] {
	return &Context[T]{
		id:           atomic.AddUint64(&contextIDCounter, 1),
		defaultValue: defaultValue,
	}
}

// Default returns the default value for this context.
func (c *Context[T]) Default() T {
	return c.defaultValue
}

// ID returns the handle's identity.
func (c *Context[T]) ID() uint64 {
	return c.id
}

// AccessError reports context use outside of the render call that permits it.
type AccessError struct {
	// Intent is the operation that was refused ("useContext", "addContext").
	Intent string

	err *verrors.Error
}

func newAccessError(intent, code string) *AccessError {
	return &AccessError{Intent: intent, err: verrors.New(code)}
}

func (e *AccessError) Error() string {
	return fmt.Sprintf("Cannot %s outside of a component's function call frame.", e.Intent)
}

// Unwrap exposes the coded error.
func (e *AccessError) Unwrap() error {
	return e.err
}

// Use returns the nearest value bound for c, or c's default.
func Use[T any](s *Stack, c *Context[T]) (T, error) {
	if s.access == AccessNone || len(s.frames) == 0 {
		var zero T
		return zero, newAccessError("useContext", "V001")
	}
	if v, ok := s.frames[len(s.frames)-1].lookup(c.id); ok {
		if typed, ok := v.(T); ok {
			return typed, nil
		}
	}
	return c.defaultValue, nil
}

// MustUse is Use that panics with the *AccessError.
func MustUse[T any](s *Stack, c *Context[T]) T {
	v, err := Use(s, c)
	if err != nil {
		panic(err)
	}
	return v
}

// Add binds value for c in the current frame. It is visible to the current
// component and everything it renders, and a later Add for the same handle
// in the same frame shadows it.
func Add[T any](s *Stack, c *Context[T], value T) (T, error) {
	if s.access != AccessReadWrite || len(s.frames) == 0 {
		return value, newAccessError("addContext", "V002")
	}
	s.frames[len(s.frames)-1].bind(c.id, value)
	return value, nil
}

// SetDefault binds value for c in the stack's root frame, visible to every
// render on this stack. It is only allowed while no frame is active.
func SetDefault[T any](s *Stack, c *Context[T], value T) error {
	if len(s.frames) > 0 {
		return verrors.New("V003")
	}
	s.root.bind(c.id, value)
	return nil
}

// Lookup returns the nearest value bound for c in f or its ancestors, or c's
// default. Unlike Use it does not consult the access state, so the renderer
// can read bindings of a frame that is not currently pushed.
func Lookup[T any](f *Frame, c *Context[T]) T {
	if f != nil {
		if v, ok := f.lookup(c.id); ok {
			if typed, ok := v.(T); ok {
				return typed
			}
		}
	}
	return c.defaultValue
}

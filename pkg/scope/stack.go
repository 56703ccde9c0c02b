package scope

import "log/slog"

// Access is what the running code may do with the context stack.
type Access uint8

const (
	AccessNone Access = iota
	AccessRead
	AccessReadWrite
)

// String returns the string representation of the Access.
func (a Access) String() string {
	switch a {
	case AccessNone:
		return "none"
	case AccessRead:
		return "read"
	case AccessReadWrite:
		return "read-write"
	default:
		return "unknown"
	}
}

type binding struct {
	id    uint64
	value any
}

// Frame is one component invocation's bindings, chained to its parent.
type Frame struct {
	parent   *Frame
	bindings []binding
}

// NewFrame creates an empty frame chained to parent.
func NewFrame(parent *Frame) *Frame {
	return &Frame{parent: parent}
}

// Parent returns the frame this one was chained to.
func (f *Frame) Parent() *Frame {
	return f.parent
}

// Len returns the number of bindings made in this frame itself.
func (f *Frame) Len() int {
	return len(f.bindings)
}

func (f *Frame) bind(id uint64, value any) {
	f.bindings = append(f.bindings, binding{id: id, value: value})
}

func (f *Frame) lookup(id uint64) (any, bool) {
	for cur := f; cur != nil; cur = cur.parent {
		for i := len(cur.bindings) - 1; i >= 0; i-- {
			if cur.bindings[i].id == id {
				return cur.bindings[i].value, true
			}
		}
	}
	return nil, false
}

// Stack is the depth-indexed context stack of one renderer.
type Stack struct {
	root   Frame
	frames []*Frame
	access Access
	logger *slog.Logger
}

// NewStack creates an empty stack.
func NewStack(logger *slog.Logger) *Stack {
	if logger == nil {
		logger = slog.Default()
	}
	return &Stack{
		frames: make([]*Frame, 0, 64),
		logger: logger.With("component", "scope"),
	}
}

// Root returns the frame holding stack-wide defaults. Top-level renders
// chain their first frame to it.
func (s *Stack) Root() *Frame {
	return &s.root
}

// Depth returns the number of pushed frames.
func (s *Stack) Depth() int {
	return len(s.frames)
}

// Access returns the current access state.
func (s *Stack) Access() Access {
	return s.access
}

// Push makes f the current frame. Every Push must be balanced by one Pop.
func (s *Stack) Push(f *Frame) {
	s.frames = append(s.frames, f)
}

// Pop ends the current frame.
func (s *Stack) Pop() {
	if len(s.frames) == 0 {
		s.logger.Warn("popped last frame, push and pop must have been out of order")
		return
	}
	s.frames[len(s.frames)-1] = nil
	s.frames = s.frames[:len(s.frames)-1]
}

// Enter pushes f with the given access and returns the function that
// restores the previous access and pops f.
func (s *Stack) Enter(f *Frame, access Access) (leave func()) {
	prev := s.access
	s.Push(f)
	s.access = access
	return func() {
		s.Pop()
		s.access = prev
	}
}

// SetAccess changes the access state and returns the previous one.
func (s *Stack) SetAccess(a Access) Access {
	prev := s.access
	s.access = a
	return prev
}

package dom

// Event is a dispatched DOM event.
type Event struct {
	Type    string
	Target  *Element
	Current *Element
	Bubbles bool

	defaultPrevented bool
	stopped          bool
}

// NewEvent returns a bubbling event of the given type.
func NewEvent(typ string) *Event {
	return &Event{Type: typ, Bubbles: true}
}

// PreventDefault marks the event as canceled.
func (ev *Event) PreventDefault() { ev.defaultPrevented = true }

// DefaultPrevented reports whether PreventDefault was called.
func (ev *Event) DefaultPrevented() bool { return ev.defaultPrevented }

// StopPropagation prevents the event from reaching further ancestors.
func (ev *Event) StopPropagation() { ev.stopped = true }

// Dispatch invokes the "on<type>" handler property of e and, for bubbling
// events, of each ancestor. Handlers may be func(*Event) or func().
// It returns false if a handler called PreventDefault.
func (e *Element) Dispatch(ev *Event) bool {
	ev.Target = e
	for cur := e; cur != nil; cur = cur.parent {
		ev.Current = cur
		switch h := cur.props["on"+ev.Type].(type) {
		case func(*Event):
			h(ev)
		case func():
			h()
		}
		if !ev.Bubbles || ev.stopped {
			break
		}
	}
	ev.Current = nil
	return !ev.defaultPrevented
}

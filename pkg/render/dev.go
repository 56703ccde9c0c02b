package render

import (
	"errors"
	"fmt"

	verrors "github.com/vango-dev/viewspec/internal/errors"
	"github.com/vango-dev/viewspec/pkg/dispose"
	"github.com/vango-dev/viewspec/pkg/dom"
	"github.com/vango-dev/viewspec/pkg/scope"
	"github.com/vango-dev/viewspec/pkg/spec"
)

// DevInfo describes where an element came from.
type DevInfo struct {
	// Source is where the element's node was built, when spec.DebugMode
	// was on.
	Source *spec.DevSource

	// DirectParentComponent is the component whose result is this element.
	DirectParentComponent string
	DirectParentAttrs     spec.Attrs

	// ParentComponent is the nearest component above the element's parent
	// element.
	ParentComponent      string
	ParentComponentAttrs spec.Attrs

	// IntrinsicAttrs are the element's own attributes.
	IntrinsicAttrs spec.Attrs
}

// DevFunc inspects every element once its children are rendered. sub is
// released together with the element's subscriptions. Errors and panics
// are logged and do not stop rendering.
type DevFunc func(el *dom.Element, info DevInfo, sub *dispose.Handle) error

var devContext = scope.CreateContext[DevFunc](nil)

// AddDev registers fn for every element rendered below the current
// component. Called outside a component, it registers fn for every render
// on st. A nil fn turns the hook off.
func AddDev(st *scope.Stack, fn DevFunc) error {
	_, err := scope.Add(st, devContext, fn)
	var access *scope.AccessError
	if errors.As(err, &access) {
		return scope.SetDefault(st, devContext, fn)
	}
	return err
}

// devRender is the component information carried down the render.
type devRender struct {
	source          *spec.DevSource
	directComponent string
	directAttrs     spec.Attrs
	parentComponent string
	parentAttrs     spec.Attrs
	intrinsicAttrs  spec.Attrs
}

// forChildren moves the direct parent component to the enclosing slot.
func (d devRender) forChildren() devRender {
	c := d
	c.source = nil
	c.directComponent, c.directAttrs = "", nil
	if d.directComponent != "" {
		c.parentComponent, c.parentAttrs = d.directComponent, d.directAttrs
	}
	return c
}

func (d devRender) info() DevInfo {
	return DevInfo{
		Source:                d.source,
		DirectParentComponent: d.directComponent,
		DirectParentAttrs:     d.directAttrs,
		ParentComponent:       d.parentComponent,
		ParentComponentAttrs:  d.parentAttrs,
		IntrinsicAttrs:        d.intrinsicAttrs,
	}
}

func (r *Renderer) runDev(sub *dispose.Handle, el *dom.Element, frame *scope.Frame, dev devRender) {
	fn := scope.Lookup(frame, devContext)
	if fn == nil {
		return
	}
	info := dev.info()
	defer func() {
		if p := recover(); p != nil {
			r.devFailed(fmt.Errorf("panic: %v", p), el, info, fn)
		}
	}()
	if err := fn(el, info, sub); err != nil {
		r.devFailed(err, el, info, fn)
	}
}

func (r *Renderer) devFailed(err error, el *dom.Element, info DevInfo, fn DevFunc) {
	r.metrics.hookFailure()
	r.logger.Warn("dev hook failed",
		"error", verrors.New("V030").Wrap(err),
		"element", el.TagName(),
		"component", info.DirectParentComponent,
		"info", info,
		"hook", funcName(fn),
	)
}

// RefFunc receives an element once its children are rendered, with the
// handle its subscriptions are released with.
type RefFunc func(el *dom.Element, sub *dispose.Handle)

// Mounted is what a RefSink receives.
type Mounted struct {
	Element *dom.Element
	Sub     *dispose.Handle
}

// RefSink is the sink form of a ref, such as a *stream.Subject[Mounted].
type RefSink interface {
	Next(Mounted) error
}

// runRef calls ref with read access to the element's context.
func (r *Renderer) runRef(sub *dispose.Handle, el *dom.Element, frame *scope.Frame, ref any) error {
	leave := r.stack.Enter(frame, scope.AccessRead)
	defer leave()

	switch ref := ref.(type) {
	case RefFunc:
		ref(el, sub)
	case func(*dom.Element, *dispose.Handle):
		ref(el, sub)
	case func(*dom.Element):
		ref(el)
	case RefSink:
		return ref.Next(Mounted{Element: el, Sub: sub})
	default:
		r.logger.Warn("ignoring ref of unexpected type",
			"element", el.TagName(),
			"type", fmt.Sprintf("%T", ref),
		)
	}
	return nil
}

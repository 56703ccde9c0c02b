package render

import (
	"context"
	"fmt"
	"log/slog"
	"reflect"
	"runtime"
	"strings"
	"time"

	verrors "github.com/vango-dev/viewspec/internal/errors"
	"github.com/vango-dev/viewspec/pkg/dispose"
	"github.com/vango-dev/viewspec/pkg/dom"
	"github.com/vango-dev/viewspec/pkg/scope"
	"github.com/vango-dev/viewspec/pkg/spec"
	"github.com/vango-dev/viewspec/pkg/stream"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// Renderer turns structure nodes into live dom nodes. A Renderer owns one
// context stack and must not be used from several goroutines at once.
type Renderer struct {
	doc     *dom.Document
	stack   *scope.Stack
	logger  *slog.Logger
	metrics *Metrics
	tracer  trace.Tracer
}

// New creates a Renderer.
func New(opts ...Option) *Renderer {
	r := &Renderer{}
	for _, opt := range opts {
		opt(r)
	}
	if r.logger == nil {
		r.logger = slog.Default()
	}
	r.logger = r.logger.With("component", "render")
	if r.doc == nil {
		r.doc = dom.NewDocument()
	}
	if r.stack == nil {
		r.stack = scope.NewStack(r.logger)
	}
	if r.tracer == nil {
		r.tracer = defaultTracer()
	}
	return r
}

// Stack returns the renderer's context stack.
func (r *Renderer) Stack() *scope.Stack {
	return r.stack
}

// Document returns the document nodes are created in.
func (r *Renderer) Document() *dom.Document {
	return r.doc
}

// Render renders n. Every subscription made for the result, including the
// ones made later by stream re-renders, is released with sub.
//
// A stream cannot be the root: a stream swaps its node on every emission,
// and a caller holding the first one would never see the updates.
func (r *Renderer) Render(sub *dispose.Handle, n *spec.Node) (dom.Node, error) {
	start := time.Now()
	out, err := r.render(sub, n)
	r.metrics.observeDuration(time.Since(start).Seconds())
	return out, err
}

// RenderContext is Render wrapped in a trace span.
func (r *Renderer) RenderContext(ctx context.Context, sub *dispose.Handle, n *spec.Node) (dom.Node, error) {
	_, span := r.tracer.Start(ctx, "viewspec.render", trace.WithAttributes(
		attribute.String("viewspec.node.kind", kindOf(n)),
	))
	defer span.End()

	out, err := r.Render(sub, n)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	if el, ok := out.(*dom.Element); ok {
		span.SetAttributes(attribute.String("viewspec.element.tag", el.TagName()))
	}
	return out, nil
}

// Render renders n with a default Renderer.
func Render(sub *dispose.Handle, n *spec.Node) (dom.Node, error) {
	return New().Render(sub, n)
}

func (r *Renderer) render(sub *dispose.Handle, n *spec.Node) (dom.Node, error) {
	if n != nil && n.Kind == spec.KindStream {
		return nil, r.fail(structuralError("V012", ErrObservableRoot, n), n)
	}
	return r.renderNode(sub, n, r.stack.Root(), "", devRender{})
}

func (r *Renderer) renderNode(sub *dispose.Handle, n *spec.Node, frame *scope.Frame, ns string, dev devRender) (dom.Node, error) {
	if n == nil {
		r.metrics.nodeRendered("empty")
		return r.doc.CreateTextNode(""), nil
	}
	switch n.Kind {
	case spec.KindText:
		r.metrics.nodeRendered("text")
		return r.doc.CreateTextNode(n.Text), nil
	case spec.KindRealized:
		if n.Realized == nil {
			return r.doc.CreateTextNode(""), nil
		}
		r.metrics.nodeRendered("realized")
		return n.Realized, nil
	case spec.KindStream:
		return r.renderStream(sub, n, frame, ns, dev)
	case spec.KindComponent:
		if n.Comp == nil {
			break
		}
		return r.renderComponent(sub, n, frame, ns, dev)
	case spec.KindElement:
		return r.renderElement(sub, n, frame, ns, dev)
	}
	err := structuralError("V010", ErrTagType, n).
		WithDetailf("Expected string tagName, but found %v", describeTag(n))
	return nil, r.fail(err, n)
}

func (r *Renderer) renderStream(sub *dispose.Handle, n *spec.Node, frame *scope.Frame, ns string, dev devRender) (dom.Node, error) {
	// The placeholder stands in until the first emission replaces it.
	var current dom.Node = r.doc.CreateElement(spec.ObservableTag)
	r.metrics.nodeRendered("stream")
	r.metrics.streamSubscribed()
	sub.Add(r.metrics.streamReleased)

	err := stream.SubscribeState(sub, n.Stream, func(v *spec.Node, whileValue *dispose.Handle) error {
		next, err := r.emitted(v)
		if err != nil {
			return err
		}
		out, err := r.renderNode(whileValue, next, frame, ns, dev)
		if err != nil {
			return err
		}
		r.metrics.emission()
		old := current
		current = out
		old.ReplaceWith(out)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return current, nil
}

// emitted gives a stream value the container it is rendered as, so the
// stream always has exactly one element to swap.
func (r *Renderer) emitted(v *spec.Node) (*spec.Node, error) {
	if v == nil {
		return &spec.Node{Kind: spec.KindElement, Tag: spec.EmptyTag}, nil
	}
	switch v.Kind {
	case spec.KindElement, spec.KindComponent:
		return v, nil
	case spec.KindStream:
		return nil, r.fail(structuralError("V013", ErrNestedStream, v), v)
	}
	return &spec.Node{Kind: spec.KindElement, Tag: spec.ObservableTag, Children: []*spec.Node{v}, Dev: v.Dev}, nil
}

func (r *Renderer) renderComponent(sub *dispose.Handle, n *spec.Node, frame *scope.Frame, ns string, dev devRender) (dom.Node, error) {
	inner := scope.NewFrame(frame)
	leave := r.stack.Enter(inner, scope.AccessReadWrite)
	defer leave()

	result := n.Comp(r.stack, spec.Props{Attrs: n.Attrs, Children: n.Children})
	r.stack.SetAccess(scope.AccessRead)
	r.metrics.nodeRendered("component")

	dev.directComponent = funcName(n.Comp)
	dev.directAttrs = n.Attrs
	if dev.source == nil {
		dev.source = n.Dev
	}
	return r.renderNode(sub, result, inner, ns, dev)
}

func (r *Renderer) renderElement(sub *dispose.Handle, n *spec.Node, frame *scope.Frame, ns string, dev devRender) (dom.Node, error) {
	if strings.Contains(n.Tag, " ") {
		return nil, r.tagNameError(n, n.Tag)
	}
	tag := n.Tag
	if is, ok := n.Attrs.Get("is"); ok {
		if s, ok := is.(string); ok && s != "" {
			if strings.Contains(s, " ") {
				return nil, r.tagNameError(n, s)
			}
			tag = s
		}
	}
	if tag == "svg" {
		ns = dom.SVGNamespace
	}

	var el *dom.Element
	if ns != "" {
		el = r.doc.CreateElementNS(ns, tag)
	} else {
		el = r.doc.CreateElement(tag)
	}
	r.metrics.nodeRendered("element")

	ref, err := r.applyAttrs(sub, el, n.Attrs)
	if err != nil {
		return nil, err
	}

	childDev := dev.forChildren()
	for _, c := range n.Children {
		out, err := r.renderNode(sub, c, frame, ns, childDev)
		if err != nil {
			return nil, err
		}
		el.AppendChild(out)
	}

	if n.Dev != nil {
		dev.source = n.Dev
	}
	dev.intrinsicAttrs = n.Attrs
	r.runDev(sub, el, frame, dev)

	if ref != nil {
		if err := r.runRef(sub, el, frame, ref); err != nil {
			return nil, err
		}
	}
	return el, nil
}

// fail logs a structural error with the node that caused it.
func (r *Renderer) tagNameError(n *spec.Node, tag string) error {
	err := structuralError("V011", ErrTagName, n).
		WithDetailf("Unexpected space in tagName (%q)", tag)
	return r.fail(err, n)
}

func (r *Renderer) fail(err *verrors.Error, n *spec.Node) error {
	r.metrics.renderError(err.Code)
	r.logger.Error("render failed",
		"error", err,
		"kind", kindOf(n),
		"tag", describeTag(n),
	)
	return err
}

func kindOf(n *spec.Node) string {
	if n == nil {
		return "empty"
	}
	return n.Kind.String()
}

func describeTag(n *spec.Node) string {
	switch {
	case n == nil:
		return ""
	case n.Kind == spec.KindElement:
		return n.Tag
	case n.Kind == spec.KindComponent:
		return funcName(n.Comp)
	case n.Kind == spec.KindInvalid:
		return fmt.Sprintf("%T(%v)", n.Invalid, n.Invalid)
	}
	return n.Kind.String()
}

// funcName returns the short name of a function value, or "" for nil.
func funcName(fn any) string {
	v := reflect.ValueOf(fn)
	if !v.IsValid() || v.Kind() != reflect.Func || v.IsNil() {
		return ""
	}
	f := runtime.FuncForPC(v.Pointer())
	if f == nil {
		return ""
	}
	name := f.Name()
	if i := strings.LastIndex(name, "/"); i >= 0 {
		name = name[i+1:]
	}
	return name
}

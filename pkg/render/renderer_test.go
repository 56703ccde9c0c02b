package render

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/vango-dev/viewspec/pkg/dispose"
	"github.com/vango-dev/viewspec/pkg/dom"
	"github.com/vango-dev/viewspec/pkg/scope"
	"github.com/vango-dev/viewspec/pkg/spec"
	"github.com/vango-dev/viewspec/pkg/stream"
)

func newTestRenderer(opts ...Option) *Renderer {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return New(append([]Option{WithLogger(logger)}, opts...)...)
}

func mustRender(t *testing.T, r *Renderer, sub *dispose.Handle, n *spec.Node) dom.Node {
	t.Helper()
	out, err := r.Render(sub, n)
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	return out
}

func mustElement(t *testing.T, n dom.Node) *dom.Element {
	t.Helper()
	el, ok := n.(*dom.Element)
	if !ok {
		t.Fatalf("rendered %T, want *dom.Element", n)
	}
	return el
}

func TestRenderLeaves(t *testing.T) {
	tests := []struct {
		name string
		node *spec.Node
		want string
	}{
		{"nil", nil, ""},
		{"text", spec.Text("hello"), "hello"},
		{"coerced number", spec.Coerce(42), "42"},
		{"coerced true", spec.Coerce(true), "true"},
	}

	r := newTestRenderer()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := mustRender(t, r, dispose.New(), tt.node)
			text, ok := out.(*dom.Text)
			if !ok {
				t.Fatalf("rendered %T, want *dom.Text", out)
			}
			if text.Data() != tt.want {
				t.Errorf("Data() = %q, want %q", text.Data(), tt.want)
			}
		})
	}
}

func TestRenderRealized(t *testing.T) {
	doc := dom.NewDocument()
	existing := doc.CreateElement("canvas")

	r := newTestRenderer(WithDocument(doc))
	out := mustRender(t, r, dispose.New(), spec.Div(existing))
	div := mustElement(t, out)
	if div.FirstChild() != existing {
		t.Error("realized node was not passed through unchanged")
	}
}

func TestRenderEndToEnd(t *testing.T) {
	n := spec.Div(spec.StyleAttr("color: blue"), spec.H1("hi"), "text")

	out := mustRender(t, newTestRenderer(), dispose.New(), n)
	div := mustElement(t, out)

	if got, want := dom.OuterHTML(div), `<div style="color: blue"><h1>hi</h1>text</div>`; got != want {
		t.Errorf("OuterHTML() = %s, want %s", got, want)
	}
	children := div.ChildNodes()
	if len(children) != 2 {
		t.Fatalf("len(ChildNodes()) = %d, want 2", len(children))
	}
	if _, ok := children[1].(*dom.Text); !ok {
		t.Errorf("second child = %T, want *dom.Text", children[1])
	}
}

func TestRenderStructuralErrors(t *testing.T) {
	tests := []struct {
		name    string
		node    *spec.Node
		want    error
		message string
	}{
		{
			name:    "space in tag",
			node:    spec.H("my tag", nil),
			want:    ErrTagName,
			message: `Unexpected space in tagName ("my tag")`,
		},
		{
			name:    "space in is override",
			node:    spec.Div(spec.Is("x y")),
			want:    ErrTagName,
			message: `Unexpected space in tagName ("x y")`,
		},
		{
			name: "invalid tag",
			node: spec.H(42, nil),
			want: ErrTagType,
		},
		{
			name: "stream root",
			node: spec.Stream(stream.Of(spec.Text("x"))),
			want: ErrObservableRoot,
		},
		{
			name: "nested stream",
			node: spec.Div(spec.Stream(stream.Of(spec.Stream(stream.Of(spec.Text("x")))))),
			want: ErrNestedStream,
		},
		{
			name: "style type",
			node: spec.Div(spec.StyleAttr(42)),
			want: ErrStyleType,
		},
		{
			name: "streamed style with $style",
			node: spec.Div(
				spec.StyleAttr(stream.NewBehavior("color: red")),
				spec.DynStyle(stream.NewBehavior(spec.Style{"top": "1px"})),
			),
			want: ErrStyleConflict,
		},
	}

	r := newTestRenderer()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := r.Render(dispose.New(), tt.node)
			if !errors.Is(err, tt.want) {
				t.Fatalf("Render() error = %v, want %v", err, tt.want)
			}
			if tt.message != "" && !strings.Contains(err.Error(), tt.message) {
				t.Errorf("error %q does not mention %q", err.Error(), tt.message)
			}
		})
	}
}

func TestRenderNamespaces(t *testing.T) {
	out := mustRender(t, newTestRenderer(), dispose.New(), spec.Div(spec.Svg(spec.G(spec.Circle()))))
	div := mustElement(t, out)

	if div.NamespaceURI() != dom.HTMLNamespace {
		t.Errorf("div namespace = %q, want HTML", div.NamespaceURI())
	}
	for _, tag := range []string{"svg", "g", "circle"} {
		el := div.QuerySelector(tag)
		if el == nil {
			t.Fatalf("no <%s> rendered", tag)
		}
		if el.NamespaceURI() != dom.SVGNamespace {
			t.Errorf("<%s> namespace = %q, want SVG", tag, el.NamespaceURI())
		}
	}
}

func TestRenderIsOverride(t *testing.T) {
	out := mustRender(t, newTestRenderer(), dispose.New(), spec.Div(spec.Is("fancy-box"), spec.ID("a")))
	el := mustElement(t, out)
	if el.TagName() != "fancy-box" {
		t.Errorf("TagName() = %q, want %q", el.TagName(), "fancy-box")
	}
	if el.HasAttribute("is") {
		t.Error("is must not be set as an attribute")
	}
}

func TestRenderContextSpan(t *testing.T) {
	r := newTestRenderer()
	out, err := r.RenderContext(context.Background(), dispose.New(), spec.P("traced"))
	if err != nil {
		t.Fatalf("RenderContext() error = %v", err)
	}
	if got := dom.OuterHTML(out); got != "<p>traced</p>" {
		t.Errorf("OuterHTML() = %s, want <p>traced</p>", got)
	}

	if _, err := r.RenderContext(context.Background(), dispose.New(), spec.H("a b", nil)); !errors.Is(err, ErrTagName) {
		t.Errorf("RenderContext() error = %v, want %v", err, ErrTagName)
	}
}

func TestRenderStreamSwap(t *testing.T) {
	inner := stream.NewSubject[string]()
	view := stream.NewBehavior(spec.Span(spec.TitleAttr(inner), "one"))

	sub := dispose.New()
	out := mustRender(t, newTestRenderer(), sub, spec.Div(spec.Stream(view)))
	div := mustElement(t, out)

	if got := dom.OuterHTML(div); got != "<div><span>one</span></div>" {
		t.Fatalf("initial OuterHTML() = %s", got)
	}
	if inner.Observed() != 1 {
		t.Fatalf("inner.Observed() = %d, want 1", inner.Observed())
	}
	if err := inner.Next("tip"); err != nil {
		t.Fatal(err)
	}
	if got := dom.OuterHTML(div); got != `<div><span title="tip">one</span></div>` {
		t.Errorf("after attribute emission OuterHTML() = %s", got)
	}

	if err := view.Next(spec.Span("two")); err != nil {
		t.Fatalf("Next() error = %v", err)
	}
	if got := dom.OuterHTML(div); got != "<div><span>two</span></div>" {
		t.Errorf("after swap OuterHTML() = %s", got)
	}
	if inner.Observed() != 0 {
		t.Errorf("previous emission's subscriptions not released: inner.Observed() = %d", inner.Observed())
	}

	sub.Unsubscribe()
	if view.Observed() != 0 {
		t.Errorf("view.Observed() = %d after release, want 0", view.Observed())
	}
	sub.Unsubscribe()
}

func TestRenderStreamEmissionContainers(t *testing.T) {
	tests := []struct {
		name string
		emit *spec.Node
		want string
	}{
		{"nil", nil, "<div><jsx-view-empty></jsx-view-empty></div>"},
		{"text", spec.Text("hi"), "<div><jsx-view-observable>hi</jsx-view-observable></div>"},
		{"element", spec.Em("hi"), "<div><em>hi</em></div>"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := mustRender(t, newTestRenderer(), dispose.New(), spec.Div(spec.Stream(stream.Of(tt.emit))))
			if got := dom.OuterHTML(out); got != tt.want {
				t.Errorf("OuterHTML() = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestRenderStreamPlaceholder(t *testing.T) {
	view := stream.NewSubject[*spec.Node]()

	out := mustRender(t, newTestRenderer(), dispose.New(), spec.Div(spec.Stream(view)))
	div := mustElement(t, out)
	if got := dom.OuterHTML(div); got != "<div><jsx-view-observable></jsx-view-observable></div>" {
		t.Fatalf("OuterHTML() before first value = %s", got)
	}

	if err := view.Next(spec.Strong("bold")); err != nil {
		t.Fatal(err)
	}
	if got := dom.OuterHTML(div); got != "<div><strong>bold</strong></div>" {
		t.Errorf("OuterHTML() after first value = %s", got)
	}
}

func TestRenderStreamOfValues(t *testing.T) {
	count := stream.NewBehavior(1)

	out := mustRender(t, newTestRenderer(), dispose.New(), spec.P("count: ", spec.StreamOf[int](count)))
	if got := dom.OuterHTML(out); got != "<p>count: <jsx-view-observable>1</jsx-view-observable></p>" {
		t.Fatalf("OuterHTML() = %s", got)
	}
	if err := count.Update(func(n int) int { return n + 1 }); err != nil {
		t.Fatal(err)
	}
	if got := dom.OuterHTML(out); got != "<p>count: <jsx-view-observable>2</jsx-view-observable></p>" {
		t.Errorf("OuterHTML() after update = %s", got)
	}
}

func TestRenderStreamEmissionError(t *testing.T) {
	view := stream.NewSubject[*spec.Node]()
	mustRender(t, newTestRenderer(), dispose.New(), spec.Div(spec.Stream(view)))

	err := view.Next(spec.H("bad tag", nil))
	if !errors.Is(err, ErrTagName) {
		t.Errorf("Next() error = %v, want %v", err, ErrTagName)
	}
}

func TestRenderStreamEmissionErrorKeepsPrevious(t *testing.T) {
	view := stream.NewSubject[*spec.Node]()
	label := stream.NewBehavior("first")
	parent := mustElement(t, mustRender(t, newTestRenderer(), dispose.New(), spec.Div(spec.Stream(view))))

	if err := view.Next(spec.Span(spec.TitleAttr(label))); err != nil {
		t.Fatal(err)
	}
	if err := view.Next(spec.Div(spec.TitleAttr(stream.NewBehavior("x")), spec.H("bad tag", nil))); !errors.Is(err, ErrTagName) {
		t.Fatalf("Next() error = %v, want %v", err, ErrTagName)
	}

	if got, want := dom.OuterHTML(parent), `<div><span title="first"></span></div>`; got != want {
		t.Errorf("after failed emission got %s, want %s", got, want)
	}
	if label.Observed() != 1 {
		t.Errorf("Observed() = %d, want the shown node to stay subscribed", label.Observed())
	}
	if err := label.Next("second"); err != nil {
		t.Fatal(err)
	}
	if got, _ := parent.QuerySelector("span").GetAttribute("title"); got != "second" {
		t.Errorf("title = %q after update, want second", got)
	}

	if err := view.Next(spec.P("ok")); err != nil {
		t.Fatal(err)
	}
	if got, want := dom.OuterHTML(parent), "<div><p>ok</p></div>"; got != want {
		t.Errorf("got %s, want %s", got, want)
	}
	if label.Observed() != 0 {
		t.Errorf("Observed() = %d after the node was replaced, want 0", label.Observed())
	}
}

func TestRenderTagNameCheckedFirst(t *testing.T) {
	title := stream.NewSubject[string]()
	node := spec.H("my tag", spec.Attrs{{Name: "is", Value: "x y"}, {Name: "title", Value: title}})

	_, err := newTestRenderer().Render(dispose.New(), node)
	if !errors.Is(err, ErrTagName) {
		t.Fatalf("Render() error = %v, want %v", err, ErrTagName)
	}
	if !strings.Contains(err.Error(), `("my tag")`) {
		t.Errorf("error %q should name the tag before the is override", err)
	}
	if title.Observed() != 0 {
		t.Errorf("Observed() = %d, want no attribute work for a rejected tag", title.Observed())
	}
}

func TestRenderLeavesStackBalanced(t *testing.T) {
	ctx := scope.CreateContext("x")
	comp := func(st *scope.Stack, p spec.Props) *spec.Node {
		return spec.Span(scope.MustUse(st, ctx))
	}

	r := newTestRenderer()
	mustRender(t, r, dispose.New(), spec.Div(spec.Component(comp, nil), spec.Component(comp, nil)))

	if r.Stack().Depth() != 0 {
		t.Errorf("Depth() = %d after render, want 0", r.Stack().Depth())
	}
	if r.Stack().Access() != scope.AccessNone {
		t.Errorf("Access() = %v after render, want none", r.Stack().Access())
	}
}

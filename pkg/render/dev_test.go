package render

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/vango-dev/viewspec/pkg/dispose"
	"github.com/vango-dev/viewspec/pkg/dom"
	"github.com/vango-dev/viewspec/pkg/scope"
	"github.com/vango-dev/viewspec/pkg/spec"
	"github.com/vango-dev/viewspec/pkg/stream"
)

func cardComponent(st *scope.Stack, p spec.Props) *spec.Node {
	return spec.Section(spec.Class("card"), spec.H2(p.String("title")), p.Children)
}

func TestAddDevOutsideComponent(t *testing.T) {
	r := newTestRenderer()
	var seen []string
	err := AddDev(r.Stack(), func(el *dom.Element, info DevInfo, sub *dispose.Handle) error {
		seen = append(seen, el.TagName())
		return nil
	})
	if err != nil {
		t.Fatalf("AddDev() error = %v", err)
	}

	mustRender(t, r, dispose.New(), spec.Div(spec.Span(), spec.P()))
	if diff := cmp.Diff([]string{"span", "p", "div"}, seen); diff != "" {
		t.Errorf("hook order mismatch (-want +got):\n%s", diff)
	}
}

func TestAddDevInsideComponent(t *testing.T) {
	var seen []string
	scoped := func(st *scope.Stack, p spec.Props) *spec.Node {
		err := AddDev(st, func(el *dom.Element, info DevInfo, sub *dispose.Handle) error {
			seen = append(seen, el.TagName())
			return nil
		})
		if err != nil {
			t.Errorf("AddDev() error = %v", err)
		}
		return spec.Ul(spec.Li())
	}

	r := newTestRenderer()
	mustRender(t, r, dispose.New(), spec.Div(spec.Component(scoped, nil), spec.P()))
	if diff := cmp.Diff([]string{"li", "ul"}, seen); diff != "" {
		t.Errorf("hook saw elements outside its component (-want +got):\n%s", diff)
	}
}

func TestDevInfo(t *testing.T) {
	r := newTestRenderer()
	infos := map[string]DevInfo{}
	AddDev(r.Stack(), func(el *dom.Element, info DevInfo, sub *dispose.Handle) error {
		infos[el.TagName()] = info
		return nil
	})

	title := spec.Attrs{{Name: "title", Value: "Hello"}}
	mustRender(t, r, dispose.New(), spec.Component(cardComponent, title, spec.Em("body")))

	section := infos["section"]
	if !strings.HasSuffix(section.DirectParentComponent, "cardComponent") {
		t.Errorf("section DirectParentComponent = %q, want cardComponent", section.DirectParentComponent)
	}
	if diff := cmp.Diff(title, section.DirectParentAttrs); diff != "" {
		t.Errorf("section DirectParentAttrs mismatch (-want +got):\n%s", diff)
	}
	if v, _ := section.IntrinsicAttrs.Get("class"); v != "card" {
		t.Errorf("section IntrinsicAttrs class = %v, want card", v)
	}

	h2 := infos["h2"]
	if h2.DirectParentComponent != "" {
		t.Errorf("h2 DirectParentComponent = %q, want empty", h2.DirectParentComponent)
	}
	if !strings.HasSuffix(h2.ParentComponent, "cardComponent") {
		t.Errorf("h2 ParentComponent = %q, want cardComponent", h2.ParentComponent)
	}
}

func TestDevSource(t *testing.T) {
	spec.DebugMode = true
	defer func() { spec.DebugMode = false }()

	r := newTestRenderer()
	var src *spec.DevSource
	AddDev(r.Stack(), func(el *dom.Element, info DevInfo, sub *dispose.Handle) error {
		src = info.Source
		return nil
	})
	mustRender(t, r, dispose.New(), spec.Div())

	if src == nil {
		t.Fatal("Source is nil in debug mode")
	}
	if !strings.HasSuffix(src.File, "dev_test.go") {
		t.Errorf("Source.File = %q, want dev_test.go", src.File)
	}
}

func TestDevHookFailureIsolated(t *testing.T) {
	tests := []struct {
		name string
		hook DevFunc
	}{
		{"error", func(*dom.Element, DevInfo, *dispose.Handle) error { return errors.New("hook failed") }},
		{"panic", func(*dom.Element, DevInfo, *dispose.Handle) error { panic("hook exploded") }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewMetrics(WithRegistry(prometheus.NewRegistry()))
			r := newTestRenderer(WithMetrics(m))
			if err := AddDev(r.Stack(), tt.hook); err != nil {
				t.Fatal(err)
			}

			out := mustRender(t, r, dispose.New(), spec.Div(spec.Span("ok")))
			if got := dom.OuterHTML(out); got != "<div><span>ok</span></div>" {
				t.Errorf("OuterHTML() = %s", got)
			}
			if got := testutil.ToFloat64(m.hookFailures); got != 2 {
				t.Errorf("hook failures = %v, want 2", got)
			}
		})
	}
}

func TestAddDevNilDisables(t *testing.T) {
	r := newTestRenderer()
	calls := 0
	AddDev(r.Stack(), func(*dom.Element, DevInfo, *dispose.Handle) error {
		calls++
		return nil
	})
	AddDev(r.Stack(), nil)

	mustRender(t, r, dispose.New(), spec.Div())
	if calls != 0 {
		t.Errorf("calls = %d after disabling, want 0", calls)
	}
}

func TestRefFunc(t *testing.T) {
	var (
		got      *dom.Element
		children int
		refSub   *dispose.Handle
	)
	ref := RefFunc(func(el *dom.Element, sub *dispose.Handle) {
		got = el
		children = len(el.ChildNodes())
		refSub = sub
	})

	sub := dispose.New()
	out := mustRender(t, newTestRenderer(), sub, spec.Div(spec.Ref(ref), spec.Span(), spec.Span()))

	if got != out {
		t.Error("ref did not receive the rendered element")
	}
	if children != 2 {
		t.Errorf("children at ref time = %d, want 2", children)
	}
	if refSub != sub {
		t.Error("ref did not receive the element's disposal handle")
	}
	if got.HasAttribute("ref") {
		t.Error("ref must not be set as an attribute")
	}
}

func TestRefSink(t *testing.T) {
	sink := stream.NewSubject[Mounted]()
	var mounted []Mounted
	unsub, _ := sink.Subscribe(func(m Mounted) error {
		mounted = append(mounted, m)
		return nil
	}, nil)
	defer unsub()

	out := mustRender(t, newTestRenderer(), dispose.New(), spec.Input(spec.Ref(sink)))
	if len(mounted) != 1 {
		t.Fatalf("sink received %d values, want 1", len(mounted))
	}
	if mounted[0].Element != out {
		t.Error("sink received the wrong element")
	}
}

func TestRefReadsContext(t *testing.T) {
	var got string
	comp := func(st *scope.Stack, p spec.Props) *spec.Node {
		scope.Add(st, themeContext, "from-component")
		return spec.Div(spec.Ref(func(el *dom.Element, sub *dispose.Handle) {
			got, _ = scope.Use(st, themeContext)
		}))
	}

	mustRender(t, newTestRenderer(), dispose.New(), spec.Component(comp, nil))
	if got != "from-component" {
		t.Errorf("Use() in ref = %q, want from-component", got)
	}
}

func TestRefCleanupReleasedWithStream(t *testing.T) {
	released := 0
	ref := RefFunc(func(el *dom.Element, sub *dispose.Handle) {
		sub.Add(func() { released++ })
	})
	view := stream.NewBehavior(spec.Div(spec.Ref(ref)))

	mustRender(t, newTestRenderer(), dispose.New(), spec.Main(spec.Stream(view)))
	if err := view.Next(spec.P()); err != nil {
		t.Fatal(err)
	}
	if released != 1 {
		t.Errorf("ref cleanups run = %d, want 1", released)
	}
}

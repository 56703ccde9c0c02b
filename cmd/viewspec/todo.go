package main

import (
	"log/slog"
	"slices"
	"strings"

	"github.com/vango-dev/viewspec/pkg/dispose"
	"github.com/vango-dev/viewspec/pkg/dom"
	"github.com/vango-dev/viewspec/pkg/render"
	"github.com/vango-dev/viewspec/pkg/scope"
	"github.com/vango-dev/viewspec/pkg/spec"
	"github.com/vango-dev/viewspec/pkg/stream"
)

type todo struct {
	Title string
	Done  bool
}

// todoState is the demo's application state.
type todoState struct {
	title  string
	theme  *stream.Behavior[string]
	items  *stream.Behavior[[]todo]
	logger *slog.Logger
}

func newTodoState(title, theme string, items []string, logger *slog.Logger) *todoState {
	todos := make([]todo, 0, len(items))
	for _, item := range items {
		todos = append(todos, todo{Title: item})
	}
	return &todoState{
		title:  title,
		theme:  stream.NewBehavior(theme),
		items:  stream.NewBehavior(todos),
		logger: logger,
	}
}

func (s *todoState) toggle(i int) error {
	return s.items.Update(func(items []todo) []todo {
		out := slices.Clone(items)
		if i >= 0 && i < len(out) {
			out[i].Done = !out[i].Done
		}
		return out
	})
}

func (s *todoState) add(title string) error {
	return s.items.Update(func(items []todo) []todo {
		return append(slices.Clone(items), todo{Title: title})
	})
}

func (s *todoState) flipTheme() error {
	return s.theme.Update(func(theme string) string {
		if theme == "dark" {
			return "light"
		}
		return "dark"
	})
}

var (
	stateContext = scope.CreateContext[*todoState](nil)
	themeContext = scope.CreateContext("light")
)

func todoApp(st *scope.Stack, p spec.Props) *spec.Node {
	state := p.Get("state").(*todoState)
	scope.Add(st, stateContext, state)
	scope.Add(st, themeContext, state.theme.Value())

	return spec.Main(
		spec.Class("app"),
		spec.DynClass(stream.Map[string, string](state.theme, themeClass)),
		spec.DynStyle(stream.Map[string, spec.Style](state.theme, themeStyle)),
		spec.Header(
			spec.H1(state.title),
			spec.Component(openCount, nil),
		),
		spec.Stream(stream.Map[[]todo, *spec.Node](state.items, todoList)),
		spec.Footer(spec.Component(themeLabel, nil)),
	)
}

func openCount(st *scope.Stack, p spec.Props) *spec.Node {
	state := scope.MustUse(st, stateContext)
	open := stream.Distinct(stream.Map[[]todo, int](state.items, countOpen))
	return spec.P(spec.Class("count"), spec.StreamOf[int](open), " open")
}

func todoList(items []todo) *spec.Node {
	if len(items) == 0 {
		return spec.P(spec.Class("empty"), "Nothing to do")
	}
	children := make([]any, 0, len(items)+1)
	children = append(children, spec.Class("todos"))
	for i, t := range items {
		children = append(children, spec.Component(todoItem, spec.Attrs{
			{Name: "index", Value: i},
			{Name: "todo", Value: t},
		}))
	}
	return spec.Ul(children...)
}

func todoItem(st *scope.Stack, p spec.Props) *spec.Node {
	state := scope.MustUse(st, stateContext)
	theme := scope.MustUse(st, themeContext)
	i := p.Get("index").(int)
	t := p.Get("todo").(todo)

	onChange := func(*dom.Event) {
		if err := state.toggle(i); err != nil {
			state.logger.Error("toggle failed", "index", i, "error", err)
		}
	}
	return spec.Li(
		spec.DynClass(spec.ClassMap{"done": t.Done}),
		spec.Data("theme", theme),
		spec.Label(
			spec.Input(spec.Type("checkbox"), spec.Checked(t.Done), spec.OnChange(onChange)),
			spec.Span(t.Title),
		),
	)
}

func themeLabel(st *scope.Stack, p spec.Props) *spec.Node {
	return spec.Small("started in ", scope.MustUse(st, themeContext), " theme")
}

func countOpen(items []todo) int {
	n := 0
	for _, t := range items {
		if !t.Done {
			n++
		}
	}
	return n
}

func themeClass(theme string) string {
	return "theme-" + theme
}

func themeStyle(theme string) spec.Style {
	if theme == "dark" {
		return spec.Style{"color": "#eee", "backgroundColor": "#222", "--accent": "#8ab4f8"}
	}
	return spec.Style{"color": "#222", "backgroundColor": "#fff", "--accent": "#1a73e8"}
}

// inspectHook marks every element a component returned with the
// component's name.
func inspectHook(el *dom.Element, info render.DevInfo, sub *dispose.Handle) error {
	if info.DirectParentComponent == "" {
		return nil
	}
	name := info.DirectParentComponent
	if i := strings.LastIndex(name, "."); i >= 0 {
		name = name[i+1:]
	}
	el.SetAttribute("data-component", name)
	return nil
}

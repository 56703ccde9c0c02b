package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
	"github.com/spf13/cobra"
	"github.com/vango-dev/viewspec/internal/config"
	"github.com/vango-dev/viewspec/pkg/dispose"
	"github.com/vango-dev/viewspec/pkg/dom"
	"github.com/vango-dev/viewspec/pkg/render"
	"github.com/vango-dev/viewspec/pkg/spec"
)

func demoCmd() *cobra.Command {
	var (
		emit    int
		pretty  bool
		inspect bool
		metrics bool
		theme   string
	)

	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Render the todo demo with default settings",
		Long: `Render the todo demo, then apply state changes and print the
HTML after each one.

Each change cycles through toggling an item (by dispatching a change
event on its checkbox), switching the theme and adding an item.

Examples:
  viewspec demo
  viewspec demo --emit 6 --pretty
  viewspec demo --inspect --metrics`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.New()
			cfg.Render.Pretty = pretty
			cfg.Render.Inspect = inspect
			cfg.Metrics.Enabled = metrics
			if theme != "" {
				cfg.Demo.Theme = theme
			}
			if err := cfg.Validate(); err != nil {
				return err
			}
			return runDemo(cmd.Context(), cmd.OutOrStdout(), cfg, emit, cfg.NewLogger(cmd.ErrOrStderr()))
		},
	}

	cmd.Flags().IntVarP(&emit, "emit", "n", 3, "Number of state changes to apply")
	cmd.Flags().BoolVar(&pretty, "pretty", false, "Indent the HTML output")
	cmd.Flags().BoolVar(&inspect, "inspect", false, "Mark elements with the component that returned them")
	cmd.Flags().BoolVar(&metrics, "metrics", false, "Print render metrics at the end")
	cmd.Flags().StringVar(&theme, "theme", "", "Initial theme (light or dark)")

	return cmd
}

func renderCmd() *cobra.Command {
	var (
		configPath string
		emit       int
	)

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render the todo demo as configured in viewspec.json",
		Long: `Render the todo demo using the settings in viewspec.json.

Without --config, viewspec.json is looked up in the working directory
and its parents; the defaults are used when there is none.

Examples:
  viewspec render
  viewspec render --config ./viewspec.json --emit 2`,
		RunE: func(cmd *cobra.Command, args []string) error {
			var (
				cfg *config.Config
				err error
			)
			if configPath != "" {
				cfg, err = config.LoadFile(configPath)
			} else {
				cfg, err = config.LoadFromDir(".")
			}
			if err != nil {
				return err
			}
			return runDemo(cmd.Context(), cmd.OutOrStdout(), cfg, emit, cfg.NewLogger(cmd.ErrOrStderr()))
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Path to viewspec.json")
	cmd.Flags().IntVarP(&emit, "emit", "n", 0, "Number of state changes to apply")

	return cmd
}

func runDemo(ctx context.Context, w io.Writer, cfg *config.Config, emit int, logger *slog.Logger) error {
	spec.DebugMode = cfg.Render.Debug

	opts := []render.Option{render.WithLogger(logger)}
	var registry *prometheus.Registry
	if cfg.Metrics.Enabled {
		registry = prometheus.NewRegistry()
		opts = append(opts, render.WithMetrics(render.NewMetrics(
			render.WithRegistry(registry),
			render.WithNamespace(cfg.Metrics.Namespace),
			render.WithSubsystem(cfg.Metrics.Subsystem),
		)))
	}
	r := render.New(opts...)
	if cfg.Render.Inspect {
		if err := render.AddDev(r.Stack(), inspectHook); err != nil {
			return err
		}
	}

	state := newTodoState(cfg.Demo.Title, cfg.Demo.Theme, cfg.Demo.Items, logger)
	sub := dispose.New()
	defer sub.Unsubscribe()

	out, err := r.RenderContext(ctx, sub, spec.Component(todoApp, spec.Attrs{{Name: "state", Value: state}}))
	if err != nil {
		return err
	}
	root, ok := out.(*dom.Element)
	if !ok {
		return fmt.Errorf("demo rendered %T, want an element", out)
	}

	html := dom.SerializeConfig{Pretty: cfg.Render.Pretty, Indent: cfg.Render.Indent}
	printHTML := func(label string) error {
		fmt.Fprintf(w, "<!-- %s -->\n", label)
		if err := dom.WriteHTML(w, root, html); err != nil {
			return err
		}
		if !html.Pretty {
			fmt.Fprintln(w)
		}
		return nil
	}

	if err := printHTML("initial"); err != nil {
		return err
	}
	for i := 0; i < emit; i++ {
		label, err := applyStep(root, state, i)
		if err != nil {
			return err
		}
		logger.Debug("applied demo step", "step", i+1, "change", label)
		if err := printHTML(fmt.Sprintf("%d: %s", i+1, label)); err != nil {
			return err
		}
	}

	if registry != nil {
		families, err := registry.Gather()
		if err != nil {
			return err
		}
		enc := expfmt.NewEncoder(w, expfmt.FmtText)
		for _, mf := range families {
			if err := enc.Encode(mf); err != nil {
				return err
			}
		}
	}
	return nil
}

// applyStep applies the i-th scripted change and describes it.
func applyStep(root *dom.Element, state *todoState, i int) (string, error) {
	switch i % 3 {
	case 0:
		boxes := root.GetElementsByTagName("input")
		if len(boxes) == 0 {
			return "add First item", state.add("First item")
		}
		k := (i / 3) % len(boxes)
		boxes[k].Dispatch(dom.NewEvent("change"))
		return fmt.Sprintf("toggle item %d", k+1), nil
	case 1:
		return "switch theme", state.flipTheme()
	default:
		title := fmt.Sprintf("Item %d", len(state.items.Value())+1)
		return "add " + title, state.add(title)
	}
}

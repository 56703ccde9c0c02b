package main

import (
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/vango-dev/viewspec/internal/config"
	"github.com/vango-dev/viewspec/internal/errors"
)

func initCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init [dir]",
		Short: "Write a viewspec.json with the default settings",
		Long: `Write a viewspec.json with the default settings to dir, or to the
working directory when dir is omitted.

An existing viewspec.json is kept unless --force is given.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) == 1 {
				dir = args[0]
			}
			if config.Exists(dir) && !force {
				return errors.Newf(errors.CategoryConfig, "%s already exists in %s", config.ConfigFileName, dir).
					WithSuggestion("Use --force to overwrite it")
			}

			path := filepath.Join(dir, config.ConfigFileName)
			if err := config.New().SaveTo(path); err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			success(w, "Created %s", path)
			info(w, "Run 'viewspec render' in %s to render the demo", dir)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "Overwrite an existing viewspec.json")

	return cmd
}

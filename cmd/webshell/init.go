package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-webshell/pkg/wizard"
)

type initFlags struct {
	force bool
}

func newInitCmd(a *app) *cobra.Command {
	var flags initFlags
	cmd := &cobra.Command{
		Use:   "init [project]",
		Short: "Create a project file interactively",
		Long:  "Walk through every setting and write the answers to a project file (webshell.yaml by default).",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "webshell.yaml"
			if len(args) == 1 {
				path = args[0]
			}
			return a.initProject(cmd, path, flags.force)
		},
	}
	cmd.Flags().BoolVar(&flags.force, "force", false, "Overwrite an existing project file, using its values as defaults")
	return cmd
}

func (a *app) initProject(cmd *cobra.Command, path string, force bool) error {
	store := a.store()

	var opts []wizard.Option
	if _, err := os.Stat(path); err == nil {
		if !force {
			return fmt.Errorf("init: %s already exists; use --force to overwrite", path)
		}
		if existing, err := store.Load(path); err == nil {
			opts = append(opts, wizard.WithInitial(existing))
		} else {
			a.logger.Sugar().Named("init").Warnw("existing project ignored", "path", path, "error", err)
		}
	}

	cfg, err := wizard.Run(cmd.Context(), a.newDriver(a.stdout), opts...)
	if err != nil {
		return err
	}
	if err := store.Save(path, cfg); err != nil {
		return err
	}
	a.success("project written to %s", path)
	return nil
}

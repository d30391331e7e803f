package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newValidateCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "validate <project>...",
		Short: "Check project files without rendering",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.validate(args)
		},
	}
}

func (a *app) validate(paths []string) error {
	store := a.store()
	failed := 0
	for _, path := range paths {
		if _, err := store.Load(path); err != nil {
			failed++
			a.failure("✗ %s: %v", path, err)
			continue
		}
		a.success("✓ %s", path)
	}
	if failed > 0 {
		return fmt.Errorf("validate: %d of %d project files are invalid", failed, len(paths))
	}
	return nil
}

package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func newTargetsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "targets",
		Short: "List available render targets and their regions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			registry, err := a.registry("")
			if err != nil {
				return err
			}
			for _, name := range registry.List() {
				asm, err := registry.Get(name)
				if err != nil {
					return err
				}
				if _, err := fmt.Fprintf(a.stdout, "%-8s %s\n", name, strings.Join(asm.Regions(), ", ")); err != nil {
					return err
				}
			}
			return nil
		},
	}
}

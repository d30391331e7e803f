package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func newHistoryCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "history <out-dir>",
		Short:   "List render runs recorded in an output directory",
		Example: "  webshell history build/",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			history := a.store().History(args[0])
			entries, err := history.Entries()
			if err != nil {
				return err
			}
			if len(entries) == 0 {
				_, err := fmt.Fprintf(a.stdout, "no builds recorded in %s\n", args[0])
				return err
			}
			for _, entry := range entries {
				if _, err := fmt.Fprintf(a.stdout, "%s  %-24s %-12s %s\n",
					entry.Timestamp.Local().Format("2006-01-02 15:04:05"),
					entry.PackageIdentifier,
					strings.Join(entry.Targets, ","),
					entry.Project,
				); err != nil {
					return err
				}
			}
			return nil
		},
	}
}

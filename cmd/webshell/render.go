package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-webshell/pkg/assembler"
)

type renderFlags struct {
	project      string
	targets      []string
	outDir       string
	templatesDir string
}

func newRenderCmd(a *app) *cobra.Command {
	var flags renderFlags
	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render host screen sources from a project file",
		Long: "Render the host screen for each requested target. Without --out the single\n" +
			"rendered source is written to stdout; with --out every source is written to\n" +
			"its project-relative path under the output directory and the run is appended\n" +
			"to the directory's build history.",
		Example: "  webshell render -p webshell.yaml\n  webshell render -p webshell.yaml -t all -o build/",
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.render(flags)
		},
	}
	cmd.Flags().StringVarP(&flags.project, "project", "p", "webshell.yaml", "Project file (YAML or JSON)")
	cmd.Flags().StringSliceVarP(&flags.targets, "target", "t", []string{assembler.AndroidTargetName}, "Targets to render, or \"all\"")
	cmd.Flags().StringVarP(&flags.outDir, "out", "o", "", "Output directory (stdout if empty)")
	cmd.Flags().StringVar(&flags.templatesDir, "templates-dir", "", "Directory holding templates/<target>/ skeletons that replace the embedded ones")
	return cmd
}

func (a *app) render(flags renderFlags) error {
	log := a.logger.Sugar().Named("render")

	store := a.store()
	cfg, err := store.Load(flags.project)
	if err != nil {
		return err
	}

	registry, err := a.registry(flags.templatesDir)
	if err != nil {
		return err
	}
	targets, err := resolveTargets(registry, flags.targets)
	if err != nil {
		return err
	}
	if flags.outDir == "" && len(targets) > 1 {
		return errors.New("render: --out is required when rendering more than one target")
	}

	for _, name := range targets {
		asm, err := registry.Get(name)
		if err != nil {
			return err
		}
		src, err := asm.Render(cfg)
		if err != nil {
			return fmt.Errorf("render %s: %w", name, err)
		}
		log.Debugw("rendered", "target", name, "path", src.Path, "regions", asm.ActiveRegions(cfg))

		if flags.outDir == "" {
			_, err := io.WriteString(a.stdout, src.Content)
			return err
		}
		dest := filepath.Join(flags.outDir, filepath.FromSlash(src.Path))
		if err := os.MkdirAll(filepath.Dir(dest), 0o755); err != nil {
			return fmt.Errorf("render: create %s: %w", filepath.Dir(dest), err)
		}
		if err := os.WriteFile(dest, []byte(src.Content), 0o644); err != nil {
			return fmt.Errorf("render: write %s: %w", dest, err)
		}
		a.success("%s written to %s", name, dest)
	}

	if _, err := store.History(flags.outDir).Record(flags.project, cfg, targets); err != nil {
		return fmt.Errorf("render: %w", err)
	}
	return nil
}

func resolveTargets(registry *assembler.Registry, requested []string) ([]string, error) {
	var out []string
	seen := make(map[string]struct{})
	for _, name := range requested {
		names := []string{name}
		if name == "all" {
			names = registry.List()
		}
		for _, n := range names {
			if !registry.Has(n) {
				return nil, fmt.Errorf("render: unknown target %q (available: %v)", n, registry.List())
			}
			if _, dup := seen[n]; dup {
				continue
			}
			seen[n] = struct{}{}
			out = append(out, n)
		}
	}
	if len(out) == 0 {
		return nil, errors.New("render: at least one target is required")
	}
	return out, nil
}

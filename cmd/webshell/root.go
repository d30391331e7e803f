package main

import (
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	webshell "github.com/goliatone/go-webshell"
	"github.com/goliatone/go-webshell/internal/logging"
	"github.com/goliatone/go-webshell/pkg/assembler"
	"github.com/goliatone/go-webshell/pkg/project"
	"github.com/goliatone/go-webshell/pkg/render/template/gotemplate"
	"github.com/goliatone/go-webshell/pkg/wizard"
)

var version = "v0.1.0"

// app carries the state shared by every subcommand.
type app struct {
	stdout io.Writer
	stderr io.Writer

	logLevel  string
	logFormat string

	logger    *zap.Logger
	newDriver func(out io.Writer) wizard.PromptDriver
}

func newApp(stdout, stderr io.Writer) *app {
	return &app{
		stdout:    stdout,
		stderr:    stderr,
		logger:    zap.NewNop(),
		newDriver: wizard.NewSurveyDriver,
	}
}

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:           "webshell",
		Short:         "webshell generates mobile web view host screens",
		Long:          "Render Android and iOS host screen sources that embed remote or bundled web content, driven by a project file.",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			logger, err := logging.New(a.logLevel, a.logFormat, a.stderr)
			if err != nil {
				return err
			}
			a.logger = logger
			return nil
		},
	}
	root.SetOut(a.stdout)
	root.SetErr(a.stderr)

	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "warn", "Log level (debug|info|warn|error)")
	root.PersistentFlags().StringVar(&a.logFormat, "log-format", logging.FormatConsole, "Log format (console|json)")

	root.AddCommand(
		newRenderCmd(a),
		newValidateCmd(a),
		newInitCmd(a),
		newTargetsCmd(a),
		newHistoryCmd(a),
	)
	return root
}

func (a *app) store() *project.Store {
	return project.NewStore(project.WithLogger(a.logger))
}

// registry returns the built-in targets. A non-empty templatesDir replaces the
// embedded skeletons; includes inside them resolve against the same directory.
func (a *app) registry(templatesDir string) (*assembler.Registry, error) {
	if templatesDir == "" {
		return webshell.DefaultRegistry()
	}
	engine, err := gotemplate.New(gotemplate.WithBaseDir(templatesDir))
	if err != nil {
		return nil, err
	}
	return webshell.NewRegistry(
		assembler.WithTemplatesFS(os.DirFS(templatesDir)),
		assembler.WithTemplateRenderer(engine),
	)
}

func (a *app) success(format string, args ...any) {
	color.New(color.FgGreen).Fprintf(a.stdout, format+"\n", args...)
}

func (a *app) failure(format string, args ...any) {
	color.New(color.FgRed).Fprintf(a.stderr, format+"\n", args...)
}

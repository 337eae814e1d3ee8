package cli

import (
	"fmt"
	"io"
	"log/slog"
	"slices"

	"github.com/spf13/cobra"

	"github.com/roach88/mdgen/internal/config"
	"github.com/roach88/mdgen/internal/ir"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	Verbose bool
	Format  string // "json" | "text"
	Config  string // explicit config file, empty for discovery

	project    *config.Project
	configPath string
}

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{"text", "json"}

// Project loads the project configuration once and caches it.
func (o *RootOptions) Project() (config.Project, string, error) {
	if o.project != nil {
		return *o.project, o.configPath, nil
	}
	p, path, err := config.Load(o.Config)
	if err != nil {
		return config.Project{}, "", err
	}
	o.project, o.configPath = &p, path
	return p, path, nil
}

func (o *RootOptions) formatter(cmd *cobra.Command) *OutputFormatter {
	return &OutputFormatter{
		Format:  o.Format,
		Writer:  cmd.OutOrStdout(),
		Verbose: o.Verbose,
	}
}

// NewRootCommand creates the root command for the mdgen CLI.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "mdgen",
		Short: "mdgen - model-driven application generator",
		Long: `Turn a conceptual entity-relationship model into a platform-independent
model, backend and frontend platform models, and the generated source
files of a Flask and React application.`,
		Version:       ir.GeneratorVersion,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !isValidFormat(opts.Format) {
				return fmt.Errorf("invalid format %q: must be one of %v", opts.Format, ValidFormats)
			}
			setupLogging(cmd.ErrOrStderr(), opts.Verbose)
			return nil
		},
	}

	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", "text", "output format (json|text)")
	cmd.PersistentFlags().StringVar(&opts.Config, "config", "", "path to mdgen.yaml (default: discovered)")

	cmd.AddCommand(NewValidateCommand(opts))
	cmd.AddCommand(NewTransformCommand(opts))
	cmd.AddCommand(NewGenerateCommand(opts))
	cmd.AddCommand(NewHistoryCommand(opts))
	cmd.AddCommand(NewTestCommand(opts))
	cmd.AddCommand(NewConfigCommand(opts))

	return cmd
}

// setupLogging installs the process-wide slog handler. Logs go to stderr
// so they never mix with command output.
func setupLogging(w io.Writer, verbose bool) {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})))
}

// isValidFormat checks if the format is one of the allowed values.
func isValidFormat(format string) bool {
	return slices.Contains(ValidFormats, format)
}

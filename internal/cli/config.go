package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"sigs.k8s.io/yaml"
)

// NewConfigCommand creates the config command group.
func NewConfigCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Configuration utilities",
	}
	cmd.AddCommand(newConfigShowCommand(rootOpts))
	return cmd
}

func newConfigShowCommand(rootOpts *RootOptions) *cobra.Command {
	var showSource bool

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show effective configuration",
		Long:  `Show the effective configuration after merging defaults, config file, and environment variables.`,
		Example: `  # Show effective configuration
  mdgen config show

  # Show configuration with source file path
  mdgen config show --source`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			f := rootOpts.formatter(cmd)

			project, path, err := rootOpts.Project()
			if err != nil {
				return f.Fail(ExitCommandError, ErrCodeConfig, "loading configuration", err)
			}

			if f.JSON() {
				return f.Success(map[string]any{"config_file": path, "config": project})
			}

			w := cmd.OutOrStdout()
			if showSource {
				if path != "" {
					fmt.Fprintf(w, "Config file: %s\n\n", path)
				} else {
					fmt.Fprintln(w, "Config file: (none, using defaults)")
					fmt.Fprintln(w)
				}
			}

			out, err := yaml.Marshal(project)
			if err != nil {
				return err
			}
			fmt.Fprint(w, string(out))
			return nil
		},
	}

	cmd.Flags().BoolVar(&showSource, "source", false, "show config file source")
	return cmd
}

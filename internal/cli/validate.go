package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/roach88/mdgen/internal/compiler"
)

// ValidationResult is the JSON payload of a successful validate.
type ValidationResult struct {
	Valid         bool     `json:"valid"`
	Entities      []string `json:"entities"`
	Relationships int      `json:"relationships"`
}

// NewValidateCommand creates the validate command.
func NewValidateCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate <model>",
		Short: "Validate a model without transforming it",
		Long: `Parse a YAML or CUE model and check its structure: entity and
attribute names, relationship ends and multiplicity tokens. All errors
are reported, not just the first.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(rootOpts, args[0], cmd)
		},
	}

	return cmd
}

func runValidate(opts *RootOptions, path string, cmd *cobra.Command) error {
	f := opts.formatter(cmd)

	m, err := loadValidModel(f, path)
	if err != nil {
		return err
	}

	if f.JSON() {
		return f.Success(ValidationResult{
			Valid:         true,
			Entities:      m.EntityNames(),
			Relationships: len(m.Relationships),
		})
	}
	return f.Success(fmt.Sprintf("✓ Model valid (%d entities, %d relationships)", len(m.Entities), len(m.Relationships)))
}

// outputValidationErrors reports every validation error and returns the
// failure exit.
func outputValidationErrors(f *OutputFormatter, errs []compiler.ValidationError) error {
	msg := fmt.Sprintf("model has %d validation error(s)", len(errs))
	if f.JSON() {
		if err := f.Error(ErrCodeValidation, msg, errs); err != nil {
			return err
		}
		return NewExitError(ExitFailure, msg)
	}

	fmt.Fprintf(f.Writer, "✗ %s:\n", msg)
	for _, e := range errs {
		fmt.Fprintf(f.Writer, "  %s\n", e.Error())
	}
	return NewExitError(ExitFailure, msg)
}

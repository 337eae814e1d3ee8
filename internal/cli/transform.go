package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/roach88/mdgen/internal/generator"
	"github.com/roach88/mdgen/internal/ir"
)

// Transformation stages.
const (
	StagePIM      = "pim"
	StageBackend  = "backend"
	StageFrontend = "frontend"
)

// TransformOptions holds flags for the transform command.
type TransformOptions struct {
	*RootOptions
	Stage        string
	OutputFormat string
}

// exporter is implemented by every derived model.
type exporter interface {
	ToDict() ir.Object
	ToYAML() ([]byte, error)
}

// NewTransformCommand creates the transform command.
func NewTransformCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &TransformOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "transform <model>",
		Short: "Print one derived model",
		Long: `Run the transformation pipeline and print the model for one stage:
the platform-independent model (pim), the backend model (backend) or the
frontend model (frontend).

Examples:
  mdgen transform clinic.yaml
  mdgen transform clinic.cue --stage backend --output-format json`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTransform(opts, args[0], cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Stage, "stage", StagePIM, "stage to print (pim|backend|frontend)")
	cmd.Flags().StringVar(&opts.OutputFormat, "output-format", "yaml", "document format (json|yaml)")

	return cmd
}

func runTransform(opts *TransformOptions, path string, cmd *cobra.Command) error {
	f := opts.formatter(cmd)

	if opts.OutputFormat != "json" && opts.OutputFormat != "yaml" {
		return f.Fail(ExitCommandError, ErrCodeGeneric, fmt.Sprintf("invalid output format %q: must be json or yaml", opts.OutputFormat), nil)
	}

	switch opts.Stage {
	case StagePIM, StageBackend, StageFrontend:
	default:
		return f.Fail(ExitCommandError, ErrCodeGeneric, fmt.Sprintf("invalid stage %q: must be pim, backend or frontend", opts.Stage), nil)
	}

	project, _, err := opts.Project()
	if err != nil {
		return f.Fail(ExitCommandError, ErrCodeConfig, "loading configuration", err)
	}

	m, err := loadValidModel(f, path)
	if err != nil {
		return err
	}

	res, err := generator.Pipeline(m, project)
	if err != nil {
		return f.Fail(ExitFailure, ErrCodeTransform, "transformation failed", err)
	}

	var doc exporter
	switch opts.Stage {
	case StagePIM:
		doc = res.PIM
	case StageBackend:
		doc = res.Backend
	default:
		doc = res.Frontend
	}

	var out []byte
	if opts.OutputFormat == "json" {
		out, err = ir.MarshalCanonical(doc.ToDict())
		out = append(out, '\n')
	} else {
		out, err = doc.ToYAML()
	}
	if err != nil {
		return f.Fail(ExitFailure, ErrCodeGeneric, "encoding output", err)
	}

	_, err = cmd.OutOrStdout().Write(out)
	return err
}

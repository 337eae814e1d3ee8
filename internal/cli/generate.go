package cli

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/roach88/mdgen/internal/generator"
	"github.com/roach88/mdgen/internal/ir"
	"github.com/roach88/mdgen/internal/render"
	"github.com/roach88/mdgen/internal/store"
)

// GenerateOptions holds flags for the generate command.
type GenerateOptions struct {
	*RootOptions
	OutputDir string
	DBPath    string
}

// GenerateResult is the JSON payload of a successful generate.
type GenerateResult struct {
	OutputDir string   `json:"output_dir"`
	Artifacts []string `json:"artifacts"`
	ModelHash string   `json:"model_hash"`
	RunID     string   `json:"run_id,omitempty"`
}

// NewGenerateCommand creates the generate command.
func NewGenerateCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &GenerateOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "generate <model>",
		Short: "Generate application source files",
		Long: `Run the full pipeline and write the backend and frontend source files
selected by the project configuration. Nothing is written unless every
generator succeeds. With --db the run and the content hash of every
written file are recorded in a SQLite history.

Examples:
  mdgen generate clinic.yaml -o ./out
  mdgen generate clinic.yaml -o ./out --db runs.db`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd.Context(), opts, args[0], cmd)
		},
	}

	cmd.Flags().StringVarP(&opts.OutputDir, "output", "o", ".", "output directory")
	cmd.Flags().StringVar(&opts.DBPath, "db", "", "record the run in this SQLite database")

	return cmd
}

func runGenerate(ctx context.Context, opts *GenerateOptions, path string, cmd *cobra.Command) error {
	if ctx == nil {
		ctx = context.Background()
	}
	f := opts.formatter(cmd)

	project, configPath, err := opts.Project()
	if err != nil {
		return f.Fail(ExitCommandError, ErrCodeConfig, "loading configuration", err)
	}
	slog.Debug("configuration loaded", "path", configPath, "project", project.ProjectName)

	m, err := loadValidModel(f, path)
	if err != nil {
		return err
	}

	res, err := generator.Pipeline(m, project)
	if err != nil {
		return f.Fail(ExitFailure, ErrCodeTransform, "transformation failed", err)
	}

	renderer, err := render.New()
	if err != nil {
		return f.Fail(ExitFailure, ErrCodeGenerate, "loading templates", err)
	}
	arts, err := generator.NewRegistry(renderer).Generate(generator.Input{Project: project, Result: res})
	if err != nil {
		return f.Fail(ExitFailure, ErrCodeGenerate, "generation failed", err)
	}

	if err := generator.WriteArtifacts(opts.OutputDir, arts); err != nil {
		return f.Fail(ExitCommandError, ErrCodeWriteFailed, "writing artifacts", err)
	}

	modelHash, err := ir.ModelHash(m.ToDict())
	if err != nil {
		return f.Fail(ExitFailure, ErrCodeGeneric, "hashing model", err)
	}

	result := GenerateResult{
		OutputDir: opts.OutputDir,
		Artifacts: make([]string, len(arts)),
		ModelHash: modelHash,
	}
	for i, a := range arts {
		result.Artifacts[i] = a.Path
	}

	if opts.DBPath != "" {
		run, err := recordRun(ctx, opts.DBPath, project.ProjectName, project.Backend.Architecture, modelHash, arts)
		if err != nil {
			return f.Fail(ExitCommandError, ErrCodeStore, "recording run", err)
		}
		result.RunID = run.ID
	}

	if f.JSON() {
		return f.Success(result)
	}
	msg := fmt.Sprintf("✓ Generated %d file(s) in %s", len(arts), opts.OutputDir)
	if result.RunID != "" {
		msg += fmt.Sprintf("\n  run %s", result.RunID)
	}
	return f.Success(msg)
}

func recordRun(ctx context.Context, dbPath, project, architecture, modelHash string, arts []generator.Artifact) (store.Run, error) {
	st, err := store.Open(dbPath)
	if err != nil {
		return store.Run{}, err
	}
	defer st.Close()

	records := make([]store.ArtifactRecord, len(arts))
	for i, a := range arts {
		records[i] = store.ArtifactRecord{
			Path:        a.Path,
			ContentHash: ir.ArtifactHash(a.Path, a.Content),
			Size:        len(a.Content),
		}
	}
	return st.RecordRun(ctx, store.Run{
		Project:          project,
		Architecture:     architecture,
		ModelHash:        modelHash,
		GeneratorVersion: ir.GeneratorVersion,
	}, records)
}

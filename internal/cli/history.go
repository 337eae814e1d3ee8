package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/roach88/mdgen/internal/store"
)

// HistoryOptions holds flags for the history command.
type HistoryOptions struct {
	*RootOptions
	DBPath    string
	ModelHash string
	RunID     string
}

// RunSummary is one run in history output.
type RunSummary struct {
	ID               string           `json:"id"`
	Seq              int64            `json:"seq"`
	Project          string           `json:"project"`
	Architecture     string           `json:"architecture"`
	ModelHash        string           `json:"model_hash"`
	GeneratorVersion string           `json:"generator_version"`
	ArtifactCount    int              `json:"artifact_count"`
	Artifacts        []ArtifactDetail `json:"artifacts,omitempty"`
}

// ArtifactDetail is one recorded file of a run.
type ArtifactDetail struct {
	Path        string `json:"path"`
	ContentHash string `json:"content_hash"`
	Size        int    `json:"size"`
}

// NewHistoryCommand creates the history command.
func NewHistoryCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &HistoryOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "history",
		Short: "List recorded generate runs",
		Long: `List the runs recorded by generate --db, oldest first. Filter by model
hash, or pass --run to show the files one run wrote.

Examples:
  mdgen history --db runs.db
  mdgen history --db runs.db --run 0192f4c6-...`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			return runHistory(ctx, opts, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.DBPath, "db", "", "path to SQLite database (required)")
	cmd.Flags().StringVar(&opts.ModelHash, "model-hash", "", "only runs of this model")
	cmd.Flags().StringVar(&opts.RunID, "run", "", "show one run with its artifacts")
	_ = cmd.MarkFlagRequired("db")

	return cmd
}

func runHistory(ctx context.Context, opts *HistoryOptions, cmd *cobra.Command) error {
	f := opts.formatter(cmd)

	if _, err := os.Stat(opts.DBPath); errors.Is(err, os.ErrNotExist) {
		return f.Fail(ExitCommandError, ErrCodeNotFound, fmt.Sprintf("database not found: %s", opts.DBPath), nil)
	}

	st, err := store.Open(opts.DBPath)
	if err != nil {
		return f.Fail(ExitCommandError, ErrCodeStore, "opening database", err)
	}
	defer st.Close()

	if opts.RunID != "" {
		return showRun(ctx, f, st, opts.RunID)
	}

	var runs []store.Run
	if opts.ModelHash != "" {
		runs, err = st.RunsForModel(ctx, opts.ModelHash)
	} else {
		runs, err = st.ListRuns(ctx)
	}
	if err != nil {
		return f.Fail(ExitCommandError, ErrCodeStore, "listing runs", err)
	}

	summaries := make([]RunSummary, len(runs))
	for i, r := range runs {
		summaries[i] = summarize(r)
	}
	if f.JSON() {
		return f.Success(summaries)
	}
	if len(summaries) == 0 {
		return f.Success("No runs recorded.")
	}

	var b strings.Builder
	for i, s := range summaries {
		if i > 0 {
			b.WriteByte('\n')
		}
		fmt.Fprintf(&b, "#%d %s  %s (%s)  %d file(s)  model %s",
			s.Seq, s.ID, s.Project, s.Architecture, s.ArtifactCount, shortHash(s.ModelHash))
	}
	return f.Success(b.String())
}

func showRun(ctx context.Context, f *OutputFormatter, st *store.Store, id string) error {
	run, err := st.GetRun(ctx, id)
	if errors.Is(err, store.ErrRunNotFound) {
		return f.Fail(ExitFailure, ErrCodeNotFound, fmt.Sprintf("run not found: %s", id), nil)
	}
	if err != nil {
		return f.Fail(ExitCommandError, ErrCodeStore, "reading run", err)
	}
	arts, err := st.Artifacts(ctx, id)
	if err != nil {
		return f.Fail(ExitCommandError, ErrCodeStore, "reading artifacts", err)
	}

	s := summarize(run)
	s.Artifacts = make([]ArtifactDetail, len(arts))
	for i, a := range arts {
		s.Artifacts[i] = ArtifactDetail{Path: a.Path, ContentHash: a.ContentHash, Size: a.Size}
	}
	if f.JSON() {
		return f.Success(s)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Run %s (#%d)\n", s.ID, s.Seq)
	fmt.Fprintf(&b, "  project:   %s (%s)\n", s.Project, s.Architecture)
	fmt.Fprintf(&b, "  model:     %s\n", s.ModelHash)
	fmt.Fprintf(&b, "  generator: %s\n", s.GeneratorVersion)
	for _, a := range s.Artifacts {
		fmt.Fprintf(&b, "  %s  %s (%d bytes)\n", shortHash(a.ContentHash), a.Path, a.Size)
	}
	return f.Success(strings.TrimSuffix(b.String(), "\n"))
}

func summarize(r store.Run) RunSummary {
	return RunSummary{
		ID:               r.ID,
		Seq:              r.Seq,
		Project:          r.Project,
		Architecture:     r.Architecture,
		ModelHash:        r.ModelHash,
		GeneratorVersion: r.GeneratorVersion,
		ArtifactCount:    r.ArtifactCount,
	}
}

func shortHash(h string) string {
	if len(h) > 12 {
		return h[:12]
	}
	return h
}

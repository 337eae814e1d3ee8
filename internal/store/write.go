package store

import (
	"context"
	"fmt"
	"log/slog"
)

// RecordRun inserts a run and its artifacts in one transaction. The
// store assigns Seq; ID is generated when empty. ArtifactCount is taken
// from len(artifacts). Returns the run as stored.
func (s *Store) RecordRun(ctx context.Context, run Run, artifacts []ArtifactRecord) (Run, error) {
	if run.ID == "" {
		run.ID = NewRunID()
	}
	run.ArtifactCount = len(artifacts)

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return Run{}, fmt.Errorf("record run: begin: %w", err)
	}
	defer tx.Rollback()

	if err := tx.QueryRowContext(ctx, `SELECT COALESCE(MAX(seq), 0) + 1 FROM runs`).Scan(&run.Seq); err != nil {
		return Run{}, fmt.Errorf("record run: next seq: %w", err)
	}

	_, err = tx.ExecContext(ctx, `
		INSERT INTO runs
		(id, seq, project, architecture, model_hash, generator_version, artifact_count)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`,
		run.ID,
		run.Seq,
		run.Project,
		run.Architecture,
		run.ModelHash,
		run.GeneratorVersion,
		run.ArtifactCount,
	)
	if err != nil {
		return Run{}, fmt.Errorf("record run: %w", err)
	}

	for _, a := range artifacts {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO artifacts (run_id, path, content_hash, size)
			VALUES (?, ?, ?, ?)
		`, run.ID, a.Path, a.ContentHash, a.Size)
		if err != nil {
			return Run{}, fmt.Errorf("record artifact %s: %w", a.Path, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return Run{}, fmt.Errorf("record run: commit: %w", err)
	}

	slog.Info("run recorded",
		"id", run.ID,
		"seq", run.Seq,
		"project", run.Project,
		"artifacts", run.ArtifactCount,
	)
	return run, nil
}

package store

import "github.com/google/uuid"

// Run is one recorded generate invocation.
type Run struct {
	ID               string
	Seq              int64
	Project          string
	Architecture     string
	ModelHash        string
	GeneratorVersion string
	ArtifactCount    int
}

// ArtifactRecord is one file written by a run.
type ArtifactRecord struct {
	Path        string
	ContentHash string
	Size        int
}

// NewRunID returns a time-ordered UUIDv7 string.
func NewRunID() string {
	return uuid.Must(uuid.NewV7()).String()
}

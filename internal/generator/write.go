package generator

import (
	"fmt"
	"log/slog"
	"os"
	"path"
	"path/filepath"
	"strings"
)

// WriteArtifacts writes every artifact below dir. All paths are checked
// before the first write so a bad path leaves dir untouched.
func WriteArtifacts(dir string, arts []Artifact) error {
	seen := make(map[string]bool, len(arts))
	for _, a := range arts {
		if err := checkPath(a.Path); err != nil {
			return err
		}
		if seen[a.Path] {
			return fmt.Errorf("artifact %q emitted twice", a.Path)
		}
		seen[a.Path] = true
	}

	for _, a := range arts {
		dst := filepath.Join(dir, filepath.FromSlash(a.Path))
		if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
			return fmt.Errorf("create directory for %s: %w", a.Path, err)
		}
		if err := os.WriteFile(dst, a.Content, 0o644); err != nil {
			return fmt.Errorf("write %s: %w", a.Path, err)
		}
		slog.Debug("artifact written", "path", a.Path, "bytes", len(a.Content))
	}
	slog.Info("artifacts written", "dir", dir, "count", len(arts))
	return nil
}

func checkPath(p string) error {
	if p == "" || path.IsAbs(p) || strings.Contains(p, `\`) {
		return fmt.Errorf("invalid artifact path %q", p)
	}
	clean := path.Clean(p)
	if clean != p || clean == ".." || strings.HasPrefix(clean, "../") {
		return fmt.Errorf("invalid artifact path %q", p)
	}
	return nil
}

package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/roach88/mdgen/internal/cim"
	"github.com/roach88/mdgen/internal/compiler"
)

// LoadError represents an error that occurred while loading a model file.
type LoadError struct {
	Code    string
	Message string
	Err     error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// LoadModel reads a model file and dispatches on its extension: .yaml and
// .yml are model documents, .cue is a CUE source. The model is not
// validated.
func LoadModel(path string) (*cim.Model, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, &LoadError{Code: ErrCodeNotFound, Message: fmt.Sprintf("model file not found: %s", path), Err: err}
		}
		return nil, &LoadError{Code: ErrCodeGeneric, Message: fmt.Sprintf("reading model: %v", err), Err: err}
	}

	var m *cim.Model
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		m, err = compiler.ParseYAML(data)
	case ".cue":
		m, err = compiler.CompileCUE(path, data)
	default:
		return nil, &LoadError{Code: ErrCodeUnsupported, Message: fmt.Sprintf("unsupported model extension %q (want .yaml, .yml or .cue)", ext)}
	}
	if err != nil {
		return nil, &LoadError{Code: ErrCodeParse, Message: err.Error(), Err: err}
	}
	return m, nil
}

// loadValidModel loads a model and reports it through f. Any load or
// validation failure has already been printed when an error is returned.
func loadValidModel(f *OutputFormatter, path string) (*cim.Model, error) {
	m, err := LoadModel(path)
	if err != nil {
		var loadErr *LoadError
		if errors.As(err, &loadErr) {
			exit := ExitFailure
			if loadErr.Code == ErrCodeNotFound {
				exit = ExitCommandError
			}
			return nil, f.Fail(exit, loadErr.Code, loadErr.Message, loadErr.Err)
		}
		return nil, f.Fail(ExitFailure, ErrCodeGeneric, err.Error(), err)
	}

	if verrs := compiler.Validate(m); len(verrs) > 0 {
		return nil, outputValidationErrors(f, verrs)
	}
	return m, nil
}

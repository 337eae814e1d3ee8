package harness

import "github.com/roach88/mdgen/internal/generator"

// Result is the outcome of one scenario.
type Result struct {
	// Pass is true when the pipeline behaved as expected and every
	// assertion held.
	Pass bool `json:"pass"`

	// Errors lists failed expectations. Empty when Pass is true.
	Errors []string `json:"errors,omitempty"`

	// Output is nil when the pipeline failed.
	Output *generator.Result `json:"-"`

	// Err is the pipeline error, if any.
	Err error `json:"-"`
}

// NewResult creates a passing result.
func NewResult() *Result {
	return &Result{Pass: true, Errors: []string{}}
}

// AddError records a failed expectation and marks the result as failed.
func (r *Result) AddError(err string) {
	r.Errors = append(r.Errors, err)
	r.Pass = false
}

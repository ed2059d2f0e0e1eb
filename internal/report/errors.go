package report

import "fmt"

// WriteError is returned when the report file cannot be written. Callers treat the
// report as best-effort: the error is reported but does not fail the run.
type WriteError struct {
	Path       string
	Underlying error
}

func (err WriteError) Error() string {
	return fmt.Sprintf("error writing output file %s: %v", err.Path, err.Underlying)
}

func (err WriteError) Unwrap() error {
	return err.Underlying
}

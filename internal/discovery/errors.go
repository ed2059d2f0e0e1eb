package discovery

import "fmt"

// InvalidModulesDirError is returned when the modules directory does not exist or is not
// a directory.
type InvalidModulesDirError struct {
	Path       string
	Underlying error
}

func (err InvalidModulesDirError) Error() string {
	if err.Underlying != nil {
		return fmt.Sprintf("error scanning modules directory %s: %v", err.Path, err.Underlying)
	}

	return fmt.Sprintf("invalid modules directory: %s", err.Path)
}

func (err InvalidModulesDirError) Unwrap() error {
	return err.Underlying
}

// NoModulesFoundError is returned when the modules directory contains no module
// subdirectories at all.
type NoModulesFoundError struct {
	Path string
}

func (err NoModulesFoundError) Error() string {
	return fmt.Sprintf("no modules found to analyze in %s", err.Path)
}

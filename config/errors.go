package config

import "fmt"

// ModulesDirNotFoundError is returned when no usable modules_dir setting can be
// extracted from the HCL configuration file.
type ModulesDirNotFoundError struct {
	ConfigPath string
	Underlying error
}

func (err ModulesDirNotFoundError) Error() string {
	if err.Underlying != nil {
		return fmt.Sprintf("error reading HCL file %s: %v", err.ConfigPath, err.Underlying)
	}

	return fmt.Sprintf("no modules_dir configuration found in HCL file %s", err.ConfigPath)
}

func (err ModulesDirNotFoundError) Unwrap() error {
	return err.Underlying
}

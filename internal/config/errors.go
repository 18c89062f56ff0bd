package config

import "fmt"

// ParseError indicates a config file that exists but could not be
// decoded. Missing files never produce one; they are empty layers.
type ParseError struct {
	Path string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parsing config %s: %v", e.Path, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

package config

import (
	"fmt"
	"strings"
)

// ValidationError collects multiple validation failures.
type ValidationError struct {
	Errors []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("config validation failed:\n  - %s", strings.Join(e.Errors, "\n  - "))
}

// validate checks the config for internal consistency and returns a
// ValidationError if any checks fail. All checks run; errors are collected,
// not short-circuited.
func validate(cfg *Config) error {
	var errs []string

	switch cfg.Source.Kind {
	case SourceStatic:
		if cfg.Source.Path != "" {
			errs = append(errs, fmt.Sprintf("source.path %q is only used when source.kind is \"file\"", cfg.Source.Path))
		}
	case SourceFile:
		if cfg.Source.Path == "" {
			errs = append(errs, "source.path is required when source.kind is \"file\"")
		}
	default:
		errs = append(errs, fmt.Sprintf("source.kind %q must be \"static\" or \"file\"", cfg.Source.Kind))
	}

	if cfg.UI.CharLimit <= 0 {
		errs = append(errs, "ui.char_limit must be positive")
	}

	if len(errs) > 0 {
		return &ValidationError{Errors: errs}
	}
	return nil
}

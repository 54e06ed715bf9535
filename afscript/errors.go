package afscript

import (
	"fmt"
	"strings"
)

// ConfigError represents an error in the definition of a script catalog.
// Configuration errors are fatal: no tables may be generated from a catalog
// which produced any of them.
type ConfigError struct {
	Script string // tag or name of the offending script, or position if neither is usable
	Field  string // field of the definition (e.g., "tag", "base_ranges[3]")
	Issue  string // human-readable description of the issue
}

// Error implements the error interface.
func (e ConfigError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("[CONFIG] %s: %s", e.Script, e.Issue)
	}
	return fmt.Sprintf("[CONFIG] %s/%s: %s", e.Script, e.Field, e.Issue)
}

// ConfigErrors is a list of configuration errors, reported together.
type ConfigErrors []ConfigError

// Error implements the error interface.
func (errs ConfigErrors) Error() string {
	switch len(errs) {
	case 0:
		return "no configuration errors"
	case 1:
		return errs[0].Error()
	}
	var sb strings.Builder
	fmt.Fprintf(&sb, "%d configuration errors:", len(errs))
	for _, e := range errs {
		sb.WriteString("\n\t")
		sb.WriteString(e.Error())
	}
	return sb.String()
}

// errorCollector accumulates configuration errors while a catalog is
// validated, so that a user sees every problem of a catalog at once.
type errorCollector struct {
	errors ConfigErrors
}

// addError records a configuration error.
func (ec *errorCollector) addError(script, field, issue string) {
	tracer().Errorf("catalog: %s/%s: %s", script, field, issue)
	ec.errors = append(ec.errors, ConfigError{
		Script: script,
		Field:  field,
		Issue:  issue,
	})
}

// hasErrors returns true if any errors have been recorded.
func (ec *errorCollector) hasErrors() bool {
	return len(ec.errors) > 0
}

// err returns the collected errors as a single error, or nil.
func (ec *errorCollector) err() error {
	if !ec.hasErrors() {
		return nil
	}
	return ec.errors
}

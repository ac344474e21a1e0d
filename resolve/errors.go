package resolve

import (
	"errors"
	"fmt"
	"strings"

	"github.com/kbukum/envbind/schema"
)

// ErrStructuredRequired marks a nested field whose candidate value came
// from a flat source; only structured sources (YAML, Vault) can supply
// nested values.
var ErrStructuredRequired = errors.New("structured source required")

// ErrMappingExpected marks a nested field whose key holds a scalar in a
// structured source. The value exists but has the wrong shape, which is a
// coercion failure, not absence.
var ErrMappingExpected = errors.New("expected a mapping")

// MissingFieldError reports a field for which no source produced a value
// and no default exists.
type MissingFieldError struct {
	Schema string
	Field  string
	Key    string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("field %q: no source provided %s and no default is declared", e.Field, e.Key)
}

// CoercionError reports a value that was found but could not convert to
// the declared type. The offending raw value is always included.
type CoercionError struct {
	Schema string
	Field  string
	Source string
	Raw    string
	Target schema.Type
	Cause  error
}

func (e *CoercionError) Error() string {
	return fmt.Sprintf("field %q: cannot coerce %q (from %s) to %s: %v",
		e.Field, e.Raw, e.Source, e.Target, e.Cause)
}

func (e *CoercionError) Unwrap() error { return e.Cause }

// SourceError reports an adapter whose underlying resource is unusable.
// Distinct from key absence: it aborts resolution immediately, since no
// field can reliably be resolved against a broken source.
type SourceError struct {
	Source string
	Err    error
}

func (e *SourceError) Error() string {
	return fmt.Sprintf("source %s failed: %v", e.Source, e.Err)
}

func (e *SourceError) Unwrap() error { return e.Err }

// BindingError aggregates every per-field failure of one resolution pass.
// Configuration mistakes cluster (a whole .env file missing, say), so the
// caller sees all of them in one report rather than the first encountered.
type BindingError struct {
	Schema string
	Errors []error
}

func (e *BindingError) Error() string {
	msgs := make([]string, len(e.Errors))
	for i, err := range e.Errors {
		msgs[i] = err.Error()
	}
	return fmt.Sprintf("binding schema %q failed (%d fields): %s",
		e.Schema, len(e.Errors), strings.Join(msgs, "; "))
}

// Unwrap exposes the per-field errors to errors.Is and errors.As.
func (e *BindingError) Unwrap() []error { return e.Errors }

// Fields returns the names of all failing fields, in declaration order.
func (e *BindingError) Fields() []string {
	names := make([]string, 0, len(e.Errors))
	for _, err := range e.Errors {
		var missing *MissingFieldError
		var coercion *CoercionError
		switch {
		case errors.As(err, &missing):
			names = append(names, missing.Field)
		case errors.As(err, &coercion):
			names = append(names, coercion.Field)
		}
	}
	return names
}

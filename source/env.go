package source

import "os"

// Env reads from the process environment. Flat: it cannot serve nested
// fields.
type Env struct{}

// NewEnv creates a process-environment source.
func NewEnv() *Env { return &Env{} }

// Name implements Source.
func (e *Env) Name() string { return "env" }

// Lookup implements Source. os.LookupEnv distinguishes an unset variable
// from one set to the empty string; the empty string is a present value.
func (e *Env) Lookup(key string) (string, bool, error) {
	v, ok := os.LookupEnv(key)
	return v, ok, nil
}

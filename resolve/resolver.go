package resolve

import (
	"errors"
	"fmt"

	"github.com/kbukum/envbind/logger"
	"github.com/kbukum/envbind/schema"
	"github.com/kbukum/envbind/source"
)

// Resolver binds schemas against an ordered source chain. Resolutions are
// independent; a Resolver is safe for concurrent use when its sources are.
type Resolver struct {
	sources []source.Source
	log     *logger.Logger
}

// Option configures a Resolver.
type Option func(*Resolver)

// WithSources sets the source chain in precedence order: the first source
// that has a key wins and later sources are not consulted for it.
func WithSources(srcs ...source.Source) Option {
	return func(r *Resolver) { r.sources = srcs }
}

// WithLogger sets the resolver's logger. Defaults to a no-op logger.
func WithLogger(log *logger.Logger) Option {
	return func(r *Resolver) { r.log = log }
}

// New creates a Resolver. At least one source must be configured before
// Resolve is called.
func New(opts ...Option) *Resolver {
	r := &Resolver{log: logger.Nop()}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Resolve binds every field of s and returns the fully populated config.
// All fields are attempted before failure is decided, so a *BindingError
// names every missing or invalid field of the pass. A *SourceError aborts
// immediately. No partial config is ever returned.
func (r *Resolver) Resolve(s *schema.Schema) (*Resolved, error) {
	ordered, err := r.orderedSources(s.Options().SourceOrder)
	if err != nil {
		return nil, err
	}

	values := make(map[string]any)
	var failures []error

	for _, f := range s.Fields() {
		key := s.KeyFor(f)

		val, ferr := r.resolveField(s, f, key, ordered)
		if ferr != nil {
			var srcErr *SourceError
			if errors.As(ferr, &srcErr) {
				r.log.Error("source failed, aborting resolution", ferr, map[string]interface{}{
					"schema": s.Name(),
					"field":  f.Name,
					"key":    key,
				})
				return nil, ferr
			}
			failures = append(failures, ferr)
			continue
		}
		values[f.Name] = val
	}

	if len(failures) > 0 {
		bindErr := &BindingError{Schema: s.Name(), Errors: failures}
		r.log.Warn("schema binding failed", map[string]interface{}{
			"schema": s.Name(),
			"fields": bindErr.Fields(),
		})
		return nil, bindErr
	}

	return &Resolved{schema: s.Name(), values: values}, nil
}

// resolveField walks the source chain for one field: first present value
// wins, coercion happens once on the winner, absence falls back to the
// declared default.
func (r *Resolver) resolveField(s *schema.Schema, f schema.Field, key string, ordered []source.Source) (any, error) {
	if f.Type == schema.TypeNested {
		return r.resolveNested(s, f, key, ordered)
	}

	for _, src := range ordered {
		raw, found, err := src.Lookup(key)
		if err != nil {
			return nil, &SourceError{Source: src.Name(), Err: err}
		}
		if !found {
			continue
		}

		coerced, cerr := coerceValue(raw, f.Type)
		if cerr != nil {
			return nil, &CoercionError{
				Schema: s.Name(), Field: f.Name, Source: src.Name(),
				Raw: raw, Target: f.Type, Cause: cerr,
			}
		}
		r.log.Debug("field resolved", map[string]interface{}{
			"schema": s.Name(),
			"field":  f.Name,
			"key":    key,
			"source": src.Name(),
		})
		return coerced, nil
	}

	if f.HasDefault {
		r.log.Debug("field defaulted", map[string]interface{}{
			"schema": s.Name(),
			"field":  f.Name,
			"key":    key,
		})
		return normalizeDefault(f.Default), nil
	}
	return nil, &MissingFieldError{Schema: s.Name(), Field: f.Name, Key: key}
}

// resolveNested walks the chain for a nested field. Structured sources are
// asked for a mapping; a flat source holding the key fails distinctly,
// since a flat string can never populate a nested field.
func (r *Resolver) resolveNested(s *schema.Schema, f schema.Field, key string, ordered []source.Source) (any, error) {
	for _, src := range ordered {
		if structured, ok := src.(source.Structured); ok {
			m, found, err := structured.LookupMap(key)
			if err != nil {
				return nil, &SourceError{Source: src.Name(), Err: err}
			}
			if found {
				coerced, cerr := coerceMap(m, f.Sub)
				if cerr != nil {
					return nil, &CoercionError{
						Schema: s.Name(), Field: f.Name, Source: src.Name(),
						Raw: fmt.Sprint(m), Target: f.Type, Cause: cerr,
					}
				}
				return coerced, nil
			}

			// The key may still hold a scalar; that is a wrong-shaped
			// value, not absence, and the operator should see why it
			// was rejected.
			raw, rawFound, err := src.Lookup(key)
			if err != nil {
				return nil, &SourceError{Source: src.Name(), Err: err}
			}
			if rawFound {
				return nil, &CoercionError{
					Schema: s.Name(), Field: f.Name, Source: src.Name(),
					Raw: raw, Target: f.Type, Cause: ErrMappingExpected,
				}
			}
			continue
		}

		raw, found, err := src.Lookup(key)
		if err != nil {
			return nil, &SourceError{Source: src.Name(), Err: err}
		}
		if found {
			return nil, &CoercionError{
				Schema: s.Name(), Field: f.Name, Source: src.Name(),
				Raw: raw, Target: f.Type, Cause: ErrStructuredRequired,
			}
		}
	}

	if f.HasDefault {
		return normalizeDefault(f.Default), nil
	}
	return nil, &MissingFieldError{Schema: s.Name(), Field: f.Name, Key: key}
}

// orderedSources applies a schema-level source-order override, selecting
// and reordering the configured chain by source name.
func (r *Resolver) orderedSources(override []string) ([]source.Source, error) {
	if len(r.sources) == 0 {
		return nil, fmt.Errorf("resolver has no sources configured")
	}
	if len(override) == 0 {
		return r.sources, nil
	}

	byName := make(map[string]source.Source, len(r.sources))
	for _, src := range r.sources {
		byName[src.Name()] = src
	}

	ordered := make([]source.Source, 0, len(override))
	for _, name := range override {
		src, ok := byName[name]
		if !ok {
			return nil, fmt.Errorf("source order names unknown source %q", name)
		}
		ordered = append(ordered, src)
	}
	return ordered, nil
}

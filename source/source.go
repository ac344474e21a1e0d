package source

// Source is a named provider of raw string values by lookup key. Lookups
// are independent and stateless from the resolver's point of view;
// implementations must be safe for concurrent Lookup calls.
type Source interface {
	// Name identifies the source in logs, error messages, and schema
	// source-order overrides.
	Name() string

	// Lookup retrieves a raw value by key. found=false means absent; an
	// empty string with found=true is a valid present value. A non-nil
	// err is adapter-fatal and aborts resolution.
	Lookup(key string) (value string, found bool, err error)
}

// Structured is implemented by sources that can serve nested mappings
// (YAML, Vault). Flat sources cannot supply values for nested fields.
type Structured interface {
	Source

	// LookupMap retrieves a nested mapping by key, with the same
	// found/err semantics as Lookup.
	LookupMap(key string) (value map[string]any, found bool, err error)
}

// Static is an in-memory source, used in tests and as an injection point
// for values computed elsewhere.
type Static struct {
	name   string
	values map[string]string
	maps   map[string]map[string]any
}

// NewStatic creates a static source serving the given flat values.
func NewStatic(name string, values map[string]string) *Static {
	return &Static{name: name, values: values}
}

// WithMaps attaches nested mappings, making the source structured.
func (s *Static) WithMaps(maps map[string]map[string]any) *Static {
	s.maps = maps
	return s
}

// Name implements Source.
func (s *Static) Name() string { return s.name }

// Lookup implements Source.
func (s *Static) Lookup(key string) (string, bool, error) {
	v, ok := s.values[key]
	return v, ok, nil
}

// LookupMap implements Structured.
func (s *Static) LookupMap(key string) (map[string]any, bool, error) {
	v, ok := s.maps[key]
	return v, ok, nil
}

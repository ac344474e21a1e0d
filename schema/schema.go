package schema

// Type identifies the declared type of a field.
type Type int

const (
	// TypeString passes the raw value through unchanged.
	TypeString Type = iota
	// TypeInt parses base-10 integers.
	TypeInt
	// TypeBool parses a fixed set of truthy/falsy tokens.
	TypeBool
	// TypeFloat parses standard decimal notation.
	TypeFloat
	// TypeNested holds a sub-field list populated from a structured source
	// (YAML or Vault); flat sources cannot supply nested values.
	TypeNested
)

// String returns the type name as used in error messages.
func (t Type) String() string {
	switch t {
	case TypeString:
		return "string"
	case TypeInt:
		return "int"
	case TypeBool:
		return "bool"
	case TypeFloat:
		return "float"
	case TypeNested:
		return "nested"
	default:
		return "unknown"
	}
}

// Field is one named, typed configuration value within a schema.
// Declared once at build time; never mutated.
type Field struct {
	// Name is the field name as used in key derivation (e.g. "some_int").
	Name string
	// Type is the declared type the raw value must coerce to.
	Type Type
	// Default is the typed fallback used when no source produces a value.
	// Only meaningful when HasDefault is true.
	Default any
	// HasDefault distinguishes "no default" from a zero-valued default.
	HasDefault bool
	// KeyOverride, when set, replaces the derived lookup key verbatim.
	KeyOverride string
	// Sub lists the sub-fields of a TypeNested field.
	Sub []Field
}

// Options holds schema-level declaration options.
type Options struct {
	// Prefix replaces the schema name in derived keys when non-empty.
	Prefix string
	// Separator joins the prefix and field name in derived keys.
	// Defaults to DefaultSeparator.
	Separator string
	// SourceOrder overrides the resolver's default source precedence,
	// listing source names (e.g. "env", "yaml") in priority order.
	SourceOrder []string
	// YAMLFile names the YAML document backing this schema's YAML source.
	YAMLFile string
	// VaultMount is the KV v2 mount backing this schema's Vault source.
	VaultMount string
	// VaultPath is the secret path under VaultMount.
	VaultPath string
}

// Schema is a named, immutable set of field declarations. Build one with a
// Builder and register it to make it resolvable by name.
type Schema struct {
	name   string
	opts   Options
	fields []Field
}

// Name returns the schema name used in key derivation and registry lookup.
func (s *Schema) Name() string { return s.name }

// Options returns a copy of the schema-level options.
func (s *Schema) Options() Options {
	opts := s.opts
	opts.SourceOrder = append([]string(nil), s.opts.SourceOrder...)
	return opts
}

// Fields returns a copy of the ordered field declarations.
func (s *Schema) Fields() []Field {
	return append([]Field(nil), s.fields...)
}

// KeyFor returns the lookup key for f: the per-field override when present,
// otherwise the derived key.
func (s *Schema) KeyFor(f Field) string {
	if f.KeyOverride != "" {
		return f.KeyOverride
	}
	return DeriveKey(s.name, f.Name, s.opts)
}

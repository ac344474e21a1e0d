package schema

import (
	"fmt"
	"sync"

	"github.com/go-playground/validator/v10"
)

// Option configures schema-level options on a Builder.
type Option func(*Options)

// WithPrefix replaces the schema name in derived keys.
func WithPrefix(prefix string) Option {
	return func(o *Options) { o.Prefix = prefix }
}

// WithSeparator sets the separator used in derived keys.
func WithSeparator(sep string) Option {
	return func(o *Options) { o.Separator = sep }
}

// WithSourceOrder overrides the default source precedence for this schema.
// Names refer to source names as reported by source.Source.Name.
func WithSourceOrder(names ...string) Option {
	return func(o *Options) { o.SourceOrder = names }
}

// WithYAMLFile names the YAML document backing this schema's YAML source.
func WithYAMLFile(path string) Option {
	return func(o *Options) { o.YAMLFile = path }
}

// WithVault sets the KV v2 mount and secret path backing this schema's
// Vault source. An empty mount falls back to the adapter default.
func WithVault(mount, path string) Option {
	return func(o *Options) {
		o.VaultMount = mount
		o.VaultPath = path
	}
}

// FieldOption configures a single field declaration.
type FieldOption func(*Field)

// WithDefault sets the field's typed default value. The default's dynamic
// type must match the declared field type; Build rejects mismatches.
func WithDefault(v any) FieldOption {
	return func(f *Field) {
		f.Default = v
		f.HasDefault = true
	}
}

// WithKey replaces the derived lookup key for this field verbatim.
func WithKey(key string) FieldOption {
	return func(f *Field) { f.KeyOverride = key }
}

// Builder accumulates field declarations for a schema. Declaration methods
// return the builder for chaining; all validation is deferred to Build.
type Builder struct {
	name   string
	opts   Options
	fields []Field
}

// New starts a schema declaration for the given name.
func New(name string, opts ...Option) *Builder {
	b := &Builder{name: name}
	for _, opt := range opts {
		opt(&b.opts)
	}
	return b
}

// String declares a string field.
func (b *Builder) String(name string, opts ...FieldOption) *Builder {
	return b.add(name, TypeString, nil, opts)
}

// Int declares a base-10 integer field.
func (b *Builder) Int(name string, opts ...FieldOption) *Builder {
	return b.add(name, TypeInt, nil, opts)
}

// Bool declares a boolean field.
func (b *Builder) Bool(name string, opts ...FieldOption) *Builder {
	return b.add(name, TypeBool, nil, opts)
}

// Float declares a decimal field.
func (b *Builder) Float(name string, opts ...FieldOption) *Builder {
	return b.add(name, TypeFloat, nil, opts)
}

// Nested declares a structured field whose sub-fields are declared on the
// builder passed to define. Nested values can only be supplied by
// structured sources (YAML, Vault).
func (b *Builder) Nested(name string, define func(*Builder), opts ...FieldOption) *Builder {
	sub := &Builder{name: name}
	define(sub)
	return b.add(name, TypeNested, sub.fields, opts)
}

func (b *Builder) add(name string, t Type, sub []Field, opts []FieldOption) *Builder {
	f := Field{Name: name, Type: t, Sub: sub}
	for _, opt := range opts {
		opt(&f)
	}
	b.fields = append(b.fields, f)
	return b
}

// declaration is the shape Build validates with struct tags.
type declaration struct {
	Name      string `validate:"required"`
	Separator string `validate:"required"`
}

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

func getValidator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
	})
	return validate
}

// Build validates the declaration and returns the immutable schema.
func (b *Builder) Build() (*Schema, error) {
	opts := b.opts
	if opts.Separator == "" {
		opts.Separator = DefaultSeparator
	}

	decl := declaration{Name: b.name, Separator: opts.Separator}
	if err := getValidator().Struct(decl); err != nil {
		return nil, fmt.Errorf("schema declaration invalid: %w", err)
	}
	if len(b.fields) == 0 {
		return nil, fmt.Errorf("schema %q declares no fields", b.name)
	}
	if err := checkFields(b.name, b.fields); err != nil {
		return nil, err
	}

	return &Schema{
		name:   b.name,
		opts:   opts,
		fields: append([]Field(nil), b.fields...),
	}, nil
}

func checkFields(schemaName string, fields []Field) error {
	seen := make(map[string]bool, len(fields))
	for _, f := range fields {
		if f.Name == "" {
			return fmt.Errorf("schema %q declares a field with an empty name", schemaName)
		}
		if seen[f.Name] {
			return fmt.Errorf("schema %q declares field %q twice", schemaName, f.Name)
		}
		seen[f.Name] = true

		if f.HasDefault {
			if err := checkDefault(f); err != nil {
				return fmt.Errorf("schema %q: %w", schemaName, err)
			}
		}
		if f.Type == TypeNested {
			if len(f.Sub) == 0 {
				return fmt.Errorf("schema %q: nested field %q declares no sub-fields", schemaName, f.Name)
			}
			if err := checkFields(schemaName+"."+f.Name, f.Sub); err != nil {
				return err
			}
		}
	}
	return nil
}

// checkDefault ensures the declared default's dynamic type matches the
// field type, so defaults bypass coercion safely.
func checkDefault(f Field) error {
	var ok bool
	switch f.Type {
	case TypeString:
		_, ok = f.Default.(string)
	case TypeInt:
		switch f.Default.(type) {
		case int, int64:
			ok = true
		}
	case TypeBool:
		_, ok = f.Default.(bool)
	case TypeFloat:
		_, ok = f.Default.(float64)
	case TypeNested:
		_, ok = f.Default.(map[string]any)
	}
	if !ok {
		return fmt.Errorf("field %q: default %v (%T) does not match declared type %s",
			f.Name, f.Default, f.Default, f.Type)
	}
	return nil
}

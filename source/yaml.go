package source

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// YAMLFileVar overrides the YAML config file path when no explicit path is
// configured.
const YAMLFileVar = "YAML_CONFIG_FILE"

// YAML serves values from a YAML document, parsed once at construction.
// Structured: nested mappings are served via LookupMap.
//
// A derived key like MYCONFIG_SOME_INT is first tried as a literal
// top-level key, then split on the first separator and walked as
// section/field (myconfig: {some_int: ...}), matching case-insensitively.
// A null value counts as absent; a scalar renders to its string form.
type YAML struct {
	path string
	sep  string
	doc  map[string]any
}

// YAMLOption configures NewYAML.
type YAMLOption func(*yamlOptions)

type yamlOptions struct {
	path string
	sep  string
}

// WithYAMLPath sets an explicit YAML document path.
func WithYAMLPath(path string) YAMLOption {
	return func(o *yamlOptions) { o.path = path }
}

// WithYAMLSeparator sets the key separator used to split derived keys into
// section and field. Defaults to "_", matching the default key derivation.
func WithYAMLSeparator(sep string) YAMLOption {
	return func(o *yamlOptions) { o.sep = sep }
}

// NewYAML creates a YAML source. The document path is taken from the
// option, then the YAML_CONFIG_FILE environment variable. A missing path,
// unreadable file, or malformed document is a construction error.
func NewYAML(opts ...YAMLOption) (*YAML, error) {
	o := yamlOptions{sep: "_"}
	for _, opt := range opts {
		opt(&o)
	}

	path := o.path
	if path == "" {
		path = os.Getenv(YAMLFileVar)
	}
	if path == "" {
		return nil, fmt.Errorf("yaml source: no file configured (set %s or pass WithYAMLPath)", YAMLFileVar)
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("yaml source: reading %s: %w", path, err)
	}
	var doc map[string]any
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("yaml source: parsing %s: %w", path, err)
	}

	return &YAML{path: path, sep: o.sep, doc: doc}, nil
}

// Name implements Source.
func (y *YAML) Name() string { return "yaml" }

// Path returns the document path.
func (y *YAML) Path() string { return y.path }

// Lookup implements Source. Mappings are not flattened; a key whose value
// is a mapping is only reachable through LookupMap.
func (y *YAML) Lookup(key string) (string, bool, error) {
	v, ok := y.find(key)
	if !ok || v == nil {
		return "", false, nil
	}
	if _, isMap := v.(map[string]any); isMap {
		return "", false, nil
	}
	if s, isString := v.(string); isString {
		return s, true, nil
	}
	return fmt.Sprint(v), true, nil
}

// LookupMap implements Structured.
func (y *YAML) LookupMap(key string) (map[string]any, bool, error) {
	v, ok := y.find(key)
	if !ok {
		return nil, false, nil
	}
	m, isMap := v.(map[string]any)
	if !isMap {
		return nil, false, nil
	}
	return m, true, nil
}

func (y *YAML) find(key string) (any, bool) {
	if v, ok := lookupFold(y.doc, key); ok {
		return v, true
	}

	idx := strings.Index(key, y.sep)
	if idx <= 0 {
		return nil, false
	}
	section, field := key[:idx], key[idx+len(y.sep):]

	sec, ok := lookupFold(y.doc, section)
	if !ok {
		return nil, false
	}
	m, isMap := sec.(map[string]any)
	if !isMap {
		return nil, false
	}
	return lookupFold(m, field)
}

// lookupFold finds key in m, preferring an exact match over a
// case-insensitive one.
func lookupFold(m map[string]any, key string) (any, bool) {
	if v, ok := m[key]; ok {
		return v, true
	}
	for k, v := range m {
		if strings.EqualFold(k, key) {
			return v, true
		}
	}
	return nil, false
}

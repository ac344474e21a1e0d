package resolve

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/kbukum/envbind/schema"
)

// Boolean token sets. Fixed and case-insensitive; anything else fails
// rather than guessing.
var (
	truthy = map[string]bool{"true": true, "1": true, "yes": true, "on": true}
	falsy  = map[string]bool{"false": true, "0": true, "no": true, "off": true}
)

// coerceValue converts a raw string to the field's declared primitive
// type. Coercion is atomic: the whole value converts or the field fails.
func coerceValue(raw string, t schema.Type) (any, error) {
	switch t {
	case schema.TypeString:
		return raw, nil
	case schema.TypeInt:
		n, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("not a base-10 integer")
		}
		return n, nil
	case schema.TypeFloat:
		f, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil, fmt.Errorf("not a decimal number")
		}
		return f, nil
	case schema.TypeBool:
		token := strings.ToLower(raw)
		if truthy[token] {
			return true, nil
		}
		if falsy[token] {
			return false, nil
		}
		return nil, fmt.Errorf("not a recognized boolean token (true/1/yes/on, false/0/no/off)")
	case schema.TypeNested:
		return nil, ErrStructuredRequired
	default:
		return nil, fmt.Errorf("unsupported type %s", t)
	}
}

// coerceMap coerces a nested mapping from a structured source against the
// declared sub-fields, recursively. Sub-field names match mapping keys
// case-insensitively.
func coerceMap(raw map[string]any, fields []schema.Field) (map[string]any, error) {
	out := make(map[string]any, len(fields))
	for _, f := range fields {
		val, ok := foldKey(raw, f.Name)
		if !ok || val == nil {
			if f.HasDefault {
				out[f.Name] = normalizeDefault(f.Default)
				continue
			}
			return nil, fmt.Errorf("sub-field %q missing", f.Name)
		}

		if f.Type == schema.TypeNested {
			m, isMap := val.(map[string]any)
			if !isMap {
				return nil, fmt.Errorf("sub-field %q: expected a mapping, got %T", f.Name, val)
			}
			sub, err := coerceMap(m, f.Sub)
			if err != nil {
				return nil, fmt.Errorf("sub-field %q: %w", f.Name, err)
			}
			out[f.Name] = sub
			continue
		}

		if _, isMap := val.(map[string]any); isMap {
			return nil, fmt.Errorf("sub-field %q: unexpected mapping for %s field", f.Name, f.Type)
		}
		coerced, err := coerceValue(stringify(val), f.Type)
		if err != nil {
			return nil, fmt.Errorf("sub-field %q: %w", f.Name, err)
		}
		out[f.Name] = coerced
	}
	return out, nil
}

func foldKey(m map[string]any, key string) (any, bool) {
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

func stringify(v any) string {
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprint(v)
}

// normalizeDefault widens declared default values to the representation
// coerced values use (int64 for integers).
func normalizeDefault(v any) any {
	if n, ok := v.(int); ok {
		return int64(n)
	}
	return v
}

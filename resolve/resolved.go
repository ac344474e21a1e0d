package resolve

// Resolved is a fully populated, immutable configuration: exactly one
// typed value per declared field. It is only constructed when every field
// without a default coerced successfully — partial configs never escape
// the resolver.
type Resolved struct {
	schema string
	values map[string]any
}

// Schema returns the name of the schema this config was resolved from.
func (c *Resolved) Schema() string { return c.schema }

// Get returns the typed value for a field, reporting whether the field
// exists. Values are string, int64, bool, float64, or map[string]any for
// nested fields.
func (c *Resolved) Get(name string) (any, bool) {
	v, ok := c.values[name]
	if m, isMap := v.(map[string]any); isMap {
		return copyMap(m), ok
	}
	return v, ok
}

// String returns the value of a string field, or "" for any other name.
func (c *Resolved) String(name string) string {
	v, _ := c.values[name].(string)
	return v
}

// Int returns the value of an int field, or 0 for any other name.
func (c *Resolved) Int(name string) int64 {
	v, _ := c.values[name].(int64)
	return v
}

// Bool returns the value of a bool field, or false for any other name.
func (c *Resolved) Bool(name string) bool {
	v, _ := c.values[name].(bool)
	return v
}

// Float returns the value of a float field, or 0 for any other name.
func (c *Resolved) Float(name string) float64 {
	v, _ := c.values[name].(float64)
	return v
}

// Nested returns a copy of a nested field's coerced mapping, or nil for
// any other name. The copy keeps the underlying config immutable.
func (c *Resolved) Nested(name string) map[string]any {
	m, ok := c.values[name].(map[string]any)
	if !ok {
		return nil
	}
	return copyMap(m)
}

func copyMap(m map[string]any) map[string]any {
	out := make(map[string]any, len(m))
	for k, v := range m {
		if sub, ok := v.(map[string]any); ok {
			out[k] = copyMap(sub)
			continue
		}
		out[k] = v
	}
	return out
}

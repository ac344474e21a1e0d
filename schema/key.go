package schema

import "strings"

// DefaultSeparator joins the schema prefix and field name in derived keys.
const DefaultSeparator = "_"

// DeriveKey computes the canonical lookup key for a field: the uppercased
// prefix (schema name unless Options.Prefix overrides it), the separator,
// and the uppercased field name. Pure — same inputs always yield the same
// key regardless of resolution order.
//
//	DeriveKey("MyConfig", "some_int", Options{}) == "MYCONFIG_SOME_INT"
func DeriveKey(schemaName, fieldName string, opts Options) string {
	prefix := opts.Prefix
	if prefix == "" {
		prefix = schemaName
	}
	sep := opts.Separator
	if sep == "" {
		sep = DefaultSeparator
	}
	return strings.ToUpper(prefix) + sep + strings.ToUpper(fieldName)
}

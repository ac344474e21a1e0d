// Package schema provides the declaration surface for envbind configuration
// schemas.
//
// A schema is a named, ordered set of typed fields plus schema-level options
// (key prefix, separator, source order, source locations). Schemas are built
// explicitly with a Builder — no struct-tag reflection — and are immutable
// after Build.
//
// # Usage
//
//	s, err := schema.New("MyConfig").
//	    Int("some_int").
//	    String("some_string", schema.WithDefault("hello")).
//	    Bool("some_bool").
//	    Build()
//
// Field lookup keys are derived from the schema name and field name
// (MyConfig/some_int -> MYCONFIG_SOME_INT); see DeriveKey.
//
// Built schemas may be registered in the process-wide Registry so they can
// be resolved by name with resolve.Load.
package schema

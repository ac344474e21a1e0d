// Package resolve implements the envbind resolution engine: for every field
// of a declared schema it derives the lookup key, queries the configured
// sources in precedence order, coerces the first value found to the
// declared type, and either returns an immutable Resolved config or a
// BindingError enumerating every missing or invalid field.
//
// The default source precedence, fixed and tested, is:
//
//	.env file > process environment > YAML file > Vault
//
// Resolution attempts every field before deciding success or failure, so a
// single error reports the complete set of misconfigured fields. A fatal
// source error (malformed YAML, Vault auth failure) aborts the whole call
// instead: when a source is unusable, partial results would mislead.
//
// # Usage
//
//	s, _ := schema.New("MyConfig").Int("some_int").Bool("some_bool").Build()
//	cfg, err := resolve.New(resolve.WithSources(source.NewEnv())).Resolve(s)
//	if err != nil {
//	    // err lists every failing field
//	}
//	port := cfg.Int("some_int")
//
// Schemas registered in the schema package's process-wide registry can be
// resolved by name with Load, which assembles the default source chain.
package resolve

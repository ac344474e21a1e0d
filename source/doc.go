// Package source provides the value-source adapters the envbind resolver
// queries in precedence order: .env files, the process environment, YAML
// documents, and HashiCorp Vault.
//
// Every adapter answers Lookup(key) with (value, found, err). found=false
// means the key is absent; an empty string with found=true is a present
// value and is never treated as missing. A non-nil err means the adapter's
// underlying resource is unusable (malformed file, failed auth) and aborts
// the whole resolution.
//
// Adapters that can serve nested mappings (YAML, Vault) additionally
// implement Structured.
package source

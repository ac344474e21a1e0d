package source

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/go-playground/validator/v10"
	vault "github.com/hashicorp/vault/api"

	"github.com/kbukum/envbind/logger"
)

// VaultConfig configures the Vault source. Address and Token are optional;
// when empty the client library's own VAULT_ADDR/VAULT_TOKEN handling
// applies.
type VaultConfig struct {
	Address string `validate:"omitempty,url"`
	Token   string
	Mount   string `validate:"required"`
	Path    string `validate:"required"`
}

// ApplyDefaults applies default values to the Vault configuration.
func (c *VaultConfig) ApplyDefaults() {
	if c.Mount == "" {
		c.Mount = "secret"
	}
}

// Validate validates the Vault configuration.
func (c *VaultConfig) Validate() error {
	if err := getValidator().Struct(c); err != nil {
		return fmt.Errorf("vault config: %w", err)
	}
	return nil
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

// Vault serves values from a KV v2 secret. The authenticated client is
// initialized lazily, exactly once, and shared across lookups; the secret
// itself is fetched on the first lookup and cached, so resolving a large
// schema costs one Vault round trip, not one per field. Structured: nested
// mappings in the secret data are served via LookupMap.
type Vault struct {
	cfg VaultConfig
	log *logger.Logger

	once     sync.Once
	data     map[string]any
	notFound bool
	initErr  error
}

// NewVault creates a Vault source. The client is not built and no network
// I/O happens until the first lookup.
func NewVault(cfg VaultConfig, log *logger.Logger) (*Vault, error) {
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if log == nil {
		log = logger.Nop()
	}
	return &Vault{cfg: cfg, log: log}, nil
}

// Name implements Source.
func (v *Vault) Name() string { return "vault" }

// Lookup implements Source. A key absent from the secret data (or the
// whole secret missing) is absence; auth and transport failures are fatal.
func (v *Vault) Lookup(key string) (string, bool, error) {
	val, ok, err := v.get(key)
	if err != nil || !ok || val == nil {
		return "", false, err
	}
	if _, isMap := val.(map[string]any); isMap {
		return "", false, nil
	}
	if s, isString := val.(string); isString {
		return s, true, nil
	}
	return fmt.Sprint(val), true, nil
}

// LookupMap implements Structured.
func (v *Vault) LookupMap(key string) (map[string]any, bool, error) {
	val, ok, err := v.get(key)
	if err != nil || !ok {
		return nil, false, err
	}
	m, isMap := val.(map[string]any)
	if !isMap {
		return nil, false, nil
	}
	return m, true, nil
}

func (v *Vault) get(key string) (any, bool, error) {
	v.once.Do(v.fetch)
	if v.initErr != nil {
		return nil, false, v.initErr
	}
	if v.notFound {
		return nil, false, nil
	}
	val, ok := lookupFold(v.data, key)
	return val, ok, nil
}

// fetch builds the client and reads the secret once. Runs under sync.Once,
// so concurrent lookups share one authenticated session.
func (v *Vault) fetch() {
	conf := vault.DefaultConfig()
	if v.cfg.Address != "" {
		conf.Address = v.cfg.Address
	}
	client, err := vault.NewClient(conf)
	if err != nil {
		v.initErr = fmt.Errorf("vault source: creating client: %w", err)
		return
	}
	if v.cfg.Token != "" {
		client.SetToken(v.cfg.Token)
	}

	secret, err := client.KVv2(v.cfg.Mount).Get(context.Background(), v.cfg.Path)
	if err != nil {
		if errors.Is(err, vault.ErrSecretNotFound) {
			v.log.Debug("vault secret not found", map[string]interface{}{
				"mount": v.cfg.Mount,
				"path":  v.cfg.Path,
			})
			v.notFound = true
			return
		}
		v.initErr = fmt.Errorf("vault source: reading %s/%s: %w", v.cfg.Mount, v.cfg.Path, err)
		return
	}

	v.data = normalize(secret.Data)
	v.log.Debug("vault secret loaded", map[string]interface{}{
		"mount": v.cfg.Mount,
		"path":  v.cfg.Path,
		"keys":  len(v.data),
	})
}

// normalize converts decoded JSON maps to map[string]any recursively so
// nested secret data matches the Structured contract.
func normalize(data map[string]interface{}) map[string]any {
	out := make(map[string]any, len(data))
	for k, val := range data {
		if m, ok := val.(map[string]interface{}); ok {
			out[k] = normalize(m)
			continue
		}
		out[k] = val
	}
	return out
}

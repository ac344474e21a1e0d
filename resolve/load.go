package resolve

import (
	"fmt"
	"os"
	"sync"

	"github.com/kbukum/envbind/logger"
	"github.com/kbukum/envbind/schema"
	"github.com/kbukum/envbind/source"
)

// The base of the default chain (.env file, process environment) is
// process-wide: built once on first use and reused by every Load call.
// YAML and Vault sources carry per-schema locations, so they are built
// per call, around the shared base.
var (
	baseOnce    sync.Once
	baseSources []source.Source
	baseErr     error
)

func defaultBase() ([]source.Source, error) {
	baseOnce.Do(func() {
		dotenv, err := source.NewDotenv()
		if err != nil {
			baseErr = err
			return
		}
		baseSources = []source.Source{dotenv, source.NewEnv()}
	})
	return baseSources, baseErr
}

// Load resolves a schema registered under name in the process-wide schema
// registry, assembling the default source chain in the documented
// precedence: .env file, process environment, then — when the schema's
// options or the YAML_CONFIG_FILE override name them — YAML file and
// Vault. This is the no-argument construction surface: declare and
// register a schema once, then Load it wherever the config is needed.
//
// A WithSources option replaces the default chain entirely; WithLogger is
// threaded through to the sources the chain builds (the Vault adapter
// logs client initialization).
func Load(name string, opts ...Option) (*Resolved, error) {
	s, ok := schema.Lookup(name)
	if !ok {
		return nil, fmt.Errorf("schema %q is not registered", name)
	}

	r := New(opts...)
	if len(r.sources) == 0 {
		chain, err := defaultChain(s, r.log)
		if err != nil {
			return nil, err
		}
		r.sources = chain
	}
	return r.Resolve(s)
}

func defaultChain(s *schema.Schema, log *logger.Logger) ([]source.Source, error) {
	base, err := defaultBase()
	if err != nil {
		return nil, err
	}
	chain := append([]source.Source(nil), base...)

	schemaOpts := s.Options()
	if schemaOpts.YAMLFile != "" || os.Getenv(source.YAMLFileVar) != "" {
		var yamlOpts []source.YAMLOption
		if schemaOpts.YAMLFile != "" {
			yamlOpts = append(yamlOpts, source.WithYAMLPath(schemaOpts.YAMLFile))
		}
		if schemaOpts.Separator != "" {
			yamlOpts = append(yamlOpts, source.WithYAMLSeparator(schemaOpts.Separator))
		}
		yamlSrc, err := source.NewYAML(yamlOpts...)
		if err != nil {
			return nil, err
		}
		chain = append(chain, yamlSrc)
	}

	if schemaOpts.VaultPath != "" {
		vaultSrc, err := source.NewVault(source.VaultConfig{
			Mount: schemaOpts.VaultMount,
			Path:  schemaOpts.VaultPath,
		}, log)
		if err != nil {
			return nil, err
		}
		chain = append(chain, vaultSrc)
	}
	return chain, nil
}

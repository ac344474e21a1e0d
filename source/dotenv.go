package source

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// EnvFileVar overrides the .env file path when no explicit path is
// configured.
const EnvFileVar = "ENV_FILE"

// DefaultEnvFile is the implicit .env path tried when neither an option
// nor EnvFileVar names one.
const DefaultEnvFile = ".env"

// Dotenv serves values parsed from a .env file. The file is read once at
// construction; lookups afterwards are in-memory. Flat: it cannot serve
// nested fields.
type Dotenv struct {
	path string
	vars map[string]string
}

// DotenvOption configures NewDotenv.
type DotenvOption func(*dotenvOptions)

type dotenvOptions struct {
	path string
}

// WithDotenvPath sets an explicit .env file path. An explicit path that is
// missing or malformed is a construction error.
func WithDotenvPath(path string) DotenvOption {
	return func(o *dotenvOptions) { o.path = path }
}

// NewDotenv creates a .env source. The path is taken from the option, then
// the ENV_FILE environment variable, then ./.env. A path the operator named
// explicitly (option or ENV_FILE) must exist and parse; the implicit
// default path missing just yields an empty source.
func NewDotenv(opts ...DotenvOption) (*Dotenv, error) {
	var o dotenvOptions
	for _, opt := range opts {
		opt(&o)
	}

	path := o.path
	explicit := path != ""
	if path == "" {
		if v := os.Getenv(EnvFileVar); v != "" {
			path = v
			explicit = true
		} else {
			path = DefaultEnvFile
		}
	}

	if _, err := os.Stat(path); err != nil {
		if explicit {
			return nil, fmt.Errorf("dotenv source: env file %s: %w", path, err)
		}
		return &Dotenv{path: path, vars: map[string]string{}}, nil
	}

	vars, err := godotenv.Read(path)
	if err != nil {
		return nil, fmt.Errorf("dotenv source: parsing %s: %w", path, err)
	}
	return &Dotenv{path: path, vars: vars}, nil
}

// Name implements Source.
func (d *Dotenv) Name() string { return "dotenv" }

// Path returns the resolved .env file path.
func (d *Dotenv) Path() string { return d.path }

// Lookup implements Source.
func (d *Dotenv) Lookup(key string) (string, bool, error) {
	v, ok := d.vars[key]
	return v, ok, nil
}

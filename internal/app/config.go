package app

import (
	"errors"
	"fmt"

	"github.com/vk/ldaggo/internal/nodepath"
)

const (
	// DefaultFrom addresses operand A of the reference tree.
	DefaultFrom = "root.left.left"
	// DefaultTo addresses operand B of the reference tree.
	DefaultTo = "root.left.right.left"
)

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	TreePath   string // .hcl/.yaml tree file; empty selects the reference tree
	ExportPath string // where to write the tree as HCL; empty disables export

	// StartPosition overrides the start position from the tree file. When
	// both are unset, positions start at 0.
	StartPosition *int
	// From and To address the nodes of the distance query. When both are
	// empty, DefaultFrom and DefaultTo are used if the tree has such nodes.
	From string
	To   string

	Format    string // text or json
	LogFormat string
	LogLevel  string
}

// NewConfig validates cfg and returns a copy of it.
func NewConfig(cfg Config) (*Config, error) {
	switch cfg.Format {
	case "":
		cfg.Format = "text"
	case "text", "json":
	default:
		return nil, fmt.Errorf("invalid format %q: must be 'text' or 'json'", cfg.Format)
	}

	switch cfg.LogFormat {
	case "":
		cfg.LogFormat = "text"
	case "text", "json":
	default:
		return nil, fmt.Errorf("invalid log-format %q: must be 'text' or 'json'", cfg.LogFormat)
	}

	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}
	if _, ok := logLevels[cfg.LogLevel]; !ok {
		return nil, fmt.Errorf("invalid log-level %q: must be 'debug', 'info', 'warn', or 'error'", cfg.LogLevel)
	}

	if (cfg.From == "") != (cfg.To == "") {
		return nil, errors.New("--from and --to must be given together")
	}
	for _, raw := range []string{cfg.From, cfg.To} {
		if raw == "" {
			continue
		}
		if _, err := nodepath.Parse(raw); err != nil {
			return nil, err
		}
	}

	return &cfg, nil
}

// explicitPair reports whether the distance query was chosen by the user.
func (c *Config) explicitPair() bool {
	return c.From != "" && c.To != ""
}

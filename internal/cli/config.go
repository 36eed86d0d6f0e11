package cli

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/entail/pkg/errors"
)

// Config holds file-based defaults for command flags. All values are
// optional; explicit flags override anything set here. The configuration
// is loaded once per invocation and passed to each command at construction
// time - there is no process-wide mutable state.
type Config struct {
	// Rules is the default rule file for commands that take --rules.
	Rules string `toml:"rules"`

	// Output is the default output path for commands that write files.
	Output string `toml:"output"`

	// Listen is the default address for the serve command.
	Listen string `toml:"listen"`
}

// defaultListen is used when neither the flag nor the config set one.
const defaultListen = "localhost:8327"

// LoadConfig reads the TOML config file, trying in order: the explicit
// path, $ENTAIL_CONFIG, and ~/.config/entail/config.toml. A missing file
// is not an error unless it was requested explicitly - the zero Config is
// returned instead. A file that exists but fails to parse is always an
// error with code [errors.ErrCodeInvalidConfig].
func LoadConfig(path string) (*Config, error) {
	explicit := path != ""
	if path == "" {
		path = os.Getenv("ENTAIL_CONFIG")
	}
	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return &Config{}, nil
		}
		path = filepath.Join(home, ".config", "entail", "config.toml")
	}

	cfg := &Config{}
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		if os.IsNotExist(err) && !explicit {
			return &Config{}, nil
		}
		if os.IsNotExist(err) {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "config file %s", path)
		}
		return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "parse config %s", path)
	}
	return cfg, nil
}

// listenAddr resolves the serve address: flag, then config, then default.
func (c *Config) listenAddr(flag string) string {
	switch {
	case flag != "":
		return flag
	case c.Listen != "":
		return c.Listen
	default:
		return defaultListen
	}
}

// rulesPath resolves the rule file path: flag, then config.
// Returns an error when neither is set.
func (c *Config) rulesPath(flag string) (string, error) {
	switch {
	case flag != "":
		return flag, nil
	case c.Rules != "":
		return c.Rules, nil
	default:
		return "", errors.New(errors.ErrCodeInvalidPath, "no rule file given (pass one as an argument or set 'rules' in the config)")
	}
}

// Package config loads the lockscript YAML configuration.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/klingon-exchange/lockscript/internal/chain"
	"github.com/klingon-exchange/lockscript/pkg/logging"
)

// FileName is the default config file name.
const FileName = "lockscript.yaml"

// Config holds the tool configuration.
type Config struct {
	// Network selects mainnet or testnet parameters.
	Network chain.Network `yaml:"network"`

	// Logging
	Logging LoggingConfig `yaml:"logging"`

	// Chains holds per-chain overrides keyed by symbol.
	Chains map[string]*ChainConfig `yaml:"chains,omitempty"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	// Level is the log level (debug, info, warn, error).
	Level string `yaml:"level"`
}

// ChainConfig overrides the defaults of one chain.
type ChainConfig struct {
	// AddressFormats is the decoder priority. Empty keeps the chain default.
	AddressFormats []chain.AddressFormat `yaml:"address_formats,omitempty"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Network: chain.Mainnet,
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Load reads the configuration at path. A missing file yields the defaults;
// values present in the file overlay them.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(expandPath(path))
	if errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}

	return cfg, nil
}

// Save writes the configuration to a YAML file.
func (c *Config) Save(path string) error {
	path = expandPath(path)

	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	header := []byte("# lockscript configuration\n# chains.<SYMBOL>.address_formats sets the decoder order (segwit, base58check)\n\n")
	data = append(header, data...)

	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Validate checks the network, log level and address format names, and
// normalizes chain symbols to upper case.
func (c *Config) Validate() error {
	network, err := chain.ParseNetwork(string(c.Network))
	if err != nil {
		return err
	}
	c.Network = network

	if _, err := logging.ParseLevelStrict(c.Logging.Level); err != nil {
		return err
	}

	normalized := make(map[string]*ChainConfig, len(c.Chains))
	for symbol, cc := range c.Chains {
		upper := strings.ToUpper(strings.TrimSpace(symbol))
		if upper == "" {
			return errors.New("empty chain symbol")
		}
		if _, dup := normalized[upper]; dup {
			return fmt.Errorf("chain %s configured twice", upper)
		}
		if cc == nil {
			cc = &ChainConfig{}
		}
		for i, f := range cc.AddressFormats {
			format, err := chain.ParseAddressFormat(string(f))
			if err != nil {
				return fmt.Errorf("chain %s: %w", upper, err)
			}
			cc.AddressFormats[i] = format
		}
		normalized[upper] = cc
	}
	if len(normalized) > 0 {
		c.Chains = normalized
	}

	return nil
}

// AddressFormats returns the decoder priority for symbol: the configured
// override if there is one, else the chain's own order.
func (c *Config) AddressFormats(symbol string, params *chain.Params) []chain.AddressFormat {
	if cc, ok := c.Chains[strings.ToUpper(symbol)]; ok && cc != nil && len(cc.AddressFormats) > 0 {
		return append([]chain.AddressFormat(nil), cc.AddressFormats...)
	}
	return append([]chain.AddressFormat(nil), params.AddressFormats...)
}

// IsTestnet returns true if the testnet network is selected.
func (c *Config) IsTestnet() bool {
	return c.Network == chain.Testnet
}

// expandPath expands ~ to home directory.
func expandPath(path string) string {
	if len(path) > 0 && path[0] == '~' {
		home, _ := os.UserHomeDir()
		return filepath.Join(home, path[1:])
	}
	return path
}

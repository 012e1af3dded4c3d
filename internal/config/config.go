package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	yamlv3 "gopkg.in/yaml.v3"
)

// Load reads configuration from the given YAML file, then overlays
// environment variable overrides (FLOWBRIDGE_*). The conventional
// Bedrock variables BEDROCK_FLOW_ID, BEDROCK_FLOW_ALIAS_ID and
// AWS_REGION are honored as fallbacks when the flowbridge-specific
// keys are unset.
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	// Start from defaults.
	cfg := DefaultConfig()

	// Load YAML file if it exists.
	if _, err := os.Stat(path); err == nil {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("reading config %s: %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("accessing config %s: %w", path, err)
	}

	// Overlay environment variables: FLOWBRIDGE_FLOW_ID -> flow_id, etc.
	if err := k.Load(env.Provider("FLOWBRIDGE_", ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, "FLOWBRIDGE_"))
	}), nil); err != nil {
		return nil, fmt.Errorf("loading env overrides: %w", err)
	}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}

	applyBedrockEnvFallbacks(cfg)

	return cfg, nil
}

// applyBedrockEnvFallbacks fills unset flow parameters from the
// environment variable names the original deployment used.
func applyBedrockEnvFallbacks(cfg *Config) {
	if cfg.FlowID == "" || cfg.FlowID == PlaceholderFlowID {
		if v := os.Getenv("BEDROCK_FLOW_ID"); v != "" {
			cfg.FlowID = v
		}
	}
	if cfg.FlowAliasID == "" || cfg.FlowAliasID == PlaceholderFlowAliasID {
		if v := os.Getenv("BEDROCK_FLOW_ALIAS_ID"); v != "" {
			cfg.FlowAliasID = v
		}
	}
	if v := os.Getenv("AWS_REGION"); v != "" && cfg.Region == DefaultConfig().Region {
		cfg.Region = v
	}
}

// Save writes the configuration to the given YAML file path.
func (c *Config) Save(path string) error {
	data, err := yamlv3.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshalling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config to %s: %w", path, err)
	}
	return nil
}

// Validate checks that the configuration contains usable values.
func (c *Config) Validate() error {
	if c.FlowID == "" || c.FlowID == PlaceholderFlowID {
		return fmt.Errorf("flow_id is required: set it in %s or via FLOWBRIDGE_FLOW_ID / BEDROCK_FLOW_ID", DefaultConfigFile)
	}
	if c.FlowAliasID == "" || c.FlowAliasID == PlaceholderFlowAliasID {
		return fmt.Errorf("flow_alias_id is required: set it in %s or via FLOWBRIDGE_FLOW_ALIAS_ID / BEDROCK_FLOW_ALIAS_ID", DefaultConfigFile)
	}
	if c.Region == "" {
		return fmt.Errorf("region is required")
	}
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("invalid port %d", c.Port)
	}
	if c.InvokeTimeout < 0 {
		return fmt.Errorf("invoke_timeout must be non-negative")
	}
	return nil
}

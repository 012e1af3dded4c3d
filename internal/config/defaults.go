package config

import "time"

// Placeholder identifiers used until the wizard or environment supplies real ones.
const (
	PlaceholderFlowID      = "YOUR_FLOW_ID"
	PlaceholderFlowAliasID = "YOUR_FLOW_ALIAS_ID"
)

// DefaultConfigFile is the conventional config file name.
const DefaultConfigFile = ".flowbridge.yml"

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		FlowID:        PlaceholderFlowID,
		FlowAliasID:   PlaceholderFlowAliasID,
		Region:        "us-east-1",
		Host:          "0.0.0.0",
		Port:          8080,
		InvokeTimeout: 120 * time.Second,
	}
}

package config

import "time"

// Config is the top-level flowbridge configuration, corresponding to .flowbridge.yml.
// It is built once at startup and treated as read-only afterwards.
type Config struct {
	FlowID        string        `yaml:"flow_id" koanf:"flow_id"`
	FlowAliasID   string        `yaml:"flow_alias_id" koanf:"flow_alias_id"`
	Region        string        `yaml:"region" koanf:"region"`
	GatewayURL    string        `yaml:"gateway_url" koanf:"gateway_url"`
	Host          string        `yaml:"host" koanf:"host"`
	Port          int           `yaml:"port" koanf:"port"`
	InvokeTimeout time.Duration `yaml:"invoke_timeout" koanf:"invoke_timeout"`
}

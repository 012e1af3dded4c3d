package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

// clearAmbientEnv keeps machine-local AWS settings from leaking into
// assertions about defaults.
func clearAmbientEnv(t *testing.T) {
	t.Helper()
	for _, v := range []string{"FLOWBRIDGE_FLOW_ID", "FLOWBRIDGE_FLOW_ALIAS_ID", "FLOWBRIDGE_REGION", "BEDROCK_FLOW_ID", "BEDROCK_FLOW_ALIAS_ID", "AWS_REGION"} {
		t.Setenv(v, "")
		os.Unsetenv(v)
	}
}

func TestDefaults(t *testing.T) {
	clearAmbientEnv(t)

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Region != "us-east-1" {
		t.Errorf("region = %q, want us-east-1", cfg.Region)
	}
	if cfg.Port != 8080 {
		t.Errorf("port = %d, want 8080", cfg.Port)
	}
	if cfg.InvokeTimeout != 120*time.Second {
		t.Errorf("invoke_timeout = %v, want 2m", cfg.InvokeTimeout)
	}
	if cfg.FlowID != PlaceholderFlowID {
		t.Errorf("flow_id = %q, want placeholder", cfg.FlowID)
	}
}

func TestLoadYAMLFile(t *testing.T) {
	clearAmbientEnv(t)

	path := filepath.Join(t.TempDir(), ".flowbridge.yml")
	yaml := `flow_id: FLOW123
flow_alias_id: ALIAS456
region: eu-west-1
port: 9090
invoke_timeout: 30s
`
	if err := os.WriteFile(path, []byte(yaml), 0644); err != nil {
		t.Fatalf("writing config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.FlowID != "FLOW123" {
		t.Errorf("flow_id = %q, want FLOW123", cfg.FlowID)
	}
	if cfg.FlowAliasID != "ALIAS456" {
		t.Errorf("flow_alias_id = %q, want ALIAS456", cfg.FlowAliasID)
	}
	if cfg.Region != "eu-west-1" {
		t.Errorf("region = %q, want eu-west-1", cfg.Region)
	}
	if cfg.Port != 9090 {
		t.Errorf("port = %d, want 9090", cfg.Port)
	}
	if cfg.InvokeTimeout != 30*time.Second {
		t.Errorf("invoke_timeout = %v, want 30s", cfg.InvokeTimeout)
	}
}

func TestEnvOverrides(t *testing.T) {
	clearAmbientEnv(t)

	t.Setenv("FLOWBRIDGE_FLOW_ID", "ENVFLOW")
	t.Setenv("FLOWBRIDGE_REGION", "us-west-2")

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.FlowID != "ENVFLOW" {
		t.Errorf("flow_id = %q, want ENVFLOW", cfg.FlowID)
	}
	if cfg.Region != "us-west-2" {
		t.Errorf("region = %q, want us-west-2", cfg.Region)
	}
}

func TestBedrockEnvFallbacks(t *testing.T) {
	clearAmbientEnv(t)

	t.Setenv("BEDROCK_FLOW_ID", "LEGACYFLOW")
	t.Setenv("BEDROCK_FLOW_ALIAS_ID", "LEGACYALIAS")
	t.Setenv("AWS_REGION", "ap-southeast-1")

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.FlowID != "LEGACYFLOW" {
		t.Errorf("flow_id = %q, want LEGACYFLOW", cfg.FlowID)
	}
	if cfg.FlowAliasID != "LEGACYALIAS" {
		t.Errorf("flow_alias_id = %q, want LEGACYALIAS", cfg.FlowAliasID)
	}
	if cfg.Region != "ap-southeast-1" {
		t.Errorf("region = %q, want ap-southeast-1", cfg.Region)
	}
}

func TestFlowbridgeEnvWinsOverBedrockEnv(t *testing.T) {
	clearAmbientEnv(t)

	t.Setenv("FLOWBRIDGE_FLOW_ID", "PRIMARY")
	t.Setenv("BEDROCK_FLOW_ID", "FALLBACK")

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.FlowID != "PRIMARY" {
		t.Errorf("flow_id = %q, want PRIMARY", cfg.FlowID)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"valid", func(c *Config) { c.FlowID = "F1"; c.FlowAliasID = "A1" }, false},
		{"placeholder flow id", func(c *Config) { c.FlowAliasID = "A1" }, true},
		{"empty flow alias id", func(c *Config) { c.FlowID = "F1"; c.FlowAliasID = "" }, true},
		{"empty region", func(c *Config) { c.FlowID = "F1"; c.FlowAliasID = "A1"; c.Region = "" }, true},
		{"bad port", func(c *Config) { c.FlowID = "F1"; c.FlowAliasID = "A1"; c.Port = -1 }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr && err == nil {
				t.Error("expected error, got nil")
			}
			if !tt.wantErr && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestSaveRoundTrip(t *testing.T) {
	clearAmbientEnv(t)

	path := filepath.Join(t.TempDir(), ".flowbridge.yml")

	cfg := DefaultConfig()
	cfg.FlowID = "SAVED"
	cfg.FlowAliasID = "SAVEDALIAS"
	if err := cfg.Save(path); err != nil {
		t.Fatalf("Save: %v", err)
	}

	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got.FlowID != "SAVED" || got.FlowAliasID != "SAVEDALIAS" {
		t.Errorf("round trip = %q/%q, want SAVED/SAVEDALIAS", got.FlowID, got.FlowAliasID)
	}
}

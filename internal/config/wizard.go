package config

import (
	"fmt"
	"strings"

	"github.com/manifoldco/promptui"
)

// bedrockRegions are the regions where Bedrock Flows are commonly available.
var bedrockRegions = []string{
	"us-east-1",
	"us-west-2",
	"eu-central-1",
	"eu-west-1",
	"ap-northeast-1",
	"ap-southeast-1",
}

// RunWizard runs an interactive configuration wizard and returns the
// resulting Config. It also saves the config to .flowbridge.yml.
func RunWizard() (*Config, error) {
	fmt.Println("Welcome to flowbridge! Let's configure your Bedrock flow.")
	fmt.Println()

	cfg := DefaultConfig()

	required := func(label string) func(string) error {
		return func(s string) error {
			if strings.TrimSpace(s) == "" {
				return fmt.Errorf("%s is required", label)
			}
			return nil
		}
	}

	// 1. Flow identifier.
	flowIDPrompt := promptui.Prompt{
		Label:    "Bedrock Flow ID",
		Validate: required("flow ID"),
	}
	flowID, err := flowIDPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("flow ID prompt: %w", err)
	}
	cfg.FlowID = strings.TrimSpace(flowID)

	// 2. Flow alias identifier.
	aliasPrompt := promptui.Prompt{
		Label:    "Bedrock Flow Alias ID",
		Validate: required("flow alias ID"),
	}
	aliasID, err := aliasPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("flow alias ID prompt: %w", err)
	}
	cfg.FlowAliasID = strings.TrimSpace(aliasID)

	// 3. Region selection.
	regionPrompt := promptui.Select{
		Label: "AWS region",
		Items: bedrockRegions,
	}
	_, region, err := regionPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("region selection: %w", err)
	}
	cfg.Region = region

	if err := cfg.Save(DefaultConfigFile); err != nil {
		return nil, err
	}

	fmt.Println()
	fmt.Printf("Configuration saved to %s\n", DefaultConfigFile)
	fmt.Println("Run `flowbridge serve` to start the server, or `flowbridge invoke \"hello\"` for a test invocation.")

	return cfg, nil
}

package config

import (
	"fmt"
	"strconv"

	"github.com/manifoldco/promptui"
)

// RunWizard runs an interactive configuration wizard, saves the result to
// path and returns it.
func RunWizard(path string) (*Config, error) {
	fmt.Println("Welcome to postboard! Let's configure the client.")
	fmt.Println()

	cfg := DefaultConfig()

	// 1. Upstream API.
	basePrompt := promptui.Prompt{
		Label:    "Posts API base URL",
		Default:  cfg.API.BaseURL,
		Validate: ValidateBaseURL,
	}
	baseURL, err := basePrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("base url: %w", err)
	}
	cfg.API.BaseURL = baseURL

	// 2. Missing total-count header.
	totalPrompt := promptui.Select{
		Label: "When the API omits x-total-count",
		Items: []string{
			"unknown (show prev/next only)",
			fmt.Sprintf("assume %d posts (jsonplaceholder fixture)", LegacyFallbackTotal),
		},
	}
	totalIdx, _, err := totalPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("total fallback: %w", err)
	}
	if totalIdx == 1 {
		cfg.API.FallbackTotal = LegacyFallbackTotal
	}

	// 3. Listen port.
	portPrompt := promptui.Prompt{
		Label:    "Web server port",
		Default:  strconv.Itoa(cfg.Server.Port),
		Validate: validatePort,
	}
	portStr, err := portPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("port: %w", err)
	}
	cfg.Server.Port, _ = strconv.Atoi(portStr)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if err := cfg.Save(path); err != nil {
		return nil, fmt.Errorf("saving config: %w", err)
	}

	fmt.Printf("\nConfiguration saved to %s\n", path)
	return cfg, nil
}

func validatePort(s string) error {
	n, err := strconv.Atoi(s)
	if err != nil {
		return fmt.Errorf("port must be a number")
	}
	if n < 1 || n > 65535 {
		return fmt.Errorf("port must be between 1 and 65535")
	}
	return nil
}

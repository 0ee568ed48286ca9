package cmd

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/ziadkadry99/postboard/internal/config"
	"github.com/ziadkadry99/postboard/internal/posts"
)

// loadConfig loads and validates the config, providing a user-friendly error.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w\nRun `postboard init` to create a config file", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", cfgFile, err)
	}
	return cfg, nil
}

// newFetcherFromConfig builds the API client, rate limited when the config
// asks for it. This is the shared version used by every command.
func newFetcherFromConfig(cfg *config.Config) posts.Fetcher {
	client := posts.NewClient(posts.ClientConfig{
		BaseURL:       cfg.API.BaseURL,
		Timeout:       cfg.API.Timeout,
		FallbackTotal: cfg.API.FallbackTotal,
	})
	return posts.NewRateLimitedFetcher(client, cfg.API.RequestsPerMinute)
}

// writeFormatted encodes v as indented JSON or YAML.
func writeFormatted(w io.Writer, format string, v any) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("unknown format %q (want json or yaml)", format)
	}
}

package config

import "time"

const (
	// DefaultBaseURL is the public fixture API the client was built against.
	DefaultBaseURL = "https://jsonplaceholder.typicode.com"

	// DefaultPath is the config file read when --config is not given.
	DefaultPath = ".postboard.yml"

	// LegacyFallbackTotal is the size of the jsonplaceholder posts fixture.
	LegacyFallbackTotal = 100
)

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Port: 8080,
		},
		API: APIConfig{
			BaseURL: DefaultBaseURL,
			Timeout: 10 * time.Second,
		},
		UI: UIConfig{
			Title:        "Posts",
			ImageBaseURL: "https://picsum.photos",
		},
		Telemetry: TelemetryConfig{
			ServiceName: "postboard",
			SampleRatio: 1,
		},
	}
}

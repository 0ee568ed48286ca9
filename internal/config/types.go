package config

import "time"

// Config is the top-level postboard configuration, corresponding to .postboard.yml.
type Config struct {
	Server    ServerConfig    `yaml:"server" koanf:"server"`
	API       APIConfig       `yaml:"api" koanf:"api"`
	UI        UIConfig        `yaml:"ui" koanf:"ui"`
	Telemetry TelemetryConfig `yaml:"telemetry" koanf:"telemetry"`
}

// ServerConfig holds settings for the web front end.
type ServerConfig struct {
	Port            int  `yaml:"port" koanf:"port"`
	AllowAllOrigins bool `yaml:"allow_all_origins" koanf:"allow_all_origins"`
}

// APIConfig describes the upstream posts API.
type APIConfig struct {
	BaseURL string        `yaml:"base_url" koanf:"base_url"`
	Timeout time.Duration `yaml:"timeout" koanf:"timeout"`
	// FallbackTotal is used when the upstream omits x-total-count.
	// Zero leaves the total unknown.
	FallbackTotal     int `yaml:"fallback_total" koanf:"fallback_total"`
	RequestsPerMinute int `yaml:"requests_per_minute" koanf:"requests_per_minute"`
}

// UIConfig holds presentation settings.
type UIConfig struct {
	Title        string `yaml:"title" koanf:"title"`
	ImageBaseURL string `yaml:"image_base_url" koanf:"image_base_url"`
}

// TelemetryConfig controls trace export. An empty endpoint disables it.
type TelemetryConfig struct {
	OTLPEndpoint string `yaml:"otlp_endpoint" koanf:"otlp_endpoint"`
	ServiceName  string `yaml:"service_name" koanf:"service_name"`
	// SampleRatio is the fraction of root spans kept, 0 to 1.
	SampleRatio float64 `yaml:"sample_ratio" koanf:"sample_ratio"`
}

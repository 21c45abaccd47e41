package model

// Config is the process-wide configuration, loaded once at startup and
// passed by reference into the adapters. No ambient globals.
type Config struct {
	Server      ServerConfig      `yaml:"server"`
	Vendor      VendorConfig      `yaml:"vendor"`
	Telemetry   TelemetryConfig   `yaml:"telemetry"`
	Logging     LoggingConfig     `yaml:"logging"`
	Descriptors DescriptorsConfig `yaml:"descriptors"`
}

type ServerConfig struct {
	ListenAddr string `yaml:"listen_addr"`
}

type VendorConfig struct {
	// BaseURL of the vendor cloud API, scheme included.
	BaseURL string `yaml:"base_url"`
}

// TelemetryConfig configures the error-reporting sink. An empty DSN
// disables telemetry entirely; that is a supported configuration, not an
// error.
type TelemetryConfig struct {
	DSN         string `yaml:"dsn"`
	Environment string `yaml:"environment"`
	Release     string `yaml:"release"`
}

type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
	Output string `yaml:"output"`
}

// DescriptorsConfig points at the two static capability manifests.
type DescriptorsConfig struct {
	DevicePath string `yaml:"device_path"`
	SpacePath  string `yaml:"space_path"`
}

// DefaultConfig returns the configuration used when no config file is
// present.
func DefaultConfig() *Config {
	return &Config{
		Server:  ServerConfig{ListenAddr: ":8080"},
		Vendor:  VendorConfig{BaseURL: "https://api.gooee.io"},
		Logging: LoggingConfig{Level: "info", Format: "json", Output: "stdout"},
		Descriptors: DescriptorsConfig{
			DevicePath: "configs/device-template.json",
			SpacePath:  "configs/space-template.json",
		},
	}
}

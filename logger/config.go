package logger

// Config holds logger configuration.
type Config struct {
	// Level is the minimum level to emit: debug, info, warn, error (default: info).
	Level string `yaml:"level" mapstructure:"level"`

	// Format selects the output encoding: "json" or "console" (default: json).
	Format string `yaml:"format" mapstructure:"format"`

	// Output is the destination: "stdout" or "stderr" (default: stdout).
	Output string `yaml:"output" mapstructure:"output"`

	// Timestamp controls whether a timestamp field is added (default: true).
	Timestamp bool `yaml:"timestamp" mapstructure:"timestamp"`

	// NoColor disables colorized console output.
	NoColor bool `yaml:"no_color" mapstructure:"no_color"`
}

// ApplyDefaults sets sensible defaults for zero-valued fields.
func (c *Config) ApplyDefaults() {
	if c.Level == "" {
		c.Level = "info"
	}
	if c.Format == "" {
		c.Format = "json"
	}
	if c.Output == "" {
		c.Output = "stdout"
	}
}

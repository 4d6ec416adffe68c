package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Load reads the service configuration. Sources, in increasing precedence:
// config.yml (searched in ./cmd/<service>, ./config, and the working
// directory, or at $SEAHORSE_CONFIG), a .env file, and process environment
// variables prefixed with the uppercased service name
// (e.g. SEAHORSE_AUTH_TOKEN_TTL).
func Load(serviceName string) (*Config, error) {
	loadDotEnv(serviceName)

	v := viper.New()
	if path := os.Getenv(strings.ToUpper(serviceName) + "_CONFIG"); path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath("./cmd/" + serviceName)
		v.AddConfigPath("./config")
		v.AddConfigPath(".")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("config: read config file: %w", err)
		}
		// No config file is fine; env vars and defaults take over.
	}

	v.SetEnvPrefix(strings.ToUpper(serviceName))
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("config: unmarshal: %w", err)
	}

	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return cfg, nil
}

// loadDotEnv loads the first .env file found, if any.
func loadDotEnv(serviceName string) {
	for _, path := range []string{".env." + serviceName, ".env"} {
		if _, err := os.Stat(path); err == nil {
			_ = godotenv.Load(path)
			return
		}
	}
}

// Package config loads and validates the immutable service configuration.
// It is constructed once at startup and passed into components; nothing reads
// configuration ambiently after that.
package config

import (
	"time"

	"github.com/skillsenselab/seahorse/database"
	"github.com/skillsenselab/seahorse/logger"
	"github.com/skillsenselab/seahorse/server"
	"github.com/skillsenselab/seahorse/validation"
)

// Config is the root service configuration.
type Config struct {
	Server   server.Config   `yaml:"server" mapstructure:"server"`
	Database database.Config `yaml:"database" mapstructure:"database"`
	Auth     AuthConfig      `yaml:"auth" mapstructure:"auth"`
	Log      logger.Config   `yaml:"log" mapstructure:"log"`
}

// AuthConfig configures token issuance, the session cookie, and password
// hashing.
type AuthConfig struct {
	// PrivateKeyFile is the PEM-encoded RSA private key used to sign tokens.
	PrivateKeyFile string `yaml:"private_key_file" mapstructure:"private_key_file" validate:"required"`

	// PublicKeyFile is the PEM-encoded RSA public key used to verify tokens.
	// If empty, the public key is derived from the private key.
	PublicKeyFile string `yaml:"public_key_file" mapstructure:"public_key_file"`

	// TokenTTL is the embedded token lifetime (default: 10m).
	TokenTTL time.Duration `yaml:"token_ttl" mapstructure:"token_ttl"`

	// CookieName is the session cookie name (default: "seahorse").
	CookieName string `yaml:"cookie_name" mapstructure:"cookie_name"`

	// CookieTTL is the session cookie lifetime (default: 10m). It is
	// deliberately independent of TokenTTL: deployments may let the cookie
	// outlive the token (forcing re-login on next protected request) or the
	// reverse. The defaults keep them aligned.
	CookieTTL time.Duration `yaml:"cookie_ttl" mapstructure:"cookie_ttl"`

	// CookieSecure marks the session cookie for HTTPS-only transport.
	CookieSecure bool `yaml:"cookie_secure" mapstructure:"cookie_secure"`

	// BcryptCost is the password hashing work factor (default: 10).
	BcryptCost int `yaml:"bcrypt_cost" mapstructure:"bcrypt_cost" validate:"min=4,max=31"`
}

// ApplyDefaults fills in zero-value fields across all sections.
func (c *Config) ApplyDefaults() {
	c.Server.ApplyDefaults()
	c.Database.ApplyDefaults()
	c.Log.ApplyDefaults()

	if c.Auth.TokenTTL == 0 {
		c.Auth.TokenTTL = 10 * time.Minute
	}
	if c.Auth.CookieName == "" {
		c.Auth.CookieName = "seahorse"
	}
	if c.Auth.CookieTTL == 0 {
		c.Auth.CookieTTL = 10 * time.Minute
	}
	if c.Auth.BcryptCost == 0 {
		c.Auth.BcryptCost = 10
	}
}

// Validate checks the configuration. ApplyDefaults must run first.
func (c *Config) Validate() error {
	if err := c.Server.Validate(); err != nil {
		return err
	}
	return validation.Validate(c)
}

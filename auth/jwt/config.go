package jwt

import (
	"crypto/rsa"
	"errors"
	"time"

	gojwt "github.com/golang-jwt/jwt/v5"
)

// signingMethod is the one accepted signature algorithm. It is fixed rather
// than configurable: verification pins it, so a token presenting any other
// algorithm is rejected regardless of whether its signature would check out.
var signingMethod = gojwt.SigningMethodRS512

// Config configures token issuance and verification.
type Config struct {
	// PrivateKey signs issued tokens. Required by the Issuer.
	PrivateKey *rsa.PrivateKey

	// PublicKey verifies token signatures. If not set, the Verifier derives
	// it from PrivateKey.
	PublicKey *rsa.PublicKey

	// TokenTTL is the lifetime of issued tokens (default: 10m).
	TokenTTL time.Duration
}

// ApplyDefaults fills in zero-value fields with sensible defaults.
func (c *Config) ApplyDefaults() {
	if c.TokenTTL == 0 {
		c.TokenTTL = 10 * time.Minute
	}
}

// validateForIssuing checks required fields for the Issuer.
func (c *Config) validateForIssuing() error {
	if c.PrivateKey == nil {
		return errors.New("jwt: private key is required for issuing tokens")
	}
	return nil
}

// verifyKey returns the key used for verifying tokens.
func (c *Config) verifyKey() (*rsa.PublicKey, error) {
	if c.PublicKey != nil {
		return c.PublicKey, nil
	}
	if c.PrivateKey != nil {
		return &c.PrivateKey.PublicKey, nil
	}
	return nil, errors.New("jwt: public or private key is required for verifying tokens")
}

package config

import (
	"crypto/rsa"
	"fmt"
	"os"

	gojwt "github.com/golang-jwt/jwt/v5"
)

// LoadKeys reads the configured PEM key pair. When no public key file is
// configured the public key is derived from the private key.
func (c *AuthConfig) LoadKeys() (*rsa.PrivateKey, *rsa.PublicKey, error) {
	privPEM, err := os.ReadFile(c.PrivateKeyFile)
	if err != nil {
		return nil, nil, fmt.Errorf("config: read private key: %w", err)
	}
	priv, err := gojwt.ParseRSAPrivateKeyFromPEM(privPEM)
	if err != nil {
		return nil, nil, fmt.Errorf("config: parse private key: %w", err)
	}

	if c.PublicKeyFile == "" {
		return priv, &priv.PublicKey, nil
	}

	pubPEM, err := os.ReadFile(c.PublicKeyFile)
	if err != nil {
		return nil, nil, fmt.Errorf("config: read public key: %w", err)
	}
	pub, err := gojwt.ParseRSAPublicKeyFromPEM(pubPEM)
	if err != nil {
		return nil, nil, fmt.Errorf("config: parse public key: %w", err)
	}
	return priv, pub, nil
}

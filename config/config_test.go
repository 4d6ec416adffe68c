package config

import (
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestApplyDefaults(t *testing.T) {
	cfg := &Config{}
	cfg.ApplyDefaults()

	if cfg.Auth.TokenTTL != 10*time.Minute {
		t.Errorf("expected token ttl 10m, got %s", cfg.Auth.TokenTTL)
	}
	if cfg.Auth.CookieTTL != 10*time.Minute {
		t.Errorf("expected cookie ttl 10m, got %s", cfg.Auth.CookieTTL)
	}
	if cfg.Auth.CookieName != "seahorse" {
		t.Errorf("expected cookie name seahorse, got %s", cfg.Auth.CookieName)
	}
	if cfg.Auth.BcryptCost != 10 {
		t.Errorf("expected bcrypt cost 10, got %d", cfg.Auth.BcryptCost)
	}
	if cfg.Server.Port != 3000 {
		t.Errorf("expected port 3000, got %d", cfg.Server.Port)
	}
}

func TestValidate_MissingPrivateKey(t *testing.T) {
	cfg := &Config{}
	cfg.Database.DSN = "file::memory:"
	cfg.ApplyDefaults()

	if err := cfg.Validate(); err == nil {
		t.Error("expected validation error without private_key_file")
	}
}

func TestValidate_BadBcryptCost(t *testing.T) {
	cfg := &Config{}
	cfg.Auth.PrivateKeyFile = "key.pem"
	cfg.Auth.BcryptCost = 99
	cfg.Database.DSN = "file::memory:"
	cfg.ApplyDefaults()

	if err := cfg.Validate(); err == nil {
		t.Error("expected validation error for bcrypt cost 99")
	}
}

func writeTestKey(t *testing.T) (string, *rsa.PrivateKey) {
	t.Helper()
	key, err := rsa.GenerateKey(rand.Reader, 2048)
	if err != nil {
		t.Fatalf("generate key: %v", err)
	}

	path := filepath.Join(t.TempDir(), "private.pem")
	block := &pem.Block{
		Type:  "RSA PRIVATE KEY",
		Bytes: x509.MarshalPKCS1PrivateKey(key),
	}
	if err := os.WriteFile(path, pem.EncodeToMemory(block), 0o600); err != nil {
		t.Fatalf("write key: %v", err)
	}
	return path, key
}

func TestLoadKeys_DerivesPublicKey(t *testing.T) {
	path, key := writeTestKey(t)

	cfg := &AuthConfig{PrivateKeyFile: path}
	priv, pub, err := cfg.LoadKeys()
	if err != nil {
		t.Fatalf("load keys: %v", err)
	}
	if priv.N.Cmp(key.N) != 0 {
		t.Error("loaded private key does not match")
	}
	if pub.N.Cmp(key.PublicKey.N) != 0 {
		t.Error("derived public key does not match")
	}
}

func TestLoadKeys_ExplicitPublicKey(t *testing.T) {
	privPath, key := writeTestKey(t)

	pubPath := filepath.Join(t.TempDir(), "public.pem")
	pubDER, err := x509.MarshalPKIXPublicKey(&key.PublicKey)
	if err != nil {
		t.Fatalf("marshal public key: %v", err)
	}
	block := &pem.Block{Type: "PUBLIC KEY", Bytes: pubDER}
	if err := os.WriteFile(pubPath, pem.EncodeToMemory(block), 0o600); err != nil {
		t.Fatalf("write public key: %v", err)
	}

	cfg := &AuthConfig{PrivateKeyFile: privPath, PublicKeyFile: pubPath}
	_, pub, err := cfg.LoadKeys()
	if err != nil {
		t.Fatalf("load keys: %v", err)
	}
	if pub.N.Cmp(key.PublicKey.N) != 0 {
		t.Error("loaded public key does not match")
	}
}

func TestLoadKeys_MissingFile(t *testing.T) {
	cfg := &AuthConfig{PrivateKeyFile: "/nonexistent/key.pem"}
	if _, _, err := cfg.LoadKeys(); err == nil {
		t.Error("expected error for missing key file")
	}
}

func TestLoadKeys_NotPEM(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.pem")
	if err := os.WriteFile(path, []byte("not a key"), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}
	cfg := &AuthConfig{PrivateKeyFile: path}
	if _, _, err := cfg.LoadKeys(); err == nil {
		t.Error("expected error for malformed key file")
	}
}

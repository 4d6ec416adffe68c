// Package testutil provides shared fixtures for tests.
package testutil

import (
	"crypto/rand"
	"crypto/rsa"
	"testing"
)

// RSAKey generates a fresh RSA key pair for token signing in tests.
func RSAKey(t testing.TB) *rsa.PrivateKey {
	t.Helper()
	key, err := rsa.GenerateKey(rand.Reader, 2048)
	if err != nil {
		t.Fatalf("generate rsa key: %v", err)
	}
	return key
}

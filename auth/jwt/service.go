// Package jwt issues and verifies the signed identity tokens that carry a
// logged-in user across requests.
//
// Tokens are RS512-signed JWTs with a `{id, name}` payload and an expiry set
// at issuance. They are stateless: validity is determined solely by signature
// and expiry, with no server-side revocation list.
package jwt

import (
	"crypto/rsa"
	"errors"
	"fmt"
	"time"

	gojwt "github.com/golang-jwt/jwt/v5"
)

// Verification failure taxonomy. Verify returns exactly one of these
// (possibly wrapped) so callers can branch without inspecting library errors.
var (
	// ErrExpired means the signature checked out but the token is past its expiry.
	ErrExpired = errors.New("jwt: token expired")
	// ErrMalformed means the input is not decodable as a token.
	ErrMalformed = errors.New("jwt: token malformed")
	// ErrInvalidSignature means the token decodes but its signature or
	// algorithm does not verify against the configured key.
	ErrInvalidSignature = errors.New("jwt: invalid token signature")
)

// Claims is the identity payload embedded in every issued token.
type Claims struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	gojwt.RegisteredClaims
}

// Issuer creates signed, time-bounded identity tokens.
type Issuer struct {
	key *rsa.PrivateKey
	ttl time.Duration
}

// NewIssuer creates a token issuer from configuration.
func NewIssuer(cfg *Config) (*Issuer, error) {
	cfg.ApplyDefaults()
	if err := cfg.validateForIssuing(); err != nil {
		return nil, err
	}
	return &Issuer{key: cfg.PrivateKey, ttl: cfg.TokenTTL}, nil
}

// Issue builds a token asserting the given subject id and display name,
// expiring at issuance time plus the configured lifetime.
func (i *Issuer) Issue(subjectID, displayName string) (string, error) {
	now := time.Now()
	claims := &Claims{
		ID:   subjectID,
		Name: displayName,
		RegisteredClaims: gojwt.RegisteredClaims{
			IssuedAt:  gojwt.NewNumericDate(now),
			ExpiresAt: gojwt.NewNumericDate(now.Add(i.ttl)),
		},
	}

	signed, err := gojwt.NewWithClaims(signingMethod, claims).SignedString(i.key)
	if err != nil {
		return "", fmt.Errorf("jwt: sign token: %w", err)
	}
	return signed, nil
}

// Verifier validates and decodes identity tokens. Verification is stateless
// and side-effect-free; it never consults the credential store.
type Verifier struct {
	key *rsa.PublicKey
}

// NewVerifier creates a token verifier from configuration.
func NewVerifier(cfg *Config) (*Verifier, error) {
	cfg.ApplyDefaults()
	key, err := cfg.verifyKey()
	if err != nil {
		return nil, err
	}
	return &Verifier{key: key}, nil
}

// Verify checks the token's signature, algorithm, and expiry, and returns the
// decoded claims. Failures map onto ErrExpired, ErrMalformed, or
// ErrInvalidSignature.
func (v *Verifier) Verify(tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := gojwt.ParseWithClaims(tokenString, claims, v.keyFunc,
		gojwt.WithValidMethods([]string{signingMethod.Alg()}),
	)
	if err != nil {
		return nil, mapParseError(err)
	}
	if !token.Valid {
		return nil, ErrInvalidSignature
	}
	return claims, nil
}

// keyFunc double-checks the signing method before handing out the key,
// mirroring the WithValidMethods pin.
func (v *Verifier) keyFunc(token *gojwt.Token) (interface{}, error) {
	if token.Method.Alg() != signingMethod.Alg() {
		return nil, fmt.Errorf("jwt: unexpected signing method: %s", token.Method.Alg())
	}
	return v.key, nil
}

// mapParseError translates golang-jwt sentinel errors into the package taxonomy.
func mapParseError(err error) error {
	switch {
	case errors.Is(err, gojwt.ErrTokenExpired):
		return fmt.Errorf("%w: %v", ErrExpired, err)
	case errors.Is(err, gojwt.ErrTokenMalformed):
		return fmt.Errorf("%w: %v", ErrMalformed, err)
	case errors.Is(err, gojwt.ErrTokenSignatureInvalid),
		errors.Is(err, gojwt.ErrTokenUnverifiable):
		return fmt.Errorf("%w: %v", ErrInvalidSignature, err)
	default:
		return fmt.Errorf("%w: %v", ErrInvalidSignature, err)
	}
}

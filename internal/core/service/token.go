package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/stayease/booking-api/internal/core/domain"
)

const defaultTokenTTL = 24 * time.Hour

// TokenProvider issues and inspects HMAC-SHA256 bearer tokens. All parse and
// signature failures collapse to false/"" — the only action a caller can take
// on a bad token is to deny, so nothing is gained by propagating the cause.
type TokenProvider struct {
	secret []byte
	ttl    time.Duration
}

func NewTokenProvider(secret string, ttl time.Duration) *TokenProvider {
	if ttl <= 0 {
		ttl = defaultTokenTTL
	}
	return &TokenProvider{secret: []byte(secret), ttl: ttl}
}

// Issue signs a token with subject=email and a "role" claim, valid for the
// configured TTL from now.
func (p *TokenProvider) Issue(email string, role domain.Role) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":  email,
		"role": string(role),
		"iat":  now.Unix(),
		"exp":  now.Add(p.ttl).Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(p.secret)
}

// Validate reports whether the token is well-formed, carries a valid
// signature, and has not expired.
func (p *TokenProvider) Validate(token string) bool {
	parsed, err := jwt.Parse(token, p.keyFunc)
	return err == nil && parsed.Valid
}

// Subject returns the email embedded in the token, or "" when the token is
// malformed or forged. Expiry is not checked here; authenticated flows must
// call Validate first.
func (p *TokenProvider) Subject(token string) string {
	claims := p.claims(token)
	if claims == nil {
		return ""
	}
	sub, _ := claims["sub"].(string)
	return sub
}

// RoleClaim returns the role string embedded in the token, or "" when the
// token is malformed or forged.
func (p *TokenProvider) RoleClaim(token string) string {
	claims := p.claims(token)
	if claims == nil {
		return ""
	}
	role, _ := claims["role"].(string)
	return role
}

// claims verifies the signature and returns the payload without enforcing
// expiry, so claim extraction stays independently safe on expired tokens.
func (p *TokenProvider) claims(token string) jwt.MapClaims {
	parser := jwt.NewParser(jwt.WithoutClaimsValidation())
	claims := jwt.MapClaims{}
	if _, err := parser.ParseWithClaims(token, claims, p.keyFunc); err != nil {
		return nil
	}
	return claims
}

func (p *TokenProvider) keyFunc(token *jwt.Token) (interface{}, error) {
	if token.Method.Alg() != jwt.SigningMethodHS256.Alg() {
		return nil, jwt.ErrTokenSignatureInvalid
	}
	return p.secret, nil
}

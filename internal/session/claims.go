package session

import (
	"fmt"

	"github.com/golang-jwt/jwt/v5"
)

// DecodeClaims base64-decodes the middle segment of the token and returns its
// registered claims WITHOUT verifying the signature. The client has no
// verification key and does not want one: authorization is enforced by the
// backend on every request, and client-side expiry checks exist only to avoid
// sending requests that are certain to fail. Do not "fix" this by adding
// signature verification - that would change the trust model.
func DecodeClaims(token string) (*jwt.RegisteredClaims, error) {
	var claims jwt.RegisteredClaims
	parser := jwt.NewParser()
	if _, _, err := parser.ParseUnverified(token, &claims); err != nil {
		return nil, fmt.Errorf("decode token claims: %w", err)
	}
	return &claims, nil
}

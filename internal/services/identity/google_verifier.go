// File: internal/services/identity/google_verifier.go
package identity

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/api/idtoken"
)

// Google publishes its tokens under two issuer spellings; both are accepted,
// nothing else is.
var acceptedIssuers = map[string]bool{
	"accounts.google.com":         true,
	"https://accounts.google.com": true,
}

type validateFunc func(ctx context.Context, token, audience string) (*idtoken.Payload, error)

// GoogleVerifier verifies Google OAuth ID tokens. Signature, expiry and
// audience checks are delegated to Google's published verification
// procedure; the issuer allow-list and claim extraction happen here.
type GoogleVerifier struct {
	config   *Config
	validate validateFunc
}

func NewGoogleVerifier(config *Config) (*GoogleVerifier, error) {
	if config == nil {
		return nil, fmt.Errorf("identity config is required")
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return &GoogleVerifier{config: config, validate: idtoken.Validate}, nil
}

func (v *GoogleVerifier) Verify(ctx context.Context, assertion string) (*Claims, error) {
	if strings.TrimSpace(assertion) == "" {
		return nil, fmt.Errorf("%w: empty assertion", ErrInvalidAssertion)
	}

	payload, err := v.validate(ctx, assertion, v.config.ClientID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidAssertion, err)
	}

	if !acceptedIssuers[payload.Issuer] {
		return nil, fmt.Errorf("%w: wrong issuer", ErrInvalidAssertion)
	}

	claims := &Claims{
		Subject: payload.Subject,
		Email:   stringClaim(payload, "email"),
		Name:    stringClaim(payload, "name"),
		Picture: stringClaim(payload, "picture"),
	}
	if claims.Subject == "" || claims.Email == "" {
		return nil, fmt.Errorf("%w: missing required claims", ErrInvalidAssertion)
	}
	return claims, nil
}

func stringClaim(payload *idtoken.Payload, key string) string {
	if v, ok := payload.Claims[key].(string); ok {
		return v
	}
	return ""
}

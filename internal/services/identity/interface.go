// File: internal/services/identity/interface.go
package identity

import "context"

// Claims are the profile attributes extracted from a verified identity
// assertion. Subject is the provider's stable external id.
type Claims struct {
	Subject string
	Email   string
	Name    string
	Picture string
}

// Verifier validates an externally issued identity assertion. Verification
// is pure: no side effects, no persistence.
type Verifier interface {
	Verify(ctx context.Context, assertion string) (*Claims, error)
}

// File: internal/services/identity/config.go
package identity

import "fmt"

type Config struct {
	// ClientID is the deployment's registered OAuth client identifier.
	// The assertion's audience claim must match it.
	ClientID string
}

func (c *Config) Validate() error {
	if c.ClientID == "" {
		return fmt.Errorf("GOOGLE_CLIENT_ID is required")
	}
	return nil
}

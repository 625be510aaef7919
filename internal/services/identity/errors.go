// File: internal/services/identity/errors.go
package identity

import "errors"

// ErrInvalidAssertion covers every verification failure: bad signature,
// expired token, wrong audience, foreign issuer, missing claims. The caller
// gets no finer detail than "the assertion did not verify".
var ErrInvalidAssertion = errors.New("invalid identity assertion")

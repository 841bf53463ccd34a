package policy

import "errors"

// ErrForbidden is the default denial error. Hosts that carry their own
// forbidden error hierarchy supply a replacement through Options.Deny.
var ErrForbidden = errors.New("forbidden")

// Request carries the arguments of one access verification.
type Request struct {
	// UserID identifies the requesting principal. A nil UserID always
	// fails verification, regardless of stored data.
	UserID      *int64
	ObjectClass string
	ObjectID    int64
	AccessType  string
}

// Policy decides pass/fail for one request. A successful verification
// returns the id of the matched protection record; a denial returns the
// policy's configured denial error.
type Policy interface {
	Verify(req Request) (int64, error)
}

// Verifier is the indirection between VerifyAccess and Policy.Verify.
// Replacing it wraps verification uniformly for every policy, without
// touching policy implementations.
type Verifier func(p Policy, req Request) (int64, error)

// DefaultVerifier calls the policy's own Verify method.
func DefaultVerifier(p Policy, req Request) (int64, error) {
	return p.Verify(req)
}

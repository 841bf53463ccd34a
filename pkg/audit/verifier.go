package audit

import (
	"fmt"

	"accessctl/pkg/policy"
)

// Verifier wraps a policy verifier so every access decision is audited.
// Pass the result as Options.Verifier when building the policy registry;
// denials are logged at warning severity, allowed checks at info.
func Verifier(next policy.Verifier) policy.Verifier {
	if next == nil {
		next = policy.DefaultVerifier
	}
	return func(p policy.Policy, req policy.Request) (int64, error) {
		id, err := next(p, req)

		event := CheckEvent{
			Policy:      fmt.Sprintf("%T", p),
			UserID:      req.UserID,
			ObjectClass: req.ObjectClass,
			ObjectID:    req.ObjectID,
			AccessType:  req.AccessType,
			Allowed:     err == nil,
		}
		if err != nil {
			event.ErrorMessage = err.Error()
		}
		Log(event)

		return id, err
	}
}

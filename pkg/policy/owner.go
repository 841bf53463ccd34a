package policy

import "accessctl/pkg/ledger"

// Ensure OwnerPolicy implements Policy
var _ Policy = (*OwnerPolicy)(nil)

// OwnerPolicy verifies that the requester is an owner of the requested
// object. The requested access type plays no part in the decision.
type OwnerPolicy struct {
	store ledger.Store
	deny  error
}

// NewOwnerPolicy creates an ownership policy. A nil deny error defaults
// to ErrForbidden.
func NewOwnerPolicy(store ledger.Store, deny error) *OwnerPolicy {
	if deny == nil {
		deny = ErrForbidden
	}
	return &OwnerPolicy{store: store, deny: deny}
}

func (p *OwnerPolicy) Verify(req Request) (int64, error) {
	if req.UserID == nil {
		return 0, p.deny
	}

	id, found, err := p.store.FindOwnership(req.ObjectClass, req.ObjectID, *req.UserID)
	if err != nil {
		return 0, err
	}
	if !found {
		return 0, p.deny
	}
	return id, nil
}

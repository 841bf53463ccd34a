package policy

import "accessctl/pkg/ledger"

// Ensure ACLPolicy implements Policy
var _ Policy = (*ACLPolicy)(nil)

// ACLPolicy verifies that the requester holds a matching grant rule on
// the requested object.
type ACLPolicy struct {
	store ledger.Store
	deny  error
}

// NewACLPolicy creates an ACL policy. A nil deny error defaults to
// ErrForbidden.
func NewACLPolicy(store ledger.Store, deny error) *ACLPolicy {
	if deny == nil {
		deny = ErrForbidden
	}
	return &ACLPolicy{store: store, deny: deny}
}

func (p *ACLPolicy) Verify(req Request) (int64, error) {
	if req.UserID == nil {
		return 0, p.deny
	}

	id, found, err := p.store.FindGrant(req.ObjectClass, req.ObjectID, *req.UserID, req.AccessType)
	if err != nil {
		return 0, err
	}
	if !found {
		return 0, p.deny
	}
	return id, nil
}

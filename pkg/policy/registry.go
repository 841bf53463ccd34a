package policy

import (
	"errors"
	"sort"

	"accessctl/pkg/ledger"
)

// Names of the built-in policies.
const (
	ACLPolicyName   = "aclPolicy"
	OwnerPolicyName = "ownerPolicy"
)

// Options configures a Registry. All policies share the same verifier
// and denial error.
type Options struct {
	// Verifier wraps every verification (defaults to DefaultVerifier).
	Verifier Verifier

	// Deny is the error raised on denial (defaults to ErrForbidden).
	Deny error

	// Policies are host-supplied entries, merged on top of the
	// built-ins. An entry with a built-in name overrides it.
	Policies map[string]Policy
}

// Handle pairs a policy with the registry's verifier.
type Handle struct {
	name     string
	policy   Policy
	verifier Verifier
}

// Name returns the name the policy is registered under.
func (h *Handle) Name() string {
	return h.name
}

// VerifyAccess runs the configured verifier for this policy.
func (h *Handle) VerifyAccess(req Request) (int64, error) {
	return h.verifier(h.policy, req)
}

// Registry is a read-only mapping of policy name to policy handle,
// built once at startup.
type Registry struct {
	handles map[string]*Handle
}

// NewRegistry builds the policy registry. The schema guard runs first:
// no policy instance is created over an uninstalled or mismatched
// schema, since every policy query assumes the current layout.
func NewRegistry(store ledger.Store, guard func() error, opts Options) (*Registry, error) {
	if guard == nil {
		return nil, errors.New("a schema guard is required")
	}
	if err := guard(); err != nil {
		return nil, err
	}

	verifier := opts.Verifier
	if verifier == nil {
		verifier = DefaultVerifier
	}

	policies := map[string]Policy{
		ACLPolicyName:   NewACLPolicy(store, opts.Deny),
		OwnerPolicyName: NewOwnerPolicy(store, opts.Deny),
	}
	for name, p := range opts.Policies {
		policies[name] = p
	}

	handles := make(map[string]*Handle, len(policies))
	for name, p := range policies {
		handles[name] = &Handle{name: name, policy: p, verifier: verifier}
	}

	return &Registry{handles: handles}, nil
}

// Policy returns the handle registered under name.
func (r *Registry) Policy(name string) (*Handle, bool) {
	h, ok := r.handles[name]
	return h, ok
}

// Names returns all registered policy names, sorted.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.handles))
	for name := range r.handles {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

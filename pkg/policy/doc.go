// Package policy implements pluggable access verification strategies.
//
// A policy decides pass/fail for a (principal, object, access type)
// request. Two built-ins ship with accessctl: the ACL policy, which
// checks grant rules, and the owner policy, which checks ownership.
// Hosts register additional policies through Options.Policies.
//
// Callers go through a Handle's VerifyAccess rather than Policy.Verify
// directly. VerifyAccess dispatches through the registry's Verifier,
// so cross-cutting behavior (such as audit logging of denials) is added
// once for every policy variant. See accessctl/pkg/audit.Verifier.
package policy

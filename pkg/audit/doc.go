// Package audit provides audit logging for authorization activity.
//
// Events are written in RFC5424 syslog format to stdout and, when an
// audit database is configured (the audit_database_url attribute or
// AUDIT_DATABASE_URL), persisted to a messages table. Verifier
// adapts the audit trail to the policy engine's verifier indirection so
// that every policy variant is audited without changes to the policies
// themselves.
package audit

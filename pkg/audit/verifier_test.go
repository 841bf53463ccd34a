package audit

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"accessctl/pkg/policy"
)

type stubPolicy struct {
	id  int64
	err error
}

func (p stubPolicy) Verify(policy.Request) (int64, error) {
	return p.id, p.err
}

func captureLog(t *testing.T) *bytes.Buffer {
	var buf bytes.Buffer
	prev := DefaultLogger
	DefaultLogger = NewLogger()
	DefaultLogger.SetWriter(&buf)
	SetEnabled(true)
	t.Cleanup(func() { DefaultLogger = prev })
	return &buf
}

func TestVerifierLogsAllowedCheck(t *testing.T) {
	buf := captureLog(t)

	verifier := Verifier(nil)
	user := int64(9)

	id, err := verifier(stubPolicy{id: 5}, policy.Request{
		UserID:      &user,
		ObjectClass: "document",
		ObjectID:    42,
		AccessType:  "read",
	})
	if err != nil {
		t.Fatalf("verifier error = %v", err)
	}
	if id != 5 {
		t.Errorf("verifier id = %d, want 5", id)
	}

	output := buf.String()
	if !strings.Contains(output, "user 9 checked read access on document/42: allowed") {
		t.Errorf("expected allowed check in audit output, got %q", output)
	}
	if !strings.Contains(output, "audit.stubPolicy") {
		t.Errorf("expected policy type in audit output, got %q", output)
	}
}

func TestVerifierLogsDeniedCheck(t *testing.T) {
	buf := captureLog(t)

	verifier := Verifier(nil)
	user := int64(9)
	denied := errors.New("forbidden")

	_, err := verifier(stubPolicy{err: denied}, policy.Request{
		UserID:      &user,
		ObjectClass: "document",
		ObjectID:    42,
		AccessType:  "edit",
	})
	if !errors.Is(err, denied) {
		t.Fatalf("verifier error = %v, want %v", err, denied)
	}

	output := buf.String()
	if !strings.Contains(output, "denied") {
		t.Errorf("expected denied check in audit output, got %q", output)
	}
}

func TestVerifierWrapsCustomVerifier(t *testing.T) {
	buf := captureLog(t)

	var called bool
	inner := func(p policy.Policy, req policy.Request) (int64, error) {
		called = true
		return p.Verify(req)
	}

	verifier := Verifier(inner)
	user := int64(7)

	_, err := verifier(stubPolicy{id: 5}, policy.Request{
		UserID:      &user,
		ObjectClass: "document",
		ObjectID:    42,
		AccessType:  "read",
	})
	if err != nil {
		t.Fatalf("verifier error = %v", err)
	}
	if !called {
		t.Error("expected wrapped verifier to be called")
	}
	if buf.Len() == 0 {
		t.Error("expected audit output")
	}
}

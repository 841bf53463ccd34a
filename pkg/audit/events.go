package audit

import "fmt"

func formatUser(userID *int64) string {
	if userID == nil {
		return "anonymous"
	}
	return fmt.Sprintf("user %d", *userID)
}

func formatObject(objectClass string, objectID int64) string {
	return fmt.Sprintf("%s/%d", objectClass, objectID)
}

// CheckEvent represents an access verification audit event
type CheckEvent struct {
	Policy       string
	UserID       *int64
	ObjectClass  string
	ObjectID     int64
	AccessType   string
	Allowed      bool
	ErrorMessage string
}

func (e CheckEvent) MessageID() string {
	return "check"
}

func (e CheckEvent) Message() string {
	object := formatObject(e.ObjectClass, e.ObjectID)
	if e.Allowed {
		return fmt.Sprintf("%s checked %s access on %s: allowed", formatUser(e.UserID), e.AccessType, object)
	}
	return fmt.Sprintf("%s checked %s access on %s: denied", formatUser(e.UserID), e.AccessType, object)
}

func (e CheckEvent) Severity() Severity {
	if e.Allowed {
		return SeverityInfo
	}
	return SeverityWarning
}

func (e CheckEvent) Facility() int {
	return FacilityAuthPriv
}

func (e CheckEvent) StructuredData() map[string]map[string]string {
	result := "success"
	if !e.Allowed {
		result = "failure"
	}
	sd := map[string]map[string]string{
		SDIDAuth: {
			"user": formatUser(e.UserID),
		},
		SDIDSubject: {
			"object": formatObject(e.ObjectClass, e.ObjectID),
			"access": e.AccessType,
		},
		SDIDAction: {
			"operation": "check",
			"result":    result,
		},
	}
	if e.Policy != "" {
		sd[SDIDAction]["policy"] = e.Policy
	}
	return sd
}

// GrantEvent represents a grant audit event
type GrantEvent struct {
	GranteeID    int64
	ObjectClass  string
	ObjectID     int64
	AccessType   string
	Success      bool
	ErrorMessage string
}

func (e GrantEvent) MessageID() string {
	return "grant"
}

func (e GrantEvent) Message() string {
	object := formatObject(e.ObjectClass, e.ObjectID)
	if e.Success {
		return fmt.Sprintf("user %d was granted %s access on %s", e.GranteeID, e.AccessType, object)
	}
	msg := fmt.Sprintf("failed to grant user %d %s access on %s", e.GranteeID, e.AccessType, object)
	if e.ErrorMessage != "" {
		msg += ": " + e.ErrorMessage
	}
	return msg
}

func (e GrantEvent) Severity() Severity {
	if e.Success {
		return SeverityInfo
	}
	return SeverityWarning
}

func (e GrantEvent) Facility() int {
	return FacilityAuthPriv
}

func (e GrantEvent) StructuredData() map[string]map[string]string {
	result := "success"
	if !e.Success {
		result = "failure"
	}
	return map[string]map[string]string{
		SDIDSubject: {
			"grantee": fmt.Sprintf("%d", e.GranteeID),
			"object":  formatObject(e.ObjectClass, e.ObjectID),
			"access":  e.AccessType,
		},
		SDIDAction: {
			"operation": "grant",
			"result":    result,
		},
	}
}

// RevokeEvent represents a revoke audit event
type RevokeEvent struct {
	GranteeID    int64
	ObjectClass  string
	ObjectID     int64
	AccessType   string
	Success      bool
	ErrorMessage string
}

func (e RevokeEvent) MessageID() string {
	return "revoke"
}

func (e RevokeEvent) Message() string {
	object := formatObject(e.ObjectClass, e.ObjectID)
	if e.Success {
		return fmt.Sprintf("user %d's %s access on %s was revoked", e.GranteeID, e.AccessType, object)
	}
	msg := fmt.Sprintf("failed to revoke user %d's %s access on %s", e.GranteeID, e.AccessType, object)
	if e.ErrorMessage != "" {
		msg += ": " + e.ErrorMessage
	}
	return msg
}

func (e RevokeEvent) Severity() Severity {
	if e.Success {
		return SeverityInfo
	}
	return SeverityWarning
}

func (e RevokeEvent) Facility() int {
	return FacilityAuthPriv
}

func (e RevokeEvent) StructuredData() map[string]map[string]string {
	result := "success"
	if !e.Success {
		result = "failure"
	}
	return map[string]map[string]string{
		SDIDSubject: {
			"grantee": fmt.Sprintf("%d", e.GranteeID),
			"object":  formatObject(e.ObjectClass, e.ObjectID),
			"access":  e.AccessType,
		},
		SDIDAction: {
			"operation": "revoke",
			"result":    result,
		},
	}
}

// ObjectEvent represents a protected-object creation audit event
type ObjectEvent struct {
	OwnerID           int64
	ObjectClass       string
	ObjectID          int64
	ProtectedObjectID int64
	Success           bool
	ErrorMessage      string
}

func (e ObjectEvent) MessageID() string {
	return "object"
}

func (e ObjectEvent) Message() string {
	object := formatObject(e.ObjectClass, e.ObjectID)
	if e.Success {
		return fmt.Sprintf("%s was placed under access control with owner %d", object, e.OwnerID)
	}
	msg := fmt.Sprintf("failed to place %s under access control", object)
	if e.ErrorMessage != "" {
		msg += ": " + e.ErrorMessage
	}
	return msg
}

func (e ObjectEvent) Severity() Severity {
	if e.Success {
		return SeverityInfo
	}
	return SeverityWarning
}

func (e ObjectEvent) Facility() int {
	return FacilityAuthPriv
}

func (e ObjectEvent) StructuredData() map[string]map[string]string {
	result := "success"
	if !e.Success {
		result = "failure"
	}
	sd := map[string]map[string]string{
		SDIDSubject: {
			"object": formatObject(e.ObjectClass, e.ObjectID),
			"owner":  fmt.Sprintf("%d", e.OwnerID),
		},
		SDIDAction: {
			"operation": "create-object",
			"result":    result,
		},
	}
	if e.Success {
		sd[SDIDSubject]["id"] = fmt.Sprintf("%d", e.ProtectedObjectID)
	}
	return sd
}

package model

// GrantRule represents one (grantee, access type) permission on a
// protected object. (ProtectedObjectID, GranteeID, AccessType) is unique,
// which makes duplicate grants resolve to no-ops.
type GrantRule struct {
	ID                int64  `gorm:"column:id;primaryKey;autoIncrement"`
	ProtectedObjectID int64  `gorm:"column:protectedObjectId;not null"`
	GranteeID         int64  `gorm:"column:granteeId;not null"`
	AccessType        string `gorm:"column:accessType;not null"`
}

func (GrantRule) TableName() string {
	return "accessControlRules"
}

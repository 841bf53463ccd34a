package model

// Ownership relates a protected object to one of its owners.
// Rows cascade away with the protected object or the owner.
type Ownership struct {
	ProtectedObjectID int64 `gorm:"column:protectedObjectId;not null"`
	OwnerID           int64 `gorm:"column:ownerId;not null"`
}

func (Ownership) TableName() string {
	return "accessControlOwners"
}

package model

// ProtectedObject represents an entity placed under access control.
// The (ObjectClass, ObjectID) pair is unique: at most one protected
// object exists per domain entity.
type ProtectedObject struct {
	ID          int64  `gorm:"column:id;primaryKey;autoIncrement"`
	ObjectClass string `gorm:"column:objectClass;not null"`
	ObjectID    int64  `gorm:"column:objectId;not null"`
}

func (ProtectedObject) TableName() string {
	return "accessControlObjects"
}

package model

// MetadataAttribute is a single schema metadata row. The 'version'
// attribute marks the installed schema revision.
type MetadataAttribute struct {
	Attribute string `gorm:"column:attribute;unique;not null"`
	Value     string `gorm:"column:value;not null"`
}

func (MetadataAttribute) TableName() string {
	return "aclMetadata"
}

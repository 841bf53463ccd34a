package ledger

import (
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"accessctl/pkg/model"
)

// Ensure GormStore implements Store
var _ Store = (*GormStore)(nil)

// GormStore implements Store using GORM for database operations.
type GormStore struct {
	db *gorm.DB
}

// NewGormStore creates a new GormStore.
func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

// Transaction wraps operations in a database transaction.
func (s *GormStore) Transaction(fn func(Store) error) error {
	if s.db == nil {
		return ErrMissingHandle
	}
	return s.db.Transaction(func(tx *gorm.DB) error {
		return fn(&GormStore{db: tx})
	})
}

// CreateProtectedObject registers an entity for access control. The
// object insert, the ownership insert and the owner's read/edit grants
// run in one transaction; any failure rolls the whole sequence back.
func (s *GormStore) CreateProtectedObject(objectClass string, objectID, ownerID int64) (int64, error) {
	if s.db == nil {
		return 0, ErrMissingHandle
	}

	var createdID int64
	err := s.db.Transaction(func(tx *gorm.DB) error {
		object := model.ProtectedObject{ObjectClass: objectClass, ObjectID: objectID}
		if err := tx.Create(&object).Error; err != nil {
			return fmt.Errorf("failed to create protected object: %w", err)
		}

		ownership := model.Ownership{ProtectedObjectID: object.ID, OwnerID: ownerID}
		if err := tx.Create(&ownership).Error; err != nil {
			return fmt.Errorf("failed to record ownership: %w", err)
		}

		for _, accessType := range ownerAccessTypes {
			rule := model.GrantRule{
				ProtectedObjectID: object.ID,
				GranteeID:         ownerID,
				AccessType:        accessType,
			}
			if err := tx.Create(&rule).Error; err != nil {
				return fmt.Errorf("failed to grant owner %s access: %w", accessType, err)
			}
		}

		createdID = object.ID
		return nil
	})
	if err != nil {
		return 0, err
	}
	return createdID, nil
}

// Grant gives a principal an access type on a protected object.
// A duplicate grant resolves via the uniqueness constraint into a no-op.
func (s *GormStore) Grant(objectClass string, objectID, granteeID int64, accessType string) error {
	if s.db == nil {
		return ErrMissingHandle
	}

	protectedObjectID, err := s.resolveObject(objectClass, objectID)
	if err != nil {
		return err
	}

	rule := model.GrantRule{
		ProtectedObjectID: protectedObjectID,
		GranteeID:         granteeID,
		AccessType:        accessType,
	}
	return s.db.Clauses(clause.OnConflict{DoNothing: true}).Create(&rule).Error
}

// Revoke removes a principal's access type on a protected object.
// Deleting an absent rule is a silent no-op.
func (s *GormStore) Revoke(objectClass string, objectID, granteeID int64, accessType string) error {
	if s.db == nil {
		return ErrMissingHandle
	}

	protectedObjectID, err := s.resolveObject(objectClass, objectID)
	if err != nil {
		return err
	}

	return s.db.Where(
		`"protectedObjectId" = ? AND "granteeId" = ? AND "accessType" = ?`,
		protectedObjectID, granteeID, accessType,
	).Delete(&model.GrantRule{}).Error
}

// FindGrant looks up a matching grant rule.
func (s *GormStore) FindGrant(objectClass string, objectID, granteeID int64, accessType string) (int64, bool, error) {
	if s.db == nil {
		return 0, false, ErrMissingHandle
	}

	var row struct {
		ID int64
	}
	result := s.db.Raw(`
		SELECT o."id"
		FROM "accessControlObjects" o
		JOIN "accessControlRules" r ON r."protectedObjectId" = o."id"
		WHERE o."objectClass" = ? AND o."objectId" = ?
			AND r."granteeId" = ? AND r."accessType" = ?
	`, objectClass, objectID, granteeID, accessType).Scan(&row)

	if result.Error != nil {
		return 0, false, result.Error
	}
	if result.RowsAffected == 0 {
		return 0, false, nil
	}
	return row.ID, true, nil
}

// FindOwnership looks up a matching ownership record.
func (s *GormStore) FindOwnership(objectClass string, objectID, ownerID int64) (int64, bool, error) {
	if s.db == nil {
		return 0, false, ErrMissingHandle
	}

	var row struct {
		ID int64
	}
	result := s.db.Raw(`
		SELECT o."id"
		FROM "accessControlObjects" o
		JOIN "accessControlOwners" w ON w."protectedObjectId" = o."id"
		WHERE o."objectClass" = ? AND o."objectId" = ? AND w."ownerId" = ?
	`, objectClass, objectID, ownerID).Scan(&row)

	if result.Error != nil {
		return 0, false, result.Error
	}
	if result.RowsAffected == 0 {
		return 0, false, nil
	}
	return row.ID, true, nil
}

func (s *GormStore) resolveObject(objectClass string, objectID int64) (int64, error) {
	var object model.ProtectedObject
	err := s.db.Where(`"objectClass" = ? AND "objectId" = ?`, objectClass, objectID).
		First(&object).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, ErrObjectNotFound
		}
		return 0, fmt.Errorf("failed to resolve protected object: %w", err)
	}
	return object.ID, nil
}

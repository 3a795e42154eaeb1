package repositories

import (
	"fmt"

	"smartstore/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GORMKeyValueStore is a GORM implementation of KeyValueStore backed by the
// cart_entries table, so carts survive a process restart the way the
// browser's local storage survives a page reload.
type GORMKeyValueStore struct {
	db *gorm.DB
}

// NewGORMKeyValueStore creates a new instance of GORMKeyValueStore.
func NewGORMKeyValueStore(db *gorm.DB) *GORMKeyValueStore {
	return &GORMKeyValueStore{
		db: db,
	}
}

// Get returns the value stored under key, if any.
func (s *GORMKeyValueStore) Get(key string) (string, bool, error) {
	var entry models.CartEntry
	if err := s.db.First(&entry, "key = ?", key).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return "", false, nil
		}
		return "", false, fmt.Errorf("failed to get value for key %s: %w", key, err)
	}
	return entry.Value, true, nil
}

// Set stores value under key, replacing any previous value.
func (s *GORMKeyValueStore) Set(key, value string) error {
	entry := models.CartEntry{Key: key, Value: value}
	err := s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value"}),
	}).Create(&entry).Error
	if err != nil {
		return fmt.Errorf("failed to set value for key %s: %w", key, err)
	}
	return nil
}

// Delete removes the value stored under key; missing keys are not an error.
func (s *GORMKeyValueStore) Delete(key string) error {
	if err := s.db.Delete(&models.CartEntry{}, "key = ?", key).Error; err != nil {
		return fmt.Errorf("failed to delete value for key %s: %w", key, err)
	}
	return nil
}

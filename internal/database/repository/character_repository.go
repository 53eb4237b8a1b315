package repository

import (
	"gorm.io/gorm"

	"github.com/guildhall/backend-go/internal/database/models"
)

// CharacterRepository is the gateway for the character table
type CharacterRepository = Repository[models.Character, int]

// NewCharacterRepository creates a new character repository instance
func NewCharacterRepository(db *gorm.DB) CharacterRepository {
	return NewRepository[models.Character, int](db)
}

// NotDeleted hides soft-deleted characters
func NotDeleted(db *gorm.DB) *gorm.DB {
	return db.Where("is_deleted = ?", false)
}

// CharacterID matches a single character by key
func CharacterID(id int) Scope {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("character_id = ?", id)
	}
}

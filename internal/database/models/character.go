package models

import (
	"strings"
	"time"
)

// CharacterClass is the fixed set of playable classes
type CharacterClass string

const (
	ClassWarrior CharacterClass = "Warrior"
	ClassMage    CharacterClass = "Mage"
	ClassRogue   CharacterClass = "Rogue"
	ClassCleric  CharacterClass = "Cleric"
	ClassRanger  CharacterClass = "Ranger"
)

// CharacterClasses lists every class in declaration order
var CharacterClasses = []CharacterClass{
	ClassWarrior,
	ClassMage,
	ClassRogue,
	ClassCleric,
	ClassRanger,
}

// ParseCharacterClass matches s against the known classes ignoring case.
// The returned class is always the canonical spelling.
func ParseCharacterClass(s string) (CharacterClass, bool) {
	for _, c := range CharacterClasses {
		if strings.EqualFold(s, string(c)) {
			return c, true
		}
	}
	return "", false
}

// CharacterClassNames returns the canonical class names
func CharacterClassNames() []string {
	names := make([]string, 0, len(CharacterClasses))
	for _, c := range CharacterClasses {
		names = append(names, string(c))
	}
	return names
}

// Character mirrors the character table.
// IsAdmin, IsDeleted and CreatedAt never leave the server.
type Character struct {
	ID        int       `gorm:"column:character_id;primaryKey;autoIncrement"`
	Name      string    `gorm:"column:name;not null"`
	Class     string    `gorm:"column:class;not null"`
	Level     int       `gorm:"column:level;not null"`
	Health    int       `gorm:"column:health;not null"`
	Mana      int       `gorm:"column:mana;not null"`
	Gold      int       `gorm:"column:gold;not null"`
	IsAdmin   bool      `gorm:"column:is_admin;not null;default:false" json:"-"`
	IsDeleted bool      `gorm:"column:is_deleted;not null;default:false;index" json:"-"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime:false" json:"-"`
}

// TableName overrides the table name
func (Character) TableName() string {
	return "character"
}

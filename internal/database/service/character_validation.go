package service

import (
	"fmt"
	"regexp"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/guildhall/backend-go/internal/database/models"
	"github.com/guildhall/backend-go/internal/dto"
)

// Limits applied to new characters
const (
	MaxNameLength  = 20
	MinLevel       = 1
	MaxLevel       = 50
	MinGold        = 0
	MaxGold        = 10000
	StartingHealth = 100
	StartingMana   = 100
)

var alphanumeric = regexp.MustCompile(`^[a-zA-Z0-9]+$`)

// ValidateCreateCharacter cleans req and checks it rule by rule, stopping at
// the first failure. On success it returns an unsaved character with server
// defaults; on failure the error is a *ValidationError.
func ValidateCreateCharacter(req dto.CreateCharacterRequest, now time.Time) (*models.Character, error) {
	name := strings.TrimSpace(req.Name)
	class := strings.TrimSpace(req.Class)

	if name == "" {
		return nil, reject("Name is required and cannot be empty.")
	}

	if utf8.RuneCountInString(name) > MaxNameLength {
		return nil, reject(fmt.Sprintf("Name cannot exceed %d characters.", MaxNameLength))
	}

	if !alphanumeric.MatchString(name) {
		return nil, reject("Name can only contain letters and numbers.")
	}

	characterClass, ok := models.ParseCharacterClass(class)
	if !ok {
		return nil, reject(fmt.Sprintf("Invalid class. Must be one of: %s.", strings.Join(models.CharacterClassNames(), ", ")))
	}

	if req.Level < MinLevel || req.Level > MaxLevel {
		return nil, reject(fmt.Sprintf("Level must be between %d and %d.", MinLevel, MaxLevel))
	}

	if req.Gold < MinGold || req.Gold > MaxGold {
		return nil, reject("Gold must be between 0 and 10,000.")
	}

	return &models.Character{
		Name:      name,
		Class:     string(characterClass),
		Level:     req.Level,
		Gold:      req.Gold,
		Health:    StartingHealth,
		Mana:      StartingMana,
		IsAdmin:   false,
		IsDeleted: false,
		CreatedAt: now.UTC(),
	}, nil
}

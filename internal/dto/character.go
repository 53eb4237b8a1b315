package dto

import "github.com/guildhall/backend-go/internal/database/models"

// CharacterDTO is the client-facing character shape
type CharacterDTO struct {
	ID     int    `json:"id"`
	Name   string `json:"name" binding:"required"`
	Class  string `json:"class" binding:"required"`
	Level  int    `json:"level"`
	Health int    `json:"health"`
	Mana   int    `json:"mana"`
	Gold   int    `json:"gold"`
}

// CreateCharacterRequest is the POST body for a new character.
// Kept apart from CharacterDTO so clients cannot choose id, health or mana.
type CreateCharacterRequest struct {
	Name  string `json:"name"`
	Class string `json:"class"`
	Level int    `json:"level"`
	Gold  int    `json:"gold"`
}

// FromCharacter projects a character row to its transfer shape
func FromCharacter(c *models.Character) CharacterDTO {
	return CharacterDTO{
		ID:     c.ID,
		Name:   c.Name,
		Class:  c.Class,
		Level:  c.Level,
		Health: c.Health,
		Mana:   c.Mana,
		Gold:   c.Gold,
	}
}

// FromCharacters projects a slice of character rows
func FromCharacters(characters []models.Character) []CharacterDTO {
	out := make([]CharacterDTO, 0, len(characters))
	for i := range characters {
		out = append(out, FromCharacter(&characters[i]))
	}
	return out
}

package service_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/guildhall/backend-go/internal/database/service"
	"github.com/guildhall/backend-go/internal/dto"
)

func TestValidateCreateCharacter_Rejections(t *testing.T) {
	tests := []struct {
		name       string
		req        dto.CreateCharacterRequest
		wantReason string
	}{
		{
			name:       "empty name",
			req:        dto.CreateCharacterRequest{Name: "", Class: "Mage", Level: 5, Gold: 50},
			wantReason: "Name is required and cannot be empty.",
		},
		{
			name:       "whitespace name",
			req:        dto.CreateCharacterRequest{Name: "   \t ", Class: "Mage", Level: 5, Gold: 50},
			wantReason: "Name is required and cannot be empty.",
		},
		{
			name:       "name too long",
			req:        dto.CreateCharacterRequest{Name: strings.Repeat("a", 21), Class: "Mage", Level: 5, Gold: 50},
			wantReason: "Name cannot exceed 20 characters.",
		},
		{
			name:       "name not alphanumeric",
			req:        dto.CreateCharacterRequest{Name: "Bad!Name", Class: "mage", Level: 5, Gold: 50},
			wantReason: "Name can only contain letters and numbers.",
		},
		{
			name:       "inner space",
			req:        dto.CreateCharacterRequest{Name: "Sir Lance", Class: "Warrior", Level: 5, Gold: 50},
			wantReason: "Name can only contain letters and numbers.",
		},
		{
			name:       "non ascii letter",
			req:        dto.CreateCharacterRequest{Name: "Zoë", Class: "Warrior", Level: 5, Gold: 50},
			wantReason: "Name can only contain letters and numbers.",
		},
		{
			name:       "unknown class",
			req:        dto.CreateCharacterRequest{Name: "Hero", Class: "Bard", Level: 5, Gold: 50},
			wantReason: "Invalid class. Must be one of: Warrior, Mage, Rogue, Cleric, Ranger.",
		},
		{
			name:       "missing class",
			req:        dto.CreateCharacterRequest{Name: "Hero", Level: 5, Gold: 50},
			wantReason: "Invalid class. Must be one of: Warrior, Mage, Rogue, Cleric, Ranger.",
		},
		{
			name:       "level below range",
			req:        dto.CreateCharacterRequest{Name: "Hero", Class: "Rogue", Level: 0, Gold: 50},
			wantReason: "Level must be between 1 and 50.",
		},
		{
			name:       "level above range",
			req:        dto.CreateCharacterRequest{Name: "Hero", Class: "Rogue", Level: 51, Gold: 50},
			wantReason: "Level must be between 1 and 50.",
		},
		{
			name:       "negative gold",
			req:        dto.CreateCharacterRequest{Name: "Hero", Class: "Rogue", Level: 1, Gold: -1},
			wantReason: "Gold must be between 0 and 10,000.",
		},
		{
			name:       "gold above range",
			req:        dto.CreateCharacterRequest{Name: "Hero", Class: "Rogue", Level: 1, Gold: 10001},
			wantReason: "Gold must be between 0 and 10,000.",
		},
		{
			name:       "first failure wins",
			req:        dto.CreateCharacterRequest{Name: "Bad!Name", Class: "Bard", Level: 99, Gold: -5},
			wantReason: "Name can only contain letters and numbers.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			character, err := service.ValidateCreateCharacter(tt.req, fixedNow)

			assert.Nil(t, character)
			var validationErr *service.ValidationError
			require.ErrorAs(t, err, &validationErr)
			assert.Equal(t, tt.wantReason, validationErr.Reason)
		})
	}
}

func TestValidateCreateCharacter_Accepts(t *testing.T) {
	tests := []struct {
		name      string
		req       dto.CreateCharacterRequest
		wantName  string
		wantClass string
	}{
		{
			name:      "trims and canonicalises",
			req:       dto.CreateCharacterRequest{Name: " Mage1 ", Class: " mage ", Level: 5, Gold: 50},
			wantName:  "Mage1",
			wantClass: "Mage",
		},
		{
			name:      "lower bounds",
			req:       dto.CreateCharacterRequest{Name: "Low", Class: "warrior", Level: 1, Gold: 0},
			wantName:  "Low",
			wantClass: "Warrior",
		},
		{
			name:      "upper bounds",
			req:       dto.CreateCharacterRequest{Name: "High", Class: "WARRIOR", Level: 50, Gold: 10000},
			wantName:  "High",
			wantClass: "Warrior",
		},
		{
			name:      "twenty characters after trim",
			req:       dto.CreateCharacterRequest{Name: "  " + strings.Repeat("b", 20) + "  ", Class: "Ranger", Level: 10, Gold: 10},
			wantName:  strings.Repeat("b", 20),
			wantClass: "Ranger",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			character, err := service.ValidateCreateCharacter(tt.req, fixedNow)

			require.NoError(t, err)
			assert.Equal(t, tt.wantName, character.Name)
			assert.Equal(t, tt.wantClass, character.Class)
			assert.Equal(t, tt.req.Level, character.Level)
			assert.Equal(t, tt.req.Gold, character.Gold)
			assert.Equal(t, 100, character.Health)
			assert.Equal(t, 100, character.Mana)
			assert.False(t, character.IsAdmin)
			assert.False(t, character.IsDeleted)
			assert.True(t, fixedNow.Equal(character.CreatedAt))
			assert.Zero(t, character.ID)
		})
	}
}

func TestValidateCreateCharacter_ClassCaseInsensitive(t *testing.T) {
	for _, class := range []string{"warrior", "Warrior", "WARRIOR", "wArRiOr"} {
		t.Run(class, func(t *testing.T) {
			character, err := service.ValidateCreateCharacter(
				dto.CreateCharacterRequest{Name: "Conan", Class: class, Level: 3, Gold: 1},
				fixedNow,
			)
			require.NoError(t, err)
			assert.Equal(t, "Warrior", character.Class)
		})
	}
}

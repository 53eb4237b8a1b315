package handler

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/guildhall/backend-go/internal/database/service"
	"github.com/guildhall/backend-go/internal/dto"
	applog "github.com/guildhall/backend-go/internal/logger"
)

// CharacterHandler handles HTTP requests for character operations
type CharacterHandler struct {
	characterService service.CharacterService
	logger           *slog.Logger
}

// NewCharacterHandler creates a new character handler
func NewCharacterHandler(characterService service.CharacterService, logger *slog.Logger) *CharacterHandler {
	return &CharacterHandler{
		characterService: characterService,
		logger:           logger,
	}
}

// ListCharacters handles GET /api/characters
func (h *CharacterHandler) ListCharacters(c *gin.Context) {
	characters, err := h.characterService.List(c.Request.Context())
	if err != nil {
		h.handleServiceError(c, 0, err)
		return
	}

	c.JSON(http.StatusOK, characters)
}

// GetCharacter handles GET /api/characters/:id
func (h *CharacterHandler) GetCharacter(c *gin.Context) {
	id, err := h.parseCharacterID(c)
	if err != nil {
		return
	}

	character, err := h.characterService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.handleServiceError(c, id, err)
		return
	}

	c.JSON(http.StatusOK, character)
}

// CreateCharacter handles POST /api/characters.
// Every rule is enforced by the service; the handler only decodes the body.
func (h *CharacterHandler) CreateCharacter(c *gin.Context) {
	var req dto.CreateCharacterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.log(c).Warn("⚠️ [CharacterHandler] Invalid create character request", "error", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	character, err := h.characterService.CreateWithValidation(c.Request.Context(), req)
	if err != nil {
		h.handleServiceError(c, 0, err)
		return
	}

	c.Header("Location", fmt.Sprintf("/api/characters/%d", character.ID))
	c.JSON(http.StatusCreated, character)
}

// UpdateCharacter handles PUT /api/characters/:id
func (h *CharacterHandler) UpdateCharacter(c *gin.Context) {
	id, err := h.parseCharacterID(c)
	if err != nil {
		return
	}

	var req dto.CharacterDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		h.log(c).Warn("⚠️ [CharacterHandler] Invalid update character request", "character_id", id, "error", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	character, err := h.characterService.Update(c.Request.Context(), id, req)
	if err != nil {
		h.handleServiceError(c, id, err)
		return
	}

	c.JSON(http.StatusOK, character)
}

// DeleteCharacter handles DELETE /api/characters/:id
func (h *CharacterHandler) DeleteCharacter(c *gin.Context) {
	id, err := h.parseCharacterID(c)
	if err != nil {
		return
	}

	if err := h.characterService.Delete(c.Request.Context(), id); err != nil {
		h.handleServiceError(c, id, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// ==================== Helpers ====================

func (h *CharacterHandler) log(c *gin.Context) *slog.Logger {
	return applog.FromContext(c.Request.Context(), h.logger)
}

func (h *CharacterHandler) parseCharacterID(c *gin.Context) (int, error) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid character ID"})
		return 0, err
	}
	return id, nil
}

func (h *CharacterHandler) handleServiceError(c *gin.Context, id int, err error) {
	var validationErr *service.ValidationError
	switch {
	case errors.As(err, &validationErr):
		c.JSON(http.StatusBadRequest, gin.H{"error": validationErr.Reason})
	case errors.Is(err, service.ErrCharacterNotFound):
		c.JSON(http.StatusNotFound, gin.H{"message": fmt.Sprintf("Character with ID %d not found", id)})
	default:
		h.log(c).Error("❌ [CharacterHandler] Unhandled service error", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}

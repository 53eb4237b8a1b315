package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/guildhall/backend-go/internal/database/repository"
	"github.com/guildhall/backend-go/internal/dto"
	applog "github.com/guildhall/backend-go/internal/logger"
)

// CharacterService defines the interface for character business logic
type CharacterService interface {
	List(ctx context.Context) ([]dto.CharacterDTO, error)
	GetByID(ctx context.Context, id int) (*dto.CharacterDTO, error)
	CreateWithValidation(ctx context.Context, req dto.CreateCharacterRequest) (*dto.CharacterDTO, error)
	Update(ctx context.Context, id int, character dto.CharacterDTO) (*dto.CharacterDTO, error)
	Delete(ctx context.Context, id int) error
}

// Clock returns the current time; injected so tests can pin timestamps
type Clock func() time.Time

type characterService struct {
	characterRepo repository.CharacterRepository
	uow           repository.UnitOfWork
	now           Clock
	logger        *slog.Logger
}

// NewCharacterService creates a new character service instance
func NewCharacterService(
	characterRepo repository.CharacterRepository,
	uow repository.UnitOfWork,
	now Clock,
	logger *slog.Logger,
) CharacterService {
	if now == nil {
		now = time.Now
	}
	return &characterService{
		characterRepo: characterRepo,
		uow:           uow,
		now:           now,
		logger:        logger,
	}
}

// log prefers the request-scoped logger carried by ctx
func (s *characterService) log(ctx context.Context) *slog.Logger {
	return applog.FromContext(ctx, s.logger)
}

func (s *characterService) List(ctx context.Context) ([]dto.CharacterDTO, error) {
	characters, err := s.characterRepo.FindAll(ctx, repository.NotDeleted)
	if err != nil {
		s.log(ctx).Error("❌ [CharacterService] Failed to list characters", "error", err)
		return nil, err
	}
	return dto.FromCharacters(characters), nil
}

func (s *characterService) GetByID(ctx context.Context, id int) (*dto.CharacterDTO, error) {
	character, err := s.characterRepo.FindOne(ctx, repository.CharacterID(id), repository.NotDeleted)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrCharacterNotFound
		}
		s.log(ctx).Error("❌ [CharacterService] Failed to fetch character", "character_id", id, "error", err)
		return nil, err
	}

	result := dto.FromCharacter(character)
	return &result, nil
}

func (s *characterService) CreateWithValidation(ctx context.Context, req dto.CreateCharacterRequest) (*dto.CharacterDTO, error) {
	character, err := ValidateCreateCharacter(req, s.now())
	if err != nil {
		s.log(ctx).Warn("⚠️ [CharacterService] Character rejected", "reason", err.Error())
		return nil, err
	}

	err = s.uow.Do(ctx, func(repos repository.Repositories) error {
		return repos.Characters.Create(ctx, character)
	})
	if err != nil {
		s.log(ctx).Error("❌ [CharacterService] Failed to create character", "error", err)
		return nil, err
	}

	s.log(ctx).Info("✅ [CharacterService] Character created", "character_id", character.ID, "class", character.Class)
	result := dto.FromCharacter(character)
	return &result, nil
}

// Update overwrites every mutable field verbatim; the creation rules are not re-applied.
func (s *characterService) Update(ctx context.Context, id int, in dto.CharacterDTO) (*dto.CharacterDTO, error) {
	var result dto.CharacterDTO

	err := s.uow.Do(ctx, func(repos repository.Repositories) error {
		character, err := repos.Characters.FindByID(ctx, id)
		if err != nil {
			return err
		}

		character.Name = in.Name
		character.Class = in.Class
		character.Level = in.Level
		character.Health = in.Health
		character.Mana = in.Mana
		character.Gold = in.Gold

		if err := repos.Characters.Save(ctx, character); err != nil {
			return err
		}

		result = dto.FromCharacter(character)
		return nil
	})
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrCharacterNotFound
		}
		s.log(ctx).Error("❌ [CharacterService] Failed to update character", "character_id", id, "error", err)
		return nil, err
	}

	s.log(ctx).Info("📝 [CharacterService] Character updated", "character_id", id)
	return &result, nil
}

func (s *characterService) Delete(ctx context.Context, id int) error {
	err := s.uow.Do(ctx, func(repos repository.Repositories) error {
		character, err := repos.Characters.FindByID(ctx, id)
		if err != nil {
			return err
		}
		return repos.Characters.Delete(ctx, character)
	})
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrCharacterNotFound
		}
		s.log(ctx).Error("❌ [CharacterService] Failed to delete character", "character_id", id, "error", err)
		return err
	}

	s.log(ctx).Info("🗑️ [CharacterService] Character deleted", "character_id", id)
	return nil
}

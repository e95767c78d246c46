package service

import (
	"context"
	"fmt"
	"mime/multipart"
	"time"

	"dungeon-master-be/internal/dto"
	"dungeon-master-be/internal/entity"
	"dungeon-master-be/internal/repository/specification"
	"dungeon-master-be/internal/repository/unitofwork"
	"dungeon-master-be/pkg/storage"

	"github.com/google/uuid"
)

type ICharacterService interface {
	Create(ctx context.Context, userId uuid.UUID, req *dto.CreateCharacterRequest) (*dto.CreateCharacterResponse, error)
	Update(ctx context.Context, userId uuid.UUID, req *dto.UpdateCharacterRequest) error
	Delete(ctx context.Context, userId uuid.UUID, id uuid.UUID) error
	GetById(ctx context.Context, userId uuid.UUID, id uuid.UUID) (*dto.CharacterResponse, error)
	List(ctx context.Context, userId uuid.UUID) ([]*dto.CharacterResponse, error)
	UploadAvatar(ctx context.Context, userId uuid.UUID, characterId uuid.UUID, file *multipart.FileHeader) (string, error)
}

type characterService struct {
	uowFactory unitofwork.RepositoryFactory
	store      *storage.LocalStore
}

func NewCharacterService(uowFactory unitofwork.RepositoryFactory, store *storage.LocalStore) ICharacterService {
	return &characterService{
		uowFactory: uowFactory,
		store:      store,
	}
}

func statsFromPayload(p dto.AbilityScoresPayload) entity.AbilityScores {
	return entity.AbilityScores{
		Strength:     p.Strength,
		Dexterity:    p.Dexterity,
		Constitution: p.Constitution,
		Intelligence: p.Intelligence,
		Wisdom:       p.Wisdom,
		Charisma:     p.Charisma,
	}
}

func (s *characterService) Create(ctx context.Context, userId uuid.UUID, req *dto.CreateCharacterRequest) (*dto.CreateCharacterResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	character := &entity.Character{
		Id:         uuid.New(),
		UserId:     userId,
		Name:       req.Name,
		Race:       req.Race,
		Subrace:    req.Subrace,
		Class:      req.Class,
		Level:      req.Level,
		Stats:      statsFromPayload(req.Stats),
		Skills:     req.Skills,
		Background: req.Background,
		CreatedAt:  time.Now(),
		UpdatedAt:  time.Now(),
	}

	// Character and inventory rows land together or not at all
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	if err := uow.CharacterRepository().Create(ctx, character); err != nil {
		return nil, err
	}

	for _, name := range req.Inventory {
		item := &entity.InventoryItem{
			Id:          uuid.New(),
			UserId:      userId,
			CharacterId: character.Id,
			Name:        name,
			CreatedAt:   time.Now(),
		}
		if err := uow.InventoryRepository().Create(ctx, item); err != nil {
			return nil, err
		}
	}

	if err := uow.Commit(); err != nil {
		return nil, err
	}

	return &dto.CreateCharacterResponse{Id: character.Id}, nil
}

func (s *characterService) Update(ctx context.Context, userId uuid.UUID, req *dto.UpdateCharacterRequest) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	character, err := uow.CharacterRepository().FindOne(ctx,
		specification.ByID{ID: req.Id},
		specification.UserOwnedBy{UserID: userId},
	)
	if err != nil {
		return err
	}
	if character == nil {
		return fmt.Errorf("character not found")
	}

	character.Name = req.Name
	character.Race = req.Race
	character.Subrace = req.Subrace
	character.Class = req.Class
	character.Level = req.Level
	character.Stats = statsFromPayload(req.Stats)
	character.Skills = req.Skills
	character.Background = req.Background
	character.UpdatedAt = time.Now()

	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer uow.Rollback()

	if err := uow.CharacterRepository().Update(ctx, character); err != nil {
		return err
	}

	// Inventory is replaced wholesale on every update
	if err := uow.InventoryRepository().DeleteByCharacter(ctx, character.Id); err != nil {
		return err
	}
	for _, name := range req.Inventory {
		item := &entity.InventoryItem{
			Id:          uuid.New(),
			UserId:      userId,
			CharacterId: character.Id,
			Name:        name,
			CreatedAt:   time.Now(),
		}
		if err := uow.InventoryRepository().Create(ctx, item); err != nil {
			return err
		}
	}

	return uow.Commit()
}

// Delete removes the character and its inventory rows. Campaigns and
// stories keep their soft references.
func (s *characterService) Delete(ctx context.Context, userId uuid.UUID, id uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	character, err := uow.CharacterRepository().FindOne(ctx,
		specification.ByID{ID: id},
		specification.UserOwnedBy{UserID: userId},
	)
	if err != nil {
		return err
	}
	if character == nil {
		return fmt.Errorf("character not found")
	}

	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer uow.Rollback()

	if err := uow.InventoryRepository().DeleteByCharacter(ctx, id); err != nil {
		return err
	}
	if err := uow.CharacterRepository().Delete(ctx, id); err != nil {
		return err
	}

	return uow.Commit()
}

func (s *characterService) characterToResponse(ctx context.Context, uow unitofwork.UnitOfWork, c *entity.Character) (*dto.CharacterResponse, error) {
	items, err := uow.InventoryRepository().FindAll(ctx,
		specification.ByCharacterID{CharacterID: c.Id},
	)
	if err != nil {
		return nil, err
	}
	inventory := make([]string, len(items))
	for i, it := range items {
		inventory[i] = it.Name
	}

	avatarURL := ""
	if c.AvatarURL != nil {
		avatarURL = *c.AvatarURL
	}

	return &dto.CharacterResponse{
		Id:         c.Id,
		Name:       c.Name,
		Race:       c.Race,
		Subrace:    c.Subrace,
		Class:      c.Class,
		Level:      c.Level,
		Stats:      c.Stats,
		Skills:     c.Skills,
		Inventory:  inventory,
		Background: c.Background,
		AvatarURL:  avatarURL,
		CreatedAt:  c.CreatedAt,
		UpdatedAt:  c.UpdatedAt,
	}, nil
}

func (s *characterService) GetById(ctx context.Context, userId uuid.UUID, id uuid.UUID) (*dto.CharacterResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	character, err := uow.CharacterRepository().FindOne(ctx,
		specification.ByID{ID: id},
		specification.UserOwnedBy{UserID: userId},
	)
	if err != nil {
		return nil, err
	}
	if character == nil {
		return nil, fmt.Errorf("character not found")
	}

	return s.characterToResponse(ctx, uow, character)
}

func (s *characterService) List(ctx context.Context, userId uuid.UUID) ([]*dto.CharacterResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	characters, err := uow.CharacterRepository().FindAll(ctx,
		specification.UserOwnedBy{UserID: userId},
	)
	if err != nil {
		return nil, err
	}

	res := make([]*dto.CharacterResponse, len(characters))
	for i, c := range characters {
		r, err := s.characterToResponse(ctx, uow, c)
		if err != nil {
			return nil, err
		}
		res[i] = r
	}
	return res, nil
}

func (s *characterService) UploadAvatar(ctx context.Context, userId uuid.UUID, characterId uuid.UUID, file *multipart.FileHeader) (string, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	character, err := uow.CharacterRepository().FindOne(ctx,
		specification.ByID{ID: characterId},
		specification.UserOwnedBy{UserID: userId},
	)
	if err != nil {
		return "", err
	}
	if character == nil {
		return "", fmt.Errorf("character not found")
	}

	publicURL, err := s.store.SaveImage(userId, file)
	if err != nil {
		return "", err
	}

	if err := uow.CharacterRepository().UpdateAvatar(ctx, characterId, publicURL); err != nil {
		return "", err
	}

	return publicURL, nil
}

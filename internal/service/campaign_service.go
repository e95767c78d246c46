package service

import (
	"context"
	"fmt"
	"time"

	"dungeon-master-be/internal/dto"
	"dungeon-master-be/internal/entity"
	"dungeon-master-be/internal/repository/specification"
	"dungeon-master-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

type ICampaignService interface {
	Create(ctx context.Context, userId uuid.UUID, req *dto.CreateCampaignRequest) (*dto.CreateCampaignResponse, error)
	Update(ctx context.Context, userId uuid.UUID, req *dto.UpdateCampaignRequest) error
	Delete(ctx context.Context, userId uuid.UUID, id uuid.UUID) error
	GetById(ctx context.Context, userId uuid.UUID, id uuid.UUID) (*dto.CampaignResponse, error)
	List(ctx context.Context, userId uuid.UUID) ([]*dto.CampaignResponse, error)
}

type campaignService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewCampaignService(uowFactory unitofwork.RepositoryFactory) ICampaignService {
	return &campaignService{
		uowFactory: uowFactory,
	}
}

func locationsFromPayload(payloads []dto.LocationPayload) []entity.Location {
	locations := make([]entity.Location, len(payloads))
	for i, p := range payloads {
		locations[i] = entity.Location{
			Name:        p.Name,
			Type:        p.Type,
			Description: p.Description,
		}
	}
	return locations
}

func npcsFromPayload(payloads []dto.NPCPayload) []entity.NPC {
	npcs := make([]entity.NPC, len(payloads))
	for i, p := range payloads {
		npcs[i] = entity.NPC{
			Name:        p.Name,
			Role:        p.Role,
			Description: p.Description,
		}
	}
	return npcs
}

func campaignToResponse(c *entity.Campaign) *dto.CampaignResponse {
	return &dto.CampaignResponse{
		Id:               c.Id,
		Name:             c.Name,
		Description:      c.Description,
		Setting:          c.Setting,
		WorldDescription: c.WorldDescription,
		Locations:        c.Locations,
		NPCs:             c.NPCs,
		CharacterIds:     c.CharacterIds,
		CreatedAt:        c.CreatedAt,
		UpdatedAt:        c.UpdatedAt,
	}
}

func (s *campaignService) Create(ctx context.Context, userId uuid.UUID, req *dto.CreateCampaignRequest) (*dto.CreateCampaignResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	campaign := &entity.Campaign{
		Id:               uuid.New(),
		UserId:           userId,
		Name:             req.Name,
		Description:      req.Description,
		Setting:          req.Setting,
		WorldDescription: req.WorldDescription,
		Locations:        locationsFromPayload(req.Locations),
		NPCs:             npcsFromPayload(req.NPCs),
		CharacterIds:     req.CharacterIds,
		CreatedAt:        time.Now(),
		UpdatedAt:        time.Now(),
	}

	if err := uow.CampaignRepository().Create(ctx, campaign); err != nil {
		return nil, err
	}

	return &dto.CreateCampaignResponse{Id: campaign.Id}, nil
}

func (s *campaignService) Update(ctx context.Context, userId uuid.UUID, req *dto.UpdateCampaignRequest) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	campaign, err := uow.CampaignRepository().FindOne(ctx,
		specification.ByID{ID: req.Id},
		specification.UserOwnedBy{UserID: userId},
	)
	if err != nil {
		return err
	}
	if campaign == nil {
		return fmt.Errorf("campaign not found")
	}

	campaign.Name = req.Name
	campaign.Description = req.Description
	campaign.Setting = req.Setting
	campaign.WorldDescription = req.WorldDescription
	campaign.Locations = locationsFromPayload(req.Locations)
	campaign.NPCs = npcsFromPayload(req.NPCs)
	campaign.CharacterIds = req.CharacterIds
	campaign.UpdatedAt = time.Now()

	return uow.CampaignRepository().Update(ctx, campaign)
}

// Delete removes the campaign only. Stories keep their soft reference
// and render "unknown" for the missing campaign.
func (s *campaignService) Delete(ctx context.Context, userId uuid.UUID, id uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	campaign, err := uow.CampaignRepository().FindOne(ctx,
		specification.ByID{ID: id},
		specification.UserOwnedBy{UserID: userId},
	)
	if err != nil {
		return err
	}
	if campaign == nil {
		return fmt.Errorf("campaign not found")
	}

	return uow.CampaignRepository().Delete(ctx, id)
}

func (s *campaignService) GetById(ctx context.Context, userId uuid.UUID, id uuid.UUID) (*dto.CampaignResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	campaign, err := uow.CampaignRepository().FindOne(ctx,
		specification.ByID{ID: id},
		specification.UserOwnedBy{UserID: userId},
	)
	if err != nil {
		return nil, err
	}
	if campaign == nil {
		return nil, fmt.Errorf("campaign not found")
	}

	return campaignToResponse(campaign), nil
}

func (s *campaignService) List(ctx context.Context, userId uuid.UUID) ([]*dto.CampaignResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	campaigns, err := uow.CampaignRepository().FindAll(ctx,
		specification.UserOwnedBy{UserID: userId},
		specification.OrderBy{Field: "created_at", Desc: true},
	)
	if err != nil {
		return nil, err
	}

	res := make([]*dto.CampaignResponse, len(campaigns))
	for i, c := range campaigns {
		res[i] = campaignToResponse(c)
	}
	return res, nil
}

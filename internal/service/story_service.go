package service

import (
	"context"
	"fmt"
	"time"

	"dungeon-master-be/internal/dto"
	"dungeon-master-be/internal/entity"
	"dungeon-master-be/internal/repository/specification"
	"dungeon-master-be/internal/repository/unitofwork"
	"dungeon-master-be/pkg/narrator"

	"github.com/google/uuid"
)

type IStoryService interface {
	Create(ctx context.Context, userId uuid.UUID, req *dto.CreateStoryRequest) (*dto.CreateStoryResponse, error)
	Update(ctx context.Context, userId uuid.UUID, req *dto.UpdateStoryRequest) error
	Delete(ctx context.Context, userId uuid.UUID, id uuid.UUID) error
	GetById(ctx context.Context, userId uuid.UUID, id uuid.UUID) (*dto.StoryResponse, error)
	List(ctx context.Context, userId uuid.UUID) ([]*dto.StoryResponse, error)
}

type storyService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewStoryService(uowFactory unitofwork.RepositoryFactory) IStoryService {
	return &storyService{
		uowFactory: uowFactory,
	}
}

func storyToResponse(s *entity.Story) *dto.StoryResponse {
	transcript := s.Transcript
	if transcript == nil {
		transcript = []narrator.Message{}
	}
	return &dto.StoryResponse{
		Id:           s.Id,
		Title:        s.Title,
		CampaignId:   s.CampaignId,
		CharacterIds: s.CharacterIds,
		Content:      s.Content,
		Status:       string(s.Status),
		AiContext:    s.AiContext,
		Transcript:   transcript,
		CreatedAt:    s.CreatedAt,
		UpdatedAt:    s.UpdatedAt,
	}
}

func (s *storyService) Create(ctx context.Context, userId uuid.UUID, req *dto.CreateStoryRequest) (*dto.CreateStoryResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	status := entity.StoryStatus(req.Status)
	if status == "" {
		status = entity.StoryStatusDraft
	}

	story := &entity.Story{
		Id:           uuid.New(),
		UserId:       userId,
		Title:        req.Title,
		CampaignId:   req.CampaignId,
		CharacterIds: req.CharacterIds,
		Content:      req.Content,
		Status:       status,
		AiContext:    req.AiContext,
		Transcript:   []narrator.Message{},
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}

	if err := uow.StoryRepository().Create(ctx, story); err != nil {
		return nil, err
	}

	return &dto.CreateStoryResponse{Id: story.Id}, nil
}

func (s *storyService) Update(ctx context.Context, userId uuid.UUID, req *dto.UpdateStoryRequest) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	story, err := uow.StoryRepository().FindOne(ctx,
		specification.ByID{ID: req.Id},
		specification.UserOwnedBy{UserID: userId},
	)
	if err != nil {
		return err
	}
	if story == nil {
		return fmt.Errorf("story not found")
	}

	story.Title = req.Title
	story.CampaignId = req.CampaignId
	story.CharacterIds = req.CharacterIds
	story.Content = req.Content
	if req.Status != "" {
		story.Status = entity.StoryStatus(req.Status)
	}
	story.AiContext = req.AiContext
	story.UpdatedAt = time.Now()

	return uow.StoryRepository().Update(ctx, story)
}

func (s *storyService) Delete(ctx context.Context, userId uuid.UUID, id uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	story, err := uow.StoryRepository().FindOne(ctx,
		specification.ByID{ID: id},
		specification.UserOwnedBy{UserID: userId},
	)
	if err != nil {
		return err
	}
	if story == nil {
		return fmt.Errorf("story not found")
	}

	return uow.StoryRepository().Delete(ctx, id)
}

func (s *storyService) GetById(ctx context.Context, userId uuid.UUID, id uuid.UUID) (*dto.StoryResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	story, err := uow.StoryRepository().FindOne(ctx,
		specification.ByID{ID: id},
		specification.UserOwnedBy{UserID: userId},
	)
	if err != nil {
		return nil, err
	}
	if story == nil {
		return nil, fmt.Errorf("story not found")
	}

	return storyToResponse(story), nil
}

func (s *storyService) List(ctx context.Context, userId uuid.UUID) ([]*dto.StoryResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	stories, err := uow.StoryRepository().FindAll(ctx,
		specification.UserOwnedBy{UserID: userId},
		specification.OrderBy{Field: "updated_at", Desc: true},
	)
	if err != nil {
		return nil, err
	}

	res := make([]*dto.StoryResponse, len(stories))
	for i, st := range stories {
		res[i] = storyToResponse(st)
	}
	return res, nil
}

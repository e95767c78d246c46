package unitofwork

import (
	"context"

	"dungeon-master-be/internal/repository/contract"
)

type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	UserRepository() contract.UserRepository
	CampaignRepository() contract.CampaignRepository
	CharacterRepository() contract.CharacterRepository
	InventoryRepository() contract.InventoryRepository
	StoryRepository() contract.StoryRepository
}

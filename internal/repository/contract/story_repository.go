package contract

import (
	"context"

	"dungeon-master-be/internal/entity"
	"dungeon-master-be/internal/repository/specification"
	"dungeon-master-be/pkg/narrator"

	"github.com/google/uuid"
)

type StoryRepository interface {
	Create(ctx context.Context, story *entity.Story) error
	Update(ctx context.Context, story *entity.Story) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Story, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Story, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)

	// UpdateTranscript replaces the whole transcript column. Last writer
	// wins, there is no merge.
	UpdateTranscript(ctx context.Context, id uuid.UUID, transcript []narrator.Message) error
}

package contract

import (
	"context"

	"hostelnexus-be/internal/entity"
	"hostelnexus-be/internal/repository/specification"
)

type MessMenuRepository interface {
	Upsert(ctx context.Context, menu *entity.MessMenu) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.MessMenu, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.MessMenu, error)
}

type MessFeedbackRepository interface {
	Create(ctx context.Context, feedback *entity.MessFeedback) error
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.MessFeedback, error)
}

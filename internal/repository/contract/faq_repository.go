package contract

import (
	"context"

	"hostelnexus-be/internal/entity"
	"hostelnexus-be/internal/repository/specification"
)

type FaqRepository interface {
	Create(ctx context.Context, faq *entity.Faq) error
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Faq, error)
	Search(ctx context.Context, query string) ([]*entity.Faq, error)
}

package contract

import (
	"context"

	"hostelnexus-be/internal/entity"
	"hostelnexus-be/internal/repository/specification"

	"github.com/google/uuid"
)

// ComplaintRepository is append-only with respect to creation: every Create
// call inserts one new complaint.
type ComplaintRepository interface {
	Create(ctx context.Context, complaint *entity.Complaint) error
	Update(ctx context.Context, complaint *entity.Complaint) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Complaint, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Complaint, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}

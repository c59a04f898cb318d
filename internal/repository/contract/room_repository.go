package contract

import (
	"context"

	"hostelnexus-be/internal/entity"
	"hostelnexus-be/internal/repository/specification"
)

type RoomRepository interface {
	Create(ctx context.Context, room *entity.Room) error
	Update(ctx context.Context, room *entity.Room) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Room, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Room, error)
}

type RoomChangeRequestRepository interface {
	Create(ctx context.Context, request *entity.RoomChangeRequest) error
	Update(ctx context.Context, request *entity.RoomChangeRequest) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.RoomChangeRequest, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.RoomChangeRequest, error)
}

type MaintenanceRequestRepository interface {
	Create(ctx context.Context, request *entity.MaintenanceRequest) error
	Update(ctx context.Context, request *entity.MaintenanceRequest) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.MaintenanceRequest, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.MaintenanceRequest, error)
}

package implementation

import (
	"context"
	"errors"

	"hostelnexus-be/internal/entity"
	"hostelnexus-be/internal/mapper"
	"hostelnexus-be/internal/model"
	"hostelnexus-be/internal/repository/contract"
	"hostelnexus-be/internal/repository/specification"

	"gorm.io/gorm"
)

type RoomRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.RoomMapper
}

func NewRoomRepository(db *gorm.DB) contract.RoomRepository {
	return &RoomRepositoryImpl{
		db:     db,
		mapper: mapper.NewRoomMapper(),
	}
}

func (r *RoomRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *RoomRepositoryImpl) Create(ctx context.Context, room *entity.Room) error {
	m := r.mapper.ToModel(room)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*room = *r.mapper.ToEntity(m)
	return nil
}

func (r *RoomRepositoryImpl) Update(ctx context.Context, room *entity.Room) error {
	m := r.mapper.ToModel(room)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*room = *r.mapper.ToEntity(m)
	return nil
}

func (r *RoomRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Room, error) {
	var m model.Room
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *RoomRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Room, error) {
	var models []*model.Room
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	entities := make([]*entity.Room, len(models))
	for i, m := range models {
		entities[i] = r.mapper.ToEntity(m)
	}
	return entities, nil
}

type RoomChangeRequestRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.RoomMapper
}

func NewRoomChangeRequestRepository(db *gorm.DB) contract.RoomChangeRequestRepository {
	return &RoomChangeRequestRepositoryImpl{
		db:     db,
		mapper: mapper.NewRoomMapper(),
	}
}

func (r *RoomChangeRequestRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *RoomChangeRequestRepositoryImpl) Create(ctx context.Context, request *entity.RoomChangeRequest) error {
	m := r.mapper.ChangeRequestToModel(request)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*request = *r.mapper.ChangeRequestToEntity(m)
	return nil
}

func (r *RoomChangeRequestRepositoryImpl) Update(ctx context.Context, request *entity.RoomChangeRequest) error {
	m := r.mapper.ChangeRequestToModel(request)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*request = *r.mapper.ChangeRequestToEntity(m)
	return nil
}

func (r *RoomChangeRequestRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.RoomChangeRequest, error) {
	var m model.RoomChangeRequest
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ChangeRequestToEntity(&m), nil
}

func (r *RoomChangeRequestRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.RoomChangeRequest, error) {
	var models []*model.RoomChangeRequest
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ChangeRequestsToEntities(models), nil
}

type MaintenanceRequestRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.RoomMapper
}

func NewMaintenanceRequestRepository(db *gorm.DB) contract.MaintenanceRequestRepository {
	return &MaintenanceRequestRepositoryImpl{
		db:     db,
		mapper: mapper.NewRoomMapper(),
	}
}

func (r *MaintenanceRequestRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *MaintenanceRequestRepositoryImpl) Create(ctx context.Context, request *entity.MaintenanceRequest) error {
	m := r.mapper.MaintenanceToModel(request)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*request = *r.mapper.MaintenanceToEntity(m)
	return nil
}

func (r *MaintenanceRequestRepositoryImpl) Update(ctx context.Context, request *entity.MaintenanceRequest) error {
	m := r.mapper.MaintenanceToModel(request)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*request = *r.mapper.MaintenanceToEntity(m)
	return nil
}

func (r *MaintenanceRequestRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.MaintenanceRequest, error) {
	var m model.MaintenanceRequest
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.MaintenanceToEntity(&m), nil
}

func (r *MaintenanceRequestRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.MaintenanceRequest, error) {
	var models []*model.MaintenanceRequest
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.MaintenanceToEntities(models), nil
}

package implementation

import (
	"context"
	"errors"

	"hostelnexus-be/internal/entity"
	"hostelnexus-be/internal/mapper"
	"hostelnexus-be/internal/model"
	"hostelnexus-be/internal/repository/contract"
	"hostelnexus-be/internal/repository/specification"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ComplaintRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.ComplaintMapper
}

func NewComplaintRepository(db *gorm.DB) contract.ComplaintRepository {
	return &ComplaintRepositoryImpl{
		db:     db,
		mapper: mapper.NewComplaintMapper(),
	}
}

func (r *ComplaintRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *ComplaintRepositoryImpl) Create(ctx context.Context, complaint *entity.Complaint) error {
	m := r.mapper.ToModel(complaint)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*complaint = *r.mapper.ToEntity(m)
	return nil
}

func (r *ComplaintRepositoryImpl) Update(ctx context.Context, complaint *entity.Complaint) error {
	m := r.mapper.ToModel(complaint)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*complaint = *r.mapper.ToEntity(m)
	return nil
}

func (r *ComplaintRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.Complaint{}, id).Error
}

func (r *ComplaintRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Complaint, error) {
	var m model.Complaint
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *ComplaintRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Complaint, error) {
	var models []*model.Complaint
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *ComplaintRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.Complaint{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

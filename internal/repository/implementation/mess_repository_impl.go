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
	"gorm.io/gorm/clause"
)

type MessMenuRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.MessMapper
}

func NewMessMenuRepository(db *gorm.DB) contract.MessMenuRepository {
	return &MessMenuRepositoryImpl{
		db:     db,
		mapper: mapper.NewMessMapper(),
	}
}

func (r *MessMenuRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

// Upsert replaces the menu for a day, keyed by the day name.
func (r *MessMenuRepositoryImpl) Upsert(ctx context.Context, menu *entity.MessMenu) error {
	m := r.mapper.MenuToModel(menu)
	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "day"}},
		DoUpdates: clause.AssignmentColumns([]string{"breakfast", "lunch", "snacks", "dinner", "updated_at"}),
	}).Create(m).Error
	if err != nil {
		return err
	}
	*menu = *r.mapper.MenuToEntity(m)
	return nil
}

func (r *MessMenuRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.MessMenu, error) {
	var m model.MessMenu
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.MenuToEntity(&m), nil
}

func (r *MessMenuRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.MessMenu, error) {
	var models []*model.MessMenu
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.MenusToEntities(models), nil
}

type MessFeedbackRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.MessMapper
}

func NewMessFeedbackRepository(db *gorm.DB) contract.MessFeedbackRepository {
	return &MessFeedbackRepositoryImpl{
		db:     db,
		mapper: mapper.NewMessMapper(),
	}
}

func (r *MessFeedbackRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *MessFeedbackRepositoryImpl) Create(ctx context.Context, feedback *entity.MessFeedback) error {
	m := r.mapper.FeedbackToModel(feedback)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*feedback = *r.mapper.FeedbackToEntity(m)
	return nil
}

func (r *MessFeedbackRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.MessFeedback, error) {
	var models []*model.MessFeedback
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	entities := make([]*entity.MessFeedback, len(models))
	for i, m := range models {
		entities[i] = r.mapper.FeedbackToEntity(m)
	}
	return entities, nil
}

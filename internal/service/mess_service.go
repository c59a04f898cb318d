package service

import (
	"context"
	"time"

	"hostelnexus-be/internal/dto"
	"hostelnexus-be/internal/entity"
	"hostelnexus-be/internal/repository/specification"
	"hostelnexus-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

// weekDays fixes the display order of the weekly menu.
var weekDays = []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"}

type IMessService interface {
	GetWeeklyMenu(ctx context.Context) ([]*dto.MessMenuResponse, error)
	GetMenuForDay(ctx context.Context, day string) (*dto.MessMenuResponse, error)
	UpsertMenu(ctx context.Context, req *dto.UpsertMessMenuRequest) (*dto.MessMenuResponse, error)
	SubmitFeedback(ctx context.Context, studentId uuid.UUID, req *dto.CreateMessFeedbackRequest) (*dto.MessFeedbackResponse, error)
	GetMyFeedback(ctx context.Context, studentId uuid.UUID) ([]*dto.MessFeedbackResponse, error)
}

type messService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewMessService(uowFactory unitofwork.RepositoryFactory) IMessService {
	return &messService{uowFactory: uowFactory}
}

func (s *messService) GetWeeklyMenu(ctx context.Context) ([]*dto.MessMenuResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	menus, err := uow.MessMenuRepository().FindAll(ctx)
	if err != nil {
		return nil, err
	}

	byDay := make(map[string]*entity.MessMenu, len(menus))
	for _, m := range menus {
		byDay[m.Day] = m
	}

	// Return Monday through Sunday, skipping unpublished days
	resp := make([]*dto.MessMenuResponse, 0, len(weekDays))
	for _, day := range weekDays {
		if m, ok := byDay[day]; ok {
			resp = append(resp, toMessMenuResponse(m))
		}
	}
	return resp, nil
}

func (s *messService) GetMenuForDay(ctx context.Context, day string) (*dto.MessMenuResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	menu, err := uow.MessMenuRepository().FindOne(ctx, specification.Filter("day", day))
	if err != nil {
		return nil, err
	}
	if menu == nil {
		return nil, nil
	}
	return toMessMenuResponse(menu), nil
}

func (s *messService) UpsertMenu(ctx context.Context, req *dto.UpsertMessMenuRequest) (*dto.MessMenuResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	menu := &entity.MessMenu{
		Id:        uuid.New(),
		Day:       req.Day,
		Breakfast: req.Breakfast,
		Lunch:     req.Lunch,
		Snacks:    req.Snacks,
		Dinner:    req.Dinner,
		UpdatedAt: time.Now(),
	}

	if err := uow.MessMenuRepository().Upsert(ctx, menu); err != nil {
		return nil, err
	}
	return toMessMenuResponse(menu), nil
}

func (s *messService) SubmitFeedback(ctx context.Context, studentId uuid.UUID, req *dto.CreateMessFeedbackRequest) (*dto.MessFeedbackResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	feedback := &entity.MessFeedback{
		Id:        uuid.New(),
		StudentId: studentId,
		Meal:      req.Meal,
		Rating:    req.Rating,
		Comments:  req.Comments,
		CreatedAt: time.Now(),
	}

	if err := uow.MessFeedbackRepository().Create(ctx, feedback); err != nil {
		return nil, err
	}
	return toMessFeedbackResponse(feedback), nil
}

func (s *messService) GetMyFeedback(ctx context.Context, studentId uuid.UUID) ([]*dto.MessFeedbackResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	feedbacks, err := uow.MessFeedbackRepository().FindAll(ctx,
		specification.ByStudentID{StudentID: studentId},
		specification.OrderBy{Field: "created_at", Desc: true},
	)
	if err != nil {
		return nil, err
	}

	resp := make([]*dto.MessFeedbackResponse, 0, len(feedbacks))
	for _, f := range feedbacks {
		resp = append(resp, toMessFeedbackResponse(f))
	}
	return resp, nil
}

func toMessMenuResponse(m *entity.MessMenu) *dto.MessMenuResponse {
	return &dto.MessMenuResponse{
		Id:        m.Id,
		Day:       m.Day,
		Breakfast: m.Breakfast,
		Lunch:     m.Lunch,
		Snacks:    m.Snacks,
		Dinner:    m.Dinner,
		UpdatedAt: m.UpdatedAt,
	}
}

func toMessFeedbackResponse(f *entity.MessFeedback) *dto.MessFeedbackResponse {
	return &dto.MessFeedbackResponse{
		Id:        f.Id,
		Meal:      f.Meal,
		Rating:    f.Rating,
		Comments:  f.Comments,
		CreatedAt: f.CreatedAt,
	}
}

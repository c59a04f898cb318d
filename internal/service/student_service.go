package service

import (
	"context"
	"errors"
	"time"

	"hostelnexus-be/internal/dto"
	"hostelnexus-be/internal/entity"
	"hostelnexus-be/internal/repository/specification"
	"hostelnexus-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

type IStudentService interface {
	GetProfile(ctx context.Context, studentId uuid.UUID) (*dto.StudentResponse, error)
	UpdateProfile(ctx context.Context, studentId uuid.UUID, req *dto.UpdateProfileRequest) (*dto.StudentResponse, error)
	GetDashboard(ctx context.Context, studentId uuid.UUID) (*dto.DashboardResponse, error)
}

type studentService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewStudentService(uowFactory unitofwork.RepositoryFactory) IStudentService {
	return &studentService{uowFactory: uowFactory}
}

func (s *studentService) GetProfile(ctx context.Context, studentId uuid.UUID) (*dto.StudentResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	student, err := uow.StudentRepository().FindOne(ctx, specification.ByID{ID: studentId})
	if err != nil {
		return nil, err
	}
	if student == nil {
		return nil, errors.New("student not found")
	}
	return toStudentResponse(student), nil
}

func (s *studentService) UpdateProfile(ctx context.Context, studentId uuid.UUID, req *dto.UpdateProfileRequest) (*dto.StudentResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	student, err := uow.StudentRepository().FindOne(ctx, specification.ByID{ID: studentId})
	if err != nil {
		return nil, err
	}
	if student == nil {
		return nil, errors.New("student not found")
	}

	if req.FullName != "" {
		student.FullName = req.FullName
	}
	if req.Phone != "" {
		student.Phone = req.Phone
	}
	if req.MessPreference != "" {
		student.MessPreference = req.MessPreference
	}
	student.UpdatedAt = time.Now()

	if err := uow.StudentRepository().Update(ctx, student); err != nil {
		return nil, err
	}
	return toStudentResponse(student), nil
}

func (s *studentService) GetDashboard(ctx context.Context, studentId uuid.UUID) (*dto.DashboardResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	student, err := uow.StudentRepository().FindOne(ctx, specification.ByID{ID: studentId})
	if err != nil {
		return nil, err
	}
	if student == nil {
		return nil, errors.New("student not found")
	}

	openComplaints, err := uow.ComplaintRepository().Count(ctx,
		specification.ByStudentID{StudentID: studentId},
		specification.ByStatus{Status: entity.ComplaintStatusOpen},
	)
	if err != nil {
		return nil, err
	}

	pendingChanges, err := uow.RoomChangeRequestRepository().FindAll(ctx,
		specification.ByStudentID{StudentID: studentId},
		specification.ByStatus{Status: entity.RoomRequestStatusPending},
	)
	if err != nil {
		return nil, err
	}
	pendingMaintenance, err := uow.MaintenanceRequestRepository().FindAll(ctx,
		specification.ByStudentID{StudentID: studentId},
		specification.ByStatus{Status: entity.RoomRequestStatusPending},
	)
	if err != nil {
		return nil, err
	}

	recent, err := uow.ComplaintRepository().FindAll(ctx,
		specification.ByStudentID{StudentID: studentId},
		specification.OrderBy{Field: "created_at", Desc: true},
		specification.Pagination{Limit: 5},
	)
	if err != nil {
		return nil, err
	}

	recentResponses := make([]dto.ComplaintResponse, 0, len(recent))
	for _, c := range recent {
		recentResponses = append(recentResponses, *toComplaintResponse(c))
	}

	resp := &dto.DashboardResponse{
		Student:          *toStudentResponse(student),
		OpenComplaints:   openComplaints,
		PendingRequests:  int64(len(pendingChanges) + len(pendingMaintenance)),
		RecentComplaints: recentResponses,
	}

	today := time.Now().Weekday().String()
	menu, err := uow.MessMenuRepository().FindOne(ctx, specification.Filter("day", today))
	if err != nil {
		return nil, err
	}
	if menu != nil {
		resp.TodayMenu = toMessMenuResponse(menu)
	}

	return resp, nil
}

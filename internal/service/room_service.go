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

type IRoomService interface {
	GetAllRooms(ctx context.Context) ([]*dto.RoomResponse, error)
	GetMyRoom(ctx context.Context, studentId uuid.UUID) (*dto.RoomResponse, error)
	RequestRoomChange(ctx context.Context, studentId uuid.UUID, req *dto.CreateRoomChangeRequest) (*dto.RoomChangeRequestResponse, error)
	GetRoomChangeRequests(ctx context.Context, studentId uuid.UUID) ([]*dto.RoomChangeRequestResponse, error)
	RequestMaintenance(ctx context.Context, studentId uuid.UUID, req *dto.CreateMaintenanceRequest) (*dto.MaintenanceRequestResponse, error)
	GetMaintenanceRequests(ctx context.Context, studentId uuid.UUID) ([]*dto.MaintenanceRequestResponse, error)
}

type roomService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewRoomService(uowFactory unitofwork.RepositoryFactory) IRoomService {
	return &roomService{uowFactory: uowFactory}
}

func (s *roomService) GetAllRooms(ctx context.Context) ([]*dto.RoomResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	rooms, err := uow.RoomRepository().FindAll(ctx, specification.OrderBy{Field: "number", Desc: false})
	if err != nil {
		return nil, err
	}

	resp := make([]*dto.RoomResponse, 0, len(rooms))
	for _, r := range rooms {
		resp = append(resp, toRoomResponse(r))
	}
	return resp, nil
}

func (s *roomService) GetMyRoom(ctx context.Context, studentId uuid.UUID) (*dto.RoomResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	student, err := uow.StudentRepository().FindOne(ctx, specification.ByID{ID: studentId})
	if err != nil {
		return nil, err
	}
	if student == nil {
		return nil, errors.New("student not found")
	}
	if student.RoomNumber == "" {
		return nil, errors.New("no room assigned")
	}

	room, err := uow.RoomRepository().FindOne(ctx, specification.Filter("number", student.RoomNumber))
	if err != nil {
		return nil, err
	}
	if room == nil {
		return nil, errors.New("assigned room not found")
	}
	return toRoomResponse(room), nil
}

func (s *roomService) RequestRoomChange(ctx context.Context, studentId uuid.UUID, req *dto.CreateRoomChangeRequest) (*dto.RoomChangeRequestResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	student, err := uow.StudentRepository().FindOne(ctx, specification.ByID{ID: studentId})
	if err != nil {
		return nil, err
	}
	if student == nil {
		return nil, errors.New("student not found")
	}

	request := &entity.RoomChangeRequest{
		Id:              uuid.New(),
		StudentId:       studentId,
		CurrentRoom:     student.RoomNumber,
		DesiredRoomType: req.DesiredRoomType,
		Reason:          req.Reason,
		Status:          entity.RoomRequestStatusPending,
		CreatedAt:       time.Now(),
	}

	if err := uow.RoomChangeRequestRepository().Create(ctx, request); err != nil {
		return nil, err
	}
	return toRoomChangeRequestResponse(request), nil
}

func (s *roomService) GetRoomChangeRequests(ctx context.Context, studentId uuid.UUID) ([]*dto.RoomChangeRequestResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	requests, err := uow.RoomChangeRequestRepository().FindAll(ctx,
		specification.ByStudentID{StudentID: studentId},
		specification.OrderBy{Field: "created_at", Desc: true},
	)
	if err != nil {
		return nil, err
	}

	resp := make([]*dto.RoomChangeRequestResponse, 0, len(requests))
	for _, r := range requests {
		resp = append(resp, toRoomChangeRequestResponse(r))
	}
	return resp, nil
}

func (s *roomService) RequestMaintenance(ctx context.Context, studentId uuid.UUID, req *dto.CreateMaintenanceRequest) (*dto.MaintenanceRequestResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	student, err := uow.StudentRepository().FindOne(ctx, specification.ByID{ID: studentId})
	if err != nil {
		return nil, err
	}
	if student == nil {
		return nil, errors.New("student not found")
	}

	request := &entity.MaintenanceRequest{
		Id:          uuid.New(),
		StudentId:   studentId,
		RoomNumber:  student.RoomNumber,
		Description: req.Description,
		Status:      entity.RoomRequestStatusPending,
		CreatedAt:   time.Now(),
	}

	if err := uow.MaintenanceRequestRepository().Create(ctx, request); err != nil {
		return nil, err
	}
	return toMaintenanceRequestResponse(request), nil
}

func (s *roomService) GetMaintenanceRequests(ctx context.Context, studentId uuid.UUID) ([]*dto.MaintenanceRequestResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	requests, err := uow.MaintenanceRequestRepository().FindAll(ctx,
		specification.ByStudentID{StudentID: studentId},
		specification.OrderBy{Field: "created_at", Desc: true},
	)
	if err != nil {
		return nil, err
	}

	resp := make([]*dto.MaintenanceRequestResponse, 0, len(requests))
	for _, r := range requests {
		resp = append(resp, toMaintenanceRequestResponse(r))
	}
	return resp, nil
}

func toRoomResponse(room *entity.Room) *dto.RoomResponse {
	return &dto.RoomResponse{
		Id:        room.Id,
		Number:    room.Number,
		Block:     room.Block,
		Type:      room.Type,
		Condition: room.Condition,
		Amenities: room.Amenities,
		Capacity:  room.Capacity,
	}
}

func toRoomChangeRequestResponse(r *entity.RoomChangeRequest) *dto.RoomChangeRequestResponse {
	return &dto.RoomChangeRequestResponse{
		Id:              r.Id,
		CurrentRoom:     r.CurrentRoom,
		DesiredRoomType: r.DesiredRoomType,
		Reason:          r.Reason,
		Status:          r.Status,
		CreatedAt:       r.CreatedAt,
		UpdatedAt:       r.UpdatedAt,
	}
}

func toMaintenanceRequestResponse(r *entity.MaintenanceRequest) *dto.MaintenanceRequestResponse {
	return &dto.MaintenanceRequestResponse{
		Id:          r.Id,
		RoomNumber:  r.RoomNumber,
		Description: r.Description,
		Status:      r.Status,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
}

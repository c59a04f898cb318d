package service

import (
	"context"
	"errors"
	"time"

	"hostelnexus-be/internal/dto"
	"hostelnexus-be/internal/entity"
	"hostelnexus-be/internal/pkg/logger"
	"hostelnexus-be/internal/repository/specification"
	"hostelnexus-be/internal/repository/unitofwork"
	"hostelnexus-be/pkg/events"

	"github.com/google/uuid"
)

type IComplaintService interface {
	CreateComplaint(ctx context.Context, studentId uuid.UUID, req *dto.CreateComplaintRequest) (*dto.ComplaintResponse, error)
	GetComplaints(ctx context.Context, studentId uuid.UUID) ([]*dto.ComplaintResponse, error)
	GetComplaint(ctx context.Context, studentId uuid.UUID, complaintId uuid.UUID) (*dto.ComplaintResponse, error)
	UpdateStatus(ctx context.Context, complaintId uuid.UUID, req *dto.UpdateComplaintStatusRequest) (*dto.ComplaintResponse, error)
	DeleteComplaint(ctx context.Context, studentId uuid.UUID, complaintId uuid.UUID) error

	// AddComplaint persists an already-built complaint. The chat capture
	// flow submits through this path.
	AddComplaint(ctx context.Context, complaint *entity.Complaint) error
}

type complaintService struct {
	uowFactory         unitofwork.RepositoryFactory
	publisherService   IPublisherService
	submittedTopic     string
	statusChangedTopic string
	logger             logger.ILogger
}

func NewComplaintService(
	uowFactory unitofwork.RepositoryFactory,
	publisherService IPublisherService,
	submittedTopic string,
	statusChangedTopic string,
	log logger.ILogger,
) IComplaintService {
	return &complaintService{
		uowFactory:         uowFactory,
		publisherService:   publisherService,
		submittedTopic:     submittedTopic,
		statusChangedTopic: statusChangedTopic,
		logger:             log,
	}
}

func (s *complaintService) CreateComplaint(ctx context.Context, studentId uuid.UUID, req *dto.CreateComplaintRequest) (*dto.ComplaintResponse, error) {
	category, ok := entity.ParseComplaintCategory(req.Category)
	if !ok {
		return nil, errors.New("invalid complaint category")
	}

	complaint := &entity.Complaint{
		Id:          uuid.New(),
		StudentId:   studentId,
		Title:       req.Title,
		Description: req.Description,
		Category:    category,
		Status:      entity.ComplaintStatusOpen,
		CreatedAt:   time.Now(),
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.ComplaintRepository().Create(ctx, complaint); err != nil {
		return nil, err
	}

	s.publishSubmitted(ctx, complaint, "form")
	return toComplaintResponse(complaint), nil
}

func (s *complaintService) GetComplaints(ctx context.Context, studentId uuid.UUID) ([]*dto.ComplaintResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	complaints, err := uow.ComplaintRepository().FindAll(ctx,
		specification.ByStudentID{StudentID: studentId},
		specification.OrderBy{Field: "created_at", Desc: true},
	)
	if err != nil {
		return nil, err
	}

	resp := make([]*dto.ComplaintResponse, 0, len(complaints))
	for _, c := range complaints {
		resp = append(resp, toComplaintResponse(c))
	}
	return resp, nil
}

func (s *complaintService) GetComplaint(ctx context.Context, studentId uuid.UUID, complaintId uuid.UUID) (*dto.ComplaintResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	complaint, err := uow.ComplaintRepository().FindOne(ctx,
		specification.ByID{ID: complaintId},
		specification.ByStudentID{StudentID: studentId},
	)
	if err != nil {
		return nil, err
	}
	if complaint == nil {
		return nil, errors.New("complaint not found")
	}
	return toComplaintResponse(complaint), nil
}

func (s *complaintService) UpdateStatus(ctx context.Context, complaintId uuid.UUID, req *dto.UpdateComplaintStatusRequest) (*dto.ComplaintResponse, error) {
	if !entity.ValidComplaintStatus(req.Status) {
		return nil, errors.New("invalid complaint status")
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	complaint, err := uow.ComplaintRepository().FindOne(ctx, specification.ByID{ID: complaintId})
	if err != nil {
		return nil, err
	}
	if complaint == nil {
		return nil, errors.New("complaint not found")
	}

	now := time.Now()
	oldStatus := complaint.Status
	complaint.Status = req.Status
	complaint.UpdatedAt = &now

	if err := uow.ComplaintRepository().Update(ctx, complaint); err != nil {
		return nil, err
	}

	if oldStatus != complaint.Status {
		s.publishStatusChanged(ctx, complaint, oldStatus)
	}
	return toComplaintResponse(complaint), nil
}

func (s *complaintService) DeleteComplaint(ctx context.Context, studentId uuid.UUID, complaintId uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	complaint, err := uow.ComplaintRepository().FindOne(ctx,
		specification.ByID{ID: complaintId},
		specification.ByStudentID{StudentID: studentId},
	)
	if err != nil {
		return err
	}
	if complaint == nil {
		return errors.New("complaint not found")
	}

	return uow.ComplaintRepository().Delete(ctx, complaintId)
}

func (s *complaintService) AddComplaint(ctx context.Context, complaint *entity.Complaint) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.ComplaintRepository().Create(ctx, complaint); err != nil {
		return err
	}

	s.publishSubmitted(ctx, complaint, "chat")
	return nil
}

// publishSubmitted notifies the consumer side. A publish failure is logged
// and swallowed: the complaint is already stored and that is what matters.
func (s *complaintService) publishSubmitted(ctx context.Context, complaint *entity.Complaint, source string) {
	evt := &events.ComplaintSubmittedEvent{
		BaseEvent:   events.BaseEvent{OccurredAt: time.Now()},
		ComplaintId: complaint.Id.String(),
		StudentId:   complaint.StudentId.String(),
		Title:       complaint.Title,
		Category:    string(complaint.Category),
		Source:      source,
	}

	if err := s.publisherService.Publish(ctx, s.submittedTopic, evt); err != nil {
		s.logger.Error("complaint", "failed to publish submitted event", map[string]interface{}{
			"complaint_id": complaint.Id.String(),
			"error":        err.Error(),
		})
	}
}

// publishStatusChanged kicks off the status notification email. Same
// failure policy as publishSubmitted.
func (s *complaintService) publishStatusChanged(ctx context.Context, complaint *entity.Complaint, oldStatus string) {
	evt := &events.ComplaintStatusChangedEvent{
		BaseEvent:   events.BaseEvent{OccurredAt: time.Now()},
		ComplaintId: complaint.Id.String(),
		StudentId:   complaint.StudentId.String(),
		Title:       complaint.Title,
		OldStatus:   oldStatus,
		NewStatus:   complaint.Status,
	}

	if err := s.publisherService.Publish(ctx, s.statusChangedTopic, evt); err != nil {
		s.logger.Error("complaint", "failed to publish status changed event", map[string]interface{}{
			"complaint_id": complaint.Id.String(),
			"error":        err.Error(),
		})
	}
}

func toComplaintResponse(c *entity.Complaint) *dto.ComplaintResponse {
	return &dto.ComplaintResponse{
		Id:          c.Id,
		StudentId:   c.StudentId,
		Title:       c.Title,
		Description: c.Description,
		Category:    string(c.Category),
		Status:      c.Status,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}

package unitofwork

import (
	"context"

	"hostelnexus-be/internal/repository/contract"
)

type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	StudentRepository() contract.StudentRepository
	ComplaintRepository() contract.ComplaintRepository
	RoomRepository() contract.RoomRepository
	RoomChangeRequestRepository() contract.RoomChangeRequestRepository
	MaintenanceRequestRepository() contract.MaintenanceRequestRepository
	MessMenuRepository() contract.MessMenuRepository
	MessFeedbackRepository() contract.MessFeedbackRepository
	FaqRepository() contract.FaqRepository

	ChatSessionRepository() contract.ChatSessionRepository
	ChatMessageRepository() contract.ChatMessageRepository
}

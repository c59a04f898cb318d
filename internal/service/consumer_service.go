package service

import (
	"context"
	"encoding/json"
	"log"

	"hostelnexus-be/internal/entity"
	"hostelnexus-be/internal/pkg/mailer"
	"hostelnexus-be/internal/repository/specification"
	"hostelnexus-be/internal/repository/unitofwork"
	"hostelnexus-be/pkg/events"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/google/uuid"
)

type IConsumerService interface {
	Consume(ctx context.Context) error
}

// consumerService delivers complaint notification emails off the request
// path: a receipt on submission and an update on every status change.
type consumerService struct {
	pubSub             *gochannel.GoChannel
	submittedTopic     string
	statusChangedTopic string
	uowFactory         unitofwork.RepositoryFactory
	emailService       mailer.IEmailService
}

func NewConsumerService(
	pubSub *gochannel.GoChannel,
	submittedTopic string,
	statusChangedTopic string,
	uowFactory unitofwork.RepositoryFactory,
	emailService mailer.IEmailService,
) IConsumerService {
	return &consumerService{
		pubSub:             pubSub,
		submittedTopic:     submittedTopic,
		statusChangedTopic: statusChangedTopic,
		uowFactory:         uowFactory,
		emailService:       emailService,
	}
}

func (cs *consumerService) Consume(ctx context.Context) error {
	submitted, err := cs.pubSub.Subscribe(ctx, cs.submittedTopic)
	if err != nil {
		return err
	}
	statusChanged, err := cs.pubSub.Subscribe(ctx, cs.statusChangedTopic)
	if err != nil {
		return err
	}

	go func() {
		for msg := range submitted {
			cs.processSubmitted(ctx, msg)
		}
	}()
	go func() {
		for msg := range statusChanged {
			cs.processStatusChanged(ctx, msg)
		}
	}()

	return nil
}

func (cs *consumerService) processSubmitted(ctx context.Context, msg *message.Message) {
	var payload events.ComplaintSubmittedEvent
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		log.Printf("[ERROR] Failed to unmarshal complaint event: %v", err)
		msg.Ack() // Ack invalid messages to prevent infinite retry
		return
	}

	student, ok := cs.loadStudent(ctx, msg, payload.StudentId, payload.ComplaintId)
	if !ok {
		return
	}

	if err := cs.emailService.SendComplaintReceived(student.Email, student.FullName, payload.Title, payload.Category); err != nil {
		log.Printf("[ERROR] Failed to send complaint receipt for %s: %v", payload.ComplaintId, err)
		msg.Nack()
		return
	}

	log.Printf("[SUCCESS] Complaint receipt sent for %s (source: %s)", payload.ComplaintId, payload.Source)
	msg.Ack()
}

func (cs *consumerService) processStatusChanged(ctx context.Context, msg *message.Message) {
	var payload events.ComplaintStatusChangedEvent
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		log.Printf("[ERROR] Failed to unmarshal status changed event: %v", err)
		msg.Ack()
		return
	}

	student, ok := cs.loadStudent(ctx, msg, payload.StudentId, payload.ComplaintId)
	if !ok {
		return
	}

	if err := cs.emailService.SendComplaintStatusChanged(student.Email, student.FullName, payload.Title, payload.NewStatus); err != nil {
		log.Printf("[ERROR] Failed to send status update for %s: %v", payload.ComplaintId, err)
		msg.Nack()
		return
	}

	log.Printf("[SUCCESS] Status update sent for %s (%s -> %s)", payload.ComplaintId, payload.OldStatus, payload.NewStatus)
	msg.Ack()
}

// loadStudent resolves the event's student, acking or nacking the message
// itself when it cannot.
func (cs *consumerService) loadStudent(ctx context.Context, msg *message.Message, studentIdStr, complaintId string) (*entity.Student, bool) {
	studentId, err := uuid.Parse(studentIdStr)
	if err != nil {
		log.Printf("[ERROR] Invalid student id in complaint event %s: %v", complaintId, err)
		msg.Ack()
		return nil, false
	}

	uow := cs.uowFactory.NewUnitOfWork(ctx)

	student, err := uow.StudentRepository().FindOne(ctx, specification.ByID{ID: studentId})
	if err != nil {
		log.Printf("[ERROR] Failed to load student %s: %v", studentIdStr, err)
		msg.Nack() // Nack for retriable errors
		return nil, false
	}
	if student == nil {
		log.Printf("[WARN] Student %s not found for complaint %s", studentIdStr, complaintId)
		msg.Ack()
		return nil, false
	}
	return student, true
}

package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hostelnexus-be/internal/dto"
	"hostelnexus-be/internal/entity"
	"hostelnexus-be/pkg/events"
)

func newComplaintFixture() (*fakeUow, *fakePublisher, IComplaintService) {
	uow := newFakeUow()
	publisher := &fakePublisher{}
	svc := NewComplaintService(fakeFactory{uow: uow}, publisher,
		events.TopicComplaintSubmitted, events.TopicComplaintStatusChanged, noopLogger{})
	return uow, publisher, svc
}

func TestCreateComplaint(t *testing.T) {
	uow, publisher, svc := newComplaintFixture()
	studentId := uuid.New()

	res, err := svc.CreateComplaint(context.Background(), studentId, &dto.CreateComplaintRequest{
		Title:       "Broken fan",
		Description: "The ceiling fan stopped working",
		Category:    "Room",
	})
	require.NoError(t, err)
	assert.Equal(t, entity.ComplaintStatusOpen, res.Status)
	assert.Equal(t, "Room", res.Category)

	require.Len(t, uow.complaints.complaints, 1)

	require.Len(t, publisher.published, 1)
	assert.Equal(t, events.TopicComplaintSubmitted, publisher.published[0].topic)
	evt, ok := publisher.published[0].event.(*events.ComplaintSubmittedEvent)
	require.True(t, ok)
	assert.Equal(t, events.EventTypeComplaintSubmitted, evt.EventType())
	assert.Equal(t, "form", evt.Source)
	assert.Equal(t, "Broken fan", evt.Title)
	assert.False(t, evt.Timestamp().IsZero())
}

func TestCreateComplaintRejectsUnknownCategory(t *testing.T) {
	uow, _, svc := newComplaintFixture()

	_, err := svc.CreateComplaint(context.Background(), uuid.New(), &dto.CreateComplaintRequest{
		Title:       "Broken fan",
		Description: "The ceiling fan stopped working",
		Category:    "Kitchen",
	})
	assert.Error(t, err)
	assert.Empty(t, uow.complaints.complaints)
}

func TestGetComplaintsScopedToStudent(t *testing.T) {
	_, _, svc := newComplaintFixture()
	ctx := context.Background()

	alice := uuid.New()
	bob := uuid.New()

	_, err := svc.CreateComplaint(ctx, alice, &dto.CreateComplaintRequest{
		Title: "Broken fan", Description: "It stopped", Category: "Room",
	})
	require.NoError(t, err)
	_, err = svc.CreateComplaint(ctx, bob, &dto.CreateComplaintRequest{
		Title: "Cold food", Description: "Lunch was cold", Category: "Mess",
	})
	require.NoError(t, err)

	mine, err := svc.GetComplaints(ctx, alice)
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, "Broken fan", mine[0].Title)

	// Cross-student access is denied
	_, err = svc.GetComplaint(ctx, alice, mine[0].Id)
	require.NoError(t, err)
	_, err = svc.GetComplaint(ctx, bob, mine[0].Id)
	assert.Error(t, err)
}

func TestUpdateComplaintStatus(t *testing.T) {
	_, publisher, svc := newComplaintFixture()
	ctx := context.Background()
	studentId := uuid.New()

	created, err := svc.CreateComplaint(ctx, studentId, &dto.CreateComplaintRequest{
		Title: "Broken fan", Description: "It stopped", Category: "Room",
	})
	require.NoError(t, err)

	updated, err := svc.UpdateStatus(ctx, created.Id, &dto.UpdateComplaintStatusRequest{Status: entity.ComplaintStatusInProgress})
	require.NoError(t, err)
	assert.Equal(t, "In Progress", updated.Status)
	assert.NotNil(t, updated.UpdatedAt)

	// Creation published the submitted event; the transition adds a status
	// changed event for the notification consumer.
	require.Len(t, publisher.published, 2)
	assert.Equal(t, events.TopicComplaintStatusChanged, publisher.published[1].topic)
	evt, ok := publisher.published[1].event.(*events.ComplaintStatusChangedEvent)
	require.True(t, ok)
	assert.Equal(t, events.EventTypeComplaintStatusChanged, evt.EventType())
	assert.Equal(t, created.Id.String(), evt.ComplaintId)
	assert.Equal(t, studentId.String(), evt.StudentId)
	assert.Equal(t, entity.ComplaintStatusOpen, evt.OldStatus)
	assert.Equal(t, entity.ComplaintStatusInProgress, evt.NewStatus)

	// Re-applying the same status is not a transition
	_, err = svc.UpdateStatus(ctx, created.Id, &dto.UpdateComplaintStatusRequest{Status: entity.ComplaintStatusInProgress})
	require.NoError(t, err)
	assert.Len(t, publisher.published, 2)

	_, err = svc.UpdateStatus(ctx, created.Id, &dto.UpdateComplaintStatusRequest{Status: "Closed"})
	assert.Error(t, err)
	assert.Len(t, publisher.published, 2)
}

func TestAddComplaintFromChat(t *testing.T) {
	uow, publisher, svc := newComplaintFixture()

	complaint := &entity.Complaint{
		Id:          uuid.New(),
		StudentId:   uuid.New(),
		Title:       "Leaky faucet",
		Description: "Water drips from the ceiling",
		Category:    entity.CategoryRoom,
		Status:      entity.ComplaintStatusOpen,
	}

	require.NoError(t, svc.AddComplaint(context.Background(), complaint))
	require.Len(t, uow.complaints.complaints, 1)

	require.Len(t, publisher.published, 1)
	assert.Equal(t, events.TopicComplaintSubmitted, publisher.published[0].topic)
	evt, ok := publisher.published[0].event.(*events.ComplaintSubmittedEvent)
	require.True(t, ok)
	assert.Equal(t, "chat", evt.Source)
}

package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hostelnexus-be/internal/constant"
	"hostelnexus-be/internal/dto"
	"hostelnexus-be/internal/repository/memory"
	"hostelnexus-be/pkg/dialog"
	"hostelnexus-be/pkg/events"
)

type chatbotFixture struct {
	uow       *fakeUow
	publisher *fakePublisher
	service   IChatbotService
}

func newChatbotFixture(provider *fakeLLM) *chatbotFixture {
	uow := newFakeUow()
	factory := fakeFactory{uow: uow}
	publisher := &fakePublisher{}

	complaintService := NewComplaintService(factory, publisher,
		events.TopicComplaintSubmitted, events.TopicComplaintStatusChanged, noopLogger{})
	engine := dialog.NewEngine(provider, complaintService, memory.NewDialogRepository(), noopLogger{}, 0)

	return &chatbotFixture{
		uow:       uow,
		publisher: publisher,
		service:   NewChatbotService(factory, engine, noopLogger{}),
	}
}

func TestCreateSessionSeedsWelcomeMessage(t *testing.T) {
	f := newChatbotFixture(&fakeLLM{})
	studentId := uuid.New()
	ctx := context.Background()

	res, err := f.service.CreateSession(ctx, studentId)
	require.NoError(t, err)

	history, err := f.service.GetChatHistory(ctx, studentId, res.Id)
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.Equal(t, constant.WelcomeMessage, history[0].Chat)
	assert.Equal(t, constant.ChatMessageRoleModel, history[0].Role)
}

func TestGetChatHistoryRejectsForeignSession(t *testing.T) {
	f := newChatbotFixture(&fakeLLM{})
	ctx := context.Background()

	owner := uuid.New()
	res, err := f.service.CreateSession(ctx, owner)
	require.NoError(t, err)

	_, err = f.service.GetChatHistory(ctx, uuid.New(), res.Id)
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestSendChatPersistsBothTurnsAndTitle(t *testing.T) {
	f := newChatbotFixture(&fakeLLM{})
	studentId := uuid.New()
	ctx := context.Background()

	created, err := f.service.CreateSession(ctx, studentId)
	require.NoError(t, err)

	res, err := f.service.SendChat(ctx, studentId, &dto.SendChatRequest{
		ChatSessionId: created.Id,
		Chat:          "hello",
	})
	require.NoError(t, err)
	assert.Equal(t, "hello", res.UserChat.Chat)
	assert.Equal(t, constant.GreetingReply, res.BotChat.Chat)
	assert.Nil(t, res.SubmittedComplaintId)

	// welcome + user turn + bot turn, in insertion order
	history, err := f.service.GetChatHistory(ctx, studentId, created.Id)
	require.NoError(t, err)
	require.Len(t, history, 3)
	assert.Equal(t, constant.WelcomeMessage, history[0].Chat)
	assert.Equal(t, "hello", history[1].Chat)
	assert.Equal(t, constant.GreetingReply, history[2].Chat)

	// First user turn becomes the session title
	sessions, err := f.service.GetAllSessions(ctx, studentId)
	require.NoError(t, err)
	require.Len(t, sessions, 1)
	assert.Equal(t, "hello", sessions[0].Title)
}

func TestSendChatComplaintCaptureEndToEnd(t *testing.T) {
	f := newChatbotFixture(&fakeLLM{})
	studentId := uuid.New()
	ctx := context.Background()

	created, err := f.service.CreateSession(ctx, studentId)
	require.NoError(t, err)

	send := func(text string) *dto.SendChatResponse {
		t.Helper()
		res, err := f.service.SendChat(ctx, studentId, &dto.SendChatRequest{
			ChatSessionId: created.Id,
			Chat:          text,
		})
		require.NoError(t, err)
		return res
	}

	res := send("I have a complaint")
	assert.Equal(t, constant.CaptureAskTitleReply, res.BotChat.Chat)
	assert.True(t, res.UserChat.ComplaintFlagged)

	res = send("Leaky faucet")
	assert.Equal(t, constant.CaptureAskCategoryReply, res.BotChat.Chat)

	res = send("Room")
	assert.Equal(t, constant.CaptureAskDescriptionReply, res.BotChat.Chat)

	res = send("Water drips from the ceiling")
	assert.Equal(t, constant.CaptureSubmittedReply, res.BotChat.Chat)
	require.NotNil(t, res.SubmittedComplaintId)

	// Exactly one complaint stored, with the captured fields
	require.Len(t, f.uow.complaints.complaints, 1)
	complaint := f.uow.complaints.complaints[0]
	assert.Equal(t, *res.SubmittedComplaintId, complaint.Id)
	assert.Equal(t, studentId, complaint.StudentId)
	assert.Equal(t, "Leaky faucet", complaint.Title)
	assert.Equal(t, "Water drips from the ceiling", complaint.Description)

	// The submitted event went out on the bus, tagged as chat-sourced
	require.Len(t, f.publisher.published, 1)
	assert.Equal(t, events.TopicComplaintSubmitted, f.publisher.published[0].topic)
	evt, ok := f.publisher.published[0].event.(*events.ComplaintSubmittedEvent)
	require.True(t, ok)
	assert.Equal(t, complaint.Id.String(), evt.ComplaintId)
	assert.Equal(t, "chat", evt.Source)
}

func TestSendChatAnonymousComplaintNotStored(t *testing.T) {
	f := newChatbotFixture(&fakeLLM{})
	ctx := context.Background()

	created, err := f.service.CreateSession(ctx, uuid.Nil)
	require.NoError(t, err)

	send := func(text string) *dto.SendChatResponse {
		t.Helper()
		res, err := f.service.SendChat(ctx, uuid.Nil, &dto.SendChatRequest{
			ChatSessionId: created.Id,
			Chat:          text,
		})
		require.NoError(t, err)
		return res
	}

	send("complaint")
	send("Leaky faucet")
	send("Room")
	res := send("Water everywhere")

	assert.Equal(t, constant.CaptureNotLoggedInReply, res.BotChat.Chat)
	assert.Nil(t, res.SubmittedComplaintId)
	assert.Empty(t, f.uow.complaints.complaints)
	assert.Empty(t, f.publisher.published)
}

func TestDeleteSessionRemovesHistory(t *testing.T) {
	f := newChatbotFixture(&fakeLLM{})
	studentId := uuid.New()
	ctx := context.Background()

	created, err := f.service.CreateSession(ctx, studentId)
	require.NoError(t, err)

	require.NoError(t, f.service.DeleteSession(ctx, studentId, created.Id))

	_, err = f.service.GetChatHistory(ctx, studentId, created.Id)
	assert.ErrorIs(t, err, ErrSessionNotFound)
	assert.Empty(t, f.uow.messages.messages)
}

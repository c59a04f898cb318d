package service

import (
	"context"
	"errors"
	"time"

	"hostelnexus-be/internal/constant"
	"hostelnexus-be/internal/dto"
	"hostelnexus-be/internal/entity"
	"hostelnexus-be/internal/pkg/logger"
	"hostelnexus-be/internal/repository/specification"
	"hostelnexus-be/internal/repository/unitofwork"
	"hostelnexus-be/pkg/dialog"
	"hostelnexus-be/pkg/llm"

	"github.com/google/uuid"
)

var ErrSessionNotFound = errors.New("session not found or access denied")

type IChatbotService interface {
	CreateSession(ctx context.Context, studentId uuid.UUID) (*dto.CreateSessionResponse, error)
	GetAllSessions(ctx context.Context, studentId uuid.UUID) ([]*dto.GetAllSessionsResponse, error)
	GetChatHistory(ctx context.Context, studentId uuid.UUID, sessionId uuid.UUID) ([]*dto.GetChatHistoryResponse, error)
	SendChat(ctx context.Context, studentId uuid.UUID, request *dto.SendChatRequest) (*dto.SendChatResponse, error)
	DeleteSession(ctx context.Context, studentId uuid.UUID, sessionId uuid.UUID) error
}

type chatbotService struct {
	uowFactory unitofwork.RepositoryFactory
	engine     *dialog.Engine
	logger     logger.ILogger
}

func NewChatbotService(
	uowFactory unitofwork.RepositoryFactory,
	engine *dialog.Engine,
	log logger.ILogger,
) IChatbotService {
	return &chatbotService{
		uowFactory: uowFactory,
		engine:     engine,
		logger:     log,
	}
}

// CreateSession opens a conversation and seeds the welcome message.
func (cs *chatbotService) CreateSession(ctx context.Context, studentId uuid.UUID) (*dto.CreateSessionResponse, error) {
	uow := cs.uowFactory.NewUnitOfWork(ctx)
	now := time.Now()

	chatSession := entity.ChatSession{
		Id:        uuid.New(),
		StudentId: studentId,
		Title:     "New conversation",
		CreatedAt: now,
	}

	welcome := entity.ChatMessage{
		Id:            uuid.New(),
		ChatSessionId: chatSession.Id,
		Chat:          constant.WelcomeMessage,
		Role:          constant.ChatMessageRoleModel,
		CreatedAt:     now,
	}

	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	if err := uow.ChatSessionRepository().Create(ctx, &chatSession); err != nil {
		return nil, err
	}
	if err := uow.ChatMessageRepository().Create(ctx, &welcome); err != nil {
		return nil, err
	}

	if err := uow.Commit(); err != nil {
		return nil, err
	}

	return &dto.CreateSessionResponse{Id: chatSession.Id}, nil
}

func (cs *chatbotService) GetAllSessions(ctx context.Context, studentId uuid.UUID) ([]*dto.GetAllSessionsResponse, error) {
	uow := cs.uowFactory.NewUnitOfWork(ctx)

	chatSessions, err := uow.ChatSessionRepository().FindAll(ctx,
		specification.ByStudentID{StudentID: studentId},
		specification.OrderBy{Field: "created_at", Desc: true},
	)
	if err != nil {
		return nil, err
	}

	response := make([]*dto.GetAllSessionsResponse, 0, len(chatSessions))
	for _, s := range chatSessions {
		response = append(response, &dto.GetAllSessionsResponse{
			Id:        s.Id,
			Title:     s.Title,
			CreatedAt: s.CreatedAt,
			UpdatedAt: s.UpdatedAt,
		})
	}

	return response, nil
}

func (cs *chatbotService) GetChatHistory(ctx context.Context, studentId uuid.UUID, sessionId uuid.UUID) ([]*dto.GetChatHistoryResponse, error) {
	uow := cs.uowFactory.NewUnitOfWork(ctx)

	sess, err := cs.verifySession(ctx, uow, studentId, sessionId)
	if err != nil {
		return nil, err
	}

	chatMessages, err := uow.ChatMessageRepository().FindAll(ctx,
		specification.ByChatSessionID{ChatSessionID: sess.Id},
		specification.OrderBy{Field: "created_at", Desc: false},
	)
	if err != nil {
		return nil, err
	}

	resp := make([]*dto.GetChatHistoryResponse, 0, len(chatMessages))
	for _, msg := range chatMessages {
		resp = append(resp, &dto.GetChatHistoryResponse{
			Id:               msg.Id,
			Role:             msg.Role,
			Chat:             msg.Chat,
			ComplaintFlagged: msg.ComplaintFlagged,
			CreatedAt:        msg.CreatedAt,
		})
	}

	return resp, nil
}

// SendChat processes one user turn: the dialogue engine produces the reply,
// then both messages are persisted in a single transaction.
func (cs *chatbotService) SendChat(ctx context.Context, studentId uuid.UUID, request *dto.SendChatRequest) (*dto.SendChatResponse, error) {
	uow := cs.uowFactory.NewUnitOfWork(ctx)

	chatSession, err := cs.verifySession(ctx, uow, studentId, request.ChatSessionId)
	if err != nil {
		return nil, err
	}

	existingMessages, err := uow.ChatMessageRepository().FindAll(ctx,
		specification.ByChatSessionID{ChatSessionID: chatSession.Id},
		specification.OrderBy{Field: "created_at", Desc: false},
	)
	if err != nil {
		return nil, err
	}

	// Only the seeded welcome message so far means this is the first user
	// turn; its text becomes the session title.
	updateSessionTitle := len(existingMessages) == 1

	studentIdStr := ""
	if studentId != uuid.Nil {
		studentIdStr = studentId.String()
	}
	transcript := toTranscript(existingMessages)

	result, err := cs.engine.Handle(ctx, chatSession.Id.String(), studentIdStr, transcript, request.Chat)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	userMessage := entity.ChatMessage{
		Id:               uuid.New(),
		ChatSessionId:    chatSession.Id,
		Chat:             request.Chat,
		Role:             constant.ChatMessageRoleUser,
		ComplaintFlagged: result.ComplaintFlagged,
		CreatedAt:        now,
	}
	botMessage := entity.ChatMessage{
		Id:            uuid.New(),
		ChatSessionId: chatSession.Id,
		Chat:          result.Reply,
		Role:          constant.ChatMessageRoleModel,
		CreatedAt:     now.Add(1 * time.Millisecond),
	}

	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	if err := uow.ChatMessageRepository().Create(ctx, &userMessage); err != nil {
		return nil, err
	}
	if err := uow.ChatMessageRepository().Create(ctx, &botMessage); err != nil {
		return nil, err
	}

	if updateSessionTitle {
		chatSession.Title = truncateTitle(request.Chat, 60)
		chatSession.UpdatedAt = &now
		if err := uow.ChatSessionRepository().Update(ctx, chatSession); err != nil {
			return nil, err
		}
	}

	if err := uow.Commit(); err != nil {
		return nil, err
	}

	response := &dto.SendChatResponse{
		UserChat: &dto.SendChatResponseChat{
			Id:               userMessage.Id,
			Chat:             userMessage.Chat,
			Role:             userMessage.Role,
			ComplaintFlagged: userMessage.ComplaintFlagged,
			CreatedAt:        userMessage.CreatedAt,
		},
		BotChat: &dto.SendChatResponseChat{
			Id:        botMessage.Id,
			Chat:      botMessage.Chat,
			Role:      botMessage.Role,
			CreatedAt: botMessage.CreatedAt,
		},
	}
	if result.Submitted != nil {
		id := result.Submitted.Id
		response.SubmittedComplaintId = &id
	}

	return response, nil
}

func (cs *chatbotService) DeleteSession(ctx context.Context, studentId uuid.UUID, sessionId uuid.UUID) error {
	uow := cs.uowFactory.NewUnitOfWork(ctx)

	chatSession, err := cs.verifySession(ctx, uow, studentId, sessionId)
	if err != nil {
		return err
	}

	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer uow.Rollback()

	if err := uow.ChatMessageRepository().DeleteByChatSessionId(ctx, chatSession.Id); err != nil {
		return err
	}
	if err := uow.ChatSessionRepository().Delete(ctx, chatSession.Id); err != nil {
		return err
	}

	if err := uow.Commit(); err != nil {
		return err
	}

	cs.engine.Forget(chatSession.Id.String())
	return nil
}

func (cs *chatbotService) verifySession(ctx context.Context, uow unitofwork.UnitOfWork, studentId uuid.UUID, sessionId uuid.UUID) (*entity.ChatSession, error) {
	sess, err := uow.ChatSessionRepository().FindOne(ctx,
		specification.ByID{ID: sessionId},
		specification.ByStudentID{StudentID: studentId},
	)
	if err != nil {
		return nil, err
	}
	if sess == nil {
		return nil, ErrSessionNotFound
	}
	return sess, nil
}

// toTranscript converts persisted turns for the generation call. Roles are
// stored in provider format already.
func toTranscript(messages []*entity.ChatMessage) []llm.Message {
	transcript := make([]llm.Message, 0, len(messages))
	for _, msg := range messages {
		transcript = append(transcript, llm.Message{Role: msg.Role, Content: msg.Chat})
	}
	return transcript
}

func truncateTitle(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max-3]) + "..."
}

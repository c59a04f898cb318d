package dialog

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hostelnexus-be/internal/constant"
	"hostelnexus-be/internal/entity"
	"hostelnexus-be/pkg/llm"
)

type fakeSink struct {
	complaints []*entity.Complaint
	err        error
}

func (f *fakeSink) AddComplaint(ctx context.Context, complaint *entity.Complaint) error {
	if f.err != nil {
		return f.err
	}
	f.complaints = append(f.complaints, complaint)
	return nil
}

type fakeLLM struct {
	reply string
	err   error
	calls [][]llm.Message
}

func (f *fakeLLM) Chat(ctx context.Context, history []llm.Message, options ...llm.Option) (string, error) {
	f.calls = append(f.calls, history)
	return f.reply, f.err
}

func (f *fakeLLM) Generate(ctx context.Context, prompt string, options ...llm.Option) (string, error) {
	return f.Chat(ctx, []llm.Message{{Role: constant.ChatMessageRoleUser, Content: prompt}}, options...)
}

type memStore struct {
	mu       sync.Mutex
	sessions map[string]*Session
}

func newMemStore() *memStore {
	return &memStore{sessions: map[string]*Session{}}
}

func (s *memStore) Save(sess *Session) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[sess.ID] = sess
}

func (s *memStore) Get(sessionID string) (*Session, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[sessionID]
	return sess, ok
}

func (s *memStore) Delete(sessionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, sessionID)
}

type noopLogger struct{}

func (noopLogger) Debug(module, message string, details map[string]interface{}) {}
func (noopLogger) Info(module, message string, details map[string]interface{})  {}
func (noopLogger) Warn(module, message string, details map[string]interface{})  {}
func (noopLogger) Error(module, message string, details map[string]interface{}) {}
func (noopLogger) Sync() error                                                  { return nil }

func newTestEngine(sink *fakeSink, provider *fakeLLM) (*Engine, *memStore) {
	store := newMemStore()
	return NewEngine(provider, sink, store, noopLogger{}, 0), store
}

func sessionState(t *testing.T, store *memStore, sessionID string) *Session {
	t.Helper()
	sess, ok := store.Get(sessionID)
	require.True(t, ok)
	return sess
}

func TestEngineCannedReplies(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"I want to book a room", constant.BookRoomReply},
		{"show me the mess menu", constant.MessMenuReply},
		{"how do I pay my fee", constant.PaymentReply},
		{"the wifi is down", constant.WifiReply},
		{"where is the laundry", constant.LaundryReply},
		{"hello", constant.GreetingReply},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			engine, store := newTestEngine(&fakeSink{}, &fakeLLM{})
			sessionID := uuid.NewString()

			result, err := engine.Handle(context.Background(), sessionID, uuid.NewString(), nil, tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, result.Reply)
			assert.Equal(t, StateIdle, sessionState(t, store, sessionID).State)
			assert.False(t, result.ComplaintFlagged)
		})
	}
}

func TestEngineComplaintCaptureHappyPath(t *testing.T) {
	sink := &fakeSink{}
	engine, store := newTestEngine(sink, &fakeLLM{})
	sessionID := uuid.NewString()
	studentID := uuid.NewString()
	ctx := context.Background()

	result, err := engine.Handle(ctx, sessionID, studentID, nil, "I have a complaint")
	require.NoError(t, err)
	assert.Equal(t, constant.CaptureAskTitleReply, result.Reply)
	assert.True(t, result.ComplaintFlagged)
	assert.Equal(t, StateAwaitTitle, sessionState(t, store, sessionID).State)

	result, err = engine.Handle(ctx, sessionID, studentID, nil, "Leaky faucet")
	require.NoError(t, err)
	assert.Equal(t, constant.CaptureAskCategoryReply, result.Reply)
	assert.Equal(t, StateAwaitCategory, sessionState(t, store, sessionID).State)

	result, err = engine.Handle(ctx, sessionID, studentID, nil, "Room")
	require.NoError(t, err)
	assert.Equal(t, constant.CaptureAskDescriptionReply, result.Reply)
	assert.Equal(t, StateAwaitDescription, sessionState(t, store, sessionID).State)

	result, err = engine.Handle(ctx, sessionID, studentID, nil, "Water drips from the ceiling")
	require.NoError(t, err)
	assert.Equal(t, constant.CaptureSubmittedReply, result.Reply)
	assert.Equal(t, StateIdle, sessionState(t, store, sessionID).State)

	require.Len(t, sink.complaints, 1)
	submitted := sink.complaints[0]
	assert.Equal(t, "Leaky faucet", submitted.Title)
	assert.Equal(t, entity.CategoryRoom, submitted.Category)
	assert.Equal(t, "Water drips from the ceiling", submitted.Description)
	assert.Equal(t, entity.ComplaintStatusOpen, submitted.Status)
	assert.Equal(t, studentID, submitted.StudentId.String())
	require.NotNil(t, result.Submitted)
	assert.Equal(t, submitted.Id, result.Submitted.Id)
}

func TestEngineInvalidCategoryDoesNotAdvance(t *testing.T) {
	sink := &fakeSink{}
	engine, store := newTestEngine(sink, &fakeLLM{})
	sessionID := uuid.NewString()
	studentID := uuid.NewString()
	ctx := context.Background()

	_, err := engine.Handle(ctx, sessionID, studentID, nil, "complaint")
	require.NoError(t, err)
	_, err = engine.Handle(ctx, sessionID, studentID, nil, "Leaky faucet")
	require.NoError(t, err)

	// Repeated invalid input never advances the step
	for i := 0; i < 3; i++ {
		result, err := engine.Handle(ctx, sessionID, studentID, nil, "Kitchen")
		require.NoError(t, err)
		assert.Equal(t, constant.CaptureInvalidCategoryReply, result.Reply)
		sess := sessionState(t, store, sessionID)
		assert.Equal(t, StateAwaitCategory, sess.State)
		assert.Empty(t, sess.Draft.Category)
	}

	// Category literals are case-sensitive
	result, err := engine.Handle(ctx, sessionID, studentID, nil, "room")
	require.NoError(t, err)
	assert.Equal(t, constant.CaptureInvalidCategoryReply, result.Reply)
	assert.Equal(t, StateAwaitCategory, sessionState(t, store, sessionID).State)

	assert.Empty(t, sink.complaints)
}

func TestEngineCancelDiscardsDraft(t *testing.T) {
	sink := &fakeSink{}
	engine, store := newTestEngine(sink, &fakeLLM{})
	sessionID := uuid.NewString()
	studentID := uuid.NewString()
	ctx := context.Background()

	_, err := engine.Handle(ctx, sessionID, studentID, nil, "complaint")
	require.NoError(t, err)
	_, err = engine.Handle(ctx, sessionID, studentID, nil, "Broken chair")
	require.NoError(t, err)

	result, err := engine.Handle(ctx, sessionID, studentID, nil, "cancel")
	require.NoError(t, err)
	assert.Equal(t, constant.CaptureCancelledReply, result.Reply)
	assert.Equal(t, StateIdle, sessionState(t, store, sessionID).State)
	assert.Empty(t, sink.complaints)

	// A fresh complaint starts over, not resuming the old draft
	result, err = engine.Handle(ctx, sessionID, studentID, nil, "another complaint")
	require.NoError(t, err)
	assert.Equal(t, constant.CaptureAskTitleReply, result.Reply)
	sess := sessionState(t, store, sessionID)
	assert.Equal(t, StateAwaitTitle, sess.State)
	assert.Empty(t, sess.Draft.Title)
}

func TestEngineConcurrentFirstTurnsShareState(t *testing.T) {
	sink := &fakeSink{}
	engine, store := newTestEngine(sink, &fakeLLM{})
	sessionID := uuid.NewString()
	studentID := uuid.NewString()

	var wg sync.WaitGroup
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := engine.Handle(context.Background(), sessionID, studentID, nil, "I have a complaint")
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	// Serialized turns on one shared session: the first opens capture, the
	// second becomes the draft title. A lost update would leave the session
	// still awaiting a title.
	sess := sessionState(t, store, sessionID)
	assert.Equal(t, StateAwaitCategory, sess.State)
	assert.Equal(t, "I have a complaint", sess.Draft.Title)
	assert.Empty(t, sink.complaints)
}

func TestEngineUnauthenticatedSubmission(t *testing.T) {
	sink := &fakeSink{}
	engine, store := newTestEngine(sink, &fakeLLM{})
	sessionID := uuid.NewString()
	ctx := context.Background()

	_, err := engine.Handle(ctx, sessionID, "", nil, "complaint")
	require.NoError(t, err)
	_, err = engine.Handle(ctx, sessionID, "", nil, "Leaky faucet")
	require.NoError(t, err)
	_, err = engine.Handle(ctx, sessionID, "", nil, "Room")
	require.NoError(t, err)

	result, err := engine.Handle(ctx, sessionID, "", nil, "Water everywhere")
	require.NoError(t, err)
	assert.Equal(t, constant.CaptureNotLoggedInReply, result.Reply)
	assert.Equal(t, StateIdle, sessionState(t, store, sessionID).State)
	assert.Empty(t, sink.complaints)
	assert.Nil(t, result.Submitted)
}

func TestEngineSinkFailure(t *testing.T) {
	sink := &fakeSink{err: errors.New("db down")}
	engine, store := newTestEngine(sink, &fakeLLM{})
	sessionID := uuid.NewString()
	studentID := uuid.NewString()
	ctx := context.Background()

	_, err := engine.Handle(ctx, sessionID, studentID, nil, "complaint")
	require.NoError(t, err)
	_, err = engine.Handle(ctx, sessionID, studentID, nil, "Broken window")
	require.NoError(t, err)
	_, err = engine.Handle(ctx, sessionID, studentID, nil, "Facility")
	require.NoError(t, err)

	result, err := engine.Handle(ctx, sessionID, studentID, nil, "The glass is cracked")
	require.NoError(t, err)
	assert.Equal(t, constant.CaptureSubmitFailedReply, result.Reply)
	assert.Equal(t, StateIdle, sessionState(t, store, sessionID).State)
	assert.Nil(t, result.Submitted)
}

func TestEngineFallbackDelegatesToLLM(t *testing.T) {
	provider := &fakeLLM{reply: "The warden's office is next to block A."}
	engine, _ := newTestEngine(&fakeSink{}, provider)

	transcript := []llm.Message{
		{Role: constant.ChatMessageRoleModel, Content: constant.WelcomeMessage},
	}

	result, err := engine.Handle(context.Background(), uuid.NewString(), uuid.NewString(), transcript, "where is the warden's office?")
	require.NoError(t, err)
	assert.Equal(t, provider.reply, result.Reply)
	assert.Equal(t, IntentFallback, result.Intent)

	// One call: system instruction + transcript + the new user turn
	require.Len(t, provider.calls, 1)
	history := provider.calls[0]
	require.Len(t, history, 3)
	assert.Equal(t, constant.ChatMessageRoleSystem, history[0].Role)
	assert.Equal(t, constant.ChatSystemInstruction, history[0].Content)
	assert.Equal(t, constant.WelcomeMessage, history[1].Content)
	assert.Equal(t, "where is the warden's office?", history[2].Content)
}

func TestEngineLLMFailureDegradesToFallbackReply(t *testing.T) {
	tests := []struct {
		name     string
		provider *fakeLLM
	}{
		{"call errors", &fakeLLM{err: errors.New("network error")}},
		{"empty reply", &fakeLLM{reply: "  "}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			engine, store := newTestEngine(&fakeSink{}, tt.provider)
			sessionID := uuid.NewString()
			studentID := uuid.NewString()

			result, err := engine.Handle(context.Background(), sessionID, studentID, nil, "what is quantum entanglement")
			require.NoError(t, err)
			assert.Equal(t, constant.FallbackReply, result.Reply)
			assert.Equal(t, StateIdle, sessionState(t, store, sessionID).State)

			// Session stays usable after the failure
			next, err := engine.Handle(context.Background(), sessionID, studentID, nil, "hello")
			require.NoError(t, err)
			assert.Equal(t, constant.GreetingReply, next.Reply)
		})
	}
}

func TestEngineEmptyInput(t *testing.T) {
	engine, store := newTestEngine(&fakeSink{}, &fakeLLM{})
	sessionID := uuid.NewString()

	_, err := engine.Handle(context.Background(), sessionID, uuid.NewString(), nil, "   ")
	assert.ErrorIs(t, err, ErrEmptyInput)

	// Rejected before any state exists
	_, ok := store.Get(sessionID)
	assert.False(t, ok)
}

func TestEngineForgetDropsState(t *testing.T) {
	engine, store := newTestEngine(&fakeSink{}, &fakeLLM{})
	sessionID := uuid.NewString()
	studentID := uuid.NewString()
	ctx := context.Background()

	_, err := engine.Handle(ctx, sessionID, studentID, nil, "complaint")
	require.NoError(t, err)
	assert.Equal(t, StateAwaitTitle, sessionState(t, store, sessionID).State)

	engine.Forget(sessionID)
	_, ok := store.Get(sessionID)
	assert.False(t, ok)

	// The next turn starts from idle again
	result, err := engine.Handle(ctx, sessionID, studentID, nil, "hello")
	require.NoError(t, err)
	assert.Equal(t, constant.GreetingReply, result.Reply)
}

func TestEngineReplyDelayCancellation(t *testing.T) {
	engine := NewEngine(&fakeLLM{}, &fakeSink{}, newMemStore(), noopLogger{}, 50*time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := engine.Handle(ctx, uuid.NewString(), uuid.NewString(), nil, "hello")
	assert.ErrorIs(t, err, context.Canceled)
}

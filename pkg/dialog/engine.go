package dialog

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"hostelnexus-be/internal/constant"
	"hostelnexus-be/internal/entity"
	"hostelnexus-be/internal/pkg/logger"
	"hostelnexus-be/pkg/llm"
)

// maxReplyTokens caps generated replies so a rambling model cannot flood
// the chat window.
const maxReplyTokens = 1024

// ErrEmptyInput is returned when the user turn is blank after trimming.
// Callers should suppress the send entirely rather than show an error.
var ErrEmptyInput = errors.New("dialog: empty input")

// SubmissionSink persists a finished complaint. Each call is one new insert;
// the engine never updates or deletes what it hands over.
type SubmissionSink interface {
	AddComplaint(ctx context.Context, complaint *entity.Complaint) error
}

// SessionStore keeps dialogue state between turns. The engine only calls it
// while holding the session lock, so load and save of one session never
// interleave across turns.
type SessionStore interface {
	Save(sess *Session)
	Get(sessionID string) (*Session, bool)
	Delete(sessionID string)
}

// Result is the outcome of one processed user turn.
type Result struct {
	Reply  string
	Intent Intent
	// ComplaintFlagged marks the user turn that opened capture mode.
	ComplaintFlagged bool
	// Submitted is non-nil only when this turn completed a complaint.
	Submitted *entity.Complaint
}

type Engine struct {
	llm        llm.LLMProvider
	sink       SubmissionSink
	store      SessionStore
	logger     logger.ILogger
	replyDelay time.Duration

	// locks serializes turns per session id so rapid sends cannot
	// interleave replies out of order.
	locks sync.Map
}

func NewEngine(provider llm.LLMProvider, sink SubmissionSink, store SessionStore, log logger.ILogger, replyDelay time.Duration) *Engine {
	return &Engine{
		llm:        provider,
		sink:       sink,
		store:      store,
		logger:     log,
		replyDelay: replyDelay,
	}
}

func (e *Engine) lockFor(sessionID string) *sync.Mutex {
	mu, _ := e.locks.LoadOrStore(sessionID, &sync.Mutex{})
	return mu.(*sync.Mutex)
}

// Forget drops the dialogue state and per-session resources. Call it when a
// chat session is deleted.
func (e *Engine) Forget(sessionID string) {
	e.store.Delete(sessionID)
	e.locks.Delete(sessionID)
}

// Handle advances the conversation by one user turn and returns the bot's
// reply. The transcript is the prior conversation in order, used only for the
// delegated generation call. Handle blocks for the configured reply delay
// before returning, unless ctx is cancelled first.
func (e *Engine) Handle(ctx context.Context, sessionID, studentID string, transcript []llm.Message, input string) (*Result, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return nil, ErrEmptyInput
	}

	mu := e.lockFor(sessionID)
	mu.Lock()
	defer mu.Unlock()

	// Load-or-create happens under the same lock as the turn itself, so
	// two overlapping first turns cannot each start from a fresh session
	// and overwrite each other's saved state. Expired state simply means
	// the student starts over from idle.
	sess, found := e.store.Get(sessionID)
	if !found {
		sess = NewSession(sessionID, studentID)
	}

	var result *Result
	if sess.Capturing() {
		result = e.handleCapture(ctx, sess, input)
	} else {
		result = e.handleIdle(ctx, sess, transcript, input)
	}
	e.store.Save(sess)

	if err := e.wait(ctx); err != nil {
		return nil, err
	}
	return result, nil
}

// wait simulates typing latency. The delay is cancellable so a closed
// session never leaves a reply pending.
func (e *Engine) wait(ctx context.Context) error {
	if e.replyDelay <= 0 {
		return nil
	}
	timer := time.NewTimer(e.replyDelay)
	defer timer.Stop()
	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (e *Engine) handleIdle(ctx context.Context, sess *Session, transcript []llm.Message, input string) *Result {
	intent := Classify(input)

	switch intent {
	case IntentComplaint:
		sess.State = StateAwaitTitle
		sess.Draft.reset()
		return &Result{Reply: constant.CaptureAskTitleReply, Intent: intent, ComplaintFlagged: true}
	case IntentBookRoom:
		return &Result{Reply: constant.BookRoomReply, Intent: intent}
	case IntentMessMenu:
		return &Result{Reply: constant.MessMenuReply, Intent: intent}
	case IntentPayment:
		return &Result{Reply: constant.PaymentReply, Intent: intent}
	case IntentWifi:
		return &Result{Reply: constant.WifiReply, Intent: intent}
	case IntentLaundry:
		return &Result{Reply: constant.LaundryReply, Intent: intent}
	case IntentGreeting:
		return &Result{Reply: constant.GreetingReply, Intent: intent}
	default:
		return &Result{Reply: e.generate(ctx, sess, transcript, input), Intent: IntentFallback}
	}
}

func (e *Engine) handleCapture(ctx context.Context, sess *Session, input string) *Result {
	if strings.EqualFold(input, constant.CaptureCancelKeyword) {
		sess.State = StateIdle
		sess.Draft.reset()
		return &Result{Reply: constant.CaptureCancelledReply, Intent: IntentComplaint}
	}

	switch sess.State {
	case StateAwaitTitle:
		sess.Draft.Title = input
		sess.State = StateAwaitCategory
		return &Result{Reply: constant.CaptureAskCategoryReply, Intent: IntentComplaint}

	case StateAwaitCategory:
		category, ok := entity.ParseComplaintCategory(input)
		if !ok {
			// Stay on the same step until the input is valid.
			return &Result{Reply: constant.CaptureInvalidCategoryReply, Intent: IntentComplaint}
		}
		sess.Draft.Category = category
		sess.State = StateAwaitDescription
		return &Result{Reply: constant.CaptureAskDescriptionReply, Intent: IntentComplaint}

	case StateAwaitDescription:
		sess.Draft.Description = input
		return e.submit(ctx, sess)

	default:
		// Unreachable unless the session state was corrupted externally.
		sess.State = StateIdle
		sess.Draft.reset()
		return &Result{Reply: constant.FallbackReply, Intent: IntentFallback}
	}
}

// submit finalizes the draft. The session always returns to idle with the
// draft discarded, whether or not the submission succeeded.
func (e *Engine) submit(ctx context.Context, sess *Session) *Result {
	draft := sess.Draft
	sess.State = StateIdle
	sess.Draft.reset()

	studentID, err := uuid.Parse(sess.StudentID)
	if err != nil {
		e.logger.Warn("dialog", "complaint capture without an authenticated student", map[string]interface{}{
			"session_id": sess.ID,
		})
		return &Result{Reply: constant.CaptureNotLoggedInReply, Intent: IntentComplaint}
	}

	complaint := &entity.Complaint{
		Id:          uuid.New(),
		StudentId:   studentID,
		Title:       draft.Title,
		Description: draft.Description,
		Category:    draft.Category,
		Status:      entity.ComplaintStatusOpen,
		CreatedAt:   time.Now(),
	}

	if err := e.sink.AddComplaint(ctx, complaint); err != nil {
		e.logger.Error("dialog", "failed to submit captured complaint", map[string]interface{}{
			"session_id": sess.ID,
			"error":      err.Error(),
		})
		return &Result{Reply: constant.CaptureSubmitFailedReply, Intent: IntentComplaint}
	}

	e.logger.Info("dialog", "complaint submitted from chat", map[string]interface{}{
		"session_id":   sess.ID,
		"complaint_id": complaint.Id.String(),
		"category":     string(complaint.Category),
	})
	return &Result{Reply: constant.CaptureSubmittedReply, Intent: IntentComplaint, Submitted: complaint}
}

// generate delegates to the text-generation service. Single attempt, no
// retry; any failure degrades to the local fallback reply.
func (e *Engine) generate(ctx context.Context, sess *Session, transcript []llm.Message, input string) string {
	history := make([]llm.Message, 0, len(transcript)+2)
	history = append(history, llm.Message{Role: constant.ChatMessageRoleSystem, Content: constant.ChatSystemInstruction})
	history = append(history, transcript...)
	history = append(history, llm.Message{Role: constant.ChatMessageRoleUser, Content: input})

	reply, err := e.llm.Chat(ctx, history, llm.WithMaxTokens(maxReplyTokens))
	if err != nil {
		e.logger.Error("dialog", "generation service call failed", map[string]interface{}{
			"session_id": sess.ID,
			"error":      err.Error(),
		})
		return constant.FallbackReply
	}
	if strings.TrimSpace(reply) == "" {
		e.logger.Warn("dialog", "generation service returned empty text", map[string]interface{}{
			"session_id": sess.ID,
		})
		return constant.FallbackReply
	}
	return reply
}

package dialog

import "hostelnexus-be/internal/entity"

// State identifies where a conversation sits in the complaint-capture flow.
type State int

const (
	// StateIdle is normal Q&A mode.
	StateIdle State = iota
	// StateAwaitTitle means the next user turn becomes the draft title.
	StateAwaitTitle
	// StateAwaitCategory means the next user turn must be a valid category.
	StateAwaitCategory
	// StateAwaitDescription means the next user turn becomes the description.
	StateAwaitDescription
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateAwaitTitle:
		return "await_title"
	case StateAwaitCategory:
		return "await_category"
	case StateAwaitDescription:
		return "await_description"
	default:
		return "unknown"
	}
}

// Draft accumulates complaint fields across capture turns. It only lives
// while capture mode is active and is reset on submission, cancellation, or
// failure.
type Draft struct {
	Title       string
	Category    entity.ComplaintCategory
	Description string
}

func (d *Draft) reset() {
	*d = Draft{}
}

// Session is the per-conversation dialogue state. One Session belongs to
// exactly one chat session; nothing is shared across conversations.
type Session struct {
	ID        string
	StudentID string
	State     State
	Draft     Draft
}

// NewSession returns an idle session. StudentID may be empty for an
// unauthenticated visitor; submission checks it at the final step only.
func NewSession(id, studentID string) *Session {
	return &Session{
		ID:        id,
		StudentID: studentID,
		State:     StateIdle,
	}
}

// Capturing reports whether the session is in complaint-capture mode.
func (s *Session) Capturing() bool {
	return s.State != StateIdle
}

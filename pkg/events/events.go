package events

import "time"

// Topic names for the in-process complaint bus. These are the config
// defaults; deployments can override them per environment.
const (
	TopicComplaintSubmitted     = "complaint.submitted"
	TopicComplaintStatusChanged = "complaint.status_changed"
)

// Event type codes, carried in message metadata so consumers can tell
// payloads apart without unmarshalling.
const (
	EventTypeComplaintSubmitted     = "COMPLAINT_SUBMITTED"
	EventTypeComplaintStatusChanged = "COMPLAINT_STATUS_CHANGED"
)

// Event is implemented by every payload that goes over the bus.
type Event interface {
	EventType() string
	Timestamp() time.Time
}

// BaseEvent carries the fields shared by all events.
type BaseEvent struct {
	OccurredAt time.Time `json:"occurred_at"`
}

func (e BaseEvent) Timestamp() time.Time {
	return e.OccurredAt
}

// ComplaintSubmittedEvent is published whenever a complaint is created,
// whether through the form endpoint or the chat capture flow.
type ComplaintSubmittedEvent struct {
	BaseEvent
	ComplaintId string `json:"complaint_id"`
	StudentId   string `json:"student_id"`
	Title       string `json:"title"`
	Category    string `json:"category"`
	Source      string `json:"source"` // "form" or "chat"
}

func (ComplaintSubmittedEvent) EventType() string {
	return EventTypeComplaintSubmitted
}

// ComplaintStatusChangedEvent is published when a complaint moves between
// statuses.
type ComplaintStatusChangedEvent struct {
	BaseEvent
	ComplaintId string `json:"complaint_id"`
	StudentId   string `json:"student_id"`
	Title       string `json:"title"`
	OldStatus   string `json:"old_status"`
	NewStatus   string `json:"new_status"`
}

func (ComplaintStatusChangedEvent) EventType() string {
	return EventTypeComplaintStatusChanged
}

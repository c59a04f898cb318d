package service

import (
	"context"

	"github.com/google/uuid"

	"hostelnexus-be/internal/entity"
	"hostelnexus-be/internal/repository/contract"
	"hostelnexus-be/internal/repository/specification"
	"hostelnexus-be/internal/repository/unitofwork"
	"hostelnexus-be/pkg/events"
	"hostelnexus-be/pkg/llm"
)

// In-memory repository fakes. Only the specifications the services actually
// use are interpreted.

type noopLogger struct{}

func (noopLogger) Debug(module, message string, details map[string]interface{}) {}
func (noopLogger) Info(module, message string, details map[string]interface{})  {}
func (noopLogger) Warn(module, message string, details map[string]interface{})  {}
func (noopLogger) Error(module, message string, details map[string]interface{}) {}
func (noopLogger) Sync() error                                                  { return nil }

type publishedEvent struct {
	topic string
	event events.Event
}

type fakePublisher struct {
	published []publishedEvent
}

func (f *fakePublisher) Publish(ctx context.Context, topic string, event events.Event) error {
	f.published = append(f.published, publishedEvent{topic: topic, event: event})
	return nil
}

type fakeLLM struct {
	reply string
	err   error
}

func (f *fakeLLM) Chat(ctx context.Context, history []llm.Message, options ...llm.Option) (string, error) {
	return f.reply, f.err
}

func (f *fakeLLM) Generate(ctx context.Context, prompt string, options ...llm.Option) (string, error) {
	return f.reply, f.err
}

type fakeStudentRepo struct {
	students []*entity.Student
}

func (r *fakeStudentRepo) Create(ctx context.Context, student *entity.Student) error {
	r.students = append(r.students, student)
	return nil
}

func (r *fakeStudentRepo) Update(ctx context.Context, student *entity.Student) error {
	for i, s := range r.students {
		if s.Id == student.Id {
			r.students[i] = student
		}
	}
	return nil
}

func (r *fakeStudentRepo) Delete(ctx context.Context, id uuid.UUID) error {
	kept := r.students[:0]
	for _, s := range r.students {
		if s.Id != id {
			kept = append(kept, s)
		}
	}
	r.students = kept
	return nil
}

func (r *fakeStudentRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Student, error) {
	for _, s := range r.students {
		if matchStudent(s, specs) {
			return s, nil
		}
	}
	return nil, nil
}

func (r *fakeStudentRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Student, error) {
	var out []*entity.Student
	for _, s := range r.students {
		if matchStudent(s, specs) {
			out = append(out, s)
		}
	}
	return out, nil
}

func (r *fakeStudentRepo) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	all, _ := r.FindAll(ctx, specs...)
	return int64(len(all)), nil
}

func matchStudent(s *entity.Student, specs []specification.Specification) bool {
	for _, spec := range specs {
		switch sp := spec.(type) {
		case specification.ByID:
			if s.Id != sp.ID {
				return false
			}
		case specification.ByEmail:
			if s.Email != sp.Email {
				return false
			}
		}
	}
	return true
}

type fakeComplaintRepo struct {
	complaints []*entity.Complaint
}

func (r *fakeComplaintRepo) Create(ctx context.Context, complaint *entity.Complaint) error {
	r.complaints = append(r.complaints, complaint)
	return nil
}

func (r *fakeComplaintRepo) Update(ctx context.Context, complaint *entity.Complaint) error {
	for i, c := range r.complaints {
		if c.Id == complaint.Id {
			r.complaints[i] = complaint
		}
	}
	return nil
}

func (r *fakeComplaintRepo) Delete(ctx context.Context, id uuid.UUID) error {
	kept := r.complaints[:0]
	for _, c := range r.complaints {
		if c.Id != id {
			kept = append(kept, c)
		}
	}
	r.complaints = kept
	return nil
}

func (r *fakeComplaintRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Complaint, error) {
	for _, c := range r.complaints {
		if matchComplaint(c, specs) {
			return c, nil
		}
	}
	return nil, nil
}

func (r *fakeComplaintRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Complaint, error) {
	var out []*entity.Complaint
	for _, c := range r.complaints {
		if matchComplaint(c, specs) {
			out = append(out, c)
		}
	}
	return out, nil
}

func (r *fakeComplaintRepo) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	all, _ := r.FindAll(ctx, specs...)
	return int64(len(all)), nil
}

func matchComplaint(c *entity.Complaint, specs []specification.Specification) bool {
	for _, spec := range specs {
		switch sp := spec.(type) {
		case specification.ByID:
			if c.Id != sp.ID {
				return false
			}
		case specification.ByStudentID:
			if c.StudentId != sp.StudentID {
				return false
			}
		case specification.ByStatus:
			if c.Status != sp.Status {
				return false
			}
		}
	}
	return true
}

type fakeChatSessionRepo struct {
	sessions []*entity.ChatSession
}

func (r *fakeChatSessionRepo) Create(ctx context.Context, session *entity.ChatSession) error {
	r.sessions = append(r.sessions, session)
	return nil
}

func (r *fakeChatSessionRepo) Update(ctx context.Context, session *entity.ChatSession) error {
	for i, s := range r.sessions {
		if s.Id == session.Id {
			r.sessions[i] = session
		}
	}
	return nil
}

func (r *fakeChatSessionRepo) Delete(ctx context.Context, id uuid.UUID) error {
	kept := r.sessions[:0]
	for _, s := range r.sessions {
		if s.Id != id {
			kept = append(kept, s)
		}
	}
	r.sessions = kept
	return nil
}

func (r *fakeChatSessionRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.ChatSession, error) {
	for _, s := range r.sessions {
		if matchChatSession(s, specs) {
			return s, nil
		}
	}
	return nil, nil
}

func (r *fakeChatSessionRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.ChatSession, error) {
	var out []*entity.ChatSession
	for _, s := range r.sessions {
		if matchChatSession(s, specs) {
			out = append(out, s)
		}
	}
	return out, nil
}

func matchChatSession(s *entity.ChatSession, specs []specification.Specification) bool {
	for _, spec := range specs {
		switch sp := spec.(type) {
		case specification.ByID:
			if s.Id != sp.ID {
				return false
			}
		case specification.ByStudentID:
			if s.StudentId != sp.StudentID {
				return false
			}
		}
	}
	return true
}

type fakeChatMessageRepo struct {
	messages []*entity.ChatMessage
}

func (r *fakeChatMessageRepo) Create(ctx context.Context, message *entity.ChatMessage) error {
	r.messages = append(r.messages, message)
	return nil
}

func (r *fakeChatMessageRepo) DeleteByChatSessionId(ctx context.Context, sessionId uuid.UUID) error {
	kept := r.messages[:0]
	for _, m := range r.messages {
		if m.ChatSessionId != sessionId {
			kept = append(kept, m)
		}
	}
	r.messages = kept
	return nil
}

func (r *fakeChatMessageRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.ChatMessage, error) {
	var out []*entity.ChatMessage
	for _, m := range r.messages {
		if matchChatMessage(m, specs) {
			out = append(out, m)
		}
	}
	return out, nil
}

func (r *fakeChatMessageRepo) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	all, _ := r.FindAll(ctx, specs...)
	return int64(len(all)), nil
}

func matchChatMessage(m *entity.ChatMessage, specs []specification.Specification) bool {
	for _, spec := range specs {
		if sp, ok := spec.(specification.ByChatSessionID); ok {
			if m.ChatSessionId != sp.ChatSessionID {
				return false
			}
		}
	}
	return true
}

type fakeUow struct {
	students   *fakeStudentRepo
	complaints *fakeComplaintRepo
	sessions   *fakeChatSessionRepo
	messages   *fakeChatMessageRepo
}

func newFakeUow() *fakeUow {
	return &fakeUow{
		students:   &fakeStudentRepo{},
		complaints: &fakeComplaintRepo{},
		sessions:   &fakeChatSessionRepo{},
		messages:   &fakeChatMessageRepo{},
	}
}

func (f *fakeUow) Begin(ctx context.Context) error { return nil }
func (f *fakeUow) Commit() error                   { return nil }
func (f *fakeUow) Rollback() error                 { return nil }

func (f *fakeUow) StudentRepository() contract.StudentRepository     { return f.students }
func (f *fakeUow) ComplaintRepository() contract.ComplaintRepository { return f.complaints }
func (f *fakeUow) RoomRepository() contract.RoomRepository           { return nil }
func (f *fakeUow) RoomChangeRequestRepository() contract.RoomChangeRequestRepository {
	return nil
}
func (f *fakeUow) MaintenanceRequestRepository() contract.MaintenanceRequestRepository {
	return nil
}
func (f *fakeUow) MessMenuRepository() contract.MessMenuRepository         { return nil }
func (f *fakeUow) MessFeedbackRepository() contract.MessFeedbackRepository { return nil }
func (f *fakeUow) FaqRepository() contract.FaqRepository                   { return nil }
func (f *fakeUow) ChatSessionRepository() contract.ChatSessionRepository   { return f.sessions }
func (f *fakeUow) ChatMessageRepository() contract.ChatMessageRepository   { return f.messages }

type fakeFactory struct {
	uow *fakeUow
}

func (f fakeFactory) NewUnitOfWork(ctx context.Context) unitofwork.UnitOfWork {
	return f.uow
}

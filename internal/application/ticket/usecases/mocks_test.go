package usecases

import (
	"context"

	"ddportal/internal/domain/client"
	"ddportal/internal/domain/shared/events"
	"ddportal/internal/domain/ticket"
	"ddportal/internal/shared/logger"
)

type mockTicketRepository struct {
	SaveFunc                     func(ctx context.Context, t *ticket.Ticket) error
	UpdateFunc                   func(ctx context.Context, t *ticket.Ticket) error
	SoftDeleteFunc               func(ctx context.Context, ticketID uint) error
	GetByIDFunc                  func(ctx context.Context, ticketID uint) (*ticket.Ticket, error)
	ListFunc                     func(ctx context.Context, filter ticket.Filter) ([]*ticket.Ticket, int64, error)
	SaveCommentFunc              func(ctx context.Context, comment *ticket.Comment) error
	GetCommentsByTicketIDFunc    func(ctx context.Context, ticketID uint) ([]*ticket.Comment, error)
	SaveTimeEntryFunc            func(ctx context.Context, entry *ticket.TimeEntry) error
	UpdateTimeEntryFunc          func(ctx context.Context, entry *ticket.TimeEntry) error
	SoftDeleteTimeEntryFunc      func(ctx context.Context, entryID uint) error
	GetTimeEntryByIDFunc         func(ctx context.Context, entryID uint) (*ticket.TimeEntry, error)
	GetTimeEntriesByTicketIDFunc func(ctx context.Context, ticketID uint) ([]*ticket.TimeEntry, error)
	AddTimeSpentFunc             func(ctx context.Context, ticketID uint, deltaMinutes int) error
}

func (m *mockTicketRepository) Save(ctx context.Context, t *ticket.Ticket) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, t)
	}
	return nil
}

func (m *mockTicketRepository) Update(ctx context.Context, t *ticket.Ticket) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, t)
	}
	return nil
}

func (m *mockTicketRepository) SoftDelete(ctx context.Context, ticketID uint) error {
	if m.SoftDeleteFunc != nil {
		return m.SoftDeleteFunc(ctx, ticketID)
	}
	return nil
}

func (m *mockTicketRepository) GetByID(ctx context.Context, ticketID uint) (*ticket.Ticket, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, ticketID)
	}
	return nil, nil
}

func (m *mockTicketRepository) List(ctx context.Context, filter ticket.Filter) ([]*ticket.Ticket, int64, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, filter)
	}
	return nil, 0, nil
}

func (m *mockTicketRepository) SaveComment(ctx context.Context, comment *ticket.Comment) error {
	if m.SaveCommentFunc != nil {
		return m.SaveCommentFunc(ctx, comment)
	}
	return nil
}

func (m *mockTicketRepository) GetCommentsByTicketID(ctx context.Context, ticketID uint) ([]*ticket.Comment, error) {
	if m.GetCommentsByTicketIDFunc != nil {
		return m.GetCommentsByTicketIDFunc(ctx, ticketID)
	}
	return nil, nil
}

func (m *mockTicketRepository) SaveTimeEntry(ctx context.Context, entry *ticket.TimeEntry) error {
	if m.SaveTimeEntryFunc != nil {
		return m.SaveTimeEntryFunc(ctx, entry)
	}
	return nil
}

func (m *mockTicketRepository) UpdateTimeEntry(ctx context.Context, entry *ticket.TimeEntry) error {
	if m.UpdateTimeEntryFunc != nil {
		return m.UpdateTimeEntryFunc(ctx, entry)
	}
	return nil
}

func (m *mockTicketRepository) SoftDeleteTimeEntry(ctx context.Context, entryID uint) error {
	if m.SoftDeleteTimeEntryFunc != nil {
		return m.SoftDeleteTimeEntryFunc(ctx, entryID)
	}
	return nil
}

func (m *mockTicketRepository) GetTimeEntryByID(ctx context.Context, entryID uint) (*ticket.TimeEntry, error) {
	if m.GetTimeEntryByIDFunc != nil {
		return m.GetTimeEntryByIDFunc(ctx, entryID)
	}
	return nil, nil
}

func (m *mockTicketRepository) GetTimeEntriesByTicketID(ctx context.Context, ticketID uint) ([]*ticket.TimeEntry, error) {
	if m.GetTimeEntriesByTicketIDFunc != nil {
		return m.GetTimeEntriesByTicketIDFunc(ctx, ticketID)
	}
	return nil, nil
}

func (m *mockTicketRepository) AddTimeSpent(ctx context.Context, ticketID uint, deltaMinutes int) error {
	if m.AddTimeSpentFunc != nil {
		return m.AddTimeSpentFunc(ctx, ticketID, deltaMinutes)
	}
	return nil
}

type mockClientRepository struct {
	SaveFunc                      func(ctx context.Context, c *client.Client) error
	UpdateFunc                    func(ctx context.Context, c *client.Client) error
	SoftDeleteFunc                func(ctx context.Context, clientID uint) error
	GetByIDFunc                   func(ctx context.Context, clientID uint) (*client.Client, error)
	ListFunc                      func(ctx context.Context, filter client.Filter) ([]*client.Client, int64, error)
	AddSupportMinutesUsedFunc     func(ctx context.Context, clientID uint, deltaMinutes int) error
	ReleaseSupportMinutesUsedFunc func(ctx context.Context, clientID uint, minutes int) error
}

func (m *mockClientRepository) Save(ctx context.Context, c *client.Client) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, c)
	}
	return nil
}

func (m *mockClientRepository) Update(ctx context.Context, c *client.Client) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, c)
	}
	return nil
}

func (m *mockClientRepository) SoftDelete(ctx context.Context, clientID uint) error {
	if m.SoftDeleteFunc != nil {
		return m.SoftDeleteFunc(ctx, clientID)
	}
	return nil
}

func (m *mockClientRepository) GetByID(ctx context.Context, clientID uint) (*client.Client, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, clientID)
	}
	return nil, nil
}

func (m *mockClientRepository) List(ctx context.Context, filter client.Filter) ([]*client.Client, int64, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, filter)
	}
	return nil, 0, nil
}

func (m *mockClientRepository) AddSupportMinutesUsed(ctx context.Context, clientID uint, deltaMinutes int) error {
	if m.AddSupportMinutesUsedFunc != nil {
		return m.AddSupportMinutesUsedFunc(ctx, clientID, deltaMinutes)
	}
	return nil
}

func (m *mockClientRepository) ReleaseSupportMinutesUsed(ctx context.Context, clientID uint, minutes int) error {
	if m.ReleaseSupportMinutesUsedFunc != nil {
		return m.ReleaseSupportMinutesUsedFunc(ctx, clientID, minutes)
	}
	return nil
}

// mockTxManager runs the callback inline without a database.
type mockTxManager struct {
	RunInTransactionFunc func(ctx context.Context, fn func(ctx context.Context) error) error
}

func (m *mockTxManager) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	if m.RunInTransactionFunc != nil {
		return m.RunInTransactionFunc(ctx, fn)
	}
	return fn(ctx)
}

type mockEventDispatcher struct {
	PublishFunc    func(event events.DomainEvent) error
	PublishAllFunc func(evts []events.DomainEvent) error
}

func (m *mockEventDispatcher) Publish(event events.DomainEvent) error {
	if m.PublishFunc != nil {
		return m.PublishFunc(event)
	}
	return nil
}

func (m *mockEventDispatcher) PublishAll(evts []events.DomainEvent) error {
	if m.PublishAllFunc != nil {
		return m.PublishAllFunc(evts)
	}
	return nil
}

func (m *mockEventDispatcher) Subscribe(eventType string, handler events.EventHandler) error {
	return nil
}

func (m *mockEventDispatcher) Start() error { return nil }

func (m *mockEventDispatcher) Stop() error { return nil }

type mockLogger struct{}

func (m *mockLogger) Debug(msg string, args ...any)                     {}
func (m *mockLogger) Info(msg string, args ...any)                      {}
func (m *mockLogger) Warn(msg string, args ...any)                      {}
func (m *mockLogger) Error(msg string, args ...any)                     {}
func (m *mockLogger) With(args ...any) logger.Interface                 { return m }
func (m *mockLogger) Named(name string) logger.Interface                { return m }
func (m *mockLogger) Debugw(msg string, keysAndValues ...interface{})   {}
func (m *mockLogger) Infow(msg string, keysAndValues ...interface{})    {}
func (m *mockLogger) Warnw(msg string, keysAndValues ...interface{})    {}
func (m *mockLogger) Errorw(msg string, keysAndValues ...interface{})   {}

type mockMarkdownService struct {
	ToHTMLFunc func(markdown string) (string, error)
}

func (m *mockMarkdownService) ToHTML(markdown string) (string, error) {
	if m.ToHTMLFunc != nil {
		return m.ToHTMLFunc(markdown)
	}
	return "<p>" + markdown + "</p>", nil
}

func (m *mockMarkdownService) Sanitize(htmlContent string) string {
	return htmlContent
}

func (m *mockMarkdownService) ToHTMLSanitized(markdown string) (string, error) {
	return m.ToHTML(markdown)
}

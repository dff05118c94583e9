package usecases

import (
	"context"

	"ddportal/internal/domain/client"
	"ddportal/internal/domain/project"
	"ddportal/internal/domain/shared/events"
	"ddportal/internal/shared/logger"
)

type mockProjectRepository struct {
	SaveFunc                 func(ctx context.Context, p *project.Project) error
	UpdateFunc               func(ctx context.Context, p *project.Project) error
	SoftDeleteFunc           func(ctx context.Context, projectID uint) error
	GetByIDFunc              func(ctx context.Context, projectID uint) (*project.Project, error)
	ListFunc                 func(ctx context.Context, filter project.Filter) ([]*project.Project, int64, error)
	SavePhaseFunc            func(ctx context.Context, phase *project.Phase) error
	SavePhasesFunc           func(ctx context.Context, phases []*project.Phase) error
	UpdatePhaseFunc          func(ctx context.Context, phase *project.Phase) error
	DeletePhaseFunc          func(ctx context.Context, phaseID uint) error
	GetPhaseByIDFunc         func(ctx context.Context, phaseID uint) (*project.Phase, error)
	GetPhasesByProjectIDFunc func(ctx context.Context, projectID uint) ([]*project.Phase, error)
}

func (m *mockProjectRepository) Save(ctx context.Context, p *project.Project) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, p)
	}
	return nil
}

func (m *mockProjectRepository) Update(ctx context.Context, p *project.Project) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, p)
	}
	return nil
}

func (m *mockProjectRepository) SoftDelete(ctx context.Context, projectID uint) error {
	if m.SoftDeleteFunc != nil {
		return m.SoftDeleteFunc(ctx, projectID)
	}
	return nil
}

func (m *mockProjectRepository) GetByID(ctx context.Context, projectID uint) (*project.Project, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, projectID)
	}
	return nil, nil
}

func (m *mockProjectRepository) List(ctx context.Context, filter project.Filter) ([]*project.Project, int64, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, filter)
	}
	return nil, 0, nil
}

func (m *mockProjectRepository) SavePhase(ctx context.Context, phase *project.Phase) error {
	if m.SavePhaseFunc != nil {
		return m.SavePhaseFunc(ctx, phase)
	}
	return nil
}

func (m *mockProjectRepository) SavePhases(ctx context.Context, phases []*project.Phase) error {
	if m.SavePhasesFunc != nil {
		return m.SavePhasesFunc(ctx, phases)
	}
	return nil
}

func (m *mockProjectRepository) UpdatePhase(ctx context.Context, phase *project.Phase) error {
	if m.UpdatePhaseFunc != nil {
		return m.UpdatePhaseFunc(ctx, phase)
	}
	return nil
}

func (m *mockProjectRepository) DeletePhase(ctx context.Context, phaseID uint) error {
	if m.DeletePhaseFunc != nil {
		return m.DeletePhaseFunc(ctx, phaseID)
	}
	return nil
}

func (m *mockProjectRepository) GetPhaseByID(ctx context.Context, phaseID uint) (*project.Phase, error) {
	if m.GetPhaseByIDFunc != nil {
		return m.GetPhaseByIDFunc(ctx, phaseID)
	}
	return nil, nil
}

func (m *mockProjectRepository) GetPhasesByProjectID(ctx context.Context, projectID uint) ([]*project.Phase, error) {
	if m.GetPhasesByProjectIDFunc != nil {
		return m.GetPhasesByProjectIDFunc(ctx, projectID)
	}
	return nil, nil
}

type mockTemplateRepository struct {
	SaveFunc         func(ctx context.Context, template *project.PhaseTemplate) error
	GetByIDFunc      func(ctx context.Context, templateID uint) (*project.PhaseTemplate, error)
	ListFunc         func(ctx context.Context) ([]*project.PhaseTemplate, error)
	ClearDefaultFunc func(ctx context.Context) error
}

func (m *mockTemplateRepository) Save(ctx context.Context, template *project.PhaseTemplate) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, template)
	}
	return nil
}

func (m *mockTemplateRepository) GetByID(ctx context.Context, templateID uint) (*project.PhaseTemplate, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, templateID)
	}
	return nil, nil
}

func (m *mockTemplateRepository) List(ctx context.Context) ([]*project.PhaseTemplate, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	return nil, nil
}

func (m *mockTemplateRepository) ClearDefault(ctx context.Context) error {
	if m.ClearDefaultFunc != nil {
		return m.ClearDefaultFunc(ctx)
	}
	return nil
}

type mockClientRepository struct {
	GetByIDFunc func(ctx context.Context, clientID uint) (*client.Client, error)
}

func (m *mockClientRepository) Save(ctx context.Context, c *client.Client) error   { return nil }
func (m *mockClientRepository) Update(ctx context.Context, c *client.Client) error { return nil }
func (m *mockClientRepository) SoftDelete(ctx context.Context, clientID uint) error {
	return nil
}

func (m *mockClientRepository) GetByID(ctx context.Context, clientID uint) (*client.Client, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, clientID)
	}
	return nil, nil
}

func (m *mockClientRepository) List(ctx context.Context, filter client.Filter) ([]*client.Client, int64, error) {
	return nil, 0, nil
}

func (m *mockClientRepository) AddSupportMinutesUsed(ctx context.Context, clientID uint, deltaMinutes int) error {
	return nil
}

func (m *mockClientRepository) ReleaseSupportMinutesUsed(ctx context.Context, clientID uint, minutes int) error {
	return nil
}

type mockTxManager struct{}

func (m *mockTxManager) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type mockEventDispatcher struct {
	PublishFunc func(event events.DomainEvent) error
}

func (m *mockEventDispatcher) Publish(event events.DomainEvent) error {
	if m.PublishFunc != nil {
		return m.PublishFunc(event)
	}
	return nil
}

func (m *mockEventDispatcher) PublishAll(evts []events.DomainEvent) error { return nil }

func (m *mockEventDispatcher) Subscribe(eventType string, handler events.EventHandler) error {
	return nil
}

func (m *mockEventDispatcher) Start() error { return nil }

func (m *mockEventDispatcher) Stop() error { return nil }

type mockLogger struct{}

func (m *mockLogger) Debug(msg string, args ...any)                   {}
func (m *mockLogger) Info(msg string, args ...any)                    {}
func (m *mockLogger) Warn(msg string, args ...any)                    {}
func (m *mockLogger) Error(msg string, args ...any)                   {}
func (m *mockLogger) With(args ...any) logger.Interface               { return m }
func (m *mockLogger) Named(name string) logger.Interface              { return m }
func (m *mockLogger) Debugw(msg string, keysAndValues ...interface{}) {}
func (m *mockLogger) Infow(msg string, keysAndValues ...interface{})  {}
func (m *mockLogger) Warnw(msg string, keysAndValues ...interface{})  {}
func (m *mockLogger) Errorw(msg string, keysAndValues ...interface{}) {}

type mockMarkdownService struct{}

func (m *mockMarkdownService) ToHTML(markdown string) (string, error) {
	return "<p>" + markdown + "</p>", nil
}

func (m *mockMarkdownService) Sanitize(htmlContent string) string { return htmlContent }

func (m *mockMarkdownService) ToHTMLSanitized(markdown string) (string, error) {
	return m.ToHTML(markdown)
}

package usecases

import (
	"context"

	"ddportal/internal/domain/client"
	"ddportal/internal/shared/logger"
)

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

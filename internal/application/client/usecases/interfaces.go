package usecases

import (
	"context"

	"ddportal/internal/application/client/dto"
)

type CreateClientExecutor interface {
	Execute(ctx context.Context, cmd CreateClientCommand) (*CreateClientResult, error)
}

type GetClientExecutor interface {
	Execute(ctx context.Context, query GetClientQuery) (*dto.ClientDTO, error)
}

type ListClientsExecutor interface {
	Execute(ctx context.Context, query ListClientsQuery) (*ListClientsResult, error)
}

type UpdateClientExecutor interface {
	Execute(ctx context.Context, cmd UpdateClientCommand) (*UpdateClientResult, error)
}

type ArchiveClientExecutor interface {
	Execute(ctx context.Context, cmd ArchiveClientCommand) error
}

type ResetSupportCycleExecutor interface {
	Execute(ctx context.Context, cmd ResetSupportCycleCommand) (*ResetSupportCycleResult, error)
}

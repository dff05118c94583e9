package usecases

import (
	"context"

	"ddportal/internal/application/ticket/dto"
)

type CreateTicketExecutor interface {
	Execute(ctx context.Context, cmd CreateTicketCommand) (*CreateTicketResult, error)
}

type GetTicketExecutor interface {
	Execute(ctx context.Context, query GetTicketQuery) (*dto.TicketDTO, error)
}

type ListTicketsExecutor interface {
	Execute(ctx context.Context, query ListTicketsQuery) (*ListTicketsResult, error)
}

type ClaimTicketExecutor interface {
	Execute(ctx context.Context, cmd ClaimTicketCommand) (*ClaimTicketResult, error)
}

type UnclaimTicketExecutor interface {
	Execute(ctx context.Context, cmd UnclaimTicketCommand) (*UnclaimTicketResult, error)
}

type ResolveTicketExecutor interface {
	Execute(ctx context.Context, cmd ResolveTicketCommand) (*ResolveTicketResult, error)
}

type SetTicketStatusExecutor interface {
	Execute(ctx context.Context, cmd SetTicketStatusCommand) (*SetTicketStatusResult, error)
}

type AddCommentExecutor interface {
	Execute(ctx context.Context, cmd AddCommentCommand) (*AddCommentResult, error)
}

type DeleteTicketExecutor interface {
	Execute(ctx context.Context, cmd DeleteTicketCommand) error
}

type LogTimeExecutor interface {
	Execute(ctx context.Context, cmd LogTimeCommand) (*LogTimeResult, error)
}

type UpdateTimeEntryExecutor interface {
	Execute(ctx context.Context, cmd UpdateTimeEntryCommand) (*UpdateTimeEntryResult, error)
}

type DeleteTimeEntryExecutor interface {
	Execute(ctx context.Context, cmd DeleteTimeEntryCommand) error
}

type ListTimeEntriesExecutor interface {
	Execute(ctx context.Context, query ListTimeEntriesQuery) ([]dto.TimeEntryDTO, error)
}

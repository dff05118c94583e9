package usecases

import (
	"context"

	"ddportal/internal/application/project/dto"
)

type CreateProjectExecutor interface {
	Execute(ctx context.Context, cmd CreateProjectCommand) (*CreateProjectResult, error)
}

type GetProjectExecutor interface {
	Execute(ctx context.Context, query GetProjectQuery) (*dto.ProjectDTO, error)
}

type ListProjectsExecutor interface {
	Execute(ctx context.Context, query ListProjectsQuery) (*ListProjectsResult, error)
}

type UpdateProjectExecutor interface {
	Execute(ctx context.Context, cmd UpdateProjectCommand) (*UpdateProjectResult, error)
}

type DeleteProjectExecutor interface {
	Execute(ctx context.Context, cmd DeleteProjectCommand) error
}

type CreatePhaseExecutor interface {
	Execute(ctx context.Context, cmd CreatePhaseCommand) (*CreatePhaseResult, error)
}

type SetPhaseStatusExecutor interface {
	Execute(ctx context.Context, cmd SetPhaseStatusCommand) (*SetPhaseStatusResult, error)
}

type UpdatePhaseExecutor interface {
	Execute(ctx context.Context, cmd UpdatePhaseCommand) (*UpdatePhaseResult, error)
}

type DeletePhaseExecutor interface {
	Execute(ctx context.Context, cmd DeletePhaseCommand) error
}

type ReorderPhasesExecutor interface {
	Execute(ctx context.Context, cmd ReorderPhasesCommand) error
}

type ApplyPhaseTemplateExecutor interface {
	Execute(ctx context.Context, cmd ApplyPhaseTemplateCommand) (*ApplyPhaseTemplateResult, error)
}

type CreateTemplateExecutor interface {
	Execute(ctx context.Context, cmd CreateTemplateCommand) (*CreateTemplateResult, error)
}

type ListTemplatesExecutor interface {
	Execute(ctx context.Context) ([]dto.TemplateDTO, error)
}

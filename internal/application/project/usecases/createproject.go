package usecases

import (
	"context"
	"time"

	"ddportal/internal/domain/client"
	"ddportal/internal/domain/project"
	"ddportal/internal/shared/db"
	"ddportal/internal/shared/errors"
	"ddportal/internal/shared/logger"
)

type CreateProjectCommand struct {
	ClientID    uint
	Name        string
	Description string
	StartDate   *time.Time
	DueDate     *time.Time
	// TemplateID, when set, stamps the template's phases onto the new project.
	TemplateID *uint
	ActorID    uint
}

type CreateProjectResult struct {
	ProjectID  uint
	Status     string
	PhaseCount int
	CreatedAt  time.Time
}

type CreateProjectUseCase struct {
	projectRepo  project.Repository
	templateRepo project.TemplateRepository
	clientRepo   client.Repository
	txMgr        db.TxManager
	logger       logger.Interface
}

func NewCreateProjectUseCase(
	projectRepo project.Repository,
	templateRepo project.TemplateRepository,
	clientRepo client.Repository,
	txMgr db.TxManager,
	logger logger.Interface,
) *CreateProjectUseCase {
	return &CreateProjectUseCase{
		projectRepo:  projectRepo,
		templateRepo: templateRepo,
		clientRepo:   clientRepo,
		txMgr:        txMgr,
		logger:       logger,
	}
}

func (uc *CreateProjectUseCase) Execute(ctx context.Context, cmd CreateProjectCommand) (*CreateProjectResult, error) {
	uc.logger.Infow("executing create project use case", "name", cmd.Name, "client_id", cmd.ClientID)

	if cmd.Name == "" {
		return nil, errors.NewValidationError("project name is required")
	}
	if cmd.ClientID == 0 {
		return nil, errors.NewValidationError("client ID is required")
	}

	if _, err := uc.clientRepo.GetByID(ctx, cmd.ClientID); err != nil {
		uc.logger.Errorw("failed to load client", "client_id", cmd.ClientID, "error", err)
		return nil, errors.NewNotFoundError("client not found")
	}

	var template *project.PhaseTemplate
	if cmd.TemplateID != nil {
		loaded, err := uc.templateRepo.GetByID(ctx, *cmd.TemplateID)
		if err != nil {
			uc.logger.Errorw("failed to load phase template", "template_id", *cmd.TemplateID, "error", err)
			return nil, errors.NewNotFoundError("phase template not found")
		}
		template = loaded
	}

	newProject, err := project.NewProject(cmd.ClientID, cmd.Name, cmd.Description, cmd.StartDate, cmd.DueDate)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	phaseCount := 0
	txErr := uc.txMgr.RunInTransaction(ctx, func(txCtx context.Context) error {
		if err := uc.projectRepo.Save(txCtx, newProject); err != nil {
			uc.logger.Errorw("failed to save project", "error", err)
			return err
		}
		if template == nil {
			return nil
		}
		phases, err := template.MaterializePhases(newProject.ID(), 0)
		if err != nil {
			return err
		}
		if err := uc.projectRepo.SavePhases(txCtx, phases); err != nil {
			uc.logger.Errorw("failed to save template phases", "error", err)
			return err
		}
		phaseCount = len(phases)
		return nil
	})
	if txErr != nil {
		return nil, errors.NewInternalError("failed to create project")
	}

	uc.logger.Infow("project created", "project_id", newProject.ID(), "phases", phaseCount)

	return &CreateProjectResult{
		ProjectID:  newProject.ID(),
		Status:     newProject.Status().String(),
		PhaseCount: phaseCount,
		CreatedAt:  newProject.CreatedAt(),
	}, nil
}

package usecases

import (
	"context"

	"ddportal/internal/domain/project"
	"ddportal/internal/shared/db"
	"ddportal/internal/shared/errors"
	"ddportal/internal/shared/logger"
)

type ApplyPhaseTemplateCommand struct {
	ProjectID  uint
	TemplateID uint
	ActorID    uint
}

type ApplyPhaseTemplateResult struct {
	ProjectID  uint
	PhaseCount int
}

// ApplyPhaseTemplateUseCase stamps a template's phases onto a project.
// Application is additive: existing phases are kept and the template's
// phases are appended after them, so applying twice duplicates phases.
type ApplyPhaseTemplateUseCase struct {
	projectRepo  project.Repository
	templateRepo project.TemplateRepository
	txMgr        db.TxManager
	logger       logger.Interface
}

func NewApplyPhaseTemplateUseCase(
	projectRepo project.Repository,
	templateRepo project.TemplateRepository,
	txMgr db.TxManager,
	logger logger.Interface,
) *ApplyPhaseTemplateUseCase {
	return &ApplyPhaseTemplateUseCase{
		projectRepo:  projectRepo,
		templateRepo: templateRepo,
		txMgr:        txMgr,
		logger:       logger,
	}
}

func (uc *ApplyPhaseTemplateUseCase) Execute(ctx context.Context, cmd ApplyPhaseTemplateCommand) (*ApplyPhaseTemplateResult, error) {
	uc.logger.Infow("executing apply phase template use case",
		"project_id", cmd.ProjectID,
		"template_id", cmd.TemplateID)

	p, err := uc.projectRepo.GetByID(ctx, cmd.ProjectID)
	if err != nil {
		uc.logger.Errorw("failed to load project", "project_id", cmd.ProjectID, "error", err)
		return nil, errors.NewNotFoundError("project not found")
	}

	template, err := uc.templateRepo.GetByID(ctx, cmd.TemplateID)
	if err != nil {
		uc.logger.Errorw("failed to load template", "template_id", cmd.TemplateID, "error", err)
		return nil, errors.NewNotFoundError("phase template not found")
	}

	existing, err := uc.projectRepo.GetPhasesByProjectID(ctx, p.ID())
	if err != nil {
		uc.logger.Errorw("failed to load phases", "project_id", p.ID(), "error", err)
		return nil, errors.NewInternalError("failed to load phases")
	}
	phases, err := template.MaterializePhases(p.ID(), len(existing))
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	txErr := uc.txMgr.RunInTransaction(ctx, func(txCtx context.Context) error {
		return uc.projectRepo.SavePhases(txCtx, phases)
	})
	if txErr != nil {
		uc.logger.Errorw("failed to save template phases", "error", txErr)
		return nil, errors.NewInternalError("failed to apply template")
	}

	uc.logger.Infow("template applied", "project_id", p.ID(), "phases", len(phases))

	return &ApplyPhaseTemplateResult{
		ProjectID:  p.ID(),
		PhaseCount: len(phases),
	}, nil
}

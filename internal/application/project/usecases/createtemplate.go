package usecases

import (
	"context"

	"ddportal/internal/domain/project"
	"ddportal/internal/shared/db"
	"ddportal/internal/shared/errors"
	"ddportal/internal/shared/logger"
)

type TemplatePhaseInput struct {
	Name        string
	Description string
	OrderIndex  int
}

type CreateTemplateCommand struct {
	Name        string
	Description string
	IsDefault   bool
	Phases      []TemplatePhaseInput
	ActorID     uint
}

type CreateTemplateResult struct {
	TemplateID uint
	PhaseCount int
}

type CreateTemplateUseCase struct {
	templateRepo project.TemplateRepository
	txMgr        db.TxManager
	logger       logger.Interface
}

func NewCreateTemplateUseCase(
	templateRepo project.TemplateRepository,
	txMgr db.TxManager,
	logger logger.Interface,
) *CreateTemplateUseCase {
	return &CreateTemplateUseCase{
		templateRepo: templateRepo,
		txMgr:        txMgr,
		logger:       logger,
	}
}

func (uc *CreateTemplateUseCase) Execute(ctx context.Context, cmd CreateTemplateCommand) (*CreateTemplateResult, error) {
	uc.logger.Infow("executing create template use case", "name", cmd.Name, "actor_id", cmd.ActorID)

	phases := make([]project.TemplatePhase, 0, len(cmd.Phases))
	for _, phase := range cmd.Phases {
		phases = append(phases, project.TemplatePhase{
			Name:        phase.Name,
			Description: phase.Description,
			OrderIndex:  phase.OrderIndex,
		})
	}

	template, err := project.NewPhaseTemplate(cmd.Name, cmd.Description, cmd.IsDefault, phases)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	// Unsetting the old default and saving the new one happen atomically so
	// there is never more than one default template.
	txErr := uc.txMgr.RunInTransaction(ctx, func(txCtx context.Context) error {
		if template.IsDefault() {
			if err := uc.templateRepo.ClearDefault(txCtx); err != nil {
				uc.logger.Errorw("failed to clear default template", "error", err)
				return err
			}
		}
		return uc.templateRepo.Save(txCtx, template)
	})
	if txErr != nil {
		return nil, errors.NewInternalError("failed to create template")
	}

	uc.logger.Infow("template created", "template_id", template.ID(), "is_default", template.IsDefault())

	return &CreateTemplateResult{
		TemplateID: template.ID(),
		PhaseCount: len(phases),
	}, nil
}

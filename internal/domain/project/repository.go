package project

import (
	"context"

	vo "ddportal/internal/domain/project/valueobjects"
)

type Repository interface {
	Save(ctx context.Context, project *Project) error
	Update(ctx context.Context, project *Project) error
	// SoftDelete marks a project as deleted; the row is retained. Phases are
	// left in place and filtered out by the project lookup.
	SoftDelete(ctx context.Context, projectID uint) error
	GetByID(ctx context.Context, projectID uint) (*Project, error)
	List(ctx context.Context, filter Filter) ([]*Project, int64, error)

	SavePhase(ctx context.Context, phase *Phase) error
	SavePhases(ctx context.Context, phases []*Phase) error
	UpdatePhase(ctx context.Context, phase *Phase) error
	// DeletePhase removes the phase row. Phase rows carry no history worth
	// keeping, so this is a hard delete.
	DeletePhase(ctx context.Context, phaseID uint) error
	GetPhaseByID(ctx context.Context, phaseID uint) (*Phase, error)
	GetPhasesByProjectID(ctx context.Context, projectID uint) ([]*Phase, error)
}

type TemplateRepository interface {
	Save(ctx context.Context, template *PhaseTemplate) error
	GetByID(ctx context.Context, templateID uint) (*PhaseTemplate, error)
	List(ctx context.Context) ([]*PhaseTemplate, error)
	// ClearDefault unsets the default flag on every template, so that at most
	// one template is the default after a save.
	ClearDefault(ctx context.Context) error
}

type Filter struct {
	Status   *vo.ProjectStatus
	ClientID *uint
	Search   string
	Page     int
	PageSize int
}

package project

import (
	"fmt"
	"sort"
	"time"
)

// PhaseTemplate is a reusable ordered list of phase definitions that can be
// stamped onto a project in one operation.
type PhaseTemplate struct {
	id          uint
	name        string
	description string
	isDefault   bool
	phases      []TemplatePhase
	createdAt   time.Time
	updatedAt   time.Time
}

// TemplatePhase is one entry of a template. It carries no status or
// timestamps; those belong to the materialized phase.
type TemplatePhase struct {
	Name        string
	Description string
	OrderIndex  int
}

func NewPhaseTemplate(name, description string, isDefault bool, phases []TemplatePhase) (*PhaseTemplate, error) {
	if name == "" {
		return nil, fmt.Errorf("template name is required")
	}
	if len(phases) == 0 {
		return nil, fmt.Errorf("template must have at least one phase")
	}
	for _, phase := range phases {
		if phase.Name == "" {
			return nil, fmt.Errorf("template phase name is required")
		}
		if phase.OrderIndex < 0 {
			return nil, fmt.Errorf("order index cannot be negative")
		}
	}

	now := time.Now()
	return &PhaseTemplate{
		name:        name,
		description: description,
		isDefault:   isDefault,
		phases:      phases,
		createdAt:   now,
		updatedAt:   now,
	}, nil
}

func ReconstructPhaseTemplate(
	id uint,
	name string,
	description string,
	isDefault bool,
	phases []TemplatePhase,
	createdAt, updatedAt time.Time,
) (*PhaseTemplate, error) {
	if id == 0 {
		return nil, fmt.Errorf("template ID cannot be zero")
	}

	return &PhaseTemplate{
		id:          id,
		name:        name,
		description: description,
		isDefault:   isDefault,
		phases:      phases,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}, nil
}

func (t *PhaseTemplate) ID() uint {
	return t.id
}

func (t *PhaseTemplate) Name() string {
	return t.name
}

func (t *PhaseTemplate) Description() string {
	return t.description
}

func (t *PhaseTemplate) IsDefault() bool {
	return t.isDefault
}

func (t *PhaseTemplate) Phases() []TemplatePhase {
	return t.phases
}

func (t *PhaseTemplate) CreatedAt() time.Time {
	return t.createdAt
}

func (t *PhaseTemplate) UpdatedAt() time.Time {
	return t.updatedAt
}

func (t *PhaseTemplate) SetID(id uint) error {
	if t.id != 0 {
		return fmt.Errorf("template ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("template ID cannot be zero")
	}
	t.id = id
	return nil
}

func (t *PhaseTemplate) UnsetDefault() {
	t.isDefault = false
	t.updatedAt = time.Now()
}

// MaterializePhases builds pending phases for the given project from the
// template entries, in order index order. Order indexes start after
// orderOffset so the phases slot in behind any the project already has.
func (t *PhaseTemplate) MaterializePhases(projectID uint, orderOffset int) ([]*Phase, error) {
	if projectID == 0 {
		return nil, fmt.Errorf("project ID is required")
	}
	if orderOffset < 0 {
		orderOffset = 0
	}

	entries := make([]TemplatePhase, len(t.phases))
	copy(entries, t.phases)
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].OrderIndex < entries[j].OrderIndex
	})

	phases := make([]*Phase, 0, len(entries))
	for i, entry := range entries {
		phase, err := NewPhase(projectID, entry.Name, entry.Description, orderOffset+i)
		if err != nil {
			return nil, err
		}
		phases = append(phases, phase)
	}
	return phases, nil
}

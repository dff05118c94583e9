package dto

import (
	"sort"
	"time"

	"ddportal/internal/domain/project"
)

type ProjectDTO struct {
	ID              uint       `json:"id"`
	ClientID        uint       `json:"client_id"`
	Name            string     `json:"name"`
	Description     string     `json:"description"`
	Status          string     `json:"status"`
	CurrentPhaseID  *uint      `json:"current_phase_id"`
	StartDate       *time.Time `json:"start_date"`
	DueDate         *time.Time `json:"due_date"`
	ProgressPercent int        `json:"progress_percent"`
	Phases          []PhaseDTO `json:"phases"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}

type PhaseDTO struct {
	ID          uint       `json:"id"`
	ProjectID   uint       `json:"project_id"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	Status      string     `json:"status"`
	OrderIndex  int        `json:"order_index"`
	Notes       string     `json:"notes,omitempty"`
	NotesHTML   string     `json:"notes_html,omitempty"`
	StartedAt   *time.Time `json:"started_at"`
	CompletedAt *time.Time `json:"completed_at"`
}

type ProjectListItemDTO struct {
	ID              uint       `json:"id"`
	ClientID        uint       `json:"client_id"`
	Name            string     `json:"name"`
	Status          string     `json:"status"`
	CurrentPhaseID  *uint      `json:"current_phase_id"`
	DueDate         *time.Time `json:"due_date"`
	ProgressPercent int        `json:"progress_percent"`
	CreatedAt       time.Time  `json:"created_at"`
}

type TemplateDTO struct {
	ID          uint               `json:"id"`
	Name        string             `json:"name"`
	Description string             `json:"description"`
	IsDefault   bool               `json:"is_default"`
	Phases      []TemplatePhaseDTO `json:"phases"`
	CreatedAt   time.Time          `json:"created_at"`
}

type TemplatePhaseDTO struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	OrderIndex  int    `json:"order_index"`
}

func ToPhaseDTO(p *project.Phase) PhaseDTO {
	return PhaseDTO{
		ID:          p.ID(),
		ProjectID:   p.ProjectID(),
		Name:        p.Name(),
		Description: p.Description(),
		Status:      p.Status().String(),
		OrderIndex:  p.OrderIndex(),
		Notes:       p.Notes(),
		StartedAt:   p.StartedAt(),
		CompletedAt: p.CompletedAt(),
	}
}

// ToProjectDTO maps a project with its phases, sorted by order index, and the
// derived progress percentage.
func ToProjectDTO(p *project.Project, phases []*project.Phase) *ProjectDTO {
	if p == nil {
		return nil
	}

	sorted := make([]*project.Phase, len(phases))
	copy(sorted, phases)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].OrderIndex() < sorted[j].OrderIndex()
	})

	phaseDTOs := make([]PhaseDTO, 0, len(sorted))
	for _, phase := range sorted {
		phaseDTOs = append(phaseDTOs, ToPhaseDTO(phase))
	}

	return &ProjectDTO{
		ID:              p.ID(),
		ClientID:        p.ClientID(),
		Name:            p.Name(),
		Description:     p.Description(),
		Status:          p.Status().String(),
		CurrentPhaseID:  p.CurrentPhaseID(),
		StartDate:       p.StartDate(),
		DueDate:         p.DueDate(),
		ProgressPercent: project.ComputeProgress(phases),
		Phases:          phaseDTOs,
		CreatedAt:       p.CreatedAt(),
		UpdatedAt:       p.UpdatedAt(),
	}
}

func ToProjectListItemDTO(p *project.Project, phases []*project.Phase) ProjectListItemDTO {
	return ProjectListItemDTO{
		ID:              p.ID(),
		ClientID:        p.ClientID(),
		Name:            p.Name(),
		Status:          p.Status().String(),
		CurrentPhaseID:  p.CurrentPhaseID(),
		DueDate:         p.DueDate(),
		ProgressPercent: project.ComputeProgress(phases),
		CreatedAt:       p.CreatedAt(),
	}
}

func ToTemplateDTO(t *project.PhaseTemplate) TemplateDTO {
	phases := make([]TemplatePhaseDTO, 0, len(t.Phases()))
	for _, phase := range t.Phases() {
		phases = append(phases, TemplatePhaseDTO{
			Name:        phase.Name,
			Description: phase.Description,
			OrderIndex:  phase.OrderIndex,
		})
	}

	return TemplateDTO{
		ID:          t.ID(),
		Name:        t.Name(),
		Description: t.Description(),
		IsDefault:   t.IsDefault(),
		Phases:      phases,
		CreatedAt:   t.CreatedAt(),
	}
}

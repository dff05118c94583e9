package project

import (
	"fmt"
	"time"

	vo "ddportal/internal/domain/project/valueobjects"
)

// Project is a client engagement tracked through an ordered set of phases.
type Project struct {
	id             uint
	clientID       uint
	name           string
	description    string
	status         vo.ProjectStatus
	currentPhaseID *uint
	startDate      *time.Time
	dueDate        *time.Time
	createdAt      time.Time
	updatedAt      time.Time
}

func NewProject(
	clientID uint,
	name string,
	description string,
	startDate *time.Time,
	dueDate *time.Time,
) (*Project, error) {
	if clientID == 0 {
		return nil, fmt.Errorf("client ID is required")
	}
	if name == "" {
		return nil, fmt.Errorf("project name is required")
	}

	now := time.Now()
	return &Project{
		clientID:    clientID,
		name:        name,
		description: description,
		status:      vo.ProjectStatusPlanning,
		startDate:   startDate,
		dueDate:     dueDate,
		createdAt:   now,
		updatedAt:   now,
	}, nil
}

func ReconstructProject(
	id uint,
	clientID uint,
	name string,
	description string,
	status vo.ProjectStatus,
	currentPhaseID *uint,
	startDate *time.Time,
	dueDate *time.Time,
	createdAt, updatedAt time.Time,
) (*Project, error) {
	if id == 0 {
		return nil, fmt.Errorf("project ID cannot be zero")
	}
	if clientID == 0 {
		return nil, fmt.Errorf("client ID is required")
	}

	return &Project{
		id:             id,
		clientID:       clientID,
		name:           name,
		description:    description,
		status:         status,
		currentPhaseID: currentPhaseID,
		startDate:      startDate,
		dueDate:        dueDate,
		createdAt:      createdAt,
		updatedAt:      updatedAt,
	}, nil
}

func (p *Project) ID() uint {
	return p.id
}

func (p *Project) ClientID() uint {
	return p.clientID
}

func (p *Project) Name() string {
	return p.name
}

func (p *Project) Description() string {
	return p.description
}

func (p *Project) Status() vo.ProjectStatus {
	return p.status
}

func (p *Project) CurrentPhaseID() *uint {
	return p.currentPhaseID
}

func (p *Project) StartDate() *time.Time {
	return p.startDate
}

func (p *Project) DueDate() *time.Time {
	return p.dueDate
}

func (p *Project) CreatedAt() time.Time {
	return p.createdAt
}

func (p *Project) UpdatedAt() time.Time {
	return p.updatedAt
}

func (p *Project) SetID(id uint) error {
	if p.id != 0 {
		return fmt.Errorf("project ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("project ID cannot be zero")
	}
	p.id = id
	return nil
}

func (p *Project) UpdateDetails(name, description string, startDate, dueDate *time.Time) error {
	if name == "" {
		return fmt.Errorf("project name is required")
	}

	p.name = name
	p.description = description
	p.startDate = startDate
	p.dueDate = dueDate
	p.updatedAt = time.Now()
	return nil
}

// SetStatus moves the project to any valid status. There is no transition
// graph for projects.
func (p *Project) SetStatus(status vo.ProjectStatus) error {
	if !status.IsValid() {
		return fmt.Errorf("invalid project status: %s", status)
	}

	p.status = status
	p.updatedAt = time.Now()
	return nil
}

// SetCurrentPhase points the project at the phase most recently moved to
// in_progress. It overwrites any previous pointer.
func (p *Project) SetCurrentPhase(phaseID uint) {
	p.currentPhaseID = &phaseID
	p.updatedAt = time.Now()
}

// ClearCurrentPhaseIf drops the current-phase pointer only when it still
// points at the given phase.
func (p *Project) ClearCurrentPhaseIf(phaseID uint) bool {
	if p.currentPhaseID == nil || *p.currentPhaseID != phaseID {
		return false
	}
	p.currentPhaseID = nil
	p.updatedAt = time.Now()
	return true
}

func (p *Project) BelongsToClient(clientID uint) bool {
	return p.clientID == clientID
}

package project

import (
	"fmt"
	"time"

	vo "ddportal/internal/domain/project/valueobjects"
)

// Phase is a step within a project. Phases carry an order index for display
// and progress reporting; the index does not constrain which phase may be
// worked on, so several phases can be in_progress at the same time.
type Phase struct {
	id          uint
	projectID   uint
	name        string
	description string
	status      vo.PhaseStatus
	orderIndex  int
	notes       string
	startedAt   *time.Time
	completedAt *time.Time
	createdAt   time.Time
	updatedAt   time.Time
}

func NewPhase(projectID uint, name, description string, orderIndex int) (*Phase, error) {
	if projectID == 0 {
		return nil, fmt.Errorf("project ID is required")
	}
	if name == "" {
		return nil, fmt.Errorf("phase name is required")
	}
	if orderIndex < 0 {
		return nil, fmt.Errorf("order index cannot be negative")
	}

	now := time.Now()
	return &Phase{
		projectID:   projectID,
		name:        name,
		description: description,
		status:      vo.PhaseStatusPending,
		orderIndex:  orderIndex,
		createdAt:   now,
		updatedAt:   now,
	}, nil
}

func ReconstructPhase(
	id uint,
	projectID uint,
	name string,
	description string,
	status vo.PhaseStatus,
	orderIndex int,
	notes string,
	startedAt *time.Time,
	completedAt *time.Time,
	createdAt, updatedAt time.Time,
) (*Phase, error) {
	if id == 0 {
		return nil, fmt.Errorf("phase ID cannot be zero")
	}
	if projectID == 0 {
		return nil, fmt.Errorf("project ID is required")
	}

	return &Phase{
		id:          id,
		projectID:   projectID,
		name:        name,
		description: description,
		status:      status,
		orderIndex:  orderIndex,
		notes:       notes,
		startedAt:   startedAt,
		completedAt: completedAt,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}, nil
}

func (p *Phase) ID() uint {
	return p.id
}

func (p *Phase) ProjectID() uint {
	return p.projectID
}

func (p *Phase) Name() string {
	return p.name
}

func (p *Phase) Description() string {
	return p.description
}

func (p *Phase) Status() vo.PhaseStatus {
	return p.status
}

func (p *Phase) OrderIndex() int {
	return p.orderIndex
}

func (p *Phase) Notes() string {
	return p.notes
}

func (p *Phase) StartedAt() *time.Time {
	return p.startedAt
}

func (p *Phase) CompletedAt() *time.Time {
	return p.completedAt
}

func (p *Phase) CreatedAt() time.Time {
	return p.createdAt
}

func (p *Phase) UpdatedAt() time.Time {
	return p.updatedAt
}

func (p *Phase) SetID(id uint) error {
	if p.id != 0 {
		return fmt.Errorf("phase ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("phase ID cannot be zero")
	}
	p.id = id
	return nil
}

// SetStatus moves the phase to any valid status. Timestamps are write-once:
// startedAt is stamped the first time the phase enters in_progress and
// completedAt the first time it enters completed; revisiting a status later
// never overwrites them.
func (p *Phase) SetStatus(status vo.PhaseStatus) error {
	if !status.IsValid() {
		return fmt.Errorf("invalid phase status: %s", status)
	}

	now := time.Now()
	if status.IsInProgress() && p.startedAt == nil {
		p.startedAt = &now
	}
	if status.IsCompleted() && p.completedAt == nil {
		p.completedAt = &now
	}

	p.status = status
	p.updatedAt = now
	return nil
}

func (p *Phase) UpdateDetails(name, description string) error {
	if name == "" {
		return fmt.Errorf("phase name is required")
	}

	p.name = name
	p.description = description
	p.updatedAt = time.Now()
	return nil
}

func (p *Phase) UpdateNotes(notes string) {
	p.notes = notes
	p.updatedAt = time.Now()
}

func (p *Phase) SetOrderIndex(orderIndex int) error {
	if orderIndex < 0 {
		return fmt.Errorf("order index cannot be negative")
	}

	p.orderIndex = orderIndex
	p.updatedAt = time.Now()
	return nil
}

// ComputeProgress reports the share of completed phases as a whole percent.
// A project with no phases is 0% complete. Skipped phases still count in the
// denominator.
func ComputeProgress(phases []*Phase) int {
	if len(phases) == 0 {
		return 0
	}

	completed := 0
	for _, phase := range phases {
		if phase.Status().IsCompleted() {
			completed++
		}
	}
	return completed * 100 / len(phases)
}

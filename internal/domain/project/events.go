package project

import (
	"strconv"
	"time"

	"ddportal/internal/domain/shared/events"
)

const EventTypePhaseStatusChanged = "project.phase_status_changed"

type PhaseStatusChangedEvent struct {
	events.BaseEvent
	ProjectID   uint   `json:"project_id"`
	ProjectName string `json:"project_name"`
	ClientID    uint   `json:"client_id"`
	PhaseID     uint   `json:"phase_id"`
	PhaseName   string `json:"phase_name"`
	OldStatus   string `json:"old_status"`
	NewStatus   string `json:"new_status"`
}

func NewPhaseStatusChangedEvent(p *Project, phase *Phase, oldStatus string) PhaseStatusChangedEvent {
	return PhaseStatusChangedEvent{
		BaseEvent: events.BaseEvent{
			AggregateID: strconv.FormatUint(uint64(p.ID()), 10),
			EventType:   EventTypePhaseStatusChanged,
			OccurredAt:  time.Now(),
		},
		ProjectID:   p.ID(),
		ProjectName: p.Name(),
		ClientID:    p.ClientID(),
		PhaseID:     phase.ID(),
		PhaseName:   phase.Name(),
		OldStatus:   oldStatus,
		NewStatus:   phase.Status().String(),
	}
}

package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ddportal/internal/domain/project"
	vo "ddportal/internal/domain/project/valueobjects"
	"ddportal/internal/domain/shared/events"
	"ddportal/internal/shared/errors"
)

func testProject(t *testing.T, currentPhaseID *uint) *project.Project {
	t.Helper()
	now := time.Now()
	p, err := project.ReconstructProject(
		10, 7,
		"Website redesign", "full rebuild",
		vo.ProjectStatusInProgress,
		currentPhaseID,
		nil, nil,
		now, now,
	)
	require.NoError(t, err)
	return p
}

func testPhase(t *testing.T, id uint, status vo.PhaseStatus, orderIndex int) *project.Phase {
	t.Helper()
	now := time.Now()
	var startedAt *time.Time
	if !status.IsPending() {
		startedAt = &now
	}
	phase, err := project.ReconstructPhase(
		id, 10,
		"Discovery", "",
		status,
		orderIndex,
		"",
		startedAt, nil,
		now, now,
	)
	require.NoError(t, err)
	return phase
}

func TestSetPhaseStatusUseCase_Execute_StartSetsCurrentPhase(t *testing.T) {
	phase := testPhase(t, 3, vo.PhaseStatusPending, 0)
	p := testProject(t, nil)

	repo := &mockProjectRepository{
		GetPhaseByIDFunc: func(ctx context.Context, id uint) (*project.Phase, error) {
			return phase, nil
		},
		GetByIDFunc: func(ctx context.Context, id uint) (*project.Project, error) {
			return p, nil
		},
	}

	var published events.DomainEvent
	dispatcher := &mockEventDispatcher{
		PublishFunc: func(event events.DomainEvent) error {
			published = event
			return nil
		},
	}

	uc := NewSetPhaseStatusUseCase(repo, &mockTxManager{}, dispatcher, &mockLogger{})
	result, err := uc.Execute(context.Background(), SetPhaseStatusCommand{
		PhaseID: 3,
		Status:  "in_progress",
		ActorID: 5,
	})

	require.NoError(t, err)
	assert.Equal(t, "in_progress", result.Status)
	require.NotNil(t, result.StartedAt)
	require.NotNil(t, result.CurrentPhaseID)
	assert.Equal(t, uint(3), *result.CurrentPhaseID)
	require.NotNil(t, published)
	assert.Equal(t, project.EventTypePhaseStatusChanged, published.GetEventType())
}

func TestSetPhaseStatusUseCase_Execute_RestartOverwritesCurrentPhase(t *testing.T) {
	// Another phase currently holds the marker; starting this one steals it.
	other := uint(2)
	phase := testPhase(t, 3, vo.PhaseStatusPending, 1)
	p := testProject(t, &other)

	repo := &mockProjectRepository{
		GetPhaseByIDFunc: func(ctx context.Context, id uint) (*project.Phase, error) {
			return phase, nil
		},
		GetByIDFunc: func(ctx context.Context, id uint) (*project.Project, error) {
			return p, nil
		},
	}

	uc := NewSetPhaseStatusUseCase(repo, &mockTxManager{}, &mockEventDispatcher{}, &mockLogger{})
	result, err := uc.Execute(context.Background(), SetPhaseStatusCommand{PhaseID: 3, Status: "in_progress", ActorID: 5})

	require.NoError(t, err)
	assert.Equal(t, uint(3), *result.CurrentPhaseID)
}

func TestSetPhaseStatusUseCase_Execute_CompleteKeepsOwnMarker(t *testing.T) {
	// The marker points at this phase; completing it leaves the pointer in
	// place. Only deleting a phase clears the marker.
	current := uint(3)
	phase := testPhase(t, 3, vo.PhaseStatusInProgress, 0)
	p := testProject(t, &current)

	var projectUpdated bool
	repo := &mockProjectRepository{
		GetPhaseByIDFunc: func(ctx context.Context, id uint) (*project.Phase, error) {
			return phase, nil
		},
		GetByIDFunc: func(ctx context.Context, id uint) (*project.Project, error) {
			return p, nil
		},
		UpdateFunc: func(ctx context.Context, p *project.Project) error {
			projectUpdated = true
			return nil
		},
	}

	uc := NewSetPhaseStatusUseCase(repo, &mockTxManager{}, &mockEventDispatcher{}, &mockLogger{})
	result, err := uc.Execute(context.Background(), SetPhaseStatusCommand{PhaseID: 3, Status: "completed", ActorID: 5})

	require.NoError(t, err)
	assert.Equal(t, "completed", result.Status)
	require.NotNil(t, result.CompletedAt)
	require.NotNil(t, result.CurrentPhaseID)
	assert.Equal(t, current, *result.CurrentPhaseID)
	assert.False(t, projectUpdated)
}

func TestSetPhaseStatusUseCase_Execute_CompleteLeavesForeignMarker(t *testing.T) {
	// Marker points at a different phase; completing this one leaves it alone.
	other := uint(2)
	phase := testPhase(t, 3, vo.PhaseStatusInProgress, 1)
	p := testProject(t, &other)

	var projectUpdated bool
	repo := &mockProjectRepository{
		GetPhaseByIDFunc: func(ctx context.Context, id uint) (*project.Phase, error) {
			return phase, nil
		},
		GetByIDFunc: func(ctx context.Context, id uint) (*project.Project, error) {
			return p, nil
		},
		UpdateFunc: func(ctx context.Context, p *project.Project) error {
			projectUpdated = true
			return nil
		},
	}

	uc := NewSetPhaseStatusUseCase(repo, &mockTxManager{}, &mockEventDispatcher{}, &mockLogger{})
	result, err := uc.Execute(context.Background(), SetPhaseStatusCommand{PhaseID: 3, Status: "completed", ActorID: 5})

	require.NoError(t, err)
	require.NotNil(t, result.CurrentPhaseID)
	assert.Equal(t, other, *result.CurrentPhaseID)
	assert.False(t, projectUpdated)
}

func TestSetPhaseStatusUseCase_Execute_TimestampsSurviveRevisit(t *testing.T) {
	started := time.Now().Add(-time.Hour)
	now := time.Now()
	phase, err := project.ReconstructPhase(3, 10, "Discovery", "", vo.PhaseStatusCompleted, 0, "", &started, &now, now, now)
	require.NoError(t, err)
	p := testProject(t, nil)

	repo := &mockProjectRepository{
		GetPhaseByIDFunc: func(ctx context.Context, id uint) (*project.Phase, error) {
			return phase, nil
		},
		GetByIDFunc: func(ctx context.Context, id uint) (*project.Project, error) {
			return p, nil
		},
	}

	uc := NewSetPhaseStatusUseCase(repo, &mockTxManager{}, &mockEventDispatcher{}, &mockLogger{})

	// Reopen and complete again: both timestamps keep their first values.
	_, err = uc.Execute(context.Background(), SetPhaseStatusCommand{PhaseID: 3, Status: "in_progress", ActorID: 5})
	require.NoError(t, err)
	result, err := uc.Execute(context.Background(), SetPhaseStatusCommand{PhaseID: 3, Status: "completed", ActorID: 5})
	require.NoError(t, err)

	assert.Equal(t, started.Unix(), result.StartedAt.Unix())
	assert.Equal(t, now.Unix(), result.CompletedAt.Unix())
}

func TestSetPhaseStatusUseCase_Execute_NotesStored(t *testing.T) {
	phase := testPhase(t, 3, vo.PhaseStatusPending, 0)
	p := testProject(t, nil)

	repo := &mockProjectRepository{
		GetPhaseByIDFunc: func(ctx context.Context, id uint) (*project.Phase, error) {
			return phase, nil
		},
		GetByIDFunc: func(ctx context.Context, id uint) (*project.Project, error) {
			return p, nil
		},
	}

	uc := NewSetPhaseStatusUseCase(repo, &mockTxManager{}, &mockEventDispatcher{}, &mockLogger{})
	_, err := uc.Execute(context.Background(), SetPhaseStatusCommand{
		PhaseID: 3,
		Status:  "skipped",
		Notes:   "descoped after kickoff",
		ActorID: 5,
	})

	require.NoError(t, err)
	assert.Equal(t, "descoped after kickoff", phase.Notes())
}

func TestSetPhaseStatusUseCase_Execute_InvalidStatus(t *testing.T) {
	uc := NewSetPhaseStatusUseCase(&mockProjectRepository{}, &mockTxManager{}, &mockEventDispatcher{}, &mockLogger{})
	_, err := uc.Execute(context.Background(), SetPhaseStatusCommand{PhaseID: 3, Status: "bogus", ActorID: 5})

	require.Error(t, err)
	assert.True(t, errors.IsValidationError(err))
}

func TestSetPhaseStatusUseCase_Execute_NoEventWhenStatusUnchanged(t *testing.T) {
	phase := testPhase(t, 3, vo.PhaseStatusInProgress, 0)
	current := uint(3)
	p := testProject(t, &current)

	eventCount := 0
	dispatcher := &mockEventDispatcher{
		PublishFunc: func(event events.DomainEvent) error {
			eventCount++
			return nil
		},
	}
	repo := &mockProjectRepository{
		GetPhaseByIDFunc: func(ctx context.Context, id uint) (*project.Phase, error) {
			return phase, nil
		},
		GetByIDFunc: func(ctx context.Context, id uint) (*project.Project, error) {
			return p, nil
		},
	}

	uc := NewSetPhaseStatusUseCase(repo, &mockTxManager{}, dispatcher, &mockLogger{})
	_, err := uc.Execute(context.Background(), SetPhaseStatusCommand{PhaseID: 3, Status: "in_progress", ActorID: 5})

	require.NoError(t, err)
	assert.Zero(t, eventCount)
}

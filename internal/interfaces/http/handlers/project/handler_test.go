package project

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	projectdto "ddportal/internal/application/project/dto"
	"ddportal/internal/application/project/usecases"
	"ddportal/internal/interfaces/http/handlers/testutil"
	"ddportal/internal/shared/errors"
)

type mockCreateProjectUC struct {
	result *usecases.CreateProjectResult
	err    error
	gotCmd usecases.CreateProjectCommand
}

func (m *mockCreateProjectUC) Execute(_ context.Context, cmd usecases.CreateProjectCommand) (*usecases.CreateProjectResult, error) {
	m.gotCmd = cmd
	return m.result, m.err
}

type mockGetProjectUC struct {
	result *projectdto.ProjectDTO
	err    error
}

func (m *mockGetProjectUC) Execute(_ context.Context, _ usecases.GetProjectQuery) (*projectdto.ProjectDTO, error) {
	return m.result, m.err
}

type mockSetPhaseStatusUC struct {
	result *usecases.SetPhaseStatusResult
	err    error
	gotCmd usecases.SetPhaseStatusCommand
}

func (m *mockSetPhaseStatusUC) Execute(_ context.Context, cmd usecases.SetPhaseStatusCommand) (*usecases.SetPhaseStatusResult, error) {
	m.gotCmd = cmd
	return m.result, m.err
}

type mockReorderPhasesUC struct {
	err    error
	gotCmd usecases.ReorderPhasesCommand
}

func (m *mockReorderPhasesUC) Execute(_ context.Context, cmd usecases.ReorderPhasesCommand) error {
	m.gotCmd = cmd
	return m.err
}

type mockApplyTemplateUC struct {
	result *usecases.ApplyPhaseTemplateResult
	err    error
}

func (m *mockApplyTemplateUC) Execute(_ context.Context, _ usecases.ApplyPhaseTemplateCommand) (*usecases.ApplyPhaseTemplateResult, error) {
	return m.result, m.err
}

type mockCreateTemplateUC struct {
	result *usecases.CreateTemplateResult
	err    error
	gotCmd usecases.CreateTemplateCommand
}

func (m *mockCreateTemplateUC) Execute(_ context.Context, cmd usecases.CreateTemplateCommand) (*usecases.CreateTemplateResult, error) {
	m.gotCmd = cmd
	return m.result, m.err
}

type testDeps struct {
	createProjectUC  usecases.CreateProjectExecutor
	getProjectUC     usecases.GetProjectExecutor
	setPhaseStatusUC usecases.SetPhaseStatusExecutor
	reorderPhasesUC  usecases.ReorderPhasesExecutor
	applyTemplateUC  usecases.ApplyPhaseTemplateExecutor
	createTemplateUC usecases.CreateTemplateExecutor
}

func newTestProjectHandler(deps testDeps) *ProjectHandler {
	return NewProjectHandler(
		deps.createProjectUC,
		deps.getProjectUC,
		nil,
		nil,
		nil,
		nil,
		deps.setPhaseStatusUC,
		nil,
		nil,
		deps.reorderPhasesUC,
		deps.applyTemplateUC,
		deps.createTemplateUC,
		nil,
	)
}

func TestProjectHandler_CreateProject_WithTemplate(t *testing.T) {
	mockUC := &mockCreateProjectUC{
		result: &usecases.CreateProjectResult{ProjectID: 10, Status: "active", PhaseCount: 4},
	}
	handler := newTestProjectHandler(testDeps{createProjectUC: mockUC})

	templateID := uint(2)
	reqBody := CreateProjectRequest{
		ClientID:   7,
		Name:       "Website Redesign",
		TemplateID: &templateID,
	}
	c, w := testutil.NewTestContext(http.MethodPost, "/projects", reqBody)
	testutil.SetAdminContext(c, 1)

	handler.CreateProject(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	require.NotNil(t, mockUC.gotCmd.TemplateID)
	assert.Equal(t, uint(2), *mockUC.gotCmd.TemplateID)
	assert.Equal(t, uint(7), mockUC.gotCmd.ClientID)
}

func TestProjectHandler_CreateProject_MissingClient(t *testing.T) {
	handler := newTestProjectHandler(testDeps{})

	reqBody := map[string]string{"name": "No client"}
	c, w := testutil.NewTestContext(http.MethodPost, "/projects", reqBody)
	testutil.SetAdminContext(c, 1)

	handler.CreateProject(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestProjectHandler_GetProject_CrossTenantHidden(t *testing.T) {
	mockUC := &mockGetProjectUC{err: errors.NewNotFoundError("project not found")}
	handler := newTestProjectHandler(testDeps{getProjectUC: mockUC})

	c, w := testutil.NewTestContext(http.MethodGet, "/projects/10", nil)
	testutil.SetClientContext(c, 3, 8)
	testutil.SetURLParam(c, "id", "10")

	handler.GetProject(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestProjectHandler_SetPhaseStatus_Success(t *testing.T) {
	mockUC := &mockSetPhaseStatusUC{
		result: &usecases.SetPhaseStatusResult{PhaseID: 4, Status: "in_progress"},
	}
	handler := newTestProjectHandler(testDeps{setPhaseStatusUC: mockUC})

	reqBody := SetPhaseStatusRequest{Status: "in_progress", Notes: "kickoff done"}
	c, w := testutil.NewTestContext(http.MethodPut, "/phases/4/status", reqBody)
	testutil.SetAdminContext(c, 1)
	testutil.SetURLParam(c, "id", "4")

	handler.SetPhaseStatus(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, uint(4), mockUC.gotCmd.PhaseID)
	assert.Equal(t, "in_progress", mockUC.gotCmd.Status)
	assert.Equal(t, "kickoff done", mockUC.gotCmd.Notes)
}

func TestProjectHandler_ReorderPhases_Success(t *testing.T) {
	mockUC := &mockReorderPhasesUC{}
	handler := newTestProjectHandler(testDeps{reorderPhasesUC: mockUC})

	reqBody := ReorderPhasesRequest{PhaseIDs: []uint{3, 1, 2}}
	c, w := testutil.NewTestContext(http.MethodPut, "/projects/10/phases/order", reqBody)
	testutil.SetAdminContext(c, 1)
	testutil.SetURLParam(c, "id", "10")

	handler.ReorderPhases(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, []uint{3, 1, 2}, mockUC.gotCmd.PhaseIDs)
}

func TestProjectHandler_ApplyTemplate_Success(t *testing.T) {
	mockUC := &mockApplyTemplateUC{
		result: &usecases.ApplyPhaseTemplateResult{ProjectID: 10, PhaseCount: 2},
	}
	handler := newTestProjectHandler(testDeps{applyTemplateUC: mockUC})

	reqBody := ApplyTemplateRequest{TemplateID: 2}
	c, w := testutil.NewTestContext(http.MethodPost, "/projects/10/phases/apply-template", reqBody)
	testutil.SetAdminContext(c, 1)
	testutil.SetURLParam(c, "id", "10")

	handler.ApplyTemplate(c)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestProjectHandler_ApplyTemplate_TemplateNotFound(t *testing.T) {
	mockUC := &mockApplyTemplateUC{
		err: errors.NewNotFoundError("phase template not found"),
	}
	handler := newTestProjectHandler(testDeps{applyTemplateUC: mockUC})

	reqBody := ApplyTemplateRequest{TemplateID: 99}
	c, w := testutil.NewTestContext(http.MethodPost, "/projects/10/phases/apply-template", reqBody)
	testutil.SetAdminContext(c, 1)
	testutil.SetURLParam(c, "id", "10")

	handler.ApplyTemplate(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestProjectHandler_CreateTemplate_Success(t *testing.T) {
	mockUC := &mockCreateTemplateUC{
		result: &usecases.CreateTemplateResult{TemplateID: 2, PhaseCount: 2},
	}
	handler := newTestProjectHandler(testDeps{createTemplateUC: mockUC})

	reqBody := CreateTemplateRequest{
		Name:      "Standard Website",
		IsDefault: true,
		Phases: []TemplatePhaseRequest{
			{Name: "Discovery", OrderIndex: 0},
			{Name: "Build", OrderIndex: 1},
		},
	}
	c, w := testutil.NewTestContext(http.MethodPost, "/phase-templates", reqBody)
	testutil.SetAdminContext(c, 1)

	handler.CreateTemplate(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.True(t, mockUC.gotCmd.IsDefault)
	require.Len(t, mockUC.gotCmd.Phases, 2)
	assert.Equal(t, "Discovery", mockUC.gotCmd.Phases[0].Name)
}

func TestProjectHandler_CreateTemplate_NoPhases(t *testing.T) {
	handler := newTestProjectHandler(testDeps{})

	reqBody := map[string]interface{}{"name": "Empty"}
	c, w := testutil.NewTestContext(http.MethodPost, "/phase-templates", reqBody)
	testutil.SetAdminContext(c, 1)

	handler.CreateTemplate(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

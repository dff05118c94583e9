package client

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	clientdto "ddportal/internal/application/client/dto"
	"ddportal/internal/application/client/usecases"
	"ddportal/internal/interfaces/http/handlers/testutil"
	"ddportal/internal/shared/errors"
)

type mockCreateClientUC struct {
	result *usecases.CreateClientResult
	err    error
	gotCmd usecases.CreateClientCommand
}

func (m *mockCreateClientUC) Execute(_ context.Context, cmd usecases.CreateClientCommand) (*usecases.CreateClientResult, error) {
	m.gotCmd = cmd
	return m.result, m.err
}

type mockGetClientUC struct {
	result   *clientdto.ClientDTO
	err      error
	gotQuery usecases.GetClientQuery
}

func (m *mockGetClientUC) Execute(_ context.Context, query usecases.GetClientQuery) (*clientdto.ClientDTO, error) {
	m.gotQuery = query
	return m.result, m.err
}

type mockArchiveClientUC struct {
	err error
}

func (m *mockArchiveClientUC) Execute(_ context.Context, _ usecases.ArchiveClientCommand) error {
	return m.err
}

type mockResetSupportCycleUC struct {
	result *usecases.ResetSupportCycleResult
	err    error
	gotCmd usecases.ResetSupportCycleCommand
}

func (m *mockResetSupportCycleUC) Execute(_ context.Context, cmd usecases.ResetSupportCycleCommand) (*usecases.ResetSupportCycleResult, error) {
	m.gotCmd = cmd
	return m.result, m.err
}

type testDeps struct {
	createClientUC      usecases.CreateClientExecutor
	getClientUC         usecases.GetClientExecutor
	archiveClientUC     usecases.ArchiveClientExecutor
	resetSupportCycleUC usecases.ResetSupportCycleExecutor
}

func newTestClientHandler(deps testDeps) *ClientHandler {
	return NewClientHandler(
		deps.createClientUC,
		deps.getClientUC,
		nil,
		nil,
		deps.archiveClientUC,
		deps.resetSupportCycleUC,
	)
}

func TestClientHandler_CreateClient_Success(t *testing.T) {
	mockUC := &mockCreateClientUC{
		result: &usecases.CreateClientResult{ClientID: 7, Status: "active", CreatedAt: time.Now().UTC()},
	}
	handler := newTestClientHandler(testDeps{createClientUC: mockUC})

	reqBody := CreateClientRequest{
		CompanyName:            "Acme Corp",
		ContactEmail:           "ops@acme.test",
		SupportMinutesPerMonth: 600,
	}
	c, w := testutil.NewTestContext(http.MethodPost, "/clients", reqBody)
	testutil.SetAdminContext(c, 1)

	handler.CreateClient(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "Acme Corp", mockUC.gotCmd.CompanyName)
	assert.Equal(t, 600, mockUC.gotCmd.SupportMinutesPerMonth)
	// No billing cycle start in the body means the cycle starts now.
	assert.False(t, mockUC.gotCmd.BillingCycleStart.IsZero())
}

func TestClientHandler_CreateClient_InvalidEmail(t *testing.T) {
	handler := newTestClientHandler(testDeps{})

	reqBody := CreateClientRequest{
		CompanyName:  "Acme Corp",
		ContactEmail: "not-an-email",
	}
	c, w := testutil.NewTestContext(http.MethodPost, "/clients", reqBody)
	testutil.SetAdminContext(c, 1)

	handler.CreateClient(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestClientHandler_CreateClient_DuplicateEmail(t *testing.T) {
	mockUC := &mockCreateClientUC{
		err: errors.NewConflictError("a client with this contact email already exists"),
	}
	handler := newTestClientHandler(testDeps{createClientUC: mockUC})

	reqBody := CreateClientRequest{
		CompanyName:  "Acme Corp",
		ContactEmail: "ops@acme.test",
	}
	c, w := testutil.NewTestContext(http.MethodPost, "/clients", reqBody)
	testutil.SetAdminContext(c, 1)

	handler.CreateClient(c)

	assert.Equal(t, http.StatusConflict, w.Code)

	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))
	require.NotNil(t, resp.Error)
	assert.Equal(t, "conflict", resp.Error.Type)
}

func TestClientHandler_GetClient_PassesActor(t *testing.T) {
	mockUC := &mockGetClientUC{result: &clientdto.ClientDTO{}}
	handler := newTestClientHandler(testDeps{getClientUC: mockUC})

	c, w := testutil.NewTestContext(http.MethodGet, "/clients/7", nil)
	testutil.SetClientContext(c, 3, 7)
	testutil.SetURLParam(c, "id", "7")

	handler.GetClient(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, uint(7), mockUC.gotQuery.ClientID)
	assert.Equal(t, uint(7), mockUC.gotQuery.ActorClientID)
}

func TestClientHandler_GetClient_ForbiddenForOtherTenant(t *testing.T) {
	mockUC := &mockGetClientUC{err: errors.NewForbiddenError("access denied")}
	handler := newTestClientHandler(testDeps{getClientUC: mockUC})

	c, w := testutil.NewTestContext(http.MethodGet, "/clients/9", nil)
	testutil.SetClientContext(c, 3, 7)
	testutil.SetURLParam(c, "id", "9")

	handler.GetClient(c)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestClientHandler_ArchiveClient_NoContent(t *testing.T) {
	handler := newTestClientHandler(testDeps{archiveClientUC: &mockArchiveClientUC{}})

	c, w := testutil.NewTestContext(http.MethodDelete, "/clients/7", nil)
	testutil.SetAdminContext(c, 1)
	testutil.SetURLParam(c, "id", "7")

	handler.ArchiveClient(c)
	// Flush the buffered status to the recorder, as gin's engine does after handlers.
	c.Writer.WriteHeaderNow()

	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestClientHandler_ResetSupportCycle_EmptyBody(t *testing.T) {
	mockUC := &mockResetSupportCycleUC{
		result: &usecases.ResetSupportCycleResult{ClientID: 7, RemainingSupportMinutes: 600},
	}
	handler := newTestClientHandler(testDeps{resetSupportCycleUC: mockUC})

	c, w := testutil.NewTestContext(http.MethodPost, "/clients/7/support-cycle/reset", nil)
	testutil.SetAdminContext(c, 1)
	testutil.SetURLParam(c, "id", "7")

	handler.ResetSupportCycle(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, uint(7), mockUC.gotCmd.ClientID)
	assert.True(t, mockUC.gotCmd.CycleStart.IsZero())
}

func TestClientHandler_ResetSupportCycle_ExplicitStart(t *testing.T) {
	mockUC := &mockResetSupportCycleUC{
		result: &usecases.ResetSupportCycleResult{ClientID: 7, RemainingSupportMinutes: 600},
	}
	handler := newTestClientHandler(testDeps{resetSupportCycleUC: mockUC})

	start := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	reqBody := ResetSupportCycleRequest{CycleStart: &start}
	c, w := testutil.NewTestContext(http.MethodPost, "/clients/7/support-cycle/reset", reqBody)
	testutil.SetAdminContext(c, 1)
	testutil.SetURLParam(c, "id", "7")

	handler.ResetSupportCycle(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, mockUC.gotCmd.CycleStart.Equal(start))
}

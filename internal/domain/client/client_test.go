package client

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	vo "ddportal/internal/domain/client/valueobjects"
)

func newTestClient(t *testing.T) *Client {
	t.Helper()
	c, err := NewClient("Acme Corp", "ops@acme.test", 600, time.Now())
	require.NoError(t, err)
	return c
}

func TestNewClient(t *testing.T) {
	c := newTestClient(t)

	assert.Equal(t, "Acme Corp", c.CompanyName())
	assert.Equal(t, "ops@acme.test", c.ContactEmail())
	assert.Equal(t, vo.StatusActive, c.Status())
	assert.Equal(t, 600, c.SupportHoursPerMonth())
	assert.Zero(t, c.HoursUsedThisMonth())
	assert.False(t, c.SupportBillingCycleStart().IsZero())
}

func TestNewClient_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		company string
		email   string
		minutes int
	}{
		{"empty company name", "", "a@b.test", 60},
		{"whitespace company name", "   ", "a@b.test", 60},
		{"empty email", "Acme", "", 60},
		{"negative allocation", "Acme", "a@b.test", -1},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			c, err := NewClient(tc.company, tc.email, tc.minutes, time.Now())
			require.Error(t, err)
			assert.Nil(t, c)
		})
	}
}

func TestClient_ConsumeSupportMinutes(t *testing.T) {
	c := newTestClient(t)

	require.NoError(t, c.ConsumeSupportMinutes(90))
	assert.Equal(t, 90, c.HoursUsedThisMonth())

	require.NoError(t, c.ConsumeSupportMinutes(30))
	assert.Equal(t, 120, c.HoursUsedThisMonth())
	assert.Equal(t, 480, c.RemainingSupportMinutes())
}

func TestClient_ConsumeSupportMinutes_NoUpperBound(t *testing.T) {
	c := newTestClient(t)

	require.NoError(t, c.ConsumeSupportMinutes(900))
	assert.Equal(t, 900, c.HoursUsedThisMonth(), "usage may exceed the allocation")
	assert.Equal(t, -300, c.RemainingSupportMinutes(), "remaining balance goes negative")
}

func TestClient_ConsumeSupportMinutes_NonPositive(t *testing.T) {
	c := newTestClient(t)

	require.Error(t, c.ConsumeSupportMinutes(0))
	require.Error(t, c.ConsumeSupportMinutes(-10))
	assert.Zero(t, c.HoursUsedThisMonth())
}

func TestClient_ApplySupportDelta(t *testing.T) {
	c := newTestClient(t)
	require.NoError(t, c.ConsumeSupportMinutes(100))

	// An edit from 100 to 40 minutes applies a -60 delta.
	c.ApplySupportDelta(-60)
	assert.Equal(t, 40, c.HoursUsedThisMonth())

	c.ApplySupportDelta(20)
	assert.Equal(t, 60, c.HoursUsedThisMonth())
}

func TestClient_ReleaseSupportMinutes_FloorsAtZero(t *testing.T) {
	c := newTestClient(t)
	require.NoError(t, c.ConsumeSupportMinutes(30))

	c.ReleaseSupportMinutes(50)
	assert.Zero(t, c.HoursUsedThisMonth(), "release never drives usage negative")
}

func TestClient_ReleaseSupportMinutes(t *testing.T) {
	c := newTestClient(t)
	require.NoError(t, c.ConsumeSupportMinutes(120))

	c.ReleaseSupportMinutes(45)
	assert.Equal(t, 75, c.HoursUsedThisMonth())
}

func TestClient_ResetSupportCycle(t *testing.T) {
	c := newTestClient(t)
	require.NoError(t, c.ConsumeSupportMinutes(300))

	cycleStart := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	c.ResetSupportCycle(cycleStart)

	assert.Zero(t, c.HoursUsedThisMonth())
	assert.Equal(t, cycleStart, c.SupportBillingCycleStart())
	assert.Equal(t, 600, c.SupportHoursPerMonth(), "allocation is untouched by a cycle reset")
}

func TestClient_SetSupportAllocation(t *testing.T) {
	c := newTestClient(t)

	require.NoError(t, c.SetSupportAllocation(1200))
	assert.Equal(t, 1200, c.SupportHoursPerMonth())

	require.Error(t, c.SetSupportAllocation(-1))
	assert.Equal(t, 1200, c.SupportHoursPerMonth())
}

func TestClient_ChangeStatus(t *testing.T) {
	c := newTestClient(t)

	require.NoError(t, c.ChangeStatus(vo.StatusArchived))
	assert.Equal(t, vo.StatusArchived, c.Status())

	require.Error(t, c.ChangeStatus(vo.Status("bogus")))
	assert.Equal(t, vo.StatusArchived, c.Status())
}

func TestClient_UpdateProfile(t *testing.T) {
	c := newTestClient(t)

	require.NoError(t, c.UpdateProfile("Acme Holdings", "billing@acme.test"))
	assert.Equal(t, "Acme Holdings", c.CompanyName())
	assert.Equal(t, "billing@acme.test", c.ContactEmail())

	require.Error(t, c.UpdateProfile("", "billing@acme.test"))
	require.Error(t, c.UpdateProfile("Acme", ""))
}

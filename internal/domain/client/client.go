package client

import (
	"fmt"
	"strings"
	"time"

	vo "ddportal/internal/domain/client/valueobjects"
)

// Client is a tenant organization of the agency. Support hour fields are
// tracked in minutes: supportHoursPerMonth is the monthly allocation and
// hoursUsedThisMonth is a running counter kept in sync with ticket time
// entries by the application layer.
type Client struct {
	id                       uint
	companyName              string
	contactEmail             string
	status                   vo.Status
	supportHoursPerMonth     int
	hoursUsedThisMonth       int
	supportBillingCycleStart time.Time
	createdAt                time.Time
	updatedAt                time.Time
}

func NewClient(companyName, contactEmail string, supportHoursPerMonth int, cycleStart time.Time) (*Client, error) {
	if len(strings.TrimSpace(companyName)) == 0 {
		return nil, fmt.Errorf("company name is required")
	}
	if len(companyName) > 200 {
		return nil, fmt.Errorf("company name exceeds maximum length of 200 characters")
	}
	if len(strings.TrimSpace(contactEmail)) == 0 {
		return nil, fmt.Errorf("contact email is required")
	}
	if supportHoursPerMonth < 0 {
		return nil, fmt.Errorf("support hours allocation cannot be negative")
	}
	if cycleStart.IsZero() {
		cycleStart = time.Now()
	}

	now := time.Now()
	return &Client{
		companyName:              companyName,
		contactEmail:             contactEmail,
		status:                   vo.StatusActive,
		supportHoursPerMonth:     supportHoursPerMonth,
		hoursUsedThisMonth:       0,
		supportBillingCycleStart: cycleStart,
		createdAt:                now,
		updatedAt:                now,
	}, nil
}

func ReconstructClient(
	id uint,
	companyName string,
	contactEmail string,
	status vo.Status,
	supportHoursPerMonth int,
	hoursUsedThisMonth int,
	supportBillingCycleStart time.Time,
	createdAt, updatedAt time.Time,
) (*Client, error) {
	if id == 0 {
		return nil, fmt.Errorf("client ID cannot be zero")
	}
	if len(companyName) == 0 {
		return nil, fmt.Errorf("company name is required")
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid client status")
	}

	return &Client{
		id:                       id,
		companyName:              companyName,
		contactEmail:             contactEmail,
		status:                   status,
		supportHoursPerMonth:     supportHoursPerMonth,
		hoursUsedThisMonth:       hoursUsedThisMonth,
		supportBillingCycleStart: supportBillingCycleStart,
		createdAt:                createdAt,
		updatedAt:                updatedAt,
	}, nil
}

func (c *Client) ID() uint {
	return c.id
}

func (c *Client) CompanyName() string {
	return c.companyName
}

func (c *Client) ContactEmail() string {
	return c.contactEmail
}

func (c *Client) Status() vo.Status {
	return c.status
}

func (c *Client) SupportHoursPerMonth() int {
	return c.supportHoursPerMonth
}

func (c *Client) HoursUsedThisMonth() int {
	return c.hoursUsedThisMonth
}

func (c *Client) SupportBillingCycleStart() time.Time {
	return c.supportBillingCycleStart
}

func (c *Client) CreatedAt() time.Time {
	return c.createdAt
}

func (c *Client) UpdatedAt() time.Time {
	return c.updatedAt
}

func (c *Client) SetID(id uint) error {
	if c.id != 0 {
		return fmt.Errorf("client ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("client ID cannot be zero")
	}
	c.id = id
	return nil
}

func (c *Client) UpdateProfile(companyName, contactEmail string) error {
	if len(strings.TrimSpace(companyName)) == 0 {
		return fmt.Errorf("company name is required")
	}
	if len(strings.TrimSpace(contactEmail)) == 0 {
		return fmt.Errorf("contact email is required")
	}

	c.companyName = companyName
	c.contactEmail = contactEmail
	c.updatedAt = time.Now()
	return nil
}

func (c *Client) ChangeStatus(newStatus vo.Status) error {
	if !newStatus.IsValid() {
		return fmt.Errorf("invalid client status: %s", newStatus)
	}

	c.status = newStatus
	c.updatedAt = time.Now()
	return nil
}

func (c *Client) SetSupportAllocation(minutesPerMonth int) error {
	if minutesPerMonth < 0 {
		return fmt.Errorf("support hours allocation cannot be negative")
	}

	c.supportHoursPerMonth = minutesPerMonth
	c.updatedAt = time.Now()
	return nil
}

// ConsumeSupportMinutes adds logged minutes to the monthly counter. The
// counter has no upper bound: a client may go over allocation, which shows
// up as a negative remaining balance.
func (c *Client) ConsumeSupportMinutes(minutes int) error {
	if minutes <= 0 {
		return fmt.Errorf("minutes must be positive")
	}

	c.hoursUsedThisMonth += minutes
	c.updatedAt = time.Now()
	return nil
}

// ApplySupportDelta adjusts the counter when an existing time entry is
// edited. delta is newMinutes - oldMinutes and may be negative.
func (c *Client) ApplySupportDelta(delta int) {
	c.hoursUsedThisMonth += delta
	c.updatedAt = time.Now()
}

// ReleaseSupportMinutes subtracts minutes when a counted time entry is
// deleted. The counter is floored at zero.
func (c *Client) ReleaseSupportMinutes(minutes int) {
	c.hoursUsedThisMonth -= minutes
	if c.hoursUsedThisMonth < 0 {
		c.hoursUsedThisMonth = 0
	}
	c.updatedAt = time.Now()
}

// RemainingSupportMinutes is computed on read and may be negative when a
// client is over allocation.
func (c *Client) RemainingSupportMinutes() int {
	return c.supportHoursPerMonth - c.hoursUsedThisMonth
}

// ResetSupportCycle zeroes the usage counter and records the start of the
// new billing cycle.
func (c *Client) ResetSupportCycle(cycleStart time.Time) {
	if cycleStart.IsZero() {
		cycleStart = time.Now()
	}
	c.hoursUsedThisMonth = 0
	c.supportBillingCycleStart = cycleStart
	c.updatedAt = time.Now()
}

package client

import (
	"context"

	vo "ddportal/internal/domain/client/valueobjects"
)

type Repository interface {
	Save(ctx context.Context, client *Client) error
	Update(ctx context.Context, client *Client) error
	// SoftDelete marks a client as deleted; the row is retained.
	SoftDelete(ctx context.Context, clientID uint) error
	GetByID(ctx context.Context, clientID uint) (*Client, error)
	List(ctx context.Context, filter Filter) ([]*Client, int64, error)

	// AddSupportMinutesUsed applies a delta to hours_used_this_month as a
	// single column-arithmetic UPDATE so concurrent time logging never loses
	// an increment. Negative deltas are allowed.
	AddSupportMinutesUsed(ctx context.Context, clientID uint, deltaMinutes int) error
	// ReleaseSupportMinutesUsed subtracts minutes from hours_used_this_month,
	// flooring the column at zero.
	ReleaseSupportMinutesUsed(ctx context.Context, clientID uint, minutes int) error
}

type Filter struct {
	Status   *vo.Status
	Search   string
	Page     int
	PageSize int
}

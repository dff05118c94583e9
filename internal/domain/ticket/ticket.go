package ticket

import (
	"fmt"
	"strings"
	"time"

	vo "ddportal/internal/domain/ticket/valueobjects"
)

type Ticket struct {
	id               uint
	clientID         uint
	projectID        *uint
	title            string
	description      string
	ticketType       vo.TicketType
	priority         vo.Priority
	status           vo.TicketStatus
	createdBy        uint
	assignedTo       *uint
	assignedAt       *time.Time
	resolvedAt       *time.Time
	resolvedBy       *uint
	resolution       string
	timeSpentMinutes int
	linearIssueID    string
	linearIssueURL   string
	createdAt        time.Time
	updatedAt        time.Time
	comments         []*Comment
}

func NewTicket(
	clientID uint,
	projectID *uint,
	title string,
	description string,
	ticketType vo.TicketType,
	priority vo.Priority,
	createdBy uint,
) (*Ticket, error) {
	if clientID == 0 {
		return nil, fmt.Errorf("client ID is required")
	}
	if len(strings.TrimSpace(title)) == 0 {
		return nil, fmt.Errorf("title is required")
	}
	if len(title) > 200 {
		return nil, fmt.Errorf("title exceeds maximum length of 200 characters")
	}
	if len(description) > 5000 {
		return nil, fmt.Errorf("description exceeds maximum length of 5000 characters")
	}
	if !ticketType.IsValid() {
		return nil, fmt.Errorf("invalid ticket type")
	}
	if !priority.IsValid() {
		return nil, fmt.Errorf("invalid priority")
	}
	if createdBy == 0 {
		return nil, fmt.Errorf("creator ID is required")
	}

	now := time.Now()
	return &Ticket{
		clientID:    clientID,
		projectID:   projectID,
		title:       title,
		description: description,
		ticketType:  ticketType,
		priority:    priority,
		status:      vo.StatusOpen,
		createdBy:   createdBy,
		createdAt:   now,
		updatedAt:   now,
		comments:    []*Comment{},
	}, nil
}

func ReconstructTicket(
	id uint,
	clientID uint,
	projectID *uint,
	title string,
	description string,
	ticketType vo.TicketType,
	priority vo.Priority,
	status vo.TicketStatus,
	createdBy uint,
	assignedTo *uint,
	assignedAt *time.Time,
	resolvedAt *time.Time,
	resolvedBy *uint,
	resolution string,
	timeSpentMinutes int,
	linearIssueID string,
	linearIssueURL string,
	createdAt, updatedAt time.Time,
) (*Ticket, error) {
	if id == 0 {
		return nil, fmt.Errorf("ticket ID cannot be zero")
	}
	if clientID == 0 {
		return nil, fmt.Errorf("client ID is required")
	}
	if len(title) == 0 {
		return nil, fmt.Errorf("title is required")
	}
	if !ticketType.IsValid() {
		return nil, fmt.Errorf("invalid ticket type")
	}
	if !priority.IsValid() {
		return nil, fmt.Errorf("invalid priority")
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid status")
	}

	return &Ticket{
		id:               id,
		clientID:         clientID,
		projectID:        projectID,
		title:            title,
		description:      description,
		ticketType:       ticketType,
		priority:         priority,
		status:           status,
		createdBy:        createdBy,
		assignedTo:       assignedTo,
		assignedAt:       assignedAt,
		resolvedAt:       resolvedAt,
		resolvedBy:       resolvedBy,
		resolution:       resolution,
		timeSpentMinutes: timeSpentMinutes,
		linearIssueID:    linearIssueID,
		linearIssueURL:   linearIssueURL,
		createdAt:        createdAt,
		updatedAt:        updatedAt,
		comments:         []*Comment{},
	}, nil
}

func (t *Ticket) ID() uint {
	return t.id
}

func (t *Ticket) ClientID() uint {
	return t.clientID
}

func (t *Ticket) ProjectID() *uint {
	return t.projectID
}

func (t *Ticket) Title() string {
	return t.title
}

func (t *Ticket) Description() string {
	return t.description
}

func (t *Ticket) Type() vo.TicketType {
	return t.ticketType
}

func (t *Ticket) Priority() vo.Priority {
	return t.priority
}

func (t *Ticket) Status() vo.TicketStatus {
	return t.status
}

func (t *Ticket) CreatedBy() uint {
	return t.createdBy
}

func (t *Ticket) AssignedTo() *uint {
	return t.assignedTo
}

func (t *Ticket) AssignedAt() *time.Time {
	return t.assignedAt
}

func (t *Ticket) ResolvedAt() *time.Time {
	return t.resolvedAt
}

func (t *Ticket) ResolvedBy() *uint {
	return t.resolvedBy
}

func (t *Ticket) Resolution() string {
	return t.resolution
}

func (t *Ticket) TimeSpentMinutes() int {
	return t.timeSpentMinutes
}

func (t *Ticket) LinearIssueID() string {
	return t.linearIssueID
}

func (t *Ticket) LinearIssueURL() string {
	return t.linearIssueURL
}

func (t *Ticket) CreatedAt() time.Time {
	return t.createdAt
}

func (t *Ticket) UpdatedAt() time.Time {
	return t.updatedAt
}

func (t *Ticket) Comments() []*Comment {
	commentsCopy := make([]*Comment, len(t.comments))
	copy(commentsCopy, t.comments)
	return commentsCopy
}

func (t *Ticket) SetID(id uint) error {
	if t.id != 0 {
		return fmt.Errorf("ticket ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("ticket ID cannot be zero")
	}
	t.id = id
	return nil
}

// Claim assigns the ticket to the caller. Only an unassigned open ticket can
// be claimed; the status itself does not change.
func (t *Ticket) Claim(userID uint) error {
	if userID == 0 {
		return fmt.Errorf("user ID is required")
	}
	if t.assignedTo != nil {
		return ErrAlreadyAssigned
	}
	if !t.status.IsOpen() {
		return ErrNotClaimable
	}

	now := time.Now()
	t.assignedTo = &userID
	t.assignedAt = &now
	t.updatedAt = now
	return nil
}

// Unclaim releases the assignment. Only the current assignee may unclaim,
// and not once the ticket is resolved or closed.
func (t *Ticket) Unclaim(userID uint) error {
	if t.assignedTo == nil || *t.assignedTo != userID {
		return ErrNotAssignee
	}
	if t.status.IsFinal() {
		return ErrFinalized
	}

	t.assignedTo = nil
	t.assignedAt = nil
	t.updatedAt = time.Now()
	return nil
}

// Resolve finalizes the ticket. Resolution text is mandatory. When close is
// true the ticket goes straight to closed. Resolution is irreversible
// through the exposed API.
func (t *Ticket) Resolve(resolution string, resolvedBy uint, close bool) error {
	if len(strings.TrimSpace(resolution)) == 0 {
		return ErrResolutionRequired
	}
	if t.status.IsFinal() {
		return ErrFinalized
	}

	now := time.Now()
	t.resolution = resolution
	t.resolvedAt = &now
	t.resolvedBy = &resolvedBy
	if close {
		t.status = vo.StatusClosed
	} else {
		t.status = vo.StatusResolved
	}
	t.updatedAt = now
	return nil
}

// SetStatus sets the status directly. Beyond enum membership there are no
// guard rails: an admin may move a ticket between any two statuses.
func (t *Ticket) SetStatus(newStatus vo.TicketStatus) error {
	if !newStatus.IsValid() {
		return fmt.Errorf("invalid ticket status: %s", newStatus)
	}

	t.status = newStatus
	t.updatedAt = time.Now()
	return nil
}

// AddComment appends a comment. A client-authored comment on a ticket that
// is waiting_on_client flips it back to in_progress; this is the only
// automatic status transition in the system. Returns whether the status
// changed.
func (t *Ticket) AddComment(comment *Comment, authorIsClient bool) (bool, error) {
	if comment == nil {
		return false, fmt.Errorf("comment cannot be nil")
	}
	if comment.TicketID() != t.id {
		return false, fmt.Errorf("comment ticket ID mismatch")
	}

	t.comments = append(t.comments, comment)
	t.updatedAt = time.Now()

	if authorIsClient && t.status.IsWaitingOnClient() {
		t.status = vo.StatusInProgress
		return true, nil
	}

	return false, nil
}

// ApplyTimeSpentDelta adjusts the cached total of logged minutes. The cache
// mirrors the sum of non-deleted time entries for this ticket.
func (t *Ticket) ApplyTimeSpentDelta(deltaMinutes int) {
	t.timeSpentMinutes += deltaMinutes
	t.updatedAt = time.Now()
}

// LinkLinearIssue records the external tracker linkage.
func (t *Ticket) LinkLinearIssue(issueID, issueURL string) {
	t.linearIssueID = issueID
	t.linearIssueURL = issueURL
	t.updatedAt = time.Now()
}

// BelongsToClient reports tenant ownership, used for client-role access checks.
func (t *Ticket) BelongsToClient(clientID uint) bool {
	return t.clientID == clientID
}

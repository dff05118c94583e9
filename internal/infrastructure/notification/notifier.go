package notification

import (
	"fmt"

	"ddportal/internal/domain/project"
	"ddportal/internal/domain/shared/events"
	"ddportal/internal/domain/ticket"
	"ddportal/internal/infrastructure/email"
	"ddportal/internal/shared/config"
	"ddportal/internal/shared/goroutine"
	"ddportal/internal/shared/logger"
)

// Notifier turns domain events into chat webhook posts and admin emails.
// Failures are logged and swallowed; notifications never fail an operation.
type Notifier struct {
	cfg    *config.NotificationConfig
	chat   *ChatWebhookClient
	email  email.Service
	admin  string
	logger logger.Interface
}

func NewNotifier(
	cfg *config.NotificationConfig,
	emailService email.Service,
	adminAddress string,
	log logger.Interface,
) *Notifier {
	return &Notifier{
		cfg:    cfg,
		chat:   NewChatWebhookClient(cfg.ChatWebhookURL),
		email:  emailService,
		admin:  adminAddress,
		logger: log.Named("notifier"),
	}
}

// Register subscribes the notifier to every event type it handles.
func (n *Notifier) Register(subscriber events.EventSubscriber) error {
	subscriptions := map[string]func(events.DomainEvent) error{
		ticket.EventTypeTicketCreated:       n.onTicketCreated,
		ticket.EventTypeTicketCommentAdded:  n.onTicketCommentAdded,
		ticket.EventTypeTicketResolved:      n.onTicketResolved,
		project.EventTypePhaseStatusChanged: n.onPhaseStatusChanged,
	}

	for eventType, handler := range subscriptions {
		if err := subscriber.Subscribe(eventType, events.NewSimpleEventHandler(eventType, handler)); err != nil {
			return fmt.Errorf("failed to subscribe to %s: %w", eventType, err)
		}
	}

	return nil
}

func (n *Notifier) onTicketCreated(e events.DomainEvent) error {
	event, ok := e.(ticket.TicketCreatedEvent)
	if !ok {
		return fmt.Errorf("unexpected event payload for %s", e.GetEventType())
	}

	text := fmt.Sprintf("New %s priority ticket #%d: %s\n%s",
		event.Priority, event.TicketID, event.Title, n.ticketURL(event.TicketID))
	n.post(text)

	subject := fmt.Sprintf("[Ticket #%d] %s", event.TicketID, event.Title)
	body := fmt.Sprintf("A new ticket was opened.\n\nTitle: %s\nPriority: %s\nType: %s\n\n%s",
		event.Title, event.Priority, event.Type, n.ticketURL(event.TicketID))
	n.mail(subject, body)

	return nil
}

func (n *Notifier) onTicketCommentAdded(e events.DomainEvent) error {
	event, ok := e.(ticket.TicketCommentAddedEvent)
	if !ok {
		return fmt.Errorf("unexpected event payload for %s", e.GetEventType())
	}

	// Internal comments stay inside the team; no notification goes out.
	if event.IsInternal {
		return nil
	}

	text := fmt.Sprintf("New comment on ticket #%d: %s\n%s",
		event.TicketID, event.TicketTitle, n.ticketURL(event.TicketID))
	if event.StatusChanged {
		text += fmt.Sprintf("\nStatus moved to %s", event.NewStatus)
	}
	n.post(text)

	return nil
}

func (n *Notifier) onTicketResolved(e events.DomainEvent) error {
	event, ok := e.(ticket.TicketResolvedEvent)
	if !ok {
		return fmt.Errorf("unexpected event payload for %s", e.GetEventType())
	}

	state := "resolved"
	if event.Closed {
		state = "closed"
	}
	text := fmt.Sprintf("Ticket #%d %s: %s\n%s",
		event.TicketID, state, event.Title, n.ticketURL(event.TicketID))
	n.post(text)

	return nil
}

func (n *Notifier) onPhaseStatusChanged(e events.DomainEvent) error {
	event, ok := e.(project.PhaseStatusChangedEvent)
	if !ok {
		return fmt.Errorf("unexpected event payload for %s", e.GetEventType())
	}

	text := fmt.Sprintf("Project %q: phase %q moved from %s to %s\n%s/projects/%d",
		event.ProjectName, event.PhaseName, event.OldStatus, event.NewStatus,
		n.cfg.PortalURL, event.ProjectID)
	n.post(text)

	return nil
}

func (n *Notifier) post(text string) {
	if err := n.chat.Post(text); err != nil {
		n.logger.Warnw("chat webhook post failed", "error", err)
	}
}

func (n *Notifier) mail(subject, plainBody string) {
	if !n.cfg.EmailEnabled || n.email == nil || n.admin == "" {
		return
	}

	goroutine.SafeGo(n.logger, "notification-email", func() {
		htmlBody := "<pre>" + plainBody + "</pre>"
		if err := n.email.Send(n.admin, subject, htmlBody, plainBody); err != nil {
			n.logger.Warnw("notification email failed", "subject", subject, "error", err)
		}
	})
}

func (n *Notifier) ticketURL(ticketID uint) string {
	return fmt.Sprintf("%s/tickets/%d", n.cfg.PortalURL, ticketID)
}

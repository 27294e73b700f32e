package ports

import "context"

// Invite carries the organization context for one outbound notification.
type Invite struct {
	Email     string
	FirstName string
	LastName  string
	OrgID     string
	OrgName   string
	Realm     string
	// JoinToken is set on registration links only; it pre-fills the
	// organization the new account joins.
	JoinToken string
}

// Notifier dispatches outbound notifications through the platform's
// mail/notification collaborator. Each method performs exactly one send.
type Notifier interface {
	SendInvitation(ctx context.Context, inv Invite) error
	SendRegistrationLink(ctx context.Context, inv Invite) error
}

// InviteDeduper is the optional request-fingerprint cache in front of the
// invitation orchestrator. Implementations expire entries after a TTL.
type InviteDeduper interface {
	Seen(ctx context.Context, fingerprint string) (bool, error)
	Mark(ctx context.Context, fingerprint string) error
}

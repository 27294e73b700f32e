// Package notify dispatches outbound notifications to the platform's
// mail/notification collaborator over HTTP. Delivery itself (templating,
// retries, provider failover) is owned by that collaborator; this client
// performs exactly one POST per send and propagates failures to the caller.
package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/trackswiftly/userservice/internal/core/ports"
)

const defaultTimeout = 10 * time.Second

// WebhookNotifier posts invitation and registration notifications as JSON to
// the configured webhook base URL.
type WebhookNotifier struct {
	baseURL string
	client  *http.Client
	logger  zerolog.Logger
}

func NewWebhookNotifier(baseURL string, timeout time.Duration, logger zerolog.Logger) *WebhookNotifier {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &WebhookNotifier{
		baseURL: baseURL,
		client:  &http.Client{Timeout: timeout},
		logger:  logger,
	}
}

type notificationPayload struct {
	Email     string `json:"email"`
	FirstName string `json:"first_name,omitempty"`
	LastName  string `json:"last_name,omitempty"`
	Realm     string `json:"realm"`
	OrgID     string `json:"org_id"`
	OrgName   string `json:"org_name"`
	JoinToken string `json:"join_token,omitempty"`
}

// SendInvitation notifies an existing user to join the organization.
func (n *WebhookNotifier) SendInvitation(ctx context.Context, inv ports.Invite) error {
	return n.post(ctx, "/invitations", inv)
}

// SendRegistrationLink sends a registration link carrying the org-join token.
func (n *WebhookNotifier) SendRegistrationLink(ctx context.Context, inv ports.Invite) error {
	return n.post(ctx, "/registrations", inv)
}

func (n *WebhookNotifier) post(ctx context.Context, path string, inv ports.Invite) error {
	body, err := json.Marshal(notificationPayload{
		Email:     inv.Email,
		FirstName: inv.FirstName,
		LastName:  inv.LastName,
		Realm:     inv.Realm,
		OrgID:     inv.OrgID,
		OrgName:   inv.OrgName,
		JoinToken: inv.JoinToken,
	})
	if err != nil {
		return fmt.Errorf("encode notification: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, n.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build notification request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := n.client.Do(req)
	if err != nil {
		return fmt.Errorf("dispatch notification: %w", err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("notification dispatcher returned %d", resp.StatusCode)
	}

	n.logger.Debug().
		Str("path", path).
		Str("org_id", inv.OrgID).
		Msg("notification dispatched")
	return nil
}

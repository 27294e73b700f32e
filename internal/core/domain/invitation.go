package domain

import "errors"

var ErrDuplicateInvitation = errors.New("invitation already sent")

// InvitationOutcome reports which delivery path an invitation took.
type InvitationOutcome string

const (
	// OutcomeInvitedExisting means the e-mail belonged to a known user who
	// received a join-existing-organization invitation.
	OutcomeInvitedExisting InvitationOutcome = "invited-existing"
	// OutcomeInvitedNew means the e-mail was unknown and a registration
	// link carrying an org-join token was sent instead.
	OutcomeInvitedNew InvitationOutcome = "invited-new"
)

// InvitationRequest is the transient input to the invitation orchestrator.
// It lives only for the duration of one orchestration call and is never
// persisted by this service.
type InvitationRequest struct {
	Email     string
	FirstName string
	LastName  string
}

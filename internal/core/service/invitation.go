package service

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"

	"github.com/trackswiftly/userservice/internal/core/domain"
	"github.com/trackswiftly/userservice/internal/core/ports"
)

const defaultJoinTokenTTL = 72 * time.Hour

// InvitationService decides between inviting an existing user and sending a
// registration link to a new one, and performs exactly one directory lookup
// and one notification dispatch per call.
type InvitationService struct {
	store        ports.IdentityStore
	notifier     ports.Notifier
	deduper      ports.InviteDeduper
	tokenSecret  string
	joinTokenTTL time.Duration
	logger       zerolog.Logger
}

// NewInvitationService builds the orchestrator. deduper may be nil, in which
// case repeated invitation requests send repeated notifications.
func NewInvitationService(
	store ports.IdentityStore,
	notifier ports.Notifier,
	deduper ports.InviteDeduper,
	tokenSecret string,
	joinTokenTTL time.Duration,
	logger zerolog.Logger,
) *InvitationService {
	if joinTokenTTL <= 0 {
		joinTokenTTL = defaultJoinTokenTTL
	}
	return &InvitationService{
		store:        store,
		notifier:     notifier,
		deduper:      deduper,
		tokenSecret:  tokenSecret,
		joinTokenTTL: joinTokenTTL,
		logger:       logger,
	}
}

// Invite dispatches a join-existing-org invitation when the e-mail belongs
// to a known user, otherwise a registration link carrying an org-join token.
// The caller must have resolved a non-nil organization first.
func (s *InvitationService) Invite(ctx context.Context, realm string, org *domain.Organization, req domain.InvitationRequest) (domain.InvitationOutcome, error) {
	if org == nil {
		return "", domain.ErrNoOrganization
	}

	fingerprint := inviteFingerprint(realm, org.ID, req.Email)
	if s.deduper != nil {
		seen, err := s.deduper.Seen(ctx, fingerprint)
		if err != nil {
			return "", fmt.Errorf("invitation dedup check: %w", err)
		}
		if seen {
			return "", domain.ErrDuplicateInvitation
		}
	}

	inv := ports.Invite{
		Email:     req.Email,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		OrgID:     org.ID,
		OrgName:   org.Name,
		Realm:     realm,
	}

	outcome := domain.OutcomeInvitedExisting
	_, err := s.store.UserByEmail(ctx, realm, req.Email)
	switch {
	case err == nil:
		if err := s.notifier.SendInvitation(ctx, inv); err != nil {
			return "", fmt.Errorf("send invitation: %w", err)
		}
	case errors.Is(err, domain.ErrUserNotFound):
		outcome = domain.OutcomeInvitedNew
		inv.JoinToken, err = s.mintJoinToken(realm, org.ID, req.Email)
		if err != nil {
			return "", fmt.Errorf("mint join token: %w", err)
		}
		if err := s.notifier.SendRegistrationLink(ctx, inv); err != nil {
			return "", fmt.Errorf("send registration link: %w", err)
		}
	default:
		return "", fmt.Errorf("lookup user by email: %w", err)
	}

	if s.deduper != nil {
		// Mark after a successful send; a failed mark only means one extra
		// notification on retry, never a lost one.
		if err := s.deduper.Mark(ctx, fingerprint); err != nil {
			s.logger.Warn().Err(err).Str("email", req.Email).Msg("invitation dedup mark failed")
		}
	}

	s.logger.Info().
		Str("realm", realm).
		Str("org_id", org.ID).
		Str("outcome", string(outcome)).
		Msg("invitation dispatched")
	return outcome, nil
}

// mintJoinToken pre-fills the organization a new registration joins.
func (s *InvitationService) mintJoinToken(realm, orgID, email string) (string, error) {
	claims := jwt.MapClaims{
		"realm":  realm,
		"org_id": orgID,
		"email":  email,
		"exp":    time.Now().Add(s.joinTokenTTL).Unix(),
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(s.tokenSecret))
}

// inviteFingerprint keys the dedup cache on realm, organization, and
// case-normalized e-mail.
func inviteFingerprint(realm, orgID, email string) string {
	sum := sha256.Sum256([]byte(realm + "|" + orgID + "|" + strings.ToLower(email)))
	return hex.EncodeToString(sum[:])
}

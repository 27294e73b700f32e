package service

import (
	"context"
	"fmt"
	"sort"

	"github.com/rs/zerolog"

	"github.com/trackswiftly/userservice/internal/core/domain"
	"github.com/trackswiftly/userservice/internal/core/ports"
)

// OrganizationService resolves organization membership. The platform allows
// multi-organization membership, but policy here treats a user as belonging
// to at most one: the organization with the lowest id wins, so the choice is
// stable across calls even if the store enumerates in a different order.
type OrganizationService struct {
	store  ports.IdentityStore
	logger zerolog.Logger
}

func NewOrganizationService(store ports.IdentityStore, logger zerolog.Logger) *OrganizationService {
	return &OrganizationService{store: store, logger: logger}
}

// FirstOrganizationOf returns the member's canonical organization, or
// (nil, nil) when the user belongs to none. Organization-less is a valid
// terminal state, not an error.
func (s *OrganizationService) FirstOrganizationOf(ctx context.Context, realm, userID string) (*domain.Organization, error) {
	orgs, err := s.store.OrganizationsByMember(ctx, realm, userID)
	if err != nil {
		return nil, fmt.Errorf("list organizations: %w", err)
	}
	if len(orgs) == 0 {
		return nil, nil
	}

	sort.Slice(orgs, func(i, j int) bool { return orgs[i].ID < orgs[j].ID })
	if len(orgs) > 1 {
		s.logger.Warn().
			Str("user_id", userID).
			Int("count", len(orgs)).
			Str("picked", orgs[0].ID).
			Msg("user belongs to multiple organizations")
	}
	return &orgs[0], nil
}

// RequireSharedOrganization gates one principal acting on another: the actor
// must be a member of at least one of the target's organizations.
func (s *OrganizationService) RequireSharedOrganization(ctx context.Context, realm, actorID, targetID string) error {
	targetOrgs, err := s.store.OrganizationsByMember(ctx, realm, targetID)
	if err != nil {
		return fmt.Errorf("list target organizations: %w", err)
	}
	actorOrgs, err := s.store.OrganizationsByMember(ctx, realm, actorID)
	if err != nil {
		return fmt.Errorf("list actor organizations: %w", err)
	}

	targetSet := make(map[string]struct{}, len(targetOrgs))
	for _, org := range targetOrgs {
		targetSet[org.ID] = struct{}{}
	}
	for _, org := range actorOrgs {
		if _, ok := targetSet[org.ID]; ok {
			return nil
		}
	}
	return domain.ErrForbidden
}

package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/trackswiftly/userservice/internal/core/domain"
	"github.com/trackswiftly/userservice/internal/core/ports"
)

// GroupService lists realm groups and performs organization-gated group
// joins. Role gating happens upstream in the route middleware.
type GroupService struct {
	store  ports.IdentityStore
	orgs   ports.OrganizationService
	logger zerolog.Logger
}

func NewGroupService(store ports.IdentityStore, orgs ports.OrganizationService, logger zerolog.Logger) *GroupService {
	return &GroupService{store: store, orgs: orgs, logger: logger}
}

func (s *GroupService) ListGroups(ctx context.Context, realm string) ([]domain.Group, error) {
	groups, err := s.store.GroupsByRealm(ctx, realm)
	if err != nil {
		return nil, fmt.Errorf("list groups: %w", err)
	}
	return groups, nil
}

// AssignToGroup adds target to the group named groupName (uppercased before
// lookup). Acting on another user requires a shared organization; acting on
// oneself does not. The join itself is idempotent at the store layer.
func (s *GroupService) AssignToGroup(ctx context.Context, realm string, actor *domain.Principal, targetID, groupName string) (*ports.GroupAssignment, error) {
	target, err := s.store.UserByID(ctx, realm, targetID)
	if err != nil {
		return nil, err
	}

	if actor.ID != target.ID {
		if err := s.orgs.RequireSharedOrganization(ctx, realm, actor.ID, target.ID); err != nil {
			return nil, err
		}
	}

	return s.join(ctx, realm, target, groupName)
}

// JoinGroup adds target to the group without organization gating. The legacy
// join endpoint keeps this behavior behind a config switch; see the router.
func (s *GroupService) JoinGroup(ctx context.Context, realm, targetID, groupName string) (*ports.GroupAssignment, error) {
	target, err := s.store.UserByID(ctx, realm, targetID)
	if err != nil {
		return nil, err
	}
	return s.join(ctx, realm, target, groupName)
}

func (s *GroupService) join(ctx context.Context, realm string, target *domain.Principal, groupName string) (*ports.GroupAssignment, error) {
	group, err := s.store.GroupByName(ctx, realm, strings.ToUpper(groupName))
	if err != nil {
		return nil, err
	}

	if err := s.store.JoinGroup(ctx, realm, target.ID, group.ID); err != nil {
		return nil, fmt.Errorf("join group: %w", err)
	}

	s.logger.Info().
		Str("realm", realm).
		Str("group", group.Name).
		Str("user_id", target.ID).
		Msg("user assigned to group")
	return &ports.GroupAssignment{GroupName: groupName, Username: target.Username}, nil
}

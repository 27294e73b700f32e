package ports

import (
	"context"

	"github.com/trackswiftly/userservice/internal/core/domain"
)

// PolicyService is the authorization decision core: realm scoping plus the
// role-based access predicate.
type PolicyService interface {
	// CheckRealm fails with domain.ErrRealmNotAllowed when the realm name
	// does not match the configured scope pattern.
	CheckRealm(realm string) error

	// HasAnyRole reports whether the principal holds at least one of the
	// given roles in the realm. Roles absent from the realm are negatives.
	HasAnyRole(ctx context.Context, realm string, principal *domain.Principal, roles []domain.Role) (bool, error)

	// RequireAnyRole fails with domain.ErrForbidden when HasAnyRole is false.
	RequireAnyRole(ctx context.Context, realm string, principal *domain.Principal, roles []domain.Role) error
}

// OrganizationService resolves organization membership for policy decisions.
type OrganizationService interface {
	// FirstOrganizationOf returns the member's organization with the lowest
	// id, or (nil, nil) when the user belongs to none.
	FirstOrganizationOf(ctx context.Context, realm, userID string) (*domain.Organization, error)

	// RequireSharedOrganization fails with domain.ErrForbidden unless actor
	// and target have at least one organization in common.
	RequireSharedOrganization(ctx context.Context, realm, actorID, targetID string) error
}

// InvitationService orchestrates the existing-user-invite vs.
// new-user-registration decision and the single outbound dispatch.
type InvitationService interface {
	Invite(ctx context.Context, realm string, org *domain.Organization, req domain.InvitationRequest) (domain.InvitationOutcome, error)
}

// GroupAssignment confirms a completed group join.
type GroupAssignment struct {
	GroupName string
	Username  string
}

// GroupService lists realm groups and performs group joins.
type GroupService interface {
	ListGroups(ctx context.Context, realm string) ([]domain.Group, error)

	// AssignToGroup adds target to the uppercase-normalized group. When
	// actor and target differ, they must share an organization.
	AssignToGroup(ctx context.Context, realm string, actor *domain.Principal, targetID, groupName string) (*GroupAssignment, error)

	// JoinGroup is the ungated join used by the legacy hello endpoint: no
	// organization-sharing check is applied.
	JoinGroup(ctx context.Context, realm, targetID, groupName string) (*GroupAssignment, error)
}

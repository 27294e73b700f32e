package ports

import (
	"context"

	"github.com/trackswiftly/userservice/internal/core/domain"
)

// IdentityStore is the narrow view of the identity platform's storage this
// service consumes. All reads reflect current truth at call time; nothing is
// cached on this side of the boundary.
type IdentityStore interface {
	// UserByID returns the user with the given id in the realm, or
	// domain.ErrUserNotFound.
	UserByID(ctx context.Context, realm, id string) (*domain.Principal, error)

	// UserByEmail returns the user with the given e-mail in the realm, or
	// domain.ErrUserNotFound.
	UserByEmail(ctx context.Context, realm, email string) (*domain.Principal, error)

	// GroupByName returns the group with the exact given name in the realm,
	// or domain.ErrGroupNotFound.
	GroupByName(ctx context.Context, realm, name string) (*domain.Group, error)

	// GroupsByRealm lists all groups defined in the realm.
	GroupsByRealm(ctx context.Context, realm string) ([]domain.Group, error)

	// RoleExists reports whether a role with the exact given name is
	// defined in the realm. Absence is a normal negative, not an error.
	RoleExists(ctx context.Context, realm string, role domain.Role) (bool, error)

	// HasRole reports whether the user holds the given realm role.
	HasRole(ctx context.Context, realm, userID string, role domain.Role) (bool, error)

	// OrganizationsByMember lists the organizations the user belongs to,
	// ordered by ascending organization id.
	OrganizationsByMember(ctx context.Context, realm, userID string) ([]domain.Organization, error)

	// JoinGroup adds the user to the group. Joining an already-joined group
	// is a no-op at the store layer.
	JoinGroup(ctx context.Context, realm, userID, groupID string) error
}

package middleware

import (
	"context"

	"github.com/trackswiftly/userservice/internal/core/domain"
	"github.com/trackswiftly/userservice/internal/core/ports"
)

// stubStore implements the store calls the middleware exercises; the rest
// are unreachable in these tests.
type stubStore struct {
	users      map[string]*domain.Principal
	realmRoles map[domain.Role]bool
	userRoles  map[string]map[domain.Role]bool
}

func newStubStore() *stubStore {
	return &stubStore{
		users:      make(map[string]*domain.Principal),
		realmRoles: make(map[domain.Role]bool),
		userRoles:  make(map[string]map[domain.Role]bool),
	}
}

func (s *stubStore) UserByID(_ context.Context, _, id string) (*domain.Principal, error) {
	u, ok := s.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return u, nil
}

func (s *stubStore) UserByEmail(context.Context, string, string) (*domain.Principal, error) {
	return nil, domain.ErrUserNotFound
}

func (s *stubStore) GroupByName(context.Context, string, string) (*domain.Group, error) {
	return nil, domain.ErrGroupNotFound
}

func (s *stubStore) GroupsByRealm(context.Context, string) ([]domain.Group, error) {
	return nil, nil
}

func (s *stubStore) RoleExists(_ context.Context, _ string, role domain.Role) (bool, error) {
	return s.realmRoles[role], nil
}

func (s *stubStore) HasRole(_ context.Context, _, userID string, role domain.Role) (bool, error) {
	return s.userRoles[userID][role], nil
}

func (s *stubStore) OrganizationsByMember(context.Context, string, string) ([]domain.Organization, error) {
	return nil, nil
}

func (s *stubStore) JoinGroup(context.Context, string, string, string) error {
	return nil
}

var _ ports.IdentityStore = (*stubStore)(nil)

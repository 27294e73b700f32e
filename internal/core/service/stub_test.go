package service

import (
	"context"
	"strings"

	"github.com/trackswiftly/userservice/internal/core/domain"
	"github.com/trackswiftly/userservice/internal/core/ports"
)

// stubStore is an in-memory IdentityStore that records the order of calls so
// tests can assert check ordering.
type stubStore struct {
	users      map[string]*domain.Principal         // by id
	usersEmail map[string]*domain.Principal         // by email
	groups     map[string]*domain.Group             // by name
	realmRoles map[domain.Role]bool                 // roles defined in the realm
	userRoles  map[string]map[domain.Role]bool      // user id -> held roles
	orgs       map[string][]domain.Organization     // user id -> memberships
	joined     map[string][]string                  // user id -> group ids joined
	calls      []string
}

func newStubStore() *stubStore {
	return &stubStore{
		users:      make(map[string]*domain.Principal),
		usersEmail: make(map[string]*domain.Principal),
		groups:     make(map[string]*domain.Group),
		realmRoles: make(map[domain.Role]bool),
		userRoles:  make(map[string]map[domain.Role]bool),
		orgs:       make(map[string][]domain.Organization),
		joined:     make(map[string][]string),
	}
}

func (s *stubStore) addUser(u *domain.Principal) {
	s.users[u.ID] = u
	if u.Email != "" {
		s.usersEmail[strings.ToLower(u.Email)] = u
	}
}

func (s *stubStore) grantRole(userID string, role domain.Role) {
	s.realmRoles[role] = true
	if s.userRoles[userID] == nil {
		s.userRoles[userID] = make(map[domain.Role]bool)
	}
	s.userRoles[userID][role] = true
}

func (s *stubStore) UserByID(_ context.Context, _, id string) (*domain.Principal, error) {
	s.calls = append(s.calls, "UserByID")
	u, ok := s.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return u, nil
}

func (s *stubStore) UserByEmail(_ context.Context, _, email string) (*domain.Principal, error) {
	s.calls = append(s.calls, "UserByEmail")
	u, ok := s.usersEmail[strings.ToLower(email)]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return u, nil
}

func (s *stubStore) GroupByName(_ context.Context, _, name string) (*domain.Group, error) {
	s.calls = append(s.calls, "GroupByName")
	g, ok := s.groups[name]
	if !ok {
		return nil, domain.ErrGroupNotFound
	}
	return g, nil
}

func (s *stubStore) GroupsByRealm(_ context.Context, _ string) ([]domain.Group, error) {
	s.calls = append(s.calls, "GroupsByRealm")
	out := make([]domain.Group, 0, len(s.groups))
	for _, g := range s.groups {
		out = append(out, *g)
	}
	return out, nil
}

func (s *stubStore) RoleExists(_ context.Context, _ string, role domain.Role) (bool, error) {
	s.calls = append(s.calls, "RoleExists")
	return s.realmRoles[role], nil
}

func (s *stubStore) HasRole(_ context.Context, _, userID string, role domain.Role) (bool, error) {
	s.calls = append(s.calls, "HasRole")
	return s.userRoles[userID][role], nil
}

func (s *stubStore) OrganizationsByMember(_ context.Context, _, userID string) ([]domain.Organization, error) {
	s.calls = append(s.calls, "OrganizationsByMember")
	return s.orgs[userID], nil
}

func (s *stubStore) JoinGroup(_ context.Context, _, userID, groupID string) error {
	s.calls = append(s.calls, "JoinGroup")
	s.joined[userID] = append(s.joined[userID], groupID)
	return nil
}

var _ ports.IdentityStore = (*stubStore)(nil)

// stubNotifier counts dispatches per channel.
type stubNotifier struct {
	invitations   []ports.Invite
	registrations []ports.Invite
	err           error
}

func (n *stubNotifier) SendInvitation(_ context.Context, inv ports.Invite) error {
	if n.err != nil {
		return n.err
	}
	n.invitations = append(n.invitations, inv)
	return nil
}

func (n *stubNotifier) SendRegistrationLink(_ context.Context, inv ports.Invite) error {
	if n.err != nil {
		return n.err
	}
	n.registrations = append(n.registrations, inv)
	return nil
}

// stubDeduper is an in-memory InviteDeduper.
type stubDeduper struct {
	seen map[string]bool
}

func newStubDeduper() *stubDeduper {
	return &stubDeduper{seen: make(map[string]bool)}
}

func (d *stubDeduper) Seen(_ context.Context, fp string) (bool, error) {
	return d.seen[fp], nil
}

func (d *stubDeduper) Mark(_ context.Context, fp string) error {
	d.seen[fp] = true
	return nil
}

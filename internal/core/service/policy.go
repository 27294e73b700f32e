package service

import (
	"context"
	"fmt"
	"regexp"

	"github.com/rs/zerolog"

	"github.com/trackswiftly/userservice/internal/core/domain"
	"github.com/trackswiftly/userservice/internal/core/ports"
)

// PolicyService implements the realm guard and the role-based access
// predicate. It holds no state beyond the compiled scope pattern; role
// membership is re-read from the store on every call.
type PolicyService struct {
	store        ports.IdentityStore
	realmPattern *regexp.Regexp
	logger       zerolog.Logger
}

// NewPolicyService compiles the realm allow-pattern once. Matching is
// case-insensitive regardless of how the pattern is written.
func NewPolicyService(store ports.IdentityStore, realmPattern string, logger zerolog.Logger) (*PolicyService, error) {
	re, err := regexp.Compile("(?i)" + realmPattern)
	if err != nil {
		return nil, fmt.Errorf("compile realm pattern: %w", err)
	}
	return &PolicyService{store: store, realmPattern: re, logger: logger}, nil
}

// CheckRealm is a pure predicate on the realm name. It must run before any
// privileged operation.
func (s *PolicyService) CheckRealm(realm string) error {
	if !s.realmPattern.MatchString(realm) {
		return domain.ErrRealmNotAllowed
	}
	return nil
}

// HasAnyRole reports whether the principal holds at least one of the given
// roles in the realm. A role the realm does not define is a normal negative.
// Short-circuits on the first match.
func (s *PolicyService) HasAnyRole(ctx context.Context, realm string, principal *domain.Principal, roles []domain.Role) (bool, error) {
	for _, role := range roles {
		exists, err := s.store.RoleExists(ctx, realm, role)
		if err != nil {
			return false, fmt.Errorf("resolve role %s: %w", role, err)
		}
		if !exists {
			continue
		}

		held, err := s.store.HasRole(ctx, realm, principal.ID, role)
		if err != nil {
			return false, fmt.Errorf("check role %s: %w", role, err)
		}
		if held {
			return true, nil
		}
	}
	return false, nil
}

// RequireAnyRole wraps HasAnyRole, failing closed with ErrForbidden.
func (s *PolicyService) RequireAnyRole(ctx context.Context, realm string, principal *domain.Principal, roles []domain.Role) error {
	ok, err := s.HasAnyRole(ctx, realm, principal, roles)
	if err != nil {
		return err
	}
	if !ok {
		s.logger.Debug().
			Str("realm", realm).
			Str("user_id", principal.ID).
			Msg("role check denied")
		return domain.ErrForbidden
	}
	return nil
}

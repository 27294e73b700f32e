package service

import (
	"context"
	"testing"

	"github.com/rs/zerolog"

	"github.com/trackswiftly/userservice/internal/core/domain"
)

func newTestGroupService(store *stubStore) *GroupService {
	orgs := NewOrganizationService(store, zerolog.Nop())
	return NewGroupService(store, orgs, zerolog.Nop())
}

func TestGroupService_AssignToGroup(t *testing.T) {
	store := newStubStore()
	store.addUser(&domain.Principal{ID: "actor-1", Username: "alice"})
	store.addUser(&domain.Principal{ID: "target-1", Username: "bob"})
	store.orgs["actor-1"] = []domain.Organization{{ID: "org-1"}}
	store.orgs["target-1"] = []domain.Organization{{ID: "org-1"}}
	store.groups["DRIVERS"] = &domain.Group{ID: "g1", Name: "DRIVERS"}

	svc := newTestGroupService(store)
	actor := store.users["actor-1"]

	// Lowercase input resolves the uppercase group name.
	conf, err := svc.AssignToGroup(context.Background(), "trackswiftly", actor, "target-1", "drivers")
	if err != nil {
		t.Fatalf("AssignToGroup: %v", err)
	}
	if conf.GroupName != "drivers" || conf.Username != "bob" {
		t.Fatalf("unexpected confirmation: %+v", conf)
	}
	if got := store.joined["target-1"]; len(got) != 1 || got[0] != "g1" {
		t.Fatalf("target not joined to g1: %v", got)
	}
}

func TestGroupService_AssignToGroup_TargetMissing(t *testing.T) {
	store := newStubStore()
	store.addUser(&domain.Principal{ID: "actor-1", Username: "alice"})
	svc := newTestGroupService(store)

	_, err := svc.AssignToGroup(context.Background(), "trackswiftly", store.users["actor-1"], "ghost", "drivers")
	if err != domain.ErrUserNotFound {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestGroupService_AssignToGroup_GroupMissing(t *testing.T) {
	store := newStubStore()
	store.addUser(&domain.Principal{ID: "actor-1", Username: "alice"})
	svc := newTestGroupService(store)

	_, err := svc.AssignToGroup(context.Background(), "trackswiftly", store.users["actor-1"], "actor-1", "nosuch")
	if err != domain.ErrGroupNotFound {
		t.Fatalf("expected ErrGroupNotFound, got %v", err)
	}
}

func TestGroupService_AssignToGroup_DisjointOrganizations(t *testing.T) {
	store := newStubStore()
	store.addUser(&domain.Principal{ID: "actor-1", Username: "alice"})
	store.addUser(&domain.Principal{ID: "target-1", Username: "bob"})
	store.orgs["actor-1"] = []domain.Organization{{ID: "org-1"}}
	store.orgs["target-1"] = []domain.Organization{{ID: "org-2"}}
	store.groups["DRIVERS"] = &domain.Group{ID: "g1", Name: "DRIVERS"}

	svc := newTestGroupService(store)
	_, err := svc.AssignToGroup(context.Background(), "trackswiftly", store.users["actor-1"], "target-1", "drivers")
	if err != domain.ErrForbidden {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
	if len(store.joined["target-1"]) != 0 {
		t.Fatal("join must not happen after a failed share check")
	}
}

func TestGroupService_AssignToGroup_SelfSkipsShareCheck(t *testing.T) {
	// A user with no organization can still be assigned to a group by
	// themselves; the share check only gates acting on someone else.
	store := newStubStore()
	store.addUser(&domain.Principal{ID: "actor-1", Username: "alice"})
	store.groups["DRIVERS"] = &domain.Group{ID: "g1", Name: "DRIVERS"}

	svc := newTestGroupService(store)
	conf, err := svc.AssignToGroup(context.Background(), "trackswiftly", store.users["actor-1"], "actor-1", "drivers")
	if err != nil {
		t.Fatalf("AssignToGroup: %v", err)
	}
	if conf.Username != "alice" {
		t.Fatalf("unexpected confirmation: %+v", conf)
	}

	for _, call := range store.calls {
		if call == "OrganizationsByMember" {
			t.Fatal("self-assignment must not consult organization membership")
		}
	}
}

func TestGroupService_ListGroups(t *testing.T) {
	store := newStubStore()
	store.groups["DRIVERS"] = &domain.Group{ID: "g1", Name: "DRIVERS"}
	store.groups["DISPATCH"] = &domain.Group{ID: "g2", Name: "DISPATCH"}

	svc := newTestGroupService(store)
	groups, err := svc.ListGroups(context.Background(), "trackswiftly")
	if err != nil {
		t.Fatalf("ListGroups: %v", err)
	}
	if len(groups) != 2 {
		t.Fatalf("expected 2 groups, got %d", len(groups))
	}
}

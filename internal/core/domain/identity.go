package domain

import "errors"

var ErrUnauthenticated = errors.New("not authenticated")
var ErrRealmNotAllowed = errors.New("realm not allowed")
var ErrForbidden = errors.New("access forbidden")
var ErrUserNotFound = errors.New("user not found")
var ErrGroupNotFound = errors.New("group not found")
var ErrNoOrganization = errors.New("no organization found for the user")

// Principal models the authenticated caller for the current request. It is
// resolved once by the auth middleware, never cached across requests, and
// treated as immutable afterwards.
type Principal struct {
	ID        string `json:"id"`
	Username  string `json:"username"`
	Email     string `json:"email,omitempty"`
	FirstName string `json:"first_name,omitempty"`
	LastName  string `json:"last_name,omitempty"`
	Enabled   bool   `json:"enabled"`
}

// Organization is a named membership group used for invitation and
// ownership scoping. Distinct from Group.
type Organization struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Group is an assignable collection principals can join for coarse
// permissioning.
type Group struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

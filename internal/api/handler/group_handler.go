package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/trackswiftly/userservice/internal/api/metrics"
	"github.com/trackswiftly/userservice/internal/core/ports"
)

// GroupHandler serves group listing and the role- and organization-gated
// group assignment endpoint.
type GroupHandler struct {
	groups ports.GroupService
}

func NewGroupHandler(groups ports.GroupService) *GroupHandler {
	return &GroupHandler{groups: groups}
}

type groupResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type assignResponse struct {
	Group string `json:"group"`
	User  string `json:"user"`
}

// List handles GET /realms/:realm/trackswiftly/groups.
//
// @Summary      Retrieve groups for the current realm
// @Tags         groups
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   groupResponse
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Router       /realms/{realm}/trackswiftly/groups [get]
func (h *GroupHandler) List(c echo.Context) error {
	groups, err := h.groups.ListGroups(c.Request().Context(), c.Param("realm"))
	if err != nil {
		return err
	}

	out := make([]groupResponse, 0, len(groups))
	for _, g := range groups {
		out = append(out, groupResponse{ID: g.ID, Name: g.Name})
	}
	return c.JSON(http.StatusOK, out)
}

// Assign handles POST /realms/:realm/trackswiftly/groups/:group/users/:userId.
// The role check runs in route middleware before this handler; the
// organization-sharing check happens inside the service.
//
// @Summary      Assign a user to a group
// @Tags         groups
// @Produce      json
// @Security     BearerAuth
// @Param        group   path      string  true  "Group name (case-insensitive)"
// @Param        userId  path      string  true  "Target user id"
// @Success      200     {object}  assignResponse
// @Failure      401     {object}  errorResponse
// @Failure      403     {object}  errorResponse
// @Failure      404     {object}  errorResponse
// @Router       /realms/{realm}/trackswiftly/groups/{group}/users/{userId} [post]
func (h *GroupHandler) Assign(c echo.Context) error {
	principal, err := ctxPrincipal(c)
	if err != nil {
		return err
	}

	conf, err := h.groups.AssignToGroup(c.Request().Context(), c.Param("realm"), principal, c.Param("userId"), c.Param("group"))
	if err != nil {
		return err
	}

	metrics.GroupAssignmentsTotal.Inc()
	return c.JSON(http.StatusOK, assignResponse{Group: conf.GroupName, User: conf.Username})
}

package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/trackswiftly/userservice/internal/api/metrics"
	"github.com/trackswiftly/userservice/internal/core/ports"
)

// HelloHandler serves the public hello endpoint and the legacy ungated
// group-join variant.
type HelloHandler struct {
	groups ports.GroupService
}

func NewHelloHandler(groups ports.GroupService) *HelloHandler {
	return &HelloHandler{groups: groups}
}

// Hello handles GET /realms/:realm/trackswiftly/hello.
//
// @Summary      Public hello endpoint
// @Tags         tenant
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       /realms/{realm}/trackswiftly/hello [get]
func (h *HelloHandler) Hello(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"hello": c.Param("realm")})
}

// JoinGroup handles POST /realms/:realm/trackswiftly/hello/:group/users/:userId.
// Unlike the gated assignment endpoint, no organization-sharing check is
// applied here; whether a role check applies is a router-level policy switch.
//
// @Summary      Join a user to a group
// @Tags         tenant
// @Produce      json
// @Security     BearerAuth
// @Param        group   path      string  true  "Group name (case-insensitive)"
// @Param        userId  path      string  true  "Target user id"
// @Success      200     {object}  map[string]string
// @Failure      401     {object}  errorResponse
// @Failure      404     {object}  errorResponse
// @Router       /realms/{realm}/trackswiftly/hello/{group}/users/{userId} [post]
func (h *HelloHandler) JoinGroup(c echo.Context) error {
	groupName := c.Param("group")
	userID := c.Param("userId")

	if _, err := h.groups.JoinGroup(c.Request().Context(), c.Param("realm"), userID, groupName); err != nil {
		return err
	}

	metrics.GroupAssignmentsTotal.Inc()
	return c.JSON(http.StatusOK, map[string]string{"name": groupName, "user": userID})
}

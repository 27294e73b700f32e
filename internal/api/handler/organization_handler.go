package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/trackswiftly/userservice/internal/api/metrics"
	"github.com/trackswiftly/userservice/internal/core/domain"
	"github.com/trackswiftly/userservice/internal/core/ports"
)

// OrganizationHandler serves the caller's organization and the member
// invitation endpoint.
type OrganizationHandler struct {
	orgs    ports.OrganizationService
	invites ports.InvitationService
}

func NewOrganizationHandler(orgs ports.OrganizationService, invites ports.InvitationService) *OrganizationHandler {
	return &OrganizationHandler{orgs: orgs, invites: invites}
}

type inviteUserRequest struct {
	Email     string `form:"email" validate:"required,email"`
	FirstName string `form:"firstName" validate:"required"`
	LastName  string `form:"lastName" validate:"required"`
}

type inviteUserResponse struct {
	Outcome      string `json:"outcome"`
	Email        string `json:"email"`
	Organization string `json:"organization"`
}

type myOrgResponse struct {
	Name string `json:"name"`
	ID   string `json:"id"`
}

// InviteUser handles POST /realms/:realm/trackswiftly/invite-user.
// The caller's first organization scopes the invitation; a caller without an
// organization is a terminal 404, not an internal error.
//
// @Summary      Invite an existing user or send a registration link to a new one
// @Tags         organizations
// @Accept       x-www-form-urlencoded
// @Produce      json
// @Security     BearerAuth
// @Param        email      formData  string  true  "Invitee e-mail"
// @Param        firstName  formData  string  true  "Invitee first name"
// @Param        lastName   formData  string  true  "Invitee last name"
// @Success      200  {object}  inviteUserResponse
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Failure      409  {object}  errorResponse
// @Router       /realms/{realm}/trackswiftly/invite-user [post]
func (h *OrganizationHandler) InviteUser(c echo.Context) error {
	principal, err := ctxPrincipal(c)
	if err != nil {
		return err
	}

	var req inviteUserRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	realm := c.Param("realm")
	org, err := h.orgs.FirstOrganizationOf(c.Request().Context(), realm, principal.ID)
	if err != nil {
		return err
	}
	if org == nil {
		return domain.ErrNoOrganization
	}

	outcome, err := h.invites.Invite(c.Request().Context(), realm, org, domain.InvitationRequest{
		Email:     req.Email,
		FirstName: req.FirstName,
		LastName:  req.LastName,
	})
	if err != nil {
		if errors.Is(err, domain.ErrDuplicateInvitation) {
			metrics.InvitationDedupTotal.WithLabelValues("hit").Inc()
		}
		return err
	}

	metrics.InvitationDedupTotal.WithLabelValues("miss").Inc()
	metrics.InvitationsTotal.WithLabelValues(string(outcome)).Inc()
	return c.JSON(http.StatusOK, inviteUserResponse{
		Outcome:      string(outcome),
		Email:        req.Email,
		Organization: org.Name,
	})
}

// MyOrg handles GET /realms/:realm/trackswiftly/myorg.
//
// @Summary      Return the caller's organization
// @Tags         organizations
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  myOrgResponse
// @Failure      401  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /realms/{realm}/trackswiftly/myorg [get]
func (h *OrganizationHandler) MyOrg(c echo.Context) error {
	principal, err := ctxPrincipal(c)
	if err != nil {
		return err
	}

	org, err := h.orgs.FirstOrganizationOf(c.Request().Context(), c.Param("realm"), principal.ID)
	if err != nil {
		return err
	}
	if org == nil {
		return domain.ErrNoOrganization
	}

	return c.JSON(http.StatusOK, myOrgResponse{Name: org.Name, ID: org.ID})
}

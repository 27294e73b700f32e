package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/trackswiftly/userservice/internal/api/handler"
	"github.com/trackswiftly/userservice/internal/api/middleware"
	"github.com/trackswiftly/userservice/internal/core/domain"
	"github.com/trackswiftly/userservice/internal/core/ports"
	"github.com/trackswiftly/userservice/internal/core/service"
	"github.com/trackswiftly/userservice/internal/infrastructure/config"
	mongostore "github.com/trackswiftly/userservice/internal/infrastructure/db/mongo"
	redisdedup "github.com/trackswiftly/userservice/internal/infrastructure/db/redis"
	"github.com/trackswiftly/userservice/internal/infrastructure/notify"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(cfg *config.Config, db *mongo.Database, rdb *redis.Client, log zerolog.Logger) (*echo.Echo, error) {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("userservice"))

	// --- Dependencies ---
	store := mongostore.NewIdentityStore(db)
	notifier := notify.NewWebhookNotifier(cfg.Notify.WebhookURL, cfg.Notify.Timeout, log)

	var deduper ports.InviteDeduper
	if cfg.Invite.DedupTTL > 0 {
		deduper = redisdedup.NewInviteDeduper(rdb, cfg.Invite.DedupTTL)
	}

	joinTokenSecret := cfg.Invite.JoinTokenSecret
	if joinTokenSecret == "" {
		joinTokenSecret = cfg.JWTSecret
	}

	policy, err := service.NewPolicyService(store, cfg.Policy.RealmPattern, log)
	if err != nil {
		return nil, err
	}
	orgs := service.NewOrganizationService(store, log)
	invites := service.NewInvitationService(store, notifier, deduper, joinTokenSecret, cfg.Invite.JoinTokenTTL, log)
	groups := service.NewGroupService(store, orgs, log)

	helloHandler := handler.NewHelloHandler(groups)
	orgHandler := handler.NewOrganizationHandler(orgs, invites)
	groupHandler := handler.NewGroupHandler(groups)

	auth := middleware.Auth(cfg.JWTSecret, store)
	manage := middleware.RequireRoles(policy, domain.ManagementRoles...)

	// --- Tenant routes: realm guard first on every route in the group ---
	g := e.Group("/realms/:realm/trackswiftly", middleware.RealmGuard(policy))

	g.GET("/hello", helloHandler.Hello)

	// Legacy join endpoint ships without a role check; STRICT_GROUP_JOIN
	// opts into uniform enforcement.
	joinMiddleware := []echo.MiddlewareFunc{auth}
	if cfg.Policy.StrictGroupJoin {
		joinMiddleware = append(joinMiddleware, manage)
	}
	g.POST("/hello/:group/users/:userId", helloHandler.JoinGroup, joinMiddleware...)

	g.POST("/invite-user", orgHandler.InviteUser, auth, manage)
	g.GET("/groups", groupHandler.List, auth, manage)
	g.POST("/groups/:group/users/:userId", groupHandler.Assign, auth, manage)
	g.GET("/myorg", orgHandler.MyOrg, auth)

	// --- Health probes and metrics (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandler())

	return e, nil
}

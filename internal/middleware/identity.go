package middleware

import (
	"fmt"
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/uushop/shopping-list-go/internal/config"
	"github.com/uushop/shopping-list-go/internal/services"
	"github.com/uushop/shopping-list-go/internal/utils"
)

// Caller profiles used in command allow-lists.
const (
	ProfileAuthorities = "Authorities"
	ProfileUser        = "User"
	ProfileViewer      = "Viewer"
)

// Identity request headers (trusted-header model, no verification).
const (
	HeaderProfile     = "X-User-Profile"
	HeaderIdentity    = "X-User-Identity"
	HeaderIdentityAlt = "X-User-Id"
)

const identityKey = "identity"

// Identity is the resolved caller: an opaque identity token and a profile
// label checked against per-command allow-lists.
type Identity struct {
	ID      string
	Profile string
}

// ResolveIdentity resolves the caller identity for every request. With no
// AUTHZ_URL configured it trusts the identity headers; both markers must be
// present and non-empty, otherwise the request stays unauthenticated. When
// AUTHZ_URL is set, the authorizer session cookie is validated instead and
// the profile derived from the session roles. Resolution itself never fails
// a request; rejecting is the job of Authorize.
func ResolveIdentity(cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if cfg != nil && cfg.AuthzURL != "" {
			if identity := verifiedIdentity(c, cfg); identity != nil {
				c.Locals(identityKey, identity)
			}
			return c.Next()
		}

		profile := c.Get(HeaderProfile)
		id := c.Get(HeaderIdentity)
		if id == "" {
			id = c.Get(HeaderIdentityAlt)
		}

		if profile != "" && id != "" {
			c.Locals(identityKey, &Identity{ID: id, Profile: profile})
		}
		return c.Next()
	}
}

// verifiedIdentity validates the authorizer session cookie and maps the
// session user onto an Identity. Any failure resolves to unauthenticated.
func verifiedIdentity(c *fiber.Ctx, cfg *config.Config) *Identity {
	cookie := c.Cookies("cookie_session")
	if cookie == "" {
		return nil
	}

	if !services.IsAuthorizerInitialized() {
		if err := services.InitAuthorizer(cfg, c.Protocol(), c.Hostname()); err != nil {
			log.Printf("Authorizer initialization failed: %v", err)
			return nil
		}
	}

	user, err := services.ValidateSession(cookie, nil)
	if err != nil {
		log.Printf("Session validation failed: %v", err)
		return nil
	}

	return &Identity{ID: user.ID, Profile: profileFromRoles(user.Roles)}
}

// profileFromRoles picks the strongest profile the session roles grant
func profileFromRoles(roles []string) string {
	granted := map[string]bool{}
	for _, role := range roles {
		granted[strings.ToLower(role)] = true
	}
	switch {
	case granted["authorities"]:
		return ProfileAuthorities
	case granted["user"]:
		return ProfileUser
	default:
		return ProfileViewer
	}
}

// IdentityFrom returns the resolved identity of the request, or nil when the
// request is unauthenticated
func IdentityFrom(c *fiber.Ctx) *Identity {
	if identity, ok := c.Locals(identityKey).(*Identity); ok {
		return identity
	}
	return nil
}

// Authorize admits the request when the resolved identity's profile is in
// the fixed allow-list declared at route registration. 401 without identity,
// 403 on a profile outside the allow-list, pass-through otherwise.
func Authorize(allowedProfiles ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		identity := IdentityFrom(c)
		if identity == nil {
			return utils.CommandError(c, fiber.StatusUnauthorized,
				"system/unauthenticated", "User is not authenticated.")
		}

		for _, profile := range allowedProfiles {
			if profile == identity.Profile {
				return c.Next()
			}
		}

		return utils.CommandError(c, fiber.StatusForbidden,
			"system/unauthorized",
			fmt.Sprintf("User profile '%s' is not allowed to call this command.", identity.Profile))
	}
}

package middleware

import (
	"log"
	"net/http"
	"strings"

	"giro_backoffice/internal/auth"
	"giro_backoffice/internal/domain/entities"
	"giro_backoffice/internal/usecase/interfaces"
	"giro_backoffice/pkg"

	"github.com/gin-gonic/gin"
)

const (
	// SessionCookieName carries the provider-issued access token.
	SessionCookieName = "giro_session"

	LoginPath     = "/login"
	DashboardPath = "/dashboard"

	principalKey = "principal"
)

// Paths the guard never evaluates: health, docs, static assets and the
// auth surface itself (sign-in must be reachable without a session).
var publicPrefixes = []string{
	"/ping",
	"/v1/ping",
	"/swagger/",
	"/v1/auth/",
	"/auth/",
	"/favicon.ico",
	"/static/",
}

// Principal is the authenticated caller, resolved once per request and
// carried in the gin context. Nothing about the session is ambient.

type Principal struct {
	UserID   string
	Email    string
	FullName string
	Role     entities.Role
}

func (p Principal) IsAdmin() bool {
	return p.Role == entities.RoleAdmin
}

// SessionGuard gates every request on a valid session token. Token
// verification happens locally; any failure counts as no session.

type SessionGuard struct {
	verifier *auth.TokenVerifier
	profiles interfaces.IProfileRepository
}

func NewSessionGuard(verifier *auth.TokenVerifier, profiles interfaces.IProfileRepository) *SessionGuard {
	return &SessionGuard{verifier: verifier, profiles: profiles}
}

func (g *SessionGuard) Handle() gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.Request.URL.Path
		if isPublicPath(path) {
			c.Next()
			return
		}

		principal, ok := g.authenticate(c)
		if !ok {
			if path == LoginPath {
				c.Next()
				return
			}
			if wantsHTML(c) {
				c.Redirect(http.StatusFound, LoginPath)
				c.Abort()
				return
			}
			appErr := pkg.NewDomainErrorSimple("NOT_AUTHENTICATED", "Sessão inválida ou expirada.", http.StatusUnauthorized)
			c.AbortWithStatusJSON(appErr.HTTPStatus, appErr.ToHTTPError())
			return
		}

		// A signed-in user has no business on the login page.
		if path == LoginPath {
			c.Redirect(http.StatusFound, DashboardPath)
			c.Abort()
			return
		}

		SetPrincipal(c, principal)
		c.Next()
	}
}

// authenticate extracts and verifies the session token, then resolves
// the caller's role from the profile store. Lookup failures default to
// USER (least privilege), never to ADMIN.
func (g *SessionGuard) authenticate(c *gin.Context) (Principal, bool) {
	token := sessionToken(c)
	if token == "" {
		return Principal{}, false
	}

	identity, err := g.verifier.Verify(token)
	if err != nil {
		return Principal{}, false
	}

	principal := Principal{
		UserID:   identity.UserID,
		Email:    identity.Email,
		FullName: identity.FullName,
		Role:     entities.RoleUser,
	}

	profile, err := g.profiles.GetByID(c.Request.Context(), identity.UserID)
	if err != nil {
		log.Printf("[session][guard] profile lookup failed user_id=%s err=%v", identity.UserID, err)
	} else if profile.Role != "" {
		principal.Role = profile.Role
	}
	if principal.FullName == "" {
		principal.FullName = profile.FullName
	}

	return principal, true
}

// SetPrincipal stores the caller in the gin context.
func SetPrincipal(c *gin.Context, p Principal) {
	c.Set(principalKey, p)
}

// PrincipalFromContext returns the caller set by the guard.
func PrincipalFromContext(c *gin.Context) (Principal, bool) {
	v, exists := c.Get(principalKey)
	if !exists {
		return Principal{}, false
	}
	principal, ok := v.(Principal)
	return principal, ok
}

// SessionTokenFromRequest exposes the raw token for handlers that talk
// to the identity provider on the caller's behalf.
func SessionTokenFromRequest(c *gin.Context) string {
	return sessionToken(c)
}

func sessionToken(c *gin.Context) string {
	if cookie, err := c.Cookie(SessionCookieName); err == nil && cookie != "" {
		return cookie
	}
	if header := c.GetHeader("Authorization"); strings.HasPrefix(header, "Bearer ") {
		return strings.TrimPrefix(header, "Bearer ")
	}
	return ""
}

func isPublicPath(path string) bool {
	for _, prefix := range publicPrefixes {
		if strings.HasPrefix(path, prefix) {
			return true
		}
	}
	return false
}

func wantsHTML(c *gin.Context) bool {
	return strings.Contains(c.GetHeader("Accept"), "text/html")
}

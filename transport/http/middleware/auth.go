package middleware

import (
	"context"
	"errors"
	"journal/infras/htpasswd"
	"journal/infras/jwt"
	"journal/infras/otel"
	"journal/permissions"
	"journal/shared/constant"
	"journal/shared/failure"
	"journal/transport/http/response"
	"net/http"
	"slices"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

const (
	authSchemeBasic  = "Basic"
	authSchemeBearer = "Bearer"
	authRealm        = `Basic realm="journal", charset="UTF-8"`
)

// Auth defines the interface for authentication middleware
type Auth interface {
	Auth(http.Handler) http.Handler
}

// Role defines the interface for role-based access control middleware
type Role interface {
	RBAC(http.Handler) http.Handler
}

// AuthRole combines all middleware interfaces
type AuthRole interface {
	Auth
	Role
}

type authRoleImpl struct {
	jwtService jwt.JWT
	htpasswd   htpasswd.Htpasswd
	otel       otel.Otel
	permission *permissions.PermissionData
}

func NewAuthRoleMiddleware(jwtService jwt.JWT, htpasswd htpasswd.Htpasswd, otel otel.Otel, permissions *permissions.PermissionData) AuthRole {
	return &authRoleImpl{
		jwtService: jwtService,
		htpasswd:   htpasswd,
		otel:       otel,
		permission: permissions,
	}
}

// routePattern resolves the chi pattern the request will be dispatched to,
// without the trailing slash of group roots. An empty pattern means no route matches.
func routePattern(request *http.Request) string {
	rctx := chi.RouteContext(request.Context())
	if rctx == nil || rctx.Routes == nil {
		return constant.Empty
	}

	pattern := rctx.Routes.Find(chi.NewRouteContext(), request.Method, request.URL.Path)
	if len(pattern) > 1 {
		pattern = strings.TrimSuffix(pattern, "/")
	}

	return pattern
}

func (m *authRoleImpl) lookup(request *http.Request) (string, permissions.Permission, bool) {
	path := routePattern(request)
	if path == constant.Empty {
		return path, permissions.Permission{}, true
	}

	if m.permission == nil {
		return path, permissions.Permission{}, false
	}

	permission := m.permission.FindPermissions(path, request.Method)

	return path, permission, permission.Skip
}

func unauthorized(writer http.ResponseWriter, message string) {
	writer.Header().Set(constant.RequestHeaderWWWAuthenticate, authRealm)
	response.WithError(writer, failure.Unauthorized(message))
}

// Auth accepts either htpasswd basic credentials or a bearer access token.
// Routes marked skip in the permission file and unmatched routes pass through.
func (m *authRoleImpl) Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		ctx, scope := m.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, "auth.middleware")

		path, _, skip := m.lookup(request)
		if skip {
			scope.End()
			next.ServeHTTP(writer, request)

			return
		}

		scope.SetAttributes(map[string]any{
			"middleware.type": "auth",
			"http.path":       path,
			"http.method":     request.Method,
		})

		authHeader := request.Header.Get(constant.RequestHeaderAuthorization)
		scheme, _, _ := strings.Cut(authHeader, " ")

		var (
			username string
			role     string
			tokenID  string
			err      error
		)

		switch {
		case authHeader == constant.Empty:
			err = failure.Unauthorized("Missing authorization header")
		case strings.EqualFold(scheme, authSchemeBasic):
			username, err = m.basic(request)
			role = constant.RoleAdmin
		case strings.EqualFold(scheme, authSchemeBearer):
			var claims *jwt.Claims

			claims, err = m.bearer(authHeader)
			if claims != nil {
				username, role, tokenID = claims.Username, claims.Role, claims.TokenID
			}
		default:
			err = failure.Unauthorized("Invalid authorization header format")
		}

		if err != nil {
			scope.TraceError(err)
			scope.End()
			unauthorized(writer, err.Error())

			return
		}

		ctx = context.WithValue(ctx, constant.ContextKeyUserID, username)
		ctx = context.WithValue(ctx, constant.ContextKeyUserRole, role)
		ctx = context.WithValue(ctx, constant.ContextKeyTokenID, tokenID)

		scope.End()

		next.ServeHTTP(writer, request.WithContext(ctx))
	})
}

func (m *authRoleImpl) basic(request *http.Request) (string, error) {
	username, plain, ok := request.BasicAuth()
	if !ok {
		return constant.Empty, failure.Unauthorized("Invalid authorization header format")
	}

	if err := m.htpasswd.Verify(username, plain); err != nil {
		log.Warn().Err(err).Str("username", username).Msg("basic authentication failed")

		return constant.Empty, failure.Unauthorized("Invalid credentials")
	}

	return username, nil
}

func (m *authRoleImpl) bearer(authHeader string) (*jwt.Claims, error) {
	tokenString, err := jwt.ExtractTokenFromHeader(authHeader)
	if err != nil {
		return nil, failure.Unauthorized("Invalid authorization header format")
	}

	claims, err := m.jwtService.ValidateToken(tokenString, jwt.AccessToken)
	if err != nil {
		var message string

		switch {
		case errors.Is(err, jwt.ErrExpiredToken):
			message = "Token has expired"
		case errors.Is(err, jwt.ErrInvalidToken):
			message = "Invalid token"
		case errors.Is(err, jwt.ErrInvalidClaim):
			message = "Invalid token claims"
		default:
			message = "Token validation failed"
		}

		return nil, failure.Unauthorized(message)
	}

	if claims.Username == constant.Empty {
		log.Error().Msg("JWT claims: Username is empty")

		return nil, failure.Unauthorized("Invalid token claims")
	}

	return claims, nil
}

// RBAC checks the role placed in the context by Auth against the roles
// listed for the route. Routes without roles accept any authenticated user.
func (m *authRoleImpl) RBAC(next http.Handler) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		ctx := request.Context()
		_, scope := m.otel.NewScope(ctx, constant.OtelHandlerScopeName, "rbac.middleware")

		_, permission, skip := m.lookup(request)
		if skip || len(permission.Permissions) == 0 {
			scope.End()
			next.ServeHTTP(writer, request)

			return
		}

		userRole, _ := ctx.Value(constant.ContextKeyUserRole).(string)

		if !slices.Contains(permission.Permissions, userRole) {
			err := failure.ForbiddenError
			scope.TraceError(err)
			scope.SetAttributes(map[string]any{
				"user_role":     userRole,
				"allowed_roles": permission.Permissions,
				"reason":        "role_not_allowed",
			})
			scope.End()
			response.WithError(writer, err)

			return
		}

		scope.End()
		next.ServeHTTP(writer, request)
	})
}

package middleware

import (
	"context"
	"errors"
	"net/http"

	"agenda/infras/jwt"
	"agenda/infras/otel"
	"agenda/shared/constant"
	"agenda/shared/failure"
	"agenda/transport/http/response"
)

// Auth resolves the identity context for each request. The platform issues
// the tokens; this service only verifies them and branches on the role.
type Auth interface {
	Tenant(http.Handler) http.Handler
	Authenticate(http.Handler) http.Handler
	RequireAdmin(http.Handler) http.Handler
}

type authImpl struct {
	verifier jwt.Verifier
	otel     otel.Otel
}

func NewAuth(verifier jwt.Verifier, otel otel.Otel) Auth {
	return &authImpl{
		verifier: verifier,
		otel:     otel,
	}
}

// Tenant requires the tenant header on public routes, where no token is
// available to carry the tenant. Authenticated routes take the tenant from
// the token instead.
func (m *authImpl) Tenant(next http.Handler) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		ctx := request.Context()

		if tenantID, _ := ctx.Value(constant.ContextKeyTenantID).(string); tenantID != "" {
			next.ServeHTTP(writer, request)

			return
		}

		tenantID := request.Header.Get(constant.RequestHeaderTenantID)
		if tenantID == "" {
			response.WithError(writer, failure.BadRequestFromString("missing tenant header"))

			return
		}

		ctx = context.WithValue(ctx, constant.ContextKeyTenantID, tenantID)

		next.ServeHTTP(writer, request.WithContext(ctx))
	})
}

// Authenticate validates the bearer token and stores the actor's identity
// and tenant in the request context.
func (m *authImpl) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		ctx := request.Context()
		_, scope := m.otel.NewScope(ctx, constant.OtelHandlerScopeName, "auth.middleware")

		tokenString, err := jwt.ExtractTokenFromHeader(request.Header.Get(constant.RequestHeaderAuthorization))
		if err != nil {
			failed := failure.Unauthorized("missing or malformed authorization header")
			response.WithError(writer, failed)

			scope.TraceError(failed)
			scope.End()

			return
		}

		claims, err := m.verifier.Verify(tokenString)
		if err != nil {
			var message string

			switch {
			case errors.Is(err, jwt.ErrExpiredToken):
				message = "token has expired"
			case errors.Is(err, jwt.ErrInvalidClaim):
				message = "invalid token claims"
			default:
				message = "invalid token"
			}

			failed := failure.Unauthorized(message)
			response.WithError(writer, failed)

			scope.TraceError(failed)
			scope.End()

			return
		}

		ctx = context.WithValue(ctx, constant.ContextKeyActorEmail, claims.Email)
		ctx = context.WithValue(ctx, constant.ContextKeyActorRole, claims.Role)
		ctx = context.WithValue(ctx, constant.ContextKeyActorID, claims.ClientID)

		if claims.TenantID != "" {
			ctx = context.WithValue(ctx, constant.ContextKeyTenantID, claims.TenantID)
		}

		scope.End()

		next.ServeHTTP(writer, request.WithContext(ctx))
	})
}

// RequireAdmin gates admin-only routes. Must run after Authenticate.
func (m *authImpl) RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		role, _ := request.Context().Value(constant.ContextKeyActorRole).(string)

		if role != constant.RoleAdmin {
			response.WithError(writer, failure.ForbiddenError)

			return
		}

		next.ServeHTTP(writer, request)
	})
}

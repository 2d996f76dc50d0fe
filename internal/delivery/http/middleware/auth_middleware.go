package middleware

import (
	deliverycontext "furnishop/internal/delivery/context"
	"furnishop/internal/domain/entity"
	domainerrors "furnishop/internal/domain/errors"
	"furnishop/internal/usecase"

	"github.com/labstack/echo/v4"
)

// AuthMiddleware guards routes with the client-resident session.
type AuthMiddleware struct {
	session usecase.SessionUsecase
}

func NewAuthMiddleware(session usecase.SessionUsecase) *AuthMiddleware {
	return &AuthMiddleware{session: session}
}

// Authenticate resolves the logged-in user and rejects the request when there is none.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		user := m.session.CurrentUser(c.Request().Context())
		if user == nil {
			return domainerrors.ErrUnauthenticated
		}
		deliverycontext.SetUser(c, user)

		return next(c)
	}
}

// RequireRole must run after Authenticate.
func (m *AuthMiddleware) RequireRole(role entity.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			user, ok := deliverycontext.GetUser(c)
			if !ok {
				return domainerrors.ErrUnauthenticated
			}
			if user.Role != role {
				return domainerrors.ErrForbidden.WithDetails("requires role " + role.String())
			}

			return next(c)
		}
	}
}

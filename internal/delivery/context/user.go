package context

import (
	"furnishop/internal/domain/entity"

	"github.com/labstack/echo/v4"
)

// KeyUser is the echo.Context key of the logged-in user resolved by the session middleware.
const KeyUser ContextKey = "user"

func SetUser(c echo.Context, user *entity.User) {
	c.Set(string(KeyUser), user)
}

// GetUser returns the user resolved for this request, or false when nobody is logged in.
func GetUser(c echo.Context) (*entity.User, bool) {
	user, ok := c.Get(string(KeyUser)).(*entity.User)

	return user, ok && user != nil
}

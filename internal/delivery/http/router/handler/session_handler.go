package handler

import (
	"net/http"

	"furnishop/internal/delivery/http/response"
	"furnishop/internal/domain/entity"
	domainerrors "furnishop/internal/domain/errors"
	"furnishop/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// SessionHandlerParams holds dependencies for SessionHandler, injected by Fx.
type SessionHandlerParams struct {
	fx.In

	SessionUC usecase.SessionUsecase
}

// SessionHandler serves login, signup and logout.
type SessionHandler struct {
	sessionUC usecase.SessionUsecase
}

func NewSessionHandler(params SessionHandlerParams) *SessionHandler {
	return &SessionHandler{sessionUC: params.SessionUC}
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// SignupRequest carries the signup form. The minimum password length is
// enforced here and not by the session store.
type SignupRequest struct {
	Name     string `json:"name" validate:"required,notblank"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

type SessionView struct {
	User    *entity.User `json:"user"`
	IsAdmin bool         `json:"isAdmin"`
}

func (h *SessionHandler) view(c echo.Context) SessionView {
	user := h.sessionUC.CurrentUser(c.Request().Context())

	return SessionView{User: user, IsAdmin: user.IsAdmin()}
}

// GetSession returns the logged-in user, or a null user.
func (h *SessionHandler) GetSession(c echo.Context) error {
	return response.OK(c, h.view(c))
}

func (h *SessionHandler) Login(c echo.Context) error {
	var req LoginRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	ok, err := h.sessionUC.Login(c.Request().Context(), usecase.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return errors.WithStack(err)
	}
	if !ok {
		return domainerrors.ErrInvalidCredentials
	}

	return response.Success(c, http.StatusOK, h.view(c), "Login successful")
}

func (h *SessionHandler) Signup(c echo.Context) error {
	var req SignupRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	ok, err := h.sessionUC.Signup(c.Request().Context(), usecase.SignupInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return errors.WithStack(err)
	}
	if !ok {
		return domainerrors.ErrEmailAlreadyRegistered
	}

	return response.Success(c, http.StatusCreated, h.view(c), "Account created")
}

func (h *SessionHandler) Logout(c echo.Context) error {
	if err := h.sessionUC.Logout(c.Request().Context()); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, h.view(c), "Logged out")
}

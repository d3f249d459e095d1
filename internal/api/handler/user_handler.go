package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/whiskerworks/cat-registry/internal/api/metrics"
	"github.com/whiskerworks/cat-registry/internal/core/ports"
)

// UserHandler handles user registration, reads, and self-service mutations.
type UserHandler struct {
	authService ports.AuthService
	userService ports.UserService
}

func NewUserHandler(authService ports.AuthService, userService ports.UserService) *UserHandler {
	return &UserHandler{authService: authService, userService: userService}
}

// Register creates a new account. The stored role is always "user".
//
// @Summary      Register a new user
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        body  body      registerRequest  true  "User registration details"
// @Success      201   {object}  messageResponse
// @Failure      400   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Router       /users [post]
func (h *UserHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	user, err := h.authService.Register(c.Request().Context(), ports.RegisterInput{
		UserName: req.UserName,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return err
	}

	metrics.UsersRegisteredTotal.Inc()
	return c.JSON(http.StatusCreated, messageResponse{
		Message: "user created",
		Data:    toUserResponse(user.Profile()),
	})
}

// Get returns a user's public profile by id.
//
// @Summary      Get a user by id
// @Tags         users
// @Produce      json
// @Param        id   path      string  true  "User id"
// @Success      200  {object}  userResponse
// @Failure      404  {object}  errorResponse
// @Router       /users/{id} [get]
func (h *UserHandler) Get(c echo.Context) error {
	profile, err := h.userService.GetByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toUserResponse(*profile))
}

// List returns every user's public profile. An empty registry is a valid
// 200 response with an empty array.
//
// @Summary      List all users
// @Tags         users
// @Produce      json
// @Success      200  {array}  userResponse
// @Router       /users [get]
func (h *UserHandler) List(c echo.Context) error {
	profiles, err := h.userService.List(c.Request().Context())
	if err != nil {
		return err
	}
	out := make([]userResponse, 0, len(profiles))
	for _, p := range profiles {
		out = append(out, toUserResponse(p))
	}
	return c.JSON(http.StatusOK, out)
}

// UpdateCurrent merges the supplied fields into the caller's own profile.
//
// @Summary      Update the current user
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      updateUserRequest  true  "Fields to update"
// @Success      200   {object}  messageResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Router       /users [put]
func (h *UserHandler) UpdateCurrent(c echo.Context) error {
	principal, err := ctxPrincipal(c)
	if err != nil {
		return err
	}

	var req updateUserRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	profile, err := h.userService.UpdateCurrent(c.Request().Context(), principal, ports.UpdateUserInput{
		UserName: req.UserName,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, messageResponse{
		Message: "user updated",
		Data:    toUserResponse(*profile),
	})
}

// DeleteCurrent removes the caller's own account.
//
// @Summary      Delete the current user
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  messageResponse
// @Failure      401  {object}  errorResponse
// @Router       /users [delete]
func (h *UserHandler) DeleteCurrent(c echo.Context) error {
	principal, err := ctxPrincipal(c)
	if err != nil {
		return err
	}

	profile, err := h.userService.DeleteCurrent(c.Request().Context(), principal)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, messageResponse{
		Message: "user deleted",
		Data:    toUserResponse(*profile),
	})
}

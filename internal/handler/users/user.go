package users

import (
	"context"
	"net/http"
	"strings"

	"lightbnb/internal/api"
	"lightbnb/internal/database"
	"lightbnb/internal/metrics"
	"lightbnb/internal/middleware"
	"lightbnb/internal/model"
	"lightbnb/internal/repository"
	"lightbnb/internal/service"

	"github.com/labstack/echo/v4"
)

// TokenService is satisfied by *service.Tokens.
type TokenService interface {
	Issue(user model.User) (string, error)
	Revoke(ctx context.Context, claims *service.Claims) error
}

var (
	hashPassword     = service.HashPassword
	authenticateUser = service.AuthenticateUser
	getUserWithEmail = repository.GetUserWithEmail
	getUserWithID    = repository.GetUserWithID
	addUser          = repository.AddUser
)

func userResponse(u *model.User) api.UserResponse {
	return api.UserResponse{ID: u.ID, Name: u.Name, Email: u.Email}
}

// @Summary     Register
// @Description Creates an account and returns an access token. Email is lower-cased.
// @Tags        users
// @Accept      application/x-www-form-urlencoded
// @Produce     json
// @Param       name     formData string true "Name"
// @Param       email    formData string true "Email"
// @Param       password formData string true "Password"
// @Success     201 {object} api.AuthResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     409 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Router      /users [post]
func CreateUserHandler(db database.DB, tokens TokenService) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.CreateUserRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid form data"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: err.Error()})
		}
		req.Email = strings.ToLower(req.Email)

		ctx := c.Request().Context()
		if existing := getUserWithEmail(ctx, db, req.Email); existing != nil {
			return c.JSON(http.StatusConflict, api.ErrorResponse{Message: "email already registered"})
		}

		hash, err := hashPassword(req.Password)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "failed to hash password"})
		}

		user := addUser(ctx, db, &model.User{Name: req.Name, Email: req.Email, Password: hash})
		if user == nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "could not create user"})
		}

		token, err := tokens.Issue(*user)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "failed to issue token"})
		}
		return c.JSON(http.StatusCreated, api.AuthResponse{Token: token, User: userResponse(user)})
	}
}

// @Summary     Log in
// @Tags        users
// @Accept      application/x-www-form-urlencoded
// @Produce     json
// @Param       email    formData string true "Email"
// @Param       password formData string true "Password"
// @Success     200 {object} api.AuthResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     401 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Router      /users/login [post]
func LoginHandler(db database.DB, tokens TokenService) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.LoginRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid form data"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: err.Error()})
		}

		user := getUserWithEmail(c.Request().Context(), db, strings.ToLower(req.Email))
		if err := authenticateUser(user, req.Password); err != nil {
			metrics.LoginAttempts.WithLabelValues("failure").Inc()
			return c.JSON(http.StatusUnauthorized, api.ErrorResponse{Message: "invalid credentials"})
		}

		token, err := tokens.Issue(*user)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "failed to issue token"})
		}
		metrics.LoginAttempts.WithLabelValues("success").Inc()
		return c.JSON(http.StatusOK, api.AuthResponse{Token: token, User: userResponse(user)})
	}
}

// @Summary     Log out
// @Description Revokes the presented access token
// @Tags        users
// @Success     204 "No Content"
// @Failure     401 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /users/logout [post]
func LogoutHandler(tokens TokenService) echo.HandlerFunc {
	return func(c echo.Context) error {
		claims := middleware.CurrentClaims(c)
		if claims == nil {
			return c.JSON(http.StatusUnauthorized, api.ErrorResponse{Message: "invalid or missing token"})
		}
		if err := tokens.Revoke(c.Request().Context(), claims); err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "failed to revoke token"})
		}
		return c.NoContent(http.StatusNoContent)
	}
}

// @Summary     Current user
// @Tags        users
// @Produce     json
// @Success     200 {object} api.UserResponse
// @Failure     401 {object} api.ErrorResponse
// @Failure     404 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /users/me [get]
func GetMyUserHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		claims := middleware.CurrentClaims(c)
		if claims == nil {
			return c.JSON(http.StatusUnauthorized, api.ErrorResponse{Message: "invalid or missing token"})
		}
		user := getUserWithID(c.Request().Context(), db, claims.UserID)
		if user == nil {
			return c.JSON(http.StatusNotFound, api.ErrorResponse{Message: "user not found"})
		}
		return c.JSON(http.StatusOK, userResponse(user))
	}
}

package reservations

import (
	"net/http"
	"strconv"

	"lightbnb/internal/api"
	"lightbnb/internal/database"
	"lightbnb/internal/middleware"
	"lightbnb/internal/model"
	"lightbnb/internal/repository"

	"github.com/labstack/echo/v4"
)

var getAllReservations = repository.GetAllReservations

// @Summary     My reservations
// @Description Reservations of the caller, earliest start date first
// @Tags        reservations
// @Produce     json
// @Param       limit query int false "Maximum number of reservations"
// @Success     200 {object} api.ReservationsResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     401 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /reservations [get]
func ListReservationsHandler(db database.DB, defaultLimit int) echo.HandlerFunc {
	return func(c echo.Context) error {
		claims := middleware.CurrentClaims(c)
		if claims == nil {
			return c.JSON(http.StatusUnauthorized, api.ErrorResponse{Message: "invalid or missing token"})
		}

		limit := defaultLimit
		if raw := c.QueryParam("limit"); raw != "" {
			n, err := strconv.Atoi(raw)
			if err != nil || n < 0 {
				return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid limit"})
			}
			limit = n
		}

		list := getAllReservations(c.Request().Context(), db, claims.UserID, limit)
		if list == nil {
			list = []model.GuestReservation{}
		}
		return c.JSON(http.StatusOK, api.ReservationsResponse{Reservations: list})
	}
}

package properties

import (
	"net/http"

	"lightbnb/internal/api"
	"lightbnb/internal/database"
	"lightbnb/internal/middleware"
	"lightbnb/internal/model"
	"lightbnb/internal/repository"

	"github.com/labstack/echo/v4"
)

var (
	getAllProperties = repository.GetAllProperties
	addProperty      = repository.AddProperty
)

// @Summary     Search properties
// @Description Cheapest first. Prices are per night in whole units; the price range needs both bounds.
// @Tags        properties
// @Produce     json
// @Param       city                    query string false "City substring, case-insensitive"
// @Param       owner_id                query int    false "Owner id"
// @Param       minimum_price_per_night query int    false "Minimum price"
// @Param       maximum_price_per_night query int    false "Maximum price"
// @Param       minimum_rating          query number false "Minimum average rating"
// @Param       limit                   query int    false "Page size"
// @Success     200 {object} api.PropertiesResponse
// @Failure     400 {object} api.ErrorResponse
// @Router      /properties [get]
func SearchPropertiesHandler(db database.DB, pageSize int) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.PropertySearchRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid query parameters"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: err.Error()})
		}

		limit := req.Limit
		if limit == 0 {
			limit = pageSize
		}
		list := getAllProperties(c.Request().Context(), db, req.Search(), limit)
		if list == nil {
			list = []model.PropertyListing{}
		}
		return c.JSON(http.StatusOK, api.PropertiesResponse{Properties: list})
	}
}

// @Summary     Create property
// @Description Lists a property owned by the caller. Omitted fields get defaults.
// @Tags        properties
// @Accept      json
// @Produce     json
// @Param       body body api.CreatePropertyRequest true "Property"
// @Success     201 {object} model.Property
// @Failure     400 {object} api.ErrorResponse
// @Failure     401 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /properties [post]
func CreatePropertyHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		claims := middleware.CurrentClaims(c)
		if claims == nil {
			return c.JSON(http.StatusUnauthorized, api.ErrorResponse{Message: "invalid or missing token"})
		}

		var req api.CreatePropertyRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid request body"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: err.Error()})
		}

		p := addProperty(c.Request().Context(), db, req.Draft(claims.UserID))
		if p == nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "could not create property"})
		}
		return c.JSON(http.StatusCreated, p)
	}
}

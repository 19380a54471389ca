package api

import (
	"lightbnb/internal/model"
	"lightbnb/internal/query"
)

// PropertySearchRequest is bound from the query string. Zero means unset.
// swagger:model api.PropertySearchRequest
type PropertySearchRequest struct {
	City                 string  `query:"city" example:"Vancouver"`
	OwnerID              int     `query:"owner_id" validate:"gte=0"`
	MinimumPricePerNight int     `query:"minimum_price_per_night" validate:"gte=0" example:"50"`
	MaximumPricePerNight int     `query:"maximum_price_per_night" validate:"gte=0" example:"200"`
	MinimumRating        float64 `query:"minimum_rating" validate:"gte=0,lte=5" example:"4"`
	Limit                int     `query:"limit" validate:"gte=0,lte=100" example:"20"`
}

func (r PropertySearchRequest) Search() query.PropertySearch {
	return query.PropertySearch{
		City:                 r.City,
		OwnerID:              r.OwnerID,
		MinimumPricePerNight: r.MinimumPricePerNight,
		MaximumPricePerNight: r.MaximumPricePerNight,
		MinimumRating:        r.MinimumRating,
	}
}

// CreatePropertyRequest leaves every field optional; the store fills gaps.
// CostPerNight is in whole currency units and stored in cents.
// swagger:model api.CreatePropertyRequest
type CreatePropertyRequest struct {
	Title             string `form:"title" json:"title" example:"Speed lamp"`
	Description       string `form:"description" json:"description"`
	ThumbnailPhotoURL string `form:"thumbnail_photo_url" json:"thumbnail_photo_url" validate:"omitempty,url"`
	CoverPhotoURL     string `form:"cover_photo_url" json:"cover_photo_url" validate:"omitempty,url"`
	CostPerNight      int    `form:"cost_per_night" json:"cost_per_night" validate:"gte=0" example:"120"`
	ParkingSpaces     int    `form:"parking_spaces" json:"parking_spaces" validate:"gte=0"`
	NumberOfBathrooms int    `form:"number_of_bathrooms" json:"number_of_bathrooms" validate:"gte=0"`
	NumberOfBedrooms  int    `form:"number_of_bedrooms" json:"number_of_bedrooms" validate:"gte=0"`
	Country           string `form:"country" json:"country"`
	Street            string `form:"street" json:"street"`
	City              string `form:"city" json:"city"`
	Province          string `form:"province" json:"province"`
	PostCode          string `form:"post_code" json:"post_code"`
}

// Draft converts the request into a draft owned by ownerID.
func (r CreatePropertyRequest) Draft(ownerID int) model.PropertyDraft {
	return model.PropertyDraft{
		OwnerID:           ownerID,
		Title:             r.Title,
		Description:       r.Description,
		ThumbnailPhotoURL: r.ThumbnailPhotoURL,
		CoverPhotoURL:     r.CoverPhotoURL,
		CostPerNight:      r.CostPerNight * 100,
		ParkingSpaces:     r.ParkingSpaces,
		NumberOfBathrooms: r.NumberOfBathrooms,
		NumberOfBedrooms:  r.NumberOfBedrooms,
		Country:           r.Country,
		Street:            r.Street,
		City:              r.City,
		Province:          r.Province,
		PostCode:          r.PostCode,
	}
}

// swagger:model api.PropertiesResponse
type PropertiesResponse struct {
	Properties []model.PropertyListing `json:"properties"`
}

// swagger:model api.ReservationsResponse
type ReservationsResponse struct {
	Reservations []model.GuestReservation `json:"reservations"`
}

// File: internal/model/property.go
package model

// Property is a row of the properties table. CostPerNight is stored in cents.
type Property struct {
	ID                int    `db:"id" json:"id"`
	OwnerID           int    `db:"owner_id" json:"owner_id"`
	Title             string `db:"title" json:"title"`
	Description       string `db:"description" json:"description"`
	ThumbnailPhotoURL string `db:"thumbnail_photo_url" json:"thumbnail_photo_url"`
	CoverPhotoURL     string `db:"cover_photo_url" json:"cover_photo_url"`
	CostPerNight      int    `db:"cost_per_night" json:"cost_per_night"`
	ParkingSpaces     int    `db:"parking_spaces" json:"parking_spaces"`
	NumberOfBathrooms int    `db:"number_of_bathrooms" json:"number_of_bathrooms"`
	NumberOfBedrooms  int    `db:"number_of_bedrooms" json:"number_of_bedrooms"`
	Country           string `db:"country" json:"country"`
	Street            string `db:"street" json:"street"`
	City              string `db:"city" json:"city"`
	Province          string `db:"province" json:"province"`
	PostCode          string `db:"post_code" json:"post_code"`
	Active            bool   `db:"active" json:"active"`
}

// PropertyListing is a property together with the mean of its review ratings.
// AverageRating is nil when the property has no reviews.
type PropertyListing struct {
	Property
	AverageRating *float64 `db:"average_rating" json:"average_rating"`
}

// PropertyReview is a row of the property_reviews table.
type PropertyReview struct {
	PropertyID int     `db:"property_id" json:"property_id"`
	Rating     float64 `db:"rating" json:"rating"`
}

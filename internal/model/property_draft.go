// File: internal/model/property_draft.go
package model

// PropertyDraft is the input for a new listing. Every field except OwnerID is
// optional: a zero value is replaced by the matching field of
// DefaultPropertyDraft when WithDefaults is applied.
type PropertyDraft struct {
	OwnerID           int    `json:"owner_id"`
	Title             string `json:"title"`
	Description       string `json:"description"`
	ThumbnailPhotoURL string `json:"thumbnail_photo_url"`
	CoverPhotoURL     string `json:"cover_photo_url"`
	CostPerNight      int    `json:"cost_per_night"`
	ParkingSpaces     int    `json:"parking_spaces"`
	NumberOfBathrooms int    `json:"number_of_bathrooms"`
	NumberOfBedrooms  int    `json:"number_of_bedrooms"`
	Country           string `json:"country"`
	Street            string `json:"street"`
	City              string `json:"city"`
	Province          string `json:"province"`
	PostCode          string `json:"post_code"`
}

// DefaultPropertyDraft holds the fallback value of each optional field.
var DefaultPropertyDraft = PropertyDraft{
	Title:             "title",
	Description:       "description",
	ThumbnailPhotoURL: "https://images.pexels.com/photos/1172064/pexels-photo-1172064.jpeg?auto=compress&cs=tinysrgb&h=350",
	CoverPhotoURL:     "https://images.pexels.com/photos/1172064/pexels-photo-1172064.jpeg",
	CostPerNight:      1000, // cents
	ParkingSpaces:     1,
	NumberOfBathrooms: 1,
	NumberOfBedrooms:  1,
	Country:           "Canada",
	Street:            "Homeview Court",
	City:              "London",
	Province:          "Ontario",
	PostCode:          "N6C6C1",
}

// WithDefaults returns a copy of d with every unset optional field filled
// from DefaultPropertyDraft. OwnerID is never defaulted.
func (d PropertyDraft) WithDefaults() PropertyDraft {
	def := DefaultPropertyDraft
	orString(&d.Title, def.Title)
	orString(&d.Description, def.Description)
	orString(&d.ThumbnailPhotoURL, def.ThumbnailPhotoURL)
	orString(&d.CoverPhotoURL, def.CoverPhotoURL)
	orInt(&d.CostPerNight, def.CostPerNight)
	orInt(&d.ParkingSpaces, def.ParkingSpaces)
	orInt(&d.NumberOfBathrooms, def.NumberOfBathrooms)
	orInt(&d.NumberOfBedrooms, def.NumberOfBedrooms)
	orString(&d.Country, def.Country)
	orString(&d.Street, def.Street)
	orString(&d.City, def.City)
	orString(&d.Province, def.Province)
	orString(&d.PostCode, def.PostCode)
	return d
}

func orString(v *string, fallback string) {
	if *v == "" {
		*v = fallback
	}
}

func orInt(v *int, fallback int) {
	if *v == 0 {
		*v = fallback
	}
}

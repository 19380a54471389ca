// Package query renders the property search into parameterized SQL.
//
// Predicates are collected as structured values and rendered to $n
// placeholders in a fixed order:
//
//	WHERE  city, owner_id, cost_per_night range
//	GROUP BY properties.id
//	HAVING average rating
//	ORDER BY cost_per_night LIMIT
//
// The limit is always the last bound argument.
package query

import (
	"strings"
)

// PropertyColumns is the column list scanned into model.Property, in order.
const PropertyColumns = `properties.id, properties.owner_id, properties.title, properties.description,
properties.thumbnail_photo_url, properties.cover_photo_url, properties.cost_per_night,
properties.parking_spaces, properties.number_of_bathrooms, properties.number_of_bedrooms,
properties.country, properties.street, properties.city, properties.province,
properties.post_code, properties.active`

const averageRating = "avg(property_reviews.rating)"

const propertySearchBase = `SELECT ` + PropertyColumns + `, ` + averageRating + ` AS average_rating
FROM properties
LEFT JOIN property_reviews ON properties.id = property_reviews.property_id`

// PropertySearch holds the optional search filters. A zero value means the
// filter was not supplied. Prices are whole currency units per night; the
// stored cost_per_night is in cents.
type PropertySearch struct {
	City                 string  `query:"city" json:"city"`
	OwnerID              int     `query:"owner_id" json:"owner_id"`
	MinimumPricePerNight int     `query:"minimum_price_per_night" json:"minimum_price_per_night"`
	MaximumPricePerNight int     `query:"maximum_price_per_night" json:"maximum_price_per_night"`
	MinimumRating        float64 `query:"minimum_rating" json:"minimum_rating"`
}

// Where returns the row filters in rendering order. The price range only
// applies when both bounds are given; a single bound is ignored.
func (s PropertySearch) Where() []Predicate {
	var preds []Predicate
	if s.City != "" {
		preds = append(preds, Predicate{Column: "properties.city", Op: OpILike, Args: []any{"%" + s.City + "%"}})
	}
	if s.OwnerID != 0 {
		preds = append(preds, Predicate{Column: "properties.owner_id", Op: OpEqual, Args: []any{s.OwnerID}})
	}
	if s.MinimumPricePerNight != 0 && s.MaximumPricePerNight != 0 {
		preds = append(preds, Predicate{
			Column: "properties.cost_per_night",
			Op:     OpBetween,
			Args:   []any{s.MinimumPricePerNight * 100, s.MaximumPricePerNight * 100},
		})
	}
	return preds
}

// Having returns the filters over the grouped average rating.
func (s PropertySearch) Having() []Predicate {
	if s.MinimumRating == 0 {
		return nil
	}
	return []Predicate{{Column: averageRating, Op: OpGreaterEqual, Args: []any{s.MinimumRating}}}
}

// BuildPropertySearch renders the search for at most limit properties,
// cheapest first. limit is bound as given.
func BuildPropertySearch(s PropertySearch, limit int) Statement {
	var (
		sb strings.Builder
		b  binder
	)
	sb.WriteString(propertySearchBase)
	b.writeClause(&sb, "WHERE", s.Where())
	sb.WriteString(" GROUP BY properties.id")
	b.writeClause(&sb, "HAVING", s.Having())
	sb.WriteString(" ORDER BY properties.cost_per_night LIMIT " + b.bind(limit))
	return Statement{SQL: sb.String(), Args: b.args}
}

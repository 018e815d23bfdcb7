package enrich

import (
	"fmt"

	"listmate/internal/model"
)

// amenitiesQuery covers every amenity category in one search so the
// minimal strategy stays at two requests total. Rentals lead with
// transportation terms, sales with schools.
func amenitiesQuery(address string, listingType model.ListingType) string {
	terms := "schools shopping amenities supermarkets parks subway transportation"
	if listingType == model.ListingTypeRent {
		terms = "subway transportation shopping amenities supermarkets parks schools"
	}
	return fmt.Sprintf("%s %s near", address, terms)
}

// qualityQuery targets neighborhood character and safety context.
func qualityQuery(address string) string {
	return fmt.Sprintf("%s crime rates quality of life safety neighborhood statistics", address)
}

func categoryQuery(address, category string) string {
	return fmt.Sprintf("%s best %s nearby", address, category)
}

func neighborhoodQuery(address string) string {
	return fmt.Sprintf("%s neighborhood area information", address)
}

func landmarksQuery(address string) string {
	return fmt.Sprintf("%s famous landmarks attractions nearby", address)
}

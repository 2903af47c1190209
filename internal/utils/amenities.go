package utils

import (
	"strings"
)

// amenityKeys fixes the iteration order so extraction output is stable.
var amenityKeys = []string{
	"tv",
	"wifi",
	"disabled_access",
	"woods",
	"hot_tubs",
	"views",
	"lake",
	"pet_friendly",
}

// amenitySynonyms maps canonical amenity keys to substrings that imply them.
var amenitySynonyms = map[string][]string{
	"tv":              {"tv", "television", "cable"},
	"wifi":            {"wifi", "wi-fi", "internet"},
	"disabled_access": {"disabled access", "wheelchair", "accessible"},
	"woods":           {"woods", "forest", "wooded"},
	"hot_tubs":        {"hot tub", "hot tubs", "jacuzzi"},
	"views":           {"view", "views", "scenic"},
	"lake":            {"lake", "lakefront", "waterfront"},
	"pet_friendly":    {"pet friendly", "pet-friendly", "pets allowed", "pets"},
}

// ExtractAmenities returns every canonical amenity key whose raw key or any
// synonym substring appears anywhere in the (lower-cased) text. Matches are
// not mutually exclusive.
func ExtractAmenities(text string) []string {
	var matched []string
	for _, key := range amenityKeys {
		if containsAmenity(text, key) {
			matched = append(matched, key)
		}
	}
	return matched
}

func containsAmenity(text, key string) bool {
	if strings.Contains(text, key) {
		return true
	}
	for _, syn := range amenitySynonyms[key] {
		if strings.Contains(text, syn) {
			return true
		}
	}
	return false
}

// HasAmenity reports whether a listing's amenity set contains the key.
// A listing with no amenities can never satisfy an amenity request.
func HasAmenity(amenities []string, key string) bool {
	for _, a := range amenities {
		if a == key {
			return true
		}
	}
	return false
}

// DisplayAmenity converts a canonical key to its display form.
func DisplayAmenity(key string) string {
	return strings.ReplaceAll(key, "_", " ")
}

package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hassanadil1/Panora-sub000/internal/model"
)

func intPtr(v int) *int { return &v }

func floatPtr(v float64) *float64 { return &v }

func strPtr(v string) *string { return &v }

func testListing(id int64, title, city string, bedrooms int, price float64) model.Listing {
	return model.Listing{
		ID:        id,
		Title:     title,
		City:      city,
		Bedrooms:  bedrooms,
		Bathrooms: 2,
		AreaSize:  1200,
		Price:     price,
		Purpose:   "rent",
		Type:      "house",
		CreatedAt: time.Date(2025, 1, int(id), 0, 0, 0, 0, time.UTC),
	}
}

func TestRecommender_FilterListings_BedroomMinimum(t *testing.T) {
	r := NewRecommender()
	listings := []model.Listing{
		testListing(1, "Two bed", "Lahore", 2, 90000),
		testListing(2, "Three bed", "Lahore", 3, 110000),
		testListing(3, "Five bed", "Lahore", 5, 200000),
	}

	filtered := r.FilterListings(listings, &model.QueryFeatures{Bedrooms: intPtr(3)})

	require.Len(t, filtered, 2)
	assert.Equal(t, int64(2), filtered[0].ID)
	assert.Equal(t, int64(3), filtered[1].ID)
}

func TestRecommender_FilterListings_PriceBounds(t *testing.T) {
	r := NewRecommender()
	listings := []model.Listing{
		testListing(1, "Cheap", "Lahore", 2, 40000),
		testListing(2, "Mid", "Lahore", 3, 120000),
		testListing(3, "Expensive", "Lahore", 4, 600000),
	}

	filtered := r.FilterListings(listings, &model.QueryFeatures{
		MinPrice: floatPtr(50000),
		MaxPrice: floatPtr(200000),
	})

	require.Len(t, filtered, 1)
	assert.Equal(t, "Mid", filtered[0].Title)
}

func TestRecommender_FilterListings_CaseSensitiveType(t *testing.T) {
	r := NewRecommender()
	l := testListing(1, "Cased", "Lahore", 3, 90000)
	l.Type = "House" // stored with capital, query is lower-cased

	filtered := r.FilterListings([]model.Listing{l}, &model.QueryFeatures{PropertyType: strPtr("house")})

	// The case mismatch between query text and stored fields is preserved
	// behavior: mixed-case listing types never match.
	assert.Empty(t, filtered)
}

func TestRecommender_FilterListings_Amenities(t *testing.T) {
	r := NewRecommender()
	withWifi := testListing(1, "Wired", "Lahore", 2, 80000)
	withWifi.Amenities = model.JSONArray{"wifi", "tv"}
	without := testListing(2, "Bare", "Lahore", 2, 70000)

	filtered := r.FilterListings([]model.Listing{withWifi, without}, &model.QueryFeatures{
		Amenities: []string{"wifi"},
	})

	require.Len(t, filtered, 1)
	assert.Equal(t, "Wired", filtered[0].Title)
}

func TestRecommender_SortListings(t *testing.T) {
	r := NewRecommender()

	listings := []model.Listing{
		testListing(1, "Mid", "Lahore", 3, 120000),
		testListing(2, "Cheap", "Lahore", 2, 40000),
		testListing(3, "Expensive", "Lahore", 4, 600000),
	}

	r.SortListings(listings, &model.QueryFeatures{SortBy: strPtr("price"), SortOrder: strPtr("asc")})
	assert.Equal(t, "Cheap", listings[0].Title)
	assert.Equal(t, "Expensive", listings[2].Title)

	// Default direction is descending when no order token was given.
	r.SortListings(listings, &model.QueryFeatures{SortBy: strPtr("price")})
	assert.Equal(t, "Expensive", listings[0].Title)

	// Without a sort field the order is left as-is, even when a direction
	// token was extracted.
	before := append([]model.Listing(nil), listings...)
	r.SortListings(listings, &model.QueryFeatures{SortOrder: strPtr("asc")})
	assert.Equal(t, before, listings)
}

func TestRecommender_SmartRecommendations_AffordableBoundary(t *testing.T) {
	r := NewRecommender()
	atLimit := testListing(1, "At limit", "Lahore", 3, 150000)
	overLimit := testListing(2, "Over limit", "Lahore", 3, 150001)

	results := r.SmartRecommendations([]model.Listing{atLimit, overLimit}, &model.QueryFeatures{
		BudgetPreference: strPtr("affordable"),
	})

	require.Len(t, results, 1)
	assert.Equal(t, "At limit", results[0].Title)
	// At the band boundary the affordable bonus still applies.
	assert.Equal(t, 2.0, results[0].RelevanceScore)
}

func TestRecommender_SmartRecommendations_FamilyScenario(t *testing.T) {
	r := NewRecommender()
	lahoreHouse := testListing(1, "Lahore house", "Lahore", 3, 110000)
	karachiHouse := testListing(2, "Karachi house", "Karachi", 5, 150000)

	results := r.SmartRecommendations([]model.Listing{karachiHouse, lahoreHouse}, &model.QueryFeatures{
		FamilySize: strPtr("3-4"),
		Location:   strPtr("lahore"),
	})

	require.Len(t, results, 2)
	// Location match (+3) plus ideal bedrooms (+3) ranks the Lahore house first.
	assert.Equal(t, "Lahore house", results[0].Title)
	assert.Equal(t, 6.0, results[0].RelevanceScore)
	// Two bedrooms off the ideal count: 3 - 2 = 1, no location bonus.
	assert.Equal(t, 1.0, results[1].RelevanceScore)
}

func TestRecommender_SmartRecommendations_EmptyFeatures(t *testing.T) {
	r := NewRecommender()
	listings := []model.Listing{
		testListing(1, "First", "Lahore", 2, 90000),
		testListing(2, "Second", "Karachi", 3, 110000),
		testListing(3, "Third", "Islamabad", 4, 130000),
	}

	results := r.SmartRecommendations(listings, &model.QueryFeatures{})

	require.Len(t, results, 3)
	for i, res := range results {
		assert.Equal(t, listings[i].ID, res.ID, "input order must be preserved")
		assert.Zero(t, res.RelevanceScore)
	}
}

func TestRecommender_SmartRecommendations_Idempotent(t *testing.T) {
	r := NewRecommender()
	listings := []model.Listing{
		testListing(1, "A", "Lahore", 3, 110000),
		testListing(2, "B", "Lahore", 4, 95000),
		testListing(3, "C", "Karachi", 2, 60000),
	}
	f := &model.QueryFeatures{FamilySize: strPtr("3-4"), Location: strPtr("lahore")}

	first := r.SmartRecommendations(listings, f)
	second := r.SmartRecommendations(listings, f)

	assert.Equal(t, first, second)
}

func TestRecommender_SmartRecommendations_EmptyCandidates(t *testing.T) {
	r := NewRecommender()

	results := r.SmartRecommendations(nil, &model.QueryFeatures{FamilySize: strPtr("3-4")})

	assert.Empty(t, results)
}

func TestRecommender_SmartRecommendations_FamilySizeCut(t *testing.T) {
	r := NewRecommender()
	studio := testListing(1, "Studio", "Lahore", 1, 40000)
	threeBed := testListing(2, "Three bed", "Lahore", 3, 110000)
	mansion := testListing(3, "Mansion", "Lahore", 8, 900000)

	results := r.SmartRecommendations([]model.Listing{studio, threeBed, mansion}, &model.QueryFeatures{
		FamilySize: strPtr("3-4"),
	})

	// The 3-4 bucket keeps bedrooms in [2, 5] only.
	require.Len(t, results, 1)
	assert.Equal(t, "Three bed", results[0].Title)
}

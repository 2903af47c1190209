package service

import (
	"sort"
	"strings"

	"github.com/hassanadil1/Panora-sub000/internal/model"
	"github.com/hassanadil1/Panora-sub000/internal/utils"
)

// Relevance score weights. The score is a simple additive heuristic; a
// listing is never dropped for scoring low, only ranked lower.
const (
	scoreLocationMatch  = 3.0
	scoreFamilyIdeal    = 3.0
	scoreAffordableBand = 2.0
)

// Recommender filters, scores and orders candidate listings.
type Recommender struct{}

// NewRecommender creates a new recommender
func NewRecommender() *Recommender {
	return &Recommender{}
}

// FilterListings keeps only listings satisfying every present constraint.
// Bedrooms and bathrooms are minimums, not exact matches. Type and purpose
// are compared as stored, case-sensitive, against the lower-cased query
// value; listings with mixed-case fields will not match. That mismatch is
// carried over from the original behavior and deliberately left in place.
func (r *Recommender) FilterListings(listings []model.Listing, f *model.QueryFeatures) []model.Listing {
	filtered := make([]model.Listing, 0, len(listings))
	for _, l := range listings {
		if r.matches(l, f) {
			filtered = append(filtered, l)
		}
	}
	return filtered
}

func (r *Recommender) matches(l model.Listing, f *model.QueryFeatures) bool {
	if f == nil {
		return true
	}
	if f.Bedrooms != nil && l.Bedrooms < *f.Bedrooms {
		return false
	}
	if f.Bathrooms != nil && l.Bathrooms < float64(*f.Bathrooms) {
		return false
	}
	if f.MinPrice != nil && l.Price < *f.MinPrice {
		return false
	}
	if f.MaxPrice != nil && l.Price > *f.MaxPrice {
		return false
	}
	if f.PropertyType != nil && l.Type != *f.PropertyType {
		return false
	}
	if f.Purpose != nil && l.Purpose != *f.Purpose {
		return false
	}
	if f.MinArea != nil && l.AreaSize < *f.MinArea {
		return false
	}
	if f.MaxArea != nil && l.AreaSize > *f.MaxArea {
		return false
	}
	if f.Location != nil && !containsFold(l.City, *f.Location) {
		return false
	}
	for _, a := range f.Amenities {
		if !utils.HasAmenity(l.Amenities, a) {
			return false
		}
	}
	return true
}

// SortListings orders listings in place by the requested sort directive.
// Without a SortBy field the input order is left untouched; the direction
// defaults to descending. The sort is stable so ties keep input order.
func (r *Recommender) SortListings(listings []model.Listing, f *model.QueryFeatures) {
	if f == nil || f.SortBy == nil {
		return
	}
	ascending := f.SortOrder != nil && *f.SortOrder == model.SortAsc

	less := func(a, b model.Listing) bool { return false }
	switch *f.SortBy {
	case model.SortByPrice:
		less = func(a, b model.Listing) bool { return a.Price < b.Price }
	case model.SortByArea:
		less = func(a, b model.Listing) bool { return a.AreaSize < b.AreaSize }
	case model.SortByNewest:
		less = func(a, b model.Listing) bool { return a.CreatedAt.Before(b.CreatedAt) }
	default:
		return
	}

	sort.SliceStable(listings, func(i, j int) bool {
		if ascending {
			return less(listings[i], listings[j])
		}
		return less(listings[j], listings[i])
	})
}

// SmartRecommendations is the chat recommendation path. It starts from the
// full candidate set, applies the family size and budget preference cuts,
// scores the rest, and returns the whole list ordered by descending score.
// It does not call FilterListings: the strict filter and the smart path are
// independent. Callers truncate for display.
func (r *Recommender) SmartRecommendations(listings []model.Listing, f *model.QueryFeatures) []model.ScoredListing {
	candidates := listings
	if f != nil && f.FamilySize != nil {
		if fam, ok := familySizeTable[*f.FamilySize]; ok {
			kept := make([]model.Listing, 0, len(candidates))
			for _, l := range candidates {
				if l.Bedrooms >= fam.MinBedrooms && l.Bedrooms <= fam.MaxBedrooms {
					kept = append(kept, l)
				}
			}
			candidates = kept
		}
	}

	if f != nil && f.BudgetPreference != nil && *f.BudgetPreference == model.BudgetAffordable {
		cutoff := affordableMaxPrice()
		kept := make([]model.Listing, 0, len(candidates))
		for _, l := range candidates {
			if l.Price <= cutoff {
				kept = append(kept, l)
			}
		}
		candidates = kept
	}

	results := make([]model.ScoredListing, 0, len(candidates))
	for _, l := range candidates {
		results = append(results, model.ScoredListing{
			Listing:        l,
			RelevanceScore: r.score(l, f),
		})
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].RelevanceScore > results[j].RelevanceScore
	})

	return results
}

// score computes the additive relevance heuristic for one listing. The
// family term can go negative when bedrooms are far from the ideal count.
func (r *Recommender) score(l model.Listing, f *model.QueryFeatures) float64 {
	if f == nil {
		return 0
	}
	score := 0.0

	if f.Location != nil && containsFold(l.City, *f.Location) {
		score += scoreLocationMatch
	}

	if f.FamilySize != nil {
		if fam, ok := familySizeTable[*f.FamilySize]; ok {
			diff := l.Bedrooms - fam.IdealBedrooms
			if diff < 0 {
				diff = -diff
			}
			score += scoreFamilyIdeal - float64(diff)
		}
	}

	if f.BudgetPreference != nil && *f.BudgetPreference == model.BudgetAffordable {
		band := BandForPrice(l.Price)
		if band.Name == "very_affordable" || band.Name == "affordable" {
			score += scoreAffordableBand
		}
	}

	return score
}

// containsFold reports whether s contains substr, case-insensitive.
func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}

package service

import (
	"github.com/hassanadil1/Panora-sub000/internal/model"
)

// familySizeTable maps each family size bucket to a recommended bedroom
// range. Every entry keeps MinBedrooms <= IdealBedrooms <= MaxBedrooms.
var familySizeTable = map[string]model.FamilySizeRange{
	model.FamilySize1To2:  {MinBedrooms: 1, IdealBedrooms: 2, MaxBedrooms: 3},
	model.FamilySize3To4:  {MinBedrooms: 2, IdealBedrooms: 3, MaxBedrooms: 5},
	model.FamilySize5To6:  {MinBedrooms: 3, IdealBedrooms: 4, MaxBedrooms: 6},
	model.FamilySize7Plus: {MinBedrooms: 4, IdealBedrooms: 6, MaxBedrooms: 10},
}

// budgetBands is ordered ascending and contiguous; BandForPrice applies
// first-match semantics so exactly one band covers any non-negative price.
var budgetBands = []model.BudgetBand{
	{Name: "very_affordable", MaxPrice: f64(50000)},
	{Name: "affordable", MinPrice: f64(50000), MaxPrice: f64(150000)},
	{Name: "mid_range", MinPrice: f64(150000), MaxPrice: f64(400000)},
	{Name: "luxury", MinPrice: f64(400000), MaxPrice: f64(1000000)},
	{Name: "premium", MinPrice: f64(1000000)},
}

// BandForPrice returns the first band whose upper bound covers the price.
func BandForPrice(price float64) model.BudgetBand {
	for _, band := range budgetBands {
		if band.MaxPrice == nil || price <= *band.MaxPrice {
			return band
		}
	}
	return budgetBands[len(budgetBands)-1]
}

// affordableMaxPrice is the cutoff used by the budget preference filter.
func affordableMaxPrice() float64 {
	for _, band := range budgetBands {
		if band.Name == model.BudgetAffordable {
			return *band.MaxPrice
		}
	}
	return 0
}

// propertyTypeVocabulary lists recognised property types; the interpreter
// picks the first one present in the text.
var propertyTypeVocabulary = []string{
	"house",
	"apartment",
	"villa",
	"flat",
	"portion",
	"farm",
}

// predictionKeywords route a query to the price prediction lookup instead of
// the recommendation path.
var predictionKeywords = []string{
	"predict",
	"prediction",
	"estimate",
	"worth",
	"value",
	"valuation",
	"how much",
}

func f64(v float64) *float64 {
	return &v
}

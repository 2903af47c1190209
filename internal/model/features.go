package model

// Purpose values stored on listings and extracted from queries.
const (
	PurposeRent = "rent"
	PurposeSell = "sell"
)

// Sort directives recognised by the query interpreter.
const (
	SortByPrice  = "price"
	SortByArea   = "area"
	SortByNewest = "newest"

	SortAsc  = "asc"
	SortDesc = "desc"
)

// Family size buckets.
const (
	FamilySize1To2  = "1-2"
	FamilySize3To4  = "3-4"
	FamilySize5To6  = "5-6"
	FamilySize7Plus = "7+"
)

// BudgetAffordable is the only budget preference the interpreter produces.
const BudgetAffordable = "affordable"

// QueryFeatures represents structured conditions extracted from a chat query.
// Every field is optional; a nil field means the pattern did not match.
type QueryFeatures struct {
	Bedrooms         *int     `json:"bedrooms,omitempty"`
	Bathrooms        *int     `json:"bathrooms,omitempty"`
	MinPrice         *float64 `json:"min_price,omitempty"`
	MaxPrice         *float64 `json:"max_price,omitempty"`
	PropertyType     *string  `json:"property_type,omitempty"`
	Purpose          *string  `json:"purpose,omitempty"`
	Location         *string  `json:"location,omitempty"`
	MinArea          *float64 `json:"min_area,omitempty"`
	MaxArea          *float64 `json:"max_area,omitempty"`
	SortBy           *string  `json:"sort_by,omitempty"`
	SortOrder        *string  `json:"sort_order,omitempty"`
	Amenities        []string `json:"amenities,omitempty"`
	FamilySize       *string  `json:"family_size,omitempty"`
	BudgetPreference *string  `json:"budget_preference,omitempty"`
}

// IsEmpty reports whether no pattern matched at all.
func (f *QueryFeatures) IsEmpty() bool {
	return f.Bedrooms == nil && f.Bathrooms == nil &&
		f.MinPrice == nil && f.MaxPrice == nil &&
		f.PropertyType == nil && f.Purpose == nil && f.Location == nil &&
		f.MinArea == nil && f.MaxArea == nil &&
		f.SortBy == nil && f.SortOrder == nil &&
		len(f.Amenities) == 0 && f.FamilySize == nil && f.BudgetPreference == nil
}

// FamilySizeRange maps a family size bucket to a bedroom range.
// Invariant: MinBedrooms <= IdealBedrooms <= MaxBedrooms.
type FamilySizeRange struct {
	MinBedrooms   int
	IdealBedrooms int
	MaxBedrooms   int
}

// BudgetBand is a named price band. Bands are declared in ascending order and
// matched first-hit: the first band whose MaxPrice covers the price wins.
type BudgetBand struct {
	Name     string
	MinPrice *float64 // nil on the lowest band
	MaxPrice *float64 // nil on the highest band
}

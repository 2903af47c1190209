package model

// ListingsQuery represents query-string filters for the listings browse API.
// It is mapped onto QueryFeatures so browsing and chat share one filter path.
type ListingsQuery struct {
	Bedrooms     *int     `form:"bedrooms"`
	Bathrooms    *int     `form:"bathrooms"`
	MinPrice     *float64 `form:"min_price"`
	MaxPrice     *float64 `form:"max_price"`
	PropertyType *string  `form:"type"`
	Purpose      *string  `form:"purpose"`
	Location     *string  `form:"location"`
	MinArea      *float64 `form:"min_area"`
	MaxArea      *float64 `form:"max_area"`
	SortBy       *string  `form:"sort_by"`
	SortOrder    *string  `form:"sort_order"`
	Amenities    []string `form:"amenities"`
	Limit        int      `form:"limit"`
}

// Features converts browse parameters to the shared filter representation.
func (q *ListingsQuery) Features() *QueryFeatures {
	return &QueryFeatures{
		Bedrooms:     q.Bedrooms,
		Bathrooms:    q.Bathrooms,
		MinPrice:     q.MinPrice,
		MaxPrice:     q.MaxPrice,
		PropertyType: q.PropertyType,
		Purpose:      q.Purpose,
		Location:     q.Location,
		MinArea:      q.MinArea,
		MaxArea:      q.MaxArea,
		SortBy:       q.SortBy,
		SortOrder:    q.SortOrder,
		Amenities:    q.Amenities,
	}
}

// ListingsResponse represents a browse result page
type ListingsResponse struct {
	Results []Listing `json:"results"`
	Total   int       `json:"total"`
	Took    int64     `json:"took_ms"` // Response time in milliseconds
}

package model

// PredictionRecord is one row of the historical price prediction CSV.
// Fields stay as raw strings; numeric columns are parsed at use-site when
// filtering, matching the file contract (header row, string cells).
type PredictionRecord struct {
	Bedrooms       string
	Bathrooms      string
	Location       string
	City           string
	AreaSize       string
	ActualPrice    string
	PredictedPrice string
}

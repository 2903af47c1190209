package model

import (
	"database/sql/driver"
	"encoding/json"
	"time"
)

// Listing represents a property listing
type Listing struct {
	ID        int64     `json:"id" db:"id"`
	Title     string    `json:"title" db:"title"`
	City      string    `json:"city" db:"city"`
	Bedrooms  int       `json:"bedrooms" db:"bedrooms"`
	Bathrooms float64   `json:"bathrooms" db:"bathrooms"`
	AreaSize  float64   `json:"area_size" db:"area_size"`
	Price     float64   `json:"price" db:"price"`
	Purpose   string    `json:"purpose" db:"purpose"` // "rent" or "sell"
	Type      string    `json:"type" db:"property_type"`
	Amenities JSONArray `json:"amenities,omitempty" db:"amenities"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// ScoredListing is a listing annotated with a relevance score for one query.
// It is transient: computed per request and discarded after rendering.
type ScoredListing struct {
	Listing
	RelevanceScore float64 `json:"relevance_score"`
}

// JSONArray represents a JSON array field
type JSONArray []string

// Value implements driver.Valuer interface
func (j JSONArray) Value() (driver.Value, error) {
	if j == nil {
		return nil, nil
	}
	return json.Marshal(j)
}

// Scan implements sql.Scanner interface
func (j *JSONArray) Scan(value interface{}) error {
	if value == nil {
		*j = nil
		return nil
	}
	bytes, ok := value.([]byte)
	if !ok {
		return json.Unmarshal([]byte(value.(string)), j)
	}
	return json.Unmarshal(bytes, j)
}

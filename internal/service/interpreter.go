package service

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/hassanadil1/Panora-sub000/internal/model"
	"github.com/hassanadil1/Panora-sub000/internal/utils"
)

var (
	reFamilyGroup = regexp.MustCompile(`(\d+)\s*(?:-\s*(\d+)\s*)?(?:person|people|family|families|members?)\b`)
	reFamilyOf    = regexp.MustCompile(`family\s+of\s+(\d+)`)
	reBedrooms    = regexp.MustCompile(`(\d+)\s*bed`)
	reBathrooms   = regexp.MustCompile(`(\d+)\s*bath`)
	reUnderPrice  = regexp.MustCompile(`under\s+\$?(\d+(?:\.\d+)?)(k?)\b`)
	reThousands   = regexp.MustCompile(`(\d+(?:\.\d+)?)k\b`)
	reDollars     = regexp.MustCompile(`\$(\d+(?:\.\d+)?)`)
	rePurpose     = regexp.MustCompile(`\b(rent|buy|sale)\b`)
	reLocation    = regexp.MustCompile(`\bin\s+(.+)$`)
	reMinArea     = regexp.MustCompile(`min(?:imum)?\s*(\d+(?:\.\d+)?)\s*(?:sqft|sq ft|square feet)`)
	reMaxArea     = regexp.MustCompile(`max(?:imum)?\s*(\d+(?:\.\d+)?)\s*(?:sqft|sq ft|square feet)`)
	reSortBy      = regexp.MustCompile(`sort(?:ed)?\s+by\s+(price|area|newest)`)
	reSortOrder   = regexp.MustCompile(`\b(asc|ascending|desc|descending)\b`)
)

// QueryInterpreter extracts structured filters from free-text chat queries.
// It is a heuristic pattern matcher, not a grammar: each field has its own
// pattern, an absent match leaves the field nil, and it never guesses.
type QueryInterpreter struct{}

// NewQueryInterpreter creates a new query interpreter
func NewQueryInterpreter() *QueryInterpreter {
	return &QueryInterpreter{}
}

// Parse extracts query features from a user message. It never fails: text
// with no recognisable pattern yields an empty feature set.
func (p *QueryInterpreter) Parse(text string) *model.QueryFeatures {
	text = strings.ToLower(strings.TrimSpace(text))
	f := &model.QueryFeatures{}
	if text == "" {
		return f
	}

	p.extractFamilySize(text, f)
	p.extractRooms(text, f)
	p.extractPrice(text, f)
	p.extractPropertyType(text, f)
	p.extractPurpose(text, f)
	p.extractLocation(text, f)
	p.extractArea(text, f)
	p.extractSort(text, f)
	f.Amenities = utils.ExtractAmenities(text)
	p.extractBudgetPreference(text, f)

	return f
}

// extractFamilySize buckets the largest mentioned head count into a family
// size category.
func (p *QueryInterpreter) extractFamilySize(text string, f *model.QueryFeatures) {
	size := 0
	if m := reFamilyGroup.FindStringSubmatch(text); m != nil {
		n, _ := strconv.Atoi(m[1])
		if n > size {
			size = n
		}
		if m[2] != "" {
			if upper, err := strconv.Atoi(m[2]); err == nil && upper > size {
				size = upper
			}
		}
	}
	if m := reFamilyOf.FindStringSubmatch(text); m != nil {
		if n, err := strconv.Atoi(m[1]); err == nil && n > size {
			size = n
		}
	}
	if size == 0 {
		return
	}

	var bucket string
	switch {
	case size <= 2:
		bucket = model.FamilySize1To2
	case size <= 4:
		bucket = model.FamilySize3To4
	case size <= 6:
		bucket = model.FamilySize5To6
	default:
		bucket = model.FamilySize7Plus
	}
	f.FamilySize = &bucket
}

func (p *QueryInterpreter) extractRooms(text string, f *model.QueryFeatures) {
	if m := reBedrooms.FindStringSubmatch(text); m != nil {
		if n, err := strconv.Atoi(m[1]); err == nil {
			f.Bedrooms = &n
		}
	}
	if m := reBathrooms.FindStringSubmatch(text); m != nil {
		if n, err := strconv.Atoi(m[1]); err == nil {
			f.Bathrooms = &n
		}
	}
}

// extractPrice reads an "under N[k]" ceiling first and removes the matched
// span before looking for a floor, so "under 500k" only sets the ceiling.
func (p *QueryInterpreter) extractPrice(text string, f *model.QueryFeatures) {
	if m := reUnderPrice.FindStringSubmatch(text); m != nil {
		if v, err := strconv.ParseFloat(m[1], 64); err == nil {
			if m[2] == "k" {
				v *= 1000
			}
			f.MaxPrice = &v
		}
		text = reUnderPrice.ReplaceAllString(text, "")
	}

	if m := reThousands.FindStringSubmatch(text); m != nil {
		if v, err := strconv.ParseFloat(m[1], 64); err == nil {
			v *= 1000
			f.MinPrice = &v
		}
		return
	}
	if m := reDollars.FindStringSubmatch(text); m != nil {
		if v, err := strconv.ParseFloat(m[1], 64); err == nil {
			f.MinPrice = &v
		}
	}
}

func (p *QueryInterpreter) extractPropertyType(text string, f *model.QueryFeatures) {
	for _, t := range propertyTypeVocabulary {
		if strings.Contains(text, t) {
			propertyType := t
			f.PropertyType = &propertyType
			return
		}
	}
}

// extractPurpose maps "rent" to rent and both "buy" and "sale" to sell:
// a buyer wants to browse sell-purpose listings.
func (p *QueryInterpreter) extractPurpose(text string, f *model.QueryFeatures) {
	m := rePurpose.FindStringSubmatch(text)
	if m == nil {
		return
	}
	purpose := model.PurposeSell
	if m[1] == "rent" {
		purpose = model.PurposeRent
	}
	f.Purpose = &purpose
}

// extractLocation captures the trailing free text after "in". The capture is
// deliberately greedy and runs to end of line, so trailing clauses may be
// swept into the location.
func (p *QueryInterpreter) extractLocation(text string, f *model.QueryFeatures) {
	m := reLocation.FindStringSubmatch(text)
	if m == nil {
		return
	}
	location := strings.Trim(m[1], " .,!?")
	if location == "" {
		return
	}
	f.Location = &location
}

func (p *QueryInterpreter) extractArea(text string, f *model.QueryFeatures) {
	if m := reMinArea.FindStringSubmatch(text); m != nil {
		if v, err := strconv.ParseFloat(m[1], 64); err == nil {
			f.MinArea = &v
		}
	}
	if m := reMaxArea.FindStringSubmatch(text); m != nil {
		if v, err := strconv.ParseFloat(m[1], 64); err == nil {
			f.MaxArea = &v
		}
	}
}

// extractSort matches the sort field and the direction token independently.
// A direction with no sort field is extracted anyway and later ignored.
func (p *QueryInterpreter) extractSort(text string, f *model.QueryFeatures) {
	if m := reSortBy.FindStringSubmatch(text); m != nil {
		sortBy := m[1]
		f.SortBy = &sortBy
	}
	if m := reSortOrder.FindStringSubmatch(text); m != nil {
		order := model.SortDesc
		if strings.HasPrefix(m[1], "asc") {
			order = model.SortAsc
		}
		f.SortOrder = &order
	}
}

func (p *QueryInterpreter) extractBudgetPreference(text string, f *model.QueryFeatures) {
	if strings.Contains(text, "budget friendly") || strings.Contains(text, "affordable") {
		pref := model.BudgetAffordable
		f.BudgetPreference = &pref
	}
}

// IsPredictionQuery reports whether the text should be routed to the price
// prediction lookup instead of the recommendation path.
func (p *QueryInterpreter) IsPredictionQuery(text string) bool {
	text = strings.ToLower(text)
	for _, kw := range predictionKeywords {
		if strings.Contains(text, kw) {
			return true
		}
	}
	return false
}

package service

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/hassanadil1/Panora-sub000/internal/model"
	"github.com/hassanadil1/Panora-sub000/internal/utils"
)

// Renderer turns recommendation results into the assistant's reply text.
// It is a pure formatter: same inputs, same text, no state.
type Renderer struct {
	maxListings    int
	maxPredictions int
}

// NewRenderer creates a new renderer with display caps for listings and
// prediction matches.
func NewRenderer(maxListings, maxPredictions int) *Renderer {
	return &Renderer{
		maxListings:    maxListings,
		maxPredictions: maxPredictions,
	}
}

// RenderRecommendations composes the reply for a scored result list,
// falling back to the no-results branch when the list is empty.
func (r *Renderer) RenderRecommendations(results []model.ScoredListing, f *model.QueryFeatures) string {
	if len(results) == 0 {
		return r.RenderNoResults(f)
	}

	var b strings.Builder
	b.WriteString(fmt.Sprintf("I found %d propert%s%s:\n\n",
		len(results), pluralY(len(results)), describeFeatures(f)))

	shown := len(results)
	if shown > r.maxListings {
		shown = r.maxListings
	}
	for i := 0; i < shown; i++ {
		l := results[i].Listing
		b.WriteString(fmt.Sprintf("%d. **%s** in %s\n", i+1, l.Title, l.City))
		b.WriteString(fmt.Sprintf("   %d bed, %s bath, %s sqft - %s\n",
			l.Bedrooms, formatNumber(l.Bathrooms), formatNumber(l.AreaSize), formatPrice(l.Price, l.Purpose)))
		if len(l.Amenities) > 0 {
			display := make([]string, len(l.Amenities))
			for j, a := range l.Amenities {
				display[j] = utils.DisplayAmenity(a)
			}
			b.WriteString(fmt.Sprintf("   Amenities: %s\n", strings.Join(display, ", ")))
		}
		b.WriteString("\n")
	}

	if len(results) > shown {
		b.WriteString(fmt.Sprintf("...and %d more available.\n\n", len(results)-shown))
	}

	b.WriteString("You can narrow this down further by:\n")
	b.WriteString("- Setting a price range (e.g. \"under 200k\")\n")
	b.WriteString("- Naming a city or area (e.g. \"in Lahore\")\n")
	b.WriteString("- Asking for specific amenities (e.g. \"with wifi and tv\")\n")

	return b.String()
}

// RenderNoResults composes the apology branch, echoing whichever of the
// family size, location and budget preference were supplied. Single shot,
// no retry: the user rephrases if they want another attempt.
func (r *Renderer) RenderNoResults(f *model.QueryFeatures) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("Sorry, I couldn't find any properties%s.\n\n", describeFeatures(f)))
	b.WriteString("Here are a few things you could try:\n")
	b.WriteString("- Widen your budget or drop the price limit\n")
	b.WriteString("- Search in a nearby city or a larger area\n")
	b.WriteString("- Relax the bedroom or amenity requirements\n\n")
	b.WriteString("Would you like to adjust your search?")
	return b.String()
}

// RenderPredictions composes the price prediction comparison reply.
func (r *Renderer) RenderPredictions(matches []model.PredictionRecord, f *model.QueryFeatures) string {
	if len(matches) == 0 {
		var b strings.Builder
		b.WriteString("I couldn't find any price predictions matching your criteria.\n\n")
		b.WriteString("Try mentioning the number of bedrooms and bathrooms, or a location covered by our historical data.")
		return b.String()
	}

	var b strings.Builder
	b.WriteString(fmt.Sprintf("Here's what our price model says for %d comparable propert%s:\n\n",
		len(matches), pluralY(len(matches))))

	shown := len(matches)
	if shown > r.maxPredictions {
		shown = r.maxPredictions
	}
	for i := 0; i < shown; i++ {
		m := matches[i]
		b.WriteString(fmt.Sprintf("%d. %s bed, %s bath in %s, %s (%s sqft)\n",
			i+1, m.Bedrooms, m.Bathrooms, m.Location, m.City, m.AreaSize))
		b.WriteString(fmt.Sprintf("   Actual: %s vs Predicted: %s%s\n\n",
			formatRawPrice(m.ActualPrice), formatRawPrice(m.PredictedPrice),
			percentDiff(m.ActualPrice, m.PredictedPrice)))
	}

	if len(matches) > shown {
		b.WriteString(fmt.Sprintf("...and %d more comparable properties available.\n", len(matches)-shown))
	}

	return b.String()
}

// describeFeatures renders the optional feature clauses shared by the lead
// sentence and the apology.
func describeFeatures(f *model.QueryFeatures) string {
	if f == nil {
		return ""
	}
	var parts []string
	if f.FamilySize != nil {
		parts = append(parts, fmt.Sprintf(" for a family of %s", *f.FamilySize))
	}
	if f.Location != nil {
		parts = append(parts, fmt.Sprintf(" in %s", *f.Location))
	}
	if f.BudgetPreference != nil {
		parts = append(parts, " within an affordable budget")
	}
	return strings.Join(parts, "")
}

// formatPrice renders a listing price, with a monthly suffix for rentals.
func formatPrice(price float64, purpose string) string {
	s := "$" + groupThousands(price)
	if purpose == model.PurposeRent {
		s += "/mo"
	}
	return s
}

// formatRawPrice renders a CSV price cell, passing unparseable cells through.
func formatRawPrice(raw string) string {
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return raw
	}
	return "$" + groupThousands(v)
}

// percentDiff renders the predicted-vs-actual delta, empty when either cell
// is unparseable or the actual price is zero.
func percentDiff(actualRaw, predictedRaw string) string {
	actual, err1 := strconv.ParseFloat(strings.TrimSpace(actualRaw), 64)
	predicted, err2 := strconv.ParseFloat(strings.TrimSpace(predictedRaw), 64)
	if err1 != nil || err2 != nil || actual == 0 {
		return ""
	}
	diff := (predicted - actual) / actual * 100
	return fmt.Sprintf(" (%+.1f%%)", diff)
}

// groupThousands formats a number with comma separators.
func groupThousands(v float64) string {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	intPart := s
	frac := ""
	if i := strings.IndexByte(s, '.'); i >= 0 {
		intPart, frac = s[:i], s[i:]
	}
	neg := strings.HasPrefix(intPart, "-")
	if neg {
		intPart = intPart[1:]
	}
	var out []byte
	for i, c := range []byte(intPart) {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			out = append(out, ',')
		}
		out = append(out, c)
	}
	result := string(out) + frac
	if neg {
		result = "-" + result
	}
	return result
}

// formatNumber renders a float without trailing zeros.
func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func pluralY(n int) string {
	if n == 1 {
		return "y"
	}
	return "ies"
}

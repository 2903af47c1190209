package service

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/hassanadil1/Panora-sub000/internal/model"
)

const predictionsCSV = `bedrooms,bathrooms,location,city,area_size,actual_price,predicted_price
3,2,Johar Town,Lahore,1250,95000,98500
3,2,DHA Phase 5,Lahore,1400,185000,176300
4,3,Bahria Town,Rawalpindi,2100,240000,255000
2,1,Gulshan-e-Iqbal,Karachi,950,72000,69800
`

func predFeatures(beds, baths int) *model.QueryFeatures {
	return &model.QueryFeatures{Bedrooms: intPtr(beds), Bathrooms: intPtr(baths)}
}

func writeTestCSV(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "predictions.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestPredictionService_ExactMatch(t *testing.T) {
	svc := NewPredictionService(writeTestCSV(t, predictionsCSV), zap.NewNop())

	matches := svc.Lookup(predFeatures(3, 2))

	// Exact bedroom/bathroom match, never minimum semantics: the 4 bed
	// record is excluded even though 4 >= 3.
	require.Len(t, matches, 2)
	for _, m := range matches {
		assert.Equal(t, "3", m.Bedrooms)
		assert.Equal(t, "2", m.Bathrooms)
	}
}

func TestPredictionService_LocationField(t *testing.T) {
	svc := NewPredictionService(writeTestCSV(t, predictionsCSV), zap.NewNop())

	f := predFeatures(3, 2)
	f.Location = strPtr("johar")

	matches := svc.Lookup(f)

	// Matched against the location column, not city.
	require.Len(t, matches, 1)
	assert.Equal(t, "Johar Town", matches[0].Location)
}

func TestPredictionService_AreaTolerance(t *testing.T) {
	svc := NewPredictionService(writeTestCSV(t, predictionsCSV), zap.NewNop())

	f := predFeatures(3, 2)
	f.MinArea = floatPtr(1252)
	matches := svc.Lookup(f)
	require.Len(t, matches, 1, "1250 is within the fixed tolerance of 1252")
	assert.Equal(t, "1250", matches[0].AreaSize)

	f.MinArea = floatPtr(1253)
	matches = svc.Lookup(f)
	assert.Empty(t, matches, "1250 is outside the tolerance of 1253")
}

func TestPredictionService_MissingFile(t *testing.T) {
	svc := NewPredictionService(filepath.Join(t.TempDir(), "nope.csv"), zap.NewNop())

	matches := svc.Lookup(predFeatures(3, 2))

	assert.Empty(t, matches)
}

func TestPredictionService_MalformedCSV(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{
			name:    "missing required column",
			content: "bedrooms,bathrooms,location\n3,2,DHA\n",
		},
		{
			name:    "ragged row",
			content: "bedrooms,bathrooms,location,city,area_size,actual_price,predicted_price\n3,2\n",
		},
		{
			name:    "empty file",
			content: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewPredictionService(writeTestCSV(t, tt.content), zap.NewNop())
			matches := svc.Lookup(predFeatures(3, 2))
			assert.Empty(t, matches)
		})
	}
}

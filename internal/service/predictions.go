package service

import (
	"encoding/csv"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/hassanadil1/Panora-sub000/internal/model"
)

// areaTolerance is the absolute area match window for prediction lookups,
// regardless of unit magnitude.
const areaTolerance = 2.0

// PredictionService matches queries against the historical price prediction
// CSV. The file is re-read and re-parsed on every lookup; there is no cache
// and no staleness window, so edits to the file take effect immediately.
type PredictionService struct {
	csvPath string
	log     *zap.Logger
}

// NewPredictionService creates a new prediction service
func NewPredictionService(csvPath string, log *zap.Logger) *PredictionService {
	return &PredictionService{
		csvPath: csvPath,
		log:     log,
	}
}

// Lookup returns prediction records matching the query features. Unlike the
// recommendation path, bedrooms and bathrooms must match exactly, location
// is matched against the record's location column (not city), and area must
// fall within a fixed tolerance of the requested minimum area.
func (s *PredictionService) Lookup(f *model.QueryFeatures) []model.PredictionRecord {
	records := s.loadRecords()

	var matches []model.PredictionRecord
	for _, rec := range records {
		if !s.matches(rec, f) {
			continue
		}
		matches = append(matches, rec)
	}
	return matches
}

func (s *PredictionService) matches(rec model.PredictionRecord, f *model.QueryFeatures) bool {
	if f == nil {
		return true
	}
	if f.Bedrooms != nil {
		beds, err := strconv.ParseFloat(strings.TrimSpace(rec.Bedrooms), 64)
		if err != nil || beds != float64(*f.Bedrooms) {
			return false
		}
	}
	if f.Bathrooms != nil {
		baths, err := strconv.ParseFloat(strings.TrimSpace(rec.Bathrooms), 64)
		if err != nil || baths != float64(*f.Bathrooms) {
			return false
		}
	}
	if f.Location != nil && !containsFold(rec.Location, *f.Location) {
		return false
	}
	if f.MinArea != nil {
		area, err := strconv.ParseFloat(strings.TrimSpace(rec.AreaSize), 64)
		if err != nil || math.Abs(area-*f.MinArea) > areaTolerance {
			return false
		}
	}
	return true
}

// loadRecords reads the whole CSV into memory. Any read or parse failure is
// logged and yields an empty record set so prediction queries degrade to
// "no matches" instead of failing the request.
func (s *PredictionService) loadRecords() []model.PredictionRecord {
	file, err := os.Open(s.csvPath)
	if err != nil {
		s.log.Warn("failed to open predictions csv", zap.String("path", s.csvPath), zap.Error(err))
		return nil
	}
	defer file.Close()

	reader := csv.NewReader(file)
	header, err := reader.Read()
	if err != nil {
		s.log.Warn("failed to read predictions csv header", zap.String("path", s.csvPath), zap.Error(err))
		return nil
	}

	col := make(map[string]int, len(header))
	for i, name := range header {
		col[strings.ToLower(strings.TrimSpace(name))] = i
	}
	required := []string{"bedrooms", "bathrooms", "location", "city", "area_size", "actual_price", "predicted_price"}
	for _, name := range required {
		if _, ok := col[name]; !ok {
			s.log.Warn("predictions csv missing column", zap.String("path", s.csvPath), zap.String("column", name))
			return nil
		}
	}

	var records []model.PredictionRecord
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			s.log.Warn("failed to parse predictions csv row", zap.String("path", s.csvPath), zap.Error(err))
			return nil
		}
		records = append(records, model.PredictionRecord{
			Bedrooms:       row[col["bedrooms"]],
			Bathrooms:      row[col["bathrooms"]],
			Location:       row[col["location"]],
			City:           row[col["city"]],
			AreaSize:       row[col["area_size"]],
			ActualPrice:    row[col["actual_price"]],
			PredictedPrice: row[col["predicted_price"]],
		})
	}

	return records
}

package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"

	"github.com/hassanadil1/Panora-sub000/internal/model"
)

// PostgresRepository handles database operations
type PostgresRepository struct {
	db *sqlx.DB
}

// NewPostgresRepository creates a new PostgreSQL repository
func NewPostgresRepository(dsn string, maxConn, maxIdleConn int) (*PostgresRepository, error) {
	// Disable prepared statement caching to avoid "unnamed prepared statement does not exist" errors
	if !strings.Contains(dsn, "?") {
		dsn += "?prefer_simple_protocol=true"
	} else {
		dsn += "&prefer_simple_protocol=true"
	}

	db, err := sqlx.Connect("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	db.SetMaxOpenConns(maxConn)
	db.SetMaxIdleConns(maxIdleConn)
	db.SetConnMaxLifetime(5 * time.Minute)
	db.SetConnMaxIdleTime(2 * time.Minute)

	// Test connection
	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &PostgresRepository{db: db}, nil
}

// Close closes the database connection
func (r *PostgresRepository) Close() error {
	return r.db.Close()
}

// AllListings fetches the full candidate listing set. The upstream contract
// is a single read-all: no pagination, no server-side filtering. Every
// request re-fetches; nothing is cached between calls.
func (r *PostgresRepository) AllListings(ctx context.Context) ([]model.Listing, error) {
	query := `
		SELECT
			id, title, city, bedrooms, bathrooms, area_size, price,
			purpose, property_type, amenities, created_at
		FROM listings
		ORDER BY id
	`
	var listings []model.Listing
	if err := r.db.SelectContext(ctx, &listings, query); err != nil {
		return nil, fmt.Errorf("failed to fetch listings: %w", err)
	}
	return listings, nil
}

// GetListingByID retrieves a single listing by its ID
func (r *PostgresRepository) GetListingByID(ctx context.Context, id int64) (*model.Listing, error) {
	var listing model.Listing
	query := `
		SELECT
			id, title, city, bedrooms, bathrooms, area_size, price,
			purpose, property_type, amenities, created_at
		FROM listings
		WHERE id = $1
	`
	err := r.db.GetContext(ctx, &listing, query, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get listing: %w", err)
	}
	return &listing, nil
}

// LogChat records one chat turn with the extracted features as JSON.
func (r *PostgresRepository) LogChat(ctx context.Context, query string, features *model.QueryFeatures, resultCount int, responseTimeMs int) error {
	featureJSON, err := json.Marshal(features)
	if err != nil {
		return fmt.Errorf("failed to marshal query features: %w", err)
	}

	logQuery := `
		INSERT INTO chat_logs (query, query_features, result_count, response_time_ms)
		VALUES ($1, $2, $3, $4)
	`
	if _, err := r.db.ExecContext(ctx, logQuery, query, featureJSON, resultCount, responseTimeMs); err != nil {
		return fmt.Errorf("failed to log chat: %w", err)
	}
	return nil
}

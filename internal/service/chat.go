package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/hassanadil1/Panora-sub000/internal/model"
)

// ListingStore is the upstream listing contract: a single read-all operation
// with no server-side filtering. All filtering happens in-process.
type ListingStore interface {
	AllListings(ctx context.Context) ([]model.Listing, error)
	GetListingByID(ctx context.Context, id int64) (*model.Listing, error)
	LogChat(ctx context.Context, query string, features *model.QueryFeatures, resultCount int, responseTimeMs int) error
}

// ChatService runs the chat pipeline: interpret the message, branch to the
// prediction lookup or the recommendation engine, and render the reply.
type ChatService struct {
	store       ListingStore
	interpreter *QueryInterpreter
	recommender *Recommender
	renderer    *Renderer
	predictions *PredictionService
	log         *zap.Logger
}

// NewChatService creates a new chat service
func NewChatService(
	store ListingStore,
	interpreter *QueryInterpreter,
	recommender *Recommender,
	renderer *Renderer,
	predictions *PredictionService,
	log *zap.Logger,
) *ChatService {
	return &ChatService{
		store:       store,
		interpreter: interpreter,
		recommender: recommender,
		renderer:    renderer,
		predictions: predictions,
		log:         log,
	}
}

// Respond produces the assistant reply for one user message. Every call is
// independent: the candidate set is re-fetched and, for prediction queries,
// the CSV is re-read. Nothing is shared across requests.
func (s *ChatService) Respond(ctx context.Context, message string) (string, error) {
	startTime := time.Now()

	features := s.interpreter.Parse(message)

	// Prediction queries bypass the recommendation path entirely.
	if s.interpreter.IsPredictionQuery(message) {
		matches := s.predictions.Lookup(features)
		reply := s.renderer.RenderPredictions(matches, features)
		s.logChat(message, features, len(matches), startTime)
		return reply, nil
	}

	listings, err := s.store.AllListings(ctx)
	if err != nil {
		return "", err
	}

	results := s.recommender.SmartRecommendations(listings, features)
	reply := s.renderer.RenderRecommendations(results, features)

	s.logChat(message, features, len(results), startTime)

	return reply, nil
}

// BrowseListings serves the listings API: strict filter plus optional sort
// over the full candidate set.
func (s *ChatService) BrowseListings(ctx context.Context, f *model.QueryFeatures) ([]model.Listing, error) {
	listings, err := s.store.AllListings(ctx)
	if err != nil {
		return nil, err
	}
	filtered := s.recommender.FilterListings(listings, f)
	s.recommender.SortListings(filtered, f)
	return filtered, nil
}

// GetListing retrieves a single listing by ID
func (s *ChatService) GetListing(ctx context.Context, id int64) (*model.Listing, error) {
	return s.store.GetListingByID(ctx, id)
}

// logChat records the turn without blocking or failing the request.
func (s *ChatService) logChat(message string, features *model.QueryFeatures, resultCount int, startTime time.Time) {
	took := int(time.Since(startTime).Milliseconds())
	go func() {
		if err := s.store.LogChat(context.Background(), message, features, resultCount, took); err != nil {
			s.log.Warn("failed to log chat turn", zap.Error(err))
		}
	}()
}

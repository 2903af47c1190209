package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/hassanadil1/Panora-sub000/internal/model"
	"github.com/hassanadil1/Panora-sub000/internal/service"
)

// ListingsHandler handles listing browse HTTP requests
type ListingsHandler struct {
	chatService  *service.ChatService
	defaultLimit int
	maxLimit     int
	log          *zap.Logger
}

// NewListingsHandler creates a new listings handler
func NewListingsHandler(chatService *service.ChatService, defaultLimit, maxLimit int, log *zap.Logger) *ListingsHandler {
	return &ListingsHandler{
		chatService:  chatService,
		defaultLimit: defaultLimit,
		maxLimit:     maxLimit,
		log:          log,
	}
}

// Browse handles GET /api/v1/listings. Filtering and sorting happen
// in-process over the full candidate set, same as the chat path.
func (h *ListingsHandler) Browse(c *gin.Context) {
	var q model.ListingsQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query: " + err.Error()})
		return
	}

	// Validate and cap limits
	if q.Limit <= 0 {
		q.Limit = h.defaultLimit
	}
	if q.Limit > h.maxLimit {
		q.Limit = h.maxLimit
	}

	startTime := time.Now()
	listings, err := h.chatService.BrowseListings(c.Request.Context(), q.Features())
	if err != nil {
		h.log.Error("listings browse failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Browse failed: " + err.Error()})
		return
	}

	total := len(listings)
	if len(listings) > q.Limit {
		listings = listings[:q.Limit]
	}

	c.JSON(http.StatusOK, model.ListingsResponse{
		Results: listings,
		Total:   total,
		Took:    time.Since(startTime).Milliseconds(),
	})
}

// GetListing handles GET /api/v1/listings/:id
func (h *ListingsHandler) GetListing(c *gin.Context) {
	idStr := c.Param("id")
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid listing ID"})
		return
	}

	listing, err := h.chatService.GetListing(c.Request.Context(), id)
	if err != nil {
		h.log.Error("get listing failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get listing: " + err.Error()})
		return
	}

	if listing == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Listing not found"})
		return
	}

	c.JSON(http.StatusOK, listing)
}

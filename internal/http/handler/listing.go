package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"adlot.app/inventory/common/logger"
	"adlot.app/inventory/internal/http/dto"
	"adlot.app/inventory/internal/service"
	"adlot.app/inventory/internal/store"
)

type ListingHandler struct {
	listingService service.ListingService
}

func NewListingHandler(listingService service.ListingService) *ListingHandler {
	return &ListingHandler{listingService: listingService}
}

func (h *ListingHandler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	var req dto.CreateListingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.WarnContext(ctx, "invalid request body", "error", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	listing, err := h.listingService.Create(ctx, scopeFrom(ctx), req.ToInput())
	if err != nil {
		var verr *service.ValidationError
		switch {
		case errors.As(err, &verr):
			c.JSON(http.StatusBadRequest, gin.H{"error": verr.Error()})
		case errors.Is(err, store.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "organization not found"})
		default:
			slog.ErrorContext(ctx, "failed to create listing", "error", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create listing"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToListingResponse(listing))
}

func (h *ListingHandler) List(c *gin.Context) {
	ctx := c.Request.Context()

	var req dto.ListListingsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		slog.WarnContext(ctx, "invalid query parameters", "error", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	listings, total, err := h.listingService.List(ctx, scopeFrom(ctx), req.ToInput())
	if err != nil {
		slog.ErrorContext(ctx, "failed to list listings", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list listings"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListListingsResponse(listings, total))
}

func (h *ListingHandler) GetByID(c *gin.Context) {
	ctx := c.Request.Context()

	listingID, ok := listingIDParam(c)
	if !ok {
		return
	}
	ctx = logger.WithLogFields(ctx, logger.LogFields{ListingID: &listingID})

	listing, err := h.listingService.Get(ctx, scopeFrom(ctx), listingID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "listing not found"})
			return
		}
		slog.ErrorContext(ctx, "failed to get listing", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to get listing"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListingResponse(listing))
}

func (h *ListingHandler) Update(c *gin.Context) {
	ctx := c.Request.Context()

	listingID, ok := listingIDParam(c)
	if !ok {
		return
	}
	ctx = logger.WithLogFields(ctx, logger.LogFields{ListingID: &listingID})

	var req dto.UpdateListingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.WarnContext(ctx, "invalid request body", "error", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	listing, err := h.listingService.Update(ctx, scopeFrom(ctx), listingID, req.ToUpdate())
	if err != nil {
		var verr *service.ValidationError
		switch {
		case errors.As(err, &verr):
			c.JSON(http.StatusBadRequest, gin.H{"error": verr.Error()})
		case errors.Is(err, store.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "listing not found"})
		default:
			slog.ErrorContext(ctx, "failed to update listing", "error", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update listing"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToListingResponse(listing))
}

func (h *ListingHandler) Delete(c *gin.Context) {
	ctx := c.Request.Context()

	listingID, ok := listingIDParam(c)
	if !ok {
		return
	}
	ctx = logger.WithLogFields(ctx, logger.LogFields{ListingID: &listingID})

	if err := h.listingService.Delete(ctx, scopeFrom(ctx), listingID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "listing not found"})
			return
		}
		slog.ErrorContext(ctx, "failed to delete listing", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete listing"})
		return
	}

	c.Status(http.StatusNoContent)
}

func listingIDParam(c *gin.Context) (int64, bool) {
	listingID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid listing id"})
		return 0, false
	}
	return listingID, true
}

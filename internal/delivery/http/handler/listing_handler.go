package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	entity "github.com/ananyakumar2005/ucs503p-202526odd-team-void/internal/domain"
	service "github.com/ananyakumar2005/ucs503p-202526odd-team-void/internal/service/postgresql"
)

// ListingHandler serves one board; the router mounts it twice, once for
// barters and once for requests.
type ListingHandler struct {
	listingService *service.ListingService
	kind           entity.ListingKind
}

func NewListingHandler(listingService *service.ListingService, kind entity.ListingKind) *ListingHandler {
	return &ListingHandler{listingService: listingService, kind: kind}
}

func (h *ListingHandler) List(c *gin.Context) {
	listings, err := h.listingService.ListActive(c.Request.Context(), h.kind)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load listings"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"listings": listings})
}

func (h *ListingHandler) Create(c *gin.Context) {
	userID := c.MustGet("user_id").(uuid.UUID)

	var input entity.ListingInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request", "detail": err.Error()})
		return
	}

	listing, err := h.listingService.Create(c.Request.Context(), h.kind, userID, input)
	if err != nil {
		if errors.Is(err, service.ErrMissingField) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create listing"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"listing": listing})
}

func (h *ListingHandler) Update(c *gin.Context) {
	userID := c.MustGet("user_id").(uuid.UUID)

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid listing id"})
		return
	}

	var input entity.ListingInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request", "detail": err.Error()})
		return
	}

	if err := h.listingService.Edit(c.Request.Context(), h.kind, id, userID, input); err != nil {
		switch {
		case errors.Is(err, service.ErrListingNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case errors.Is(err, service.ErrMissingField):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update listing"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "listing updated"})
}

func (h *ListingHandler) Delete(c *gin.Context) {
	userID := c.MustGet("user_id").(uuid.UUID)

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid listing id"})
		return
	}

	if err := h.listingService.SoftDelete(c.Request.Context(), h.kind, id, userID); err != nil {
		if errors.Is(err, service.ErrListingNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete listing"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "listing removed"})
}

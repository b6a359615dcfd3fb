package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	entity "github.com/ananyakumar2005/ucs503p-202526odd-team-void/internal/domain"
	service "github.com/ananyakumar2005/ucs503p-202526odd-team-void/internal/service/postgresql"
)

type TradeOfferHandler struct {
	offerService *service.TradeOfferService
}

func NewTradeOfferHandler(offerService *service.TradeOfferService) *TradeOfferHandler {
	return &TradeOfferHandler{offerService: offerService}
}

// CreateTradeOffer handles POST /create_trade_offer/:barterId.
func (h *TradeOfferHandler) CreateTradeOffer(c *gin.Context) {
	userID := c.MustGet("user_id").(uuid.UUID)

	barterID, err := uuid.Parse(c.Param("barterId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid barter id"})
		return
	}

	var input entity.CreateOfferInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request", "detail": err.Error()})
		return
	}

	offer, err := h.offerService.CreateOffer(c.Request.Context(), barterID, userID, input)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrBarterNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case errors.Is(err, service.ErrMissingField):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create trade offer"})
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "trade offer sent. Waiting for the owner's response.",
		"offer":   offer,
	})
}

// GetMyOffers handles GET /trade_offers: every offer the caller has made.
func (h *TradeOfferHandler) GetMyOffers(c *gin.Context) {
	userID := c.MustGet("user_id").(uuid.UUID)

	offers, err := h.offerService.OffersMadeBy(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load offers"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"offers": offers})
}

// GetReceivedOffers handles GET /received_offers: the caller's inbox plus a
// pending counter for the navbar badge.
func (h *TradeOfferHandler) GetReceivedOffers(c *gin.Context) {
	userID := c.MustGet("user_id").(uuid.UUID)

	ctx := c.Request.Context()
	offers, err := h.offerService.OffersReceivedBy(ctx, userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load received offers"})
		return
	}

	pending, err := h.offerService.PendingReceivedCount(ctx, userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load received offers"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"offers":        offers,
		"pending_count": pending,
	})
}

// UpdateOfferStatus handles POST /update_offer_status/:receivedOfferId/:status.
func (h *TradeOfferHandler) UpdateOfferStatus(c *gin.Context) {
	userID := c.MustGet("user_id").(uuid.UUID)

	receivedOfferID, err := uuid.Parse(c.Param("receivedOfferId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid offer id"})
		return
	}
	status := entity.OfferStatus(c.Param("status"))

	if err := h.offerService.UpdateOfferStatus(c.Request.Context(), receivedOfferID, status, userID); err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidStatus):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, service.ErrOfferNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update offer status"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "offer " + string(status)})
}

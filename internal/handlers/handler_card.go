package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/finbyte/card_ledger_app/internal/apperrors"
	portssvc "github.com/finbyte/card_ledger_app/internal/core/ports/services"
	"github.com/finbyte/card_ledger_app/internal/dto"
	"github.com/finbyte/card_ledger_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// cardHandler handles HTTP requests related to cards and ledger operations.
type cardHandler struct {
	cardService portssvc.CardSvcFacade
}

// newCardHandler creates a new cardHandler.
func newCardHandler(cs portssvc.CardSvcFacade) *cardHandler {
	return &cardHandler{
		cardService: cs,
	}
}

// registerCardRoutes registers routes related to cards. The ledger mutation
// routes (charge/payment) additionally go through the rate limiter.
func registerCardRoutes(rg *gin.RouterGroup, cardService portssvc.CardSvcFacade, limit gin.HandlerFunc) {
	h := newCardHandler(cardService)

	cards := rg.Group("/cards")
	{
		cards.POST("", h.registerCard)
		cards.GET("", h.listCards)
		cards.GET("/search", h.findCard)
		cards.GET("/:id", h.getCard)
		cards.POST("/:id/charge", limit, h.charge)
		cards.POST("/:id/payment", limit, h.payment)
		cards.POST("/:id/can-charge", h.canCharge)
	}
}

// registerCard godoc
// @Summary Register a new card
// @Description Validates the card number checksum and expiry, then stores the card
// @Tags cards
// @Accept  json
// @Produce  json
// @Param   card body dto.RegisterCardRequest true "Card details"
// @Success 201 {object} dto.CardResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Router /cards [post]
func (h *cardHandler) registerCard(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.RegisterCardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for RegisterCard", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	card, err := h.cardService.RegisterCard(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("Validation error registering card", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to register card", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to register card"})
		}
		return
	}

	logger.Info("Card registered", slog.Int64("card_id", card.CardID))
	c.JSON(http.StatusCreated, dto.ToCardResponse(card))
}

// listCards godoc
// @Summary List all cards
// @Description Returns all registered cards in insertion order
// @Tags cards
// @Produce  json
// @Success 200 {array} dto.CardResponse
// @Router /cards [get]
func (h *cardHandler) listCards(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	cards, err := h.cardService.ListCards(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list cards", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list cards"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListCardResponse(cards))
}

// findCard godoc
// @Summary Find a card by number
// @Description Finds the first card whose raw or masked number equals the query verbatim
// @Tags cards
// @Produce  json
// @Param   q query string true "Full raw digits or exact masked form"
// @Success 200 {object} dto.CardResponse
// @Failure 404 {object} map[string]string "Card not found"
// @Router /cards/search [get]
func (h *cardHandler) findCard(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	query := c.Query("q")

	card, err := h.cardService.FindCard(c.Request.Context(), query)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Card not found"})
		} else {
			logger.Error("Failed to find card", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to find card"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToCardResponse(card))
}

// getCard godoc
// @Summary Get a card by ID
// @Tags cards
// @Produce  json
// @Param   id path int true "Card ID"
// @Success 200 {object} dto.CardResponse
// @Failure 404 {object} map[string]string "Card not found"
// @Router /cards/{id} [get]
func (h *cardHandler) getCard(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	cardID, ok := h.cardIDParam(c)
	if !ok {
		return
	}

	card, err := h.cardService.GetCardByID(c.Request.Context(), cardID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Card not found"})
		} else {
			logger.Error("Failed to get card", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve card"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToCardResponse(card))
}

// charge godoc
// @Summary Charge a card
// @Description Attempts a charge. Rejected attempts return HTTP 200 with success=false; the note explains the rejection.
// @Tags cards
// @Accept  json
// @Produce  json
// @Param   id path int true "Card ID"
// @Param   amount body dto.AmountRequest true "Charge amount"
// @Success 200 {object} dto.TransactionResponse
// @Failure 404 {object} map[string]string "Card not found"
// @Router /cards/{id}/charge [post]
func (h *cardHandler) charge(c *gin.Context) {
	h.ledgerOperation(c, h.cardService.Charge)
}

// payment godoc
// @Summary Make a payment against a card's balance
// @Description Attempts a payment. Rejected attempts return HTTP 200 with success=false.
// @Tags cards
// @Accept  json
// @Produce  json
// @Param   id path int true "Card ID"
// @Param   amount body dto.AmountRequest true "Payment amount"
// @Success 200 {object} dto.TransactionResponse
// @Failure 404 {object} map[string]string "Card not found"
// @Router /cards/{id}/payment [post]
func (h *cardHandler) payment(c *gin.Context) {
	h.ledgerOperation(c, h.cardService.Payment)
}

// canCharge godoc
// @Summary Pre-flight check for a prospective charge
// @Tags cards
// @Accept  json
// @Produce  json
// @Param   id path int true "Card ID"
// @Param   amount body dto.AmountRequest true "Prospective amount"
// @Success 200 {object} dto.CanChargeResponse
// @Failure 404 {object} map[string]string "Card not found"
// @Router /cards/{id}/can-charge [post]
func (h *cardHandler) canCharge(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	cardID, ok := h.cardIDParam(c)
	if !ok {
		return
	}

	var req dto.AmountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	allowed, err := h.cardService.CanCharge(c.Request.Context(), cardID, req.Amount)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Card not found"})
		} else {
			logger.Error("Failed pre-flight charge check", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to check charge"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.CanChargeResponse{
		CardID:  cardID,
		Amount:  req.Amount.StringFixed(2),
		Allowed: allowed,
	})
}

// ledgerOperation runs a charge or payment attempt. Outcomes are data: a
// rejected attempt is a 200 response with success=false, only missing cards
// and infrastructure problems map to error statuses.
func (h *cardHandler) ledgerOperation(c *gin.Context, op portssvc.LedgerOperation) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	cardID, ok := h.cardIDParam(c)
	if !ok {
		return
	}

	var req dto.AmountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for ledger operation", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	txn, err := op(c.Request.Context(), cardID, req.Amount)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Card not found"})
		} else {
			logger.Error("Ledger operation failed", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Operation failed"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToTransactionResponse(txn))
}

func (h *cardHandler) cardIDParam(c *gin.Context) (int64, bool) {
	cardID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid card ID"})
		return 0, false
	}
	return cardID, true
}

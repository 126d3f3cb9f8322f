package handler

import (
	"fmt"
	"net/http"
	"time"

	"auction-marketplace/internal/bidding"
	model "auction-marketplace/internal/models"
	"auction-marketplace/services/auction/helpers"
	"auction-marketplace/utils"

	"github.com/gin-gonic/gin"
)

type BiddingServiceInterface interface {
	PlaceBid(productID, userID string, price float64) (bidding.PlaceBidResult, error)
	GetBidHistory(productID string) ([]model.BidDetail, error)
	GetWinningBid(productID string) (model.Bid, error)
}

type BiddingHandler struct {
	service BiddingServiceInterface
}

func NewBiddingHandler(service BiddingServiceInterface) *BiddingHandler {
	return &BiddingHandler{service: service}
}

// PlaceBidHandler handles POST /bids. A first bid by a user returns 201, a
// raise of their standing bid returns 200.
func (h *BiddingHandler) PlaceBidHandler(c *gin.Context) {
	var req helpers.PlaceBidRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "PlaceBidHandler", err)
		return
	}

	result, err := h.service.PlaceBid(req.ProductID, req.UserID, req.Price)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Error("PlaceBidHandler: failed to record bid", map[string]any{
			"handler":    "PlaceBidHandler",
			"product_id": req.ProductID,
			"user_id":    req.UserID,
			"error":      err.Error(),
		})
		return
	}

	resp := bidToResponse(result.Bid)

	status := http.StatusOK
	message := "bid raised successfully"
	if result.Created {
		status = http.StatusCreated
		message = "bid recorded successfully"
	}

	utils.JSONResponse(c, status, resp, message)
	helpers.LogSuccess("PlaceBidHandler", message, map[string]any{
		"bid_id":     result.Bid.BidID,
		"product_id": result.Bid.ProductID,
		"user_id":    req.UserID,
		"price":      result.Bid.Price,
		"created":    result.Created,
	})
}

// GetBidHistoryHandler handles GET /products/:product_id/bids
func (h *BiddingHandler) GetBidHistoryHandler(c *gin.Context) {
	productID := c.Param("product_id")
	history, err := h.service.GetBidHistory(productID)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("GetBidHistoryHandler: error retrieving bid history", map[string]any{"product_id": productID, "error": err.Error()})
		return
	}

	if history == nil {
		history = []model.BidDetail{}
	}

	utils.JSONResponse(c, http.StatusOK, history, "bid history retrieved successfully")
	helpers.LogSuccess("GetBidHistoryHandler", "bid history retrieved successfully", map[string]any{
		"product_id": productID,
		"count":      len(history),
	})
}

// GetWinningBidHandler handles GET /products/:product_id/winning
func (h *BiddingHandler) GetWinningBidHandler(c *gin.Context) {
	productID := c.Param("product_id")
	bid, err := h.service.GetWinningBid(productID)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("GetWinningBidHandler: winning bid error", map[string]any{"product_id": productID, "error": err.Error()})
		return
	}

	utils.JSONResponse(c, http.StatusOK, bidToResponse(bid), "winning bid retrieved successfully")
	helpers.LogSuccess("GetWinningBidHandler", "winning bid retrieved successfully", map[string]any{
		"bid_id":     bid.BidID,
		"product_id": bid.ProductID,
		"user_id":    bid.UserID,
		"price":      bid.Price,
	})
}

func bidToResponse(bid model.Bid) helpers.BidResponse {
	return helpers.BidResponse{
		BidID:     bid.BidID,
		ProductID: bid.ProductID,
		UserID:    bid.UserID,
		Price:     bid.Price,
		CreatedAt: bid.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt: bid.UpdatedAt.UTC().Format(time.RFC3339),
	}
}

package handler

import (
	"fmt"
	"net/http"

	"auction-marketplace/internal/settlement"
	"auction-marketplace/services/auction/helpers"
	"auction-marketplace/utils"

	"github.com/gin-gonic/gin"
)

type SettlementServiceInterface interface {
	Settle(productID, requesterID string) (settlement.SettleResult, error)
}

type SettlementHandler struct {
	service SettlementServiceInterface
}

func NewSettlementHandler(service SettlementServiceInterface) *SettlementHandler {
	return &SettlementHandler{service: service}
}

// SettleHandler handles POST /products/:product_id/settle. Success always
// means the payout committed; notification_delivered=false in the response
// marks a degraded success where the winner notification is still pending.
func (h *SettlementHandler) SettleHandler(c *gin.Context) {
	productID := c.Param("product_id")

	var req helpers.SettleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "SettleHandler", err)
		return
	}

	result, err := h.service.Settle(productID, req.UserID)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Error("SettleHandler: failed to settle product", map[string]any{
			"handler":    "SettleHandler",
			"product_id": productID,
			"user_id":    req.UserID,
			"error":      err.Error(),
		})
		return
	}

	message := "product has been successfully sold"
	if !result.NotificationDelivered {
		message = "product sold; winner notification pending"
	}

	utils.JSONResponse(c, http.StatusOK, result, message)
	helpers.LogSuccess("SettleHandler", message, map[string]any{
		"product_id":             result.ProductID,
		"winner_id":              result.WinnerID,
		"final_price":            result.FinalPrice,
		"commission_amount":      result.CommissionAmount,
		"notification_delivered": result.NotificationDelivered,
	})
}

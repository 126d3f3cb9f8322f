package settlement

import (
	"auction-marketplace/internal/auctionerrors"
	"auction-marketplace/internal/locks"
	"auction-marketplace/internal/models"
	"auction-marketplace/internal/notifier"
	"auction-marketplace/internal/repository"
	"auction-marketplace/utils"
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// SettleResult confirms a completed settlement. NotificationDelivered is
// false for a degraded success: the payout committed but the winner
// notification is still pending redelivery.
type SettleResult struct {
	ProductID             string  `json:"product_id"`
	WinnerID              string  `json:"winner_id"`
	WinningPrice          float64 `json:"winning_price"`
	CommissionAmount      float64 `json:"commission_amount"`
	FinalPrice            float64 `json:"final_price"`
	NotificationDelivered bool    `json:"notification_delivered"`
}

// SettlementService closes auctions: it determines the winning bid, splits
// the price into commission and seller proceeds, and applies the three-way
// ledger mutation atomically.
type SettlementService struct {
	repo          repository.MarketDB
	notifier      notifier.Notifier
	dispatcher    *notifier.Dispatcher
	locks         *locks.Keyed
	notifyTimeout time.Duration
}

// NewSettlementService creates a new SettlementService instance. The keyed
// lock set must be the same one used by the bidding service so settlement is
// mutually exclusive with bid submission for the same product.
func NewSettlementService(
	repo repository.MarketDB,
	n notifier.Notifier,
	dispatcher *notifier.Dispatcher,
	productLocks *locks.Keyed,
	notifyTimeout time.Duration,
) *SettlementService {
	return &SettlementService{
		repo:          repo,
		notifier:      n,
		dispatcher:    dispatcher,
		locks:         productLocks,
		notifyTimeout: notifyTimeout,
	}
}

// Settle closes the product's auction on behalf of requesterID. The ledger
// mutation happens under the product lock; the notification attempt happens
// after the lock is released and can only degrade the result, never fail it.
func (s *SettlementService) Settle(productID, requesterID string) (SettleResult, error) {
	if productID == "" || requesterID == "" {
		return SettleResult{}, fmt.Errorf("service: %w - missing productID or requesterID", auctionerrors.ErrInvalidBid)
	}

	result, pending, err := s.settleLocked(productID, requesterID)
	if err != nil {
		return SettleResult{}, err
	}

	// First delivery attempt, time-bounded. Failure is surfaced on the
	// result and handed to the dispatcher for retried delivery.
	ctx, cancel := context.WithTimeout(context.Background(), s.notifyTimeout)
	defer cancel()

	if err := s.notifier.Notify(ctx, pending.Recipient, pending.Subject, pending.Body); err != nil {
		utils.Warn("settlement: winner notification failed, queued for redelivery", map[string]any{
			"product_id": productID,
			"winner_id":  result.WinnerID,
			"error":      err.Error(),
		})
		pending.Attempts = 1
		if markErr := s.repo.MarkNotification(pending.ID, models.NotificationPending, 1); markErr != nil {
			utils.Error("settlement: failed to record notification attempt", map[string]any{
				"notification_id": pending.ID,
				"error":           markErr.Error(),
			})
		}
		s.dispatcher.Enqueue(pending)
		return result, nil
	}

	if err := s.repo.MarkNotification(pending.ID, models.NotificationDelivered, 1); err != nil {
		utils.Error("settlement: failed to mark notification delivered", map[string]any{
			"notification_id": pending.ID,
			"error":           err.Error(),
		})
	}
	result.NotificationDelivered = true
	return result, nil
}

// settleLocked validates and applies the settlement under the product lock.
func (s *SettlementService) settleLocked(productID, requesterID string) (SettleResult, models.Notification, error) {
	s.locks.Lock(productID)
	defer s.locks.Unlock(productID)

	product, err := s.repo.GetProduct(productID)
	if err != nil {
		return SettleResult{}, models.Notification{}, fmt.Errorf("service: failed to look up product %s: %w", productID, err)
	}

	if err := s.authorize(product, requesterID); err != nil {
		return SettleResult{}, models.Notification{}, err
	}

	// Guard before any mutation: settling twice must never re-run the payout.
	if product.SoldOut {
		return SettleResult{}, models.Notification{}, fmt.Errorf("service: product %s: %w", productID, auctionerrors.ErrAlreadySold)
	}

	winner, err := s.repo.GetWinningBid(productID)
	if err != nil {
		if errors.Is(err, auctionerrors.ErrNoBids) {
			return SettleResult{}, models.Notification{}, fmt.Errorf("service: product %s: %w", productID, auctionerrors.ErrNoBids)
		}
		return SettleResult{}, models.Notification{}, fmt.Errorf("service: failed to find winning bid for product %s: %w", productID, err)
	}

	commissionAmount, finalPrice := splitPrice(winner.Price, product.CommissionRate)

	recipient := winner.UserID
	if bidder, err := s.repo.GetUser(winner.UserID); err == nil {
		recipient = bidder.Email
	}

	now := time.Now().UTC()
	apply := repository.SettlementApply{
		ProductID:        productID,
		Winner:           winner,
		FinalPrice:       finalPrice,
		CommissionAmount: commissionAmount,
		Notification: models.Notification{
			ID:        utils.GenerateID(),
			ProductID: productID,
			Recipient: recipient,
			Subject:   "Congratulations! You won the auction!",
			Body:      fmt.Sprintf("You have won the auction for %q with a bid of $%.2f.", product.Title, winner.Price),
			CreatedAt: now,
		},
	}

	pending, err := s.repo.ApplySettlement(apply)
	if err != nil {
		return SettleResult{}, models.Notification{}, fmt.Errorf("service: failed to settle product %s: %w", productID, err)
	}

	utils.Info("settlement: product sold", map[string]any{
		"product_id":  productID,
		"winner_id":   winner.UserID,
		"sold_price":  finalPrice,
		"commission":  commissionAmount,
		"seller_id":   product.SellerID,
	})

	return SettleResult{
		ProductID:        productID,
		WinnerID:         winner.UserID,
		WinningPrice:     winner.Price,
		CommissionAmount: commissionAmount,
		FinalPrice:       finalPrice,
	}, pending, nil
}

// authorize allows the owning seller or an admin to settle.
func (s *SettlementService) authorize(product models.Product, requesterID string) error {
	if requesterID == product.SellerID {
		return nil
	}
	if u, err := s.repo.GetUser(requesterID); err == nil && u.Role == models.RoleAdmin {
		return nil
	}
	return fmt.Errorf("service: user %s may not settle product %s: %w", requesterID, product.ProductID, auctionerrors.ErrNotAuthorized)
}

// splitPrice divides a winning price into commission and seller proceeds.
// The commission is computed in decimal arithmetic and rounded to cents; the
// final price is the exact remainder, so commission + final == price always.
func splitPrice(price, commissionRate float64) (commissionAmount, finalPrice float64) {
	p := decimal.NewFromFloat(price)
	rate := decimal.NewFromFloat(commissionRate)

	commission := rate.Div(decimal.NewFromInt(100)).Mul(p).Round(2)
	commissionAmount = commission.InexactFloat64()
	finalPrice = p.Sub(commission).InexactFloat64()
	return commissionAmount, finalPrice
}

package bidding

import (
	"auction-marketplace/internal/auctionerrors"
	"auction-marketplace/internal/locks"
	"auction-marketplace/internal/models"
	"auction-marketplace/internal/repository"
	"auction-marketplace/utils"
	"errors"
	"fmt"
	"time"
)

// PlaceBidResult reports the outcome of a bid submission. Created is true for
// a new standing bidder and false when an existing bidder raised their price.
type PlaceBidResult struct {
	Bid     models.Bid
	Created bool
}

// BiddingService implements the bid acceptance rules: a bid must strictly
// exceed both the bidder's own standing bid and the current global highest
// bid for the product.
type BiddingService struct {
	repo  repository.MarketDB
	locks *locks.Keyed
}

// NewBiddingService creates a new BiddingService instance. The keyed lock set
// is shared with the settlement engine so settlement excludes late bids.
func NewBiddingService(repo repository.MarketDB, productLocks *locks.Keyed) *BiddingService {
	return &BiddingService{
		repo:  repo,
		locks: productLocks,
	}
}

// PlaceBid validates and records a user's bid for a product. The whole
// check-then-act sequence runs under the product's lock so two concurrent
// bids can never both pass the highest-bid check.
func (s *BiddingService) PlaceBid(productID, userID string, price float64) (PlaceBidResult, error) {
	if productID == "" || userID == "" {
		return PlaceBidResult{}, fmt.Errorf("service: %w - missing productID or userID", auctionerrors.ErrInvalidBid)
	}
	if price <= 0 {
		return PlaceBidResult{}, fmt.Errorf("service: %w - non-positive bid price", auctionerrors.ErrInvalidBid)
	}

	s.locks.Lock(productID)
	defer s.locks.Unlock(productID)

	product, err := s.repo.GetProduct(productID)
	if err != nil {
		if errors.Is(err, auctionerrors.ErrProductNotFound) {
			return PlaceBidResult{}, fmt.Errorf("service: %w - product %s does not exist", auctionerrors.ErrInvalidAuctionState, productID)
		}
		return PlaceBidResult{}, fmt.Errorf("service: failed to look up product %s: %w", productID, err)
	}
	if !product.Verified {
		return PlaceBidResult{}, fmt.Errorf("service: %w - product %s is not verified for bidding", auctionerrors.ErrInvalidAuctionState, productID)
	}
	if product.SoldOut {
		return PlaceBidResult{}, fmt.Errorf("service: %w - bidding on product %s is closed", auctionerrors.ErrInvalidAuctionState, productID)
	}

	now := time.Now().UTC()

	existing, err := s.repo.GetStandingBid(productID, userID)
	switch {
	case err == nil:
		// Raise: must strictly exceed the bidder's own previous price and
		// the current global highest.
		if price <= existing.Price {
			return PlaceBidResult{}, fmt.Errorf("service: %w - your previous bid is %.2f", auctionerrors.ErrBidTooLow, existing.Price)
		}
		winning, werr := s.repo.GetWinningBid(productID)
		if werr != nil && !errors.Is(werr, auctionerrors.ErrNoBids) {
			return PlaceBidResult{}, fmt.Errorf("service: failed to check winning bid: %w", werr)
		}
		if werr == nil && winning.UserID != userID && price <= winning.Price {
			return PlaceBidResult{}, fmt.Errorf("service: %w - current highest bid is %.2f", auctionerrors.ErrBidTooLow, winning.Price)
		}
		raised, err := s.repo.RaiseBid(productID, userID, price, now)
		if err != nil {
			return PlaceBidResult{}, fmt.Errorf("service: failed to raise bid for product %s by user %s: %w", productID, userID, err)
		}
		return PlaceBidResult{Bid: raised}, nil

	case errors.Is(err, auctionerrors.ErrNoBids):
		// First bid by this user: must strictly exceed the global highest.
		winning, err := s.repo.GetWinningBid(productID)
		if err == nil {
			if price <= winning.Price {
				return PlaceBidResult{}, fmt.Errorf("service: %w - current highest bid is %.2f", auctionerrors.ErrBidTooLow, winning.Price)
			}
		} else if !errors.Is(err, auctionerrors.ErrNoBids) {
			return PlaceBidResult{}, fmt.Errorf("service: failed to check winning bid: %w", err)
		}

		bid := models.Bid{
			BidID:     utils.GenerateID(),
			ProductID: productID,
			UserID:    userID,
			Price:     price,
			CreatedAt: now,
			UpdatedAt: now,
		}
		if err := s.repo.CreateBid(bid); err != nil {
			return PlaceBidResult{}, fmt.Errorf("service: failed to record bid for product %s by user %s: %w", productID, userID, err)
		}
		return PlaceBidResult{Bid: bid, Created: true}, nil

	default:
		return PlaceBidResult{}, fmt.Errorf("service: failed to check standing bid: %w", err)
	}
}

// GetBidHistory returns all standing bids for a product joined with bidder
// and product detail, most recently updated first.
func (s *BiddingService) GetBidHistory(productID string) ([]models.BidDetail, error) {
	if productID == "" {
		return nil, fmt.Errorf("service: %w - empty product ID", auctionerrors.ErrInvalidBid)
	}

	history, err := s.repo.GetBidHistory(productID)
	if err != nil {
		return nil, fmt.Errorf("service: failed to get bid history for product %s: %w", productID, err)
	}
	return history, nil
}

// GetWinningBid returns the highest standing bid for a product.
func (s *BiddingService) GetWinningBid(productID string) (models.Bid, error) {
	if productID == "" {
		return models.Bid{}, fmt.Errorf("service: %w - empty product ID", auctionerrors.ErrInvalidBid)
	}

	winning, err := s.repo.GetWinningBid(productID)
	if err != nil {
		return models.Bid{}, fmt.Errorf("service: failed to get winning bid for product %s: %w", productID, err)
	}
	return winning, nil
}

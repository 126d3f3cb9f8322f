package catalog

import (
	"auction-marketplace/internal/auctionerrors"
	"auction-marketplace/internal/locks"
	"auction-marketplace/internal/models"
	"auction-marketplace/internal/repository"
	"auction-marketplace/utils"
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode"
)

// CreateProductInput carries the seller-supplied listing fields.
type CreateProductInput struct {
	Title       string
	Description string
	Price       float64
	CategoryID  string
	Image       string
	Height      float64
	Length      float64
	Width       float64
	Weight      float64
	MediumUsed  string
}

// ProductView is a product joined with live auction data for listings: the
// current bidding price (highest standing bid, falling back to the base
// price) and the number of distinct standing bidders.
type ProductView struct {
	models.Product
	BiddingPrice float64 `json:"bidding_price"`
	TotalBids    int     `json:"total_bids"`
}

// CatalogService manages the product lifecycle around the auction core:
// listing, admin verification with commission rate, and read projections.
type CatalogService struct {
	repo  repository.MarketDB
	locks *locks.Keyed
}

// NewCatalogService creates a new CatalogService instance. The keyed lock set
// must be the one shared with bidding and settlement: verification is a
// read-modify-write on the product record and must not interleave with a
// settlement committing sold state.
func NewCatalogService(repo repository.MarketDB, productLocks *locks.Keyed) *CatalogService {
	return &CatalogService{repo: repo, locks: productLocks}
}

// Create stores a new product listing for the seller. The product starts
// unverified; bidding opens only after an admin verifies it.
func (s *CatalogService) Create(sellerID string, in CreateProductInput) (models.Product, error) {
	if sellerID == "" || in.Title == "" || in.Description == "" {
		return models.Product{}, fmt.Errorf("service: %w - missing sellerID, title or description", auctionerrors.ErrInvalidBid)
	}
	if in.Price <= 0 {
		return models.Product{}, fmt.Errorf("service: %w - non-positive base price", auctionerrors.ErrInvalidBid)
	}
	if _, err := s.repo.GetUser(sellerID); err != nil {
		return models.Product{}, fmt.Errorf("service: failed to look up seller %s: %w", sellerID, err)
	}

	now := time.Now().UTC()
	product := models.Product{
		ProductID:   utils.GenerateID(),
		SellerID:    sellerID,
		Title:       in.Title,
		Description: in.Description,
		Price:       in.Price,
		CategoryID:  in.CategoryID,
		Image:       in.Image,
		Height:      in.Height,
		Length:      in.Length,
		Width:       in.Width,
		Weight:      in.Weight,
		MediumUsed:  in.MediumUsed,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	// Slug uniqueness is enforced by the store at insert time; retry with a
	// numeric suffix until an insert lands. A separate exists-check would
	// race with concurrent creates of the same title.
	base := slugify(in.Title)
	slug := base
	for suffix := 1; ; suffix++ {
		product.Slug = slug
		err := s.repo.AddProduct(product)
		if err == nil {
			break
		}
		if !errors.Is(err, auctionerrors.ErrSlugTaken) {
			return models.Product{}, fmt.Errorf("service: failed to create product: %w", err)
		}
		slug = fmt.Sprintf("%s-%d", base, suffix)
	}
	return product, nil
}

// Verify marks a product as open for bidding and sets its commission rate.
// Admin only. Re-verification simply overwrites the rate.
func (s *CatalogService) Verify(adminID, productID string, commissionRate float64) (models.Product, error) {
	if adminID == "" || productID == "" {
		return models.Product{}, fmt.Errorf("service: %w - missing adminID or productID", auctionerrors.ErrInvalidBid)
	}
	if commissionRate < 0 || commissionRate > 100 {
		return models.Product{}, fmt.Errorf("service: %w - commission rate must be between 0 and 100", auctionerrors.ErrInvalidBid)
	}

	admin, err := s.repo.GetUser(adminID)
	if err != nil {
		return models.Product{}, fmt.Errorf("service: failed to look up user %s: %w", adminID, err)
	}
	if admin.Role != models.RoleAdmin {
		return models.Product{}, fmt.Errorf("service: user %s may not verify products: %w", adminID, auctionerrors.ErrNotAuthorized)
	}

	// The read-modify-write must hold the product lock: a settlement
	// committing between the read and the write-back would otherwise be
	// overwritten with stale unsold state.
	s.locks.Lock(productID)
	defer s.locks.Unlock(productID)

	product, err := s.repo.GetProduct(productID)
	if err != nil {
		return models.Product{}, fmt.Errorf("service: failed to look up product %s: %w", productID, err)
	}

	product.Verified = true
	product.CommissionRate = commissionRate
	product.UpdatedAt = time.Now().UTC()

	if err := s.repo.UpdateProduct(product); err != nil {
		return models.Product{}, fmt.Errorf("service: failed to verify product %s: %w", productID, err)
	}

	utils.Info("catalog: product verified", map[string]any{
		"product_id":      productID,
		"commission_rate": commissionRate,
		"admin_id":        adminID,
	})
	return product, nil
}

// Delete removes a product. Only the owning seller or an admin may delete,
// and deletion is refused while standing bids reference the product.
func (s *CatalogService) Delete(requesterID, productID string) error {
	if requesterID == "" || productID == "" {
		return fmt.Errorf("service: %w - missing requesterID or productID", auctionerrors.ErrInvalidBid)
	}

	product, err := s.repo.GetProduct(productID)
	if err != nil {
		return fmt.Errorf("service: failed to look up product %s: %w", productID, err)
	}

	if requesterID != product.SellerID {
		u, err := s.repo.GetUser(requesterID)
		if err != nil || u.Role != models.RoleAdmin {
			return fmt.Errorf("service: user %s may not delete product %s: %w", requesterID, productID, auctionerrors.ErrNotAuthorized)
		}
	}

	if err := s.repo.DeleteProduct(productID); err != nil {
		return fmt.Errorf("service: failed to delete product %s: %w", productID, err)
	}
	return nil
}

// Get returns a single product by ID.
func (s *CatalogService) Get(productID string) (models.Product, error) {
	if productID == "" {
		return models.Product{}, fmt.Errorf("service: %w - empty product ID", auctionerrors.ErrInvalidBid)
	}
	product, err := s.repo.GetProduct(productID)
	if err != nil {
		return models.Product{}, fmt.Errorf("service: failed to get product %s: %w", productID, err)
	}
	return product, nil
}

// List returns all products with live bidding data, newest first.
func (s *CatalogService) List() []ProductView {
	return s.withBiddingData(s.repo.ListProducts())
}

// ListSold returns all settled products.
func (s *CatalogService) ListSold() []ProductView {
	return s.withBiddingData(s.repo.ListSoldProducts())
}

// ListBySeller returns all products listed by the given seller.
func (s *CatalogService) ListBySeller(sellerID string) ([]ProductView, error) {
	if sellerID == "" {
		return nil, fmt.Errorf("service: %w - empty seller ID", auctionerrors.ErrInvalidBid)
	}
	return s.withBiddingData(s.repo.ListProductsBySeller(sellerID)), nil
}

// ListWon returns all products the given user has won.
func (s *CatalogService) ListWon(userID string) ([]ProductView, error) {
	if userID == "" {
		return nil, fmt.Errorf("service: %w - empty user ID", auctionerrors.ErrInvalidBid)
	}
	return s.withBiddingData(s.repo.ListProductsWonBy(userID)), nil
}

// GetUser returns a user account with its balances.
func (s *CatalogService) GetUser(userID string) (models.User, error) {
	if userID == "" {
		return models.User{}, fmt.Errorf("service: %w - empty user ID", auctionerrors.ErrInvalidBid)
	}
	u, err := s.repo.GetUser(userID)
	if err != nil {
		return models.User{}, fmt.Errorf("service: failed to get user %s: %w", userID, err)
	}
	return u, nil
}

// withBiddingData joins products with their current highest bid and count.
func (s *CatalogService) withBiddingData(products []models.Product) []ProductView {
	views := make([]ProductView, 0, len(products))
	for _, p := range products {
		view := ProductView{Product: p, BiddingPrice: p.Price}
		if winning, err := s.repo.GetWinningBid(p.ProductID); err == nil {
			view.BiddingPrice = winning.Price
		}
		view.TotalBids = s.repo.CountBidsForProduct(p.ProductID)
		views = append(views, view)
	}
	return views
}

// slugify lowercases the title and collapses every non-alphanumeric run into
// a single hyphen.
func slugify(title string) string {
	var b strings.Builder
	lastHyphen := true // suppress a leading hyphen
	for _, r := range strings.ToLower(title) {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(r)
			lastHyphen = false
		case !lastHyphen:
			b.WriteByte('-')
			lastHyphen = true
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}

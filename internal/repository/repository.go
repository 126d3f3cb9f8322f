package repository

import (
	"auction-marketplace/internal/auctionerrors"
	model "auction-marketplace/internal/models"
	"fmt"
	"sort"
	"sync"
	"time"
)

// SettlementApply bundles the three-way mutation of a settlement so the store
// can apply it as a single atomic unit: product state, admin commission
// balance, seller balance, plus the winner notification outbox record.
type SettlementApply struct {
	ProductID        string
	Winner           model.Bid
	FinalPrice       float64
	CommissionAmount float64
	Notification     model.Notification
}

// MarketDB defines the ledger storage interface for the auction system
type MarketDB interface {
	// Products
	AddProduct(p model.Product) error
	GetProduct(productID string) (model.Product, error)
	UpdateProduct(p model.Product) error
	DeleteProduct(productID string) error
	ListProducts() []model.Product
	ListSoldProducts() []model.Product
	ListProductsBySeller(sellerID string) []model.Product
	ListProductsWonBy(userID string) []model.Product

	// Standing bids
	CreateBid(bid model.Bid) error
	RaiseBid(productID, userID string, price float64, at time.Time) (model.Bid, error)
	GetStandingBid(productID, userID string) (model.Bid, error)
	GetWinningBid(productID string) (model.Bid, error)
	GetBidsByProduct(productID string) ([]model.Bid, error)
	GetBidHistory(productID string) ([]model.BidDetail, error)
	CountBidsForProduct(productID string) int

	// Users and balances
	AddUser(u model.User) error
	GetUser(userID string) (model.User, error)
	GetAdmin() (model.User, error)

	// Settlement and notification outbox
	ApplySettlement(apply SettlementApply) (model.Notification, error)
	MarkNotification(id, status string, attempts int) error
	ListPendingNotifications() []model.Notification
}

// MemoryRepo is a concurrency-safe in-memory implementation of MarketDB
type MemoryRepo struct {
	mu            sync.RWMutex
	products      map[string]model.Product          // key: productID
	bids          map[string]map[string]model.Bid   // key: productID -> userID -> standing bid
	users         map[string]model.User             // key: userID
	notifications map[string]model.Notification     // key: notification ID
}

// NewMemoryRepo creates a new in-memory repository instance
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{
		products:      make(map[string]model.Product),
		bids:          make(map[string]map[string]model.Bid),
		users:         make(map[string]model.User),
		notifications: make(map[string]model.Notification),
	}
}

// AddProduct stores a new product listing
func (r *MemoryRepo) AddProduct(p model.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if p.ProductID == "" {
		return fmt.Errorf("add product: missing product ID")
	}
	// Slug uniqueness is checked in the same critical section as the insert
	// so concurrent creates cannot both claim the same slug.
	if p.Slug != "" {
		for _, existing := range r.products {
			if existing.ProductID != p.ProductID && existing.Slug == p.Slug {
				return fmt.Errorf("add product %s: slug %q: %w", p.ProductID, p.Slug, auctionerrors.ErrSlugTaken)
			}
		}
	}
	r.products[p.ProductID] = p
	return nil
}

// GetProduct returns the product with the given ID
func (r *MemoryRepo) GetProduct(productID string) (model.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.products[productID]
	if !ok {
		return model.Product{}, fmt.Errorf("get product %s: %w", productID, auctionerrors.ErrProductNotFound)
	}
	return p, nil
}

// UpdateProduct replaces a stored product record
func (r *MemoryRepo) UpdateProduct(p model.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.products[p.ProductID]; !ok {
		return fmt.Errorf("update product %s: %w", p.ProductID, auctionerrors.ErrProductNotFound)
	}
	r.products[p.ProductID] = p
	return nil
}

// DeleteProduct removes a product. Deletion is restricted while standing bids
// reference the product so bids never dangle.
func (r *MemoryRepo) DeleteProduct(productID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.products[productID]; !ok {
		return fmt.Errorf("delete product %s: %w", productID, auctionerrors.ErrProductNotFound)
	}
	if len(r.bids[productID]) > 0 {
		return fmt.Errorf("delete product %s: %w", productID, auctionerrors.ErrHasBids)
	}
	delete(r.products, productID)
	return nil
}

// ListProducts returns all products, newest first
func (r *MemoryRepo) ListProducts() []model.Product {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.listProductsLocked(func(model.Product) bool { return true })
}

// ListSoldProducts returns all products that have been settled
func (r *MemoryRepo) ListSoldProducts() []model.Product {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.listProductsLocked(func(p model.Product) bool { return p.SoldOut })
}

// ListProductsBySeller returns all products listed by the given seller
func (r *MemoryRepo) ListProductsBySeller(sellerID string) []model.Product {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.listProductsLocked(func(p model.Product) bool { return p.SellerID == sellerID })
}

// ListProductsWonBy returns all products the given user has won at settlement
func (r *MemoryRepo) ListProductsWonBy(userID string) []model.Product {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.listProductsLocked(func(p model.Product) bool { return p.SoldOut && p.SoldTo == userID })
}

// listProductsLocked filters and sorts products newest first. Caller holds r.mu.
func (r *MemoryRepo) listProductsLocked(keep func(model.Product) bool) []model.Product {
	out := make([]model.Product, 0)
	for _, p := range r.products {
		if keep(p) {
			out = append(out, p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out
}

// CreateBid records a user's first standing bid on a product
func (r *MemoryRepo) CreateBid(bid model.Bid) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.products[bid.ProductID]; !ok {
		return fmt.Errorf("create bid for product %s: %w", bid.ProductID, auctionerrors.ErrProductNotFound)
	}
	if r.bids[bid.ProductID] == nil {
		r.bids[bid.ProductID] = make(map[string]model.Bid)
	}
	r.bids[bid.ProductID][bid.UserID] = bid
	return nil
}

// RaiseBid updates the price of an existing standing bid in place, keeping
// the bid identity.
func (r *MemoryRepo) RaiseBid(productID, userID string, price float64, at time.Time) (model.Bid, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	bid, ok := r.bids[productID][userID]
	if !ok {
		return model.Bid{}, fmt.Errorf("raise bid for product %s by user %s: %w", productID, userID, auctionerrors.ErrNoBids)
	}
	bid.Price = price
	bid.UpdatedAt = at
	r.bids[productID][userID] = bid
	return bid, nil
}

// GetStandingBid returns the given user's standing bid for a product
func (r *MemoryRepo) GetStandingBid(productID, userID string) (model.Bid, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	bid, ok := r.bids[productID][userID]
	if !ok {
		return model.Bid{}, fmt.Errorf("get standing bid for product %s by user %s: %w", productID, userID, auctionerrors.ErrNoBids)
	}
	return bid, nil
}

// GetWinningBid returns the highest standing bid for a product
func (r *MemoryRepo) GetWinningBid(productID string) (model.Bid, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.winningBidLocked(productID)
}

// winningBidLocked computes the max-price standing bid. Caller holds r.mu.
func (r *MemoryRepo) winningBidLocked(productID string) (model.Bid, error) {
	bids := r.bids[productID]
	if len(bids) == 0 {
		return model.Bid{}, fmt.Errorf("get winning bid for product %s: %w", productID, auctionerrors.ErrNoBids)
	}

	var winning model.Bid
	first := true
	for _, b := range bids {
		if first || b.Price > winning.Price || (b.Price == winning.Price && b.UpdatedAt.Before(winning.UpdatedAt)) {
			winning = b
			first = false
		}
	}
	return winning, nil
}

// GetBidsByProduct returns all standing bids for a product
func (r *MemoryRepo) GetBidsByProduct(productID string) ([]model.Bid, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	bids := r.bids[productID]
	if len(bids) == 0 {
		return nil, fmt.Errorf("get bids for product %s: %w", productID, auctionerrors.ErrNoBids)
	}

	out := make([]model.Bid, 0, len(bids))
	for _, b := range bids {
		out = append(out, b)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].UpdatedAt.After(out[j].UpdatedAt) })
	return out, nil
}

// GetBidHistory returns all standing bids for a product joined with bidder
// and product detail, most recently updated first
func (r *MemoryRepo) GetBidHistory(productID string) ([]model.BidDetail, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	product, ok := r.products[productID]
	if !ok {
		return nil, fmt.Errorf("get bid history for product %s: %w", productID, auctionerrors.ErrProductNotFound)
	}

	details := make([]model.BidDetail, 0, len(r.bids[productID]))
	for _, b := range r.bids[productID] {
		details = append(details, model.BidDetail{
			Bid:     b,
			Bidder:  r.users[b.UserID],
			Product: product,
		})
	}
	sort.Slice(details, func(i, j int) bool {
		return details[i].Bid.UpdatedAt.After(details[j].Bid.UpdatedAt)
	})
	return details, nil
}

// CountBidsForProduct returns the number of distinct standing bidders
func (r *MemoryRepo) CountBidsForProduct(productID string) int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.bids[productID])
}

// AddUser stores a user account
func (r *MemoryRepo) AddUser(u model.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if u.UserID == "" {
		return fmt.Errorf("add user: missing user ID")
	}
	r.users[u.UserID] = u
	return nil
}

// GetUser returns the user with the given ID
func (r *MemoryRepo) GetUser(userID string) (model.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.users[userID]
	if !ok {
		return model.User{}, fmt.Errorf("get user %s: %w", userID, auctionerrors.ErrUserNotFound)
	}
	return u, nil
}

// GetAdmin returns the platform administrator account
func (r *MemoryRepo) GetAdmin() (model.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, u := range r.users {
		if u.Role == model.RoleAdmin {
			return u, nil
		}
	}
	return model.User{}, fmt.Errorf("get admin: %w", auctionerrors.ErrUserNotFound)
}

// ApplySettlement applies a settlement as a single atomic unit: it validates
// every precondition before the first mutation, so a failed apply leaves no
// partial state behind.
func (r *MemoryRepo) ApplySettlement(apply SettlementApply) (model.Notification, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	product, ok := r.products[apply.ProductID]
	if !ok {
		return model.Notification{}, fmt.Errorf("apply settlement for product %s: %w", apply.ProductID, auctionerrors.ErrProductNotFound)
	}
	if product.SoldOut {
		return model.Notification{}, fmt.Errorf("apply settlement for product %s: %w", apply.ProductID, auctionerrors.ErrAlreadySold)
	}
	seller, ok := r.users[product.SellerID]
	if !ok {
		return model.Notification{}, fmt.Errorf("apply settlement for product %s: %w", apply.ProductID, auctionerrors.ErrSellerMissing)
	}

	// All preconditions hold; mutate.
	product.SoldOut = true
	product.SoldTo = apply.Winner.UserID
	product.SoldPrice = apply.FinalPrice
	product.UpdatedAt = apply.Notification.CreatedAt
	r.products[apply.ProductID] = product

	// Commission is skipped, not failed, when no admin account exists.
	for id, u := range r.users {
		if u.Role == model.RoleAdmin {
			u.CommissionBalance += apply.CommissionAmount
			r.users[id] = u
			break
		}
	}

	seller.Balance += apply.FinalPrice
	r.users[product.SellerID] = seller

	n := apply.Notification
	n.Status = model.NotificationPending
	r.notifications[n.ID] = n
	return n, nil
}

// MarkNotification records the delivery outcome of an outbox record
func (r *MemoryRepo) MarkNotification(id, status string, attempts int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	n, ok := r.notifications[id]
	if !ok {
		return fmt.Errorf("mark notification %s: not found", id)
	}
	n.Status = status
	n.Attempts = attempts
	r.notifications[id] = n
	return nil
}

// ListPendingNotifications returns all outbox records awaiting delivery
func (r *MemoryRepo) ListPendingNotifications() []model.Notification {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]model.Notification, 0)
	for _, n := range r.notifications {
		if n.Status == model.NotificationPending {
			out = append(out, n)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out
}

package models

import "time"

// Role values for User.Role.
const (
	RoleAdmin  = "admin"
	RoleBuyer  = "buyer"
	RoleSeller = "seller"
)

// User represents a marketplace participant. Balance holds accumulated sale
// proceeds; CommissionBalance holds platform revenue and is only credited on
// the admin account.
type User struct {
	UserID            string  `json:"user_id"`
	Name              string  `json:"name"`
	Email             string  `json:"email"`
	Role              string  `json:"role"`
	Balance           float64 `json:"balance"`
	CommissionBalance float64 `json:"commission_balance"`
}

// Product represents an item listed for auction by a seller.
type Product struct {
	ProductID   string  `json:"product_id"`
	SellerID    string  `json:"seller_id"`
	Title       string  `json:"title"`
	Slug        string  `json:"slug"`
	Description string  `json:"description"`
	Price       float64 `json:"price"` // base price set by the seller
	CategoryID  string  `json:"category_id,omitempty"`
	Image       string  `json:"image,omitempty"`

	// Physical descriptors.
	Height     float64 `json:"height,omitempty"`
	Length     float64 `json:"length,omitempty"`
	Width      float64 `json:"width,omitempty"`
	Weight     float64 `json:"weight,omitempty"`
	MediumUsed string  `json:"medium_used,omitempty"`

	// Auction state. Verified and CommissionRate are set by an admin;
	// SoldOut, SoldTo and SoldPrice are set exactly once at settlement.
	Verified       bool    `json:"verified"`
	CommissionRate float64 `json:"commission_rate"`
	SoldOut        bool    `json:"sold_out"`
	SoldTo         string  `json:"sold_to,omitempty"`
	SoldPrice      float64 `json:"sold_price,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Biddable reports whether the product currently accepts bids.
func (p Product) Biddable() bool {
	return p.Verified && !p.SoldOut
}

// Bid represents a user's standing bid on a product. A user holds at most one
// bid per product; raising mutates Price and UpdatedAt in place, keeping the
// same BidID.
type Bid struct {
	BidID     string    `json:"bid_id"`
	ProductID string    `json:"product_id"`
	UserID    string    `json:"user_id"`
	Price     float64   `json:"price"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// BidDetail is the bid history projection: a standing bid joined with its
// bidder and a product summary.
type BidDetail struct {
	Bid     Bid     `json:"bid"`
	Bidder  User    `json:"bidder"`
	Product Product `json:"product"`
}

// Notification delivery states.
const (
	NotificationPending   = "pending"
	NotificationDelivered = "delivered"
	NotificationFailed    = "failed"
)

// Notification is an outbox record for a winner notification. It is written
// in the same critical section as the settlement mutation so settlement and
// notification can never disagree about whether a sale happened.
type Notification struct {
	ID        string    `json:"id"`
	ProductID string    `json:"product_id"`
	Recipient string    `json:"recipient"`
	Subject   string    `json:"subject"`
	Body      string    `json:"body"`
	Status    string    `json:"status"`
	Attempts  int       `json:"attempts"`
	CreatedAt time.Time `json:"created_at"`
}

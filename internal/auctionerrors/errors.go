package auctionerrors

import "errors"

// Repository-level errors
var (
	ErrProductNotFound = errors.New("product not found")
	ErrUserNotFound    = errors.New("user not found")
	ErrNoBids          = errors.New("no bids found for product")
	ErrSellerMissing   = errors.New("seller account missing")
	ErrSlugTaken       = errors.New("slug already in use")
)

// business logic errors
var (
	ErrInvalidBid          = errors.New("invalid bid")
	ErrBidTooLow           = errors.New("bid price too low")
	ErrInvalidAuctionState = errors.New("product is not open for bidding")
	ErrNotAuthorized       = errors.New("not authorized")
	ErrAlreadySold         = errors.New("product already sold")
	ErrHasBids             = errors.New("product has standing bids")
)

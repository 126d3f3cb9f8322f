package helpers

// Request/Response DTOs
type PlaceBidRequest struct {
	ProductID string  `json:"product_id" binding:"required"`
	UserID    string  `json:"user_id" binding:"required"`
	Price     float64 `json:"price" binding:"required,gt=0"`
}

type BidResponse struct {
	BidID     string  `json:"bid_id"`
	ProductID string  `json:"product_id"`
	UserID    string  `json:"user_id"`
	Price     float64 `json:"price"`
	CreatedAt string  `json:"created_at"`
	UpdatedAt string  `json:"updated_at"`
}

type SettleRequest struct {
	UserID string `json:"user_id" binding:"required"`
}

type CreateProductRequest struct {
	UserID      string  `json:"user_id" binding:"required"`
	Title       string  `json:"title" binding:"required"`
	Description string  `json:"description" binding:"required"`
	Price       float64 `json:"price" binding:"required,gt=0"`
	CategoryID  string  `json:"category_id"`
	Image       string  `json:"image"`
	Height      float64 `json:"height"`
	Length      float64 `json:"length"`
	Width       float64 `json:"width"`
	Weight      float64 `json:"weight"`
	MediumUsed  string  `json:"medium_used"`
}

type VerifyProductRequest struct {
	UserID     string  `json:"user_id" binding:"required"`
	Commission float64 `json:"commission" binding:"gte=0,lte=100"`
}

package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"auction-marketplace/internal/auctionerrors"
	"auction-marketplace/internal/bidding"
	model "auction-marketplace/internal/models"
	"auction-marketplace/internal/settlement"
	"auction-marketplace/services/auction/helpers"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func marshalBody(t *testing.T, body any) []byte {
	t.Helper()
	if s, ok := body.(string); ok {
		return []byte(s)
	}
	raw, err := json.Marshal(body)
	require.NoError(t, err)
	return raw
}

// Test PlaceBidHandler
func TestPlaceBidHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := NewMockBiddingServiceInterface(ctrl)
	handler := NewBiddingHandler(mockService)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/bids", handler.PlaceBidHandler)

	now := time.Now().UTC()

	tests := []struct {
		name           string
		requestBody    any
		mockSetup      func()
		expectedStatus int
		expectedMsg    string
		validateData   func(t *testing.T, data map[string]any)
	}{
		{
			name: "success_first_bid",
			requestBody: helpers.PlaceBidRequest{
				ProductID: "prod1",
				UserID:    "user1",
				Price:     100,
			},
			mockSetup: func() {
				mockService.EXPECT().
					PlaceBid("prod1", "user1", 100.0).
					Return(bidding.PlaceBidResult{
						Bid: model.Bid{
							BidID:     uuid.NewString(),
							ProductID: "prod1",
							UserID:    "user1",
							Price:     100.0,
							CreatedAt: now,
							UpdatedAt: now,
						},
						Created: true,
					}, nil)
			},
			expectedStatus: http.StatusCreated,
			expectedMsg:    "bid recorded successfully",
			validateData: func(t *testing.T, data map[string]any) {
				bidID := data["bid_id"].(string)
				require.NotEmpty(t, bidID)
				_, parseErr := uuid.Parse(bidID)
				require.NoError(t, parseErr, "BidID should be a valid UUID")
				require.Equal(t, "prod1", data["product_id"])
				require.Equal(t, "user1", data["user_id"])
				require.Equal(t, 100.0, data["price"])
			},
		},
		{
			name: "success_raised_bid",
			requestBody: helpers.PlaceBidRequest{
				ProductID: "prod1",
				UserID:    "user1",
				Price:     150,
			},
			mockSetup: func() {
				mockService.EXPECT().
					PlaceBid("prod1", "user1", 150.0).
					Return(bidding.PlaceBidResult{
						Bid: model.Bid{
							BidID:     uuid.NewString(),
							ProductID: "prod1",
							UserID:    "user1",
							Price:     150.0,
							CreatedAt: now.Add(-time.Minute),
							UpdatedAt: now,
						},
						Created: false,
					}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedMsg:    "bid raised successfully",
			validateData: func(t *testing.T, data map[string]any) {
				require.Equal(t, 150.0, data["price"])
				require.NotEqual(t, data["created_at"], data["updated_at"])
			},
		},
		{
			name:           "invalid_json",
			requestBody:    `{invalid json}`,
			mockSetup:      func() {},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "invalid request payload",
		},
		{
			name: "missing_product_id",
			requestBody: helpers.PlaceBidRequest{
				ProductID: "",
				UserID:    "user1",
				Price:     50,
			},
			mockSetup:      func() {},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "invalid request payload",
		},
		{
			name: "missing_user_id",
			requestBody: helpers.PlaceBidRequest{
				ProductID: "prod1",
				UserID:    "",
				Price:     50,
			},
			mockSetup:      func() {},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "invalid request payload",
		},
		{
			name: "invalid_price_zero",
			requestBody: helpers.PlaceBidRequest{
				ProductID: "prod1",
				UserID:    "user1",
				Price:     0,
			},
			mockSetup:      func() {},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "invalid request payload",
		},
		{
			name: "negative_price",
			requestBody: helpers.PlaceBidRequest{
				ProductID: "prod1",
				UserID:    "user1",
				Price:     -10,
			},
			mockSetup:      func() {},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "invalid request payload",
		},
		{
			name: "service_bid_too_low",
			requestBody: helpers.PlaceBidRequest{
				ProductID: "prod1",
				UserID:    "user1",
				Price:     50,
			},
			mockSetup: func() {
				mockService.EXPECT().
					PlaceBid("prod1", "user1", 50.0).
					Return(bidding.PlaceBidResult{}, auctionerrors.ErrBidTooLow)
			},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "bid price too low",
		},
		{
			name: "service_product_not_biddable",
			requestBody: helpers.PlaceBidRequest{
				ProductID: "prod1",
				UserID:    "user1",
				Price:     50,
			},
			mockSetup: func() {
				mockService.EXPECT().
					PlaceBid("prod1", "user1", 50.0).
					Return(bidding.PlaceBidResult{}, auctionerrors.ErrInvalidAuctionState)
			},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "product is not open for bidding",
		},
		{
			name: "service_product_not_found",
			requestBody: helpers.PlaceBidRequest{
				ProductID: "ghost",
				UserID:    "user1",
				Price:     50,
			},
			mockSetup: func() {
				mockService.EXPECT().
					PlaceBid("ghost", "user1", 50.0).
					Return(bidding.PlaceBidResult{}, auctionerrors.ErrProductNotFound)
			},
			expectedStatus: http.StatusNotFound,
			expectedMsg:    "product not found",
		},
		{
			name: "service_generic_error",
			requestBody: helpers.PlaceBidRequest{
				ProductID: "prod1",
				UserID:    "user1",
				Price:     100,
			},
			mockSetup: func() {
				mockService.EXPECT().
					PlaceBid("prod1", "user1", 100.0).
					Return(bidding.PlaceBidResult{}, errors.New("database failure"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedMsg:    "internal server error",
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			tc.mockSetup()

			req := httptest.NewRequest(http.MethodPost, "/bids", bytes.NewReader(marshalBody(t, tc.requestBody)))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			require.Equal(t, tc.expectedStatus, w.Code)

			var resp map[string]any
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			require.Contains(t, resp["message"], tc.expectedMsg)

			if tc.validateData != nil && w.Code < http.StatusBadRequest {
				data := resp["data"].(map[string]any)
				tc.validateData(t, data)
			}
		})
	}
}

// Test GetBidHistoryHandler
func TestGetBidHistoryHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := NewMockBiddingServiceInterface(ctrl)
	handler := NewBiddingHandler(mockService)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/products/:product_id/bids", handler.GetBidHistoryHandler)

	now := time.Now().UTC()

	tests := []struct {
		name           string
		productID      string
		mockSetup      func()
		expectedStatus int
		expectedMsg    string
		validateData   func(t *testing.T, data []any)
	}{
		{
			name:      "success_multiple_bids",
			productID: "prod1",
			mockSetup: func() {
				mockService.EXPECT().
					GetBidHistory("prod1").
					Return([]model.BidDetail{
						{
							Bid:    model.Bid{BidID: uuid.NewString(), ProductID: "prod1", UserID: "user2", Price: 150, CreatedAt: now, UpdatedAt: now},
							Bidder: model.User{UserID: "user2", Name: "Bea"},
						},
						{
							Bid:    model.Bid{BidID: uuid.NewString(), ProductID: "prod1", UserID: "user1", Price: 100, CreatedAt: now, UpdatedAt: now},
							Bidder: model.User{UserID: "user1", Name: "Ann"},
						},
					}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedMsg:    "bid history retrieved successfully",
			validateData: func(t *testing.T, data []any) {
				require.Len(t, data, 2)
				first := data[0].(map[string]any)["bid"].(map[string]any)
				require.Equal(t, 150.0, first["price"])
			},
		},
		{
			name:      "success_no_bids",
			productID: "prod1",
			mockSetup: func() {
				mockService.EXPECT().
					GetBidHistory("prod1").
					Return([]model.BidDetail{}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedMsg:    "bid history retrieved successfully",
			validateData: func(t *testing.T, data []any) {
				require.Empty(t, data)
			},
		},
		{
			name:      "product_not_found",
			productID: "ghost",
			mockSetup: func() {
				mockService.EXPECT().
					GetBidHistory("ghost").
					Return(nil, auctionerrors.ErrProductNotFound)
			},
			expectedStatus: http.StatusNotFound,
			expectedMsg:    "product not found",
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			tc.mockSetup()

			req := httptest.NewRequest(http.MethodGet, "/products/"+tc.productID+"/bids", nil)
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			require.Equal(t, tc.expectedStatus, w.Code)

			var resp map[string]any
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			require.Contains(t, resp["message"], tc.expectedMsg)

			if tc.validateData != nil && w.Code == http.StatusOK {
				data, _ := resp["data"].([]any)
				tc.validateData(t, data)
			}
		})
	}
}

// Test GetWinningBidHandler
func TestGetWinningBidHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := NewMockBiddingServiceInterface(ctrl)
	handler := NewBiddingHandler(mockService)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/products/:product_id/winning", handler.GetWinningBidHandler)

	now := time.Now().UTC()

	tests := []struct {
		name           string
		productID      string
		mockSetup      func()
		expectedStatus int
		expectedMsg    string
		validateData   func(t *testing.T, data map[string]any)
	}{
		{
			name:      "success_winning_bid",
			productID: "prod1",
			mockSetup: func() {
				mockService.EXPECT().
					GetWinningBid("prod1").
					Return(model.Bid{
						BidID:     uuid.NewString(),
						ProductID: "prod1",
						UserID:    "user2",
						Price:     160,
						CreatedAt: now,
						UpdatedAt: now,
					}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedMsg:    "winning bid retrieved successfully",
			validateData: func(t *testing.T, data map[string]any) {
				require.Equal(t, "user2", data["user_id"])
				require.Equal(t, 160.0, data["price"])
			},
		},
		{
			name:      "no_bids",
			productID: "prod1",
			mockSetup: func() {
				mockService.EXPECT().
					GetWinningBid("prod1").
					Return(model.Bid{}, auctionerrors.ErrNoBids)
			},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "no bids found for product",
		},
		{
			name:      "product_not_found",
			productID: "ghost",
			mockSetup: func() {
				mockService.EXPECT().
					GetWinningBid("ghost").
					Return(model.Bid{}, auctionerrors.ErrProductNotFound)
			},
			expectedStatus: http.StatusNotFound,
			expectedMsg:    "product not found",
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			tc.mockSetup()

			req := httptest.NewRequest(http.MethodGet, "/products/"+tc.productID+"/winning", nil)
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			require.Equal(t, tc.expectedStatus, w.Code)

			var resp map[string]any
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			require.Contains(t, resp["message"], tc.expectedMsg)

			if tc.validateData != nil && w.Code == http.StatusOK {
				tc.validateData(t, resp["data"].(map[string]any))
			}
		})
	}
}

// Test SettleHandler
func TestSettleHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := NewMockSettlementServiceInterface(ctrl)
	handler := NewSettlementHandler(mockService)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/products/:product_id/settle", handler.SettleHandler)

	tests := []struct {
		name           string
		productID      string
		requestBody    any
		mockSetup      func()
		expectedStatus int
		expectedMsg    string
		validateData   func(t *testing.T, data map[string]any)
	}{
		{
			name:        "success_settled_and_notified",
			productID:   "prod1",
			requestBody: helpers.SettleRequest{UserID: "seller1"},
			mockSetup: func() {
				mockService.EXPECT().
					Settle("prod1", "seller1").
					Return(settlement.SettleResult{
						ProductID:             "prod1",
						WinnerID:              "user2",
						WinningPrice:          160,
						CommissionAmount:      16,
						FinalPrice:            144,
						NotificationDelivered: true,
					}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedMsg:    "product has been successfully sold",
			validateData: func(t *testing.T, data map[string]any) {
				require.Equal(t, "user2", data["winner_id"])
				require.Equal(t, 160.0, data["winning_price"])
				require.Equal(t, 16.0, data["commission_amount"])
				require.Equal(t, 144.0, data["final_price"])
				require.Equal(t, true, data["notification_delivered"])
			},
		},
		{
			name:        "success_notification_pending",
			productID:   "prod1",
			requestBody: helpers.SettleRequest{UserID: "seller1"},
			mockSetup: func() {
				mockService.EXPECT().
					Settle("prod1", "seller1").
					Return(settlement.SettleResult{
						ProductID:             "prod1",
						WinnerID:              "user2",
						WinningPrice:          160,
						CommissionAmount:      16,
						FinalPrice:            144,
						NotificationDelivered: false,
					}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedMsg:    "product sold; winner notification pending",
			validateData: func(t *testing.T, data map[string]any) {
				require.Equal(t, false, data["notification_delivered"])
			},
		},
		{
			name:           "missing_user_id",
			productID:      "prod1",
			requestBody:    helpers.SettleRequest{},
			mockSetup:      func() {},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "invalid request payload",
		},
		{
			name:        "not_authorized",
			productID:   "prod1",
			requestBody: helpers.SettleRequest{UserID: "user2"},
			mockSetup: func() {
				mockService.EXPECT().
					Settle("prod1", "user2").
					Return(settlement.SettleResult{}, auctionerrors.ErrNotAuthorized)
			},
			expectedStatus: http.StatusForbidden,
			expectedMsg:    "not authorized",
		},
		{
			name:        "no_bids",
			productID:   "prod1",
			requestBody: helpers.SettleRequest{UserID: "seller1"},
			mockSetup: func() {
				mockService.EXPECT().
					Settle("prod1", "seller1").
					Return(settlement.SettleResult{}, auctionerrors.ErrNoBids)
			},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "no bids found for product",
		},
		{
			name:        "already_sold",
			productID:   "prod1",
			requestBody: helpers.SettleRequest{UserID: "seller1"},
			mockSetup: func() {
				mockService.EXPECT().
					Settle("prod1", "seller1").
					Return(settlement.SettleResult{}, auctionerrors.ErrAlreadySold)
			},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "product already sold",
		},
		{
			name:        "product_not_found",
			productID:   "ghost",
			requestBody: helpers.SettleRequest{UserID: "seller1"},
			mockSetup: func() {
				mockService.EXPECT().
					Settle("ghost", "seller1").
					Return(settlement.SettleResult{}, auctionerrors.ErrProductNotFound)
			},
			expectedStatus: http.StatusNotFound,
			expectedMsg:    "product not found",
		},
		{
			name:        "seller_account_missing",
			productID:   "prod1",
			requestBody: helpers.SettleRequest{UserID: "admin1"},
			mockSetup: func() {
				mockService.EXPECT().
					Settle("prod1", "admin1").
					Return(settlement.SettleResult{}, auctionerrors.ErrSellerMissing)
			},
			expectedStatus: http.StatusInternalServerError,
			expectedMsg:    "seller account missing",
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			tc.mockSetup()

			req := httptest.NewRequest(http.MethodPost, "/products/"+tc.productID+"/settle", bytes.NewReader(marshalBody(t, tc.requestBody)))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			require.Equal(t, tc.expectedStatus, w.Code)

			var resp map[string]any
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			require.Contains(t, resp["message"], tc.expectedMsg)

			if tc.validateData != nil && w.Code == http.StatusOK {
				tc.validateData(t, resp["data"].(map[string]any))
			}
		})
	}
}

// Test CreateProductHandler
func TestCreateProductHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := NewMockCatalogServiceInterface(ctrl)
	handler := NewCatalogHandler(mockService)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/products", handler.CreateProductHandler)

	validReq := helpers.CreateProductRequest{
		UserID:      "seller1",
		Title:       "Sunset Painting",
		Description: "Oil on canvas",
		Price:       100,
		MediumUsed:  "oil",
	}

	tests := []struct {
		name           string
		requestBody    any
		mockSetup      func()
		expectedStatus int
		expectedMsg    string
		validateData   func(t *testing.T, data map[string]any)
	}{
		{
			name:        "success_created",
			requestBody: validReq,
			mockSetup: func() {
				mockService.EXPECT().
					Create("seller1", gomock.Any()).
					Return(model.Product{
						ProductID: uuid.NewString(),
						SellerID:  "seller1",
						Title:     "Sunset Painting",
						Price:     100,
						Slug:      "sunset-painting",
					}, nil)
			},
			expectedStatus: http.StatusCreated,
			expectedMsg:    "product created successfully",
			validateData: func(t *testing.T, data map[string]any) {
				require.Equal(t, "seller1", data["seller_id"])
				require.Equal(t, "sunset-painting", data["slug"])
			},
		},
		{
			name: "missing_title",
			requestBody: helpers.CreateProductRequest{
				UserID:      "seller1",
				Description: "Oil on canvas",
				Price:       100,
			},
			mockSetup:      func() {},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "invalid request payload",
		},
		{
			name: "zero_price",
			requestBody: helpers.CreateProductRequest{
				UserID:      "seller1",
				Title:       "Sunset Painting",
				Description: "Oil on canvas",
				Price:       0,
			},
			mockSetup:      func() {},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "invalid request payload",
		},
		{
			name:        "seller_not_found",
			requestBody: validReq,
			mockSetup: func() {
				mockService.EXPECT().
					Create("seller1", gomock.Any()).
					Return(model.Product{}, auctionerrors.ErrUserNotFound)
			},
			expectedStatus: http.StatusNotFound,
			expectedMsg:    "user not found",
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			tc.mockSetup()

			req := httptest.NewRequest(http.MethodPost, "/products", bytes.NewReader(marshalBody(t, tc.requestBody)))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			require.Equal(t, tc.expectedStatus, w.Code)

			var resp map[string]any
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			require.Contains(t, resp["message"], tc.expectedMsg)

			if tc.validateData != nil && w.Code == http.StatusCreated {
				tc.validateData(t, resp["data"].(map[string]any))
			}
		})
	}
}

// Test VerifyProductHandler
func TestVerifyProductHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := NewMockCatalogServiceInterface(ctrl)
	handler := NewCatalogHandler(mockService)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.PATCH("/products/:product_id/verify", handler.VerifyProductHandler)

	tests := []struct {
		name           string
		productID      string
		requestBody    any
		mockSetup      func()
		expectedStatus int
		expectedMsg    string
	}{
		{
			name:        "success_verified",
			productID:   "prod1",
			requestBody: helpers.VerifyProductRequest{UserID: "admin1", Commission: 10},
			mockSetup: func() {
				mockService.EXPECT().
					Verify("admin1", "prod1", 10.0).
					Return(model.Product{ProductID: "prod1", Verified: true, CommissionRate: 10}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedMsg:    "product verified successfully",
		},
		{
			name:           "commission_above_bounds",
			productID:      "prod1",
			requestBody:    helpers.VerifyProductRequest{UserID: "admin1", Commission: 120},
			mockSetup:      func() {},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "invalid request payload",
		},
		{
			name:        "not_an_admin",
			productID:   "prod1",
			requestBody: helpers.VerifyProductRequest{UserID: "user1", Commission: 10},
			mockSetup: func() {
				mockService.EXPECT().
					Verify("user1", "prod1", 10.0).
					Return(model.Product{}, auctionerrors.ErrNotAuthorized)
			},
			expectedStatus: http.StatusForbidden,
			expectedMsg:    "not authorized",
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			tc.mockSetup()

			req := httptest.NewRequest(http.MethodPatch, "/products/"+tc.productID+"/verify", bytes.NewReader(marshalBody(t, tc.requestBody)))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			require.Equal(t, tc.expectedStatus, w.Code)

			var resp map[string]any
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			require.Contains(t, resp["message"], tc.expectedMsg)
		})
	}
}

// Test DeleteProductHandler
func TestDeleteProductHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := NewMockCatalogServiceInterface(ctrl)
	handler := NewCatalogHandler(mockService)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.DELETE("/products/:product_id", handler.DeleteProductHandler)

	tests := []struct {
		name           string
		target         string
		mockSetup      func()
		expectedStatus int
		expectedMsg    string
	}{
		{
			name:   "success_deleted",
			target: "/products/prod1?user_id=seller1",
			mockSetup: func() {
				mockService.EXPECT().
					Delete("seller1", "prod1").
					Return(nil)
			},
			expectedStatus: http.StatusOK,
			expectedMsg:    "product deleted successfully",
		},
		{
			name:   "has_standing_bids",
			target: "/products/prod1?user_id=seller1",
			mockSetup: func() {
				mockService.EXPECT().
					Delete("seller1", "prod1").
					Return(auctionerrors.ErrHasBids)
			},
			expectedStatus: http.StatusConflict,
			expectedMsg:    "product has standing bids",
		},
		{
			name:   "not_the_owner",
			target: "/products/prod1?user_id=user2",
			mockSetup: func() {
				mockService.EXPECT().
					Delete("user2", "prod1").
					Return(auctionerrors.ErrNotAuthorized)
			},
			expectedStatus: http.StatusForbidden,
			expectedMsg:    "not authorized",
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			tc.mockSetup()

			req := httptest.NewRequest(http.MethodDelete, tc.target, nil)
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			require.Equal(t, tc.expectedStatus, w.Code)

			var resp map[string]any
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			require.Contains(t, resp["message"], tc.expectedMsg)
		})
	}
}

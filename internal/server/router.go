package server

import (
	"auction-marketplace/internal/bidding"
	"auction-marketplace/internal/catalog"
	"auction-marketplace/internal/settlement"
	handler "auction-marketplace/services/auction/handler"

	"github.com/gin-gonic/gin"
)

// SetupRouter configures all Gin routes for the application
func SetupRouter(
	biddingService *bidding.BiddingService,
	settlementService *settlement.SettlementService,
	catalogService *catalog.CatalogService,
) *gin.Engine {
	router := gin.New() // New router without default middleware for full control over middleware and logging

	router.Use(gin.Recovery())          // recover from panics
	router.Use(RequestLoggerMiddleware) // custom request logging

	biddingHandler := handler.NewBiddingHandler(biddingService)
	settlementHandler := handler.NewSettlementHandler(settlementService)
	catalogHandler := handler.NewCatalogHandler(catalogService)

	bids := router.Group("/bids")
	{
		bids.POST("", biddingHandler.PlaceBidHandler)
	}

	products := router.Group("/products")
	{
		products.POST("", catalogHandler.CreateProductHandler)
		products.GET("", catalogHandler.ListProductsHandler)
		products.GET("/sold", catalogHandler.ListSoldProductsHandler)
		products.GET("/:product_id", catalogHandler.GetProductHandler)
		products.DELETE("/:product_id", catalogHandler.DeleteProductHandler)
		products.PATCH("/:product_id/verify", catalogHandler.VerifyProductHandler)
		products.GET("/:product_id/bids", biddingHandler.GetBidHistoryHandler)
		products.GET("/:product_id/winning", biddingHandler.GetWinningBidHandler)
		products.POST("/:product_id/settle", settlementHandler.SettleHandler)
	}

	users := router.Group("/users")
	{
		users.GET("/:user_id", catalogHandler.GetUserHandler)
		users.GET("/:user_id/products", catalogHandler.ListSellerProductsHandler)
		users.GET("/:user_id/won", catalogHandler.ListWonProductsHandler)
	}

	return router
}

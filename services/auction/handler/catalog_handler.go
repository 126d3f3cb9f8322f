package handler

import (
	"fmt"
	"net/http"

	"auction-marketplace/internal/catalog"
	model "auction-marketplace/internal/models"
	"auction-marketplace/services/auction/helpers"
	"auction-marketplace/utils"

	"github.com/gin-gonic/gin"
)

type CatalogServiceInterface interface {
	Create(sellerID string, in catalog.CreateProductInput) (model.Product, error)
	Verify(adminID, productID string, commissionRate float64) (model.Product, error)
	Delete(requesterID, productID string) error
	Get(productID string) (model.Product, error)
	GetUser(userID string) (model.User, error)
	List() []catalog.ProductView
	ListSold() []catalog.ProductView
	ListBySeller(sellerID string) ([]catalog.ProductView, error)
	ListWon(userID string) ([]catalog.ProductView, error)
}

type CatalogHandler struct {
	service CatalogServiceInterface
}

func NewCatalogHandler(service CatalogServiceInterface) *CatalogHandler {
	return &CatalogHandler{service: service}
}

// CreateProductHandler handles POST /products
func (h *CatalogHandler) CreateProductHandler(c *gin.Context) {
	var req helpers.CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "CreateProductHandler", err)
		return
	}

	product, err := h.service.Create(req.UserID, catalog.CreateProductInput{
		Title:       req.Title,
		Description: req.Description,
		Price:       req.Price,
		CategoryID:  req.CategoryID,
		Image:       req.Image,
		Height:      req.Height,
		Length:      req.Length,
		Width:       req.Width,
		Weight:      req.Weight,
		MediumUsed:  req.MediumUsed,
	})
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Error("CreateProductHandler: failed to create product", map[string]any{
			"user_id": req.UserID,
			"title":   req.Title,
			"error":   err.Error(),
		})
		return
	}

	utils.JSONResponse(c, http.StatusCreated, product, "product created successfully")
	helpers.LogSuccess("CreateProductHandler", "product created successfully", map[string]any{
		"product_id": product.ProductID,
		"seller_id":  product.SellerID,
		"slug":       product.Slug,
	})
}

// VerifyProductHandler handles PATCH /products/:product_id/verify
func (h *CatalogHandler) VerifyProductHandler(c *gin.Context) {
	productID := c.Param("product_id")

	var req helpers.VerifyProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "VerifyProductHandler", err)
		return
	}

	product, err := h.service.Verify(req.UserID, productID, req.Commission)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("VerifyProductHandler: failed to verify product", map[string]any{
			"product_id": productID,
			"user_id":    req.UserID,
			"error":      err.Error(),
		})
		return
	}

	utils.JSONResponse(c, http.StatusOK, product, "product verified successfully")
	helpers.LogSuccess("VerifyProductHandler", "product verified successfully", map[string]any{
		"product_id":      product.ProductID,
		"commission_rate": product.CommissionRate,
	})
}

// DeleteProductHandler handles DELETE /products/:product_id. The requester
// identity arrives as a query parameter since DELETE carries no body.
func (h *CatalogHandler) DeleteProductHandler(c *gin.Context) {
	productID := c.Param("product_id")
	userID := c.Query("user_id")

	if err := h.service.Delete(userID, productID); err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("DeleteProductHandler: failed to delete product", map[string]any{
			"product_id": productID,
			"user_id":    userID,
			"error":      err.Error(),
		})
		return
	}

	utils.JSONResponse(c, http.StatusOK, nil, "product deleted successfully")
	helpers.LogSuccess("DeleteProductHandler", "product deleted successfully", map[string]any{
		"product_id": productID,
	})
}

// GetProductHandler handles GET /products/:product_id
func (h *CatalogHandler) GetProductHandler(c *gin.Context) {
	productID := c.Param("product_id")
	product, err := h.service.Get(productID)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		return
	}
	utils.JSONResponse(c, http.StatusOK, product, "product retrieved successfully")
}

// ListProductsHandler handles GET /products
func (h *CatalogHandler) ListProductsHandler(c *gin.Context) {
	utils.JSONResponse(c, http.StatusOK, h.service.List(), "products retrieved successfully")
}

// ListSoldProductsHandler handles GET /products/sold
func (h *CatalogHandler) ListSoldProductsHandler(c *gin.Context) {
	utils.JSONResponse(c, http.StatusOK, h.service.ListSold(), "sold products retrieved successfully")
}

// ListSellerProductsHandler handles GET /users/:user_id/products
func (h *CatalogHandler) ListSellerProductsHandler(c *gin.Context) {
	userID := c.Param("user_id")
	products, err := h.service.ListBySeller(userID)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		return
	}
	utils.JSONResponse(c, http.StatusOK, products, "seller products retrieved successfully")
}

// ListWonProductsHandler handles GET /users/:user_id/won
func (h *CatalogHandler) ListWonProductsHandler(c *gin.Context) {
	userID := c.Param("user_id")
	products, err := h.service.ListWon(userID)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		return
	}
	utils.JSONResponse(c, http.StatusOK, products, "won products retrieved successfully")
}

// GetUserHandler handles GET /users/:user_id
func (h *CatalogHandler) GetUserHandler(c *gin.Context) {
	userID := c.Param("user_id")
	user, err := h.service.GetUser(userID)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		return
	}
	utils.JSONResponse(c, http.StatusOK, user, "user retrieved successfully")
}

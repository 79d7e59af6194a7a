package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// ProductUseCaseInterface define a interface para o use case de produtos
type ProductUseCaseInterface interface {
	CreateProduct(ctx context.Context, name string, price float64, inventory int64) (int64, error)
	GetProduct(ctx context.Context, id int64) (*Product, error)
	ListProducts(ctx context.Context) ([]Product, error)
	UpdateProduct(ctx context.Context, id int64, name string, price float64, inventory int64) error
	DeleteProduct(ctx context.Context, id int64) error
}

// TransactionUseCaseInterface define a interface para o use case de vendas
type TransactionUseCaseInterface interface {
	Process(ctx context.Context, productID int64, quantity int64) (*Transaction, error)
	GetTransaction(ctx context.Context, id string) (*Transaction, error)
	DeleteTransaction(ctx context.Context, id string) error
}

// ProductRequest representa o corpo de criação/atualização de produto.
// Campos em ponteiro distinguem "ausente" de valor zero.
type ProductRequest struct {
	Name      *string  `json:"name" binding:"required"`
	Price     *float64 `json:"price" binding:"required,gte=0"`
	Inventory *int64   `json:"inventory" binding:"required,gte=0"`
}

// TransactionRequest representa o corpo de processamento de venda
type TransactionRequest struct {
	ProductID *int64 `json:"product_id" binding:"required"`
	Quantity  *int64 `json:"quantity" binding:"required"`
}

// ProductHandler contém os handlers HTTP de produtos
type ProductHandler struct {
	useCase ProductUseCaseInterface
}

// NewProductHandler cria uma nova instância de ProductHandler
func NewProductHandler(useCase ProductUseCaseInterface) *ProductHandler {
	return &ProductHandler{
		useCase: useCase,
	}
}

// CreateProduct é o endpoint POST /products
func (h *ProductHandler) CreateProduct(c *gin.Context) {
	var req ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	id, err := h.useCase.CreateProduct(c.Request.Context(), *req.Name, *req.Price, *req.Inventory)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"id": id})
}

// GetProduct é o endpoint GET /products/:id
func (h *ProductHandler) GetProduct(c *gin.Context) {
	id, ok := parseProductID(c)
	if !ok {
		return
	}

	product, err := h.useCase.GetProduct(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, product)
}

// ListProducts é o endpoint GET /products
func (h *ProductHandler) ListProducts(c *gin.Context) {
	products, err := h.useCase.ListProducts(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, products)
}

// UpdateProduct é o endpoint PUT /products/:id
func (h *ProductHandler) UpdateProduct(c *gin.Context) {
	id, ok := parseProductID(c)
	if !ok {
		return
	}

	var req ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.useCase.UpdateProduct(c.Request.Context(), id, *req.Name, *req.Price, *req.Inventory); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Product updated successfully"})
}

// DeleteProduct é o endpoint DELETE /products/:id
func (h *ProductHandler) DeleteProduct(c *gin.Context) {
	id, ok := parseProductID(c)
	if !ok {
		return
	}

	if err := h.useCase.DeleteProduct(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Product deleted successfully"})
}

// TransactionHandler contém os handlers HTTP de vendas
type TransactionHandler struct {
	useCase TransactionUseCaseInterface
}

// NewTransactionHandler cria uma nova instância de TransactionHandler
func NewTransactionHandler(useCase TransactionUseCaseInterface) *TransactionHandler {
	return &TransactionHandler{
		useCase: useCase,
	}
}

// CreateTransaction é o endpoint POST /transactions
func (h *TransactionHandler) CreateTransaction(c *gin.Context) {
	var req TransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	sale, err := h.useCase.Process(c.Request.Context(), *req.ProductID, *req.Quantity)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"transaction_id": sale.ID, "total": sale.Total})
}

// GetTransaction é o endpoint GET /transactions/:id
func (h *TransactionHandler) GetTransaction(c *gin.Context) {
	transaction, err := h.useCase.GetTransaction(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, transaction)
}

// DeleteTransaction é o endpoint DELETE /transactions/:id
func (h *TransactionHandler) DeleteTransaction(c *gin.Context) {
	if err := h.useCase.DeleteTransaction(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Transaction deleted successfully"})
}

// HealthCheck é o endpoint de health check
func HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "healthy"})
}

// parseProductID lê o :id da rota; o espaço de ids de produto é numérico,
// então id não numérico equivale a produto inexistente
func parseProductID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		return 0, false
	}
	return id, true
}

// respondError traduz os erros tipados do domínio em códigos HTTP
func respondError(c *gin.Context, err error) {
	var vErr *ValidationError
	switch {
	case errors.As(err, &vErr):
		c.JSON(http.StatusBadRequest, gin.H{"error": vErr.Message})
	case errors.Is(err, ErrInsufficientInventory):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Insufficient inventory"})
	case errors.Is(err, ErrProductNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
	case errors.Is(err, ErrTransactionNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Transaction not found"})
	default:
		log.Printf("❌ Internal error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}

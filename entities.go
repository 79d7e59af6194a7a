package main

import (
	"time"

	"github.com/google/uuid"
)

// Product representa um produto do catálogo com seu estoque atual
type Product struct {
	ID        int64     `json:"id" db:"id"`
	Name      string    `json:"name" db:"name"`
	Price     float64   `json:"price" db:"price"`
	Inventory int64     `json:"inventory" db:"inventory"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// NewProduct cria uma nova instância de Product
func NewProduct(name string, price float64, inventory int64) *Product {
	return &Product{
		Name:      name,
		Price:     price,
		Inventory: inventory,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
}

// Transaction representa o registro imutável de uma venda concluída
type Transaction struct {
	ID        string    `json:"id" db:"id"`
	ProductID int64     `json:"product_id" db:"product_id"`
	Quantity  int64     `json:"quantity" db:"quantity"`
	Total     float64   `json:"total" db:"total"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// NewTransaction cria o registro de venda com o total calculado no momento
// do processamento (preço unitário vigente * quantidade)
func NewTransaction(productID int64, quantity int64, unitPrice float64) *Transaction {
	return &Transaction{
		ID:        uuid.New().String(),
		ProductID: productID,
		Quantity:  quantity,
		Total:     unitPrice * float64(quantity),
		CreatedAt: time.Now(),
	}
}

// validateProductFields valida os campos de criação/atualização de produto
func validateProductFields(name string, price float64, inventory int64) error {
	if name == "" {
		return &ValidationError{Field: "name", Message: "name must not be empty"}
	}
	if price < 0 {
		return &ValidationError{Field: "price", Message: "price must not be negative"}
	}
	if inventory < 0 {
		return &ValidationError{Field: "inventory", Message: "inventory must not be negative"}
	}
	return nil
}

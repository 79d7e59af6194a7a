package main

import (
	"context"
	"sync"
	"time"
)

// MemoryStore implementa Store em memória, protegido por mutex. Usado no
// modo STORE_BACKEND=memory e nos testes determinísticos.
type MemoryStore struct {
	mu           sync.RWMutex
	products     map[int64]*Product
	transactions map[string]*Transaction
	order        []int64
	nextID       int64
}

// NewMemoryStore cria uma nova instância de MemoryStore
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		products:     make(map[int64]*Product),
		transactions: make(map[string]*Transaction),
		nextID:       1,
	}
}

func (s *MemoryStore) CreateProduct(ctx context.Context, name string, price float64, inventory int64) (int64, error) {
	if err := validateProductFields(name, price, inventory); err != nil {
		return 0, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	p := NewProduct(name, price, inventory)
	p.ID = s.nextID
	s.nextID++
	s.products[p.ID] = p
	s.order = append(s.order, p.ID)
	return p.ID, nil
}

func (s *MemoryStore) GetProduct(ctx context.Context, id int64) (*Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.products[id]
	if !ok {
		return nil, ErrProductNotFound
	}
	cp := *p
	return &cp, nil
}

func (s *MemoryStore) ListProducts(ctx context.Context) ([]Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	products := make([]Product, 0, len(s.order))
	for _, id := range s.order {
		products = append(products, *s.products[id])
	}
	return products, nil
}

func (s *MemoryStore) UpdateProduct(ctx context.Context, id int64, name string, price float64, inventory int64) error {
	if err := validateProductFields(name, price, inventory); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.products[id]
	if !ok {
		return ErrProductNotFound
	}
	p.Name = name
	p.Price = price
	p.Inventory = inventory
	p.UpdatedAt = time.Now()
	return nil
}

func (s *MemoryStore) DeleteProduct(ctx context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.products[id]; !ok {
		return ErrProductNotFound
	}
	delete(s.products, id)
	for i, pid := range s.order {
		if pid == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	// cascata: remove as transações que referenciam o produto
	for tid, t := range s.transactions {
		if t.ProductID == id {
			delete(s.transactions, tid)
		}
	}
	return nil
}

func (s *MemoryStore) GetTransaction(ctx context.Context, id string) (*Transaction, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	t, ok := s.transactions[id]
	if !ok {
		return nil, ErrTransactionNotFound
	}
	ct := *t
	return &ct, nil
}

func (s *MemoryStore) DeleteTransaction(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.transactions[id]; !ok {
		return ErrTransactionNotFound
	}
	delete(s.transactions, id)
	return nil
}

// ProcessSale executa a verificação, o decremento e a inserção do registro
// sob o mesmo lock, equivalente ao FOR UPDATE do backend Postgres.
func (s *MemoryStore) ProcessSale(ctx context.Context, productID int64, quantity int64) (*Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.products[productID]
	if !ok {
		return nil, ErrProductNotFound
	}
	if p.Inventory < quantity {
		return nil, ErrInsufficientInventory
	}

	sale := NewTransaction(productID, quantity, p.Price)
	p.Inventory -= quantity
	p.UpdatedAt = time.Now()
	s.transactions[sale.ID] = sale

	cp := *sale
	return &cp, nil
}

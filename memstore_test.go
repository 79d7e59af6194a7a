package main

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStoreCreateAndGet(t *testing.T) {
	// Arrange
	store := NewMemoryStore()
	ctx := context.Background()

	// Act
	id, err := store.CreateProduct(ctx, "Tea", 1.5, 50)

	// Assert
	require.NoError(t, err)
	product, err := store.GetProduct(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "Tea", product.Name)
	assert.Equal(t, 1.5, product.Price)
	assert.Equal(t, int64(50), product.Inventory)
}

func TestMemoryStoreCreateInvalid(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	cases := []struct {
		name      string
		pname     string
		price     float64
		inventory int64
	}{
		{"empty name", "", 1.5, 50},
		{"negative price", "Tea", -1, 50},
		{"negative inventory", "Tea", 1.5, -5},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := store.CreateProduct(ctx, tc.pname, tc.price, tc.inventory)
			var vErr *ValidationError
			assert.ErrorAs(t, err, &vErr)
		})
	}

	// Nenhum registro pode ter sido persistido
	products, err := store.ListProducts(ctx)
	require.NoError(t, err)
	assert.Empty(t, products)
}

func TestMemoryStoreListInsertionOrder(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	id1, _ := store.CreateProduct(ctx, "Tea", 1.5, 50)
	id2, _ := store.CreateProduct(ctx, "Coffee", 3.0, 20)
	id3, _ := store.CreateProduct(ctx, "Milk", 2.0, 10)

	products, err := store.ListProducts(ctx)
	require.NoError(t, err)
	require.Len(t, products, 3)
	assert.Equal(t, []int64{id1, id2, id3}, []int64{products[0].ID, products[1].ID, products[2].ID})
}

func TestMemoryStoreUpdate(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()
	id, _ := store.CreateProduct(ctx, "Tea", 1.5, 50)

	// Full replace
	err := store.UpdateProduct(ctx, id, "Green Tea", 2.0, 40)
	require.NoError(t, err)
	product, _ := store.GetProduct(ctx, id)
	assert.Equal(t, "Green Tea", product.Name)
	assert.Equal(t, 2.0, product.Price)
	assert.Equal(t, int64(40), product.Inventory)

	// Update inválido não altera o registro
	err = store.UpdateProduct(ctx, id, "Green Tea", -1, 40)
	var vErr *ValidationError
	assert.ErrorAs(t, err, &vErr)
	product, _ = store.GetProduct(ctx, id)
	assert.Equal(t, 2.0, product.Price)

	// Produto inexistente
	err = store.UpdateProduct(ctx, 999, "Ghost", 1.0, 1)
	assert.ErrorIs(t, err, ErrProductNotFound)
}

func TestMemoryStoreDeleteCascade(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()
	id, _ := store.CreateProduct(ctx, "Tea", 1.5, 50)

	sale1, err := store.ProcessSale(ctx, id, 5)
	require.NoError(t, err)
	sale2, err := store.ProcessSale(ctx, id, 3)
	require.NoError(t, err)

	// Act
	err = store.DeleteProduct(ctx, id)
	require.NoError(t, err)

	// Assert: produto e transações dependentes removidos
	_, err = store.GetProduct(ctx, id)
	assert.ErrorIs(t, err, ErrProductNotFound)
	_, err = store.GetTransaction(ctx, sale1.ID)
	assert.ErrorIs(t, err, ErrTransactionNotFound)
	_, err = store.GetTransaction(ctx, sale2.ID)
	assert.ErrorIs(t, err, ErrTransactionNotFound)
}

func TestMemoryStoreProcessSale(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()
	id, _ := store.CreateProduct(ctx, "Tea", 1.5, 50)

	// Sucesso: decrementa exatamente a quantidade e registra o total
	sale, err := store.ProcessSale(ctx, id, 5)
	require.NoError(t, err)
	assert.Equal(t, 7.5, sale.Total)
	assert.Equal(t, int64(5), sale.Quantity)

	product, _ := store.GetProduct(ctx, id)
	assert.Equal(t, int64(45), product.Inventory)

	got, err := store.GetTransaction(ctx, sale.ID)
	require.NoError(t, err)
	assert.Equal(t, sale.Total, got.Total)

	// Estoque insuficiente: nenhuma mutação, nenhuma transação criada
	_, err = store.ProcessSale(ctx, id, 5000)
	assert.ErrorIs(t, err, ErrInsufficientInventory)
	product, _ = store.GetProduct(ctx, id)
	assert.Equal(t, int64(45), product.Inventory)

	// Produto inexistente
	_, err = store.ProcessSale(ctx, 999, 1)
	assert.ErrorIs(t, err, ErrProductNotFound)
}

func TestMemoryStoreDeleteTransactionDoesNotRestoreInventory(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()
	id, _ := store.CreateProduct(ctx, "Tea", 1.5, 50)

	sale, err := store.ProcessSale(ctx, id, 10)
	require.NoError(t, err)

	// Act: remover a transação é exclusão de registro, não estorno
	err = store.DeleteTransaction(ctx, sale.ID)
	require.NoError(t, err)

	// Assert
	product, _ := store.GetProduct(ctx, id)
	assert.Equal(t, int64(40), product.Inventory)

	err = store.DeleteTransaction(ctx, sale.ID)
	assert.ErrorIs(t, err, ErrTransactionNotFound)
}

func TestMemoryStoreConcurrentSales(t *testing.T) {
	// N vendas unitárias concorrentes com estoque I < N: exatamente I
	// sucessos, N-I falhas por estoque insuficiente e estoque final zero
	store := NewMemoryStore()
	ctx := context.Background()
	const initialStock = 30
	const attempts = 50

	id, err := store.CreateProduct(ctx, "Tea", 1.5, initialStock)
	require.NoError(t, err)

	var wg sync.WaitGroup
	results := make(chan error, attempts)
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := store.ProcessSale(ctx, id, 1)
			results <- err
		}()
	}
	wg.Wait()
	close(results)

	successes, insufficient := 0, 0
	for err := range results {
		switch {
		case err == nil:
			successes++
		case err == ErrInsufficientInventory:
			insufficient++
		default:
			t.Fatalf("unexpected error: %v", err)
		}
	}

	assert.Equal(t, initialStock, successes)
	assert.Equal(t, attempts-initialStock, insufficient)

	product, err := store.GetProduct(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, int64(0), product.Inventory)
}

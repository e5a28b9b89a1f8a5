package order

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"shopapi/domain/order"
	"shopapi/domain/product"
	"shopapi/infrastructure/persistence/memory"
)

func newFixture(t *testing.T, transactional bool) (*Service, *memory.OrderRepository, *memory.ProductRepository) {
	t.Helper()
	orders := memory.NewOrderRepository()
	products := memory.NewProductRepository()
	svc := NewService(orders, products, memory.NewTransactor(), transactional)
	return svc, orders, products
}

func seedProduct(t *testing.T, products *memory.ProductRepository, name string, stock int) string {
	t.Helper()
	p := &product.Product{Name: name, Price: 499, Stock: stock}
	require.NoError(t, products.Create(context.Background(), p))
	return p.ID.Hex()
}

func seedOrder(t *testing.T, orders *memory.OrderRepository, status order.Status, items ...order.Item) string {
	t.Helper()
	o := &order.Order{
		UserID:      "user-1",
		Items:       items,
		TotalAmount: 999,
		Status:      status,
	}
	require.NoError(t, orders.Create(context.Background(), o))
	return o.ID.Hex()
}

func TestSetOrderStatusDecrementsStock(t *testing.T) {
	svc, orders, products := newFixture(t, false)
	ctx := context.Background()

	productID := seedProduct(t, products, "classic tee", 10)
	orderID := seedOrder(t, orders, order.StatusProcessing,
		order.Item{ProductID: productID, Name: "classic tee", Quantity: 3, Price: 499})

	result, err := svc.SetOrderStatus(ctx, orderID, order.StatusShipped)
	require.NoError(t, err)
	require.True(t, result.Success)
	require.Empty(t, result.FailedProductIDs)

	p, err := products.FindByID(ctx, productID)
	require.NoError(t, err)
	require.Equal(t, 7, p.Stock)

	o, err := orders.FindByID(ctx, orderID)
	require.NoError(t, err)
	require.Equal(t, order.StatusShipped, o.Status)
}

func TestSetOrderStatusDeliveredIsTerminal(t *testing.T) {
	svc, orders, products := newFixture(t, false)
	ctx := context.Background()

	productID := seedProduct(t, products, "classic tee", 10)
	orderID := seedOrder(t, orders, order.StatusDelivered,
		order.Item{ProductID: productID, Name: "classic tee", Quantity: 3, Price: 499})

	_, err := svc.SetOrderStatus(ctx, orderID, order.StatusShipped)
	require.ErrorIs(t, err, order.ErrOrderDelivered)

	// The stored status is unchanged and no stock moved.
	o, err := orders.FindByID(ctx, orderID)
	require.NoError(t, err)
	require.Equal(t, order.StatusDelivered, o.Status)

	p, err := products.FindByID(ctx, productID)
	require.NoError(t, err)
	require.Equal(t, 10, p.Stock)
}

func TestSetOrderStatusPartialFailure(t *testing.T) {
	svc, orders, products := newFixture(t, false)
	ctx := context.Background()

	okProductID := seedProduct(t, products, "classic tee", 10)
	missingProductID := "66f0000000000000000000aa"
	orderID := seedOrder(t, orders, order.StatusProcessing,
		order.Item{ProductID: okProductID, Name: "classic tee", Quantity: 2, Price: 499},
		order.Item{ProductID: missingProductID, Name: "gone hoodie", Quantity: 1, Price: 999})

	result, err := svc.SetOrderStatus(ctx, orderID, order.StatusShipped)
	require.NoError(t, err)
	require.False(t, result.Success)
	require.Equal(t, []string{missingProductID}, result.FailedProductIDs)

	// The surviving line item was still attempted and decremented.
	p, err := products.FindByID(ctx, okProductID)
	require.NoError(t, err)
	require.Equal(t, 8, p.Stock)

	// The status write was withheld.
	o, err := orders.FindByID(ctx, orderID)
	require.NoError(t, err)
	require.Equal(t, order.StatusProcessing, o.Status)
}

func TestSetOrderStatusInsufficientStockRecorded(t *testing.T) {
	svc, orders, products := newFixture(t, false)
	ctx := context.Background()

	productID := seedProduct(t, products, "classic tee", 1)
	orderID := seedOrder(t, orders, order.StatusProcessing,
		order.Item{ProductID: productID, Name: "classic tee", Quantity: 5, Price: 499})

	result, err := svc.SetOrderStatus(ctx, orderID, order.StatusShipped)
	require.NoError(t, err)
	require.False(t, result.Success)
	require.Equal(t, []string{productID}, result.FailedProductIDs)

	p, err := products.FindByID(ctx, productID)
	require.NoError(t, err)
	require.Equal(t, 1, p.Stock)
}

func TestSetOrderStatusTransactionalAbortsOnFailure(t *testing.T) {
	svc, orders, products := newFixture(t, true)
	ctx := context.Background()

	okProductID := seedProduct(t, products, "classic tee", 10)
	orderID := seedOrder(t, orders, order.StatusProcessing,
		order.Item{ProductID: okProductID, Name: "classic tee", Quantity: 2, Price: 499},
		order.Item{ProductID: "66f0000000000000000000aa", Name: "gone hoodie", Quantity: 1, Price: 999})

	_, err := svc.SetOrderStatus(ctx, orderID, order.StatusShipped)
	require.ErrorIs(t, err, product.ErrProductNotFound)

	o, err := orders.FindByID(ctx, orderID)
	require.NoError(t, err)
	require.Equal(t, order.StatusProcessing, o.Status)
}

func TestSetOrderStatusOrderNotFound(t *testing.T) {
	svc, _, _ := newFixture(t, false)

	_, err := svc.SetOrderStatus(context.Background(), "66f0000000000000000000ff", order.StatusShipped)
	require.ErrorIs(t, err, order.ErrOrderNotFound)
}

func TestCreateOrderRequiresItems(t *testing.T) {
	svc, _, _ := newFixture(t, false)

	_, err := svc.CreateOrder(context.Background(), "user-1", CreateOrderRequest{TotalAmount: 100})
	require.ErrorIs(t, err, order.ErrEmptyOrderItems)
}

func TestCreateOrderStartsProcessing(t *testing.T) {
	svc, orders, _ := newFixture(t, false)
	ctx := context.Background()

	created, err := svc.CreateOrder(ctx, "user-1", CreateOrderRequest{
		Items: []ItemRequest{
			{ProductID: "66f0000000000000000000aa", Name: "classic tee", Quantity: 1, Price: 499},
		},
		TotalAmount: 499,
	})
	require.NoError(t, err)
	require.Equal(t, order.StatusProcessing, created.Status)

	stored, err := orders.FindByID(ctx, created.ID.Hex())
	require.NoError(t, err)
	require.Equal(t, "user-1", stored.UserID)
	require.Len(t, stored.Items, 1)
}

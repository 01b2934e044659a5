package services

import (
	"context"
	"testing"

	"github.com/DevarshLade/lade-studio/app/models"
	"github.com/DevarshLade/lade-studio/app/repositories"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newOrderService(db *gorm.DB) *OrderService {
	return NewOrderService(
		db,
		validator.New(),
		repositories.NewProductRepository(db),
		repositories.NewOrderRepository(db),
		repositories.NewOrderItemRepository(db),
	)
}

func validOrderInput(items ...OrderItemInput) OrderInput {
	return OrderInput{
		CustomerName:  "Asha Kulkarni",
		CustomerEmail: "asha@example.com",
		CustomerPhone: "9876543210",
		Address1:      "12 MG Road",
		City:          "Pune",
		State:         "Maharashtra",
		Pincode:       "411001",
		PaymentMethod: models.PaymentMethodCOD,
		Items:         items,
	}
}

func TestCreateOrder(t *testing.T) {
	db := newTestDB(t)
	svc := newOrderService(db)
	ctx := context.Background()

	pot := createTestProduct(t, db, "Hand Painted Pot", 450.00, false)
	magnet := createTestProduct(t, db, "Fridge Magnet", 120.50, false)

	input := validOrderInput(
		OrderItemInput{ProductID: pot.ID, Quantity: 2},
		OrderItemInput{ProductID: magnet.ID, Quantity: 1},
	)

	order, err := svc.CreateOrder(ctx, "user-1", input)
	require.NoError(t, err)
	require.Len(t, order.OrderItems, 2)

	assert.NotEmpty(t, order.OrderCode)
	assert.Equal(t, models.OrderStatusProcessing, order.Status)
	assert.True(t, decimal.NewFromFloat(1020.50).Equal(order.Subtotal), "subtotal was %s", order.Subtotal)
	assert.True(t, order.Subtotal.Add(order.ShippingCost).Equal(order.TotalAmount))

	// Items snapshot the price at purchase time.
	require.NoError(t, db.Model(&models.Product{}).Where("id = ?", pot.ID).
		Update("price", decimal.NewFromFloat(999.00)).Error)

	stored, err := svc.GetOrderByCode(ctx, order.OrderCode)
	require.NoError(t, err)
	for _, item := range stored.OrderItems {
		if item.ProductID == pot.ID {
			assert.True(t, decimal.NewFromFloat(450.00).Equal(item.PriceAtPurchase))
		}
	}
}

func TestCreateOrderValidation(t *testing.T) {
	db := newTestDB(t)
	svc := newOrderService(db)
	ctx := context.Background()

	pot := createTestProduct(t, db, "Hand Painted Pot", 450.00, false)
	item := OrderItemInput{ProductID: pot.ID, Quantity: 1}

	t.Run("empty cart", func(t *testing.T) {
		_, err := svc.CreateOrder(ctx, "user-1", validOrderInput())
		assert.ErrorIs(t, err, ErrEmptyCart)
	})

	t.Run("bad phone", func(t *testing.T) {
		input := validOrderInput(item)
		input.CustomerPhone = "12345"
		_, err := svc.CreateOrder(ctx, "user-1", input)
		var verrs validator.ValidationErrors
		assert.ErrorAs(t, err, &verrs)
	})

	t.Run("phone with decimal point", func(t *testing.T) {
		input := validOrderInput(item)
		// Ten characters, but not ten digits.
		input.CustomerPhone = "123456.789"
		_, err := svc.CreateOrder(ctx, "user-1", input)
		var verrs validator.ValidationErrors
		assert.ErrorAs(t, err, &verrs)
	})

	t.Run("negative pincode", func(t *testing.T) {
		input := validOrderInput(item)
		input.Pincode = "-12345"
		_, err := svc.CreateOrder(ctx, "user-1", input)
		var verrs validator.ValidationErrors
		assert.ErrorAs(t, err, &verrs)
	})

	t.Run("bad pincode", func(t *testing.T) {
		input := validOrderInput(item)
		input.Pincode = "41100A"
		_, err := svc.CreateOrder(ctx, "user-1", input)
		var verrs validator.ValidationErrors
		assert.ErrorAs(t, err, &verrs)
	})

	t.Run("unsupported payment method", func(t *testing.T) {
		input := validOrderInput(item)
		input.PaymentMethod = "card"
		_, err := svc.CreateOrder(ctx, "user-1", input)
		var verrs validator.ValidationErrors
		assert.ErrorAs(t, err, &verrs)
	})

	t.Run("unknown product", func(t *testing.T) {
		input := validOrderInput(OrderItemInput{ProductID: "nope", Quantity: 1})
		_, err := svc.CreateOrder(ctx, "user-1", input)
		assert.ErrorIs(t, err, ErrProductNotFound)
	})

	t.Run("sold out product", func(t *testing.T) {
		gone := createTestProduct(t, db, "Sold Out Vase", 800.00, true)
		input := validOrderInput(item, OrderItemInput{ProductID: gone.ID, Quantity: 1})
		_, err := svc.CreateOrder(ctx, "user-1", input)
		assert.ErrorIs(t, err, ErrProductSoldOut)

		// Nothing from the rejected order may be left behind.
		var count int64
		require.NoError(t, db.Model(&models.Order{}).Count(&count).Error)
		assert.Zero(t, count)
	})
}

func TestCancelOrder(t *testing.T) {
	db := newTestDB(t)
	svc := newOrderService(db)
	ctx := context.Background()

	pot := createTestProduct(t, db, "Hand Painted Pot", 450.00, false)
	order, err := svc.CreateOrder(ctx, "user-1", validOrderInput(OrderItemInput{ProductID: pot.ID, Quantity: 1}))
	require.NoError(t, err)

	t.Run("someone else's order", func(t *testing.T) {
		assert.ErrorIs(t, svc.CancelOrder(ctx, "user-2", order.OrderCode), ErrOrderNotFound)
	})

	t.Run("while processing", func(t *testing.T) {
		require.NoError(t, svc.CancelOrder(ctx, "user-1", order.OrderCode))

		cancelled, err := svc.GetOrderByCode(ctx, order.OrderCode)
		require.NoError(t, err)
		assert.Equal(t, models.OrderStatusCancelled, cancelled.Status)
	})

	t.Run("already cancelled", func(t *testing.T) {
		assert.ErrorIs(t, svc.CancelOrder(ctx, "user-1", order.OrderCode), ErrOrderNotCancelable)
	})

	t.Run("after shipping", func(t *testing.T) {
		shipped, err := svc.CreateOrder(ctx, "user-1", validOrderInput(OrderItemInput{ProductID: pot.ID, Quantity: 1}))
		require.NoError(t, err)
		require.NoError(t, svc.UpdateStatus(ctx, shipped.ID, models.OrderStatusShipped))

		assert.ErrorIs(t, svc.CancelOrder(ctx, "user-1", shipped.OrderCode), ErrOrderNotCancelable)
	})
}

func TestListAllOrders(t *testing.T) {
	db := newTestDB(t)
	svc := newOrderService(db)
	ctx := context.Background()

	pot := createTestProduct(t, db, "Hand Painted Pot", 450.00, false)
	_, err := svc.CreateOrder(ctx, "user-1", validOrderInput(OrderItemInput{ProductID: pot.ID, Quantity: 1}))
	require.NoError(t, err)
	_, err = svc.CreateOrder(ctx, "user-2", validOrderInput(OrderItemInput{ProductID: pot.ID, Quantity: 2}))
	require.NoError(t, err)

	orders, err := svc.ListAllOrders(ctx)
	require.NoError(t, err)
	assert.Len(t, orders, 2)
}

func TestUpdateStatusRejectsUnknownStatus(t *testing.T) {
	db := newTestDB(t)
	svc := newOrderService(db)

	err := svc.UpdateStatus(context.Background(), "some-order", "Teleported")
	assert.Error(t, err)
}

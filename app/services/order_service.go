package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/DevarshLade/lade-studio/app/models"
	"github.com/DevarshLade/lade-studio/app/repositories"
	"github.com/DevarshLade/lade-studio/app/utils/calc"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var (
	ErrEmptyCart          = errors.New("cart is empty")
	ErrProductNotFound    = errors.New("product not found")
	ErrProductSoldOut     = errors.New("product is sold out")
	ErrOrderNotFound      = errors.New("order not found")
	ErrOrderNotCancelable = errors.New("order can no longer be cancelled")
)

type OrderItemInput struct {
	ProductID string `json:"product_id" validate:"required"`
	Quantity  int    `json:"quantity" validate:"required,min=1"`
}

type OrderInput struct {
	CustomerName  string           `json:"customer_name" validate:"required"`
	CustomerEmail string           `json:"customer_email" validate:"omitempty,email"`
	CustomerPhone string           `json:"customer_phone" validate:"required,len=10,number"`
	Address1      string           `json:"address1" validate:"required"`
	Address2      string           `json:"address2"`
	City          string           `json:"city" validate:"required"`
	State         string           `json:"state" validate:"required"`
	Pincode       string           `json:"pincode" validate:"required,len=6,number"`
	PaymentMethod string           `json:"payment_method" validate:"required,eq=cod"`
	Items         []OrderItemInput `json:"items" validate:"required,min=1,dive"`
}

type OrderService struct {
	db            *gorm.DB
	validator     *validator.Validate
	productRepo   repositories.ProductRepositoryImpl
	orderRepo     repositories.OrderRepository
	orderItemRepo repositories.OrderItemRepository
}

func NewOrderService(
	db *gorm.DB,
	validator *validator.Validate,
	productRepo repositories.ProductRepositoryImpl,
	orderRepo repositories.OrderRepository,
	orderItemRepo repositories.OrderItemRepository,
) *OrderService {
	return &OrderService{
		db:            db,
		validator:     validator,
		productRepo:   productRepo,
		orderRepo:     orderRepo,
		orderItemRepo: orderItemRepo,
	}
}

// CreateOrder validates the snapshot, prices every line from the live product
// rows and writes the order plus its items in a single transaction. The legacy
// storefront inserted the order first and deleted it again when item insertion
// failed, which left orphans on a crash between the two steps; the transaction
// closes that window.
func (s *OrderService) CreateOrder(ctx context.Context, userID string, input OrderInput) (*models.Order, error) {
	if len(input.Items) == 0 {
		return nil, ErrEmptyCart
	}
	if err := s.validator.Struct(input); err != nil {
		return nil, err
	}

	tx := s.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", tx.Error)
	}

	defer func() {
		if r := recover(); r != nil {
			log.Printf("PANIC: Rolling back order transaction: %v", r)
			tx.Rollback()
		}
	}()

	orderItems := []models.OrderItem{}
	subtotal := decimal.Zero

	for _, item := range input.Items {
		product, err := s.productRepo.GetByID(ctx, item.ProductID)
		if err != nil {
			tx.Rollback()
			return nil, fmt.Errorf("failed to get product %s: %w", item.ProductID, err)
		}
		if product == nil {
			tx.Rollback()
			return nil, fmt.Errorf("%w: %s", ErrProductNotFound, item.ProductID)
		}
		if product.SoldOut {
			tx.Rollback()
			return nil, fmt.Errorf("%w: %s", ErrProductSoldOut, product.Name)
		}

		lineSubtotal := calc.CalculateLineSubtotal(product.Price, item.Quantity)
		subtotal = subtotal.Add(lineSubtotal)

		orderItems = append(orderItems, models.OrderItem{
			ProductID:       product.ID,
			ProductName:     product.Name,
			Quantity:        item.Quantity,
			PriceAtPurchase: product.Price,
			Subtotal:        lineSubtotal,
		})
	}

	shippingCost := calc.FlatShippingCost
	orderCode := fmt.Sprintf("LS-%s-%s", time.Now().Format("20060102"), uuid.New().String()[:8])

	order := &models.Order{
		OrderCode:     orderCode,
		UserID:        userID,
		CustomerName:  input.CustomerName,
		CustomerEmail: input.CustomerEmail,
		CustomerPhone: input.CustomerPhone,
		Address1:      input.Address1,
		Address2:      input.Address2,
		City:          input.City,
		State:         input.State,
		Pincode:       input.Pincode,
		Subtotal:      subtotal,
		ShippingCost:  shippingCost,
		TotalAmount:   calc.CalculateTotal(subtotal, shippingCost),
		PaymentMethod: input.PaymentMethod,
		Status:        models.OrderStatusProcessing,
	}

	if err := s.orderRepo.Create(ctx, tx, order); err != nil {
		tx.Rollback()
		return nil, fmt.Errorf("failed to create order: %w", err)
	}

	for i := range orderItems {
		orderItems[i].OrderID = order.ID
	}
	if err := s.orderItemRepo.BulkCreate(ctx, tx, orderItems); err != nil {
		tx.Rollback()
		return nil, fmt.Errorf("failed to create order items: %w", err)
	}

	if err := tx.Commit().Error; err != nil {
		return nil, fmt.Errorf("failed to commit order transaction: %w", err)
	}

	order.OrderItems = orderItems
	log.Printf("SUCCESS: Order %s created with %d items, total %s", order.OrderCode, len(orderItems), order.TotalAmount.String())
	return order, nil
}

func (s *OrderService) GetOrderByCode(ctx context.Context, orderCode string) (*models.Order, error) {
	order, err := s.orderRepo.FindByCode(ctx, orderCode)
	if err != nil {
		return nil, fmt.Errorf("failed to find order %s: %w", orderCode, err)
	}
	if order == nil {
		return nil, ErrOrderNotFound
	}
	return order, nil
}

func (s *OrderService) ListOrdersForUser(ctx context.Context, userID string) ([]models.Order, error) {
	return s.orderRepo.FindByUserID(ctx, userID)
}

// ListAllOrders backs the admin order overview.
func (s *OrderService) ListAllOrders(ctx context.Context) ([]models.Order, error) {
	return s.orderRepo.GetAllOrders(ctx)
}

// CancelOrder is only allowed while the order is still being processed.
func (s *OrderService) CancelOrder(ctx context.Context, userID, orderCode string) error {
	order, err := s.orderRepo.FindByCode(ctx, orderCode)
	if err != nil {
		return fmt.Errorf("failed to find order %s: %w", orderCode, err)
	}
	if order == nil || (order.UserID != "" && order.UserID != userID) {
		return ErrOrderNotFound
	}
	if order.Status != models.OrderStatusProcessing {
		return ErrOrderNotCancelable
	}
	return s.orderRepo.UpdateStatus(ctx, order.ID, models.OrderStatusCancelled)
}

func (s *OrderService) UpdateStatus(ctx context.Context, orderID, status string) error {
	switch status {
	case models.OrderStatusProcessing, models.OrderStatusShipped, models.OrderStatusDelivered, models.OrderStatusCancelled:
	default:
		return fmt.Errorf("unknown order status %q", status)
	}
	return s.orderRepo.UpdateStatus(ctx, orderID, status)
}

package services

import (
	"context"
	"fmt"
	"log"

	"github.com/luxystore/luxy-api/app/models"
	"github.com/luxystore/luxy-api/app/repositories"
	"github.com/shopspring/decimal"
)

type CartService struct {
	cartRepo    repositories.CartRepositoryImpl
	productRepo repositories.ProductRepositoryImpl
}

func NewCartService(cartRepo repositories.CartRepositoryImpl, productRepo repositories.ProductRepositoryImpl) *CartService {
	return &CartService{
		cartRepo:    cartRepo,
		productRepo: productRepo,
	}
}

type CartSummary struct {
	Items      []models.CartItem `json:"items"`
	TotalItems int               `json:"totalItems"`
	TotalPrice decimal.Decimal   `json:"totalPrice"`
}

// AddToCart creates the row on first add and bumps the quantity on repeat
// adds. An empty userID means the caller is not signed in: nothing is written
// and ErrLoginRequired tells the handler to answer with a login redirect.
func (s *CartService) AddToCart(ctx context.Context, userID, productID string) error {
	if userID == "" {
		return models.ErrLoginRequired
	}

	product, err := s.productRepo.GetByID(ctx, productID)
	if err != nil {
		return err
	}

	existing, err := s.cartRepo.GetItem(ctx, userID, productID)
	if err != nil {
		return fmt.Errorf("failed to check existing cart item: %w", err)
	}

	if existing != nil {
		if err := s.cartRepo.IncrementQuantity(ctx, userID, productID, 1); err != nil {
			return fmt.Errorf("failed to increment cart item: %w", err)
		}
		return nil
	}

	item := &models.CartItem{
		UserID:    userID,
		ProductID: product.ID,
		Name:      product.Name,
		Price:     product.Price,
		Image:     ResolveImageURL(*product, product.Images),
		Quantity:  1,
	}
	if err := s.cartRepo.AddItem(ctx, item); err != nil {
		return fmt.Errorf("failed to add new cart item: %w", err)
	}
	return nil
}

// UpdateQuantity sets the row's quantity; anything below one removes the row.
func (s *CartService) UpdateQuantity(ctx context.Context, userID, productID string, quantity int) error {
	if userID == "" {
		return models.ErrLoginRequired
	}

	if quantity < 1 {
		return s.RemoveFromCart(ctx, userID, productID)
	}

	if err := s.cartRepo.SetQuantity(ctx, userID, productID, quantity); err != nil {
		return fmt.Errorf("failed to update cart item quantity: %w", err)
	}
	return nil
}

func (s *CartService) RemoveFromCart(ctx context.Context, userID, productID string) error {
	if userID == "" {
		return models.ErrLoginRequired
	}

	if err := s.cartRepo.RemoveItem(ctx, userID, productID); err != nil {
		return fmt.Errorf("failed to remove item from cart: %w", err)
	}
	return nil
}

func (s *CartService) ClearCart(ctx context.Context, userID string) error {
	if userID == "" {
		return models.ErrLoginRequired
	}

	if err := s.cartRepo.ClearCart(ctx, userID); err != nil {
		return fmt.Errorf("failed to clear cart: %w", err)
	}
	return nil
}

// ItemCount backs the navbar cart badge: total quantity across the user's
// rows, without loading the rows themselves. Guests always count zero.
func (s *CartService) ItemCount(ctx context.Context, userID string) (int, error) {
	if userID == "" {
		return 0, nil
	}

	count, err := s.cartRepo.GetItemCount(ctx, userID)
	if err != nil {
		return 0, fmt.Errorf("failed to count cart items: %w", err)
	}
	return count, nil
}

func (s *CartService) GetCart(ctx context.Context, userID string) (*CartSummary, error) {
	if userID == "" {
		return &CartSummary{Items: []models.CartItem{}}, nil
	}

	items, err := s.cartRepo.GetItems(ctx, userID)
	if err != nil {
		log.Printf("CartService: failed to load cart for user %s: %v", userID, err)
		return nil, fmt.Errorf("failed to load cart: %w", err)
	}
	if items == nil {
		// An empty cart serializes as [], same as the guest shape.
		items = []models.CartItem{}
	}

	summary := &CartSummary{Items: items}
	for _, item := range items {
		summary.TotalItems += item.Quantity
		summary.TotalPrice = summary.TotalPrice.Add(item.Price.Mul(decimal.NewFromInt(int64(item.Quantity))))
	}
	return summary, nil
}

package services

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/luxystore/luxy-api/app/models"
)

type fakeCartRepo struct {
	items      map[string]*models.CartItem
	addCalls   int
	incrCalls  int
	setCalls   int
	removed    []string
	cleared    bool
	writeCalls int
}

func newFakeCartRepo() *fakeCartRepo {
	return &fakeCartRepo{items: map[string]*models.CartItem{}}
}

func (f *fakeCartRepo) key(userID, productID string) string {
	return userID + "/" + productID
}

func (f *fakeCartRepo) GetItems(ctx context.Context, userID string) ([]models.CartItem, error) {
	var out []models.CartItem
	for _, item := range f.items {
		if item.UserID == userID {
			out = append(out, *item)
		}
	}
	return out, nil
}

func (f *fakeCartRepo) GetItem(ctx context.Context, userID, productID string) (*models.CartItem, error) {
	item, ok := f.items[f.key(userID, productID)]
	if !ok {
		return nil, nil
	}
	copied := *item
	return &copied, nil
}

func (f *fakeCartRepo) AddItem(ctx context.Context, item *models.CartItem) error {
	f.addCalls++
	f.writeCalls++
	f.items[f.key(item.UserID, item.ProductID)] = item
	return nil
}

func (f *fakeCartRepo) IncrementQuantity(ctx context.Context, userID, productID string, by int) error {
	f.incrCalls++
	f.writeCalls++
	item, ok := f.items[f.key(userID, productID)]
	if !ok {
		return fmt.Errorf("no such cart item")
	}
	item.Quantity += by
	return nil
}

func (f *fakeCartRepo) SetQuantity(ctx context.Context, userID, productID string, quantity int) error {
	f.setCalls++
	f.writeCalls++
	item, ok := f.items[f.key(userID, productID)]
	if !ok {
		return fmt.Errorf("no such cart item")
	}
	item.Quantity = quantity
	return nil
}

func (f *fakeCartRepo) RemoveItem(ctx context.Context, userID, productID string) error {
	f.writeCalls++
	f.removed = append(f.removed, productID)
	delete(f.items, f.key(userID, productID))
	return nil
}

func (f *fakeCartRepo) ClearCart(ctx context.Context, userID string) error {
	f.writeCalls++
	f.cleared = true
	for k, item := range f.items {
		if item.UserID == userID {
			delete(f.items, k)
		}
	}
	return nil
}

func (f *fakeCartRepo) GetItemCount(ctx context.Context, userID string) (int, error) {
	count := 0
	for _, item := range f.items {
		if item.UserID == userID {
			count += item.Quantity
		}
	}
	return count, nil
}

type fakeProductRepo struct {
	products map[string]*models.Product
}

func (f *fakeProductRepo) GetByID(ctx context.Context, id string) (*models.Product, error) {
	product, ok := f.products[id]
	if !ok {
		return nil, fmt.Errorf("%w: product %s", models.ErrNotFound, id)
	}
	copied := *product
	return &copied, nil
}

func (f *fakeProductRepo) GetProducts(ctx context.Context) ([]models.Product, error) {
	return nil, nil
}
func (f *fakeProductRepo) GetByCategorySlug(ctx context.Context, slug string) ([]models.Product, error) {
	return nil, nil
}
func (f *fakeProductRepo) GetFeaturedProducts(ctx context.Context) ([]models.Product, error) {
	return nil, nil
}
func (f *fakeProductRepo) GetNewProducts(ctx context.Context) ([]models.Product, error) {
	return nil, nil
}
func (f *fakeProductRepo) GetOnSaleProducts(ctx context.Context) ([]models.Product, error) {
	return nil, nil
}
func (f *fakeProductRepo) Create(ctx context.Context, product *models.Product) error  { return nil }
func (f *fakeProductRepo) Update(ctx context.Context, product *models.Product) error  { return nil }
func (f *fakeProductRepo) Delete(ctx context.Context, id string) error                { return nil }
func (f *fakeProductRepo) ReplaceImages(ctx context.Context, productID string, images []models.ProductImage) error {
	return nil
}
func (f *fakeProductRepo) UpdateCategory(ctx context.Context, productID, newCategory string) error {
	return nil
}

func newCartFixture() (*CartService, *fakeCartRepo) {
	cartRepo := newFakeCartRepo()
	productRepo := &fakeProductRepo{products: map[string]*models.Product{
		"p1": {
			ID:       "p1",
			Name:     "Heritage Chronograph",
			Price:    decimal.NewFromInt(45000),
			ImageURL: "/img/p1.jpg",
		},
	}}
	return NewCartService(cartRepo, productRepo), cartRepo
}

func TestAddToCartGuest(t *testing.T) {
	svc, cartRepo := newCartFixture()

	err := svc.AddToCart(context.Background(), "", "p1")
	if !errors.Is(err, models.ErrLoginRequired) {
		t.Fatalf("AddToCart(guest) error = %v, want ErrLoginRequired", err)
	}
	if cartRepo.writeCalls != 0 {
		t.Errorf("guest add performed %d writes, want 0", cartRepo.writeCalls)
	}
}

func TestAddToCartNewItem(t *testing.T) {
	svc, cartRepo := newCartFixture()

	if err := svc.AddToCart(context.Background(), "u1", "p1"); err != nil {
		t.Fatalf("AddToCart() error = %v", err)
	}

	item, _ := cartRepo.GetItem(context.Background(), "u1", "p1")
	if item == nil {
		t.Fatal("cart item was not created")
	}
	if item.Quantity != 1 {
		t.Errorf("quantity = %d, want 1", item.Quantity)
	}
	if item.Name != "Heritage Chronograph" || item.Image != "/img/p1.jpg" {
		t.Errorf("item fields not copied from product: %+v", item)
	}
	if !item.Price.Equal(decimal.NewFromInt(45000)) {
		t.Errorf("price = %s, want 45000", item.Price)
	}
}

func TestAddToCartRepeatAddIncrements(t *testing.T) {
	svc, cartRepo := newCartFixture()

	for i := 0; i < 3; i++ {
		if err := svc.AddToCart(context.Background(), "u1", "p1"); err != nil {
			t.Fatalf("AddToCart() #%d error = %v", i+1, err)
		}
	}

	item, _ := cartRepo.GetItem(context.Background(), "u1", "p1")
	if item.Quantity != 3 {
		t.Errorf("quantity = %d, want 3", item.Quantity)
	}
	if cartRepo.addCalls != 1 || cartRepo.incrCalls != 2 {
		t.Errorf("addCalls = %d, incrCalls = %d, want 1 and 2", cartRepo.addCalls, cartRepo.incrCalls)
	}
}

func TestAddToCartUnknownProduct(t *testing.T) {
	svc, cartRepo := newCartFixture()

	err := svc.AddToCart(context.Background(), "u1", "missing")
	if !errors.Is(err, models.ErrNotFound) {
		t.Fatalf("AddToCart(unknown product) error = %v, want ErrNotFound", err)
	}
	if cartRepo.writeCalls != 0 {
		t.Errorf("failed add performed %d writes, want 0", cartRepo.writeCalls)
	}
}

func TestUpdateQuantityBelowOneRemoves(t *testing.T) {
	svc, cartRepo := newCartFixture()

	if err := svc.AddToCart(context.Background(), "u1", "p1"); err != nil {
		t.Fatalf("AddToCart() error = %v", err)
	}
	if err := svc.UpdateQuantity(context.Background(), "u1", "p1", 0); err != nil {
		t.Fatalf("UpdateQuantity(0) error = %v", err)
	}

	if item, _ := cartRepo.GetItem(context.Background(), "u1", "p1"); item != nil {
		t.Errorf("item still present after zero-quantity update: %+v", item)
	}
	if cartRepo.setCalls != 0 {
		t.Errorf("setCalls = %d, want 0 for below-one quantity", cartRepo.setCalls)
	}
}

func TestUpdateQuantitySets(t *testing.T) {
	svc, cartRepo := newCartFixture()

	if err := svc.AddToCart(context.Background(), "u1", "p1"); err != nil {
		t.Fatalf("AddToCart() error = %v", err)
	}
	if err := svc.UpdateQuantity(context.Background(), "u1", "p1", 5); err != nil {
		t.Fatalf("UpdateQuantity(5) error = %v", err)
	}

	item, _ := cartRepo.GetItem(context.Background(), "u1", "p1")
	if item.Quantity != 5 {
		t.Errorf("quantity = %d, want 5", item.Quantity)
	}
}

func TestGetCartTotals(t *testing.T) {
	svc, cartRepo := newCartFixture()

	cartRepo.items["u1/a"] = &models.CartItem{UserID: "u1", ProductID: "a", Price: decimal.NewFromInt(45000), Quantity: 1}
	cartRepo.items["u1/b"] = &models.CartItem{UserID: "u1", ProductID: "b", Price: decimal.NewFromInt(8500), Quantity: 2}

	summary, err := svc.GetCart(context.Background(), "u1")
	if err != nil {
		t.Fatalf("GetCart() error = %v", err)
	}

	if summary.TotalItems != 3 {
		t.Errorf("TotalItems = %d, want 3", summary.TotalItems)
	}
	if want := decimal.NewFromInt(62000); !summary.TotalPrice.Equal(want) {
		t.Errorf("TotalPrice = %s, want %s", summary.TotalPrice, want)
	}
}

func TestGetCartEmptyForSignedInUser(t *testing.T) {
	svc, _ := newCartFixture()

	summary, err := svc.GetCart(context.Background(), "u1")
	if err != nil {
		t.Fatalf("GetCart() error = %v", err)
	}
	if summary.Items == nil {
		t.Error("empty cart items are nil, want an empty slice")
	}
	if len(summary.Items) != 0 || summary.TotalItems != 0 {
		t.Errorf("empty cart not empty: %+v", summary)
	}
}

func TestItemCount(t *testing.T) {
	svc, cartRepo := newCartFixture()

	cartRepo.items["u1/a"] = &models.CartItem{UserID: "u1", ProductID: "a", Price: decimal.NewFromInt(45000), Quantity: 1}
	cartRepo.items["u1/b"] = &models.CartItem{UserID: "u1", ProductID: "b", Price: decimal.NewFromInt(8500), Quantity: 2}

	count, err := svc.ItemCount(context.Background(), "u1")
	if err != nil {
		t.Fatalf("ItemCount() error = %v", err)
	}
	if count != 3 {
		t.Errorf("count = %d, want 3", count)
	}
}

func TestItemCountGuest(t *testing.T) {
	svc, cartRepo := newCartFixture()
	cartRepo.items["u1/a"] = &models.CartItem{UserID: "u1", ProductID: "a", Quantity: 4}

	count, err := svc.ItemCount(context.Background(), "")
	if err != nil {
		t.Fatalf("ItemCount(guest) error = %v", err)
	}
	if count != 0 {
		t.Errorf("guest count = %d, want 0", count)
	}
}

func TestGetCartGuest(t *testing.T) {
	svc, _ := newCartFixture()

	summary, err := svc.GetCart(context.Background(), "")
	if err != nil {
		t.Fatalf("GetCart(guest) error = %v", err)
	}
	if len(summary.Items) != 0 || summary.TotalItems != 0 {
		t.Errorf("guest cart not empty: %+v", summary)
	}
}

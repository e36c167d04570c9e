package services

import (
	"errors"
	"net/url"
	"strings"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/luxystore/luxy-api/app/models"
)

func checkoutCart() []models.CartItem {
	return []models.CartItem{
		{ProductID: "1", Name: "Heritage Chronograph", Price: decimal.NewFromInt(45000), Quantity: 1},
		{ProductID: "2", Name: "Aviator Sunglasses", Price: decimal.NewFromInt(8500), Quantity: 2},
	}
}

func TestWhatsAppLink(t *testing.T) {
	svc := NewCheckoutService("919876543210")

	link, err := svc.WhatsAppLink(checkoutCart())
	if err != nil {
		t.Fatalf("WhatsAppLink() error = %v", err)
	}

	if !strings.HasPrefix(link, "https://wa.me/919876543210?text=") {
		t.Errorf("link = %q, want wa.me prefix with phone number", link)
	}

	encoded := strings.TrimPrefix(link, "https://wa.me/919876543210?text=")
	message, err := url.QueryUnescape(encoded)
	if err != nil {
		t.Fatalf("link text is not query-escaped: %v", err)
	}
	if message != BuildOrderMessage(checkoutCart()) {
		t.Errorf("decoded link text differs from the order message")
	}
}

func TestWhatsAppLinkEmptyCart(t *testing.T) {
	svc := NewCheckoutService("919876543210")

	if _, err := svc.WhatsAppLink(nil); !errors.Is(err, models.ErrValidation) {
		t.Errorf("WhatsAppLink(empty) error = %v, want ErrValidation", err)
	}
}

func TestWhatsAppLinkNoPhoneConfigured(t *testing.T) {
	svc := NewCheckoutService("")

	if _, err := svc.WhatsAppLink(checkoutCart()); err == nil {
		t.Error("WhatsAppLink() with no phone number should fail")
	}
}

func TestBuildOrderMessage(t *testing.T) {
	message := BuildOrderMessage(checkoutCart())

	for _, want := range []string{
		"Hello Luxy Store Team",
		"Name: Heritage Chronograph",
		"Price: ₹45,000",
		"Quantity: 1",
		"Name: Aviator Sunglasses",
		"Price: ₹8,500",
		"Quantity: 2",
		"Request:",
	} {
		if !strings.Contains(message, want) {
			t.Errorf("order message missing %q\nmessage:\n%s", want, message)
		}
	}

	if got := strings.Count(message, "🕰️ Name:"); got != 2 {
		t.Errorf("message has %d item blocks, want 2", got)
	}
}

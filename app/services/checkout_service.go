package services

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/luxystore/luxy-api/app/models"
	"github.com/luxystore/luxy-api/app/utils/format"
)

// CheckoutService composes the pre-filled WhatsApp deep link that replaces a
// payment flow: the order lands in the store team's chat, who confirm
// availability and settle payment off-channel.
type CheckoutService struct {
	phoneNumber string
}

func NewCheckoutService(phoneNumber string) *CheckoutService {
	return &CheckoutService{phoneNumber: phoneNumber}
}

// WhatsAppLink builds https://wa.me/<phone>?text=<order message> from the
// cart. Fails when the cart is empty or no phone number is configured.
func (s *CheckoutService) WhatsAppLink(items []models.CartItem) (string, error) {
	if s.phoneNumber == "" {
		return "", fmt.Errorf("checkout: no WhatsApp phone number configured")
	}
	if len(items) == 0 {
		return "", fmt.Errorf("%w: cart is empty", models.ErrValidation)
	}

	message := BuildOrderMessage(items)
	return "https://wa.me/" + s.phoneNumber + "?text=" + url.QueryEscape(message), nil
}

// BuildOrderMessage renders the order enquiry text sent to the store team.
func BuildOrderMessage(items []models.CartItem) string {
	var b strings.Builder

	b.WriteString("💎 Hello Luxy Store Team!\n\n")
	b.WriteString("I came across this beautiful timepiece on your Luxy Store website and I'd love to place an order! ⌚✨\n\n")
	b.WriteString("📝 Product Details:\n")
	b.WriteString("━━━━━━━━━━━━━━\n")

	for i, item := range items {
		if i > 0 {
			b.WriteString("\n")
		}
		fmt.Fprintf(&b, "🕰️ Name: %s\n", item.Name)
		fmt.Fprintf(&b, "💰 Price: %s\n", format.Price(item.Price))
		fmt.Fprintf(&b, "🔢 Quantity: %d\n", item.Quantity)
		b.WriteString("━━━━━━━━━━━━━━\n")
	}

	b.WriteString("\n📦 Request:\n")
	b.WriteString("Kindly confirm the availability and assist me with the next steps to complete my order. I'm excited to shop with you! 🛍️")

	return b.String()
}

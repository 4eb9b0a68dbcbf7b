package cart

import (
	"fmt"
	"strings"

	"github.com/contrabandkitchen/backend/catalog"
)

const (
	greeting      = "Hi! I would like to place an order:\n\n"
	closingPrompt = "\n\nPlease confirm the order and delivery details."
)

// Compose renders the cart as the order message: one numbered line per cart
// line, a total, and the confirmation prompt.
//
//	1. Chicken Lollipop (Half) x2 = ₹398
//
//	Total: ₹398
//
//	Please confirm the order and delivery details.
func Compose(s *Store) (string, error) {
	if s.Len() == 0 {
		return "", ErrEmptyOrder
	}
	var b strings.Builder
	for i, l := range s.lines {
		fmt.Fprintf(&b, "%d. %s x%d = %s%d\n", i+1, l.DisplayName, l.Quantity, catalog.Rupee, l.Total())
	}
	fmt.Fprintf(&b, "\nTotal: %s%d", catalog.Rupee, s.TotalPrice())
	b.WriteString(closingPrompt)
	return b.String(), nil
}

// ComposeFreeform wraps manually typed order text in the greeting. The text is
// opaque: only trimmed, never validated against the menu.
func ComposeFreeform(text string) (string, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return "", ErrEmptyOrder
	}
	return greeting + text, nil
}

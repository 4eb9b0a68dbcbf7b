package cart_test

import (
	"testing"

	"github.com/contrabandkitchen/backend/cart"
	"github.com/contrabandkitchen/backend/catalog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComposeSingleLine(t *testing.T) {
	t.Parallel()

	s := cart.NewStore()
	require.NoError(t, s.Add(catalog.Item{Name: "Pav Bhaji", Price: catalog.FlatPrice(99), IsVeg: true}, 1, ""))

	msg, err := cart.Compose(s)
	require.NoError(t, err)
	assert.Equal(t,
		"1. Pav Bhaji x1 = ₹99\n"+
			"\nTotal: ₹99"+
			"\n\nPlease confirm the order and delivery details.",
		msg)
}

func TestComposeNumbersLinesInCartOrder(t *testing.T) {
	t.Parallel()

	s := cart.NewStore()
	require.NoError(t, s.Add(lollipop(), 2, catalog.VariantHalf))
	require.NoError(t, s.Add(vegMaggi(), 1, ""))

	msg, err := cart.Compose(s)
	require.NoError(t, err)
	assert.Equal(t,
		"1. Chicken Lollipop (Half) x2 = ₹398\n"+
			"2. Veg Maggi x1 = ₹49\n"+
			"\nTotal: ₹447"+
			"\n\nPlease confirm the order and delivery details.",
		msg)
}

func TestComposeEmptyCart(t *testing.T) {
	t.Parallel()

	_, err := cart.Compose(cart.NewStore())
	require.ErrorIs(t, err, cart.ErrEmptyOrder)
}

func TestComposeFreeform(t *testing.T) {
	t.Parallel()

	msg, err := cart.ComposeFreeform("  1x Veg Maggi, 2x Chicken Lollipop Half \n")
	require.NoError(t, err)
	assert.Equal(t, "Hi! I would like to place an order:\n\n1x Veg Maggi, 2x Chicken Lollipop Half", msg)
}

func TestComposeFreeformBlank(t *testing.T) {
	t.Parallel()

	_, err := cart.ComposeFreeform("   ")
	require.ErrorIs(t, err, cart.ErrEmptyOrder)

	_, err = cart.ComposeFreeform("")
	require.ErrorIs(t, err, cart.ErrEmptyOrder)
}

func TestValidationErrorHelper(t *testing.T) {
	t.Parallel()

	err := cart.NewValidationError("unknown menu item")
	assert.True(t, cart.IsValidation(err))
	assert.False(t, cart.IsValidation(cart.ErrEmptyOrder))
	assert.Equal(t, "unknown menu item", err.Error())
}

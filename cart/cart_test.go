package cart_test

import (
	"testing"

	"github.com/contrabandkitchen/backend/cart"
	"github.com/contrabandkitchen/backend/catalog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func vegMaggi() catalog.Item {
	return catalog.Item{Name: "Veg Maggi", Price: catalog.FlatPrice(49), IsVeg: true}
}

func plainMaggi() catalog.Item {
	return catalog.Item{Name: "Plain Maggi", Price: catalog.FlatPrice(35), IsVeg: true}
}

func lollipop() catalog.Item {
	return catalog.Item{
		Name:  "Chicken Lollipop",
		Price: catalog.VariantPrice{catalog.VariantHalf: 199, catalog.VariantFull: 349},
	}
}

func TestAddFlatItem(t *testing.T) {
	t.Parallel()

	s := cart.NewStore()
	require.NoError(t, s.Add(vegMaggi(), 2, ""))

	lines := s.Lines()
	require.Len(t, lines, 1)
	assert.Equal(t, "Veg Maggi", lines[0].DisplayName)
	assert.Equal(t, int64(49), lines[0].UnitPrice)
	assert.Equal(t, 2, lines[0].Quantity)
	assert.True(t, lines[0].IsVeg)
	assert.Equal(t, int64(98), s.TotalPrice())
}

func TestAddVariantsAreDistinctLines(t *testing.T) {
	t.Parallel()

	s := cart.NewStore()
	require.NoError(t, s.Add(lollipop(), 1, catalog.VariantHalf))
	require.NoError(t, s.Add(lollipop(), 1, catalog.VariantFull))

	lines := s.Lines()
	require.Len(t, lines, 2)
	assert.Equal(t, "Chicken Lollipop (Half)", lines[0].DisplayName)
	assert.Equal(t, int64(199), lines[0].UnitPrice)
	assert.Equal(t, "Chicken Lollipop (Full)", lines[1].DisplayName)
	assert.Equal(t, int64(349), lines[1].UnitPrice)
	assert.Equal(t, int64(548), s.TotalPrice())
}

func TestAddMergesSameDisplayName(t *testing.T) {
	t.Parallel()

	s := cart.NewStore()
	require.NoError(t, s.Add(plainMaggi(), 1, ""))
	require.NoError(t, s.Add(plainMaggi(), 1, ""))

	lines := s.Lines()
	require.Len(t, lines, 1)
	assert.Equal(t, 2, lines[0].Quantity)
	assert.Equal(t, 2, s.TotalItems())
}

func TestAddMergeSumsQuantities(t *testing.T) {
	t.Parallel()

	s := cart.NewStore()
	for _, q := range []int{1, 3, 2} {
		require.NoError(t, s.Add(lollipop(), q, catalog.VariantHalf))
	}

	require.Equal(t, 1, s.Len())
	assert.Equal(t, 6, s.TotalItems())
}

func TestAddNonPositiveQuantity(t *testing.T) {
	t.Parallel()

	s := cart.NewStore()

	// No line to merge into: declined.
	require.NoError(t, s.Add(vegMaggi(), 0, ""))
	require.NoError(t, s.Add(vegMaggi(), -1, ""))
	assert.Equal(t, 0, s.Len())

	// Merging below zero removes the line instead of keeping a negative one.
	require.NoError(t, s.Add(vegMaggi(), 2, ""))
	require.NoError(t, s.Add(vegMaggi(), -2, ""))
	assert.Equal(t, 0, s.Len())
}

func TestUpdateSetsExactQuantity(t *testing.T) {
	t.Parallel()

	s := cart.NewStore()
	require.NoError(t, s.Add(vegMaggi(), 2, ""))

	s.Update(0, 5)
	assert.Equal(t, 5, s.Lines()[0].Quantity)
	assert.Equal(t, int64(245), s.TotalPrice())
}

func TestUpdateToZeroRemoves(t *testing.T) {
	t.Parallel()

	s := cart.NewStore()
	require.NoError(t, s.Add(vegMaggi(), 2, ""))
	require.NoError(t, s.Add(plainMaggi(), 1, ""))

	s.Update(0, 0)
	lines := s.Lines()
	require.Len(t, lines, 1)
	assert.Equal(t, "Plain Maggi", lines[0].DisplayName)

	s.Update(0, -3)
	assert.Equal(t, 0, s.Len())
}

func TestUpdateOutOfRangeIsNoOp(t *testing.T) {
	t.Parallel()

	s := cart.NewStore()
	require.NoError(t, s.Add(vegMaggi(), 1, ""))

	s.Update(5, 3)
	s.Update(-1, 3)
	assert.Equal(t, 1, s.Lines()[0].Quantity)
}

func TestRemoveShiftsAndIsIdempotent(t *testing.T) {
	t.Parallel()

	s := cart.NewStore()
	require.NoError(t, s.Add(vegMaggi(), 1, ""))
	require.NoError(t, s.Add(plainMaggi(), 1, ""))
	require.NoError(t, s.Add(lollipop(), 1, catalog.VariantHalf))

	s.Remove(1)
	lines := s.Lines()
	require.Len(t, lines, 2)
	assert.Equal(t, "Veg Maggi", lines[0].DisplayName)
	assert.Equal(t, "Chicken Lollipop (Half)", lines[1].DisplayName)

	// Removing the same index again hits a different line; removing past the
	// end hits nothing. Neither panics.
	s.Remove(1)
	s.Remove(1)
	s.Remove(-1)
	require.Len(t, s.Lines(), 1)
}

func TestClear(t *testing.T) {
	t.Parallel()

	s := cart.NewStore()
	require.NoError(t, s.Add(vegMaggi(), 2, ""))
	require.NoError(t, s.Add(lollipop(), 1, catalog.VariantFull))

	s.Clear()
	assert.Equal(t, 0, s.Len())
	assert.Equal(t, 0, s.TotalItems())
	assert.Equal(t, int64(0), s.TotalPrice())
	assert.Empty(t, s.Lines())
}

func TestEmptyTotals(t *testing.T) {
	t.Parallel()

	s := cart.NewStore()
	assert.Equal(t, 0, s.TotalItems())
	assert.Equal(t, int64(0), s.TotalPrice())
}

func TestLinesReturnsCopy(t *testing.T) {
	t.Parallel()

	s := cart.NewStore()
	require.NoError(t, s.Add(vegMaggi(), 1, ""))

	lines := s.Lines()
	lines[0].Quantity = 99
	assert.Equal(t, 1, s.Lines()[0].Quantity)
}

package cart

import "github.com/contrabandkitchen/backend/catalog"

// Line is one row of the cart. DisplayName is the item name plus the variant
// suffix and is the identity lines merge on.
type Line struct {
	DisplayName string `json:"displayName"`
	UnitPrice   int64  `json:"unitPrice"`
	Quantity    int    `json:"quantity"`
	IsVeg       bool   `json:"isVeg"`
}

// Total is the line amount.
func (l Line) Total() int64 { return l.UnitPrice * int64(l.Quantity) }

// Store holds the order lines of a single session, in insertion order.
// It is not safe for concurrent use; callers own the serialization.
//
// After every operation no line has a non-positive quantity and display
// names stay unique.
type Store struct {
	lines []Line
}

func NewStore() *Store { return &Store{} }

// Add resolves the price for the chosen variant and merges into an existing
// line with the same display name, summing quantities. A merge that drives
// the quantity to zero or below removes the line; a new line is only created
// for a positive quantity.
func (s *Store) Add(item catalog.Item, qty int, variant catalog.Variant) error {
	unit, label, err := catalog.Resolve(item, variant)
	if err != nil {
		return err
	}
	name := item.Name
	if label != "" {
		name += " " + label
	}
	for i := range s.lines {
		if s.lines[i].DisplayName == name {
			s.lines[i].Quantity += qty
			if s.lines[i].Quantity <= 0 {
				s.Remove(i)
			}
			return nil
		}
	}
	if qty <= 0 {
		return nil
	}
	s.lines = append(s.lines, Line{
		DisplayName: name,
		UnitPrice:   unit,
		Quantity:    qty,
		IsVeg:       item.IsVeg,
	})
	return nil
}

// Update sets the quantity of the line at index. A quantity of zero or below
// removes the line. An out-of-range index is treated as already removed.
func (s *Store) Update(index, qty int) {
	if index < 0 || index >= len(s.lines) {
		return
	}
	if qty <= 0 {
		s.Remove(index)
		return
	}
	s.lines[index].Quantity = qty
}

// Remove deletes the line at index, shifting later lines left.
// An out-of-range index is a no-op.
func (s *Store) Remove(index int) {
	if index < 0 || index >= len(s.lines) {
		return
	}
	s.lines = append(s.lines[:index], s.lines[index+1:]...)
}

// Clear empties the cart.
func (s *Store) Clear() { s.lines = nil }

// Len reports the number of lines.
func (s *Store) Len() int { return len(s.lines) }

// Lines returns a copy of the cart in display order.
func (s *Store) Lines() []Line {
	out := make([]Line, len(s.lines))
	copy(out, s.lines)
	return out
}

// TotalItems sums the quantities of all lines.
func (s *Store) TotalItems() int {
	var n int
	for _, l := range s.lines {
		n += l.Quantity
	}
	return n
}

// TotalPrice sums the line amounts. Prices are whole rupees, so integer
// arithmetic is exact.
func (s *Store) TotalPrice() int64 {
	var total int64
	for _, l := range s.lines {
		total += l.Total()
	}
	return total
}

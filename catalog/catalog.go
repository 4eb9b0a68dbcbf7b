package catalog

import "fmt"

// Rupee prefixes every amount shown to the customer.
const Rupee = "₹"

// Variant names a sub-option of an item that carries its own price.
type Variant string

const (
	VariantHalf  Variant = "half"
	VariantFull  Variant = "full"
	VariantSmall Variant = "small"
	VariantLarge Variant = "large"
)

// Variants lists the canonical keys for request validation.
var Variants = []Variant{VariantHalf, VariantFull, VariantSmall, VariantLarge}

// Item is one immutable menu entry.
type Item struct {
	Name        string
	Price       Price
	IsVeg       bool
	Description string
	Popular     bool
}

// IntegrityError reports a malformed catalog entry. It is only possible during
// catalog construction; a validated catalog never produces it at request time.
type IntegrityError struct {
	Item   string
	Reason string
}

func (e IntegrityError) Error() string {
	return fmt.Sprintf("catalog integrity: %s: %s", e.Item, e.Reason)
}

// Catalog is a validated, name-indexed menu. Items keep their seeded order.
type Catalog struct {
	items  []Item
	byName map[string]Item
}

// New validates the entries and builds the catalog. Duplicate names and
// variant prices without a single populated variant are construction bugs,
// surfaced here so they never reach a customer session.
func New(items []Item) (*Catalog, error) {
	c := &Catalog{byName: make(map[string]Item, len(items))}
	for _, it := range items {
		if it.Name == "" {
			return nil, IntegrityError{Item: "(unnamed)", Reason: "empty name"}
		}
		if _, dup := c.byName[it.Name]; dup {
			return nil, IntegrityError{Item: it.Name, Reason: "duplicate name"}
		}
		if it.Price == nil {
			return nil, IntegrityError{Item: it.Name, Reason: "missing price"}
		}
		if err := it.Price.validate(it.Name); err != nil {
			return nil, err
		}
		c.items = append(c.items, it)
		c.byName[it.Name] = it
	}
	return c, nil
}

// Items returns the menu in display order.
func (c *Catalog) Items() []Item {
	out := make([]Item, len(c.items))
	copy(out, c.items)
	return out
}

// Find looks an item up by its display name.
func (c *Catalog) Find(name string) (Item, bool) {
	it, ok := c.byName[name]
	return it, ok
}

package catalog

import "fmt"

// Price is a closed shape: either a flat amount or a set of variant amounts.
type Price interface {
	// Display renders the menu-card price string, e.g. "₹35" or
	// "₹199 (Half) / ₹349 (Full)".
	Display() string

	validate(item string) error
}

// FlatPrice is a single amount with no variants.
type FlatPrice int64

func (p FlatPrice) Display() string { return fmt.Sprintf("%s%d", Rupee, int64(p)) }

func (p FlatPrice) validate(item string) error {
	if p <= 0 {
		return IntegrityError{Item: item, Reason: "non-positive price"}
	}
	return nil
}

// VariantPrice maps variant keys to amounts. A zero amount means the variant
// is not offered for the item.
type VariantPrice map[Variant]int64

func (p VariantPrice) Display() string {
	if p[VariantHalf] > 0 && p[VariantFull] > 0 {
		return fmt.Sprintf("%s%d (Half) / %s%d (Full)", Rupee, p[VariantHalf], Rupee, p[VariantFull])
	}
	if p[VariantSmall] > 0 && p[VariantLarge] > 0 {
		return fmt.Sprintf("%s%d (4pcs) / %s%d (6pcs)", Rupee, p[VariantSmall], Rupee, p[VariantLarge])
	}
	for _, v := range fallbackOrder {
		if p[v] > 0 {
			return fmt.Sprintf("%s%d %s", Rupee, p[v], labels[v])
		}
	}
	return Rupee + "--"
}

// VariantOption is one populated variant with its amount.
type VariantOption struct {
	Variant Variant
	Amount  int64
}

// Options lists the populated variants in menu order.
func (p VariantPrice) Options() []VariantOption {
	var out []VariantOption
	for _, v := range Variants {
		if p[v] > 0 {
			out = append(out, VariantOption{Variant: v, Amount: p[v]})
		}
	}
	return out
}

func (p VariantPrice) validate(item string) error {
	for k := range p {
		if _, ok := labels[k]; !ok {
			return IntegrityError{Item: item, Reason: "unknown variant key " + string(k)}
		}
	}
	for _, v := range fallbackOrder {
		if p[v] > 0 {
			return nil
		}
	}
	return IntegrityError{Item: item, Reason: "variant price has no populated variant"}
}

var labels = map[Variant]string{
	VariantHalf:  "(Half)",
	VariantFull:  "(Full)",
	VariantSmall: "(4pcs)",
	VariantLarge: "(6pcs)",
}

// fallbackOrder preserves the storefront's historical default: half before
// small. Appending full and large is a deviation from that legacy policy,
// which priced an item offering only the larger sizes at 0; here any
// populated variant resolves.
var fallbackOrder = []Variant{VariantHalf, VariantSmall, VariantFull, VariantLarge}

// Resolve picks the concrete unit price for a chosen variant.
//
// Flat prices ignore the variant. For variant prices, an absent, unknown or
// unpopulated variant falls back to the first populated key in fallbackOrder.
// The returned label is the display suffix for the chosen variant, empty for
// flat prices.
func Resolve(item Item, variant Variant) (int64, string, error) {
	switch p := item.Price.(type) {
	case FlatPrice:
		return int64(p), "", nil
	case VariantPrice:
		if amount := p[variant]; amount > 0 {
			return amount, labels[variant], nil
		}
		for _, v := range fallbackOrder {
			if p[v] > 0 {
				return p[v], labels[v], nil
			}
		}
		return 0, "", IntegrityError{Item: item.Name, Reason: "variant price has no populated variant"}
	default:
		return 0, "", IntegrityError{Item: item.Name, Reason: "unknown price shape"}
	}
}

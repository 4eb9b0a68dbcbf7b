package configs

import (
	"github.com/contrabandkitchen/backend/entity"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

type seedVariant struct {
	variant string
	price   int64
}

type seedMenu struct {
	name        string
	price       int64 // 0 when priced per variant
	variants    []seedVariant
	isVeg       bool
	description string
	popular     bool
}

// The kitchen's card. Order matters: it is the display order.
var menuSeed = []seedMenu{
	// Maggi
	{name: "Plain Maggi", price: 35, isVeg: true, description: "Simple and classic Maggi noodles"},
	{name: "Veg Maggi", price: 49, isVeg: true, description: "Loaded with fresh vegetables", popular: true},
	{name: "Egg Maggi", price: 65, isVeg: false, description: "Maggi with perfectly cooked eggs"},

	// Bhurji
	{name: "Paneer Bhurji", price: 119, isVeg: true, description: "Scrambled cottage cheese with spices", popular: true},
	{name: "Egg Bhurji", price: 159, isVeg: false, description: "Spiced scrambled eggs with onions"},

	// Chicken
	{name: "Chicken Lollipop", variants: []seedVariant{{"half", 199}, {"full", 349}}, isVeg: false, description: "4 pieces (Half) / 8 pieces (Full)", popular: true},
	{name: "Chicken Curry", variants: []seedVariant{{"half", 219}, {"full", 379}}, isVeg: false, description: "Rich and flavorful chicken curry"},

	// Curry
	{name: "Egg Curry", price: 189, isVeg: false, description: "Boiled eggs in spicy gravy"},
	{name: "Aloo Jeera", price: 79, isVeg: true, description: "Cumin flavored potatoes"},

	// Rice & Sabji
	{name: "Fried Rice", price: 79, isVeg: true, description: "Aromatic fried rice with vegetables"},
	{name: "Bhindi Sabji", price: 119, isVeg: true, description: "Traditional okra curry"},
	{name: "Kurkuri Bhindi", price: 169, isVeg: true, description: "Crispy fried okra", popular: true},

	// Bread Rolls
	{name: "Bread Rolls", variants: []seedVariant{{"small", 129}, {"large", 199}}, isVeg: true, description: "4 pieces / 6 pieces"},
	{name: "Cheese Bread Rolls", variants: []seedVariant{{"small", 159}, {"large", 249}}, isVeg: true, description: "4 pieces / 6 pieces"},

	// Snacks
	{name: "Aloo Pakode", price: 59, isVeg: true, description: "8 pieces of crispy potato fritters"},
	{name: "Cheese Aloo Sandwich", price: 89, isVeg: true, description: "Grilled sandwich with cheese and potatoes"},
	{name: "Pav Bhaji", price: 99, isVeg: true, description: "Mumbai street food special", popular: true},

	// Momos
	{name: "Veg Momos", variants: []seedVariant{{"small", 79}, {"large", 139}}, isVeg: true, description: "4 pieces / 8 pieces"},
	{name: "Non Veg Momos", variants: []seedVariant{{"small", 119}, {"large", 189}}, isVeg: false, description: "4 pieces / 8 pieces", popular: true},
}

// SeedMenu fills the menu tables on first run. Existing rows are left alone so
// price edits made through the DB survive restarts.
func SeedMenu(db *gorm.DB) error {
	var count int64
	if err := db.Model(&entity.Menu{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		log.Info().Int64("items", count).Msg("menu already seeded")
		return nil
	}

	for i, m := range menuSeed {
		row := entity.Menu{
			MenuName:    m.name,
			Description: m.description,
			Price:       m.price,
			IsVeg:       m.isVeg,
			Popular:     m.popular,
			SortOrder:   i,
		}
		for _, v := range m.variants {
			row.Variants = append(row.Variants, entity.MenuVariant{Variant: v.variant, Price: v.price})
		}
		if err := db.Create(&row).Error; err != nil {
			return err
		}
	}
	log.Info().Int("items", len(menuSeed)).Msg("menu seeded")
	return nil
}

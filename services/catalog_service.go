package services

import (
	"github.com/contrabandkitchen/backend/catalog"
	"github.com/contrabandkitchen/backend/entity"
	"github.com/contrabandkitchen/backend/repository"
)

type CatalogService struct {
	Repo *repository.MenuRepository

	cat *catalog.Catalog
}

// NewCatalogService loads the menu rows into the in-memory catalog and
// validates them. A malformed menu (duplicate name, variant price with no
// populated variant) fails here, before the server starts taking orders.
func NewCatalogService(repo *repository.MenuRepository) (*CatalogService, error) {
	menus, err := repo.FindAll()
	if err != nil {
		return nil, err
	}

	items := make([]catalog.Item, 0, len(menus))
	for _, m := range menus {
		items = append(items, toCatalogItem(m))
	}
	cat, err := catalog.New(items)
	if err != nil {
		return nil, err
	}
	return &CatalogService{Repo: repo, cat: cat}, nil
}

func toCatalogItem(m entity.Menu) catalog.Item {
	it := catalog.Item{
		Name:        m.MenuName,
		IsVeg:       m.IsVeg,
		Description: m.Description,
		Popular:     m.Popular,
	}
	if len(m.Variants) > 0 {
		p := catalog.VariantPrice{}
		for _, v := range m.Variants {
			p[catalog.Variant(v.Variant)] = v.Price
		}
		it.Price = p
	} else {
		it.Price = catalog.FlatPrice(m.Price)
	}
	return it
}

func (s *CatalogService) Catalog() *catalog.Catalog { return s.cat }

// MenuItemOut is what a menu card needs to render.
type MenuItemOut struct {
	Name        string           `json:"name"`
	Description string           `json:"description"`
	PriceText   string           `json:"priceText"`
	IsVeg       bool             `json:"isVeg"`
	Popular     bool             `json:"popular"`
	Variants    []MenuVariantOut `json:"variants,omitempty"`
}

// MenuVariantOut is one selectable portion with its resolved price.
type MenuVariantOut struct {
	Variant string `json:"variant"`
	Price   int64  `json:"price"`
}

// List returns the menu for display, filtered to "all", "veg" or "nonveg".
func (s *CatalogService) List(filter string) []MenuItemOut {
	items := s.cat.Items()
	out := make([]MenuItemOut, 0, len(items))
	for _, it := range items {
		if filter == "veg" && !it.IsVeg {
			continue
		}
		if filter == "nonveg" && it.IsVeg {
			continue
		}
		row := MenuItemOut{
			Name:        it.Name,
			Description: it.Description,
			PriceText:   it.Price.Display(),
			IsVeg:       it.IsVeg,
			Popular:     it.Popular,
		}
		if p, ok := it.Price.(catalog.VariantPrice); ok {
			for _, opt := range p.Options() {
				row.Variants = append(row.Variants, MenuVariantOut{
					Variant: string(opt.Variant),
					Price:   opt.Amount,
				})
			}
		}
		out = append(out, row)
	}
	return out
}

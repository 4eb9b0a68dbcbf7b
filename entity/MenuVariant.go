package entity

import (
	"gorm.io/gorm"
)

type MenuVariant struct {
	gorm.Model
	MenuID uint `json:"menuId"`
	Menu   Menu `json:"-"`

	Variant string `json:"variant"` // half | full | small | large
	Price   int64  `json:"price"`
}

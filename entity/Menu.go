package entity

import (
	"gorm.io/gorm"
)

type Menu struct {
	gorm.Model
	MenuName    string `json:"menuName" gorm:"uniqueIndex"`
	Description string `json:"description"`

	// Price holds the flat amount; 0 when the item is priced per variant.
	Price int64 `json:"price"`

	IsVeg     bool `json:"isVeg"`
	Popular   bool `json:"popular"`
	SortOrder int  `json:"sortOrder"`

	Variants []MenuVariant `json:"variants" gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
}

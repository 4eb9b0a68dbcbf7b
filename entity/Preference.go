package entity

import (
	"gorm.io/gorm"
)

// Preference is a single key/value setting. The theme toggle is the only
// durable state the storefront keeps.
type Preference struct {
	gorm.Model
	Key   string `json:"key" gorm:"uniqueIndex"`
	Value string `json:"value"`
}

const ThemeKey = "theme"

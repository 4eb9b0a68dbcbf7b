package entity

import (
	"gorm.io/gorm"
)

type Feedback struct {
	gorm.Model
	Body   string `json:"feedback"`
	Rating int    `json:"rating"` // 1..5
}

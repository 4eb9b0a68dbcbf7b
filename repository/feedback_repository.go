package repository

import (
	"github.com/contrabandkitchen/backend/entity"

	"gorm.io/gorm"
)

type FeedbackRepository struct{ DB *gorm.DB }

func NewFeedbackRepository(db *gorm.DB) *FeedbackRepository {
	return &FeedbackRepository{DB: db}
}

func (r *FeedbackRepository) Create(f *entity.Feedback) error {
	return r.DB.Create(f).Error
}

func (r *FeedbackRepository) ListRecent(limit int) ([]entity.Feedback, error) {
	var rows []entity.Feedback
	err := r.DB.Order("created_at DESC").Limit(limit).Find(&rows).Error
	return rows, err
}

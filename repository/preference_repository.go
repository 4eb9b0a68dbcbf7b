package repository

import (
	"errors"

	"github.com/contrabandkitchen/backend/entity"

	"gorm.io/gorm"
)

type PreferenceRepository struct{ DB *gorm.DB }

func NewPreferenceRepository(db *gorm.DB) *PreferenceRepository {
	return &PreferenceRepository{DB: db}
}

// Get returns the stored value, or "" without error when the key was never set.
func (r *PreferenceRepository) Get(key string) (string, error) {
	var p entity.Preference
	err := r.DB.Where("key = ?", key).First(&p).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return p.Value, nil
}

func (r *PreferenceRepository) Set(key, value string) error {
	var p entity.Preference
	err := r.DB.Where("key = ?", key).First(&p).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return r.DB.Create(&entity.Preference{Key: key, Value: value}).Error
	}
	if err != nil {
		return err
	}
	p.Value = value
	return r.DB.Save(&p).Error
}

package repository

import (
	"github.com/contrabandkitchen/backend/entity"

	"gorm.io/gorm"
)

type MenuRepository struct{ DB *gorm.DB }

func NewMenuRepository(db *gorm.DB) *MenuRepository { return &MenuRepository{DB: db} }

// FindAll returns the menu in card order with variant prices preloaded.
func (r *MenuRepository) FindAll() ([]entity.Menu, error) {
	var menus []entity.Menu
	err := r.DB.Preload("Variants").Order("sort_order ASC").Find(&menus).Error
	return menus, err
}

func (r *MenuRepository) FindByName(name string) (*entity.Menu, error) {
	var m entity.Menu
	err := r.DB.Where("menu_name = ?", name).Preload("Variants").First(&m).Error
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *MenuRepository) Count() (int64, error) {
	var n int64
	err := r.DB.Model(&entity.Menu{}).Count(&n).Error
	return n, err
}

func (r *MenuRepository) Create(m *entity.Menu) error {
	return r.DB.Create(m).Error
}

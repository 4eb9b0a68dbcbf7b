package services

import (
	"time"

	"github.com/contrabandkitchen/backend/entity"
	"github.com/contrabandkitchen/backend/repository"
)

// ThemeService resolves the storefront theme: the saved preference wins,
// otherwise the clock decides (dark from 18:00 to 06:00).
type ThemeService struct {
	Repo *repository.PreferenceRepository

	// Now is swappable for tests.
	Now func() time.Time
}

func NewThemeService(repo *repository.PreferenceRepository) *ThemeService {
	return &ThemeService{Repo: repo, Now: time.Now}
}

type ThemeOut struct {
	Theme string `json:"theme"`
	Saved bool   `json:"saved"`
}

func (s *ThemeService) Current() (*ThemeOut, error) {
	v, err := s.Repo.Get(entity.ThemeKey)
	if err != nil {
		return nil, err
	}
	if v != "" {
		return &ThemeOut{Theme: v, Saved: true}, nil
	}
	hour := s.Now().Hour()
	theme := "light"
	if hour >= 18 || hour < 6 {
		theme = "dark"
	}
	return &ThemeOut{Theme: theme, Saved: false}, nil
}

func (s *ThemeService) Set(theme string) error {
	return s.Repo.Set(entity.ThemeKey, theme)
}

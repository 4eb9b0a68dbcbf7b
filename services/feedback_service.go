package services

import (
	"github.com/contrabandkitchen/backend/cart"
	"github.com/contrabandkitchen/backend/entity"
	"github.com/contrabandkitchen/backend/repository"
)

type FeedbackService struct {
	Repo *repository.FeedbackRepository
}

func NewFeedbackService(repo *repository.FeedbackRepository) *FeedbackService {
	return &FeedbackService{Repo: repo}
}

type FeedbackIn struct {
	Feedback string `json:"feedback" binding:"required"`
	Rating   int    `json:"rating" binding:"required,min=1,max=5"`
}

func (s *FeedbackService) Submit(in *FeedbackIn) error {
	if in.Rating < 1 || in.Rating > 5 {
		return cart.NewValidationError("rating must be between 1 and 5")
	}
	return s.Repo.Create(&entity.Feedback{Body: in.Feedback, Rating: in.Rating})
}

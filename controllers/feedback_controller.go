package controllers

import (
	"github.com/contrabandkitchen/backend/cart"
	"github.com/contrabandkitchen/backend/pkg/resp"
	"github.com/contrabandkitchen/backend/services"

	"github.com/gin-gonic/gin"
)

type FeedbackController struct{ Svc *services.FeedbackService }

func NewFeedbackController(s *services.FeedbackService) *FeedbackController {
	return &FeedbackController{Svc: s}
}

// POST /feedback
func (h *FeedbackController) Create(c *gin.Context) {
	var req services.FeedbackIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if err := h.Svc.Submit(&req); err != nil {
		if cart.IsValidation(err) {
			resp.BadRequest(c, err.Error())
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.Created(c, gin.H{"received": true})
}

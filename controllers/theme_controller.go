package controllers

import (
	"github.com/contrabandkitchen/backend/pkg/resp"
	"github.com/contrabandkitchen/backend/services"

	"github.com/gin-gonic/gin"
)

type ThemeController struct{ Svc *services.ThemeService }

func NewThemeController(s *services.ThemeService) *ThemeController {
	return &ThemeController{Svc: s}
}

// GET /theme
func (h *ThemeController) Get(c *gin.Context) {
	out, err := h.Svc.Current()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, out)
}

// PUT /theme
func (h *ThemeController) Set(c *gin.Context) {
	var body struct {
		Theme string `json:"theme" binding:"required,oneof=light dark"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if err := h.Svc.Set(body.Theme); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"theme": body.Theme})
}

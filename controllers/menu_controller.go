package controllers

import (
	"github.com/contrabandkitchen/backend/pkg/resp"
	"github.com/contrabandkitchen/backend/services"

	"github.com/gin-gonic/gin"
)

type MenuController struct{ Svc *services.CatalogService }

func NewMenuController(s *services.CatalogService) *MenuController {
	return &MenuController{Svc: s}
}

// GET /menu?filter=all|veg|nonveg
func (h *MenuController) List(c *gin.Context) {
	filter := c.DefaultQuery("filter", "all")
	switch filter {
	case "all", "veg", "nonveg":
	default:
		resp.BadRequest(c, "filter must be all, veg or nonveg")
		return
	}
	resp.OK(c, h.Svc.List(filter))
}

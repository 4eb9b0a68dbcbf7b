package controllers

import (
	"github.com/contrabandkitchen/backend/cart"
	"github.com/contrabandkitchen/backend/pkg/resp"
	"github.com/contrabandkitchen/backend/services"
	"github.com/contrabandkitchen/backend/utils"

	"github.com/gin-gonic/gin"
)

type CartController struct{ Svc *services.CartService }

func NewCartController(s *services.CartService) *CartController {
	return &CartController{Svc: s}
}

// GET /cart
func (h *CartController) Get(c *gin.Context) {
	sid := utils.CurrentSessionID(c)
	resp.OK(c, h.Svc.Get(sid))
}

// POST /cart/items
func (h *CartController) Add(c *gin.Context) {
	sid := utils.CurrentSessionID(c)

	var req services.AddToCartIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if err := h.Svc.Add(sid, &req); err != nil {
		if cart.IsValidation(err) {
			resp.BadRequest(c, err.Error())
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.Created(c, h.Svc.Get(sid))
}

// PATCH /cart/items/qty
func (h *CartController) UpdateQty(c *gin.Context) {
	sid := utils.CurrentSessionID(c)

	var body struct {
		Index int `json:"index" binding:"min=0"`
		Qty   int `json:"qty"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if err := h.Svc.UpdateQty(sid, body.Index, body.Qty); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, h.Svc.Get(sid))
}

// DELETE /cart/items
func (h *CartController) RemoveItem(c *gin.Context) {
	sid := utils.CurrentSessionID(c)

	var body struct {
		Index int `json:"index" binding:"min=0"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if err := h.Svc.RemoveItem(sid, body.Index); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, h.Svc.Get(sid))
}

// DELETE /cart
func (h *CartController) Clear(c *gin.Context) {
	sid := utils.CurrentSessionID(c)
	if err := h.Svc.Clear(sid); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, h.Svc.Get(sid))
}

package controllers

import (
	"errors"

	"github.com/contrabandkitchen/backend/cart"
	"github.com/contrabandkitchen/backend/pkg/resp"
	"github.com/contrabandkitchen/backend/services"
	"github.com/contrabandkitchen/backend/utils"

	"github.com/gin-gonic/gin"
)

type OrderController struct{ Svc *services.OrderService }

func NewOrderController(s *services.OrderService) *OrderController {
	return &OrderController{Svc: s}
}

// POST /checkout
func (h *OrderController) Checkout(c *gin.Context) {
	sid := utils.CurrentSessionID(c)

	var req services.CheckoutReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	out, err := h.Svc.CheckoutCart(sid, req.Channel)
	if err != nil {
		if errors.Is(err, cart.ErrEmptyOrder) {
			resp.BadRequest(c, "nothing to order")
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, out)
}

// POST /checkout/freeform
func (h *OrderController) CheckoutFreeform(c *gin.Context) {
	var req services.FreeformCheckoutReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	out, err := h.Svc.CheckoutFreeform(req.Text, req.Channel)
	if err != nil {
		if errors.Is(err, cart.ErrEmptyOrder) {
			resp.BadRequest(c, "nothing to order")
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, out)
}

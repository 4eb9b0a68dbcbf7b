package services

import (
	"github.com/contrabandkitchen/backend/cart"
	"github.com/contrabandkitchen/backend/pkg/whatsapp"
)

// OrderService turns a cart or freeform text into an order message plus the
// WhatsApp link that hands it off. The composed message reaches the link
// builder unmodified.
type OrderService struct {
	Carts *CartService

	MainNumber string
	AltNumber  string
}

func NewOrderService(carts *CartService, mainNumber, altNumber string) *OrderService {
	return &OrderService{Carts: carts, MainNumber: mainNumber, AltNumber: altNumber}
}

type CheckoutReq struct {
	Channel string `json:"channel" binding:"omitempty,oneof=main alt"`
}

type FreeformCheckoutReq struct {
	Text    string `json:"text" binding:"required"`
	Channel string `json:"channel" binding:"omitempty,oneof=main alt"`
}

type CheckoutRes struct {
	Message string `json:"message"`
	URL     string `json:"url"`
}

func (s *OrderService) destination(channel string) string {
	if channel == "alt" {
		return s.AltNumber
	}
	return s.MainNumber
}

// CheckoutCart composes the session's cart. An empty cart yields
// cart.ErrEmptyOrder; no link is built in that case.
func (s *OrderService) CheckoutCart(sessionID, channel string) (*CheckoutRes, error) {
	msg, err := s.Carts.Compose(sessionID)
	if err != nil {
		return nil, err
	}
	return &CheckoutRes{Message: msg, URL: whatsapp.Link(s.destination(channel), msg)}, nil
}

// CheckoutFreeform wraps manually typed order text. Blank text yields
// cart.ErrEmptyOrder.
func (s *OrderService) CheckoutFreeform(text, channel string) (*CheckoutRes, error) {
	msg, err := cart.ComposeFreeform(text)
	if err != nil {
		return nil, err
	}
	return &CheckoutRes{Message: msg, URL: whatsapp.Link(s.destination(channel), msg)}, nil
}

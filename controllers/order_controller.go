package controllers

import (
	"errors"

	"github.com/AV-automacoes/restaurante-bom-prato/pkg/resp"
	"github.com/AV-automacoes/restaurante-bom-prato/services"
	"github.com/AV-automacoes/restaurante-bom-prato/utils"
	"github.com/gin-gonic/gin"
)

type OrderController struct {
	Svc *services.OrderService
}

func NewOrderController(s *services.OrderService) *OrderController {
	return &OrderController{Svc: s}
}

// POST /checkout
func (h *OrderController) Checkout(c *gin.Context) {
	sid := utils.CurrentSessionID(c)
	if sid == "" {
		resp.Unauthorized(c, "unauthorized")
		return
	}

	var req services.CheckoutIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	out, err := h.Svc.Checkout(sid, &req)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrEmptyCart):
			resp.Conflict(c, "cart is empty")
		case errors.Is(err, services.ErrClosed):
			resp.Conflict(c, "restaurante fechado")
		default:
			if ve, ok := services.AsValidation(err); ok {
				resp.UnprocessableEntity(c, "invalid checkout", ve.Fields)
				return
			}
			resp.ServerError(c, err)
		}
		return
	}
	resp.Created(c, out)
}

// GET /orders — só os pedidos da própria sessão de dispositivo
func (h *OrderController) List(c *gin.Context) {
	sid := utils.CurrentSessionID(c)
	if sid == "" {
		resp.Unauthorized(c, "unauthorized")
		return
	}
	orders, err := h.Svc.ListHistory(sid)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, orders)
}

// GET /orders/lookup?displayId=%23123456
func (h *OrderController) Lookup(c *gin.Context) {
	o, err := h.Svc.LookupByDisplayID(c.Query("displayId"))
	if err != nil {
		if ve, ok := services.AsValidation(err); ok {
			resp.UnprocessableEntity(c, "invalid display id", ve.Fields)
			return
		}
		if errors.Is(err, services.ErrOrderNotFound) {
			resp.NotFound(c, "order not found")
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, o)
}

// GET /orders/:id
func (h *OrderController) Detail(c *gin.Context) {
	o, err := h.Svc.GetOrder(c.Param("id"))
	if err != nil {
		if errors.Is(err, services.ErrOrderNotFound) {
			resp.NotFound(c, "order not found")
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, o)
}

// POST /orders/:id/rating
func (h *OrderController) Rate(c *gin.Context) {
	var body struct {
		Rating int    `json:"rating" binding:"required"`
		Review string `json:"review"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	o, err := h.Svc.AttachRating(c.Param("id"), body.Rating, body.Review)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrOrderNotFound):
			resp.NotFound(c, "order not found")
		case errors.Is(err, services.ErrAlreadyRated):
			resp.Conflict(c, "order already rated")
		default:
			if ve, ok := services.AsValidation(err); ok {
				resp.UnprocessableEntity(c, "invalid rating", ve.Fields)
				return
			}
			resp.ServerError(c, err)
		}
		return
	}
	resp.OK(c, o)
}

// POST /orders/:id/reorder — joga os itens do pedido de volta no carrinho
func (h *OrderController) Reorder(c *gin.Context) {
	sid := utils.CurrentSessionID(c)
	if sid == "" {
		resp.Unauthorized(c, "unauthorized")
		return
	}
	items, err := h.Svc.Reorder(sid, c.Param("id"))
	if err != nil {
		if errors.Is(err, services.ErrOrderNotFound) {
			resp.NotFound(c, "order not found")
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.Created(c, items)
}

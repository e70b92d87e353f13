package controllers

import (
	"errors"

	"github.com/AV-automacoes/restaurante-bom-prato/entity"
	"github.com/AV-automacoes/restaurante-bom-prato/pkg/resp"
	"github.com/AV-automacoes/restaurante-bom-prato/services"
	"github.com/gin-gonic/gin"
)

// AdminController são as ações do dono: login e avanço manual de status.
type AdminController struct {
	Auth   *services.AuthService
	Orders *services.OrderService
}

func NewAdminController(auth *services.AuthService, orders *services.OrderService) *AdminController {
	return &AdminController{Auth: auth, Orders: orders}
}

// POST /admin/login
func (h *AdminController) Login(c *gin.Context) {
	var body struct {
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	token, err := h.Auth.AdminLogin(body.Email, body.Password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			resp.Unauthorized(c, "invalid credentials")
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"token": token})
}

// POST /admin/orders/:id/accept
func (h *AdminController) Accept(c *gin.Context) {
	h.advance(c, entity.StatusAccepted)
}

// POST /admin/orders/:id/handoff
func (h *AdminController) Handoff(c *gin.Context) {
	h.advance(c, entity.StatusOutForDelivery)
}

// POST /admin/orders/:id/complete
func (h *AdminController) Complete(c *gin.Context) {
	h.advance(c, entity.StatusDelivered)
}

func (h *AdminController) advance(c *gin.Context, next entity.OrderStatus) {
	o, err := h.Orders.AdvanceStatus(c.Param("id"), next)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrOrderNotFound):
			resp.NotFound(c, "order not found")
		case errors.Is(err, services.ErrInvalidTransition):
			resp.Conflict(c, "invalid status transition")
		default:
			resp.ServerError(c, err)
		}
		return
	}
	resp.OK(c, o)
}

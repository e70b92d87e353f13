package controllers

import (
	"errors"

	"github.com/AV-automacoes/restaurante-bom-prato/pkg/resp"
	"github.com/AV-automacoes/restaurante-bom-prato/services"
	"github.com/AV-automacoes/restaurante-bom-prato/utils"
	"github.com/gin-gonic/gin"
)

type CartController struct {
	Svc      *services.CartService
	Menu     *services.MenuService
	Schedule *services.ScheduleService
}

func NewCartController(s *services.CartService, m *services.MenuService, sched *services.ScheduleService) *CartController {
	return &CartController{Svc: s, Menu: m, Schedule: sched}
}

// GET /cart
func (h *CartController) Get(c *gin.Context) {
	sid := utils.CurrentSessionID(c)
	if sid == "" {
		resp.Unauthorized(c, "unauthorized")
		return
	}
	resp.OK(c, gin.H{
		"items":      h.Svc.Items(sid),
		"subtotal":   h.Svc.Subtotal(sid),
		"totalItems": h.Svc.TotalItems(sid),
	})
}

type addToCartIn struct {
	ItemID int `json:"itemId" binding:"required"`
	Day    int `json:"day"` // 0 = usa o dia atual
	services.CustomizeIn
}

// POST /cart/items
func (h *CartController) Add(c *gin.Context) {
	sid := utils.CurrentSessionID(c)
	if sid == "" {
		resp.Unauthorized(c, "unauthorized")
		return
	}

	var req addToCartIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	day := req.Day
	if day == 0 {
		day = int(h.Schedule.Now().Weekday())
	}
	item, ok := h.Menu.FindItem(day, req.ItemID)
	if !ok {
		resp.NotFound(c, "menu item not found")
		return
	}

	entry, err := services.BuildCartItem(item, "", &req.CustomizeIn)
	if err != nil {
		if ve, ok := services.AsValidation(err); ok {
			resp.UnprocessableEntity(c, "invalid customization", ve.Fields)
			return
		}
		resp.BadRequest(c, err.Error())
		return
	}

	h.Svc.AddEntry(sid, entry)
	resp.Created(c, entry)
}

// PUT /cart/items/:id — reabre a montagem e substitui a entrada inteira
func (h *CartController) Update(c *gin.Context) {
	sid := utils.CurrentSessionID(c)
	if sid == "" {
		resp.Unauthorized(c, "unauthorized")
		return
	}
	cartItemID := c.Param("id")

	existing, err := h.Svc.FindEntry(sid, cartItemID)
	if err != nil {
		resp.NotFound(c, "cart item not found")
		return
	}

	var req addToCartIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	day := req.Day
	if day == 0 {
		day = int(h.Schedule.Now().Weekday())
	}
	item, ok := h.Menu.FindItem(day, existing.MenuItemID)
	if !ok {
		resp.NotFound(c, "menu item not found")
		return
	}

	entry, err := services.BuildCartItem(item, cartItemID, &req.CustomizeIn)
	if err != nil {
		if ve, ok := services.AsValidation(err); ok {
			resp.UnprocessableEntity(c, "invalid customization", ve.Fields)
			return
		}
		resp.BadRequest(c, err.Error())
		return
	}

	if err := h.Svc.UpdateEntry(sid, entry); err != nil {
		resp.NotFound(c, "cart item not found")
		return
	}
	resp.OK(c, entry)
}

// PATCH /cart/items/:id/qty
func (h *CartController) UpdateQty(c *gin.Context) {
	sid := utils.CurrentSessionID(c)
	if sid == "" {
		resp.Unauthorized(c, "unauthorized")
		return
	}
	var body struct {
		Qty int `json:"qty"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if err := h.Svc.SetQuantity(sid, c.Param("id"), body.Qty); err != nil {
		if errors.Is(err, services.ErrEntryNotFound) {
			resp.NotFound(c, "cart item not found")
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"subtotal": h.Svc.Subtotal(sid)})
}

// DELETE /cart/items/:id
func (h *CartController) Remove(c *gin.Context) {
	sid := utils.CurrentSessionID(c)
	if sid == "" {
		resp.Unauthorized(c, "unauthorized")
		return
	}
	if err := h.Svc.RemoveEntry(sid, c.Param("id")); err != nil {
		resp.NotFound(c, "cart item not found")
		return
	}
	resp.OK(c, gin.H{"subtotal": h.Svc.Subtotal(sid)})
}

// DELETE /cart
func (h *CartController) Clear(c *gin.Context) {
	sid := utils.CurrentSessionID(c)
	if sid == "" {
		resp.Unauthorized(c, "unauthorized")
		return
	}
	h.Svc.Clear(sid)
	resp.OK(c, gin.H{"ok": true})
}

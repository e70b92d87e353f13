package controllers

import (
	"strconv"

	"github.com/AV-automacoes/restaurante-bom-prato/pkg/resp"
	"github.com/AV-automacoes/restaurante-bom-prato/services"
	"github.com/gin-gonic/gin"
)

type MenuController struct {
	Svc      *services.MenuService
	Schedule *services.ScheduleService
}

func NewMenuController(s *services.MenuService, sched *services.ScheduleService) *MenuController {
	return &MenuController{Svc: s, Schedule: sched}
}

// GET /menu?day=&q=
func (h *MenuController) List(c *gin.Context) {
	day := int(h.Schedule.Now().Weekday())
	if v := c.Query("day"); v != "" {
		d, err := strconv.Atoi(v)
		if err != nil || d < 0 || d > 6 {
			resp.BadRequest(c, "day must be 0-6")
			return
		}
		day = d
	}

	categories := h.Svc.Search(day, c.Query("q"))
	resp.OK(c, gin.H{"day": day, "categories": categories})
}

// GET /status
func (h *MenuController) Status(c *gin.Context) {
	resp.OK(c, h.Schedule.Status())
}

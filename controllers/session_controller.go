package controllers

import (
	"github.com/AV-automacoes/restaurante-bom-prato/pkg/resp"
	"github.com/AV-automacoes/restaurante-bom-prato/services"
	"github.com/gin-gonic/gin"
)

type SessionController struct {
	Svc *services.AuthService
}

func NewSessionController(s *services.AuthService) *SessionController {
	return &SessionController{Svc: s}
}

// POST /session — cria a sessão anônima do aparelho (carrinho + histórico)
func (h *SessionController) Create(c *gin.Context) {
	token, sessionID, err := h.Svc.NewDeviceSession()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.Created(c, gin.H{"token": token, "sessionId": sessionID})
}

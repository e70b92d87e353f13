package ws

import (
	"net/http"
	"sync"

	"github.com/AV-automacoes/restaurante-bom-prato/entity"
	"github.com/AV-automacoes/restaurante-bom-prato/services"
	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

// OrderHub acompanha pedidos por WebSocket: o cliente assina o pedido e
// recebe cada transição de status empurrada pelo servidor.
type OrderHub struct {
	clients    map[string]map[*websocket.Conn]bool // orderID -> conexões
	broadcast  chan statusEvent
	register   chan subscription
	unregister chan subscription
	mu         sync.Mutex

	orders *services.OrderService
	log    *zap.Logger
}

type subscription struct {
	Conn    *websocket.Conn
	OrderID string
}

type statusEvent struct {
	OrderID string              `json:"orderId"`
	Status  entity.OrderStatus  `json:"status"`
	Update  entity.StatusUpdate `json:"update"`
}

func NewOrderHub(orders *services.OrderService, log *zap.Logger) *OrderHub {
	return &OrderHub{
		clients:    make(map[string]map[*websocket.Conn]bool),
		broadcast:  make(chan statusEvent),
		register:   make(chan subscription),
		unregister: make(chan subscription),
		orders:     orders,
		log:        log,
	}
}

// NotifyStatus implementa services.StatusNotifier.
func (h *OrderHub) NotifyStatus(o *entity.Order, update entity.StatusUpdate) {
	h.broadcast <- statusEvent{OrderID: o.ID, Status: update.Status, Update: update}
}

// Run processa register/unregister/broadcast; roda numa goroutine própria.
func (h *OrderHub) Run() {
	for {
		select {
		case sub := <-h.register:
			h.mu.Lock()
			if h.clients[sub.OrderID] == nil {
				h.clients[sub.OrderID] = make(map[*websocket.Conn]bool)
			}
			h.clients[sub.OrderID][sub.Conn] = true
			h.mu.Unlock()

		case sub := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[sub.OrderID][sub.Conn]; ok {
				delete(h.clients[sub.OrderID], sub.Conn)
				sub.Conn.Close()
			}
			h.mu.Unlock()

		case ev := <-h.broadcast:
			h.mu.Lock()
			for conn := range h.clients[ev.OrderID] {
				if err := conn.WriteJSON(ev); err != nil {
					h.log.Warn("ws write error", zap.Error(err))
					conn.Close()
					delete(h.clients[ev.OrderID], conn)
				}
			}
			h.mu.Unlock()
		}
	}
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// WS route: /ws/orders/:id
func (h *OrderHub) HandleWebSocket(c *gin.Context) {
	orderID := c.Param("id")

	// o pedido precisa existir no histórico
	if _, err := h.orders.GetOrder(orderID); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "order not found"})
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.log.Warn("ws upgrade error", zap.Error(err))
		return
	}

	sub := subscription{Conn: conn, OrderID: orderID}
	h.register <- sub

	go h.drain(sub)
}

// drain mantém a conexão viva e detecta o fechamento pelo cliente; o feed é
// só de saída.
func (h *OrderHub) drain(sub subscription) {
	defer func() { h.unregister <- sub }()
	for {
		if _, _, err := sub.Conn.ReadMessage(); err != nil {
			return
		}
	}
}

package services

import (
	"sync"

	"github.com/AV-automacoes/restaurante-bom-prato/entity"
	"go.uber.org/zap"
)

// DeliveryFee taxa fixa de entrega, em centavos.
const DeliveryFee int64 = 200

// DeliveryFeeFor retorna a taxa para o tipo escolhido (retirada não paga).
func DeliveryFeeFor(t entity.DeliveryType) int64 {
	if t == entity.DeliveryEntrega {
		return DeliveryFee
	}
	return 0
}

// CartService guarda o carrinho aberto de cada sessão de dispositivo. O
// carrinho é estado efêmero; só o pedido fechado vai para o histórico.
type CartService struct {
	mu    sync.Mutex
	carts map[string][]entity.CartItem
	log   *zap.Logger
}

func NewCartService(log *zap.Logger) *CartService {
	return &CartService{carts: make(map[string][]entity.CartItem), log: log}
}

// Items returns a copy of the session's cart entries.
func (s *CartService) Items(sessionID string) []entity.CartItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	cur := s.carts[sessionID]
	out := make([]entity.CartItem, len(cur))
	copy(out, cur)
	return out
}

func (s *CartService) AddEntry(sessionID string, item entity.CartItem) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.carts[sessionID] = append(s.carts[sessionID], item)
	s.log.Info("cart entry added",
		zap.String("session", sessionID),
		zap.String("cartItemId", item.CartItemID),
		zap.Int64("unitPrice", item.UnitPrice))
}

// UpdateEntry substitui a entrada inteira (edição re-confirma a sessão de
// montagem, nunca altera seleções no lugar).
func (s *CartService) UpdateEntry(sessionID string, item entity.CartItem) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cur := s.carts[sessionID]
	for i := range cur {
		if cur[i].CartItemID == item.CartItemID {
			cur[i] = item
			return nil
		}
	}
	return ErrEntryNotFound
}

func (s *CartService) RemoveEntry(sessionID, cartItemID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cur := s.carts[sessionID]
	for i := range cur {
		if cur[i].CartItemID == cartItemID {
			s.carts[sessionID] = append(cur[:i], cur[i+1:]...)
			return nil
		}
	}
	return ErrEntryNotFound
}

// SetQuantity ajusta a quantidade; zero ou negativo remove a entrada.
func (s *CartService) SetQuantity(sessionID, cartItemID string, qty int) error {
	if qty <= 0 {
		return s.RemoveEntry(sessionID, cartItemID)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	cur := s.carts[sessionID]
	for i := range cur {
		if cur[i].CartItemID == cartItemID {
			cur[i].Quantity = qty
			return nil
		}
	}
	return ErrEntryNotFound
}

// Subtotal soma unitPrice × quantity de todas as entradas.
func (s *CartService) Subtotal(sessionID string) int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	var subtotal int64
	for _, it := range s.carts[sessionID] {
		subtotal += it.Total()
	}
	return subtotal
}

// TotalItems conta unidades no carrinho (para o badge do carrinho).
func (s *CartService) TotalItems(sessionID string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	var n int
	for _, it := range s.carts[sessionID] {
		n += it.Quantity
	}
	return n
}

func (s *CartService) FindEntry(sessionID, cartItemID string) (entity.CartItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, it := range s.carts[sessionID] {
		if it.CartItemID == cartItemID {
			return it, nil
		}
	}
	return entity.CartItem{}, ErrEntryNotFound
}

func (s *CartService) Clear(sessionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.carts, sessionID)
}

package services

import (
	"sync"
	"time"

	"go.uber.org/zap"
)

// StatusScheduler dispara callbacks atrasados de progressão de status. Cada
// pedido guarda seus timers para poder cancelar o que ainda não disparou
// (ex. quando o dono conclui o pedido manualmente).
type StatusScheduler struct {
	mu     sync.Mutex
	timers map[string][]*time.Timer
	log    *zap.Logger
}

func NewStatusScheduler(log *zap.Logger) *StatusScheduler {
	return &StatusScheduler{timers: make(map[string][]*time.Timer), log: log}
}

// Schedule agenda fn uma única vez após delay, amarrado ao pedido.
func (s *StatusScheduler) Schedule(orderID string, delay time.Duration, fn func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	t := time.AfterFunc(delay, fn)
	s.timers[orderID] = append(s.timers[orderID], t)
	s.log.Debug("status transition scheduled",
		zap.String("orderId", orderID),
		zap.Duration("delay", delay))
}

// Cancel derruba todos os timers pendentes do pedido.
func (s *StatusScheduler) Cancel(orderID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, t := range s.timers[orderID] {
		t.Stop()
	}
	delete(s.timers, orderID)
}

// Stop cancela tudo (shutdown).
func (s *StatusScheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for id, timers := range s.timers {
		for _, t := range timers {
			t.Stop()
		}
		delete(s.timers, id)
	}
}

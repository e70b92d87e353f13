package services

import (
	"github.com/AV-automacoes/restaurante-bom-prato/entity"
	"go.uber.org/zap"
)

// A sequência de status é fixa: realizado → aceito → [saiu para entrega →]
// entregue. Retirada pula a etapa de entrega. A máquina recusa transições
// fora de ordem em vez de confiar no chamador.

// CanAdvance reporta se a transição from → next é o próximo passo legal para
// o tipo de entrega.
func CanAdvance(deliveryType entity.DeliveryType, from, next entity.OrderStatus) bool {
	switch from {
	case entity.StatusPlaced:
		return next == entity.StatusAccepted
	case entity.StatusAccepted:
		if deliveryType == entity.DeliveryEntrega {
			return next == entity.StatusOutForDelivery
		}
		return next == entity.StatusDelivered
	case entity.StatusOutForDelivery:
		return next == entity.StatusDelivered
	}
	return false
}

// AdvanceStatus avança o pedido para next. Repetir o status atual é no-op
// idempotente (protege contra gatilhos duplicados); qualquer outra transição
// ilegal falha com ErrInvalidTransition. O histórico é append-only com
// timestamps monotônicos.
func (s *OrderService) AdvanceStatus(orderID string, next entity.OrderStatus) (*entity.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	o, err := s.GetOrder(orderID)
	if err != nil {
		return nil, err
	}

	if o.LastStatus() == next {
		return o, nil
	}
	if !CanAdvance(o.DeliveryType, o.Status, next) {
		return nil, ErrInvalidTransition
	}

	ts := s.now()
	if n := len(o.StatusHistory); n > 0 && ts.Before(o.StatusHistory[n-1].Timestamp) {
		ts = o.StatusHistory[n-1].Timestamp
	}
	update := entity.StatusUpdate{Status: next, Timestamp: ts}
	o.Status = next
	o.StatusHistory = append(o.StatusHistory, update)

	if err := s.History.Save(o); err != nil {
		return nil, err
	}

	s.log.Info("order status advanced",
		zap.String("orderId", o.ID),
		zap.String("status", string(next)))

	if s.Notifier != nil {
		s.Notifier.NotifyStatus(o, update)
	}
	if next == entity.StatusDelivered && s.Scheduler != nil {
		// nada mais vai disparar para este pedido
		s.Scheduler.Cancel(o.ID)
	}
	return o, nil
}

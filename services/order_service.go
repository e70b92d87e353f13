package services

import (
	"errors"
	"fmt"
	"math/rand"
	"regexp"
	"strings"
	"sync"
	"time"

	"github.com/AV-automacoes/restaurante-bom-prato/entity"
	"github.com/AV-automacoes/restaurante-bom-prato/repository"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Atrasos da progressão simulada de status depois do checkout.
const (
	DefaultAcceptedDelay       = 15 * time.Second
	DefaultOutForDeliveryDelay = 45 * time.Second
	DefaultDeliveredDelay      = 90 * time.Second

	estimatedDeliveryWindow = 35 * time.Minute
)

var displayIDPattern = regexp.MustCompile(`^#\d{6}$`)

// StatusNotifier recebe cada transição de status (hub de websocket).
type StatusNotifier interface {
	NotifyStatus(o *entity.Order, update entity.StatusUpdate)
}

// OrderService fecha pedidos a partir do carrinho, guarda o histórico,
// agenda a progressão simulada e aplica avaliações.
type OrderService struct {
	Cart     *CartService
	History  *repository.HistoryRepository
	Schedule *ScheduleService
	WhatsApp *WhatsAppService

	Scheduler *StatusScheduler
	Notifier  StatusNotifier // opcional

	AcceptedDelay       time.Duration
	OutForDeliveryDelay time.Duration
	DeliveredDelay      time.Duration

	// serializa os ciclos ler-alterar-salvar do histórico: o Save reescreve o
	// snapshot inteiro, então timer e admin não podem escrever em paralelo
	mu sync.Mutex

	log *zap.Logger
	now func() time.Time
}

func NewOrderService(
	cart *CartService,
	history *repository.HistoryRepository,
	schedule *ScheduleService,
	whatsapp *WhatsAppService,
	scheduler *StatusScheduler,
	log *zap.Logger,
) *OrderService {
	return &OrderService{
		Cart:                cart,
		History:             history,
		Schedule:            schedule,
		WhatsApp:            whatsapp,
		Scheduler:           scheduler,
		AcceptedDelay:       DefaultAcceptedDelay,
		OutForDeliveryDelay: DefaultOutForDeliveryDelay,
		DeliveredDelay:      DefaultDeliveredDelay,
		log:                 log,
		now:                 time.Now,
	}
}

// ----- DTOs -----

type CheckoutIn struct {
	DeliveryType  entity.DeliveryType  `json:"deliveryType" binding:"required"`
	PaymentMethod entity.PaymentMethod `json:"paymentMethod"`
	CashTendered  int64                `json:"cashTendered"` // centavos, 0 = não informado
	CustomerInfo  entity.CustomerInfo  `json:"customerInfo"`
}

type CheckoutOut struct {
	Order       *entity.Order `json:"order"`
	WhatsAppURL string        `json:"whatsappUrl"`
	PixKey      string        `json:"pixKey,omitempty"`
}

// Checkout congela o carrinho em um pedido imutável. O status aberto/fechado
// é consultado na hora da chamada, nunca em cache.
func (s *OrderService) Checkout(sessionID string, in *CheckoutIn) (*CheckoutOut, error) {
	items := s.Cart.Items(sessionID)
	if len(items) == 0 {
		return nil, ErrEmptyCart
	}
	if !s.Schedule.IsOpen() {
		return nil, ErrClosed
	}

	if fields := validateCheckout(in); len(fields) > 0 {
		return nil, &ValidationError{Fields: fields}
	}

	var subtotal int64
	for _, it := range items {
		subtotal += it.Total()
	}
	fee := DeliveryFeeFor(in.DeliveryType)
	total := subtotal + fee

	if in.PaymentMethod == entity.PaymentDinheiro && in.CashTendered > 0 && in.CashTendered < total {
		return nil, &ValidationError{Fields: []string{"cashTendered"}}
	}
	var change int64
	if in.PaymentMethod == entity.PaymentDinheiro && in.CashTendered > total {
		change = in.CashTendered - total
	}

	now := s.now()
	order := &entity.Order{
		ID:            uuid.NewString(),
		DisplayID:     fmt.Sprintf("#%06d", 100000+rand.Intn(900000)),
		CreatedAt:     now,
		SessionID:     sessionID,
		Items:         items,
		DeliveryType:  in.DeliveryType,
		Subtotal:      subtotal,
		DeliveryFee:   fee,
		Total:         total,
		PaymentMethod: in.PaymentMethod,
		CashTendered:  in.CashTendered,
		Change:        change,
		CustomerInfo:  in.CustomerInfo,
		Status:        entity.StatusPlaced,
		StatusHistory: []entity.StatusUpdate{
			{Status: entity.StatusPlaced, Timestamp: now},
		},
		EstimatedDelivery: now.Add(estimatedDeliveryWindow),
	}

	// falha de persistência não bloqueia o checkout; vira "histórico não salvo"
	if err := s.History.Save(order); err != nil {
		s.log.Warn("order history not saved", zap.String("orderId", order.ID), zap.Error(err))
	}

	s.Cart.Clear(sessionID)
	s.scheduleProgression(order)

	s.log.Info("order placed",
		zap.String("orderId", order.ID),
		zap.String("displayId", order.DisplayID),
		zap.Int64("total", order.Total),
		zap.String("deliveryType", string(order.DeliveryType)))

	out := &CheckoutOut{Order: order, WhatsAppURL: s.WhatsApp.Link(order)}
	if order.PaymentMethod == entity.PaymentPix {
		out.PixKey = s.WhatsApp.Number
	}
	return out, nil
}

func validateCheckout(in *CheckoutIn) []string {
	var fields []string
	if !in.DeliveryType.Valid() {
		fields = append(fields, "deliveryType")
	}
	if strings.TrimSpace(in.CustomerInfo.Name) == "" {
		fields = append(fields, "name")
	}
	if strings.TrimSpace(in.CustomerInfo.Phone) == "" {
		fields = append(fields, "phone")
	}
	if in.DeliveryType == entity.DeliveryEntrega {
		if strings.TrimSpace(in.CustomerInfo.StreetAndNumber) == "" {
			fields = append(fields, "streetAndNumber")
		}
		if strings.TrimSpace(in.CustomerInfo.Neighborhood) == "" {
			fields = append(fields, "neighborhood")
		}
	}
	if !in.PaymentMethod.Valid() {
		fields = append(fields, "paymentMethod")
	}
	return fields
}

// scheduleProgression agenda a simulação: aceito, saiu para entrega (só
// entrega) e entregue. Os timers ficam cancel-áveis por pedido.
func (s *OrderService) scheduleProgression(o *entity.Order) {
	if s.Scheduler == nil {
		return
	}
	id := o.ID
	s.Scheduler.Schedule(id, s.AcceptedDelay, func() { s.advanceScheduled(id, entity.StatusAccepted) })
	if o.DeliveryType == entity.DeliveryEntrega {
		s.Scheduler.Schedule(id, s.OutForDeliveryDelay, func() { s.advanceScheduled(id, entity.StatusOutForDelivery) })
	}
	s.Scheduler.Schedule(id, s.DeliveredDelay, func() { s.advanceScheduled(id, entity.StatusDelivered) })
}

func (s *OrderService) advanceScheduled(orderID string, next entity.OrderStatus) {
	if _, err := s.AdvanceStatus(orderID, next); err != nil {
		// transição já feita manualmente ou pedido fora do histórico
		s.log.Debug("scheduled transition skipped",
			zap.String("orderId", orderID),
			zap.String("next", string(next)),
			zap.Error(err))
	}
}

// ----- histórico -----

// ListHistory devolve os pedidos da sessão do aparelho; o histórico de uma
// sessão nunca aparece para outra.
func (s *OrderService) ListHistory(sessionID string) ([]entity.Order, error) {
	return s.History.LoadBySession(sessionID)
}

func (s *OrderService) GetOrder(orderID string) (*entity.Order, error) {
	o, err := s.History.Get(orderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}
	return o, nil
}

// LookupByDisplayID busca pelo id visível "#123456"; formato errado é
// ValidationError, não achado é ErrOrderNotFound.
func (s *OrderService) LookupByDisplayID(displayID string) (*entity.Order, error) {
	if !displayIDPattern.MatchString(displayID) {
		return nil, &ValidationError{Fields: []string{"displayId"}}
	}
	o, err := s.History.FindByDisplayID(displayID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}
	return o, nil
}

// ----- avaliação -----

// AttachRating anexa nota 1–5 e comentário, uma única vez por pedido.
func (s *OrderService) AttachRating(orderID string, rating int, review string) (*entity.Order, error) {
	if rating < 1 || rating > 5 {
		return nil, &ValidationError{Fields: []string{"rating"}}
	}

	// mesmo ciclo ler-alterar-salvar dos avanços de status
	s.mu.Lock()
	defer s.mu.Unlock()

	o, err := s.GetOrder(orderID)
	if err != nil {
		return nil, err
	}
	if o.Rating != 0 {
		return nil, ErrAlreadyRated
	}
	o.Rating = rating
	o.Review = review
	if err := s.History.Save(o); err != nil {
		return nil, err
	}
	return o, nil
}

// ----- pedir de novo -----

// Reorder copia os itens de um pedido antigo para o carrinho, com ids novos.
func (s *OrderService) Reorder(sessionID, orderID string) ([]entity.CartItem, error) {
	o, err := s.GetOrder(orderID)
	if err != nil {
		return nil, err
	}
	added := make([]entity.CartItem, 0, len(o.Items))
	for _, it := range o.Items {
		it.CartItemID = uuid.NewString()
		s.Cart.AddEntry(sessionID, it)
		added = append(added, it)
	}
	return added, nil
}

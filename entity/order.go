package entity

import "time"

type OrderStatus string

const (
	StatusPlaced         OrderStatus = "Pedido realizado"
	StatusAccepted       OrderStatus = "Pedido aceito"
	StatusOutForDelivery OrderStatus = "Saiu para entrega"
	StatusDelivered      OrderStatus = "Pedido entregue"
)

type StatusUpdate struct {
	Status    OrderStatus `json:"status"`
	Timestamp time.Time   `json:"timestamp"`
}

// Order é o registro imutável do checkout. Depois de criado só mudam o
// status (histórico append-only) e a avaliação, anexada uma única vez.
type Order struct {
	ID        string    `json:"id"`
	DisplayID string    `json:"displayId"` // user-facing, "#123456"
	CreatedAt time.Time `json:"createdAt"`

	// sessão de dispositivo dona do pedido; vive em coluna própria do
	// registro, nunca na resposta
	SessionID string `json:"-"`

	Items []CartItem `json:"items"`

	DeliveryType DeliveryType `json:"deliveryType"`
	Subtotal     int64        `json:"subtotal"`
	DeliveryFee  int64        `json:"deliveryFee"` // 0 para retirada
	Total        int64        `json:"total"`

	PaymentMethod PaymentMethod `json:"paymentMethod"`
	CashTendered  int64         `json:"cashTendered,omitempty"` // 0 quando não informado
	Change        int64         `json:"change,omitempty"`

	CustomerInfo CustomerInfo `json:"customerInfo"`

	Status        OrderStatus    `json:"status"`
	StatusHistory []StatusUpdate `json:"statusHistory"`

	Rating int    `json:"rating,omitempty"` // 0 = ainda sem avaliação
	Review string `json:"review,omitempty"`

	EstimatedDelivery time.Time `json:"estimatedDelivery"`
}

// LastStatus returns the most recent entry of the status history.
func (o *Order) LastStatus() OrderStatus {
	if len(o.StatusHistory) == 0 {
		return o.Status
	}
	return o.StatusHistory[len(o.StatusHistory)-1].Status
}

package entity

import "time"

// OrderRecord é a linha persistida do histórico de pedidos. O pedido inteiro
// fica serializado em Data (semântica get/set, sem consultas por campo).
type OrderRecord struct {
	ID      uint   `gorm:"primaryKey" json:"-"`
	OrderID string `gorm:"uniqueIndex;size:64" json:"orderId"`

	SessionID string `gorm:"index;size:64" json:"-"`

	DisplayID string    `gorm:"index;size:16" json:"displayId"`
	PlacedAt  time.Time `gorm:"index" json:"placedAt"`

	Data []byte `gorm:"type:blob" json:"-"`
}

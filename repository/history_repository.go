package repository

import (
	"encoding/json"

	"github.com/AV-automacoes/restaurante-bom-prato/entity"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// HistoryLimit quantos pedidos recentes ficam guardados por sessão.
const HistoryLimit = 10

// HistoryRepository persiste o histórico de pedidos em SQLite. O pedido vai
// serializado inteiro na coluna Data (get/set, sem consulta por campo), e o
// histórico de cada sessão é podado para os HistoryLimit mais recentes.
type HistoryRepository struct {
	DB *gorm.DB
}

func NewHistoryRepository(db *gorm.DB) *HistoryRepository {
	return &HistoryRepository{DB: db}
}

// Save grava ou substitui o snapshot do pedido e poda o excedente da sessão.
func (r *HistoryRepository) Save(o *entity.Order) error {
	data, err := json.Marshal(o)
	if err != nil {
		return err
	}

	rec := entity.OrderRecord{
		OrderID:   o.ID,
		SessionID: o.SessionID,
		DisplayID: o.DisplayID,
		PlacedAt:  o.CreatedAt,
		Data:      data,
	}

	return r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "order_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"data"}),
		}).Create(&rec).Error; err != nil {
			return err
		}
		return r.prune(tx, rec.SessionID)
	})
}

// prune apaga os pedidos da sessão além dos HistoryLimit mais recentes.
func (r *HistoryRepository) prune(tx *gorm.DB, sessionID string) error {
	var keep []uint
	if err := tx.Model(&entity.OrderRecord{}).
		Select("id").
		Where("session_id = ?", sessionID).
		Order("placed_at DESC").
		Limit(HistoryLimit).
		Scan(&keep).Error; err != nil {
		return err
	}
	if len(keep) < HistoryLimit {
		return nil
	}
	return tx.Where("session_id = ? AND id NOT IN ?", sessionID, keep).
		Delete(&entity.OrderRecord{}).Error
}

// decode reconstrói o pedido a partir da linha; o SessionID volta da coluna,
// não do blob.
func decode(rec entity.OrderRecord) (*entity.Order, error) {
	var o entity.Order
	if err := json.Unmarshal(rec.Data, &o); err != nil {
		return nil, err
	}
	o.SessionID = rec.SessionID
	return &o, nil
}

// LoadBySession devolve os pedidos da sessão, do mais recente para o mais
// antigo.
func (r *HistoryRepository) LoadBySession(sessionID string) ([]entity.Order, error) {
	var recs []entity.OrderRecord
	if err := r.DB.Where("session_id = ?", sessionID).
		Order("placed_at DESC").
		Limit(HistoryLimit).
		Find(&recs).Error; err != nil {
		return nil, err
	}
	out := make([]entity.Order, 0, len(recs))
	for _, rec := range recs {
		o, err := decode(rec)
		if err != nil {
			return nil, err
		}
		out = append(out, *o)
	}
	return out, nil
}

// Get busca um pedido pelo id interno.
func (r *HistoryRepository) Get(orderID string) (*entity.Order, error) {
	var rec entity.OrderRecord
	if err := r.DB.Where("order_id = ?", orderID).First(&rec).Error; err != nil {
		return nil, err
	}
	return decode(rec)
}

// FindByDisplayID busca pelo id visível ao cliente ("#123456").
func (r *HistoryRepository) FindByDisplayID(displayID string) (*entity.Order, error) {
	var rec entity.OrderRecord
	if err := r.DB.Where("display_id = ?", displayID).First(&rec).Error; err != nil {
		return nil, err
	}
	return decode(rec)
}

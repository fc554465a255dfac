package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Almacen-api/internal/domain/entity"
	"github.com/jhoicas/Almacen-api/internal/domain/stock"
)

// SaveMovementRequest body para POST/PUT /api/movements.
// Las fechas viajan como "YYYY-MM-DD"; los campos opcionales ausentes se
// omiten. TotalValue solo tiene sentido en entradas (costo total de la
// recepción, no precio unitario), igual que ExpiryDate.
type SaveMovementRequest struct {
	Kind       string           `json:"kind"` // IN | OUT
	Date       string           `json:"date"`
	Product    string           `json:"product"`
	Unit       string           `json:"unit"` // KG | UNIT
	Quantity   decimal.Decimal  `json:"quantity"`
	LotRef     string           `json:"lot_ref,omitempty"`
	ClassCode  string           `json:"class_code,omitempty"`
	Owner      string           `json:"owner,omitempty"`
	SubOwner   string           `json:"sub_owner,omitempty"`
	TotalValue *decimal.Decimal `json:"total_value,omitempty"`
	ExpiryDate string           `json:"expiry_date,omitempty"`
}

// MovementDTO representación de un movimiento en respuestas.
type MovementDTO struct {
	ID           string           `json:"id"`
	Kind         string           `json:"kind"`
	Date         string           `json:"date"`
	Product      string           `json:"product"`
	Unit         string           `json:"unit"`
	Quantity     decimal.Decimal  `json:"quantity"`
	LotRef       string           `json:"lot_ref,omitempty"`
	ClassCode    string           `json:"class_code,omitempty"`
	Owner        string           `json:"owner,omitempty"`
	SubOwner     string           `json:"sub_owner,omitempty"`
	TotalValue   *decimal.Decimal `json:"total_value,omitempty"`
	ExpiryDate   string           `json:"expiry_date,omitempty"`
	ExpiryStatus string           `json:"expiry_status,omitempty"` // CRITICAL | WARNING | NONE
}

// HistoryQuery filtros del histórico de movimientos (query string).
type HistoryQuery struct {
	Owner    string `query:"owner"`
	SubOwner string `query:"sub_owner"`
	Lot      string `query:"lot"`
	From     string `query:"from"`
	To       string `query:"to"`
}

// HistoryResponse histórico particionado en entradas y salidas, cada lista
// ordenada por fecha descendente.
type HistoryResponse struct {
	Ins  []MovementDTO `json:"ins"`
	Outs []MovementDTO `json:"outs"`
}

// LookupsResponse listas maestras para filtros y formulario.
type LookupsResponse struct {
	Products  []string `json:"products"`
	Owners    []string `json:"owners"`
	SubOwners []string `json:"sub_owners"`
}

// FromMovement mapea la entidad al DTO (sin clasificar caducidad).
func FromMovement(m *entity.Movement) MovementDTO {
	d := MovementDTO{
		ID:        m.ID,
		Kind:      m.Kind,
		Date:      m.Date.Format(DateFormat),
		Product:   m.Product,
		Unit:      m.Unit,
		Quantity:  m.Quantity,
		LotRef:    m.LotRef,
		ClassCode: m.ClassCode,
		Owner:     m.Owner,
		SubOwner:  m.SubOwner,
	}
	if m.TotalValue != nil {
		v := *m.TotalValue
		d.TotalValue = &v
	}
	if m.ExpiryDate != nil {
		d.ExpiryDate = m.ExpiryDate.Format(DateFormat)
	}
	return d
}

// MovementsToDTO mapea los movimientos y anota el tramo de caducidad de las
// entradas respecto a la fecha de referencia.
func MovementsToDTO(ms []entity.Movement, today time.Time) []MovementDTO {
	out := make([]MovementDTO, 0, len(ms))
	for i := range ms {
		d := FromMovement(&ms[i])
		if ms[i].IsReceipt() && ms[i].ExpiryDate != nil {
			d.ExpiryStatus = string(stock.ClassifyExpiry(ms[i].ExpiryDate, today))
		}
		out = append(out, d)
	}
	return out
}

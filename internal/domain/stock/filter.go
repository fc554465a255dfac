package stock

import (
	"sort"
	"strings"
	"time"

	"github.com/jhoicas/Almacen-api/internal/domain/entity"
)

// HistoryFilter delimita el histórico de movimientos mostrado/exportado.
// A diferencia del filtro de saldos, aquí la ventana de fechas [From, To] es
// inclusiva por ambos extremos. Owner/SubOwner vacíos = todos; LotQuery busca
// por subcadena sin distinguir mayúsculas.
type HistoryFilter struct {
	Owner    string
	SubOwner string
	LotQuery string
	From     time.Time
	To       time.Time
}

// FilterMovements devuelve los movimientos que satisfacen el filtro,
// ordenados por fecha descendente y particionados en entradas y salidas.
func FilterMovements(movements []entity.Movement, f HistoryFilter) (ins, outs []entity.Movement) {
	lotQuery := strings.ToUpper(strings.TrimSpace(f.LotQuery))

	var matched []entity.Movement
	for i := range movements {
		m := &movements[i]
		if !f.From.IsZero() && m.Date.Before(f.From) {
			continue
		}
		if !f.To.IsZero() && m.Date.After(f.To) {
			continue
		}
		if f.Owner != "" && m.Owner != f.Owner {
			continue
		}
		if f.SubOwner != "" && m.SubOwner != f.SubOwner {
			continue
		}
		if lotQuery != "" && !strings.Contains(strings.ToUpper(m.LotRef), lotQuery) {
			continue
		}
		matched = append(matched, *m)
	}

	sort.SliceStable(matched, func(i, j int) bool {
		return matched[i].Date.After(matched[j].Date)
	})

	for _, m := range matched {
		if m.IsReceipt() {
			ins = append(ins, m)
		} else {
			outs = append(outs, m)
		}
	}
	return ins, outs
}

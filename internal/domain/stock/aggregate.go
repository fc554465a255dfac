package stock

import (
	"sort"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/jhoicas/Almacen-api/internal/domain/entity"
)

// Epsilon es el umbral de cantidad por debajo del cual un saldo se considera
// cerrado (ruido de redondeo) y se excluye del resultado.
var Epsilon = decimal.RequireFromString("0.001")

// noDim es el marcador de dimensión ausente en los saldos presentados.
const noDim = "-"

// Filter delimita el cálculo de saldos. Owner/SubOwner vacíos significan
// "todos". To acota por arriba la fecha admitida; no existe cota inferior:
// el saldo es acumulado a la fecha, no un delta de ventana (el histórico de
// movimientos con ventana [From, To] lo produce FilterMovements, aparte).
type Filter struct {
	Owner         string
	SubOwner      string
	To            time.Time
	SeparateYears bool
}

// Bucket es el saldo vivo de una clave de agregación a la fecha de corte.
// Es efímero: se reconstruye entero en cada pasada y no guarda referencias
// al libro.
type Bucket struct {
	Product        string
	Unit           string
	Owner          string
	SubOwner       string
	ClassCode      string
	Year           string // "-" si no se separa por año
	CurrentQty     decimal.Decimal
	CurrentValue   decimal.Decimal
	SumReceivedQty decimal.Decimal
}

type bucketKey struct {
	product, unit, owner, subOwner, classCode, year string
}

// Aggregate calcula los saldos por producto/propietario/año a la fecha de
// corte del filtro. lotCosts debe provenir de ResolveLotCosts sobre el libro
// completo: las salidas se valoran y se atribuyen al año de llegada de su
// lote a través de él.
//
// Una salida contra un lote desconocido descuenta cantidad pero no valor.
func Aggregate(movements []entity.Movement, f Filter, lotCosts map[LotKey]*LotCost) []Bucket {
	buckets := make(map[bucketKey]*Bucket)
	var order []bucketKey

	for i := range movements {
		m := &movements[i]
		if !admit(m, f) {
			continue
		}

		lc := lotCosts[LotKeyFor(m)]

		year := noDim
		if f.SeparateYears {
			if m.IsReceipt() {
				year = m.Year()
			} else if lc != nil {
				year = lc.ArrivalYear
			} else {
				// Salida sin recepción conocida: cae en su propio año.
				year = m.Year()
			}
		}

		key := bucketKey{
			product:   m.Product,
			unit:      m.Unit,
			owner:     orDash(m.Owner),
			subOwner:  orDash(m.SubOwner),
			classCode: orDash(m.ClassCode),
			year:      year,
		}
		b, ok := buckets[key]
		if !ok {
			b = &Bucket{
				Product:   key.product,
				Unit:      key.unit,
				Owner:     key.owner,
				SubOwner:  key.subOwner,
				ClassCode: key.classCode,
				Year:      key.year,
			}
			buckets[key] = b
			order = append(order, key)
		}

		if m.IsReceipt() {
			b.CurrentQty = b.CurrentQty.Add(m.Quantity)
			b.CurrentValue = b.CurrentValue.Add(m.ValueOrZero())
			b.SumReceivedQty = b.SumReceivedQty.Add(m.Quantity)
		} else {
			b.CurrentQty = b.CurrentQty.Sub(m.Quantity)
			if lc != nil {
				b.CurrentValue = b.CurrentValue.Sub(m.Quantity.Mul(lc.UnitPrice))
			}
		}
	}

	// Suprime saldos residuales (|qty| <= epsilon) y artefactos de salidas
	// puras sin recepción que las financie.
	live := make([]Bucket, 0, len(order))
	for _, key := range order {
		b := buckets[key]
		if b.CurrentQty.Abs().LessThanOrEqual(Epsilon) || !b.SumReceivedQty.IsPositive() {
			continue
		}
		live = append(live, *b)
	}

	sortBuckets(live, f.SeparateYears)
	return live
}

func admit(m *entity.Movement, f Filter) bool {
	if !f.To.IsZero() && m.Date.After(f.To) {
		return false
	}
	if f.Owner != "" && m.Owner != f.Owner {
		return false
	}
	if f.SubOwner != "" && m.SubOwner != f.SubOwner {
		return false
	}
	return true
}

func orDash(s string) string {
	if s == "" {
		return noDim
	}
	return s
}

// sortBuckets ordena: unidades de peso antes que conteos; con separación por
// año, año descendente; en lo demás, producto ascendente con colación
// francesa (los nombres de producto vienen del catálogo legado en francés).
func sortBuckets(buckets []Bucket, separateYears bool) {
	coll := collate.New(language.French)
	sort.SliceStable(buckets, func(i, j int) bool {
		a, b := &buckets[i], &buckets[j]
		if (a.Unit == entity.UnitKG) != (b.Unit == entity.UnitKG) {
			return a.Unit == entity.UnitKG
		}
		if separateYears && a.Year != b.Year {
			return strings.Compare(a.Year, b.Year) > 0
		}
		return coll.CompareString(a.Product, b.Product) < 0
	})
}

package stock

import "github.com/shopspring/decimal"

// YearAll es la clave de grupo de año cuando no se separa por año.
const YearAll = "ALL"

// Report es la jerarquía propietario → cliente → año con subtotales
// coherentes. La construyen por igual la vista en pantalla y las
// exportaciones: mismos datos, mismos totales.
//
// El orden de los grupos es el de primera aparición en los saldos de
// entrada (estructura asociativa ordenada explícita, no un mapa iterado);
// dentro de un año se conserva el orden del agregador.
type Report struct {
	SeparateYears bool
	Owners        []*OwnerGroup
	GrandTotal    decimal.Decimal
}

// OwnerGroup agrupa los saldos de un propietario (empresa).
type OwnerGroup struct {
	Owner      string
	SubOwners  []*SubOwnerGroup
	TotalValue decimal.Decimal
}

// SubOwnerGroup agrupa los saldos de un cliente dentro de un propietario.
// Rollups solo se emite cuando hay separación por año y el cliente abarca
// más de un año: una fila por producto sumando cantidad y valor entre años.
type SubOwnerGroup struct {
	SubOwner   string
	Years      []*YearGroup
	Rollups    []RollupRow
	TotalValue decimal.Decimal
}

// YearGroup contiene los saldos de un año (o de YearAll sin separación).
type YearGroup struct {
	Year  string
	Items []Bucket
}

// RollupRow es el recapitulativo por producto de un cliente multi-año.
type RollupRow struct {
	Product string
	Unit    string
	Qty     decimal.Decimal
	Value   decimal.Decimal
}

// BuildReport organiza los saldos del agregador en la jerarquía de
// presentación y calcula subtotal por cliente, subtotal por propietario y
// total general. Pantalla y exportaciones deben invocarla con los mismos
// saldos para obtener totales idénticos.
func BuildReport(buckets []Bucket, separateYears bool) *Report {
	r := &Report{SeparateYears: separateYears}
	ownerIdx := make(map[string]*OwnerGroup)
	subIdx := make(map[[2]string]*SubOwnerGroup)
	yearIdx := make(map[[3]string]*YearGroup)

	for _, b := range buckets {
		og, ok := ownerIdx[b.Owner]
		if !ok {
			og = &OwnerGroup{Owner: b.Owner}
			ownerIdx[b.Owner] = og
			r.Owners = append(r.Owners, og)
		}

		sk := [2]string{b.Owner, b.SubOwner}
		sg, ok := subIdx[sk]
		if !ok {
			sg = &SubOwnerGroup{SubOwner: b.SubOwner}
			subIdx[sk] = sg
			og.SubOwners = append(og.SubOwners, sg)
		}

		year := YearAll
		if separateYears {
			year = b.Year
		}
		yk := [3]string{b.Owner, b.SubOwner, year}
		yg, ok := yearIdx[yk]
		if !ok {
			yg = &YearGroup{Year: year}
			yearIdx[yk] = yg
			sg.Years = append(sg.Years, yg)
		}
		yg.Items = append(yg.Items, b)

		sg.TotalValue = sg.TotalValue.Add(b.CurrentValue)
		og.TotalValue = og.TotalValue.Add(b.CurrentValue)
		r.GrandTotal = r.GrandTotal.Add(b.CurrentValue)
	}

	if separateYears {
		for _, og := range r.Owners {
			for _, sg := range og.SubOwners {
				if len(sg.Years) > 1 {
					sg.Rollups = rollupProducts(sg.Years)
				}
			}
		}
	}
	return r
}

// rollupProducts suma cantidad y valor por (producto, unidad) a través de los
// años de un cliente, en orden de primera aparición.
func rollupProducts(years []*YearGroup) []RollupRow {
	idx := make(map[[2]string]int)
	var rows []RollupRow
	for _, yg := range years {
		for _, b := range yg.Items {
			k := [2]string{b.Product, b.Unit}
			i, ok := idx[k]
			if !ok {
				i = len(rows)
				idx[k] = i
				rows = append(rows, RollupRow{Product: b.Product, Unit: b.Unit})
			}
			rows[i].Qty = rows[i].Qty.Add(b.CurrentQty)
			rows[i].Value = rows[i].Value.Add(b.CurrentValue)
		}
	}
	return rows
}

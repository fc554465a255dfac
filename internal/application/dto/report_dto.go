package dto

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Almacen-api/internal/domain/stock"
)

// ReportQuery filtros del informe de stock (query string). Sin cota
// inferior: el saldo es acumulado a la fecha de corte.
type ReportQuery struct {
	Owner         string `query:"owner"`
	SubOwner      string `query:"sub_owner"`
	To            string `query:"to"`
	SeparateYears bool   `query:"separate_years"`
}

// ExportQuery filtros de exportación: los del informe más las opciones de
// presentación. From y Lot solo afectan a los anexos de histórico del PDF;
// el informe de saldos sigue siendo acumulado a la fecha de corte.
type ExportQuery struct {
	ReportQuery
	From           string `query:"from"`
	Lot            string `query:"lot"`
	ShowValues     bool   `query:"show_values"`
	IncludeHistory bool   `query:"include_history"` // solo PDF: anexos de histórico
}

// BucketDTO una línea de saldo disponible.
type BucketDTO struct {
	Product   string          `json:"product"`
	ClassCode string          `json:"class_code"`
	Owner     string          `json:"owner"`
	SubOwner  string          `json:"sub_owner"`
	Year      string          `json:"year"`
	Unit      string          `json:"unit"`
	Qty       decimal.Decimal `json:"qty"`
	Value     decimal.Decimal `json:"value"`
}

// RollupDTO recapitulativo por producto de un cliente multi-año.
type RollupDTO struct {
	Product string          `json:"product"`
	Unit    string          `json:"unit"`
	Qty     decimal.Decimal `json:"qty"`
	Value   decimal.Decimal `json:"value"`
}

// YearGroupDTO saldos de un año ("ALL" sin separación).
type YearGroupDTO struct {
	Year  string      `json:"year"`
	Items []BucketDTO `json:"items"`
}

// SubOwnerGroupDTO grupo de cliente con subtotal.
type SubOwnerGroupDTO struct {
	SubOwner   string          `json:"sub_owner"`
	Years      []YearGroupDTO  `json:"years"`
	Rollups    []RollupDTO     `json:"rollups,omitempty"`
	TotalValue decimal.Decimal `json:"total_value"`
}

// OwnerGroupDTO grupo de propietario con subtotal.
type OwnerGroupDTO struct {
	Owner      string             `json:"owner"`
	SubOwners  []SubOwnerGroupDTO `json:"sub_owners"`
	TotalValue decimal.Decimal    `json:"total_value"`
}

// StockReportResponse el informe jerárquico completo. Los mismos totales que
// consumen las exportaciones: un único constructor para ambos caminos.
type StockReportResponse struct {
	SeparateYears bool            `json:"separate_years"`
	Lines         int             `json:"lines"`
	Owners        []OwnerGroupDTO `json:"owners"`
	GrandTotal    decimal.Decimal `json:"grand_total"`
}

// FromReport mapea la jerarquía del motor al DTO de respuesta.
func FromReport(r *stock.Report) StockReportResponse {
	resp := StockReportResponse{
		SeparateYears: r.SeparateYears,
		GrandTotal:    r.GrandTotal,
		Owners:        make([]OwnerGroupDTO, 0, len(r.Owners)),
	}
	for _, og := range r.Owners {
		o := OwnerGroupDTO{Owner: og.Owner, TotalValue: og.TotalValue}
		for _, sg := range og.SubOwners {
			s := SubOwnerGroupDTO{SubOwner: sg.SubOwner, TotalValue: sg.TotalValue}
			for _, yg := range sg.Years {
				y := YearGroupDTO{Year: yg.Year, Items: make([]BucketDTO, 0, len(yg.Items))}
				for _, b := range yg.Items {
					y.Items = append(y.Items, BucketDTO{
						Product:   b.Product,
						ClassCode: b.ClassCode,
						Owner:     b.Owner,
						SubOwner:  b.SubOwner,
						Year:      b.Year,
						Unit:      b.Unit,
						Qty:       b.CurrentQty,
						Value:     b.CurrentValue,
					})
					resp.Lines++
				}
				s.Years = append(s.Years, y)
			}
			for _, ru := range sg.Rollups {
				s.Rollups = append(s.Rollups, RollupDTO{
					Product: ru.Product,
					Unit:    ru.Unit,
					Qty:     ru.Qty,
					Value:   ru.Value,
				})
			}
			o.SubOwners = append(o.SubOwners, s)
		}
		resp.Owners = append(resp.Owners, o)
	}
	return resp
}

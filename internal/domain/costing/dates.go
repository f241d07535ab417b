// Package costing contiene los servicios de dominio del motor de costeo y
// rentabilidad: resolución de ventanas de reporte, costo promedio ponderado
// por lote, velocidad de consumo y prorrateo de gastos compartidos.
package costing

import (
	"strings"
	"time"

	"github.com/jhoicas/importadora-api/internal/domain/entity"
)

// minPlausibleYear años anteriores se tratan como falla de parseo: el
// importador de órdenes legado emitía "1/1/1900" para fechas de pago vacías.
const minPlausibleYear = 2020

// Formatos que el importador de órdenes ha producido en la práctica.
// dd/mm/yyyy va antes que las variantes con guión para resolver primero el
// formato local (es-CO).
var paymentDateLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02",
	"02/01/2006 15:04",
	"02/01/2006",
	"2/1/2006",
	"02-01-2006",
	"2006/01/02",
}

// ParsePaymentDate interpreta la fecha de pago localizada de una venta.
// Nunca falla con pánico: texto ilegible devuelve (cero, false) y el llamador
// lo trata como "sin información".
func ParsePaymentDate(text string) (time.Time, bool) {
	s := strings.TrimSpace(text)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range paymentDateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// FirstQualifyingSaleDate devuelve la fecha de pago mínima parseable entre las
// ventas dadas, o nil si ninguna tiene fecha legible. Fechas con año anterior
// a minPlausibleYear se descartan como fallas de parseo.
func FirstQualifyingSaleDate(sales []entity.SaleRecord) *time.Time {
	var first *time.Time
	for _, s := range sales {
		t, ok := ParsePaymentDate(s.PaymentDateText)
		if !ok || t.Year() < minPlausibleYear {
			continue
		}
		if first == nil || t.Before(*first) {
			tt := t
			first = &tt
		}
	}
	return first
}

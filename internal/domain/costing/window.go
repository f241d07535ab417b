package costing

import (
	"math"
	"time"
)

const (
	// defaultWindowDays ventana cuando no hay rango explícito, ni ventas, ni
	// fecha de creación del producto.
	defaultWindowDays = 30
	// maxInferredDays tope de la ventana inferida desde la creación del
	// producto: un catálogo viejo sin ventas no debe diluir la velocidad a cero.
	maxInferredDays = 365
)

// Window es la ventana de reporte resuelta. Days siempre es >= 1, lo que
// garantiza que ningún consumidor divida por cero.
type Window struct {
	Start time.Time
	End   time.Time
	Days  int
}

// Contains indica si t cae dentro de la ventana (ambos extremos inclusive).
func (w Window) Contains(t time.Time) bool {
	return !t.Before(w.Start) && !t.After(w.End)
}

// ResolveWindow convierte el período solicitado en una ventana concreta.
//
// Reglas, en orden:
//  1. from y to explícitos: días = ceil(to-from), mínimo 1.
//  2. Solo from: el fin es "hoy".
//  3. Sin rango ("histórico") y con al menos una venta calificada: ancla en la
//     primera venta calificada (firstSale).
//  4. Sin ventas: min(maxInferredDays, días desde la creación del producto).
//  5. Sin ninguna información: defaultWindowDays.
func ResolveWindow(from, to *time.Time, createdAt time.Time, firstSale *time.Time, now time.Time) Window {
	if from != nil {
		end := now
		if to != nil {
			end = *to
		}
		return newWindow(*from, end)
	}

	if firstSale != nil {
		return newWindow(*firstSale, now)
	}

	if !createdAt.IsZero() && createdAt.Before(now) {
		days := ceilDays(createdAt, now)
		if days > maxInferredDays {
			days = maxInferredDays
		}
		if days < 1 {
			days = 1
		}
		return Window{Start: now.AddDate(0, 0, -days), End: now, Days: days}
	}

	return Window{
		Start: now.AddDate(0, 0, -defaultWindowDays),
		End:   now,
		Days:  defaultWindowDays,
	}
}

func newWindow(start, end time.Time) Window {
	days := ceilDays(start, end)
	if days < 1 {
		days = 1
	}
	return Window{Start: start, End: end, Days: days}
}

// ceilDays días entre start y end redondeados hacia arriba.
func ceilDays(start, end time.Time) int {
	return int(math.Ceil(end.Sub(start).Hours() / 24))
}

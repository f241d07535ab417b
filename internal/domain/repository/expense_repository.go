package repository

import (
	"context"
	"time"

	"github.com/jhoicas/importadora-api/internal/domain/entity"
)

// ExpenseRepository define el puerto de lectura del libro de gastos (DIP).
type ExpenseRepository interface {
	// ListExpenses devuelve los gastos de los tipos dados cuya fecha cae en
	// [from, to]. A diferencia de las ventas, los gastos sí tienen fecha
	// tipada, así que el rango se delega a la consulta.
	ListExpenses(ctx context.Context, types []string, from, to time.Time) ([]entity.ExpenseRecord, error)
}

package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/importadora-api/internal/domain/entity"
	"github.com/jhoicas/importadora-api/internal/domain/repository"
)

var _ repository.ExpenseRepository = (*ExpenseRepo)(nil)

// ExpenseRepo adaptador de lectura del libro de gastos indirectos.
type ExpenseRepo struct {
	pool *pgxpool.Pool
}

// NewExpenseRepository construye el adaptador.
func NewExpenseRepository(pool *pgxpool.Pool) *ExpenseRepo {
	return &ExpenseRepo{pool: pool}
}

// ListExpenses gastos de los tipos dados dentro del rango [from, to].
// product_id nulo (gasto compartido) se devuelve como cadena vacía.
func (r *ExpenseRepo) ListExpenses(
	ctx context.Context,
	types []string,
	from, to time.Time,
) ([]entity.ExpenseRecord, error) {
	const query = `
	SELECT
	    id,
	    date,
	    type,
	    COALESCE(amount_local, 0)  AS amount_local,
	    COALESCE(product_id, '')   AS product_id
	FROM expenses
	WHERE type = ANY($1)
	  AND date BETWEEN $2 AND $3
	ORDER BY date, id`

	rows, err := r.pool.Query(ctx, query, types, from, to)
	if err != nil {
		return nil, fmt.Errorf("expenses.ListExpenses: %w", err)
	}
	defer rows.Close()

	var expenses []entity.ExpenseRecord
	for rows.Next() {
		var e entity.ExpenseRecord
		if err := rows.Scan(
			&e.ID,
			&e.Date,
			&e.Type,
			&e.AmountLocal,
			&e.ProductID,
		); err != nil {
			return nil, fmt.Errorf("expenses.ListExpenses scan: %w", err)
		}
		expenses = append(expenses, e)
	}
	return expenses, rows.Err()
}

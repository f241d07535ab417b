package costing_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/importadora-api/internal/domain/costing"
	"github.com/jhoicas/importadora-api/internal/domain/entity"
)

var testNow = time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)

// TestResolveWindow_RangoExplicito días = ceil(to-from), mínimo 1.
func TestResolveWindow_RangoExplicito(t *testing.T) {
	from := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, 6, 11, 0, 0, 0, 0, time.UTC)

	w := costing.ResolveWindow(&from, &to, time.Time{}, nil, testNow)

	assert.Equal(t, 10, w.Days)
	assert.Equal(t, from, w.Start)
	assert.Equal(t, to, w.End)
}

// TestResolveWindow_PisoDeUnDia from = to nunca produce ventana de 0 días:
// garantía de no división por cero aguas abajo.
func TestResolveWindow_PisoDeUnDia(t *testing.T) {
	d := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)

	w := costing.ResolveWindow(&d, &d, time.Time{}, nil, testNow)

	assert.Equal(t, 1, w.Days, "una ventana de un solo día debe valer 1, nunca 0")
}

// TestResolveWindow_AnclaEnPrimeraVenta sin rango explícito la ventana
// histórica ancla en la primera venta calificada.
func TestResolveWindow_AnclaEnPrimeraVenta(t *testing.T) {
	firstSale := time.Date(2026, 8, 10, 0, 0, 0, 0, time.UTC)
	created := time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)

	w := costing.ResolveWindow(nil, nil, created, &firstSale, testNow)

	assert.Equal(t, firstSale, w.Start)
	assert.Equal(t, 21, w.Days, "ceil(20.5 días) = 21")
}

// TestResolveWindow_SinVentasTopa365 sin ventas la ventana se infiere desde la
// creación del producto, con tope de 365 días.
func TestResolveWindow_SinVentasTopa365(t *testing.T) {
	created := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC) // hace años

	w := costing.ResolveWindow(nil, nil, created, nil, testNow)

	assert.Equal(t, 365, w.Days)
}

// TestResolveWindow_SinInformacion sin rango, sin ventas y sin fecha de
// creación: 30 días por defecto.
func TestResolveWindow_SinInformacion(t *testing.T) {
	w := costing.ResolveWindow(nil, nil, time.Time{}, nil, testNow)

	assert.Equal(t, 30, w.Days)
	assert.Equal(t, testNow, w.End)
}

// TestFirstQualifyingSaleDate_SaltaFechasIlegibles las fechas malformadas y
// los años implausibles (< 2020, típicos del importador legado) se excluyen
// del escaneo de mínimo.
func TestFirstQualifyingSaleDate_SaltaFechasIlegibles(t *testing.T) {
	sales := []entity.SaleRecord{
		{PaymentDateText: "no-es-fecha"},
		{PaymentDateText: "1/1/1900"}, // placeholder del importador, se descarta
		{PaymentDateText: "15/03/2026"},
		{PaymentDateText: "2026-02-01"},
		{PaymentDateText: ""},
	}

	first := costing.FirstQualifyingSaleDate(sales)
	require.NotNil(t, first)
	assert.Equal(t, time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC), *first)
}

func TestFirstQualifyingSaleDate_SinFechasLegibles(t *testing.T) {
	sales := []entity.SaleRecord{
		{PaymentDateText: "¿?"},
		{PaymentDateText: "31/31/2026"},
	}
	assert.Nil(t, costing.FirstQualifyingSaleDate(sales))
}

// TestParsePaymentDate_Formatos el parser acepta los formatos que el
// importador produce en la práctica y nunca entra en pánico con basura.
func TestParsePaymentDate_Formatos(t *testing.T) {
	cases := map[string]time.Time{
		"2026-03-15":          time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC),
		"15/03/2026":          time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC),
		"5/3/2026":            time.Date(2026, 3, 5, 0, 0, 0, 0, time.UTC),
		"2026-03-15 10:30:00": time.Date(2026, 3, 15, 10, 30, 0, 0, time.UTC),
	}
	for text, want := range cases {
		got, ok := costing.ParsePaymentDate(text)
		require.True(t, ok, "debe parsear %q", text)
		assert.Equal(t, want, got, "fecha de %q", text)
	}

	for _, garbage := range []string{"", "  ", "mañana", "99/99/9999"} {
		_, ok := costing.ParsePaymentDate(garbage)
		assert.False(t, ok, "%q debe tratarse como sin información", garbage)
	}
}

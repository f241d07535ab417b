package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/importadora-api/internal/application/dto"
	"github.com/jhoicas/importadora-api/internal/domain/repository"
)

// ProductHandler maneja el listado del catálogo (solo lectura en esta API).
type ProductHandler struct {
	productRepo repository.ProductRepository
}

// NewProductHandler construye el handler.
func NewProductHandler(productRepo repository.ProductRepository) *ProductHandler {
	return &ProductHandler{productRepo: productRepo}
}

// List devuelve el catálogo completo.
// GET /api/products
func (h *ProductHandler) List(c *fiber.Ctx) error {
	products, err := h.productRepo.ListProducts(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Code: "INTERNAL", Message: err.Error(),
		})
	}

	out := make([]dto.ProductDTO, 0, len(products))
	for _, p := range products {
		out = append(out, dto.ProductDTO{
			ID:             p.ID,
			SKU:            p.SKU,
			Name:           p.Name,
			StockQuantity:  p.StockQuantity,
			CostForeign:    p.CostForeign,
			DefaultFxRate:  p.DefaultFxRate,
			ListPriceLocal: p.ListPriceLocal,
			CreatedAt:      p.CreatedAt.Format("2006-01-02"),
		})
	}
	return c.JSON(out)
}

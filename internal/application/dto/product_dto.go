package dto

import "github.com/shopspring/decimal"

// CreateProductRequest borrador del formulario de alta de producto.
// Los montos llegan como string para validarlos como decimales exactos.
type CreateProductRequest struct {
	Name             string `json:"name"`
	Category         string `json:"category"`
	Description      string `json:"description,omitempty"`
	Tags             string `json:"tags,omitempty"` // separados por coma
	Price            string `json:"price"`
	Discount         string `json:"discount,omitempty"`
	DiscountCategory string `json:"discount_category,omitempty"`
}

// ProductResponse producto guardado.
type ProductResponse struct {
	ID               string          `json:"id"`
	Name             string          `json:"name"`
	Category         string          `json:"category"`
	Description      string          `json:"description,omitempty"`
	Tags             []string        `json:"tags,omitempty"`
	Price            decimal.Decimal `json:"price"`
	Discount         decimal.Decimal `json:"discount"`
	DiscountCategory string          `json:"discount_category,omitempty"`
}

// ProductListResponse listado de productos con las categorías disponibles
// para el formulario.
type ProductListResponse struct {
	Products           []ProductResponse `json:"products"`
	Categories         []string          `json:"categories"`
	DiscountCategories []string          `json:"discount_categories"`
}

package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Categorías fijas del formulario de alta de producto.
var (
	ProductCategories  = []string{"Grains", "Beverages", "Essentials", "Dry Fruits", "Spices", "Sweeteners"}
	DiscountCategories = []string{"Seasonal", "Loyalty", "Introductory", "Bulk"}
)

// ValidProductCategory indica si c es una categoría de producto conocida.
func ValidProductCategory(c string) bool {
	for _, v := range ProductCategories {
		if v == c {
			return true
		}
	}
	return false
}

// ValidDiscountCategory indica si c es una categoría de descuento conocida.
func ValidDiscountCategory(c string) bool {
	for _, v := range DiscountCategories {
		if v == c {
			return true
		}
	}
	return false
}

// Product producto de commodities guardado desde el formulario de alta.
type Product struct {
	ID               string
	Name             string
	Category         string
	Description      string
	Tags             []string
	Price            decimal.Decimal // precio de venta
	Discount         decimal.Decimal // porcentaje, 0–100
	DiscountCategory string
	CreatedAt        time.Time
}

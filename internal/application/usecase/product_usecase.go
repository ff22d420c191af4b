package usecase

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/slooze/commodity-admin/internal/application/dto"
	"github.com/slooze/commodity-admin/internal/application/notification"
	"github.com/slooze/commodity-admin/internal/domain"
	"github.com/slooze/commodity-admin/internal/domain/entity"
)

// ProductUseCase flujo de alta de productos del formulario de administración.
// Los borradores guardados viven en memoria (el catálogo real es un
// colaborador externo); guardar y descartar emiten notificaciones.
type ProductUseCase struct {
	mu       sync.Mutex
	center   *notification.Center
	products []entity.Product
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(center *notification.Center) *ProductUseCase {
	if center == nil {
		panic("usecase: NewProductUseCase requiere un NotificationCenter")
	}
	return &ProductUseCase{center: center}
}

// Create valida el borrador y lo guarda. Nombre, categoría y precio son
// obligatorios; el precio debe ser un decimal positivo. Un borrador inválido
// emite la notificación de error y devuelve domain.ErrInvalidInput.
func (uc *ProductUseCase) Create(in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" || in.Category == "" || strings.TrimSpace(in.Price) == "" {
		uc.center.Enqueue(notification.Input{
			Kind:        entity.NotificationError,
			Title:       "Missing details",
			Description: "Please fill the required fields: product name, category, and price.",
		}, 0)
		return nil, domain.ErrInvalidInput
	}
	if !entity.ValidProductCategory(in.Category) {
		return nil, fmt.Errorf("categoría %q: %w", in.Category, domain.ErrInvalidInput)
	}

	price, err := decimal.NewFromString(strings.TrimSpace(in.Price))
	if err != nil || price.IsNegative() || price.IsZero() {
		return nil, fmt.Errorf("precio %q: %w", in.Price, domain.ErrInvalidInput)
	}

	discount := decimal.Zero
	if strings.TrimSpace(in.Discount) != "" {
		discount, err = decimal.NewFromString(strings.TrimSpace(in.Discount))
		if err != nil || discount.IsNegative() || discount.GreaterThan(decimal.NewFromInt(100)) {
			return nil, fmt.Errorf("descuento %q: %w", in.Discount, domain.ErrInvalidInput)
		}
	}
	if in.DiscountCategory != "" && !entity.ValidDiscountCategory(in.DiscountCategory) {
		return nil, fmt.Errorf("categoría de descuento %q: %w", in.DiscountCategory, domain.ErrInvalidInput)
	}

	product := entity.Product{
		ID:               uuid.NewString(),
		Name:             name,
		Category:         in.Category,
		Description:      strings.TrimSpace(in.Description),
		Tags:             splitTags(in.Tags),
		Price:            price,
		Discount:         discount,
		DiscountCategory: in.DiscountCategory,
		CreatedAt:        time.Now(),
	}

	uc.mu.Lock()
	uc.products = append(uc.products, product)
	uc.mu.Unlock()

	uc.center.Enqueue(notification.Input{
		Kind:        entity.NotificationSuccess,
		Title:       "Product drafted",
		Description: fmt.Sprintf("%s is saved as a draft. You can publish it later from the dashboard.", product.Name),
	}, 0)

	return toProductResponse(product), nil
}

// Discard limpia el borrador y emite la notificación correspondiente.
func (uc *ProductUseCase) Discard() {
	uc.center.Enqueue(notification.Input{
		Kind:        entity.NotificationError,
		Title:       "Changes discarded",
		Description: "The product draft has been cleared.",
	}, 0)
}

// List devuelve los productos guardados en orden de creación, junto con las
// categorías disponibles para el formulario.
func (uc *ProductUseCase) List() *dto.ProductListResponse {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	out := make([]dto.ProductResponse, 0, len(uc.products))
	for _, p := range uc.products {
		out = append(out, *toProductResponse(p))
	}
	return &dto.ProductListResponse{
		Products:           out,
		Categories:         entity.ProductCategories,
		DiscountCategories: entity.DiscountCategories,
	}
}

func toProductResponse(p entity.Product) *dto.ProductResponse {
	return &dto.ProductResponse{
		ID:               p.ID,
		Name:             p.Name,
		Category:         p.Category,
		Description:      p.Description,
		Tags:             p.Tags,
		Price:            p.Price,
		Discount:         p.Discount,
		DiscountCategory: p.DiscountCategory,
	}
}

func splitTags(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	tags := make([]string, 0, len(parts))
	for _, p := range parts {
		if t := strings.TrimSpace(p); t != "" {
			tags = append(tags, t)
		}
	}
	return tags
}

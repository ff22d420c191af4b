package dto

import "github.com/shopspring/decimal"

// DashboardResponse respuesta de GET /api/dashboard: los datasets estáticos
// que alimentan las tarjetas y gráficas del panel (solo manager).
type DashboardResponse struct {
	SummaryMetrics    []SummaryMetricDTO  `json:"summary_metrics"`
	MonthlyOverview   []MonthlyRevenueDTO `json:"monthly_overview"`
	EarningsTimeline  []EarningsPointDTO  `json:"earnings_timeline"`
	WeeklySales       []WeeklySalesDTO    `json:"weekly_sales"`
	SubscriptionTrend []SubscriptionDTO   `json:"subscription_trend"`
	RecentSales       []RecentSaleDTO     `json:"recent_sales"`
	TopProducts       []TopProductDTO     `json:"top_products"`
	PaymentHistory    []PaymentHistoryDTO `json:"payment_history"`
}

// SummaryMetricDTO tarjeta KPI del encabezado del dashboard.
type SummaryMetricDTO struct {
	ID      string `json:"id"`
	Title   string `json:"title"`
	Value   string `json:"value"`
	Change  string `json:"change"`
	Caption string `json:"caption"`
	Trend   string `json:"trend"` // up, down
}

// MonthlyRevenueDTO punto de la gráfica de ingresos por mes.
type MonthlyRevenueDTO struct {
	Month   string          `json:"month"`
	Revenue decimal.Decimal `json:"revenue"`
}

// EarningsPointDTO punto de la línea de ganancias (actual vs anterior).
type EarningsPointDTO struct {
	Month    string `json:"month"`
	Current  int    `json:"current"`
	Previous int    `json:"previous"`
}

// WeeklySalesDTO ventas por día contra la meta.
type WeeklySalesDTO struct {
	Day   string `json:"day"`
	Sales int    `json:"sales"`
	Goal  int    `json:"goal"`
}

// SubscriptionDTO suscriptores acumulados por mes.
type SubscriptionDTO struct {
	Month       string `json:"month"`
	Subscribers int    `json:"subscribers"`
}

// RecentSaleDTO venta reciente del widget lateral.
type RecentSaleDTO struct {
	Name   string          `json:"name"`
	Email  string          `json:"email"`
	Amount decimal.Decimal `json:"amount"`
}

// TopProductDTO producto destacado por ingreso.
type TopProductDTO struct {
	Name   string          `json:"name"`
	Buyer  string          `json:"buyer"`
	Amount decimal.Decimal `json:"amount"`
}

// PaymentHistoryDTO pago del historial (Success, Pending, Failed).
type PaymentHistoryDTO struct {
	Status string          `json:"status"`
	Email  string          `json:"email"`
	Amount decimal.Decimal `json:"amount"`
}

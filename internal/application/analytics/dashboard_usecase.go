// Package analytics contiene el caso de uso del dashboard del panel de
// administración. Los datasets son mock estáticos: el dashboard es
// presentacional y no hay backend real detrás.
package analytics

import (
	"github.com/shopspring/decimal"
	"github.com/slooze/commodity-admin/internal/application/dto"
)

// DashboardUseCase entrega los datasets del dashboard (solo manager).
type DashboardUseCase struct{}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase() *DashboardUseCase {
	return &DashboardUseCase{}
}

// GetDashboard devuelve el DashboardResponse completo. Determinista: siempre
// los mismos datos, el cliente los renderiza sin lookups adicionales.
func (uc *DashboardUseCase) GetDashboard() *dto.DashboardResponse {
	return &dto.DashboardResponse{
		SummaryMetrics: []dto.SummaryMetricDTO{
			{ID: "earnings", Title: "Total Earning", Value: "$112,893", Change: "+8.2%", Caption: "trend vs last 30 days", Trend: "up"},
			{ID: "views", Title: "Total Views", Value: "+112,893", Change: "+3.5%", Caption: "traffic lift this week", Trend: "up"},
			{ID: "sales", Title: "Total Sales", Value: "+112,893", Change: "+7.1%", Caption: "orders compared to last week", Trend: "up"},
			{ID: "subscriptions", Title: "Subscriptions", Value: "+112,893", Change: "+5.3%", Caption: "active plans this month", Trend: "up"},
		},
		MonthlyOverview: []dto.MonthlyRevenueDTO{
			{Month: "Jan", Revenue: dec(2800)}, {Month: "Feb", Revenue: dec(3400)},
			{Month: "Mar", Revenue: dec(4200)}, {Month: "Apr", Revenue: dec(3900)},
			{Month: "May", Revenue: dec(4600)}, {Month: "Jun", Revenue: dec(3800)},
			{Month: "Jul", Revenue: dec(5200)}, {Month: "Aug", Revenue: dec(5000)},
			{Month: "Sep", Revenue: dec(4800)}, {Month: "Oct", Revenue: dec(5100)},
			{Month: "Nov", Revenue: dec(4300)}, {Month: "Dec", Revenue: dec(4700)},
		},
		EarningsTimeline: []dto.EarningsPointDTO{
			{Month: "Jan", Current: 25, Previous: 18}, {Month: "Feb", Current: 32, Previous: 22},
			{Month: "Mar", Current: 28, Previous: 24}, {Month: "Apr", Current: 45, Previous: 30},
			{Month: "May", Current: 40, Previous: 34}, {Month: "Jun", Current: 36, Previous: 31},
			{Month: "Jul", Current: 38, Previous: 29}, {Month: "Aug", Current: 42, Previous: 33},
			{Month: "Sep", Current: 41, Previous: 30}, {Month: "Oct", Current: 44, Previous: 32},
			{Month: "Nov", Current: 46, Previous: 35}, {Month: "Dec", Current: 48, Previous: 37},
		},
		WeeklySales: []dto.WeeklySalesDTO{
			{Day: "Mon", Sales: 180, Goal: 120}, {Day: "Tue", Sales: 220, Goal: 150},
			{Day: "Wed", Sales: 260, Goal: 180}, {Day: "Thu", Sales: 300, Goal: 190},
			{Day: "Fri", Sales: 340, Goal: 210}, {Day: "Sat", Sales: 280, Goal: 170},
			{Day: "Sun", Sales: 240, Goal: 160},
		},
		SubscriptionTrend: []dto.SubscriptionDTO{
			{Month: "Jan", Subscribers: 320}, {Month: "Feb", Subscribers: 360},
			{Month: "Mar", Subscribers: 390}, {Month: "Apr", Subscribers: 420},
			{Month: "May", Subscribers: 460}, {Month: "Jun", Subscribers: 480},
			{Month: "Jul", Subscribers: 520}, {Month: "Aug", Subscribers: 540},
			{Month: "Sep", Subscribers: 560}, {Month: "Oct", Subscribers: 590},
			{Month: "Nov", Subscribers: 620}, {Month: "Dec", Subscribers: 650},
		},
		RecentSales: []dto.RecentSaleDTO{
			{Name: "Indra Maulana", Email: "indra@slooze.com", Amount: money("1560.00")},
			{Name: "Angela Purnama", Email: "angela@slooze.com", Amount: money("980.00")},
			{Name: "Michael Tan", Email: "michael@slooze.com", Amount: money("1240.00")},
			{Name: "Ananya Sen", Email: "ananya@slooze.com", Amount: money("760.00")},
			{Name: "Diana Kwok", Email: "diana@slooze.com", Amount: money("1050.00")},
			{Name: "Rahul S", Email: "rahul@slooze.com", Amount: money("890.00")},
		},
		TopProducts: []dto.TopProductDTO{
			{Name: "Macadamia Oil", Buyer: "yours@slooze.com", Amount: money("420")},
			{Name: "Arabica Beans", Buyer: "beans@slooze.com", Amount: money("320")},
			{Name: "Quinoa Grain", Buyer: "market@slooze.com", Amount: money("280")},
			{Name: "Organic Honey", Buyer: "honey@slooze.com", Amount: money("260")},
			{Name: "Chia Seeds", Buyer: "chia@slooze.com", Amount: money("240")},
		},
		PaymentHistory: []dto.PaymentHistoryDTO{
			{Status: "Success", Email: "finance@slooze.com", Amount: money("1200")},
			{Status: "Success", Email: "ops@slooze.com", Amount: money("980")},
			{Status: "Pending", Email: "west@slooze.com", Amount: money("640")},
			{Status: "Success", Email: "north@slooze.com", Amount: money("825")},
			{Status: "Failed", Email: "trial@slooze.com", Amount: money("210")},
			{Status: "Success", Email: "bulk@slooze.com", Amount: money("1540")},
		},
	}
}

func dec(n int64) decimal.Decimal { return decimal.NewFromInt(n) }

func money(s string) decimal.Decimal {
	d, _ := decimal.NewFromString(s) // literales fijos, siempre parseables
	return d
}

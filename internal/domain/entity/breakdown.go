package entity

import "github.com/shopspring/decimal"

// BreakdownItem is one line of a monthly breakdown (service, region or category).
type BreakdownItem struct {
	Name       string          `json:"name"`
	Cost       decimal.Decimal `json:"cost"`
	Percentage decimal.Decimal `json:"percentage"`
}

// MonthlyBreakdown detalha o custo de um mês por serviço, região e categoria.
type MonthlyBreakdown struct {
	Month          string          `json:"month"`
	TotalCost      decimal.Decimal `json:"total_cost"`
	Services       []BreakdownItem `json:"services"`
	Regions        []BreakdownItem `json:"regions"`
	CostCategories []BreakdownItem `json:"cost_categories"`
}

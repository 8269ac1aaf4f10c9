package entity

import "github.com/shopspring/decimal"

// MonthlyProjection é a projeção de custo de um mês futuro.
type MonthlyProjection struct {
	Month         string          `json:"month"`
	ProjectedCost decimal.Decimal `json:"projected_cost"`
	CostIncrease  decimal.Decimal `json:"cost_increase"`
}

// MonthlyForecast contains the compound-growth projection for the next months.
type MonthlyForecast struct {
	MonthsAhead         int                 `json:"months_ahead"`
	ForecastPeriod      string              `json:"forecast_period"`
	BaseMonthlyCost     decimal.Decimal     `json:"base_monthly_cost"`
	GrowthRate          decimal.Decimal     `json:"growth_rate"`
	ProjectedGrowthRate string              `json:"projected_growth_rate"`
	MonthlyProjections  []MonthlyProjection `json:"monthly_projections"`
	TotalForecastCost   decimal.Decimal     `json:"total_forecast_cost"`
}

package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// BillingReport agrega os resultados de uma execução para exportação.
// Usamos ponteiros para que seções não executadas fiquem nulas.
type BillingReport struct {
	ReportID              string                    `json:"report_id"`
	GeneratedAt           time.Time                 `json:"generated_at"`
	Period                BillingPeriod             `json:"billing_period"`
	Summary               *CostSummary              `json:"cost_summary,omitempty"`
	Breakdown             *MonthlyBreakdown         `json:"monthly_breakdown,omitempty"`
	Opportunities         []OptimizationOpportunity `json:"optimization_opportunities,omitempty"`
	TotalPotentialSavings *decimal.Decimal          `json:"total_potential_savings,omitempty"`
	Forecast              *MonthlyForecast          `json:"cost_forecast,omitempty"`
}

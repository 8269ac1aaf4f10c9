package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// BillingPeriod delimita o período de faturamento analisado.
// Start <= End não é validado aqui.
type BillingPeriod struct {
	Start time.Time `json:"start_date"`
	End   time.Time `json:"end_date"`
}

// ServiceCostRecord represents the cost of a single AWS service in a region.
type ServiceCostRecord struct {
	ServiceName   string           `json:"service_name"`
	Region        string           `json:"region"`
	Cost          decimal.Decimal  `json:"cost"`
	UsageQuantity *decimal.Decimal `json:"usage_quantity,omitempty"`
	UsageUnit     string           `json:"usage_unit,omitempty"`
}

// CostAnalysisRequest carrega o período e os filtros opcionais de uma análise.
// ServicesFilter vazio e CostThreshold nulo (ou zero) significam "sem filtro".
// RegionsFilter é aceito mas ainda não afeta o resultado.
type CostAnalysisRequest struct {
	BillingPeriod  BillingPeriod    `json:"billing_period"`
	ServicesFilter []string         `json:"services_filter,omitempty"`
	RegionsFilter  []string         `json:"regions_filter,omitempty"`
	CostThreshold  *decimal.Decimal `json:"cost_threshold,omitempty"`
}

// RegionCost é o custo agregado de uma região.
type RegionCost struct {
	Region string          `json:"region"`
	Cost   decimal.Decimal `json:"cost"`
}

// PeriodBaseline holds the comparison figures attached to every summary.
type PeriodBaseline struct {
	PreviousPeriodCost decimal.Decimal
	CostChangePercent  decimal.Decimal
	PrimaryRegion      string
	OtherRegions       []RegionCost
}

// CostSummary é o resultado da análise de tendência de custos.
// TotalCost soma todos os registros filtrados, não apenas TopServices.
type CostSummary struct {
	TotalCost          decimal.Decimal     `json:"total_cost"`
	PreviousPeriodCost decimal.Decimal     `json:"previous_period_cost"`
	CostChangePercent  decimal.Decimal     `json:"cost_change_percent"`
	TopServices        []ServiceCostRecord `json:"top_services"`
	CostByRegion       []RegionCost        `json:"cost_by_region"`
}

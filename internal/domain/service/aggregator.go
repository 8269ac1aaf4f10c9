// Package service contém os cálculos puros sobre os dados de faturamento:
// agregação de custos, ranking de oportunidades e previsão de custos.
package service

import (
	"fmt"
	"sort"
	"time"

	"github.com/diillson/aws-bill-analyzer-go/internal/domain/entity"
	"github.com/diillson/aws-bill-analyzer-go/internal/shared/types"
	"github.com/shopspring/decimal"
)

const (
	// TopServicesLimit é o número máximo de serviços exibidos no resumo.
	TopServicesLimit = 5

	// MinBreakdownYear é o primeiro ano aceito para o detalhamento mensal.
	MinBreakdownYear = 2020
)

// AnalyzeCostTrends filters the service records, totals them and ranks the top services.
// O slice de entrada não é modificado.
func AnalyzeCostTrends(records []entity.ServiceCostRecord, baseline entity.PeriodBaseline, req entity.CostAnalysisRequest) entity.CostSummary {
	filtered := make([]entity.ServiceCostRecord, 0, len(records))
	for _, rec := range records {
		if len(req.ServicesFilter) > 0 && !containsExact(req.ServicesFilter, rec.ServiceName) {
			continue
		}
		if hasThreshold(req.CostThreshold) && rec.Cost.LessThan(*req.CostThreshold) {
			continue
		}
		filtered = append(filtered, rec)
	}

	totalCost := decimal.Zero
	for _, rec := range filtered {
		totalCost = totalCost.Add(rec.Cost)
	}

	sort.SliceStable(filtered, func(i, j int) bool {
		return filtered[i].Cost.GreaterThan(filtered[j].Cost)
	})

	top := filtered
	if len(top) > TopServicesLimit {
		top = top[:TopServicesLimit]
	}

	costByRegion := make([]entity.RegionCost, 0, len(baseline.OtherRegions)+1)
	costByRegion = append(costByRegion, entity.RegionCost{Region: baseline.PrimaryRegion, Cost: totalCost})
	costByRegion = append(costByRegion, baseline.OtherRegions...)

	return entity.CostSummary{
		TotalCost:          totalCost,
		PreviousPeriodCost: baseline.PreviousPeriodCost,
		CostChangePercent:  baseline.CostChangePercent,
		TopServices:        top,
		CostByRegion:       costByRegion,
	}
}

// MonthlyCostBreakdown valida ano/mês e devolve o detalhamento rotulado com o mês solicitado.
// O limite superior do ano é o ano corrente de now.
func MonthlyCostBreakdown(year, month int, now time.Time, template entity.MonthlyBreakdown) (entity.MonthlyBreakdown, error) {
	if month < 1 || month > 12 {
		return entity.MonthlyBreakdown{}, fmt.Errorf("%w: month must be between 1 and 12", types.ErrInvalidInput)
	}

	currentYear := now.Year()
	if year < MinBreakdownYear || year > currentYear {
		return entity.MonthlyBreakdown{}, fmt.Errorf("%w: year must be between %d and %d", types.ErrInvalidInput, MinBreakdownYear, currentYear)
	}

	breakdown := template
	breakdown.Month = fmt.Sprintf("%d-%02d", year, month)
	return breakdown, nil
}

func containsExact(values []string, target string) bool {
	for _, v := range values {
		if v == target {
			return true
		}
	}
	return false
}

func hasThreshold(threshold *decimal.Decimal) bool {
	return threshold != nil && !threshold.IsZero()
}

package service

import (
	"sort"
	"strings"

	"github.com/diillson/aws-bill-analyzer-go/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// RankOpportunities filters the catalog by service-name substring and sorts it by
// potential savings, highest first. Empates mantêm a ordem do catálogo.
//
// O filtro aqui é por substring (e.g. "RDS" casa com "Amazon RDS"), ao contrário
// do filtro exato de AnalyzeCostTrends.
func RankOpportunities(catalog []entity.OptimizationOpportunity, req entity.CostAnalysisRequest) []entity.OptimizationOpportunity {
	ranked := make([]entity.OptimizationOpportunity, 0, len(catalog))
	for _, opp := range catalog {
		if len(req.ServicesFilter) > 0 && !containsSubstring(req.ServicesFilter, opp.ServiceName) {
			continue
		}
		ranked = append(ranked, opp)
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].PotentialSavings.GreaterThan(ranked[j].PotentialSavings)
	})

	return ranked
}

// TotalPotentialSavings soma a economia potencial das oportunidades.
func TotalPotentialSavings(opportunities []entity.OptimizationOpportunity) decimal.Decimal {
	total := decimal.Zero
	for _, opp := range opportunities {
		total = total.Add(opp.PotentialSavings)
	}
	return total
}

func containsSubstring(terms []string, serviceName string) bool {
	for _, term := range terms {
		if strings.Contains(serviceName, term) {
			return true
		}
	}
	return false
}

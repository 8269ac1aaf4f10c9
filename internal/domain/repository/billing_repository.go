package repository

import (
	"context"

	"github.com/diillson/aws-bill-analyzer-go/internal/domain/entity"
)

// BillingRepository defines the interface for the billing data source.
// Cada chamada devolve dados novos; nenhuma implementação deve compartilhar estado mutável.
type BillingRepository interface {
	// Cost Operations
	GetServiceCosts(ctx context.Context, period entity.BillingPeriod) ([]entity.ServiceCostRecord, error)
	GetPeriodBaseline(ctx context.Context, period entity.BillingPeriod) (entity.PeriodBaseline, error)
	GetMonthlyBreakdown(ctx context.Context) (entity.MonthlyBreakdown, error)

	// Optimization Operations
	GetOptimizationOpportunities(ctx context.Context) ([]entity.OptimizationOpportunity, error)
}

package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/diillson/aws-bill-analyzer-go/internal/domain/entity"
	"github.com/diillson/aws-bill-analyzer-go/internal/domain/repository"
	"github.com/diillson/aws-bill-analyzer-go/internal/domain/service"
	"github.com/diillson/aws-bill-analyzer-go/internal/shared/types"
	"github.com/google/uuid"
)

// BillingUseCase handles the billing analysis operations.
type BillingUseCase struct {
	billingRepo repository.BillingRepository
	exportRepo  repository.ExportRepository
	configRepo  repository.ConfigRepository
	console     types.ConsoleInterface
	now         func() time.Time
	newID       func() string
}

// Option configura um BillingUseCase.
type Option func(*BillingUseCase)

// WithClock substitui o relógio usado para validar anos e rotular previsões.
func WithClock(now func() time.Time) Option {
	return func(uc *BillingUseCase) {
		uc.now = now
	}
}

// WithReportID substitui o gerador de identificadores dos relatórios exportados.
func WithReportID(newID func() string) Option {
	return func(uc *BillingUseCase) {
		uc.newID = newID
	}
}

// NewBillingUseCase creates a new billing use case.
func NewBillingUseCase(
	billingRepo repository.BillingRepository,
	exportRepo repository.ExportRepository,
	configRepo repository.ConfigRepository,
	console types.ConsoleInterface,
	opts ...Option,
) *BillingUseCase {
	uc := &BillingUseCase{
		billingRepo: billingRepo,
		exportRepo:  exportRepo,
		configRepo:  configRepo,
		console:     console,
		now:         time.Now,
		newID:       uuid.NewString,
	}
	for _, opt := range opts {
		opt(uc)
	}
	return uc
}

// AnalyzeCostTrends analisa as tendências de custo para o período e filtros da requisição.
func (uc *BillingUseCase) AnalyzeCostTrends(ctx context.Context, req entity.CostAnalysisRequest) (entity.CostSummary, error) {
	period := req.BillingPeriod
	if period.End.Before(period.Start) {
		uc.console.LogWarning("Billing period end %s is before start %s", formatDate(period.End), formatDate(period.Start))
	}

	records, err := uc.billingRepo.GetServiceCosts(ctx, period)
	if err != nil {
		return entity.CostSummary{}, fmt.Errorf("failed to get service costs: %w", err)
	}

	baseline, err := uc.billingRepo.GetPeriodBaseline(ctx, period)
	if err != nil {
		return entity.CostSummary{}, fmt.Errorf("failed to get period baseline: %w", err)
	}

	summary := service.AnalyzeCostTrends(records, baseline, req)

	uc.console.LogInfo("Analyzed costs for period %s to %s", formatDate(period.Start), formatDate(period.End))
	uc.console.LogInfo("Total cost: $%s", summary.TotalCost.String())

	return summary, nil
}

// GetMonthlyCostBreakdown devolve o detalhamento de custos de um mês específico.
func (uc *BillingUseCase) GetMonthlyCostBreakdown(ctx context.Context, year, month int) (entity.MonthlyBreakdown, error) {
	template, err := uc.billingRepo.GetMonthlyBreakdown(ctx)
	if err != nil {
		return entity.MonthlyBreakdown{}, fmt.Errorf("failed to get monthly breakdown: %w", err)
	}

	breakdown, err := service.MonthlyCostBreakdown(year, month, uc.now(), template)
	if err != nil {
		return entity.MonthlyBreakdown{}, err
	}

	uc.console.LogInfo("Monthly breakdown for %s: $%s", breakdown.Month, breakdown.TotalCost.String())

	return breakdown, nil
}

// IdentifyCostOptimizationOpportunities lista as oportunidades de economia, maior economia primeiro.
func (uc *BillingUseCase) IdentifyCostOptimizationOpportunities(ctx context.Context, req entity.CostAnalysisRequest) ([]entity.OptimizationOpportunity, error) {
	catalog, err := uc.billingRepo.GetOptimizationOpportunities(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get optimization opportunities: %w", err)
	}

	ranked := service.RankOpportunities(catalog, req)

	total := service.TotalPotentialSavings(ranked)
	uc.console.LogInfo("Found %d optimization opportunities with total potential savings of $%s", len(ranked), total.String())

	return ranked, nil
}

// GenerateCostForecast projeta os custos dos próximos monthsAhead meses.
func (uc *BillingUseCase) GenerateCostForecast(ctx context.Context, monthsAhead int) (entity.MonthlyForecast, error) {
	if err := ctx.Err(); err != nil {
		return entity.MonthlyForecast{}, err
	}

	forecast, err := service.Forecast(monthsAhead, uc.now())
	if err != nil {
		return entity.MonthlyForecast{}, err
	}

	uc.console.LogInfo("Generated %d-month cost forecast: $%s total projected", monthsAhead, forecast.TotalForecastCost.StringFixed(2))

	return forecast, nil
}

func formatDate(t time.Time) string {
	return t.Format("2006-01-02")
}

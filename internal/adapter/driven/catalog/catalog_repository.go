package catalog

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/costexplorer"
	ceTypes "github.com/aws/aws-sdk-go-v2/service/costexplorer/types"
	ec2Types "github.com/aws/aws-sdk-go-v2/service/ec2/types"
	"github.com/diillson/aws-bill-analyzer-go/internal/domain/entity"
	"github.com/diillson/aws-bill-analyzer-go/internal/domain/repository"
	"github.com/shopspring/decimal"
)

const (
	costMetric  = "UnblendedCost"
	usageMetric = "UsageQuantity"

	primaryRegion = "us-east-1"
)

// CatalogRepositoryImpl implementa o BillingRepository com um catálogo estático em memória.
// Os dados de custo seguem o formato de resposta do Cost Explorer (GetCostAndUsage).
type CatalogRepositoryImpl struct{}

// NewCatalogRepository cria uma nova implementação do BillingRepository baseada em catálogo.
func NewCatalogRepository() repository.BillingRepository {
	return &CatalogRepositoryImpl{}
}

// GetServiceCosts devolve o custo por serviço e região do período informado.
func (r *CatalogRepositoryImpl) GetServiceCosts(ctx context.Context, period entity.BillingPeriod) ([]entity.ServiceCostRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return parseCostAndUsage(costAndUsageFor(period))
}

// GetPeriodBaseline devolve os números de comparação com o período anterior.
func (r *CatalogRepositoryImpl) GetPeriodBaseline(ctx context.Context, period entity.BillingPeriod) (entity.PeriodBaseline, error) {
	if err := ctx.Err(); err != nil {
		return entity.PeriodBaseline{}, err
	}
	return entity.PeriodBaseline{
		PreviousPeriodCost: decimal.RequireFromString("1650.25"),
		CostChangePercent:  decimal.RequireFromString("8.5"),
		PrimaryRegion:      primaryRegion,
		OtherRegions: []entity.RegionCost{
			{Region: "us-west-2", Cost: decimal.RequireFromString("125.50")},
		},
	}, nil
}

// GetMonthlyBreakdown devolve o detalhamento mensal sem rótulo de mês.
func (r *CatalogRepositoryImpl) GetMonthlyBreakdown(ctx context.Context) (entity.MonthlyBreakdown, error) {
	if err := ctx.Err(); err != nil {
		return entity.MonthlyBreakdown{}, err
	}
	return entity.MonthlyBreakdown{
		TotalCost: decimal.RequireFromString("1775.95"),
		Services: []entity.BreakdownItem{
			item("Amazon EC2", "1250.45", "70.4"),
			item("Amazon RDS", "450.30", "25.4"),
			item("Amazon S3", "75.20", "4.2"),
		},
		Regions: []entity.BreakdownItem{
			item("us-east-1", "1650.45", "92.9"),
			item("us-west-2", "125.50", "7.1"),
		},
		CostCategories: []entity.BreakdownItem{
			item("Compute", "1250.45", "70.4"),
			item("Storage", "525.50", "29.6"),
		},
	}, nil
}

// GetOptimizationOpportunities devolve o catálogo de oportunidades na ordem original.
func (r *CatalogRepositoryImpl) GetOptimizationOpportunities(ctx context.Context) ([]entity.OptimizationOpportunity, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return []entity.OptimizationOpportunity{
		{
			ServiceName:      "Amazon EC2",
			ResourceID:       "i-0123456789abcdef0",
			OpportunityType:  entity.OpportunityRightsizing,
			CurrentCost:      decimal.RequireFromString("450.00"),
			PotentialSavings: decimal.RequireFromString("180.00"),
			Recommendation: fmt.Sprintf("Downsize from %s to %s - CPU utilization consistently below 25%%",
				ec2Types.InstanceTypeM5Xlarge, ec2Types.InstanceTypeM5Large),
			EffortLevel: entity.EffortLow,
		},
		{
			ServiceName:      "Amazon RDS",
			ResourceID:       "mydb-instance-1",
			OpportunityType:  entity.OpportunityUnused,
			CurrentCost:      decimal.RequireFromString("320.00"),
			PotentialSavings: decimal.RequireFromString("320.00"),
			Recommendation:   "Remove unused RDS instance that has had zero connections for 30+ days",
			EffortLevel:      entity.EffortMedium,
		},
		{
			ServiceName:      "Amazon EC2",
			ResourceID:       "i-0987654321fedcba0",
			OpportunityType:  entity.OpportunityReservedInstance,
			CurrentCost:      decimal.RequireFromString("800.00"),
			PotentialSavings: decimal.RequireFromString("240.00"),
			Recommendation:   "Purchase 1-year Reserved Instance for consistent workload running 24/7",
			EffortLevel:      entity.EffortLow,
		},
		{
			ServiceName:      "Amazon S3",
			ResourceID:       "my-bucket-logs",
			OpportunityType:  entity.OpportunityStorageClass,
			CurrentCost:      decimal.RequireFromString("150.00"),
			PotentialSavings: decimal.RequireFromString("90.00"),
			Recommendation:   "Move infrequently accessed logs to S3 Intelligent-Tiering",
			EffortLevel:      entity.EffortLow,
		},
	}, nil
}

func item(name, cost, percentage string) entity.BreakdownItem {
	return entity.BreakdownItem{
		Name:       name,
		Cost:       decimal.RequireFromString(cost),
		Percentage: decimal.RequireFromString(percentage),
	}
}

// costAndUsageFor monta a resposta mock agrupada por SERVICE e REGION.
func costAndUsageFor(period entity.BillingPeriod) *costexplorer.GetCostAndUsageOutput {
	group := func(service, region, cost, usage, unit string) ceTypes.Group {
		return ceTypes.Group{
			Keys: []string{service, region},
			Metrics: map[string]ceTypes.MetricValue{
				costMetric:  {Amount: aws.String(cost), Unit: aws.String("USD")},
				usageMetric: {Amount: aws.String(usage), Unit: aws.String(unit)},
			},
		}
	}

	return &costexplorer.GetCostAndUsageOutput{
		GroupDefinitions: []ceTypes.GroupDefinition{
			{Type: ceTypes.GroupDefinitionTypeDimension, Key: aws.String("SERVICE")},
			{Type: ceTypes.GroupDefinitionTypeDimension, Key: aws.String("REGION")},
		},
		ResultsByTime: []ceTypes.ResultByTime{
			{
				TimePeriod: &ceTypes.DateInterval{
					Start: aws.String(period.Start.Format("2006-01-02")),
					End:   aws.String(period.End.Format("2006-01-02")),
				},
				Groups: []ceTypes.Group{
					group("Amazon EC2", primaryRegion, "1250.45", "744", "Hrs"),
					group("Amazon RDS", primaryRegion, "450.30", "744", "Hrs"),
					group("Amazon S3", primaryRegion, "75.20", "500", "GB"),
				},
			},
		},
	}
}

// parseCostAndUsage converte os grupos do Cost Explorer em registros de custo.
func parseCostAndUsage(output *costexplorer.GetCostAndUsageOutput) ([]entity.ServiceCostRecord, error) {
	var records []entity.ServiceCostRecord
	for _, result := range output.ResultsByTime {
		for _, group := range result.Groups {
			if len(group.Keys) < 2 {
				return nil, fmt.Errorf("unexpected group keys %v", group.Keys)
			}

			costValue, ok := group.Metrics[costMetric]
			if !ok {
				return nil, fmt.Errorf("missing %s for service %s", costMetric, group.Keys[0])
			}
			cost, err := decimal.NewFromString(aws.ToString(costValue.Amount))
			if err != nil {
				return nil, fmt.Errorf("error parsing cost for service %s: %w", group.Keys[0], err)
			}

			rec := entity.ServiceCostRecord{
				ServiceName: group.Keys[0],
				Region:      group.Keys[1],
				Cost:        cost,
			}

			if usageValue, ok := group.Metrics[usageMetric]; ok && usageValue.Amount != nil {
				qty, err := decimal.NewFromString(aws.ToString(usageValue.Amount))
				if err != nil {
					return nil, fmt.Errorf("error parsing usage for service %s: %w", group.Keys[0], err)
				}
				rec.UsageQuantity = &qty
				rec.UsageUnit = aws.ToString(usageValue.Unit)
			}

			records = append(records, rec)
		}
	}
	return records, nil
}

package usecase

import (
	"context"
	"fmt"

	"github.com/diillson/aws-bill-analyzer-go/internal/domain/entity"
	"github.com/diillson/aws-bill-analyzer-go/internal/domain/service"
	"github.com/diillson/aws-bill-analyzer-go/internal/shared/types"
	"github.com/pterm/pterm"
	"github.com/shopspring/decimal"
)

// RunAnalyze executa a análise de tendências, exibe o resultado e exporta se solicitado.
func (uc *BillingUseCase) RunAnalyze(ctx context.Context, args *types.CLIArgs) error {
	req := uc.BuildRequest(args)

	summary, err := uc.AnalyzeCostTrends(ctx, req)
	if err != nil {
		return err
	}

	uc.displaySummary(summary)

	uc.exportReport(entity.BillingReport{
		GeneratedAt: uc.now(),
		Period:      req.BillingPeriod,
		Summary:     &summary,
	}, args)
	return nil
}

// RunBreakdown exibe o detalhamento de um mês.
func (uc *BillingUseCase) RunBreakdown(ctx context.Context, args *types.CLIArgs) error {
	year, month := uc.breakdownMonth(args)

	breakdown, err := uc.GetMonthlyCostBreakdown(ctx, year, month)
	if err != nil {
		return err
	}

	uc.displayBreakdown(breakdown)

	uc.exportReport(entity.BillingReport{
		GeneratedAt: uc.now(),
		Period:      uc.BuildRequest(args).BillingPeriod,
		Breakdown:   &breakdown,
	}, args)
	return nil
}

// RunOptimize exibe as oportunidades de otimização.
func (uc *BillingUseCase) RunOptimize(ctx context.Context, args *types.CLIArgs) error {
	req := uc.BuildRequest(args)

	opportunities, err := uc.IdentifyCostOptimizationOpportunities(ctx, req)
	if err != nil {
		return err
	}

	total := uc.displayOpportunities(opportunities)

	uc.exportReport(entity.BillingReport{
		GeneratedAt:           uc.now(),
		Period:                req.BillingPeriod,
		Opportunities:         opportunities,
		TotalPotentialSavings: &total,
	}, args)
	return nil
}

// RunForecast exibe a previsão de custos em barras.
func (uc *BillingUseCase) RunForecast(ctx context.Context, args *types.CLIArgs) error {
	forecast, err := uc.GenerateCostForecast(ctx, args.MonthsAhead)
	if err != nil {
		return err
	}

	uc.displayForecast(forecast)

	uc.exportReport(entity.BillingReport{
		GeneratedAt: uc.now(),
		Period:      uc.BuildRequest(args).BillingPeriod,
		Forecast:    &forecast,
	}, args)
	return nil
}

// RunFullReport executa as quatro operações e exporta um relatório combinado.
// Qualquer erro interrompe a execução; não há relatório parcial. Os logs das
// operações ficam retidos enquanto o spinner está ativo.
func (uc *BillingUseCase) RunFullReport(ctx context.Context, args *types.CLIArgs) error {
	req := uc.BuildRequest(args)
	year, month := uc.breakdownMonth(args)

	status := uc.console.Status("Building billing report...")
	logs := &queuedLogs{ConsoleInterface: uc.console}
	stop := func() {
		status.Stop()
		logs.flush()
	}

	worker := *uc
	worker.console = logs

	summary, err := worker.AnalyzeCostTrends(ctx, req)
	if err != nil {
		stop()
		return err
	}

	status.Update("Building monthly breakdown...")
	breakdown, err := worker.GetMonthlyCostBreakdown(ctx, year, month)
	if err != nil {
		stop()
		return err
	}

	status.Update("Identifying optimization opportunities...")
	opportunities, err := worker.IdentifyCostOptimizationOpportunities(ctx, req)
	if err != nil {
		stop()
		return err
	}

	status.Update("Generating cost forecast...")
	forecast, err := worker.GenerateCostForecast(ctx, args.MonthsAhead)
	if err != nil {
		stop()
		return err
	}

	stop()

	uc.displaySummary(summary)
	uc.displayBreakdown(breakdown)
	total := uc.displayOpportunities(opportunities)
	uc.displayForecast(forecast)

	uc.exportReport(entity.BillingReport{
		GeneratedAt:           uc.now(),
		Period:                req.BillingPeriod,
		Summary:               &summary,
		Breakdown:             &breakdown,
		Opportunities:         opportunities,
		TotalPotentialSavings: &total,
		Forecast:              &forecast,
	}, args)
	return nil
}

// exportReport exporta o relatório nos formatos solicitados. Falhas são registradas e não interrompem os demais formatos.
func (uc *BillingUseCase) exportReport(report entity.BillingReport, args *types.CLIArgs) {
	if args.ReportName == "" || len(args.ReportType) == 0 {
		return
	}

	// Todos os formatos de uma execução compartilham o mesmo ID.
	report.ReportID = uc.newID()

	for _, reportType := range args.ReportType {
		switch reportType {
		case "csv":
			csvPath, err := uc.exportRepo.ExportToCSV(report, args.ReportName, args.Dir)
			if err != nil {
				uc.console.LogError("Failed to export to CSV: %s", err)
			} else {
				uc.console.LogSuccess("Successfully exported to CSV: %s", csvPath)
			}
		case "json":
			jsonPath, err := uc.exportRepo.ExportToJSON(report, args.ReportName, args.Dir)
			if err != nil {
				uc.console.LogError("Failed to export to JSON: %s", err)
			} else {
				uc.console.LogSuccess("Successfully exported to JSON: %s", jsonPath)
			}
		case "pdf":
			pdfPath, err := uc.exportRepo.ExportToPDF(report, args.ReportName, args.Dir)
			if err != nil {
				uc.console.LogError("Failed to export to PDF: %s", err)
			} else {
				uc.console.LogSuccess("Successfully exported to PDF: %s", pdfPath)
			}
		}
	}
}

func (uc *BillingUseCase) displaySummary(summary entity.CostSummary) {
	table := uc.console.CreateTable()
	table.AddColumn("Service")
	table.AddColumn("Region")
	table.AddColumn("Cost")
	table.AddColumn("Usage")

	for _, svc := range summary.TopServices {
		usage := "-"
		if svc.UsageQuantity != nil {
			usage = fmt.Sprintf("%s %s", svc.UsageQuantity.String(), svc.UsageUnit)
		}
		table.AddRow(pterm.FgMagenta.Sprint(svc.ServiceName), svc.Region, "$"+svc.Cost.StringFixed(2), usage)
	}
	uc.console.Print(table.Render())

	uc.console.Printf("\n%s  %s  %s\n\n",
		pterm.FgYellow.Sprintf("Total: $%s", summary.TotalCost.StringFixed(2)),
		fmt.Sprintf("Previous period: $%s", summary.PreviousPeriodCost.StringFixed(2)),
		pterm.FgRed.Sprintf("Change: %s%%", summary.CostChangePercent.String()),
	)

	regions := uc.console.CreateTable()
	regions.AddColumn("Region")
	regions.AddColumn("Cost")
	for _, rc := range summary.CostByRegion {
		regions.AddRow(rc.Region, "$"+rc.Cost.StringFixed(2))
	}
	uc.console.Print(regions.Render())
}

func (uc *BillingUseCase) displayBreakdown(breakdown entity.MonthlyBreakdown) {
	table := uc.console.CreateTable()
	table.AddColumn("Dimension")
	table.AddColumn("Name")
	table.AddColumn("Cost")
	table.AddColumn("Share")

	addRows := func(dimension string, items []entity.BreakdownItem) {
		for _, it := range items {
			table.AddRow(dimension, it.Name, "$"+it.Cost.StringFixed(2), it.Percentage.String()+"%")
		}
	}
	addRows("Service", breakdown.Services)
	addRows("Region", breakdown.Regions)
	addRows("Category", breakdown.CostCategories)

	uc.console.Printf("\n%s\n", pterm.FgYellow.Sprintf("Month: %s (Total: $%s)", breakdown.Month, breakdown.TotalCost.StringFixed(2)))
	uc.console.Print(table.Render())
}

func (uc *BillingUseCase) displayOpportunities(opportunities []entity.OptimizationOpportunity) decimal.Decimal {
	table := uc.console.CreateTable()
	table.AddColumn("Service")
	table.AddColumn("Resource")
	table.AddColumn("Type")
	table.AddColumn("Current Cost")
	table.AddColumn("Potential Savings")
	table.AddColumn("Effort")
	table.AddColumn("Recommendation")

	for _, opp := range opportunities {
		table.AddRow(
			pterm.FgMagenta.Sprint(opp.ServiceName),
			opp.ResourceID,
			string(opp.OpportunityType),
			"$"+opp.CurrentCost.StringFixed(2),
			pterm.FgGreen.Sprint("$"+opp.PotentialSavings.StringFixed(2)),
			string(opp.EffortLevel),
			opp.Recommendation,
		)
	}
	uc.console.Print(table.Render())

	return service.TotalPotentialSavings(opportunities)
}

func (uc *BillingUseCase) displayForecast(forecast entity.MonthlyForecast) {
	costs := make([]types.MonthlyCost, 0, len(forecast.MonthlyProjections))
	for _, p := range forecast.MonthlyProjections {
		costs = append(costs, types.MonthlyCost{Month: p.Month, Cost: p.ProjectedCost})
	}

	uc.console.DisplayTrendBars(
		fmt.Sprintf("AWS Cost Forecast (%s, %s monthly growth)", forecast.ForecastPeriod, forecast.ProjectedGrowthRate),
		costs,
	)
	uc.console.Printf("%s\n", pterm.FgYellow.Sprintf("Total forecast cost: $%s", forecast.TotalForecastCost.StringFixed(2)))
}

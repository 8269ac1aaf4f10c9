package usecase

import (
	"fmt"
	"strings"
	"time"

	"github.com/diillson/aws-bill-analyzer-go/internal/domain/entity"
	"github.com/diillson/aws-bill-analyzer-go/internal/shared/types"
)

const dateLayout = "2006-01-02"

var supportedReportTypes = map[string]bool{"csv": true, "json": true, "pdf": true}

// ResolveArgs mescla o arquivo de configuração (se houver) nos argumentos da CLI.
// Flags passadas explicitamente têm precedência sobre o arquivo.
func (uc *BillingUseCase) ResolveArgs(args *types.CLIArgs) error {
	if args.ConfigFile != "" {
		cfg, err := uc.configRepo.LoadConfigFile(args.ConfigFile)
		if err != nil {
			return err
		}
		if err := mergeConfig(args, cfg); err != nil {
			return err
		}
		uc.console.LogInfo("Loaded configuration from %s", args.ConfigFile)
	}

	for i, reportType := range args.ReportType {
		reportType = strings.ToLower(strings.TrimSpace(reportType))
		if !supportedReportTypes[reportType] {
			return fmt.Errorf("%w: %q (supported: csv, json, pdf)", types.ErrInvalidReportType, reportType)
		}
		args.ReportType[i] = reportType
	}

	return nil
}

func mergeConfig(args *types.CLIArgs, cfg *types.Config) error {
	if !args.IsExplicit("services") && len(cfg.ServicesFilter) > 0 {
		args.ServicesFilter = cfg.ServicesFilter
	}
	if !args.IsExplicit("regions") && len(cfg.RegionsFilter) > 0 {
		args.RegionsFilter = cfg.RegionsFilter
	}
	if !args.IsExplicit("cost-threshold") && cfg.CostThreshold != "" {
		threshold, err := cfg.CostThreshold.Decimal()
		if err != nil {
			return fmt.Errorf("invalid cost_threshold in config: %w", err)
		}
		args.CostThreshold = &threshold
	}
	if !args.IsExplicit("start-date") && cfg.StartDate != "" {
		start, err := time.Parse(dateLayout, cfg.StartDate)
		if err != nil {
			return fmt.Errorf("invalid start_date %q in config: %w", cfg.StartDate, err)
		}
		args.StartDate = &start
	}
	if !args.IsExplicit("end-date") && cfg.EndDate != "" {
		end, err := time.Parse(dateLayout, cfg.EndDate)
		if err != nil {
			return fmt.Errorf("invalid end_date %q in config: %w", cfg.EndDate, err)
		}
		args.EndDate = &end
	}
	if !args.IsExplicit("months-ahead") && cfg.MonthsAhead != 0 {
		args.MonthsAhead = cfg.MonthsAhead
	}
	if !args.IsExplicit("report-name") && cfg.ReportName != "" {
		args.ReportName = cfg.ReportName
	}
	if !args.IsExplicit("report-type") && len(cfg.ReportType) > 0 {
		args.ReportType = cfg.ReportType
	}
	if !args.IsExplicit("dir") && cfg.Dir != "" {
		args.Dir = cfg.Dir
	}
	return nil
}

// BuildRequest monta a requisição de análise a partir dos argumentos.
// Sem datas informadas, o período vai do início do mês corrente até hoje.
func (uc *BillingUseCase) BuildRequest(args *types.CLIArgs) entity.CostAnalysisRequest {
	today := uc.now().UTC()
	start := time.Date(today.Year(), today.Month(), 1, 0, 0, 0, 0, time.UTC)
	end := today

	if args.StartDate != nil {
		start = *args.StartDate
	}
	if args.EndDate != nil {
		end = *args.EndDate
	}

	return entity.CostAnalysisRequest{
		BillingPeriod:  entity.BillingPeriod{Start: start, End: end},
		ServicesFilter: args.ServicesFilter,
		RegionsFilter:  args.RegionsFilter,
		CostThreshold:  args.CostThreshold,
	}
}

// breakdownMonth devolve ano/mês dos argumentos, usando o mês corrente quando não informados.
func (uc *BillingUseCase) breakdownMonth(args *types.CLIArgs) (int, int) {
	now := uc.now()
	year, month := args.Year, args.Month
	if year == 0 && !args.IsExplicit("year") {
		year = now.Year()
	}
	if month == 0 && !args.IsExplicit("month") {
		month = int(now.Month())
	}
	return year, month
}

package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/diillson/aws-bill-analyzer-go/internal/application/usecase"
	"github.com/diillson/aws-bill-analyzer-go/internal/shared/types"
	"github.com/diillson/aws-bill-analyzer-go/pkg/version"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

const dateLayout = "2006-01-02"

// CLIApp represents the command-line interface application.
type CLIApp struct {
	rootCmd        *cobra.Command
	billingUseCase *usecase.BillingUseCase
	version        string
}

// runner é a operação do caso de uso executada por um subcomando.
type runner func(uc *usecase.BillingUseCase, ctx context.Context, args *types.CLIArgs) error

// NewCLIApp cria uma nova aplicação CLI.
func NewCLIApp(versionStr string) *CLIApp {
	app := &CLIApp{
		version: versionStr,
	}

	rootCmd := &cobra.Command{
		Use:           "aws-bill-analyzer",
		Short:         "AWS Bill Analyzer CLI",
		Long:          "Analyze AWS cost trends, monthly breakdowns, optimization opportunities and cost forecasts.",
		Version:       version.FormatVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.SetVersionTemplate(`{{printf "AWS Bill Analyzer version: %s\n" .Version}}`)

	flags := rootCmd.PersistentFlags()
	flags.StringP("config-file", "C", "", "Path to a TOML, YAML, or JSON configuration file")
	flags.StringP("report-name", "n", "", "Specify the base name for the report file (without extension)")
	flags.StringSliceP("report-type", "y", []string{"csv"}, "Specify report types: csv, json, pdf")
	flags.StringP("dir", "d", "", "Directory to save the report files (default: current directory)")
	flags.StringSliceP("services", "s", nil, "Filter by service names (comma-separated)")
	flags.StringSliceP("regions", "r", nil, "Filter by regions (comma-separated)")
	flags.String("cost-threshold", "", "Only include services whose cost is at least this amount, e.g. 100.00")
	flags.String("start-date", "", "Billing period start (YYYY-MM-DD, default: first day of current month)")
	flags.String("end-date", "", "Billing period end (YYYY-MM-DD, default: today)")

	analyzeCmd := &cobra.Command{
		Use:   "analyze",
		Short: "Analyze cost trends for a billing period",
		RunE:  app.runWith((*usecase.BillingUseCase).RunAnalyze),
	}

	breakdownCmd := &cobra.Command{
		Use:   "breakdown",
		Short: "Show the cost breakdown for a specific month",
		RunE:  app.runWith((*usecase.BillingUseCase).RunBreakdown),
	}
	breakdownCmd.Flags().Int("year", 0, "Year for the cost breakdown (default: current year)")
	breakdownCmd.Flags().Int("month", 0, "Month for the cost breakdown, 1-12 (default: current month)")

	optimizeCmd := &cobra.Command{
		Use:   "optimize",
		Short: "Identify cost optimization opportunities",
		RunE:  app.runWith((*usecase.BillingUseCase).RunOptimize),
	}

	forecastCmd := &cobra.Command{
		Use:   "forecast",
		Short: "Generate a cost forecast for the next months",
		RunE:  app.runWith((*usecase.BillingUseCase).RunForecast),
	}
	forecastCmd.Flags().IntP("months-ahead", "m", 3, "Number of months to forecast (1-12)")

	reportCmd := &cobra.Command{
		Use:   "report",
		Short: "Run every analysis and export a combined report",
		RunE:  app.runWith((*usecase.BillingUseCase).RunFullReport),
	}
	reportCmd.Flags().Int("year", 0, "Year for the cost breakdown (default: current year)")
	reportCmd.Flags().Int("month", 0, "Month for the cost breakdown, 1-12 (default: current month)")
	reportCmd.Flags().IntP("months-ahead", "m", 3, "Number of months to forecast (1-12)")

	rootCmd.AddCommand(analyzeCmd, breakdownCmd, optimizeCmd, forecastCmd, reportCmd)

	app.rootCmd = rootCmd
	return app
}

// Execute runs the CLI application.
func (app *CLIApp) Execute() error {
	return app.rootCmd.ExecuteContext(context.Background())
}

// SetBillingUseCase sets the billing use case for the CLI app.
func (app *CLIApp) SetBillingUseCase(useCase *usecase.BillingUseCase) {
	app.billingUseCase = useCase
}

// runWith adapta uma operação do caso de uso para um RunE do cobra.
func (app *CLIApp) runWith(run runner) func(cmd *cobra.Command, args []string) error {
	return func(cmd *cobra.Command, _ []string) error {
		displayWelcomeBanner(app.version)

		go version.CheckLatestVersion(app.version)

		cliArgs, err := parseArgs(cmd)
		if err != nil {
			return err
		}

		if err := app.billingUseCase.ResolveArgs(cliArgs); err != nil {
			return err
		}

		return run(app.billingUseCase, cmd.Context(), cliArgs)
	}
}

// parseArgs converte as flags do comando em CLIArgs.
func parseArgs(cmd *cobra.Command) (*types.CLIArgs, error) {
	flags := cmd.Flags()

	configFile, _ := flags.GetString("config-file")
	reportName, _ := flags.GetString("report-name")
	reportType, _ := flags.GetStringSlice("report-type")
	dir, _ := flags.GetString("dir")
	services, _ := flags.GetStringSlice("services")
	regions, _ := flags.GetStringSlice("regions")
	threshold, _ := flags.GetString("cost-threshold")
	startDate, _ := flags.GetString("start-date")
	endDate, _ := flags.GetString("end-date")
	year, _ := flags.GetInt("year")
	month, _ := flags.GetInt("month")
	monthsAhead, _ := flags.GetInt("months-ahead")

	args := &types.CLIArgs{
		ConfigFile:     configFile,
		ReportName:     reportName,
		ReportType:     reportType,
		ServicesFilter: services,
		RegionsFilter:  regions,
		Year:           year,
		Month:          month,
		MonthsAhead:    monthsAhead,
		ExplicitFlags:  map[string]bool{},
	}

	flags.Visit(func(f *pflag.Flag) {
		args.ExplicitFlags[f.Name] = true
	})

	if threshold != "" {
		value, err := decimal.NewFromString(threshold)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid cost threshold %q", types.ErrInvalidInput, threshold)
		}
		args.CostThreshold = &value
	}

	var err error
	if args.StartDate, err = parseDate("start-date", startDate); err != nil {
		return nil, err
	}
	if args.EndDate, err = parseDate("end-date", endDate); err != nil {
		return nil, err
	}

	// Set default directory to current working directory if not specified
	if dir == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, err
		}
		dir = cwd
	} else {
		absDir, err := filepath.Abs(dir)
		if err != nil {
			return nil, err
		}
		dir = absDir
	}
	args.Dir = dir

	return args, nil
}

func parseDate(flag, value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	t, err := time.Parse(dateLayout, value)
	if err != nil {
		return nil, fmt.Errorf("%w: --%s must be YYYY-MM-DD, got %q", types.ErrInvalidInput, flag, value)
	}
	return &t, nil
}

package export

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/diillson/aws-bill-analyzer-go/internal/domain/entity"
	"github.com/goccy/go-json"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedRepo() *ExportRepositoryImpl {
	return &ExportRepositoryImpl{now: func() time.Time {
		return time.Date(2026, time.October, 14, 10, 30, 0, 0, time.UTC)
	}}
}

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func sampleReport() entity.BillingReport {
	qty := d("744")
	savings := d("830.00")
	return entity.BillingReport{
		ReportID:    "2f1c6b0e-8d7a-4c55-9b3e-0a6f4d2e9c11",
		GeneratedAt: time.Date(2026, time.October, 14, 10, 30, 0, 0, time.UTC),
		Period: entity.BillingPeriod{
			Start: time.Date(2026, time.October, 1, 0, 0, 0, 0, time.UTC),
			End:   time.Date(2026, time.October, 14, 0, 0, 0, 0, time.UTC),
		},
		Summary: &entity.CostSummary{
			TotalCost:          d("1775.95"),
			PreviousPeriodCost: d("1650.25"),
			CostChangePercent:  d("8.5"),
			TopServices: []entity.ServiceCostRecord{
				{ServiceName: "Amazon EC2", Region: "us-east-1", Cost: d("1250.45"), UsageQuantity: &qty, UsageUnit: "Hrs"},
			},
			CostByRegion: []entity.RegionCost{{Region: "us-east-1", Cost: d("1775.95")}},
		},
		Breakdown: &entity.MonthlyBreakdown{
			Month:     "2024-05",
			TotalCost: d("1775.95"),
			Services:  []entity.BreakdownItem{{Name: "Amazon EC2", Cost: d("1250.45"), Percentage: d("70.4")}},
		},
		Opportunities: []entity.OptimizationOpportunity{
			{ServiceName: "Amazon RDS", ResourceID: "mydb-instance-1", OpportunityType: entity.OpportunityUnused,
				CurrentCost: d("320.00"), PotentialSavings: d("320.00"), Recommendation: "Remove it", EffortLevel: entity.EffortMedium},
		},
		TotalPotentialSavings: &savings,
		Forecast: &entity.MonthlyForecast{
			MonthsAhead:         1,
			ForecastPeriod:      "1 months",
			BaseMonthlyCost:     d("1775.95"),
			GrowthRate:          d("0.05"),
			ProjectedGrowthRate: "5.0%",
			MonthlyProjections:  []entity.MonthlyProjection{{Month: "2026-11", ProjectedCost: d("1864.75"), CostIncrease: d("88.80")}},
			TotalForecastCost:   d("1864.75"),
		},
	}
}

func TestExportToCSV(t *testing.T) {
	dir := t.TempDir()

	path, err := fixedRepo().ExportToCSV(sampleReport(), "billing", dir)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "billing_20261014_103000.csv"), path)

	file, err := os.Open(path)
	require.NoError(t, err)
	defer file.Close()

	rows, err := csv.NewReader(file).ReadAll()
	require.NoError(t, err)

	assert.Equal(t, []string{"Section", "Item", "Detail", "Cost", "Value"}, rows[0])
	assert.Contains(t, rows, []string{"Report", "Report ID", "2f1c6b0e-8d7a-4c55-9b3e-0a6f4d2e9c11", "", ""})
	assert.Contains(t, rows, []string{"Cost Summary", "Total Cost", "", "1775.95", ""})
	assert.Contains(t, rows, []string{"Top Services", "Amazon EC2", "us-east-1", "1250.45", "744 Hrs"})
	assert.Contains(t, rows, []string{"Breakdown By Service", "Amazon EC2", "2024-05", "1250.45", "70.4%"})
	assert.Contains(t, rows, []string{"Forecast", "2026-11", "projected / increase", "1864.75", "88.80"})
	assert.Contains(t, rows, []string{"Optimization", "Total Potential Savings", "", "", "830.00"})
}

func TestExportToCSV_OnlyForecast(t *testing.T) {
	report := entity.BillingReport{Forecast: sampleReport().Forecast}

	path, err := fixedRepo().ExportToCSV(report, "forecast", t.TempDir())
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "Cost Summary")
	assert.NotContains(t, string(data), "Report ID")
	assert.Contains(t, string(data), "Total Forecast Cost")
}

func TestExportToJSON(t *testing.T) {
	path, err := fixedRepo().ExportToJSON(sampleReport(), "billing", t.TempDir())
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(path, "billing_20261014_103000.json"))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &decoded))

	summary, ok := decoded["cost_summary"].(map[string]interface{})
	require.True(t, ok)
	// Valores monetários são serializados como string decimal.
	assert.Equal(t, "1775.95", summary["total_cost"])
	assert.Equal(t, "2f1c6b0e-8d7a-4c55-9b3e-0a6f4d2e9c11", decoded["report_id"])

	var roundTrip entity.BillingReport
	require.NoError(t, json.Unmarshal(data, &roundTrip))
	require.NotNil(t, roundTrip.Forecast)
	assert.True(t, roundTrip.Forecast.TotalForecastCost.Equal(d("1864.75")))
}

func TestExportToPDF(t *testing.T) {
	path, err := fixedRepo().ExportToPDF(sampleReport(), "billing", t.TempDir())
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "%PDF"))
}

func TestGenerateFilename_CreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "reports")

	name, err := fixedRepo().generateFilename("report", dir, "csv")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "report_20261014_103000.csv"), name)

	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestCleanRichTags(t *testing.T) {
	assert.Equal(t, "Total: 10", cleanRichTags("\x1b[31mTotal: 10\x1b[0m"))
	assert.Equal(t, "plain", cleanRichTags("[red]plain[/red]"))
}

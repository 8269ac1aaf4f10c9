package export

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/diillson/aws-bill-analyzer-go/internal/domain/entity"
	"github.com/diillson/aws-bill-analyzer-go/internal/domain/repository"
	"github.com/goccy/go-json"
	"github.com/jung-kurt/gofpdf"
	"github.com/shopspring/decimal"
)

// ExportRepositoryImpl implementa o ExportRepository.
type ExportRepositoryImpl struct {
	now func() time.Time
}

// NewExportRepository cria uma nova implementação do ExportRepository.
func NewExportRepository() repository.ExportRepository {
	return &ExportRepositoryImpl{now: time.Now}
}

// --- Exportação CSV ---

func (r *ExportRepositoryImpl) ExportToCSV(report entity.BillingReport, filename, outputDir string) (string, error) {
	outputFilename, err := r.generateFilename(filename, outputDir, "csv")
	if err != nil {
		return "", err
	}

	file, err := os.Create(outputFilename)
	if err != nil {
		return "", fmt.Errorf("error creating CSV file: %w", err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)

	rows := [][]string{
		{"Section", "Item", "Detail", "Cost", "Value"},
		{"Report", "Billing Period", formatPeriod(report.Period), "", ""},
	}
	if report.ReportID != "" {
		rows = append(rows, []string{"Report", "Report ID", report.ReportID, "", ""})
	}

	if s := report.Summary; s != nil {
		rows = append(rows,
			[]string{"Cost Summary", "Total Cost", "", money(s.TotalCost), ""},
			[]string{"Cost Summary", "Previous Period Cost", "", money(s.PreviousPeriodCost), ""},
			[]string{"Cost Summary", "Cost Change", "", "", s.CostChangePercent.String() + "%"},
		)
		for _, svc := range s.TopServices {
			rows = append(rows, []string{"Top Services", svc.ServiceName, svc.Region, money(svc.Cost), formatUsage(svc)})
		}
		for _, rc := range s.CostByRegion {
			rows = append(rows, []string{"Cost By Region", rc.Region, "", money(rc.Cost), ""})
		}
	}

	if b := report.Breakdown; b != nil {
		rows = append(rows, []string{"Monthly Breakdown", "Total Cost", b.Month, money(b.TotalCost), ""})
		rows = appendBreakdownRows(rows, "Breakdown By Service", b.Month, b.Services)
		rows = appendBreakdownRows(rows, "Breakdown By Region", b.Month, b.Regions)
		rows = appendBreakdownRows(rows, "Breakdown By Category", b.Month, b.CostCategories)
	}

	for _, opp := range report.Opportunities {
		rows = append(rows, []string{
			"Optimization",
			fmt.Sprintf("%s (%s)", opp.ServiceName, opp.ResourceID),
			fmt.Sprintf("%s | effort: %s | %s", opp.OpportunityType, opp.EffortLevel, opp.Recommendation),
			money(opp.CurrentCost),
			money(opp.PotentialSavings),
		})
	}
	if report.TotalPotentialSavings != nil {
		rows = append(rows, []string{"Optimization", "Total Potential Savings", "", "", money(*report.TotalPotentialSavings)})
	}

	if f := report.Forecast; f != nil {
		rows = append(rows, []string{"Forecast", "Base Monthly Cost", f.ProjectedGrowthRate + " monthly growth", money(f.BaseMonthlyCost), ""})
		for _, p := range f.MonthlyProjections {
			rows = append(rows, []string{"Forecast", p.Month, "projected / increase", money(p.ProjectedCost), money(p.CostIncrease)})
		}
		rows = append(rows, []string{"Forecast", "Total Forecast Cost", f.ForecastPeriod, money(f.TotalForecastCost), ""})
	}

	if err := writer.WriteAll(rows); err != nil {
		return "", fmt.Errorf("error writing CSV data: %w", err)
	}

	return filepath.Abs(outputFilename)
}

func appendBreakdownRows(rows [][]string, section, month string, items []entity.BreakdownItem) [][]string {
	for _, it := range items {
		rows = append(rows, []string{section, it.Name, month, money(it.Cost), it.Percentage.String() + "%"})
	}
	return rows
}

// --- Exportação JSON ---

func (r *ExportRepositoryImpl) ExportToJSON(report entity.BillingReport, filename, outputDir string) (string, error) {
	outputFilename, err := r.generateFilename(filename, outputDir, "json")
	if err != nil {
		return "", err
	}

	file, err := os.Create(outputFilename)
	if err != nil {
		return "", fmt.Errorf("error creating JSON file: %w", err)
	}
	defer file.Close()

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(report); err != nil {
		return "", fmt.Errorf("error encoding JSON data: %w", err)
	}

	return filepath.Abs(outputFilename)
}

// --- Exportação PDF ---

func (r *ExportRepositoryImpl) ExportToPDF(report entity.BillingReport, filename, outputDir string) (string, error) {
	outputFilename, err := r.generateFilename(filename, outputDir, "pdf")
	if err != nil {
		return "", err
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	headerColor := [3]int{40, 40, 40}
	headerTextColor := [3]int{255, 255, 255}
	sectionTitleColor := [3]int{0, 0, 0}
	bodyTextColor := [3]int{50, 50, 50}
	lineColor := [3]int{200, 200, 200}

	drawSection := func(title string, lines []string) {
		if len(lines) == 0 {
			return
		}
		pdf.SetFont("Arial", "B", 12)
		pdf.SetTextColor(sectionTitleColor[0], sectionTitleColor[1], sectionTitleColor[2])
		pdf.Cell(0, 8, title)
		pdf.Ln(7)

		pdf.SetDrawColor(lineColor[0], lineColor[1], lineColor[2])
		pdf.Line(pdf.GetX(), pdf.GetY(), pdf.GetX()+190, pdf.GetY())
		pdf.Ln(4)

		pdf.SetFont("Arial", "", 10)
		pdf.SetTextColor(bodyTextColor[0], bodyTextColor[1], bodyTextColor[2])
		pdf.MultiCell(190, 5, tr(cleanRichTags(strings.Join(lines, "\n"))), "", "L", false)
		pdf.Ln(8)
	}

	pdf.SetFooterFunc(func() {
		pdf.SetY(-15)
		pdf.SetFont("Arial", "I", 8)
		pdf.SetTextColor(128, 128, 128)
		footerText := fmt.Sprintf("Generated by AWS Bill Analyzer (Go) | %s", r.now().Format("2006-01-02"))
		pdf.CellFormat(0, 10, tr(footerText), "", 0, "L", false, 0, "")
		pdf.CellFormat(0, 10, tr(fmt.Sprintf("Page %d", pdf.PageNo())), "", 0, "R", false, 0, "")
	})

	pdf.AddPage()

	pdf.SetFillColor(headerColor[0], headerColor[1], headerColor[2])
	pdf.SetTextColor(headerTextColor[0], headerTextColor[1], headerTextColor[2])
	pdf.SetFont("Arial", "B", 14)
	pdf.CellFormat(0, 12, tr("  AWS Billing Report"), "", 1, "L", true, 0, "")

	pdf.SetFont("Arial", "", 10)
	pdf.SetFillColor(240, 240, 240)
	pdf.SetTextColor(bodyTextColor[0], bodyTextColor[1], bodyTextColor[2])
	pdf.CellFormat(0, 8, tr(fmt.Sprintf("  Billing period: %s", formatPeriod(report.Period))), "", 1, "L", true, 0, "")
	if report.ReportID != "" {
		pdf.CellFormat(0, 8, tr(fmt.Sprintf("  Report ID: %s", report.ReportID)), "", 1, "L", true, 0, "")
	}
	pdf.Ln(10)

	if s := report.Summary; s != nil {
		lines := []string{
			fmt.Sprintf("Total cost: $%s", money(s.TotalCost)),
			fmt.Sprintf("Previous period: $%s (%s%% change)", money(s.PreviousPeriodCost), s.CostChangePercent.String()),
		}
		drawSection("Cost Summary", lines)

		var top []string
		for _, svc := range s.TopServices {
			top = append(top, fmt.Sprintf("%s (%s): $%s  %s", svc.ServiceName, svc.Region, money(svc.Cost), formatUsage(svc)))
		}
		drawSection("Top Services", top)

		var regions []string
		for _, rc := range s.CostByRegion {
			regions = append(regions, fmt.Sprintf("%s: $%s", rc.Region, money(rc.Cost)))
		}
		drawSection("Cost By Region", regions)
	}

	if b := report.Breakdown; b != nil {
		lines := []string{fmt.Sprintf("Month: %s    Total: $%s", b.Month, money(b.TotalCost)), ""}
		lines = append(lines, breakdownLines("Services", b.Services)...)
		lines = append(lines, breakdownLines("Regions", b.Regions)...)
		lines = append(lines, breakdownLines("Categories", b.CostCategories)...)
		drawSection("Monthly Breakdown", lines)
	}

	if len(report.Opportunities) > 0 {
		var lines []string
		for _, opp := range report.Opportunities {
			lines = append(lines,
				fmt.Sprintf("%s - %s [%s, effort %s]", opp.ServiceName, opp.ResourceID, opp.OpportunityType, opp.EffortLevel),
				fmt.Sprintf("  Current: $%s  Savings: $%s", money(opp.CurrentCost), money(opp.PotentialSavings)),
				fmt.Sprintf("  %s", opp.Recommendation),
				"",
			)
		}
		if report.TotalPotentialSavings != nil {
			lines = append(lines, fmt.Sprintf("Total potential savings: $%s", money(*report.TotalPotentialSavings)))
		}
		drawSection("Optimization Opportunities", lines)
	}

	if f := report.Forecast; f != nil {
		lines := []string{fmt.Sprintf("Base: $%s  Growth: %s per month", money(f.BaseMonthlyCost), f.ProjectedGrowthRate), ""}
		for _, p := range f.MonthlyProjections {
			lines = append(lines, fmt.Sprintf("%s: $%s  (+$%s)", p.Month, money(p.ProjectedCost), money(p.CostIncrease)))
		}
		lines = append(lines, "", fmt.Sprintf("Total (%s): $%s", f.ForecastPeriod, money(f.TotalForecastCost)))
		drawSection("Cost Forecast", lines)
	}

	if err := pdf.OutputFileAndClose(outputFilename); err != nil {
		return "", fmt.Errorf("error writing PDF file: %w", err)
	}

	return filepath.Abs(outputFilename)
}

func breakdownLines(title string, items []entity.BreakdownItem) []string {
	if len(items) == 0 {
		return nil
	}
	lines := []string{title + ":"}
	for _, it := range items {
		lines = append(lines, fmt.Sprintf("  %s: $%s (%s%%)", it.Name, money(it.Cost), it.Percentage.String()))
	}
	return lines
}

// --- Funções Auxiliares ---

// generateFilename cria um nome de arquivo único com timestamp e garante que o diretório exista.
func (r *ExportRepositoryImpl) generateFilename(base, dir, ext string) (string, error) {
	if dir == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("could not get current working directory: %w", err)
		}
		dir = cwd
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("error creating output directory '%s': %w", dir, err)
	}
	timestamp := r.now().Format("20060102_150405")
	filename := fmt.Sprintf("%s_%s.%s", base, timestamp, ext)
	return filepath.Join(dir, filename), nil
}

func money(d decimal.Decimal) string {
	return d.StringFixed(2)
}

func formatPeriod(p entity.BillingPeriod) string {
	return fmt.Sprintf("%s to %s", p.Start.Format("2006-01-02"), p.End.Format("2006-01-02"))
}

func formatUsage(rec entity.ServiceCostRecord) string {
	if rec.UsageQuantity == nil {
		return ""
	}
	return strings.TrimSpace(fmt.Sprintf("%s %s", rec.UsageQuantity.String(), rec.UsageUnit))
}

// Regex para limpar formatação pterm (rich tags) e sequências ANSI de cor/estilo.
var richTagRegex = regexp.MustCompile(`\[/?([a-zA-Z]+|#[0-9a-fA-F]{6})\]`)
var ansiRegex = regexp.MustCompile(`\x1B\[[0-9;]*[A-Za-z]`)

// cleanRichTags remove tags de formatação do pterm e sequências ANSI.
func cleanRichTags(text string) string {
	text = richTagRegex.ReplaceAllString(text, "")
	text = ansiRegex.ReplaceAllString(text, "")
	return text
}

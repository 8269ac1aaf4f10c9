package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/diillson/aws-bill-analyzer-go/internal/domain/entity"
	"github.com/diillson/aws-bill-analyzer-go/internal/shared/types"
)

var fixedNow = time.Date(2026, time.October, 14, 12, 0, 0, 0, time.UTC)

func fixedClock() time.Time { return fixedNow }

// fakeConsole grava as mensagens emitidas para inspeção nos testes.
type fakeConsole struct {
	infos     []string
	warnings  []string
	errors    []string
	successes []string
	printed   []string
	trends    [][]types.MonthlyCost

	spinning          bool
	logsWhileSpinning int
}

func (c *fakeConsole) track() {
	if c.spinning {
		c.logsWhileSpinning++
	}
}

func (c *fakeConsole) Print(a ...interface{})                 { c.printed = append(c.printed, fmt.Sprint(a...)) }
func (c *fakeConsole) Printf(format string, a ...interface{}) { c.printed = append(c.printed, fmt.Sprintf(format, a...)) }
func (c *fakeConsole) Println(a ...interface{})               { c.printed = append(c.printed, fmt.Sprintln(a...)) }
func (c *fakeConsole) LogInfo(format string, a ...interface{}) {
	c.track()
	c.infos = append(c.infos, fmt.Sprintf(format, a...))
}
func (c *fakeConsole) LogWarning(format string, a ...interface{}) {
	c.track()
	c.warnings = append(c.warnings, fmt.Sprintf(format, a...))
}
func (c *fakeConsole) LogError(format string, a ...interface{}) {
	c.track()
	c.errors = append(c.errors, fmt.Sprintf(format, a...))
}
func (c *fakeConsole) LogSuccess(format string, a ...interface{}) {
	c.track()
	c.successes = append(c.successes, fmt.Sprintf(format, a...))
}
func (c *fakeConsole) Status(string) types.StatusHandle {
	c.spinning = true
	return &fakeStatus{console: c}
}
func (c *fakeConsole) CreateTable() types.TableInterface { return &fakeTable{} }
func (c *fakeConsole) DisplayTrendBars(_ string, costs []types.MonthlyCost) {
	c.trends = append(c.trends, costs)
}

type fakeStatus struct {
	console *fakeConsole
}

func (s *fakeStatus) Update(string) {}
func (s *fakeStatus) Stop()         { s.console.spinning = false }

type fakeTable struct {
	rows [][]interface{}
}

func (t *fakeTable) AddColumn(string, ...interface{}) {}
func (t *fakeTable) AddRow(cells ...interface{})      { t.rows = append(t.rows, cells) }
func (t *fakeTable) Render() string                   { return fmt.Sprintf("table(%d rows)", len(t.rows)) }

// fakeExport registra os relatórios recebidos por formato.
type fakeExport struct {
	reports map[string]entity.BillingReport
	failCSV bool
}

func newFakeExport() *fakeExport {
	return &fakeExport{reports: map[string]entity.BillingReport{}}
}

func (e *fakeExport) ExportToCSV(report entity.BillingReport, filename, dir string) (string, error) {
	if e.failCSV {
		return "", errors.New("disk full")
	}
	e.reports["csv"] = report
	return dir + "/" + filename + ".csv", nil
}

func (e *fakeExport) ExportToJSON(report entity.BillingReport, filename, dir string) (string, error) {
	e.reports["json"] = report
	return dir + "/" + filename + ".json", nil
}

func (e *fakeExport) ExportToPDF(report entity.BillingReport, filename, dir string) (string, error) {
	e.reports["pdf"] = report
	return dir + "/" + filename + ".pdf", nil
}

type fakeConfigRepo struct {
	cfg *types.Config
	err error
}

func (r *fakeConfigRepo) LoadConfigFile(string) (*types.Config, error) {
	return r.cfg, r.err
}

// failingBillingRepo falha em todas as operações.
type failingBillingRepo struct{}

var errBackend = errors.New("backend unavailable")

func (failingBillingRepo) GetServiceCosts(context.Context, entity.BillingPeriod) ([]entity.ServiceCostRecord, error) {
	return nil, errBackend
}
func (failingBillingRepo) GetPeriodBaseline(context.Context, entity.BillingPeriod) (entity.PeriodBaseline, error) {
	return entity.PeriodBaseline{}, errBackend
}
func (failingBillingRepo) GetMonthlyBreakdown(context.Context) (entity.MonthlyBreakdown, error) {
	return entity.MonthlyBreakdown{}, errBackend
}
func (failingBillingRepo) GetOptimizationOpportunities(context.Context) ([]entity.OptimizationOpportunity, error) {
	return nil, errBackend
}

package console

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/diillson/aws-bill-analyzer-go/internal/shared/types"
	"github.com/pterm/pterm"
	"github.com/shopspring/decimal"
)

const trendBarWidth = 40

// Console escreve mensagens, tabelas e gráficos em um io.Writer usando pterm.
type Console struct {
	out io.Writer
}

// NewConsole cria um Console que escreve na saída padrão.
func NewConsole() *Console {
	return NewConsoleWithWriter(os.Stdout)
}

// NewConsoleWithWriter cria um Console que escreve em w.
func NewConsoleWithWriter(w io.Writer) *Console {
	return &Console{out: w}
}

func (c *Console) Print(a ...interface{}) {
	fmt.Fprint(c.out, a...)
}

func (c *Console) Printf(format string, a ...interface{}) {
	fmt.Fprintf(c.out, format, a...)
}

func (c *Console) Println(a ...interface{}) {
	fmt.Fprintln(c.out, a...)
}

func (c *Console) LogInfo(format string, a ...interface{}) {
	c.log(pterm.Info, format, a...)
}

func (c *Console) LogWarning(format string, a ...interface{}) {
	c.log(pterm.Warning, format, a...)
}

func (c *Console) LogError(format string, a ...interface{}) {
	c.log(pterm.Error, format, a...)
}

func (c *Console) LogSuccess(format string, a ...interface{}) {
	c.log(pterm.Success, format, a...)
}

func (c *Console) log(printer pterm.PrefixPrinter, format string, a ...interface{}) {
	fmt.Fprintln(c.out, printer.Sprintf(format, a...))
}

type statusHandle struct {
	spinner *pterm.SpinnerPrinter
}

// Status inicia um spinner no mesmo writer do console. Falhas ao iniciar o
// spinner deixam o handle inerte.
func (c *Console) Status(message string) types.StatusHandle {
	spinner, err := pterm.DefaultSpinner.
		WithWriter(c.out).
		WithRemoveWhenDone(true).
		Start(message)
	if err != nil {
		return &statusHandle{}
	}
	return &statusHandle{spinner: spinner}
}

func (h *statusHandle) Update(message string) {
	if h.spinner != nil {
		h.spinner.UpdateText(message)
	}
}

func (h *statusHandle) Stop() {
	if h.spinner != nil {
		_ = h.spinner.Stop()
	}
}

// Table acumula cabeçalho e linhas até o Render.
type Table struct {
	data pterm.TableData
}

func (c *Console) CreateTable() types.TableInterface {
	return &Table{data: pterm.TableData{{}}}
}

// AddColumn adiciona uma coluna ao cabeçalho. As opções são ignoradas.
func (t *Table) AddColumn(name string, _ ...interface{}) {
	t.data[0] = append(t.data[0], name)
}

func (t *Table) AddRow(cells ...interface{}) {
	row := make([]string, len(cells))
	for i, cell := range cells {
		row[i] = fmt.Sprint(cell)
	}
	t.data = append(t.data, row)
}

func (t *Table) Render() string {
	rendered, err := pterm.DefaultTable.
		WithHasHeader().
		WithBoxed().
		WithHeaderStyle(pterm.NewStyle(pterm.FgLightCyan)).
		WithData(t.data).
		Srender()
	if err != nil {
		return ""
	}
	return rendered
}

// DisplayTrendBars exibe gráficos de barras com a variação mês a mês.
func (c *Console) DisplayTrendBars(title string, monthlyCosts []types.MonthlyCost) {
	fmt.Fprintln(c.out, "\n"+RenderTrendBars(title, monthlyCosts))
}

// RenderTrendBars monta o painel de barras sem imprimir.
func RenderTrendBars(title string, monthlyCosts []types.MonthlyCost) string {
	maxCost := decimal.Zero
	for _, mc := range monthlyCosts {
		if mc.Cost.GreaterThan(maxCost) {
			maxCost = mc.Cost
		}
	}

	if maxCost.IsZero() {
		return pterm.Warning.Sprint("All costs are $0.00 for this period")
	}

	tableData := pterm.TableData{
		{"Month", "Cost", "", "MoM Change"},
	}

	hundred := decimal.NewFromInt(100)
	var prevCost *decimal.Decimal

	for _, mc := range monthlyCosts {
		barLength := int(mc.Cost.Div(maxCost).Mul(decimal.NewFromInt(trendBarWidth)).IntPart())
		bar := strings.Repeat("█", barLength)

		barColor := pterm.FgBlue.Sprint(bar)
		change := ""

		if prevCost != nil && !prevCost.IsZero() {
			changePercent := mc.Cost.Sub(*prevCost).Div(*prevCost).Mul(hundred).Round(2)
			switch {
			case changePercent.IsZero():
				change = pterm.FgYellow.Sprint("0%")
				barColor = pterm.FgYellow.Sprint(bar)
			case changePercent.IsPositive():
				change = pterm.FgRed.Sprintf("+%s%%", changePercent.StringFixed(2))
				barColor = pterm.FgRed.Sprint(bar)
			default:
				change = pterm.FgGreen.Sprintf("%s%%", changePercent.StringFixed(2))
				barColor = pterm.FgGreen.Sprint(bar)
			}
		}

		tableData = append(tableData, []string{
			mc.Month,
			"$" + mc.Cost.StringFixed(2),
			barColor,
			change,
		})

		currentCost := mc.Cost
		prevCost = &currentCost
	}

	renderedTable, _ := pterm.DefaultTable.WithHasHeader().WithData(tableData).Srender()

	return pterm.DefaultBox.WithTitle(title).WithBoxStyle(pterm.NewStyle(pterm.FgCyan)).Sprint(renderedTable)
}

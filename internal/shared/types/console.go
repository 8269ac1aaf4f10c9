package types

import "github.com/shopspring/decimal"

// ConsoleInterface define a interface para saída no console.
type ConsoleInterface interface {
	Print(a ...interface{})
	Printf(format string, a ...interface{})
	Println(a ...interface{})

	LogInfo(format string, a ...interface{})
	LogWarning(format string, a ...interface{})
	LogError(format string, a ...interface{})
	LogSuccess(format string, a ...interface{})

	Status(message string) StatusHandle

	CreateTable() TableInterface
	DisplayTrendBars(title string, monthlyCosts []MonthlyCost)
}

// StatusHandle é uma interface para atualizar uma mensagem de status.
type StatusHandle interface {
	Update(message string)
	Stop()
}

// TableInterface define a interface para criar e manipular tabelas.
type TableInterface interface {
	AddColumn(name string, options ...interface{})
	AddRow(cells ...interface{})
	Render() string
}

// MonthlyCost representa o custo para um mês específico, usado para gráficos de tendência.
type MonthlyCost struct {
	Month string          `json:"month"`
	Cost  decimal.Decimal `json:"cost"`
}

package types

import (
	"time"

	"github.com/shopspring/decimal"
)

// CLIArgs represents the command-line arguments.
type CLIArgs struct {
	ConfigFile     string
	ReportName     string
	ReportType     []string
	Dir            string
	ServicesFilter []string
	RegionsFilter  []string
	CostThreshold  *decimal.Decimal
	StartDate      *time.Time
	EndDate        *time.Time
	Year           int
	Month          int
	MonthsAhead    int

	// Flags informadas explicitamente na linha de comando; têm precedência sobre o arquivo de configuração.
	ExplicitFlags map[string]bool
}

// IsExplicit reports whether the named flag was set on the command line.
func (a *CLIArgs) IsExplicit(flag string) bool {
	return a.ExplicitFlags != nil && a.ExplicitFlags[flag]
}

package service

import (
	"fmt"
	"time"

	"github.com/diillson/aws-bill-analyzer-go/internal/domain/entity"
	"github.com/diillson/aws-bill-analyzer-go/internal/shared/types"
	"github.com/shopspring/decimal"
)

const (
	// MinForecastMonths é o menor horizonte de previsão aceito.
	MinForecastMonths = 1
	// MaxForecastMonths é o maior horizonte de previsão aceito.
	MaxForecastMonths = 12

	// forecastStepDays aproxima um mês por 30 dias ao gerar os rótulos.
	forecastStepDays = 30
	moneyPlaces      = 2
)

var (
	// BaseMonthlyCost é o custo mensal atual usado como ponto de partida.
	BaseMonthlyCost = decimal.RequireFromString("1775.95")

	// MonthlyGrowthRate é a taxa de crescimento composto aplicada a cada mês (5%).
	MonthlyGrowthRate = decimal.RequireFromString("0.05")
)

// Forecast projects the base monthly cost forward monthsAhead months using fixed
// compound growth. Valores são arredondados half-even para 2 casas; o total soma
// as projeções já arredondadas e arredonda no final.
func Forecast(monthsAhead int, now time.Time) (entity.MonthlyForecast, error) {
	if monthsAhead < MinForecastMonths || monthsAhead > MaxForecastMonths {
		return entity.MonthlyForecast{}, fmt.Errorf("%w: forecast period must be between %d and %d months",
			types.ErrInvalidInput, MinForecastMonths, MaxForecastMonths)
	}

	growthFactor := decimal.NewFromInt(1).Add(MonthlyGrowthRate)
	compound := decimal.NewFromInt(1)

	projections := make([]entity.MonthlyProjection, 0, monthsAhead)
	sum := decimal.Zero

	for month := 1; month <= monthsAhead; month++ {
		// Multiplicação repetida mantém o valor exato (sem Pow).
		compound = compound.Mul(growthFactor)
		projected := BaseMonthlyCost.Mul(compound)

		rounded := projected.RoundBank(moneyPlaces)
		projections = append(projections, entity.MonthlyProjection{
			Month:         now.AddDate(0, 0, forecastStepDays*month).Format("2006-01"),
			ProjectedCost: rounded,
			CostIncrease:  projected.Sub(BaseMonthlyCost).RoundBank(moneyPlaces),
		})
		sum = sum.Add(rounded)
	}

	return entity.MonthlyForecast{
		MonthsAhead:         monthsAhead,
		ForecastPeriod:      fmt.Sprintf("%d months", monthsAhead),
		BaseMonthlyCost:     BaseMonthlyCost,
		GrowthRate:          MonthlyGrowthRate,
		ProjectedGrowthRate: MonthlyGrowthRate.Mul(decimal.NewFromInt(100)).StringFixed(1) + "%",
		MonthlyProjections:  projections,
		TotalForecastCost:   sum.RoundBank(moneyPlaces),
	}, nil
}

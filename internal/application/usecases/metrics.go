package usecases

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/LeeFlannery/dashboard-playground/internal/domain/entities"
)

// Janela de comparação dos cards: últimos 15 dias contra os 15 anteriores
const cardPeriod = 15 * 24 * time.Hour

// DatePeriod representa um intervalo de datas [From, To)
type DatePeriod struct {
	From time.Time
	To   time.Time
}

func (p DatePeriod) contains(t time.Time) bool {
	return !t.Before(p.From) && t.Before(p.To)
}

// ComparisonPeriods retorna o período atual e o imediatamente anterior
// de mesma duração, terminando em now
func ComparisonPeriods(now time.Time) (current, previous DatePeriod) {
	current = DatePeriod{From: now.Add(-cardPeriod), To: now.Add(time.Nanosecond)}
	previous = DatePeriod{From: current.From.Add(-cardPeriod), To: current.From}
	return current, previous
}

// MetricCards calcula os cards de sessões, conversões e receita comparando
// o período atual com o anterior
func MetricCards(ds Dataset, now time.Time) []entities.MetricCard {
	current, previous := ComparisonPeriods(now)

	var sessionsCur, sessionsPrev int
	for i := range ds.Sessions {
		switch start := ds.Sessions[i].StartTime; {
		case current.contains(start):
			sessionsCur++
		case previous.contains(start):
			sessionsPrev++
		}
	}

	var conversionsCur, conversionsPrev int
	revenueCur, revenuePrev := decimal.Zero, decimal.Zero
	for i := range ds.Conversions {
		c := &ds.Conversions[i]
		value := decimal.NewFromFloat(c.Value)
		switch {
		case current.contains(c.Timestamp):
			conversionsCur++
			if c.IsPurchase() {
				revenueCur = revenueCur.Add(value)
			}
		case previous.contains(c.Timestamp):
			conversionsPrev++
			if c.IsPurchase() {
				revenuePrev = revenuePrev.Add(value)
			}
		}
	}

	sessions := calculateMetric("Sessions", float64(sessionsCur), float64(sessionsPrev))
	conversions := calculateMetric("Conversions", float64(conversionsCur), float64(conversionsPrev))
	revenue := calculateMetric("Revenue", revenueCur.Round(2).InexactFloat64(), revenuePrev.Round(2).InexactFloat64())
	revenue.ValuePrefix = "$"

	return []entities.MetricCard{sessions, conversions, revenue}
}

// calculateMetric monta um card com a variação percentual em relação ao
// período anterior
func calculateMetric(title string, current, previous float64) entities.MetricCard {
	var percentage float64

	if previous > 0 {
		percentage = (current - previous) / previous * 100
	} else if current > 0 {
		percentage = 100 // Se anterior era zero e atual é positivo, aumento de 100%
	}

	// Aplicar valor absoluto à porcentagem
	if percentage < 0 {
		percentage = -percentage
	}

	// Truncar para duas casas decimais
	percentage = float64(int(percentage*100)) / 100

	trend := entities.TrendNeutral
	switch {
	case current > previous:
		trend = entities.TrendUp
	case current < previous:
		trend = entities.TrendDown
	}

	return entities.MetricCard{
		Title:            title,
		Value:            current,
		Previous:         previous,
		ChangePercentage: percentage,
		TrendDirection:   trend,
	}
}

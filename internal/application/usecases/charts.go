package usecases

import (
	"math"
	"sort"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/LeeFlannery/dashboard-playground/internal/domain/entities"
	"github.com/LeeFlannery/dashboard-playground/internal/utils"
)

const geographicLimit = 8

// Faixas de duração de sessão em minutos; max 0 significa sem limite
var durationBuckets = []struct {
	name     string
	min, max int
}{
	{"0-5 min", 0, 5},
	{"5-15 min", 5, 15},
	{"15-30 min", 15, 30},
	{"30+ min", 30, 0},
}

// DailySessions conta sessões por dia de início, em ordem crescente de data.
// Só aparecem os dias presentes na entrada.
func DailySessions(sessions []entities.Session) []entities.ChartDataPoint {
	counts := make(map[string]int)
	for i := range sessions {
		counts[utils.DateKey(sessions[i].StartTime)]++
	}
	return dailySeries(counts)
}

// DeviceBreakdown retorna o percentual de sessões por tipo de dispositivo
func DeviceBreakdown(sessions []entities.Session) []entities.ChartDataPoint {
	counts := make(map[string]int)
	for i := range sessions {
		counts[capitalize(string(sessions[i].DeviceType))]++
	}
	return percentBreakdown(counts, len(sessions))
}

// ConversionFunnel conta conversões por etapa do funil. Cada etapa é limitada
// à contagem da etapa anterior, começando pelo total de sessões.
func ConversionFunnel(conversions []entities.Conversion, totalSessions int) []entities.ChartDataPoint {
	var stepCounts [entities.FunnelTotalSteps + 1]int
	for i := range conversions {
		if n := conversions[i].Funnel.StepNumber; n >= 1 && n <= entities.FunnelTotalSteps {
			stepCounts[n]++
		}
	}

	points := make([]entities.ChartDataPoint, 0, entities.FunnelTotalSteps)
	previous := totalSessions
	for _, stage := range entities.FunnelStages {
		count := min(stepCounts[stage.Number], previous)
		previous = count
		points = append(points, entities.ChartDataPoint{
			Name:  stage.Name,
			Value: count,
			Step:  stage.Number,
		})
	}
	return points
}

// TrafficSources classifica sessões em Organic, Social, Referral ou Direct
func TrafficSources(sessions []entities.Session) []entities.ChartDataPoint {
	counts := make(map[string]int)
	for i := range sessions {
		counts[ClassifyReferrer(sessions[i].Referrer)]++
	}
	return percentBreakdown(counts, len(sessions))
}

// ClassifyReferrer mapeia um referrer para a origem de tráfego exibida.
// A primeira regra que casa vence.
func ClassifyReferrer(referrer string) string {
	switch {
	case referrer == "":
		return "Direct"
	case strings.Contains(referrer, "google"):
		return "Organic"
	case strings.Contains(referrer, "facebook"),
		strings.Contains(referrer, "twitter"),
		strings.Contains(referrer, "linkedin"),
		strings.Contains(referrer, "reddit"):
		return "Social"
	default:
		return "Referral"
	}
}

// ConversionTypes conta conversões por tipo (valores absolutos)
func ConversionTypes(conversions []entities.Conversion) []entities.ChartDataPoint {
	counts := make(map[entities.ConversionType]int)
	for i := range conversions {
		counts[conversions[i].Type]++
	}

	points := make([]entities.ChartDataPoint, 0, len(counts))
	for kind, count := range counts {
		points = append(points, entities.ChartDataPoint{
			Name:  capitalize(string(kind)),
			Value: count,
			Type:  string(kind),
		})
	}
	sortByValueDesc(points)
	return points
}

// BrowserBreakdown retorna o percentual de sessões por navegador
func BrowserBreakdown(sessions []entities.Session) []entities.ChartDataPoint {
	counts := make(map[string]int)
	for i := range sessions {
		counts[sessions[i].Browser]++
	}
	return percentBreakdown(counts, len(sessions))
}

// GeographicBreakdown retorna o percentual de sessões dos 8 principais países
func GeographicBreakdown(sessions []entities.Session) []entities.ChartDataPoint {
	counts := make(map[string]int)
	for i := range sessions {
		counts[sessions[i].Location.Country]++
	}
	points := percentBreakdown(counts, len(sessions))
	if len(points) > geographicLimit {
		points = points[:geographicLimit]
	}
	return points
}

// RevenueOverTime soma o valor das compras por dia, arredondado para inteiro
func RevenueOverTime(conversions []entities.Conversion) []entities.ChartDataPoint {
	totals := make(map[string]decimal.Decimal)
	for i := range conversions {
		c := &conversions[i]
		if !c.IsPurchase() {
			continue
		}
		key := utils.DateKey(c.Timestamp)
		totals[key] = totals[key].Add(decimal.NewFromFloat(c.Value))
	}

	values := make(map[string]int, len(totals))
	for key, total := range totals {
		values[key] = int(total.Round(0).IntPart())
	}
	return dailySeries(values)
}

// SessionDurationBuckets distribui as sessões nas faixas fixas de duração
func SessionDurationBuckets(sessions []entities.Session) []entities.ChartDataPoint {
	points := make([]entities.ChartDataPoint, len(durationBuckets))
	for i, bucket := range durationBuckets {
		count := 0
		for j := range sessions {
			d := sessions[j].Duration
			if d >= bucket.min && (bucket.max == 0 || d < bucket.max) {
				count++
			}
		}
		points[i] = entities.ChartDataPoint{
			Name:       bucket.name,
			Value:      count,
			Percentage: entities.IntPtr(percentOf(count, len(sessions))),
		}
	}
	return points
}

// dailySeries converte um mapa data → valor em pontos ordenados por data
func dailySeries(values map[string]int) []entities.ChartDataPoint {
	keys := make([]string, 0, len(values))
	for key := range values {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	points := make([]entities.ChartDataPoint, 0, len(keys))
	for _, key := range keys {
		name := key
		if day, err := utils.ParseDate(key); err == nil {
			name = utils.DisplayDate(day)
		}
		points = append(points, entities.ChartDataPoint{
			Name:  name,
			Value: values[key],
			Date:  key,
		})
	}
	return points
}

func percentBreakdown(counts map[string]int, total int) []entities.ChartDataPoint {
	points := make([]entities.ChartDataPoint, 0, len(counts))
	for name, count := range counts {
		points = append(points, entities.ChartDataPoint{
			Name:  name,
			Value: percentOf(count, total),
			Count: entities.IntPtr(count),
		})
	}
	sortByValueDesc(points)
	return points
}

// percentOf arredonda para o inteiro mais próximo; total zero resulta em 0
func percentOf(count, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(float64(count) / float64(total) * 100))
}

// sortByValueDesc ordena por valor decrescente e, em empate, por contagem
// bruta decrescente e depois por nome
func sortByValueDesc(points []entities.ChartDataPoint) {
	sort.SliceStable(points, func(i, j int) bool {
		if points[i].Value != points[j].Value {
			return points[i].Value > points[j].Value
		}
		ci, cj := derefCount(points[i]), derefCount(points[j])
		if ci != cj {
			return ci > cj
		}
		return points[i].Name < points[j].Name
	})
}

func derefCount(p entities.ChartDataPoint) int {
	if p.Count == nil {
		return p.Value
	}
	return *p.Count
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

package usecases

import (
	"math"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/LeeFlannery/dashboard-playground/internal/domain/entities"
)

// Páginas usadas para sintetizar a trilha de navegação de cada sessão
var summaryPages = []string{
	"/dashboard",
	"/analytics",
	"/users",
	"/settings",
	"/reports",
	"/profile",
	"/help",
	"/pricing",
}

const (
	topPagesLimit     = 8
	uniqueViewsFactor = 0.7
	defaultSourceRate = 0.10
)

// RateSource fornece números em [0, 1) para a estimativa de conversões por origem
type RateSource interface {
	Float64() float64
}

// Summarize agrega sessões, usuários e conversões no resumo do dashboard.
// Com src nil a taxa de conversão estimada por origem é fixa em 10%.
func Summarize(sessions []entities.Session, users []entities.User, conversions []entities.Conversion, src RateSource) entities.DashboardSummary {
	summary := entities.DashboardSummary{
		TotalUsers:    len(users),
		TotalSessions: len(sessions),
		TopPages:      topPages(sessions),
		TopSources:    topSources(sessions, src),
	}

	for i := range users {
		if users[i].IsActive() {
			summary.ActiveUsers++
		}
	}

	revenue := decimal.Zero
	for i := range conversions {
		if conversions[i].IsPurchase() {
			revenue = revenue.Add(decimal.NewFromFloat(conversions[i].Value))
		}
	}
	summary.TotalRevenue = revenue.Round(2).InexactFloat64()

	var totalDuration int
	var totalBounce float64
	for i := range sessions {
		totalDuration += sessions[i].Duration
		totalBounce += sessions[i].BounceRate
	}
	summary.ConversionRate = safeRatio(float64(len(conversions)), len(sessions))
	summary.AverageSessionDuration = safeRatio(float64(totalDuration), len(sessions))
	summary.BounceRate = safeRatio(totalBounce, len(sessions))

	return summary
}

// safeRatio retorna 0 quando o denominador é zero
func safeRatio(value float64, total int) float64 {
	if total == 0 {
		return 0
	}
	return value / float64(total)
}

func topPages(sessions []entities.Session) []entities.PageStat {
	views := make(map[string]int, len(summaryPages))
	for i := range sessions {
		n := min(sessions[i].PageViews, len(summaryPages))
		for _, page := range summaryPages[:max(n, 0)] {
			views[page]++
		}
	}

	stats := make([]entities.PageStat, 0, len(views))
	for page, count := range views {
		stats = append(stats, entities.PageStat{
			Path:        page,
			Views:       count,
			UniqueViews: int(math.Floor(float64(count) * uniqueViewsFactor)),
		})
	}
	sort.Slice(stats, func(i, j int) bool {
		if stats[i].Views != stats[j].Views {
			return stats[i].Views > stats[j].Views
		}
		return stats[i].Path < stats[j].Path
	})
	if len(stats) > topPagesLimit {
		stats = stats[:topPagesLimit]
	}
	return stats
}

func topSources(sessions []entities.Session, src RateSource) []entities.SourceStat {
	counts := make(map[string]int, 2)
	for i := range sessions {
		if sessions[i].HasReferrer() {
			counts["referral"]++
		} else {
			counts["direct"]++
		}
	}

	stats := make([]entities.SourceStat, 0, len(counts))
	for source, count := range counts {
		stats = append(stats, entities.SourceStat{Source: source, Sessions: count})
	}
	sort.Slice(stats, func(i, j int) bool {
		if stats[i].Sessions != stats[j].Sessions {
			return stats[i].Sessions > stats[j].Sessions
		}
		return stats[i].Source < stats[j].Source
	})

	// taxas sorteadas na ordem final das origens
	for i := range stats {
		rate := defaultSourceRate
		if src != nil {
			rate = 0.05 + src.Float64()*0.10
		}
		stats[i].Conversions = int(math.Floor(float64(stats[i].Sessions) * rate))
	}
	return stats
}

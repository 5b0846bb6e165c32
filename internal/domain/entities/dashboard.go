package entities

import (
	"crypto/md5"
	"encoding/json"
	"fmt"
	"time"
)

// DashboardUnified representa a resposta consolidada do dashboard
type DashboardUnified struct {
	SnapshotID string                      `json:"snapshotId"`
	Summary    DashboardSummary            `json:"summary"`
	Cards      []MetricCard                `json:"cards"`
	Charts     map[string][]ChartDataPoint `json:"charts"`
	Meta       DashboardMeta               `json:"meta"`
	ETag       string                      `json:"-"` // Campo interno para geração de ETag
}

// DashboardSummary é o read-model agregado de um snapshot
type DashboardSummary struct {
	TotalUsers             int          `json:"totalUsers"`
	ActiveUsers            int          `json:"activeUsers"`
	TotalSessions          int          `json:"totalSessions"`
	TotalRevenue           float64      `json:"totalRevenue"`
	ConversionRate         float64      `json:"conversionRate"`
	AverageSessionDuration float64      `json:"averageSessionDuration"`
	BounceRate             float64      `json:"bounceRate"`
	TopPages               []PageStat   `json:"topPages"`
	TopSources             []SourceStat `json:"topSources"`
}

// PageStat contém visualizações sintetizadas de uma página
type PageStat struct {
	Path        string `json:"path"`
	Views       int    `json:"views"`
	UniqueViews int    `json:"uniqueViews"`
}

// SourceStat contém sessões e conversões estimadas por origem
type SourceStat struct {
	Source      string `json:"source"`
	Sessions    int    `json:"sessions"`
	Conversions int    `json:"conversions"`
}

// TrendDirection indica a direção da variação de um card
type TrendDirection string

const (
	TrendUp      TrendDirection = "up"
	TrendDown    TrendDirection = "down"
	TrendNeutral TrendDirection = "neutral"
)

// MetricCard contém uma métrica com comparativo de período anterior
type MetricCard struct {
	Title            string         `json:"title"`
	Value            float64        `json:"value"`
	Previous         float64        `json:"previous"`
	ChangePercentage float64        `json:"changePercentage"`
	TrendDirection   TrendDirection `json:"trendDirection"`
	ValuePrefix      string         `json:"valuePrefix,omitempty"`
	ValueSuffix      string         `json:"valueSuffix,omitempty"`
}

// DashboardMeta contém metadados sobre o snapshot e os filtros aplicados
type DashboardMeta struct {
	Seed        uint64            `json:"seed"`
	GeneratedAt time.Time         `json:"generatedAt"`
	Filters     map[string]string `json:"filters,omitempty"`
}

// CalculateETag gera um hash único para identificar a versão dos dados.
// Se a serialização falhar, o ETag fica vazio e a resposta não é cacheável.
func (d *DashboardUnified) CalculateETag() string {
	d.ETag = ""
	data, err := json.Marshal(d)
	if err != nil {
		return ""
	}
	hash := md5.Sum(data)
	d.ETag = fmt.Sprintf(`W/"%x"`, hash)
	return d.ETag
}

package usecases

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"sort"
	"strings"
	"time"

	"github.com/LeeFlannery/dashboard-playground/internal/domain/entities"
	"github.com/LeeFlannery/dashboard-playground/internal/domain/repositories"
	"github.com/LeeFlannery/dashboard-playground/internal/infrastructure/cache"
	"github.com/LeeFlannery/dashboard-playground/internal/infrastructure/mockdata"
)

// ErrUnknownChart é retornado para nomes de gráfico não registrados
var ErrUnknownChart = errors.New("gráfico desconhecido")

const (
	defaultSnapshotTTL   = 15 * time.Minute
	defaultTimeSeriesLen = 30

	// Sais derivam fontes independentes a partir da semente do snapshot
	summarySalt    uint64 = 0x5a17
	timeSeriesSalt uint64 = 0x7153
)

// DashboardRequest identifica o snapshot e os filtros de uma requisição.
// Sem SnapshotID um novo snapshot é gerado com Seed (ou semente aleatória).
type DashboardRequest struct {
	SnapshotID string
	Seed       *uint64
	Filters    DashboardFilters
}

// DashboardOptions configura o caso de uso do dashboard
type DashboardOptions struct {
	SnapshotTTL    time.Duration
	DefaultSeed    uint64 // 0 sorteia uma semente por snapshot
	TimeSeriesDays int
	Clock          func() time.Time
}

// DashboardUseCase define a interface para operações do dashboard unificado
type DashboardUseCase interface {
	CreateSnapshot(ctx context.Context, seed *uint64) (entities.SnapshotInfo, error)
	GetSnapshot(ctx context.Context, id string) (entities.SnapshotInfo, error)
	GetUnifiedDashboard(ctx context.Context, req DashboardRequest) (*entities.DashboardUnified, error)
	GetSummary(ctx context.Context, req DashboardRequest) (string, entities.DashboardSummary, error)
	GetChart(ctx context.Context, name string, req DashboardRequest) (string, []entities.ChartDataPoint, error)
	ListSessions(ctx context.Context, req DashboardRequest, page, limit int) (Page[entities.Session], error)
	ListUsers(ctx context.Context, req DashboardRequest, page, limit int) (Page[entities.User], error)
	ListConversions(ctx context.Context, req DashboardRequest, page, limit int) (Page[entities.Conversion], error)
	PruneExpired(ctx context.Context) (int, error)
}

type chartBuilder func(ds Dataset) []entities.ChartDataPoint

type dashboardUseCase struct {
	snapshots  repositories.SnapshotRepository
	dashboards *cache.Cache[*entities.DashboardUnified]
	charts     map[string]chartBuilder
	opts       DashboardOptions
}

// NewDashboardUseCase cria o caso de uso do dashboard sobre um repositório de snapshots
func NewDashboardUseCase(snapshots repositories.SnapshotRepository, opts DashboardOptions) DashboardUseCase {
	if opts.SnapshotTTL <= 0 {
		opts.SnapshotTTL = defaultSnapshotTTL
	}
	if opts.TimeSeriesDays <= 0 {
		opts.TimeSeriesDays = defaultTimeSeriesLen
	}
	if opts.Clock == nil {
		opts.Clock = time.Now
	}

	uc := &dashboardUseCase{
		snapshots:  snapshots,
		dashboards: cache.NewWithClock[*entities.DashboardUnified](opts.Clock),
		opts:       opts,
	}
	uc.charts = chartRegistry(uc.timeSeries)
	return uc
}

// ChartNames retorna os nomes de gráfico aceitos, em ordem alfabética
func ChartNames() []string {
	registry := chartRegistry(nil)
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func chartRegistry(timeSeries chartBuilder) map[string]chartBuilder {
	return map[string]chartBuilder{
		"daily-sessions":   func(ds Dataset) []entities.ChartDataPoint { return DailySessions(ds.Sessions) },
		"devices":          func(ds Dataset) []entities.ChartDataPoint { return DeviceBreakdown(ds.Sessions) },
		"funnel":           func(ds Dataset) []entities.ChartDataPoint { return ConversionFunnel(ds.Conversions, len(ds.Sessions)) },
		"traffic-sources":  func(ds Dataset) []entities.ChartDataPoint { return TrafficSources(ds.Sessions) },
		"conversion-types": func(ds Dataset) []entities.ChartDataPoint { return ConversionTypes(ds.Conversions) },
		"browsers":         func(ds Dataset) []entities.ChartDataPoint { return BrowserBreakdown(ds.Sessions) },
		"geography":        func(ds Dataset) []entities.ChartDataPoint { return GeographicBreakdown(ds.Sessions) },
		"revenue":          func(ds Dataset) []entities.ChartDataPoint { return RevenueOverTime(ds.Conversions) },
		"session-duration": func(ds Dataset) []entities.ChartDataPoint { return SessionDurationBuckets(ds.Sessions) },
		"time-series":      timeSeries,
	}
}

func (uc *dashboardUseCase) CreateSnapshot(ctx context.Context, seed *uint64) (entities.SnapshotInfo, error) {
	snap, err := uc.generate(ctx, seed)
	if err != nil {
		return entities.SnapshotInfo{}, err
	}
	return snap.Info(), nil
}

func (uc *dashboardUseCase) GetSnapshot(ctx context.Context, id string) (entities.SnapshotInfo, error) {
	snap, err := uc.snapshots.FindByID(ctx, id)
	if err != nil {
		return entities.SnapshotInfo{}, err
	}
	return snap.Info(), nil
}

// GetUnifiedDashboard calcula resumo, cards e todos os gráficos a partir de
// um único snapshot
func (uc *dashboardUseCase) GetUnifiedDashboard(ctx context.Context, req DashboardRequest) (*entities.DashboardUnified, error) {
	snap, err := uc.resolve(ctx, req)
	if err != nil {
		return nil, err
	}

	params := req.Filters.Params()
	key := dashboardKey(snap.ID, params)
	if cached, ok := uc.dashboards.Get(key); ok {
		return cached, nil
	}

	ds := req.Filters.Apply(snap)
	result := &entities.DashboardUnified{
		SnapshotID: snap.ID,
		Summary:    uc.summarize(ds),
		Cards:      MetricCards(ds, snap.GeneratedAt),
		Charts:     make(map[string][]entities.ChartDataPoint, len(uc.charts)),
		Meta: entities.DashboardMeta{
			Seed:        snap.Seed,
			GeneratedAt: snap.GeneratedAt,
			Filters:     params,
		},
	}
	for name, build := range uc.charts {
		result.Charts[name] = build(ds)
	}
	result.CalculateETag()

	uc.dashboards.Set(key, result, uc.opts.SnapshotTTL)
	return result, nil
}

func (uc *dashboardUseCase) GetSummary(ctx context.Context, req DashboardRequest) (string, entities.DashboardSummary, error) {
	snap, err := uc.resolve(ctx, req)
	if err != nil {
		return "", entities.DashboardSummary{}, err
	}
	return snap.ID, uc.summarize(req.Filters.Apply(snap)), nil
}

func (uc *dashboardUseCase) GetChart(ctx context.Context, name string, req DashboardRequest) (string, []entities.ChartDataPoint, error) {
	build, ok := uc.charts[name]
	if !ok {
		return "", nil, fmt.Errorf("%w: %s", ErrUnknownChart, name)
	}
	snap, err := uc.resolve(ctx, req)
	if err != nil {
		return "", nil, err
	}
	return snap.ID, build(req.Filters.Apply(snap)), nil
}

func (uc *dashboardUseCase) ListSessions(ctx context.Context, req DashboardRequest, page, limit int) (Page[entities.Session], error) {
	snap, err := uc.resolve(ctx, req)
	if err != nil {
		return Page[entities.Session]{}, err
	}
	return Paginate(snap.ID, req.Filters.Apply(snap).Sessions, page, limit), nil
}

func (uc *dashboardUseCase) ListUsers(ctx context.Context, req DashboardRequest, page, limit int) (Page[entities.User], error) {
	snap, err := uc.resolve(ctx, req)
	if err != nil {
		return Page[entities.User]{}, err
	}
	return Paginate(snap.ID, req.Filters.Apply(snap).Users, page, limit), nil
}

func (uc *dashboardUseCase) ListConversions(ctx context.Context, req DashboardRequest, page, limit int) (Page[entities.Conversion], error) {
	snap, err := uc.resolve(ctx, req)
	if err != nil {
		return Page[entities.Conversion]{}, err
	}
	return Paginate(snap.ID, req.Filters.Apply(snap).Conversions, page, limit), nil
}

// PruneExpired remove snapshots e dashboards calculados que expiraram
func (uc *dashboardUseCase) PruneExpired(ctx context.Context) (int, error) {
	removed, err := uc.snapshots.DeleteExpired(ctx)
	if err != nil {
		return 0, fmt.Errorf("erro ao remover snapshots expirados: %w", err)
	}
	return removed + uc.dashboards.DeleteExpired(), nil
}

// resolve carrega o snapshot pedido ou gera um novo
func (uc *dashboardUseCase) resolve(ctx context.Context, req DashboardRequest) (*entities.Snapshot, error) {
	if req.SnapshotID != "" {
		snap, err := uc.snapshots.FindByID(ctx, req.SnapshotID)
		if err != nil {
			return nil, fmt.Errorf("erro ao carregar snapshot %s: %w", req.SnapshotID, err)
		}
		return snap, nil
	}
	return uc.generate(ctx, req.Seed)
}

func (uc *dashboardUseCase) generate(ctx context.Context, seed *uint64) (*entities.Snapshot, error) {
	s := uc.opts.DefaultSeed
	if seed != nil {
		s = *seed
	}
	if s == 0 {
		s = rand.Uint64()
	}

	snap, err := mockdata.NewGenerator(s, uc.opts.Clock()).Snapshot()
	if err != nil {
		return nil, fmt.Errorf("erro ao gerar snapshot: %w", err)
	}

	// O id depende só da semente: enquanto o snapshot existir, ele é reutilizado
	stored, err := uc.snapshots.FindByID(ctx, snap.ID)
	switch {
	case err == nil:
		return stored, nil
	case !errors.Is(err, repositories.ErrSnapshotNotFound):
		return nil, fmt.Errorf("erro ao carregar snapshot %s: %w", snap.ID, err)
	}

	if err := uc.snapshots.Save(ctx, &snap, uc.opts.SnapshotTTL); err != nil {
		return nil, fmt.Errorf("erro ao salvar snapshot: %w", err)
	}
	uc.dashboards.DeletePrefix(snap.ID)
	return &snap, nil
}

func (uc *dashboardUseCase) summarize(ds Dataset) entities.DashboardSummary {
	return Summarize(ds.Sessions, ds.Users, ds.Conversions, mockdata.NewRandom(ds.Seed^summarySalt))
}

func (uc *dashboardUseCase) timeSeries(ds Dataset) []entities.ChartDataPoint {
	return mockdata.NewGenerator(ds.Seed^timeSeriesSalt, ds.GeneratedAt).TimeSeries(uc.opts.TimeSeriesDays)
}

func dashboardKey(snapshotID string, params map[string]string) string {
	keys := make([]string, 0, len(params))
	for k := range params {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	b.WriteString(snapshotID)
	for _, k := range keys {
		b.WriteString("|" + k + "=" + params[k])
	}
	return b.String()
}

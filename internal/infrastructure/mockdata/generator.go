// Package mockdata synthesizes the demo dataset behind the dashboard:
// sessions, users and conversions with plausible magnitudes.
package mockdata

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/LeeFlannery/dashboard-playground/internal/domain/entities"
	"github.com/LeeFlannery/dashboard-playground/internal/utils"
)

// Fixed collection sizes.
const (
	SessionCount    = 100
	UserCount       = 50
	ConversionCount = 200
)

const (
	activityWindow = 30 * 24 * time.Hour
	signupWindow   = 365 * 24 * time.Hour
	productCount   = 20
)

// Generator produces mock collections from a single seeded source. Two
// generators built with the same seed and clock produce identical output.
type Generator struct {
	rnd  *Random
	seed uint64
	now  time.Time
}

// NewGenerator returns a Generator whose draws are determined by seed and
// whose time windows end at now.
func NewGenerator(seed uint64, now time.Time) *Generator {
	return &Generator{
		rnd:  NewRandom(seed),
		seed: seed,
		now:  now.UTC(),
	}
}

// Seed returns the seed the generator was built with.
func (g *Generator) Seed() uint64 {
	return g.seed
}

// Random exposes the underlying source for callers that need further draws
// consistent with this generator (e.g. summary estimates).
func (g *Generator) Random() *Random {
	return g.rnd
}

// Sessions returns SessionCount sessions. User ids are sampled from the id
// space of Users without reference to a generated user set.
func (g *Generator) Sessions() []entities.Session {
	return g.sessions(nil)
}

// Users returns UserCount users.
func (g *Generator) Users() []entities.User {
	users := make([]entities.User, UserCount)
	for i := range users {
		users[i] = g.user(i + 1)
	}
	return users
}

// Conversions returns ConversionCount conversions. User and session ids are
// sampled from the id spaces of Users and Sessions.
func (g *Generator) Conversions() []entities.Conversion {
	return g.conversions(nil)
}

// Snapshot runs one closed generation step: users first, then sessions owned
// by those users, then conversions attached to those sessions.
func (g *Generator) Snapshot() (entities.Snapshot, error) {
	id, err := uuid.NewRandomFromReader(g.rnd)
	if err != nil {
		return entities.Snapshot{}, fmt.Errorf("generate snapshot id: %w", err)
	}

	users := g.Users()
	userIDs := make([]string, len(users))
	for i, u := range users {
		userIDs[i] = u.ID
	}
	sessions := g.sessions(userIDs)
	conversions := g.conversions(sessions)

	return entities.Snapshot{
		ID:          id.String(),
		Seed:        g.seed,
		GeneratedAt: g.now,
		Sessions:    sessions,
		Users:       users,
		Conversions: conversions,
	}, nil
}

// TimeSeries returns one point per day for the last days days, oldest first,
// each with a value in [50, 200].
func (g *Generator) TimeSeries(days int) []entities.ChartDataPoint {
	if days <= 0 {
		return []entities.ChartDataPoint{}
	}
	today := utils.StartOfDay(g.now)
	keys := utils.GenerateDateRange(today.AddDate(0, 0, -(days-1)), today)
	points := make([]entities.ChartDataPoint, len(keys))
	for i, key := range keys {
		day, _ := utils.ParseDate(key)
		points[i] = entities.ChartDataPoint{
			Name:  utils.DisplayDate(day),
			Value: g.rnd.IntBetween(50, 200),
			Date:  key,
		}
	}
	return points
}

func (g *Generator) sessions(userIDs []string) []entities.Session {
	sessions := make([]entities.Session, SessionCount)
	for i := range sessions {
		var userID string
		if len(userIDs) > 0 {
			userID = Choice(g.rnd, userIDs)
		} else {
			userID = userIDFor(g.rnd.IntBetween(1, UserCount))
		}
		sessions[i] = g.session(i+1, userID)
	}
	return sessions
}

func (g *Generator) session(n int, userID string) entities.Session {
	country := Choice(g.rnd, countries)
	city := Choice(g.rnd, citiesByCountry[country])
	start := g.rnd.DateBetween(g.now.Add(-activityWindow), g.now)
	duration := g.rnd.IntBetween(2, 45)
	end := start.Add(time.Duration(duration) * time.Minute)

	s := entities.Session{
		ID:         "session_" + strconv.Itoa(n),
		UserID:     userID,
		StartTime:  start,
		EndTime:    &end,
		Duration:   duration,
		PageViews:  g.rnd.IntBetween(1, 15),
		BounceRate: g.rnd.Float64Between(0.1, 0.9),
		DeviceType: Choice(g.rnd, deviceTypes),
		Browser:    Choice(g.rnd, browsers),
		Location: entities.Location{
			Country: country,
			City:    city,
			Region:  strconv.Itoa(g.rnd.IntBetween(1, 10)),
		},
	}
	if g.rnd.Chance(0.7) {
		s.Referrer = "https://" + Choice(g.rnd, referrerDomains)
	}
	s.IsActive = g.rnd.Chance(0.2)
	return s
}

func (g *Generator) user(n int) entities.User {
	first := Choice(g.rnd, firstNames)
	last := Choice(g.rnd, lastNames)
	slug := strings.ToLower(first) + "_" + strings.ToLower(last)
	createdAt := g.rnd.DateBetween(g.now.Add(-signupWindow), g.now)
	lastLogin := g.rnd.DateBetween(createdAt, g.now)

	u := entities.User{
		ID:     userIDFor(n),
		Email:  strings.ToLower(first) + "." + strings.ToLower(last) + "@" + Choice(g.rnd, emailDomains),
		Name:   first + " " + last,
		Role:   Choice(g.rnd, userRoles),
		Status: Choice(g.rnd, userStatuses),

		CreatedAt: createdAt,
	}
	u.Avatar = AvatarURLFor(u.Role, slug)
	if g.rnd.Chance(0.9) {
		u.LastLoginAt = &lastLogin
	}
	u.TotalSessions = g.rnd.IntBetween(1, 50)
	u.TotalTimeSpent = g.rnd.IntBetween(30, 2400)
	u.Preferences = entities.UserPreferences{
		Theme:         Choice(g.rnd, themes),
		Notifications: g.rnd.Chance(0.7),
		Language:      Choice(g.rnd, languages),
	}
	u.Metrics = entities.UserMetrics{
		ConversionRate:         g.rnd.Float64Between(0.02, 0.17),
		AverageSessionDuration: g.rnd.IntBetween(5, 35),
		TotalRevenue:           money(g.rnd.Float64Between(100, 5100)),
	}
	return u
}

func (g *Generator) conversions(sessions []entities.Session) []entities.Conversion {
	conversions := make([]entities.Conversion, ConversionCount)
	for i := range conversions {
		var userID, sessionID string
		if len(sessions) > 0 {
			s := Choice(g.rnd, sessions)
			userID, sessionID = s.UserID, s.ID
		} else {
			userID = userIDFor(g.rnd.IntBetween(1, UserCount))
			sessionID = "session_" + strconv.Itoa(g.rnd.IntBetween(1, SessionCount))
		}
		conversions[i] = g.conversion(i+1, userID, sessionID)
	}
	return conversions
}

func (g *Generator) conversion(n int, userID, sessionID string) entities.Conversion {
	kind := Choice(g.rnd, conversionTypes)
	stage, _ := entities.StageByNumber(g.rnd.IntBetween(1, entities.FunnelTotalSteps))

	c := entities.Conversion{
		ID:        "conversion_" + strconv.Itoa(n),
		UserID:    userID,
		SessionID: sessionID,
		Type:      kind,
		Timestamp: g.rnd.DateBetween(g.now.Add(-activityWindow), g.now),
		Source:    Choice(g.rnd, conversionSources),
		Funnel: entities.FunnelPosition{
			Step:       stage.Key,
			StepNumber: stage.Number,
			TotalSteps: entities.FunnelTotalSteps,
		},
	}
	if g.rnd.Chance(0.6) {
		c.Campaign = Choice(g.rnd, campaigns)
	}
	if c.IsPurchase() {
		c.Value = money(g.rnd.Float64Between(25, 525))
		c.Currency = "USD"
		c.Metadata = &entities.ConversionMetadata{
			ProductID: "prod_" + strconv.Itoa(g.rnd.IntBetween(1, productCount)),
			Category:  Choice(g.rnd, productCategories),
		}
	}
	return c
}

func userIDFor(n int) string {
	return "user_" + strconv.Itoa(n)
}

// money rounds v to cents.
func money(v float64) float64 {
	return decimal.NewFromFloat(v).Round(2).InexactFloat64()
}

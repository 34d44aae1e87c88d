package server

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"path/filepath"
	"strings"
	"testing"

	"cs2-tracker/internal/api"
	"cs2-tracker/internal/charts"
	"cs2-tracker/internal/config"
	"cs2-tracker/internal/constants"
	"cs2-tracker/internal/database"
	"cs2-tracker/internal/db"
	"cs2-tracker/internal/domain"
	"cs2-tracker/internal/repository"
	"cs2-tracker/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const testSteamID = "76561198000000001"

type MockProfileSource struct {
	mock.Mock
}

func (m *MockProfileSource) FetchProfile(ctx context.Context, steamID string) api.Result[api.Profile] {
	args := m.Called(ctx, steamID)
	return args.Get(0).(api.Result[api.Profile])
}

func (m *MockProfileSource) FetchPlaytime(ctx context.Context, steamID string) api.Result[float64] {
	args := m.Called(ctx, steamID)
	return args.Get(0).(api.Result[float64])
}

type testEnv struct {
	router  *gin.Engine
	source  *MockProfileSource
	players *repository.PlayerRepository
	stats   *repository.MonthlyStatRepository
}

func setupRouter(t *testing.T) *testEnv {
	t.Helper()

	cfg := &config.Config{DBPath: filepath.Join(t.TempDir(), "server.db"), GinMode: gin.TestMode}
	sqlDB, err := database.New(cfg, zerolog.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	queries := db.New(sqlDB)
	players := repository.NewPlayerRepository(queries, zerolog.Nop())
	stats := repository.NewMonthlyStatRepository(queries, zerolog.Nop())

	renderer, err := charts.NewRenderer(zerolog.Nop())
	require.NoError(t, err)

	source := new(MockProfileSource)
	srv := NewServer(
		service.NewPlayerService(source, players, stats, renderer, zerolog.Nop()),
		service.NewMonthlyStatService(stats, players, zerolog.Nop()),
		zerolog.Nop(),
	)
	router, err := NewRouter(srv, cfg)
	require.NoError(t, err)

	return &testEnv{router: router, source: source, players: players, stats: stats}
}

func (e *testEnv) do(req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	e.router.ServeHTTP(rec, req)
	return rec
}

func (e *testEnv) get(path string) *httptest.ResponseRecorder {
	return e.do(httptest.NewRequest(http.MethodGet, path, nil))
}

func (e *testEnv) postForm(path string, form url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return e.do(req)
}

func (e *testEnv) sendJSON(method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	return e.do(req)
}

func (e *testEnv) seedPlayer(t *testing.T, nickname string) *domain.Player {
	t.Helper()
	ctx := context.Background()

	player, err := e.players.Create(ctx, testSteamID)
	require.NoError(t, err)
	if nickname != "" {
		player.Nickname = nickname
		require.NoError(t, e.players.UpdateProfile(ctx, player))
	}
	return player
}

func (e *testEnv) seedStat(t *testing.T, player *domain.Player, year, month, matches, kills, deaths, wins int) *domain.MonthlyStat {
	t.Helper()
	stat := &domain.MonthlyStat{
		PlayerID:      player.ID,
		Year:          year,
		Month:         month,
		MatchesPlayed: matches,
		Kills:         kills,
		Deaths:        deaths,
		Wins:          wins,
	}
	require.NoError(t, e.stats.Create(context.Background(), stat))
	return stat
}

func statForm(year, month, matches, kills, deaths, wins string) url.Values {
	return url.Values{
		"year":           {year},
		"month":          {month},
		"matches_played": {matches},
		"kills":          {kills},
		"deaths":         {deaths},
		"wins":           {wins},
	}
}

// flashFrom returns the flash cookie set on the response, if any.
func flashFrom(rec *httptest.ResponseRecorder) *http.Cookie {
	for _, c := range rec.Result().Cookies() {
		if c.Name == constants.FlashCookieName && c.MaxAge > 0 {
			return c
		}
	}
	return nil
}

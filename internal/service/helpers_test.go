package service

import (
	"context"
	"path/filepath"
	"testing"

	"cs2-tracker/internal/api"
	"cs2-tracker/internal/charts"
	"cs2-tracker/internal/config"
	"cs2-tracker/internal/database"
	"cs2-tracker/internal/db"
	"cs2-tracker/internal/repository"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

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
	players   *repository.PlayerRepository
	stats     *repository.MonthlyStatRepository
	source    *MockProfileSource
	playerSvc *PlayerService
	statSvc   *MonthlyStatService
}

func setupServices(t *testing.T) *testEnv {
	t.Helper()

	cfg := &config.Config{DBPath: filepath.Join(t.TempDir(), "service.db")}
	sqlDB, err := database.New(cfg, zerolog.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	queries := db.New(sqlDB)
	players := repository.NewPlayerRepository(queries, zerolog.Nop())
	stats := repository.NewMonthlyStatRepository(queries, zerolog.Nop())

	renderer, err := charts.NewRenderer(zerolog.Nop())
	require.NoError(t, err)

	source := new(MockProfileSource)
	return &testEnv{
		players:   players,
		stats:     stats,
		source:    source,
		playerSvc: NewPlayerService(source, players, stats, renderer, zerolog.Nop()),
		statSvc:   NewMonthlyStatService(stats, players, zerolog.Nop()),
	}
}

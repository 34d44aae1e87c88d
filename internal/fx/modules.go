package fx

import (
	"database/sql"

	"cs2-tracker/internal/api"
	"cs2-tracker/internal/charts"
	"cs2-tracker/internal/config"
	"cs2-tracker/internal/database"
	"cs2-tracker/internal/db"
	"cs2-tracker/internal/logger"
	"cs2-tracker/internal/repository"
	"cs2-tracker/internal/server"
	"cs2-tracker/internal/service"

	"go.uber.org/fx"
)

func ProvideQueries(sqlDB *sql.DB) *db.Queries {
	return db.New(sqlDB)
}

var Module = fx.Options(
	logger.Module,
	config.Module,
	fx.Provide(database.New),
	fx.Provide(ProvideQueries),
	// repos
	fx.Provide(repository.NewPlayerRepository),
	fx.Provide(repository.NewMonthlyStatRepository),
	// steam client
	fx.Provide(fx.Annotate(api.NewSteamClient, fx.As(new(service.ProfileSource)))),
	// charts
	fx.Provide(charts.NewRenderer),
	// svc
	fx.Provide(service.NewPlayerService),
	fx.Provide(service.NewMonthlyStatService),
	// http
	fx.Provide(server.NewServer),
	fx.Provide(server.NewRouter),
)

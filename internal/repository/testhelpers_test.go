package repository

import (
	"database/sql"
	"path/filepath"
	"testing"

	"cs2-tracker/internal/config"
	"cs2-tracker/internal/database"
	"cs2-tracker/internal/db"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

func setupRepos(t *testing.T) (*sql.DB, *PlayerRepository, *MonthlyStatRepository) {
	t.Helper()

	cfg := &config.Config{DBPath: filepath.Join(t.TempDir(), "repo.db")}
	sqlDB, err := database.New(cfg, zerolog.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	queries := db.New(sqlDB)
	return sqlDB,
		NewPlayerRepository(queries, zerolog.Nop()),
		NewMonthlyStatRepository(queries, zerolog.Nop())
}

package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"cs2-tracker/internal/db"
	"cs2-tracker/internal/domain"

	"github.com/mattn/go-sqlite3"
	"github.com/rs/zerolog"
)

type PlayerRepository struct {
	queries *db.Queries
	logger  zerolog.Logger
}

func NewPlayerRepository(queries *db.Queries, logger zerolog.Logger) *PlayerRepository {
	return &PlayerRepository{
		queries: queries,
		logger:  logger,
	}
}

func (r *PlayerRepository) GetBySteamID(ctx context.Context, steamID string) (*domain.Player, error) {
	player, err := r.queries.GetPlayerBySteamID(ctx, steamID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrPlayerNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get player %s: %w", steamID, err)
	}
	return toDomainPlayer(player), nil
}

func (r *PlayerRepository) GetByID(ctx context.Context, id int64) (*domain.Player, error) {
	player, err := r.queries.GetPlayerByID(ctx, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrPlayerNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get player %d: %w", id, err)
	}
	return toDomainPlayer(player), nil
}

// Create inserts a bare player row keyed by Steam ID. Profile fields are
// filled in later by a refresh.
func (r *PlayerRepository) Create(ctx context.Context, steamID string) (*domain.Player, error) {
	now := time.Now().UTC()
	id, err := r.queries.CreatePlayer(ctx, db.CreatePlayerParams{
		SteamID:     steamID,
		LastUpdated: now,
		CreatedAt:   now,
	})
	if isUniqueViolation(err) {
		return nil, domain.ErrPlayerExists
	}
	if err != nil {
		r.logger.Error().Err(err).Str("steam_id", steamID).Msg("failed to create player")
		return nil, fmt.Errorf("failed to create player %s: %w", steamID, err)
	}

	r.logger.Debug().Int64("player_id", id).Str("steam_id", steamID).Msg("player created")
	return &domain.Player{
		ID:          id,
		SteamID:     steamID,
		LastUpdated: now,
		CreatedAt:   now,
	}, nil
}

func (r *PlayerRepository) UpdateProfile(ctx context.Context, player *domain.Player) error {
	n, err := r.queries.UpdatePlayerProfile(ctx, db.UpdatePlayerProfileParams{
		Nickname:    player.Nickname,
		AvatarUrl:   player.AvatarURL,
		CountryCode: player.CountryCode,
		Cs2Hours:    player.CS2Hours,
		LastUpdated: player.LastUpdated,
		ID:          player.ID,
	})
	if err != nil {
		return fmt.Errorf("failed to update player %s: %w", player.SteamID, err)
	}
	if n == 0 {
		return domain.ErrPlayerNotFound
	}
	return nil
}

func (r *PlayerRepository) List(ctx context.Context, limit int) ([]domain.Player, error) {
	rows, err := r.queries.ListPlayers(ctx, int64(limit))
	if err != nil {
		return nil, fmt.Errorf("failed to list players: %w", err)
	}

	result := make([]domain.Player, len(rows))
	for i, p := range rows {
		result[i] = *toDomainPlayer(p)
	}
	return result, nil
}

// Delete removes the player; the schema cascades to its monthly stats.
func (r *PlayerRepository) Delete(ctx context.Context, id int64) error {
	n, err := r.queries.DeletePlayer(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to delete player %d: %w", id, err)
	}
	if n == 0 {
		return domain.ErrPlayerNotFound
	}
	return nil
}

func toDomainPlayer(p db.Player) *domain.Player {
	return &domain.Player{
		ID:          p.ID,
		SteamID:     p.SteamID,
		Nickname:    p.Nickname,
		AvatarURL:   p.AvatarUrl,
		CountryCode: p.CountryCode,
		CS2Hours:    p.Cs2Hours,
		LastUpdated: p.LastUpdated,
		CreatedAt:   p.CreatedAt,
	}
}

func isUniqueViolation(err error) bool {
	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) {
		return sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique
	}
	return false
}

package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"cs2-tracker/internal/db"
	"cs2-tracker/internal/domain"

	"github.com/rs/zerolog"
)

type MonthlyStatRepository struct {
	queries *db.Queries
	logger  zerolog.Logger
}

func NewMonthlyStatRepository(queries *db.Queries, logger zerolog.Logger) *MonthlyStatRepository {
	return &MonthlyStatRepository{
		queries: queries,
		logger:  logger,
	}
}

func (r *MonthlyStatRepository) Get(ctx context.Context, id int64) (*domain.MonthlyStat, error) {
	row, err := r.queries.GetMonthlyStat(ctx, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrStatNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get monthly stat %d: %w", id, err)
	}
	return toDomainStat(row), nil
}

// GetByPeriod returns domain.ErrStatNotFound when the player has no record for the month.
func (r *MonthlyStatRepository) GetByPeriod(ctx context.Context, playerID int64, year, month int) (*domain.MonthlyStat, error) {
	row, err := r.queries.GetMonthlyStatByPeriod(ctx, db.GetMonthlyStatByPeriodParams{
		PlayerID: playerID,
		Year:     int64(year),
		Month:    int64(month),
	})
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrStatNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get monthly stat for %d/%d: %w", year, month, err)
	}
	return toDomainStat(row), nil
}

func (r *MonthlyStatRepository) ExistsForPeriod(ctx context.Context, playerID int64, year, month int) (bool, error) {
	_, err := r.GetByPeriod(ctx, playerID, year, month)
	if errors.Is(err, domain.ErrStatNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// ListByPlayer returns the player's stats newest first.
func (r *MonthlyStatRepository) ListByPlayer(ctx context.Context, playerID int64) ([]domain.MonthlyStat, error) {
	rows, err := r.queries.ListMonthlyStatsByPlayer(ctx, playerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list monthly stats for player %d: %w", playerID, err)
	}

	result := make([]domain.MonthlyStat, len(rows))
	for i, row := range rows {
		result[i] = *toDomainStat(row)
	}
	return result, nil
}

// Create inserts the record and fills in its ID and timestamps. A second
// record for the same player and month yields domain.ErrDuplicatePeriod.
func (r *MonthlyStatRepository) Create(ctx context.Context, stat *domain.MonthlyStat) error {
	now := time.Now().UTC()
	id, err := r.queries.CreateMonthlyStat(ctx, db.CreateMonthlyStatParams{
		PlayerID:      stat.PlayerID,
		Year:          int64(stat.Year),
		Month:         int64(stat.Month),
		MatchesPlayed: int64(stat.MatchesPlayed),
		Kills:         int64(stat.Kills),
		Deaths:        int64(stat.Deaths),
		Wins:          int64(stat.Wins),
		CreatedAt:     now,
		UpdatedAt:     now,
	})
	if isUniqueViolation(err) {
		r.logger.Warn().
			Int64("player_id", stat.PlayerID).
			Int("year", stat.Year).
			Int("month", stat.Month).
			Msg("unique constraint rejected monthly stat")
		return domain.ErrDuplicatePeriod
	}
	if err != nil {
		return fmt.Errorf("failed to create monthly stat: %w", err)
	}

	stat.ID = id
	stat.CreatedAt = now
	stat.UpdatedAt = now
	return nil
}

func (r *MonthlyStatRepository) Update(ctx context.Context, stat *domain.MonthlyStat) error {
	now := time.Now().UTC()
	n, err := r.queries.UpdateMonthlyStat(ctx, db.UpdateMonthlyStatParams{
		Year:          int64(stat.Year),
		Month:         int64(stat.Month),
		MatchesPlayed: int64(stat.MatchesPlayed),
		Kills:         int64(stat.Kills),
		Deaths:        int64(stat.Deaths),
		Wins:          int64(stat.Wins),
		UpdatedAt:     now,
		ID:            stat.ID,
	})
	if isUniqueViolation(err) {
		r.logger.Warn().Int64("stat_id", stat.ID).Msg("unique constraint rejected monthly stat update")
		return domain.ErrDuplicatePeriod
	}
	if err != nil {
		return fmt.Errorf("failed to update monthly stat %d: %w", stat.ID, err)
	}
	if n == 0 {
		return domain.ErrStatNotFound
	}

	stat.UpdatedAt = now
	return nil
}

func (r *MonthlyStatRepository) Delete(ctx context.Context, id int64) error {
	n, err := r.queries.DeleteMonthlyStat(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to delete monthly stat %d: %w", id, err)
	}
	if n == 0 {
		return domain.ErrStatNotFound
	}
	return nil
}

func toDomainStat(row db.MonthlyStat) *domain.MonthlyStat {
	return &domain.MonthlyStat{
		ID:            row.ID,
		PlayerID:      row.PlayerID,
		Year:          int(row.Year),
		Month:         int(row.Month),
		MatchesPlayed: int(row.MatchesPlayed),
		Kills:         int(row.Kills),
		Deaths:        int(row.Deaths),
		Wins:          int(row.Wins),
		CreatedAt:     row.CreatedAt,
		UpdatedAt:     row.UpdatedAt,
	}
}

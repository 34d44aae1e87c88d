package service

import (
	"context"
	"errors"
	"fmt"

	"cs2-tracker/internal/constants"
	"cs2-tracker/internal/domain"
	"cs2-tracker/internal/repository"

	"github.com/rs/zerolog"
)

const (
	msgWinsExceedMatches = "Wins cannot be greater than matches played!"
	msgNegative          = "Ensure this value is greater than or equal to 0."
	msgMonthRange        = "Select a valid month (1-12)."
)

type MonthlyStatService struct {
	repo       *repository.MonthlyStatRepository
	playerRepo *repository.PlayerRepository
	logger     zerolog.Logger
}

func NewMonthlyStatService(repo *repository.MonthlyStatRepository, playerRepo *repository.PlayerRepository, logger zerolog.Logger) *MonthlyStatService {
	return &MonthlyStatService{repo: repo, playerRepo: playerRepo, logger: logger}
}

// Get returns the stat together with its owning player.
func (s *MonthlyStatService) Get(ctx context.Context, id int64) (*domain.MonthlyStat, *domain.Player, error) {
	ctx, cancel := context.WithTimeout(ctx, constants.DatabaseTimeout)
	defer cancel()

	stat, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	player, err := s.playerRepo.GetByID(ctx, stat.PlayerID)
	if err != nil {
		return nil, nil, err
	}
	return stat, player, nil
}

func (s *MonthlyStatService) Create(ctx context.Context, steamID string, in domain.MonthlyStatInput) (*domain.MonthlyStat, error) {
	ctx, cancel := context.WithTimeout(ctx, constants.DatabaseTimeout)
	defer cancel()

	player, err := s.playerRepo.GetBySteamID(ctx, steamID)
	if err != nil {
		return nil, err
	}

	if err := s.validate(ctx, player.ID, in, nil); err != nil {
		return nil, err
	}

	stat := &domain.MonthlyStat{PlayerID: player.ID}
	in.Apply(stat)

	if err := s.repo.Create(ctx, stat); err != nil {
		if errors.Is(err, domain.ErrDuplicatePeriod) {
			return nil, duplicatePeriodError(in)
		}
		s.logger.Error().Err(err).Str("steam_id", steamID).Msg("failed to create monthly stat")
		return nil, err
	}

	s.logger.Info().
		Int64("stat_id", stat.ID).
		Str("steam_id", steamID).
		Int("year", stat.Year).
		Int("month", stat.Month).
		Msg("monthly stat created")
	return stat, nil
}

func (s *MonthlyStatService) Update(ctx context.Context, id int64, in domain.MonthlyStatInput) (*domain.MonthlyStat, error) {
	ctx, cancel := context.WithTimeout(ctx, constants.DatabaseTimeout)
	defer cancel()

	stat, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.validate(ctx, stat.PlayerID, in, stat); err != nil {
		return nil, err
	}

	in.Apply(stat)
	if err := s.repo.Update(ctx, stat); err != nil {
		if errors.Is(err, domain.ErrDuplicatePeriod) {
			return nil, duplicatePeriodError(in)
		}
		s.logger.Error().Err(err).Int64("stat_id", id).Msg("failed to update monthly stat")
		return nil, err
	}

	s.logger.Info().Int64("stat_id", id).Int("year", stat.Year).Int("month", stat.Month).Msg("monthly stat updated")
	return stat, nil
}

// Delete removes the stat and returns its owner so callers can redirect back to the profile.
func (s *MonthlyStatService) Delete(ctx context.Context, id int64) (*domain.Player, error) {
	stat, player, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, constants.DatabaseTimeout)
	defer cancel()

	if err := s.repo.Delete(ctx, stat.ID); err != nil {
		s.logger.Error().Err(err).Int64("stat_id", id).Msg("failed to delete monthly stat")
		return nil, err
	}

	s.logger.Info().Int64("stat_id", id).Str("steam_id", player.SteamID).Msg("monthly stat deleted")
	return player, nil
}

// validate applies the business rules for a create (existing == nil) or an
// edit of existing. The duplicate-month check is skipped when an edit keeps
// the same year and month, so a record never collides with itself.
func (s *MonthlyStatService) validate(ctx context.Context, playerID int64, in domain.MonthlyStatInput, existing *domain.MonthlyStat) error {
	verr := domain.NewValidationError()

	if in.Year < constants.MinStatYear || in.Year > constants.MaxStatYear {
		verr.Add("year", fmt.Sprintf("Enter a year between %d and %d.", constants.MinStatYear, constants.MaxStatYear))
	}
	if in.Month < 1 || in.Month > 12 {
		verr.Add("month", msgMonthRange)
	}

	counters := []struct {
		field string
		value int
	}{
		{"matches_played", in.MatchesPlayed},
		{"kills", in.Kills},
		{"deaths", in.Deaths},
		{"wins", in.Wins},
	}
	for _, c := range counters {
		if c.value < 0 {
			verr.Add(c.field, msgNegative)
		}
	}

	if in.Wins > in.MatchesPlayed {
		verr.Add("wins", msgWinsExceedMatches)
	}

	if verr.Has("year") || verr.Has("month") {
		return verr
	}

	if existing == nil || !existing.SamePeriod(in.Year, in.Month) {
		exists, err := s.repo.ExistsForPeriod(ctx, playerID, in.Year, in.Month)
		if err != nil {
			return err
		}
		if exists {
			verr.Fields["month"] = duplicatePeriodError(in).Fields["month"]
		}
	}

	return verr.OrNil()
}

func duplicatePeriodError(in domain.MonthlyStatInput) *domain.ValidationError {
	verr := domain.NewValidationError()
	verr.Add("month", fmt.Sprintf("Statistics for %d/%d already exist! Please edit the existing entry instead.", in.Year, in.Month))
	return verr
}

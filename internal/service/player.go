package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"cs2-tracker/internal/api"
	"cs2-tracker/internal/charts"
	"cs2-tracker/internal/constants"
	"cs2-tracker/internal/domain"
	"cs2-tracker/internal/repository"
	"cs2-tracker/internal/stats"

	"github.com/leighmacdonald/steamid/v4/steamid"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

// ProfileSource is the external game-platform API as seen by the tracker.
type ProfileSource interface {
	FetchProfile(ctx context.Context, steamID string) api.Result[api.Profile]
	FetchPlaytime(ctx context.Context, steamID string) api.Result[float64]
}

type PlayerService struct {
	steam    ProfileSource
	repo     *repository.PlayerRepository
	statRepo *repository.MonthlyStatRepository
	renderer *charts.Renderer
	logger   zerolog.Logger
	now      func() time.Time
}

func NewPlayerService(steam ProfileSource, repo *repository.PlayerRepository, statRepo *repository.MonthlyStatRepository, renderer *charts.Renderer, logger zerolog.Logger) *PlayerService {
	return &PlayerService{steam: steam, repo: repo, statRepo: statRepo, renderer: renderer, logger: logger, now: time.Now}
}

// ProfileView is everything the profile page shows for one player.
type ProfileView struct {
	Player *domain.Player
	Stats  []domain.MonthlyStat // newest first
	Series []charts.Series
	Totals domain.Totals
}

type SearchResult struct {
	Player    *domain.Player
	Created   bool
	RefreshOK bool
}

// NormalizeSteamID accepts any Steam ID notation and returns the 64-bit form.
func NormalizeSteamID(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", domain.ErrInvalidSteamID
	}
	sid := steamid.New(raw)
	if !sid.Valid() {
		return "", fmt.Errorf("%w: %q", domain.ErrInvalidSteamID, raw)
	}
	return sid.String(), nil
}

// Search finds the player or creates it and pulls its profile from Steam.
// Existing players are returned as stored.
func (s *PlayerService) Search(ctx context.Context, rawID string) (*SearchResult, error) {
	ctx, cancel := context.WithTimeout(ctx, constants.RequestTimeout)
	defer cancel()

	steamID, err := NormalizeSteamID(rawID)
	if err != nil {
		s.logger.Debug().Str("input", rawID).Msg("rejected steam id")
		return nil, err
	}

	player, err := s.repo.GetBySteamID(ctx, steamID)
	if err == nil {
		s.logger.Debug().Str("steam_id", steamID).Msg("player already tracked")
		return &SearchResult{Player: player}, nil
	}
	if !errors.Is(err, domain.ErrPlayerNotFound) {
		return nil, err
	}

	player, err = s.repo.Create(ctx, steamID)
	if errors.Is(err, domain.ErrPlayerExists) {
		// lost a race with a concurrent search for the same id
		player, err = s.repo.GetBySteamID(ctx, steamID)
		if err != nil {
			return nil, err
		}
		return &SearchResult{Player: player}, nil
	}
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("steam_id", steamID).Msg("tracking new player")

	refreshOK := true
	if err := s.RefreshPlayer(ctx, player); err != nil {
		refreshOK = false
	}
	return &SearchResult{Player: player, Created: true, RefreshOK: refreshOK}, nil
}

// Refresh pulls the latest profile for a stored player and reports whether it worked.
func (s *PlayerService) Refresh(ctx context.Context, steamID string) bool {
	player, err := s.repo.GetBySteamID(ctx, steamID)
	if err != nil {
		s.logger.Warn().Err(err).Str("steam_id", steamID).Msg("refresh requested for unknown player")
		return false
	}
	return s.RefreshPlayer(ctx, player) == nil
}

// RefreshPlayer fetches profile and playtime concurrently and persists the
// result. A failed or empty profile fetch leaves the stored row untouched;
// a failed playtime fetch only keeps the previous hours.
func (s *PlayerService) RefreshPlayer(ctx context.Context, player *domain.Player) error {
	apiCtx, cancel := context.WithTimeout(ctx, constants.ExternalAPITimeout)
	defer cancel()

	var (
		profile  api.Result[api.Profile]
		playtime api.Result[float64]
	)

	// A profile failure cancels the playtime call; a playtime failure only
	// degrades to the stored hours and never aborts the group.
	g, gCtx := errgroup.WithContext(apiCtx)
	g.Go(func() error {
		profile = s.steam.FetchProfile(gCtx, player.SteamID)
		return profile.Err
	})
	g.Go(func() error {
		playtime = s.steam.FetchPlaytime(gCtx, player.SteamID)
		return nil
	})

	if err := g.Wait(); err != nil {
		s.logger.Error().Err(err).Str("steam_id", player.SteamID).Msg("failed to fetch steam profile")
		return fmt.Errorf("failed to refresh %s: %w", player.SteamID, err)
	}
	if !playtime.OK() {
		s.logger.Warn().Err(playtime.Err).Str("steam_id", player.SteamID).Msg("failed to fetch playtime, keeping stored hours")
	}

	updated := *player
	applyRefresh(&updated, profile.Value, playtime.Value, s.now().UTC())

	dbCtx, dbCancel := context.WithTimeout(ctx, constants.DatabaseTimeout)
	defer dbCancel()

	if err := s.repo.UpdateProfile(dbCtx, &updated); err != nil {
		s.logger.Error().Err(err).Str("steam_id", player.SteamID).Msg("failed to save refreshed player")
		return err
	}

	*player = updated
	s.logger.Info().
		Str("steam_id", player.SteamID).
		Str("nickname", player.Nickname).
		Float64("cs2_hours", player.CS2Hours).
		Msg("player refreshed from steam")
	return nil
}

// applyRefresh merges fetched data into the player. Hours only move when
// Steam reports a positive value so a transient empty response does not
// wipe good data. A missing country is stored as empty.
func applyRefresh(player *domain.Player, profile api.Profile, hours float64, now time.Time) {
	if profile.Nickname != "" {
		player.Nickname = profile.Nickname
	}
	if profile.AvatarURL != "" {
		player.AvatarURL = profile.AvatarURL
	}
	player.CountryCode = strings.TrimSpace(profile.CountryCode)
	if hours > 0 {
		player.CS2Hours = hours
	}
	player.LastUpdated = now
}

func (s *PlayerService) Profile(ctx context.Context, steamID string) (*ProfileView, error) {
	ctx, cancel := context.WithTimeout(ctx, constants.DatabaseTimeout)
	defer cancel()

	player, err := s.repo.GetBySteamID(ctx, steamID)
	if err != nil {
		return nil, err
	}

	monthly, err := s.statRepo.ListByPlayer(ctx, player.ID)
	if err != nil {
		s.logger.Error().Err(err).Str("steam_id", steamID).Msg("failed to load monthly stats")
		return nil, err
	}

	return &ProfileView{
		Player: player,
		Stats:  monthly,
		Series: charts.Prepare(monthly),
		Totals: stats.Aggregate(monthly),
	}, nil
}

// Chart renders one of the player's chart series. It returns
// domain.ErrPlayerNotFound for unknown players and charts.ErrNoSeries when
// the requested series has no points.
func (s *PlayerService) Chart(ctx context.Context, steamID, key string) (*charts.Artifact, error) {
	view, err := s.Profile(ctx, steamID)
	if err != nil {
		return nil, err
	}
	series, ok := charts.Find(view.Series, key)
	if !ok {
		return nil, charts.ErrNoSeries
	}
	return s.renderer.Render(series)
}

func (s *PlayerService) Charts(ctx context.Context, steamID string) ([]charts.Artifact, error) {
	view, err := s.Profile(ctx, steamID)
	if err != nil {
		return nil, err
	}
	return s.renderer.RenderAll(view.Series)
}

// Delete stops tracking the player. Its monthly stats go with it.
func (s *PlayerService) Delete(ctx context.Context, steamID string) error {
	ctx, cancel := context.WithTimeout(ctx, constants.DatabaseTimeout)
	defer cancel()

	player, err := s.repo.GetBySteamID(ctx, steamID)
	if err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, player.ID); err != nil {
		s.logger.Error().Err(err).Str("steam_id", steamID).Msg("failed to delete player")
		return err
	}

	s.logger.Info().Str("steam_id", steamID).Int64("player_id", player.ID).Msg("player deleted")
	return nil
}

func (s *PlayerService) ListPlayers(ctx context.Context, limit int) ([]domain.Player, error) {
	ctx, cancel := context.WithTimeout(ctx, constants.DatabaseTimeout)
	defer cancel()
	return s.repo.List(ctx, limit)
}

func (s *PlayerService) Player(ctx context.Context, steamID string) (*domain.Player, error) {
	ctx, cancel := context.WithTimeout(ctx, constants.DatabaseTimeout)
	defer cancel()
	return s.repo.GetBySteamID(ctx, steamID)
}

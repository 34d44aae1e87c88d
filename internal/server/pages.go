package server

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"cs2-tracker/internal/domain"

	"github.com/gin-gonic/gin"
)

func (s *Server) Home(c *gin.Context) {
	players, err := s.players.ListPlayers(c.Request.Context(), recentPlayersLimit)
	if err != nil {
		s.renderError(c, err)
		return
	}
	c.HTML(http.StatusOK, "home.html", gin.H{
		"Flash":   popFlash(c),
		"Players": players,
	})
}

func (s *Server) Search(c *gin.Context) {
	raw := strings.TrimSpace(c.PostForm("steam_id"))
	if raw == "" {
		c.Redirect(http.StatusSeeOther, "/")
		return
	}

	res, err := s.players.Search(c.Request.Context(), raw)
	if errors.Is(err, domain.ErrInvalidSteamID) {
		setFlash(c, flashWarning, fmt.Sprintf("%q is not a valid Steam ID.", raw))
		c.Redirect(http.StatusSeeOther, "/")
		return
	}
	if err != nil {
		s.renderError(c, err)
		return
	}

	if res.Created && !res.RefreshOK {
		setFlash(c, flashWarning, "Player added, but Steam profile data could not be loaded right now.")
	}
	c.Redirect(http.StatusSeeOther, profilePath(res.Player.SteamID))
}

func (s *Server) PlayerProfile(c *gin.Context) {
	view, err := s.players.Profile(c.Request.Context(), c.Param("steam_id"))
	if err != nil {
		s.renderError(c, err)
		return
	}
	c.HTML(http.StatusOK, "profile.html", gin.H{
		"Flash":  popFlash(c),
		"Player": view.Player,
		"Stats":  view.Stats,
		"Series": view.Series,
		"Totals": view.Totals,
	})
}

func (s *Server) PlayerChart(c *gin.Context) {
	key := strings.TrimSuffix(c.Param("chart"), ".png")
	artifact, err := s.players.Chart(c.Request.Context(), c.Param("steam_id"), key)
	if err != nil {
		status := statusFor(err)
		if status == http.StatusInternalServerError {
			s.log(c).Error().Err(err).Str("chart", key).Msg("failed to render chart")
		}
		c.Status(status)
		return
	}
	c.Header("Cache-Control", "no-cache")
	c.Data(http.StatusOK, "image/png", artifact.PNG)
}

func (s *Server) RefreshPlayer(c *gin.Context) {
	player, err := s.players.Player(c.Request.Context(), c.Param("steam_id"))
	if err != nil {
		s.renderError(c, err)
		return
	}
	if err := s.players.RefreshPlayer(c.Request.Context(), player); err == nil {
		setFlash(c, flashSuccess, fmt.Sprintf("Successfully updated %s from Steam", player.DisplayName()))
	} else {
		setFlash(c, flashError, fmt.Sprintf("Failed to update %s", player.DisplayName()))
	}
	c.Redirect(http.StatusSeeOther, profilePath(player.SteamID))
}

func (s *Server) AddStatForm(c *gin.Context) {
	player, err := s.players.Player(c.Request.Context(), c.Param("steam_id"))
	if err != nil {
		s.renderError(c, err)
		return
	}
	now := time.Now()
	s.renderStatForm(c, http.StatusOK, player, nil, domain.MonthlyStatInput{Year: now.Year(), Month: int(now.Month())}, nil)
}

func (s *Server) AddStat(c *gin.Context) {
	steamID := c.Param("steam_id")
	player, err := s.players.Player(c.Request.Context(), steamID)
	if err != nil {
		s.renderError(c, err)
		return
	}

	in, verr := bindStatForm(c)
	if verr != nil {
		s.renderStatForm(c, http.StatusUnprocessableEntity, player, nil, in, verr)
		return
	}

	stat, err := s.stats.Create(c.Request.Context(), steamID, in)
	if errors.As(err, &verr) {
		s.renderStatForm(c, http.StatusUnprocessableEntity, player, nil, in, verr)
		return
	}
	if err != nil {
		s.renderError(c, err)
		return
	}

	setFlash(c, flashSuccess, fmt.Sprintf("Statistics for %d/%d added successfully!", stat.Year, stat.Month))
	c.Redirect(http.StatusSeeOther, profilePath(steamID))
}

func (s *Server) EditStatForm(c *gin.Context) {
	id, err := parseStatID(c)
	if err != nil {
		s.renderError(c, err)
		return
	}
	stat, player, err := s.stats.Get(c.Request.Context(), id)
	if err != nil {
		s.renderError(c, err)
		return
	}
	s.renderStatForm(c, http.StatusOK, player, stat, domain.InputFrom(*stat), nil)
}

func (s *Server) EditStat(c *gin.Context) {
	id, err := parseStatID(c)
	if err != nil {
		s.renderError(c, err)
		return
	}
	stat, player, err := s.stats.Get(c.Request.Context(), id)
	if err != nil {
		s.renderError(c, err)
		return
	}

	in, verr := bindStatForm(c)
	if verr != nil {
		s.renderStatForm(c, http.StatusUnprocessableEntity, player, stat, in, verr)
		return
	}

	_, err = s.stats.Update(c.Request.Context(), id, in)
	if errors.As(err, &verr) {
		s.renderStatForm(c, http.StatusUnprocessableEntity, player, stat, in, verr)
		return
	}
	if err != nil {
		s.renderError(c, err)
		return
	}

	setFlash(c, flashSuccess, "Statistics updated successfully!")
	c.Redirect(http.StatusSeeOther, profilePath(player.SteamID))
}

func (s *Server) DeleteStat(c *gin.Context) {
	id, err := parseStatID(c)
	if err != nil {
		s.renderError(c, err)
		return
	}
	player, err := s.stats.Delete(c.Request.Context(), id)
	if err != nil {
		s.renderError(c, err)
		return
	}
	setFlash(c, flashSuccess, "Statistics deleted successfully!")
	c.Redirect(http.StatusSeeOther, profilePath(player.SteamID))
}

// bindStatForm parses the posted counters. Values that are not whole
// numbers become a form-level error; business rules run in the service.
func bindStatForm(c *gin.Context) (domain.MonthlyStatInput, *domain.ValidationError) {
	var in domain.MonthlyStatInput
	if err := c.ShouldBind(&in); err != nil {
		verr := domain.NewValidationError()
		verr.Add("__all__", "Enter whole numbers for year, month and all counters.")
		return in, verr
	}
	return in, nil
}

func (s *Server) renderStatForm(c *gin.Context, status int, player *domain.Player, stat *domain.MonthlyStat, in domain.MonthlyStatInput, verr *domain.ValidationError) {
	title := fmt.Sprintf("Add Statistics for %s", player.DisplayName())
	action := profilePath(player.SteamID) + "/add-stat"
	if stat != nil {
		title = fmt.Sprintf("Edit Statistics for %s %d/%d", player.DisplayName(), stat.Year, stat.Month)
		action = fmt.Sprintf("/stat/%d/edit", stat.ID)
	}
	c.HTML(status, "stat_form.html", gin.H{
		"Title":  title,
		"Action": action,
		"Player": player,
		"Stat":   stat,
		"Form":   in,
		"Errors": verr,
	})
}

func (s *Server) renderError(c *gin.Context, err error) {
	status := statusFor(err)
	msg := "Something went wrong."
	switch status {
	case http.StatusNotFound:
		msg = "Not found."
	case http.StatusBadRequest:
		msg = err.Error()
	default:
		s.log(c).Error().Err(err).Str("path", c.Request.URL.Path).Msg("request failed")
	}
	c.HTML(status, "error.html", gin.H{"Status": status, "Message": msg})
}

func profilePath(steamID string) string {
	return "/player/" + steamID
}

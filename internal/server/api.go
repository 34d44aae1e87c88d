package server

import (
	"errors"
	"net/http"
	"time"

	"cs2-tracker/internal/charts"
	"cs2-tracker/internal/domain"
	"cs2-tracker/internal/stats"

	"github.com/gin-gonic/gin"
)

type playerResponse struct {
	SteamID     string    `json:"steam_id"`
	Nickname    string    `json:"nickname"`
	AvatarURL   string    `json:"avatar_url"`
	CountryCode string    `json:"country_code"`
	CS2Hours    float64   `json:"cs2_hours"`
	LastUpdated time.Time `json:"last_updated"`
	CreatedAt   time.Time `json:"created_at"`
}

type statResponse struct {
	ID            int64   `json:"id"`
	Year          int     `json:"year"`
	Month         int     `json:"month"`
	MatchesPlayed int     `json:"matches_played"`
	Kills         int     `json:"kills"`
	Deaths        int     `json:"deaths"`
	Wins          int     `json:"wins"`
	KDRatio       float64 `json:"kd_ratio"`
	WinRate       float64 `json:"win_rate"`
}

type profileResponse struct {
	Player playerResponse  `json:"player"`
	Stats  []statResponse  `json:"stats"`
	Totals domain.Totals   `json:"totals"`
	Series []charts.Series `json:"series"`
}

type searchRequest struct {
	SteamID string `json:"steam_id" binding:"required"`
}

func toPlayerResponse(p *domain.Player) playerResponse {
	return playerResponse{
		SteamID:     p.SteamID,
		Nickname:    p.Nickname,
		AvatarURL:   p.AvatarURL,
		CountryCode: p.CountryCode,
		CS2Hours:    p.CS2Hours,
		LastUpdated: p.LastUpdated,
		CreatedAt:   p.CreatedAt,
	}
}

func toStatResponse(s *domain.MonthlyStat) statResponse {
	return statResponse{
		ID:            s.ID,
		Year:          s.Year,
		Month:         s.Month,
		MatchesPlayed: s.MatchesPlayed,
		Kills:         s.Kills,
		Deaths:        s.Deaths,
		Wins:          s.Wins,
		KDRatio:       stats.StatKD(*s),
		WinRate:       stats.StatWinRate(*s),
	}
}

func (s *Server) APISearch(c *gin.Context) {
	var req searchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "steam_id is required"})
		return
	}

	res, err := s.players.Search(c.Request.Context(), req.SteamID)
	if err != nil {
		s.apiError(c, err)
		return
	}

	status := http.StatusOK
	if res.Created {
		status = http.StatusCreated
	}
	c.JSON(status, gin.H{
		"player":     toPlayerResponse(res.Player),
		"created":    res.Created,
		"refresh_ok": res.RefreshOK,
	})
}

func (s *Server) APIProfile(c *gin.Context) {
	view, err := s.players.Profile(c.Request.Context(), c.Param("steam_id"))
	if err != nil {
		s.apiError(c, err)
		return
	}

	out := profileResponse{
		Player: toPlayerResponse(view.Player),
		Stats:  make([]statResponse, 0, len(view.Stats)),
		Totals: view.Totals,
		Series: view.Series,
	}
	for i := range view.Stats {
		out.Stats = append(out.Stats, toStatResponse(&view.Stats[i]))
	}
	c.JSON(http.StatusOK, out)
}

func (s *Server) APIDeletePlayer(c *gin.Context) {
	if err := s.players.Delete(c.Request.Context(), c.Param("steam_id")); err != nil {
		s.apiError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// APICharts returns every non-empty chart as an embedded PNG.
func (s *Server) APICharts(c *gin.Context) {
	artifacts, err := s.players.Charts(c.Request.Context(), c.Param("steam_id"))
	if err != nil {
		s.apiError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"charts": artifacts})
}

func (s *Server) APIRefresh(c *gin.Context) {
	steamID := c.Param("steam_id")
	if _, err := s.players.Player(c.Request.Context(), steamID); err != nil {
		s.apiError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": s.players.Refresh(c.Request.Context(), steamID)})
}

func (s *Server) APICreateStat(c *gin.Context) {
	var in domain.MonthlyStatInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	stat, err := s.stats.Create(c.Request.Context(), c.Param("steam_id"), in)
	if err != nil {
		s.apiError(c, err)
		return
	}
	c.JSON(http.StatusCreated, toStatResponse(stat))
}

func (s *Server) APIUpdateStat(c *gin.Context) {
	id, err := parseStatID(c)
	if err != nil {
		s.apiError(c, err)
		return
	}

	var in domain.MonthlyStatInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	stat, err := s.stats.Update(c.Request.Context(), id, in)
	if err != nil {
		s.apiError(c, err)
		return
	}
	c.JSON(http.StatusOK, toStatResponse(stat))
}

func (s *Server) APIDeleteStat(c *gin.Context) {
	id, err := parseStatID(c)
	if err != nil {
		s.apiError(c, err)
		return
	}
	if _, err := s.stats.Delete(c.Request.Context(), id); err != nil {
		s.apiError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (s *Server) apiError(c *gin.Context, err error) {
	var verr *domain.ValidationError
	if errors.As(err, &verr) {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"errors": verr.Fields})
		return
	}

	status := statusFor(err)
	if status == http.StatusInternalServerError {
		s.log(c).Error().Err(err).Str("path", c.Request.URL.Path).Msg("api request failed")
		c.JSON(status, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(status, gin.H{"error": err.Error()})
}

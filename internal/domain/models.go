package domain

import (
	"fmt"
	"time"
)

type Player struct {
	ID          int64
	SteamID     string
	Nickname    string
	AvatarURL   string
	CountryCode string // empty when the profile hides it
	CS2Hours    float64
	LastUpdated time.Time
	CreatedAt   time.Time
}

// DisplayName falls back to the Steam ID until the first successful refresh.
func (p Player) DisplayName() string {
	if p.Nickname != "" {
		return p.Nickname
	}
	return p.SteamID
}

type MonthlyStat struct {
	ID            int64
	PlayerID      int64
	Year          int
	Month         int
	MatchesPlayed int
	Kills         int
	Deaths        int
	Wins          int
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// Label is the chart axis label, e.g. "2025-06".
func (s MonthlyStat) Label() string {
	return fmt.Sprintf("%d-%02d", s.Year, s.Month)
}

func (s MonthlyStat) MonthName() string {
	if s.Month < 1 || s.Month > 12 {
		return ""
	}
	return time.Month(s.Month).String()
}

// SamePeriod reports whether both records describe the same calendar month.
func (s MonthlyStat) SamePeriod(year, month int) bool {
	return s.Year == year && s.Month == month
}

// MonthlyStatInput is the user-editable part of a MonthlyStat.
type MonthlyStatInput struct {
	Year          int `form:"year" json:"year"`
	Month         int `form:"month" json:"month"`
	MatchesPlayed int `form:"matches_played" json:"matches_played"`
	Kills         int `form:"kills" json:"kills"`
	Deaths        int `form:"deaths" json:"deaths"`
	Wins          int `form:"wins" json:"wins"`
}

func (in MonthlyStatInput) Apply(stat *MonthlyStat) {
	stat.Year = in.Year
	stat.Month = in.Month
	stat.MatchesPlayed = in.MatchesPlayed
	stat.Kills = in.Kills
	stat.Deaths = in.Deaths
	stat.Wins = in.Wins
}

func InputFrom(stat MonthlyStat) MonthlyStatInput {
	return MonthlyStatInput{
		Year:          stat.Year,
		Month:         stat.Month,
		MatchesPlayed: stat.MatchesPlayed,
		Kills:         stat.Kills,
		Deaths:        stat.Deaths,
		Wins:          stat.Wins,
	}
}

// Totals are lifetime sums with ratios computed over the sums.
type Totals struct {
	Matches int     `json:"matches"`
	Kills   int     `json:"kills"`
	Deaths  int     `json:"deaths"`
	Wins    int     `json:"wins"`
	KD      float64 `json:"kd"`
	WinRate float64 `json:"win_rate"`
}

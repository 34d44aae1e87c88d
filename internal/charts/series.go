// Package charts turns monthly stats into time series and renders them as PNG charts.
package charts

import (
	"errors"
	"sort"

	"cs2-tracker/internal/domain"
	"cs2-tracker/internal/stats"
)

type Kind string

const (
	KindLine Kind = "line"
	KindBar  Kind = "bar"
)

const (
	KeyKD            = "kd"
	KeyWinRate       = "winrate"
	KeyKillsPerMatch = "kpm"
)

var ErrNoSeries = errors.New("chart has no data")

// Series is a parallel list of month labels and values.
type Series struct {
	Key    string    `json:"key"`
	Title  string    `json:"title"`
	YAxis  string    `json:"y_axis"`
	Kind   Kind      `json:"kind"`
	Labels []string  `json:"labels"`
	Values []float64 `json:"values"`
}

func (s Series) Len() int {
	return len(s.Labels)
}

// Prepare builds the K/D, win rate and kills-per-match series in
// chronological order. Months without matches are left out of the
// kills-per-match series entirely. Empty series are dropped, so no stats
// means no series.
func Prepare(monthly []domain.MonthlyStat) []Series {
	if len(monthly) == 0 {
		return []Series{}
	}

	ordered := chronological(monthly)

	kd := Series{Key: KeyKD, Title: "K/D Ratio", YAxis: "K/D Ratio", Kind: KindLine}
	winRate := Series{Key: KeyWinRate, Title: "Win Rate %", YAxis: "Win Rate (%)", Kind: KindBar}
	kpm := Series{Key: KeyKillsPerMatch, Title: "Kills per Match", YAxis: "Kills per Match", Kind: KindLine}

	for _, s := range ordered {
		label := s.Label()

		kd.Labels = append(kd.Labels, label)
		kd.Values = append(kd.Values, stats.StatKD(s))

		winRate.Labels = append(winRate.Labels, label)
		winRate.Values = append(winRate.Values, stats.StatWinRate(s))

		if s.MatchesPlayed > 0 {
			kpm.Labels = append(kpm.Labels, label)
			kpm.Values = append(kpm.Values, stats.StatKillsPerMatch(s))
		}
	}

	out := make([]Series, 0, 3)
	for _, s := range []Series{kd, winRate, kpm} {
		if s.Len() > 0 {
			out = append(out, s)
		}
	}
	return out
}

// Find returns the series with the given key.
func Find(series []Series, key string) (Series, bool) {
	for _, s := range series {
		if s.Key == key {
			return s, true
		}
	}
	return Series{}, false
}

func chronological(monthly []domain.MonthlyStat) []domain.MonthlyStat {
	ordered := make([]domain.MonthlyStat, len(monthly))
	copy(ordered, monthly)
	sort.SliceStable(ordered, func(i, j int) bool {
		if ordered[i].Year != ordered[j].Year {
			return ordered[i].Year < ordered[j].Year
		}
		return ordered[i].Month < ordered[j].Month
	})
	return ordered
}

package stats

import "cs2-tracker/internal/domain"

func StatKD(s domain.MonthlyStat) float64 {
	return KDRatio(s.Kills, s.Deaths)
}

func StatWinRate(s domain.MonthlyStat) float64 {
	return WinRate(s.Wins, s.MatchesPlayed)
}

func StatKillsPerMatch(s domain.MonthlyStat) float64 {
	return KillsPerMatch(s.Kills, s.MatchesPlayed)
}

// Aggregate sums the counters and derives the ratios from the sums, so
// lifetime K/D is total kills over total deaths rather than a mean of months.
func Aggregate(stats []domain.MonthlyStat) domain.Totals {
	var t domain.Totals
	for _, s := range stats {
		t.Matches += s.MatchesPlayed
		t.Kills += s.Kills
		t.Deaths += s.Deaths
		t.Wins += s.Wins
	}
	t.KD = KDRatio(t.Kills, t.Deaths)
	t.WinRate = WinRate(t.Wins, t.Matches)
	return t
}

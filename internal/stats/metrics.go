// Package stats computes derived per-month metrics and lifetime totals.
package stats

import "math"

// Round rounds half away from zero to the given number of decimal places.
func Round(v float64, places int) float64 {
	p := math.Pow(10, float64(places))
	return math.Round(v*p) / p
}

// KDRatio is kills/deaths to 2 decimals, 0 when there are no deaths.
func KDRatio(kills, deaths int) float64 {
	if deaths <= 0 {
		return 0
	}
	return Round(float64(kills)/float64(deaths), 2)
}

// WinRate is the percentage of matches won to 1 decimal, 0 when no matches were played.
func WinRate(wins, matches int) float64 {
	if matches <= 0 {
		return 0
	}
	return Round(float64(wins)/float64(matches)*100, 1)
}

func KillsPerMatch(kills, matches int) float64 {
	if matches <= 0 {
		return 0
	}
	return Round(float64(kills)/float64(matches), 1)
}

const (
	BadgeSuccess = "success"
	BadgeWarning = "warning"
	BadgeDanger  = "danger"
)

func KDBadge(kd float64) string {
	switch {
	case kd >= 1.2:
		return BadgeSuccess
	case kd >= 0.8:
		return BadgeWarning
	default:
		return BadgeDanger
	}
}

func WinRateBadge(winRate float64) string {
	switch {
	case winRate >= 60:
		return BadgeSuccess
	case winRate >= 40:
		return BadgeWarning
	default:
		return BadgeDanger
	}
}

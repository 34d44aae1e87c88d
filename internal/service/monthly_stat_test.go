package service

import (
	"context"
	"errors"
	"sync"
	"testing"

	"cs2-tracker/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validationFields(t *testing.T, err error) map[string][]string {
	t.Helper()
	var verr *domain.ValidationError
	require.True(t, errors.As(err, &verr), "expected validation error, got %v", err)
	return verr.Fields
}

// runConcurrently starts n calls behind a shared gate so they race for the
// same row, then returns every call's error.
func runConcurrently(n int, call func(i int) error) []error {
	errs := make([]error, n)
	start := make(chan struct{})
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			<-start
			errs[i] = call(i)
		}(i)
	}
	close(start)
	wg.Wait()
	return errs
}

func assertSingleWinner(t *testing.T, errs []error) {
	t.Helper()
	succeeded := 0
	for _, err := range errs {
		if err == nil {
			succeeded++
			continue
		}
		var verr *domain.ValidationError
		if assert.True(t, errors.As(err, &verr), "expected validation error, got %v", err) {
			assert.NotEmpty(t, verr.Fields["month"])
			assert.Contains(t, verr.Fields["month"][0], "already exist")
		}
	}
	assert.Equal(t, 1, succeeded)
}

func TestMonthlyStatService_Create(t *testing.T) {
	ctx := context.Background()
	env := setupServices(t)

	_, err := env.players.Create(ctx, testSteamID)
	require.NoError(t, err)

	stat, err := env.statSvc.Create(ctx, testSteamID, domain.MonthlyStatInput{
		Year: 2025, Month: 6, MatchesPlayed: 50, Kills: 500, Deaths: 400, Wins: 30,
	})
	require.NoError(t, err)
	assert.NotZero(t, stat.ID)
	assert.Equal(t, "2025-06", stat.Label())
}

func TestMonthlyStatService_Create_UnknownPlayer(t *testing.T) {
	env := setupServices(t)

	_, err := env.statSvc.Create(context.Background(), testSteamID, domain.MonthlyStatInput{Year: 2025, Month: 1})
	assert.ErrorIs(t, err, domain.ErrPlayerNotFound)
}

func TestMonthlyStatService_Create_Validation(t *testing.T) {
	tests := []struct {
		name  string
		input domain.MonthlyStatInput
		field string
		msg   string
	}{
		{
			name:  "wins exceed matches",
			input: domain.MonthlyStatInput{Year: 2025, Month: 6, MatchesPlayed: 10, Wins: 11},
			field: "wins",
			msg:   "Wins cannot be greater than matches played!",
		},
		{
			name:  "month out of range",
			input: domain.MonthlyStatInput{Year: 2025, Month: 13},
			field: "month",
			msg:   "Select a valid month (1-12).",
		},
		{
			name:  "year out of range",
			input: domain.MonthlyStatInput{Year: 1999, Month: 1},
			field: "year",
			msg:   "Enter a year between 2000 and 2100.",
		},
		{
			name:  "negative kills",
			input: domain.MonthlyStatInput{Year: 2025, Month: 1, Kills: -1},
			field: "kills",
			msg:   "Ensure this value is greater than or equal to 0.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			env := setupServices(t)
			_, err := env.players.Create(ctx, testSteamID)
			require.NoError(t, err)

			stat, err := env.statSvc.Create(ctx, testSteamID, tt.input)
			assert.Nil(t, stat)
			fields := validationFields(t, err)
			assert.Contains(t, fields[tt.field], tt.msg)
		})
	}
}

func TestMonthlyStatService_Create_DuplicateMonth(t *testing.T) {
	ctx := context.Background()
	env := setupServices(t)

	_, err := env.players.Create(ctx, testSteamID)
	require.NoError(t, err)

	_, err = env.statSvc.Create(ctx, testSteamID, domain.MonthlyStatInput{Year: 2025, Month: 6, MatchesPlayed: 10, Wins: 5})
	require.NoError(t, err)

	_, err = env.statSvc.Create(ctx, testSteamID, domain.MonthlyStatInput{Year: 2025, Month: 6, MatchesPlayed: 3})
	fields := validationFields(t, err)
	assert.Equal(t, []string{"Statistics for 2025/6 already exist! Please edit the existing entry instead."}, fields["month"])
}

func TestMonthlyStatService_Update_SameMonthSucceeds(t *testing.T) {
	ctx := context.Background()
	env := setupServices(t)

	_, err := env.players.Create(ctx, testSteamID)
	require.NoError(t, err)

	stat, err := env.statSvc.Create(ctx, testSteamID, domain.MonthlyStatInput{Year: 2025, Month: 6, MatchesPlayed: 10, Kills: 100, Deaths: 90, Wins: 5})
	require.NoError(t, err)

	in := domain.InputFrom(*stat)
	in.Kills = 140
	updated, err := env.statSvc.Update(ctx, stat.ID, in)
	require.NoError(t, err)
	assert.Equal(t, 140, updated.Kills)

	stored, err := env.stats.Get(ctx, stat.ID)
	require.NoError(t, err)
	assert.Equal(t, 140, stored.Kills)
}

func TestMonthlyStatService_Update_IntoTakenMonth(t *testing.T) {
	ctx := context.Background()
	env := setupServices(t)

	_, err := env.players.Create(ctx, testSteamID)
	require.NoError(t, err)

	_, err = env.statSvc.Create(ctx, testSteamID, domain.MonthlyStatInput{Year: 2025, Month: 6})
	require.NoError(t, err)
	may, err := env.statSvc.Create(ctx, testSteamID, domain.MonthlyStatInput{Year: 2025, Month: 5})
	require.NoError(t, err)

	in := domain.InputFrom(*may)
	in.Month = 6
	_, err = env.statSvc.Update(ctx, may.ID, in)
	fields := validationFields(t, err)
	assert.NotEmpty(t, fields["month"])

	in.Month = 4
	moved, err := env.statSvc.Update(ctx, may.ID, in)
	require.NoError(t, err)
	assert.Equal(t, 4, moved.Month)
}

func TestMonthlyStatService_Update_WinsStillChecked(t *testing.T) {
	ctx := context.Background()
	env := setupServices(t)

	_, err := env.players.Create(ctx, testSteamID)
	require.NoError(t, err)
	stat, err := env.statSvc.Create(ctx, testSteamID, domain.MonthlyStatInput{Year: 2025, Month: 6, MatchesPlayed: 10, Wins: 5})
	require.NoError(t, err)

	in := domain.InputFrom(*stat)
	in.Wins = 11
	_, err = env.statSvc.Update(ctx, stat.ID, in)
	fields := validationFields(t, err)
	assert.NotEmpty(t, fields["wins"])
}

func TestMonthlyStatService_Update_NotFound(t *testing.T) {
	env := setupServices(t)

	_, err := env.statSvc.Update(context.Background(), 42, domain.MonthlyStatInput{Year: 2025, Month: 1})
	assert.ErrorIs(t, err, domain.ErrStatNotFound)
}

func TestMonthlyStatService_Delete(t *testing.T) {
	ctx := context.Background()
	env := setupServices(t)

	_, err := env.players.Create(ctx, testSteamID)
	require.NoError(t, err)
	stat, err := env.statSvc.Create(ctx, testSteamID, domain.MonthlyStatInput{Year: 2025, Month: 2})
	require.NoError(t, err)

	owner, err := env.statSvc.Delete(ctx, stat.ID)
	require.NoError(t, err)
	assert.Equal(t, testSteamID, owner.SteamID)

	_, err = env.statSvc.Delete(ctx, stat.ID)
	assert.ErrorIs(t, err, domain.ErrStatNotFound)
}

func TestMonthlyStatService_Create_ConcurrentSameMonth(t *testing.T) {
	ctx := context.Background()
	env := setupServices(t)

	player, err := env.players.Create(ctx, testSteamID)
	require.NoError(t, err)

	errs := runConcurrently(20, func(i int) error {
		_, err := env.statSvc.Create(ctx, testSteamID, domain.MonthlyStatInput{
			Year: 2025, Month: 6, MatchesPlayed: 10, Kills: i, Deaths: 5, Wins: 5,
		})
		return err
	})
	assertSingleWinner(t, errs)

	stored, err := env.stats.ListByPlayer(ctx, player.ID)
	require.NoError(t, err)
	assert.Len(t, stored, 1)
}

func TestMonthlyStatService_Update_ConcurrentIntoSameMonth(t *testing.T) {
	ctx := context.Background()
	env := setupServices(t)

	player, err := env.players.Create(ctx, testSteamID)
	require.NoError(t, err)

	months := []int{1, 2, 3, 4, 5, 7, 8, 9, 10, 11}
	ids := make([]int64, len(months))
	for i, m := range months {
		stat, err := env.statSvc.Create(ctx, testSteamID, domain.MonthlyStatInput{Year: 2025, Month: m, MatchesPlayed: 4, Wins: 2})
		require.NoError(t, err)
		ids[i] = stat.ID
	}

	errs := runConcurrently(len(ids), func(i int) error {
		_, err := env.statSvc.Update(ctx, ids[i], domain.MonthlyStatInput{Year: 2025, Month: 6, MatchesPlayed: 4, Wins: 2})
		return err
	})
	assertSingleWinner(t, errs)

	june, err := env.stats.GetByPeriod(ctx, player.ID, 2025, 6)
	require.NoError(t, err)
	assert.Contains(t, ids, june.ID)

	stored, err := env.stats.ListByPlayer(ctx, player.ID)
	require.NoError(t, err)
	assert.Len(t, stored, len(months))
}

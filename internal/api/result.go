package api

import (
	"context"

	"cs2-tracker/internal/domain"
)

// Result is either a fetched value or the reason the fetch failed. Callers
// get a usable zero Value in the failure case.
type Result[T any] struct {
	Value T
	Err   error
}

func Success[T any](v T) Result[T] {
	return Result[T]{Value: v}
}

func Failure[T any](err error) Result[T] {
	return Result[T]{Err: err}
}

func (r Result[T]) OK() bool {
	return r.Err == nil
}

// Profile is the subset of a Steam player summary the tracker stores.
type Profile struct {
	Nickname    string
	AvatarURL   string
	CountryCode string
}

func (c *SteamClient) FetchProfile(ctx context.Context, steamID string) Result[Profile] {
	summary, err := c.GetPlayerSummary(ctx, steamID)
	if err != nil {
		return Failure[Profile](err)
	}
	if summary == nil {
		return Failure[Profile](domain.ErrProfileUnavailable)
	}
	return Success(Profile{
		Nickname:    summary.PersonaName,
		AvatarURL:   summary.AvatarFull,
		CountryCode: summary.LocCountryCode,
	})
}

func (c *SteamClient) FetchPlaytime(ctx context.Context, steamID string) Result[float64] {
	hours, err := c.GetOwnedGamePlaytime(ctx, steamID, c.appID)
	if err != nil {
		return Failure[float64](err)
	}
	return Success(hours)
}

package api

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"cs2-tracker/internal/config"
	"cs2-tracker/internal/constants"
	"cs2-tracker/internal/stats"

	"github.com/valyala/fasthttp"
)

const (
	playerSummariesPath = "/ISteamUser/GetPlayerSummaries/v2/"
	ownedGamesPath      = "/IPlayerService/GetOwnedGames/v1/"
)

type SteamClient struct {
	apiKey  string
	baseURL string
	appID   int
	timeout time.Duration
	client  *fasthttp.Client
}

func NewSteamClient(cfg *config.Config) *SteamClient {
	return &SteamClient{
		apiKey:  cfg.SteamAPIKey,
		baseURL: cfg.SteamAPIBaseURL,
		appID:   cfg.SteamAppID,
		timeout: constants.ExternalAPITimeout,
		client: &fasthttp.Client{
			MaxConnsPerHost:     100,
			ReadTimeout:         constants.ExternalAPITimeout,
			WriteTimeout:        constants.ExternalAPITimeout,
			MaxIdleConnDuration: 1 * time.Minute,
		},
	}
}

// GetPlayerSummary returns nil without error when Steam knows no such profile.
func (c *SteamClient) GetPlayerSummary(ctx context.Context, steamID string) (*PlayerSummary, error) {
	args := fasthttp.AcquireArgs()
	defer fasthttp.ReleaseArgs(args)
	args.Set("key", c.apiKey)
	args.Set("steamids", steamID)

	resp, err := doRequest[PlayerSummariesResponse](ctx, c, playerSummariesPath, args)
	if err != nil {
		return nil, err
	}
	if len(resp.Response.Players) == 0 {
		return nil, nil
	}
	return &resp.Response.Players[0], nil
}

// GetOwnedGamePlaytime returns hours played for appID rounded to one
// decimal, or 0 when the game is not in the (visible) library.
func (c *SteamClient) GetOwnedGamePlaytime(ctx context.Context, steamID string, appID int) (float64, error) {
	args := fasthttp.AcquireArgs()
	defer fasthttp.ReleaseArgs(args)
	args.Set("key", c.apiKey)
	args.Set("steamid", steamID)
	args.Set("include_appinfo", "0")
	args.Set("include_played_free_games", "1")
	args.Set("appids_filter[0]", strconv.Itoa(appID))

	resp, err := doRequest[OwnedGamesResponse](ctx, c, ownedGamesPath, args)
	if err != nil {
		return 0, err
	}

	for _, game := range resp.Response.Games {
		if game.AppID == appID {
			return stats.Round(float64(game.PlaytimeForever)/60, 1), nil
		}
	}
	return 0, nil
}

func doRequest[T any](ctx context.Context, client *SteamClient, path string, args *fasthttp.Args) (*T, error) {
	req := fasthttp.AcquireRequest()
	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseRequest(req)
	defer fasthttp.ReleaseResponse(resp)

	req.SetRequestURI(client.baseURL + path)
	req.URI().SetQueryStringBytes(args.QueryString())
	req.Header.SetMethod(fasthttp.MethodGet)
	req.Header.Set("Accept", "application/json")

	deadline, ok := ctx.Deadline()
	if ok {
		if err := client.client.DoDeadline(req, resp, deadline); err != nil {
			return nil, err
		}
	} else {
		if err := client.client.DoTimeout(req, resp, client.timeout); err != nil {
			return nil, err
		}
	}

	if resp.StatusCode() != fasthttp.StatusOK {
		return nil, fmt.Errorf("steam API error: %d", resp.StatusCode())
	}

	var result T
	if err := json.Unmarshal(resp.Body(), &result); err != nil {
		return nil, fmt.Errorf("failed to decode steam response: %w", err)
	}
	return &result, nil
}

type PlayerSummariesResponse struct {
	Response struct {
		Players []PlayerSummary `json:"players"`
	} `json:"response"`
}

type PlayerSummary struct {
	SteamID        string `json:"steamid"`
	PersonaName    string `json:"personaname"`
	ProfileURL     string `json:"profileurl"`
	AvatarFull     string `json:"avatarfull"`
	LocCountryCode string `json:"loccountrycode"`
}

type OwnedGamesResponse struct {
	Response struct {
		GameCount int         `json:"game_count"`
		Games     []OwnedGame `json:"games"`
	} `json:"response"`
}

type OwnedGame struct {
	AppID           int `json:"appid"`
	PlaytimeForever int `json:"playtime_forever"` // minutes
}

package constants

import "time"

const (
	ExternalAPITimeout = 10 * time.Second
	DatabaseTimeout    = 5 * time.Second
	RequestTimeout     = 30 * time.Second
)

const (
	DBMaxOpenConns    = 100
	DBMaxIdleConns    = 10
	DBConnMaxLifetime = 1 * time.Hour
	DBMaxIdleTime     = 10 * time.Minute
)

const (
	ShutdownTimeout = 5 * time.Second
)

// Counter-Strike 2 shares the CS:GO app id.
const (
	DefaultSteamAppID   = 730
	DefaultSteamBaseURL = "https://api.steampowered.com"
)

const (
	MinStatYear = 2000
	MaxStatYear = 2100
)

const (
	FlashCookieName   = "cs2_flash"
	FlashCookieMaxAge = 60
)

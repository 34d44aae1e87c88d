package server

import (
	"net/http"
	"strings"

	"cs2-tracker/internal/constants"

	"github.com/gin-gonic/gin"
)

const (
	flashSuccess = "success"
	flashWarning = "warning"
	flashError   = "danger"
)

// Flash is a one-shot message shown on the next rendered page.
type Flash struct {
	Level   string
	Message string
}

// gin escapes cookie values on the way out and unescapes them in c.Cookie.
func setFlash(c *gin.Context, level, msg string) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(constants.FlashCookieName, level+"|"+msg, constants.FlashCookieMaxAge, "/", "", false, true)
}

func popFlash(c *gin.Context) *Flash {
	raw, err := c.Cookie(constants.FlashCookieName)
	if err != nil || raw == "" {
		return nil
	}
	c.SetCookie(constants.FlashCookieName, "", -1, "/", "", false, true)

	level, msg, ok := strings.Cut(raw, "|")
	if !ok {
		return nil
	}
	return &Flash{Level: level, Message: msg}
}

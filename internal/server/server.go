package server

import (
	"errors"
	"net/http"
	"strconv"

	"cs2-tracker/internal/charts"
	"cs2-tracker/internal/config"
	"cs2-tracker/internal/domain"
	"cs2-tracker/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

const recentPlayersLimit = 20

type Server struct {
	players *service.PlayerService
	stats   *service.MonthlyStatService
	logger  zerolog.Logger
}

func NewServer(players *service.PlayerService, stats *service.MonthlyStatService, logger zerolog.Logger) *Server {
	return &Server{players: players, stats: stats, logger: logger}
}

// NewRouter builds the gin engine serving both the HTML pages and the JSON API.
func NewRouter(s *Server, cfg *config.Config) (*gin.Engine, error) {
	gin.SetMode(cfg.GinMode)

	tmpl, err := loadTemplates()
	if err != nil {
		return nil, err
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.SetHTMLTemplate(tmpl)

	router.GET("/", s.Home)
	router.POST("/search", s.Search)
	router.GET("/player/:steam_id", s.PlayerProfile)
	router.GET("/player/:steam_id/charts/:chart", s.PlayerChart)
	router.POST("/player/:steam_id/refresh", s.RefreshPlayer)
	router.GET("/player/:steam_id/add-stat", s.AddStatForm)
	router.POST("/player/:steam_id/add-stat", s.AddStat)
	router.GET("/stat/:id/edit", s.EditStatForm)
	router.POST("/stat/:id/edit", s.EditStat)
	router.POST("/stat/:id/delete", s.DeleteStat)

	api := router.Group("/api")
	api.POST("/search", s.APISearch)
	api.GET("/players/:steam_id", s.APIProfile)
	api.DELETE("/players/:steam_id", s.APIDeletePlayer)
	api.GET("/players/:steam_id/charts", s.APICharts)
	api.POST("/players/:steam_id/refresh", s.APIRefresh)
	api.POST("/players/:steam_id/stats", s.APICreateStat)
	api.PUT("/stats/:id", s.APIUpdateStat)
	api.DELETE("/stats/:id", s.APIDeleteStat)

	return router, nil
}

// log prefers the request-scoped logger installed by the request id middleware.
func (s *Server) log(c *gin.Context) *zerolog.Logger {
	l := zerolog.Ctx(c.Request.Context())
	if l.GetLevel() == zerolog.Disabled {
		return &s.logger
	}
	return l
}

func statusFor(err error) int {
	var verr *domain.ValidationError
	switch {
	case errors.As(err, &verr):
		return http.StatusUnprocessableEntity
	case errors.Is(err, domain.ErrPlayerNotFound),
		errors.Is(err, domain.ErrStatNotFound),
		errors.Is(err, charts.ErrNoSeries):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrInvalidSteamID):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func parseStatID(c *gin.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, domain.ErrStatNotFound
	}
	return id, nil
}

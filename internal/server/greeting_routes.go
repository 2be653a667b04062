package server

import (
	"greeting-service/internal/routes"
	"net/http"

	"github.com/gin-gonic/gin"
	zlog "github.com/rs/zerolog/log"
)

// every route answers GET and HEAD with its payload
func (s *server) initGreetingRoutes(table *routes.Table) {
	for _, route := range table.Routes() {
		handler := staticRouteHandler(route)

		s.router.GET(route.Path, handler)
		s.router.HEAD(route.Path, handler)

		zlog.Debug().Str("path", route.Path).Msg("Route registered")
	}
}

func staticRouteHandler(route routes.Route) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, route.Response())
	}
}

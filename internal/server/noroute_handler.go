package server

import (
	"github.com/gin-gonic/gin"
	zlog "github.com/rs/zerolog/log"
)

// Handlers only log: gin writes its default body when nothing was written.
func (s *server) initNoRoute() {
	s.router.NoRoute(func(c *gin.Context) {
		zlog.Info().Str("path", c.Request.URL.Path).Msg("No such path")
	})

	s.router.NoMethod(func(c *gin.Context) {
		zlog.Info().
			Str("path", c.Request.URL.Path).
			Str("method", c.Request.Method).
			Msg("Method not allowed")
	})
}

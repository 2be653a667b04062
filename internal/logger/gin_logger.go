package logger

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	zlog "github.com/rs/zerolog/log"
)

const (
	RequestIdHeader = "X-Request-Id"
	requestIdKey    = "request_id"
)

// RequestId tags every request with an id, reusing the one sent by the client.
func RequestId() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(RequestIdHeader)
		if id == "" {
			id = uuid.NewString()
		}

		c.Set(requestIdKey, id)
		c.Header(RequestIdHeader, id)

		c.Next()
	}
}

func GinLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		t := time.Now()
		path := c.Request.URL.Path

		c.Next()

		data := &requestData{
			status:     c.Writer.Status(),
			client_ip:  c.ClientIP(),
			path:       path,
			method:     c.Request.Method,
			request_id: c.GetString(requestIdKey),
			latency:    time.Since(t),
			err:        c.Errors.Last(),
		}

		data.log()
	}
}

type requestData struct {
	status     int
	client_ip  string
	path       string
	method     string
	request_id string
	latency    time.Duration
	err        *gin.Error
}

func (r *requestData) log() {
	var ev = zlog.Info()
	msg := "Success"

	switch {
	case 500 <= r.status:
		ev, msg = zlog.Error(), "5xx"
	case 400 <= r.status:
		ev, msg = zlog.Warn(), "4xx"
	}

	ev = ev.
		Str("ip", r.client_ip).
		Str("method", r.method).
		Str("path", r.path).
		Int("status", r.status).
		Str("latency", r.latency.String()).
		Str("request_id", r.request_id)

	if r.err != nil {
		ev = ev.Err(r.err)
	}

	ev.Msg(msg)
}

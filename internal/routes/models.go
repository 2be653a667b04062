package routes

import (
	"maps"
	"strings"
	"time"

	"github.com/pkg/errors"
)

// Payload is the response template of a route: string keys mapped to
// atomic values only. time.Time counts as atomic (yaml decodes unquoted
// dates to it) and renders as an RFC 3339 string.
type Payload map[string]any

type Route struct {
	Path    string
	payload Payload
}

// NewRoute validates path and payload and keeps its own copy of payload.
func NewRoute(path string, payload Payload) (Route, error) {
	if !strings.HasPrefix(path, "/") || strings.ContainsAny(path, ":*") {
		return Route{}, errors.Wrapf(ErrBadPath, "path %q", path)
	}

	for key, value := range payload {
		if !isAtomic(value) {
			return Route{}, errors.Wrapf(ErrBadPayload, "path %q, key %q has %T", path, key, value)
		}
	}

	return Route{
		Path:    path,
		payload: maps.Clone(payload),
	}, nil
}

func MustRoute(path string, payload Payload) Route {
	r, err := NewRoute(path, payload)
	if err != nil {
		panic(err)
	}
	return r
}

// Response builds a fresh copy of the payload, callers may mutate it.
// A route without payload answers with an empty object.
func (r Route) Response() map[string]any {
	if r.payload == nil {
		return map[string]any{}
	}
	return maps.Clone(r.payload)
}

func isAtomic(v any) bool {
	switch v.(type) {
	case nil, string, bool,
		int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64,
		float32, float64,
		time.Time:
		return true
	default:
		return false
	}
}

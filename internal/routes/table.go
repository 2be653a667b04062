package routes

import (
	"greeting-service/internal/configs"

	"github.com/moznion/go-optional"
	"github.com/pkg/errors"
	zlog "github.com/rs/zerolog/log"
)

// Table is the set of routes served by the process. It is filled once at
// startup and frozen before the server accepts requests; after Freeze it is
// read-only and safe for concurrent use.
type Table struct {
	routes map[string]Route
	order  []string
	frozen bool
}

func NewTable() *Table {
	return &Table{
		routes: make(map[string]Route),
	}
}

// Build creates a frozen table with the builtin routes followed by extra.
func Build(extra []configs.RouteConfig) (*Table, error) {
	t := NewTable()

	for _, r := range Builtin() {
		if err := t.Add(r); err != nil {
			return nil, err
		}
	}

	for _, cfg := range extra {
		r, err := NewRoute(cfg.Path, cfg.Payload)
		if err != nil {
			return nil, errors.Wrap(err, "configured route")
		}
		if err := t.Add(r); err != nil {
			return nil, errors.Wrap(err, "configured route")
		}
		zlog.Info().Str("path", r.Path).Msg("Configured route added")
	}

	t.Freeze()
	return t, nil
}

func (t *Table) Add(r Route) error {
	if t.frozen {
		return errors.Wrapf(ErrFrozen, "add %q", r.Path)
	}
	if _, ok := t.routes[r.Path]; ok {
		return errors.Wrapf(ErrDuplicateKey, "path %q", r.Path)
	}

	t.routes[r.Path] = r
	t.order = append(t.order, r.Path)
	return nil
}

func (t *Table) Freeze() {
	t.frozen = true
}

func (t *Table) Lookup(path string) optional.Option[Route] {
	r, ok := t.routes[path]
	if !ok {
		return optional.None[Route]()
	}
	return optional.Some(r)
}

// Routes lists routes in registration order.
func (t *Table) Routes() []Route {
	res := make([]Route, 0, len(t.order))
	for _, path := range t.order {
		res = append(res, t.routes[path])
	}
	return res
}

func (t *Table) Len() int {
	return len(t.order)
}

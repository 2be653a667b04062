package routes

import "github.com/pkg/errors"

var ErrBadPath = errors.New("path must start with / and hold no : or *")
var ErrDuplicateKey = errors.New("duplicate key")
var ErrBadPayload = errors.New("payload values must be atomic")
var ErrFrozen = errors.New("route table is frozen")

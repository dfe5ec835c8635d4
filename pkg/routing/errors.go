package routing

import "errors"

var (
	ErrInvalidHistory = errors.New("invalid history mode")
	ErrInvalidPath    = errors.New("route path must start with /")
	ErrDuplicatePath  = errors.New("duplicate route path")
	ErrDuplicateName  = errors.New("duplicate route name")
	ErrMissingView    = errors.New("route view has no template")
	ErrNoMatch        = errors.New("no route matches location")
	ErrUnknownName    = errors.New("unknown route name")
)

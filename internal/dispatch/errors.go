package dispatch

import "errors"

// Registration errors. They are fatal for a loading extension.
var (
	ErrNoSchema       = errors.New("operator has no schema")
	ErrSchemaConflict = errors.New("operator already defined with a different schema")
	ErrSealed         = errors.New("registry is sealed")
)

// Dispatch errors.
var (
	ErrUnknownOp          = errors.New("unknown operator")
	ErrUnsupportedBackend = errors.New("no implementation for backend")
	ErrBadArgument        = errors.New("argument does not match schema")
	ErrDeviceMismatch     = errors.New("tensor arguments on different devices")
	ErrBadResult          = errors.New("result does not match schema")
)
